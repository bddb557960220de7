package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weftworks/weft/pkg/models"
)

// listCredentialsHandler handles GET /api/v1/credentials?owner_id=...
// Connection strings are never returned, only refs and source kinds.
func (s *Server) listCredentialsHandler(c *gin.Context) {
	ownerID := c.Query("owner_id")
	if ownerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "owner_id is required"})
		return
	}

	infos, err := s.credentials.ListCredentials(c.Request.Context(), ownerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"credentials": infos})
}

// saveCredentialHandler handles PUT /api/v1/credentials/:ref.
func (s *Server) saveCredentialHandler(c *gin.Context) {
	var req models.SaveCredentialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	req.Ref = c.Param("ref")

	if err := s.credentials.SaveCredential(c.Request.Context(), req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ref": req.Ref, "source": req.Source})
}

// deleteCredentialHandler handles DELETE /api/v1/credentials/:ref?owner_id=...
func (s *Server) deleteCredentialHandler(c *gin.Context) {
	ownerID := c.Query("owner_id")
	if ownerID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "owner_id is required"})
		return
	}

	if err := s.credentials.DeleteCredential(c.Request.Context(), ownerID, c.Param("ref")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "credential deleted"})
}
