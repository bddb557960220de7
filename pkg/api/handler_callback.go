package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weftworks/weft/pkg/models"
)

// callbackHandler handles POST /api/v1/callbacks/:token. The token is
// consumable exactly once: a replay returns 409 and an unknown token 404.
func (s *Server) callbackHandler(c *gin.Context) {
	var req models.CallbackRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
			return
		}
	}

	if err := s.callbacks.Consume(c.Request.Context(), c.Param("token"), req); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "callback accepted"})
}
