package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/weftworks/weft/pkg/database"
	"github.com/weftworks/weft/pkg/version"
)

// healthHandler handles GET /health and GET /api/v1/health. The DB check
// gates the overall status; pool health is informational.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	body := gin.H{"status": "healthy", "version": version.Full()}
	if s.pool != nil {
		body["pool"] = s.pool.Health()
	}

	dbHealth, err := database.Health(ctx, s.db.DB())
	body["database"] = dbHealth
	if err != nil {
		body["status"] = "unhealthy"
		body["error"] = err.Error()
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}

	c.JSON(http.StatusOK, body)
}
