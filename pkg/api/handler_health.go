package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agentium/agentium/pkg/database"
	"github.com/agentium/agentium/pkg/version"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database,omitempty"`
}

// health handles GET /health. The endpoint is unauthenticated so load
// balancers and probes can reach it.
func (s *Server) health(c *gin.Context) {
	resp := HealthResponse{Status: "healthy", Version: version.Full()}

	if s.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		dbHealth, err := database.Health(ctx, s.db)
		resp.Database = dbHealth
		if err != nil {
			resp.Status = "unhealthy"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}

	c.JSON(http.StatusOK, resp)
}
