package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"comply-backend/internal/shared/config"
	"comply-backend/internal/shared/metrics"
	"comply-backend/internal/shared/server/middleware"
	"comply-backend/internal/shared/server/respond"
)

// NewEngine builds the gin engine with the standard middleware chain and
// the health endpoint registered. Domain handlers register their own
// routes on the group returned by APIGroup.
func NewEngine(cfg config.Config) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())
	return r
}

// APIGroup returns the versioned API route group with the health
// endpoint already registered.
func APIGroup(r *gin.Engine) *gin.RouterGroup {
	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	return api
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
