package middleware

import (
	"log/slog"
	"slices"

	"dakar-rentals/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware lets the admin dashboard and reservation form call the
// API. Location (set on booking creation) and the request ID are always
// readable by the browser.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	exposed := slices.Clone(cfg.ExposeHeaders)
	for _, h := range []string{"Location", RequestIDHeader} {
		if !slices.Contains(exposed, h) {
			exposed = append(exposed, h)
		}
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    exposed,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "expose_headers", exposed)
	return cors.New(corsCfg)
}
