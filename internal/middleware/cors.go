package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Vibe-Web-Agency/dashboard/internal/config"
)

// CORSMiddleware n'expose l'API qu'aux origines listées en configuration.
// Les identifiants (jeton bearer) ne sont jamais autorisés pour une
// origine hors liste : la requête passe sans en-têtes CORS et le
// navigateur la bloque.
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	allowed := make(map[string]bool, len(cfg.CORSOrigins))
	for _, origin := range cfg.CORSOrigins {
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		if allowed[origin] {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Vary", "Origin")
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
