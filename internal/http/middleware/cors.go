package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/tendant/simple-meet/internal/config"
)

// CORS creates middleware that answers preflight requests from browser
// clients. studioHeader is added to the allowed request headers.
func CORS(cfg config.CORSConfig, studioHeader string) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return passthrough()
	}
	if studioHeader == "" {
		studioHeader = DefaultStudioHeader
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", studioHeader},
		MaxAge:         cfg.MaxAge,
	})
}
