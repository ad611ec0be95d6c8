package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/tendant/simple-meet/internal/config"
	"github.com/tendant/simple-meet/internal/http/features/meeting"
	"github.com/tendant/simple-meet/internal/http/middleware"
	"github.com/tendant/simple-meet/internal/httputil"
	"github.com/tendant/simple-meet/pkg/booking"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Logger             *slog.Logger
	Service            *booking.Service
	LiveKitURL         string
	StudioHeader       string
	RateLimitConfig    config.RateLimitConfig
	SecurityHeaders    config.SecurityHeadersConfig
	CORS               config.CORSConfig
	MaxRequestBodySize int64
}

// NewRouter creates a new HTTP router with all routes registered.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.CORS(cfg.CORS, cfg.StudioHeader))
	r.Use(middleware.Recover(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.SecurityHeaders(cfg.SecurityHeaders))
	r.Use(middleware.RequestSizeLimit(cfg.MaxRequestBodySize))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	rateLimiters := middleware.CreateRateLimiters(cfg.RateLimitConfig, cfg.Logger)

	meetingHandler := meeting.NewHandler(cfg.Logger, cfg.Service, cfg.LiveKitURL)
	r.Route("/api", func(r chi.Router) {
		meetingHandler.RegisterRoutes(r, meeting.RoutesConfig{
			Studio:        middleware.Studio(cfg.StudioHeader),
			CreateLimiter: rateLimiters[middleware.LimiterCreate],
			JoinLimiter:   rateLimiters[middleware.LimiterJoin],
		})
	})

	return r
}
