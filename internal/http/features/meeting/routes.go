package meeting

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tendant/simple-meet/internal/http/middleware"
)

// RoutesConfig holds the middleware wrapped around meeting routes.
type RoutesConfig struct {
	Studio        func(http.Handler) http.Handler
	CreateLimiter func(http.Handler) http.Handler
	JoinLimiter   func(http.Handler) http.Handler
}

// RegisterRoutes registers meeting routes on r. Create and list require a
// studio identity; join only needs the meeting id.
func (h *Handler) RegisterRoutes(r chi.Router, cfg RoutesConfig) {
	studio := cfg.Studio
	if studio == nil {
		studio = middleware.Studio(middleware.DefaultStudioHeader)
	}

	r.Get("/hello", h.Hello)

	r.Group(func(r chi.Router) {
		r.Use(studio)
		r.With(orPassthrough(cfg.CreateLimiter)).Post("/meetings", h.CreateMeeting)
		r.Get("/meetings", h.ListMeetings)
	})

	r.With(orPassthrough(cfg.JoinLimiter)).Get("/meetings/{meetingID}/join", h.JoinMeeting)
}

func orPassthrough(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	if mw == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return mw
}
