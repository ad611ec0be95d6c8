package middleware

import (
	"context"
	"net/http"

	"github.com/tendant/simple-meet/internal/httputil"
	"github.com/tendant/simple-meet/pkg/domain"
)

type contextKey string

// StudioIDKey is the context key for the authenticated studio ID.
const StudioIDKey contextKey = "studio_id"

// DefaultStudioHeader is the header carrying the studio identity.
const DefaultStudioHeader = "studio"

// Studio creates middleware that reads the studio identity from header.
// The header is set by the authenticating proxy in front of this service,
// so its value is trusted but still has to be a well-formed UUID.
func Studio(header string) func(http.Handler) http.Handler {
	if header == "" {
		header = DefaultStudioHeader
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(header)
			if raw == "" {
				httputil.Error(w, http.StatusUnauthorized, "missing studio identity")
				return
			}

			studioID, err := domain.ParseStudioID(raw)
			if err != nil {
				httputil.Error(w, http.StatusBadRequest, "invalid studio identity")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithStudioID(r.Context(), studioID)))
		})
	}
}

// GetStudioID extracts the studio ID from the request context.
func GetStudioID(ctx context.Context) (domain.StudioID, bool) {
	studioID, ok := ctx.Value(StudioIDKey).(domain.StudioID)
	return studioID, ok
}

// WithStudioID returns a copy of ctx carrying studioID.
func WithStudioID(ctx context.Context, studioID domain.StudioID) context.Context {
	return context.WithValue(ctx, StudioIDKey, studioID)
}
