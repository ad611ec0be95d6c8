package middleware

import (
	"fmt"
	"net/http"

	"github.com/tendant/simple-meet/internal/config"
)

// SecurityHeaders creates middleware that applies OWASP-recommended security headers.
// Headers with an empty configured value are not sent.
func SecurityHeaders(cfg config.SecurityHeadersConfig) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return passthrough()
	}

	headers := map[string]string{
		// prevents XSS attacks
		"Content-Security-Policy": cfg.CSP,
		// prevents clickjacking
		"X-Frame-Options": cfg.FrameOptions,
		// prevents MIME sniffing
		"X-Content-Type-Options": cfg.ContentTypeOptions,
		// legacy XSS protection
		"X-XSS-Protection": cfg.XSSProtection,
		// controls referrer information
		"Referrer-Policy": cfg.ReferrerPolicy,
		// controls browser features
		"Permissions-Policy": cfg.PermissionsPolicy,
	}
	// enforces HTTPS
	if cfg.HSTSMaxAge > 0 {
		headers["Strict-Transport-Security"] = fmt.Sprintf("max-age=%d; includeSubDomains", cfg.HSTSMaxAge)
	}
	for name, value := range headers {
		if value == "" {
			delete(headers, name)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for name, value := range headers {
				w.Header().Set(name, value)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func passthrough() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return next
	}
}
