package server

import (
	"net/http"
	"strings"
)

// SecurityConfig controls the hardening applied to every HTTP endpoint:
// CORS policy and the upper bound on sweep work a single request may ask for.
type SecurityConfig struct {
	// EnableCORS enables cross-origin resource sharing headers.
	EnableCORS bool

	// AllowedOrigins lists origins allowed to call the API. The wildcard
	// "*" allows any origin.
	AllowedOrigins []string

	// AllowedMethods lists HTTP methods advertised in CORS responses.
	AllowedMethods []string

	// MaxSamplePoints caps the number of operand samples a single
	// /v1/sweep request may ask for.
	MaxSamplePoints uint64
}

// DefaultSecurityConfig returns the security settings used when the server
// is started without explicit overrides.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:      true,
		AllowedOrigins:  []string{"*"},
		AllowedMethods:  []string{"GET", "OPTIONS"},
		MaxSamplePoints: 1 << 20,
	}
}

// SecurityMiddleware wraps a handler with security response headers and,
// when enabled, CORS handling including OPTIONS preflight requests.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			if origin := allowedOrigin(config, r.Header.Get("Origin")); origin != "" {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", strings.Join(config.AllowedMethods, ", "))
				h.Set("Access-Control-Allow-Headers", "Content-Type, Accept")
				h.Set("Access-Control-Max-Age", "86400")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}

		next(w, r)
	}
}

// allowedOrigin returns the Access-Control-Allow-Origin value for a request
// origin, or "" when the origin is not allowed. The wildcard matches even
// requests that carry no Origin header.
func allowedOrigin(config SecurityConfig, origin string) string {
	for _, allowed := range config.AllowedOrigins {
		if allowed == "*" {
			return "*"
		}
		if origin != "" && allowed == origin {
			return origin
		}
	}
	return ""
}
