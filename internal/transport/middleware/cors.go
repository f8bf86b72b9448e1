package middleware

import (
	"net/http"
	"slices"
	"strconv"

	"github.com/heartmarshall/postcraft-backend/internal/config"
)

// exposedHeaders are readable by browser clients on cross-origin responses.
const exposedHeaders = RequestIDHeader + ", Retry-After, RateLimit-Limit, RateLimit-Remaining"

// CORS answers preflight requests and sets the allow headers for configured
// origins. "*" allows any origin; the request origin is echoed back so
// credentials keep working. Preflights from other origins get an empty 204
// and the browser blocks the real request.
func CORS(cfg config.CORSConfig) Middleware {
	origins := config.ParseList(cfg.AllowedOrigins)
	anyOrigin := slices.Contains(origins, "*")
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			allowed := origin != "" && (anyOrigin || slices.Contains(origins, origin))
			if origin != "" {
				w.Header().Add("Vary", "Origin")
				if allowed {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					w.Header().Set("Access-Control-Expose-Headers", exposedHeaders)
					if cfg.AllowCredentials {
						w.Header().Set("Access-Control-Allow-Credentials", "true")
					}
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if !allowed {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
