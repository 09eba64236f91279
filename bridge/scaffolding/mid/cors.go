package mid

import (
	"context"
	"net/http"
	"strings"

	"github.com/OreBoia/my-rest-app/infrastructure/web"
)

// CORSConfig holds CORS configuration options.
type CORSConfig struct {
	Origins     []string
	Methods     []string
	Headers     []string
	Credentials bool
	MaxAge      string
}

// DefaultCORSConfig returns the configuration used for the API: a single
// allowed origin is expected (the frontend's dev origin), but a list is
// supported.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		Origins:     []string{"*"},
		Methods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		Headers:     []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"},
		Credentials: true,
		MaxAge:      "86400",
	}
}

// CORS creates CORS middleware restricted to the given origins.
func CORS(origins ...string) web.Middleware {
	config := DefaultCORSConfig()
	config.Origins = origins
	return CORSWithConfig(config)
}

// CORSWithConfig creates CORS middleware with full configuration. OPTIONS
// preflight requests are answered here and never reach the handler.
func CORSWithConfig(config CORSConfig) web.Middleware {
	return func(handler web.HandlerFunc) web.HandlerFunc {
		return func(ctx context.Context, r *http.Request) web.Encoder {
			w := web.GetWriter(ctx)
			if w == nil {
				return handler(ctx, r)
			}

			reqOrigin := r.Header.Get("Origin")
			for _, origin := range config.Origins {
				if origin == "*" || origin == reqOrigin {
					w.Header().Set("Access-Control-Allow-Origin", origin)
					break
				}
			}

			if config.Credentials {
				w.Header().Set("Access-Control-Allow-Credentials", "true")
			}
			if len(config.Methods) > 0 {
				w.Header().Set("Access-Control-Allow-Methods", strings.Join(config.Methods, ", "))
			}
			if len(config.Headers) > 0 {
				w.Header().Set("Access-Control-Allow-Headers", strings.Join(config.Headers, ", "))
			}
			if config.MaxAge != "" {
				w.Header().Set("Access-Control-Max-Age", config.MaxAge)
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return web.NewNoResponse()
			}

			return handler(ctx, r)
		}
	}
}
