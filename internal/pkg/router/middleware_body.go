package router

import (
	"net/http"

	"github.com/shandysiswandi/gocontact/internal/pkg/config"
)

// DefaultMaxBodyBytes caps request bodies when app.server.http.max_body_bytes is unset.
const DefaultMaxBodyBytes int64 = 100 << 10

func middlewareBodyLimit(cfg config.Config) Middleware {
	limit := DefaultMaxBodyBytes
	if cfg != nil {
		if v := cfg.GetInt64("app.server.http.max_body_bytes"); v > 0 {
			limit = v
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body != nil && r.Body != http.NoBody {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
