package router

import (
	"net/http"

	"github.com/shandysiswandi/gocontact/internal/pkg/config"
)

const maintenanceKey = "app.maintenance.endpoints"

// middlewareMaintenance answers 503 for routes listed under
// app.maintenance.endpoints. The list is read per request so a config file
// reload takes effect without a restart.
func middlewareMaintenance(cfg config.Config) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg == nil {
				next.ServeHTTP(w, r)
				return
			}

			route := matchedRoutePath(r)
			for _, endpoint := range cfg.GetArray(maintenanceKey) {
				if endpoint == route {
					writeJSON(w, errorResponse{Message: "Service is under maintenance"}, http.StatusServiceUnavailable)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
