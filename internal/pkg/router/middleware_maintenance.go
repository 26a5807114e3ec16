package router

import (
	"net/http"

	"github.com/shandysiswandi/formcheck/internal/pkg/config"
	"github.com/shandysiswandi/formcheck/internal/pkg/goerror"
)

// middlewareMaintenance answers 503 for the route patterns listed under
// app.maintenance.endpoints. The list is read per request so a config reload
// takes effect without a restart.
func middlewareMaintenance(cfg config.Config) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg != nil {
				route := matchedRoutePath(r)
				for _, endpoint := range cfg.GetArray("app.maintenance.endpoints") {
					if endpoint == route {
						writeError(r.Context(), w, goerror.NewBusiness("service is under maintenance", goerror.CodeUnavailable))
						return
					}
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
