// internal/api/router.go
package api

import (
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"pcblab/internal/catalog"
	"pcblab/internal/config"
	"pcblab/internal/forms"
	"pcblab/internal/metrics"
	"pcblab/internal/scanner"
	"pcblab/internal/session"
)

// Services are the engine components exposed over HTTP
type Services struct {
	Config    *config.Config
	Catalog   *catalog.Catalog
	Scanner   *scanner.Simulator
	Session   *session.Session
	Submitter *forms.Submitter
}

// NewRouter registers every handler on a new router
func NewRouter(s Services) *mux.Router {
	r := mux.NewRouter()
	if s.Config.Server.RateLimit > 0 {
		r.Use(rateLimit(rate.NewLimiter(rate.Limit(s.Config.Server.RateLimit), s.Config.Server.RateBurst)))
	}

	NewScanHandler(s.Scanner).RegisterRoutes(r)
	NewCatalogHandler(s.Catalog).RegisterRoutes(r)
	NewToolHandler(s.Catalog).RegisterRoutes(r)
	NewFormHandler(s.Submitter, s.Session).RegisterRoutes(r)
	NewStatusHandler(s.Scanner, s.Session, s.Config).RegisterRoutes(r)

	if s.Config.Advanced.MetricsEnabled {
		r.Handle(s.Config.Advanced.MetricsEndpoint, metrics.Handler()).Methods("GET")
	}
	return r
}
