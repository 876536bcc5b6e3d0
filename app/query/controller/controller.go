package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/govlens-network/govlens/app/query/types"
	"github.com/govlens-network/govlens/pkg/govdata"
)

type Controller struct {
	App *types.App
}

// NewController returns a new controller.
func NewController(app *types.App) *Controller {
	return &Controller{
		App: app,
	}
}

// WithCORS is a middleware that adds CORS headers to the response.
// The dashboard is served from a different origin in development.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		w.Header().Set("Access-Control-Allow-Methods", http.MethodGet+", "+http.MethodOptions)

		// Fast-path the preflight
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// NewRouter returns a new router with all the routes defined in this file.
func (c *Controller) NewRouter() (*mux.Router, error) {
	r := mux.NewRouter()

	r.Handle("/api/health", http.HandlerFunc(c.HandleHealth)).Methods(http.MethodGet)
	r.Handle("/api/chains", http.HandlerFunc(c.HandleChains)).Methods(http.MethodGet)

	// Chain-keyed pass-through of the pipeline's output files.
	r.Handle("/api/votes", c.datasetHandler("votes", govdata.VotesFile)).Methods(http.MethodGet)
	r.Handle("/api/proposals", c.datasetHandler("proposals", govdata.ProposalsFile)).Methods(http.MethodGet)
	r.Handle("/api/proposals_v2", c.datasetHandler("proposals_v2", govdata.ProposalsV2File)).Methods(http.MethodGet)
	r.Handle("/api/validators", c.datasetHandler("validators", govdata.ValidatorsFile)).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	return r, nil
}
