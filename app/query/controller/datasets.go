package controller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

// datasetHandler serves one of a chain's output files verbatim. The
// chain comes from the required ?chain= query parameter: 400 when it
// is missing, 404 when the chain or file is unknown, 500 on any other
// read failure. No caching and no interpretation of the bytes.
func (c *Controller) datasetHandler(route, file string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		chain := r.URL.Query().Get("chain")
		if chain == "" {
			countRequest(route, http.StatusBadRequest)
			writeError(w, http.StatusBadRequest, "missing chain parameter")
			return
		}

		dir, ok, err := c.App.LoadChainDir(chain)
		if err != nil {
			// The data root itself is unreadable; not the caller's fault.
			countRequest(route, http.StatusInternalServerError)
			writeError(w, http.StatusInternalServerError, "data root unreadable")
			return
		}
		if !ok {
			countRequest(route, http.StatusNotFound)
			writeError(w, http.StatusNotFound, fmt.Sprintf("no data for chain %q", chain))
			return
		}

		raw, err := os.ReadFile(filepath.Join(dir, file))
		if err != nil {
			if os.IsNotExist(err) {
				countRequest(route, http.StatusNotFound)
				writeError(w, http.StatusNotFound, fmt.Sprintf("no %s for chain %q", file, chain))
				return
			}
			countRequest(route, http.StatusInternalServerError)
			writeError(w, http.StatusInternalServerError, "read failed")
			return
		}

		countRequest(route, http.StatusOK)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(raw)
	})
}

// HandleChains lists the chain IDs known under the data root.
func (c *Controller) HandleChains(w http.ResponseWriter, r *http.Request) {
	if err := c.App.RefreshChains(); err != nil {
		countRequest("chains", http.StatusInternalServerError)
		writeError(w, http.StatusInternalServerError, "data root unreadable")
		return
	}

	chains := c.App.ChainIDs()
	if chains == nil {
		chains = []string{}
	}
	countRequest("chains", http.StatusOK)
	writeJSON(w, http.StatusOK, map[string]interface{}{"chains": chains})
}
