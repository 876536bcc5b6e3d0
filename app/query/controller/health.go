package controller

import (
	"net/http"
	"os"
)

func (c *Controller) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if _, err := os.Stat(c.App.Config.DataDir); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"status": "errored", "error": "data root unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
