package controller

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/govlens-network/govlens/pkg/metrics"
)

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

func countRequest(route string, statusCode int) {
	metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(statusCode)).Inc()
}
