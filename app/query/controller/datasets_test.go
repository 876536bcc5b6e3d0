package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/govlens-network/govlens/app/query/types"
	"github.com/govlens-network/govlens/pkg/config"
	"github.com/govlens-network/govlens/pkg/govdata"
)

func newTestRouter(t *testing.T, dataDir string) *mux.Router {
	t.Helper()
	app := &types.App{
		Config: &config.Config{DataDir: dataDir},
		Logger: zap.NewNop(),
	}
	require.NoError(t, app.RefreshChains())

	router, err := NewController(app).NewRouter()
	require.NoError(t, err)
	return router
}

func seedChain(t *testing.T, dataDir, chain string, files map[string]string) {
	t.Helper()
	dir := filepath.Join(dataDir, chain)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func TestHandleVotes(t *testing.T) {
	dataDir := t.TempDir()
	votesBody := `[{"proposal_id":"1","validator_address":"val1","vote_option":"VOTE_OPTION_YES","voting_power":"100"}]`
	seedChain(t, dataDir, "cosmos", map[string]string{govdata.VotesFile: votesBody})
	router := newTestRouter(t, dataDir)

	t.Run("missing chain param", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/votes", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body["error"], "chain")
	})

	t.Run("unknown chain", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/votes?chain=unknownchain", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		// The message names the chain the caller asked for.
		assert.Contains(t, rec.Body.String(), "unknownchain")
	})

	t.Run("known chain passes file through verbatim", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/votes?chain=cosmos", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.Equal(t, votesBody, rec.Body.String())
	})

	t.Run("chain dir without votes file", func(t *testing.T) {
		seedChain(t, dataDir, "bare", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/votes?chain=bare", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "bare")
	})
}

func TestDatasetRoutes(t *testing.T) {
	dataDir := t.TempDir()
	seedChain(t, dataDir, "juno", map[string]string{
		govdata.ProposalsFile:   `[{"proposal_id":"1"}]`,
		govdata.ProposalsV2File: `[{"proposal_id":"1","type_v2":"Governance"}]`,
		govdata.ValidatorsFile:  `[{"validator_address":"val1"}]`,
	})
	router := newTestRouter(t, dataDir)

	for _, route := range []string{"/api/proposals", "/api/proposals_v2", "/api/validators"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, route+"?chain=juno", nil))
		assert.Equal(t, http.StatusOK, rec.Code, route)
		assert.True(t, json.Valid(rec.Body.Bytes()), route)
	}
}

func TestUnreadableDataRootIsServerError(t *testing.T) {
	// Point the app at a data root that never existed: the rescan on
	// a chain miss fails, and that is the server's problem, not a 404.
	app := &types.App{
		Config: &config.Config{DataDir: filepath.Join(t.TempDir(), "gone")},
		Logger: zap.NewNop(),
	}
	router, err := NewController(app).NewRouter()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/votes?chain=cosmos", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestChainDiscoveredAfterRouterBuilt(t *testing.T) {
	dataDir := t.TempDir()
	router := newTestRouter(t, dataDir)

	// Chain appears after startup; the miss path rescans and finds it.
	seedChain(t, dataDir, "late", map[string]string{govdata.VotesFile: `[]`})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/votes?chain=late", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandleChains(t *testing.T) {
	dataDir := t.TempDir()
	seedChain(t, dataDir, "cosmos", nil)
	seedChain(t, dataDir, "juno", nil)
	router := newTestRouter(t, dataDir)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/chains", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Chains []string `json:"chains"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.ElementsMatch(t, []string{"cosmos", "juno"}, body.Chains)
}

func TestHandleHealth(t *testing.T) {
	dataDir := t.TempDir()
	router := newTestRouter(t, dataDir)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}
