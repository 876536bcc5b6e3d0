package reclassify

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/govlens-network/govlens/pkg/config"
	"github.com/govlens-network/govlens/pkg/govdata"
)

func writeProposals(t *testing.T, dir string, proposals []govdata.Proposal) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	raw, err := json.Marshal(proposals)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, govdata.ProposalsFile), raw, 0o644))
}

func TestApply(t *testing.T) {
	p := govdata.Proposal{Title: "Upgrade to v12", Type: "Software Upgrade"}
	Apply(&p)

	assert.Equal(t, "Protocol", p.TypeV2)
	assert.Equal(t, "Core Upgrade", p.TopicV2Display)
	assert.Equal(t, "core_upgrade", p.TopicV2)
	assert.Equal(t, "Protocol:Core Upgrade", p.TopicV2Unique)
}

func TestReclassifyChain(t *testing.T) {
	dataDir := t.TempDir()
	dir := filepath.Join(dataDir, "cosmos")
	writeProposals(t, dir, []govdata.Proposal{
		{ProposalID: "1", Title: "Upgrade to v12", Type: "Software Upgrade"},
		{ProposalID: "2", Title: "Nothing in particular", Type: "Some Other"},
	})

	n, err := ReclassifyChain(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	raw, err := os.ReadFile(filepath.Join(dir, govdata.ProposalsV2File))
	require.NoError(t, err)

	var out []govdata.Proposal
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out, 2)

	assert.Equal(t, "Protocol", out[0].TypeV2)
	// The default path still yields a non-empty taxonomy.
	assert.Equal(t, "Governance", out[1].TypeV2)
	assert.Equal(t, "Signaling", out[1].TopicV2Display)
	for _, p := range out {
		assert.NotEmpty(t, p.TypeV2)
		assert.NotEmpty(t, p.TopicV2Display)
		assert.Equal(t, p.TypeV2+":"+p.TopicV2Display, p.TopicV2Unique)
	}
}

func TestReclassifyChainMissingInput(t *testing.T) {
	_, err := ReclassifyChain(t.TempDir())
	assert.Error(t, err)
}

func TestRunSkipsChainsWithoutProposals(t *testing.T) {
	dataDir := t.TempDir()

	writeProposals(t, filepath.Join(dataDir, "cosmos"), []govdata.Proposal{
		{ProposalID: "1", Title: "Signal support", Type: "Text Proposal"},
	})
	// A directory with no proposals.json yet, e.g. mid-first-run.
	require.NoError(t, os.MkdirAll(filepath.Join(dataDir, "fresh"), 0o755))

	cfg := &config.Config{DataDir: dataDir}
	require.NoError(t, Run(context.Background(), cfg, zap.NewNop()))

	_, err := os.Stat(filepath.Join(dataDir, "cosmos", govdata.ProposalsV2File))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dataDir, "fresh", govdata.ProposalsV2File))
	assert.True(t, os.IsNotExist(err))
}
