package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govlens-network/govlens/pkg/govdata"
)

func TestWriteChainDataset(t *testing.T) {
	dataDir := t.TempDir()

	ds := govdata.NewChainDataset("cosmos")
	ds.Proposals = append(ds.Proposals, govdata.Proposal{
		ProposalID:       "1",
		ChainID:          "cosmos",
		Title:            "Upgrade v12",
		FinalTallyResult: govdata.Tally{"yes_count": 1},
	})
	ds.RegisterValidator(govdata.Validator{ValidatorAddress: "val1", ChainID: "cosmos"})
	ds.Votes = append(ds.Votes, govdata.Vote{ProposalID: "1", ValidatorAddress: "val1", VoteOption: "VOTE_OPTION_YES"})

	require.NoError(t, WriteChainDataset(dataDir, ds))

	dir := filepath.Join(dataDir, "cosmos")
	for _, name := range []string{govdata.ProposalsFile, govdata.ValidatorsFile, govdata.VotesFile} {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.True(t, json.Valid(raw), name)
	}

	var proposals []govdata.Proposal
	raw, err := os.ReadFile(filepath.Join(dir, govdata.ProposalsFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &proposals))
	require.Len(t, proposals, 1)
	assert.Equal(t, "1", proposals[0].ProposalID)
}

func TestWriteChainDatasetEmptyArrays(t *testing.T) {
	dataDir := t.TempDir()
	require.NoError(t, WriteChainDataset(dataDir, govdata.NewChainDataset("empty")))

	raw, err := os.ReadFile(filepath.Join(dataDir, "empty", govdata.VotesFile))
	require.NoError(t, err)
	// Empty chains serialize as [] rather than null.
	assert.JSONEq(t, "[]", string(raw))
}

func TestWriteChainDatasetOverwrites(t *testing.T) {
	dataDir := t.TempDir()

	ds := govdata.NewChainDataset("cosmos")
	ds.Proposals = append(ds.Proposals, govdata.Proposal{ProposalID: "1", ChainID: "cosmos"})
	require.NoError(t, WriteChainDataset(dataDir, ds))

	replacement := govdata.NewChainDataset("cosmos")
	replacement.Proposals = append(replacement.Proposals, govdata.Proposal{ProposalID: "2", ChainID: "cosmos"})
	require.NoError(t, WriteChainDataset(dataDir, replacement))

	var proposals []govdata.Proposal
	raw, err := os.ReadFile(filepath.Join(dataDir, "cosmos", govdata.ProposalsFile))
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &proposals))
	require.Len(t, proposals, 1)
	assert.Equal(t, "2", proposals[0].ProposalID)
}
