package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/govlens-network/govlens/pkg/govdata"
)

// WriteChainDataset creates the chain's directory under dataDir and
// writes proposals.json, validators.json and votes.json, overwriting
// any prior contents. Writes are plain truncating writes; a crash mid
// way can leave the three files mutually inconsistent until the next
// run rewrites them.
func WriteChainDataset(dataDir string, ds *govdata.ChainDataset) error {
	dir := filepath.Join(dataDir, ds.ChainID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create chain dir %s: %w", dir, err)
	}

	proposals := ds.Proposals
	if proposals == nil {
		proposals = []govdata.Proposal{}
	}
	validators := ds.Validators
	if validators == nil {
		validators = []govdata.Validator{}
	}
	votes := ds.Votes
	if votes == nil {
		votes = []govdata.Vote{}
	}

	if err := writeJSONFile(filepath.Join(dir, govdata.ProposalsFile), proposals); err != nil {
		return err
	}
	if err := writeJSONFile(filepath.Join(dir, govdata.ValidatorsFile), validators); err != nil {
		return err
	}
	return writeJSONFile(filepath.Join(dir, govdata.VotesFile), votes)
}

func writeJSONFile(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
