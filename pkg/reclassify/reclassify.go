package reclassify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/govlens-network/govlens/pkg/config"
	"github.com/govlens-network/govlens/pkg/govdata"
)

// Apply fills the *_v2 taxonomy fields of p in place.
func Apply(p *govdata.Proposal) {
	res := Classify(p.Title, p.Type)
	p.TypeV2 = res.TypeV2
	p.TopicV2Display = res.TopicV2Display
	p.TopicV2 = Slug(res.TopicV2Display)
	p.TopicV2Unique = res.TypeV2 + ":" + res.TopicV2Display
}

// ReclassifyChain reads a chain directory's proposals.json, applies
// the rule cascade to every proposal and writes proposals_v2.json
// next to it. Returns the number of proposals written.
func ReclassifyChain(chainDir string) (int, error) {
	src := filepath.Join(chainDir, govdata.ProposalsFile)
	raw, err := os.ReadFile(src)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", src, err)
	}

	var proposals []govdata.Proposal
	if err := json.Unmarshal(raw, &proposals); err != nil {
		return 0, fmt.Errorf("decode %s: %w", src, err)
	}

	for i := range proposals {
		Apply(&proposals[i])
	}
	if proposals == nil {
		proposals = []govdata.Proposal{}
	}

	out, err := json.MarshalIndent(proposals, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("marshal %s: %w", src, err)
	}
	dst := filepath.Join(chainDir, govdata.ProposalsV2File)
	if err := os.WriteFile(dst, out, 0o644); err != nil {
		return 0, fmt.Errorf("write %s: %w", dst, err)
	}
	return len(proposals), nil
}

// Run executes the second pass over every chain directory under the
// data root. Chains with no proposals.json yet are skipped; other
// per-chain failures are reported at the end without stopping the
// remaining chains.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	entries, err := os.ReadDir(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("read data dir %s: %w", cfg.DataDir, err)
	}

	var chains []string
	for _, e := range entries {
		if e.IsDir() {
			chains = append(chains, e.Name())
		}
	}
	sort.Strings(chains)

	var failures []error
	for _, chain := range chains {
		if err := ctx.Err(); err != nil {
			return err
		}

		dir := filepath.Join(cfg.DataDir, chain)
		if _, err := os.Stat(filepath.Join(dir, govdata.ProposalsFile)); os.IsNotExist(err) {
			continue
		}

		n, err := ReclassifyChain(dir)
		if err != nil {
			logger.Error("chain reclassify failed", zap.String("chain", chain), zap.Error(err))
			failures = append(failures, err)
			continue
		}
		logger.Info("chain reclassified", zap.String("chain", chain), zap.Int("proposals", n))
	}

	return errors.Join(failures...)
}
