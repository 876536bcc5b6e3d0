package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/govlens-network/govlens/pkg/config"
	"github.com/govlens-network/govlens/pkg/csvio"
	"github.com/govlens-network/govlens/pkg/metrics"
)

const chainFileSuffix = "_proposals.csv"

// ChainFile pairs a chain ID with its proposals export path.
type ChainFile struct {
	ChainID string
	Path    string
}

// DiscoverChainFiles lists <chain>_proposals.csv files under inputDir.
// When pinned is non-empty only those chain IDs are kept. Results are
// sorted by chain ID so runs process chains in a stable order.
func DiscoverChainFiles(inputDir string, pinned []string) ([]ChainFile, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("read input dir %s: %w", inputDir, err)
	}

	want := map[string]bool{}
	for _, c := range pinned {
		want[c] = true
	}

	var out []ChainFile
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, chainFileSuffix) {
			continue
		}
		chainID := strings.TrimSuffix(name, chainFileSuffix)
		if chainID == "" {
			continue
		}
		if len(want) > 0 && !want[chainID] {
			continue
		}
		out = append(out, ChainFile{ChainID: chainID, Path: filepath.Join(inputDir, name)})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ChainID < out[j].ChainID })
	return out, nil
}

// Run executes the first transformation pass: load the category
// index (fatal when missing), then per chain read, normalize and
// write. Chains are processed sequentially; a failing chain skips its
// write, is reported at the end and does not stop the other chains.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	logger = logger.With(zap.String("run_id", uuid.NewString()))

	cats, err := LoadCategories(cfg.CategoriesFile)
	if err != nil {
		return err
	}
	logger.Info("category index loaded",
		zap.String("file", cfg.CategoriesFile),
		zap.Int("titles", len(cats)))

	files, err := DiscoverChainFiles(cfg.InputDir, cfg.Chains)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		logger.Warn("no chain exports found", zap.String("input_dir", cfg.InputDir))
		return nil
	}

	var failures []error
	for _, cf := range files {
		if err := ctx.Err(); err != nil {
			return err
		}

		rows, err := csvio.ReadFile(cf.Path)
		if err != nil {
			logger.Error("chain export unreadable", zap.String("chain", cf.ChainID), zap.Error(err))
			metrics.ChainFailures.WithLabelValues(cf.ChainID).Inc()
			failures = append(failures, fmt.Errorf("chain %s: %w", cf.ChainID, err))
			continue
		}

		ds, err := TransformChain(cf.ChainID, rows, cats, logger)
		if err != nil {
			logger.Error("chain transform failed", zap.String("chain", cf.ChainID), zap.Error(err))
			metrics.ChainFailures.WithLabelValues(cf.ChainID).Inc()
			failures = append(failures, err)
			continue
		}

		if err := WriteChainDataset(cfg.DataDir, ds); err != nil {
			logger.Error("chain write failed", zap.String("chain", cf.ChainID), zap.Error(err))
			metrics.ChainFailures.WithLabelValues(cf.ChainID).Inc()
			failures = append(failures, err)
			continue
		}

		logger.Info("chain transformed",
			zap.String("chain", cf.ChainID),
			zap.Int("proposals", len(ds.Proposals)),
			zap.Int("validators", len(ds.Validators)),
			zap.Int("votes", len(ds.Votes)))
	}

	return errors.Join(failures...)
}
