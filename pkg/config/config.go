package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/govlens-network/govlens/pkg/utils"
)

// Config holds the shared settings for the pipeline commands and the
// query server. Values come from an optional YAML file (CONFIG_PATH),
// with individual env vars overriding whatever the file set.
type Config struct {
	// InputDir holds the raw governance exports: one
	// <chain>_proposals.csv per chain plus the category CSV.
	InputDir string `yaml:"input_dir"`
	// DataDir is the serving root; the pipeline writes one directory
	// per chain underneath it.
	DataDir string `yaml:"data_dir"`
	// CategoriesFile is the title -> category enhancement CSV.
	CategoriesFile string `yaml:"categories_file"`
	// Addr is the query server bind address.
	Addr string `yaml:"addr"`
	// RefreshCron, when set, schedules full pipeline re-runs in the
	// query server (robfig/cron spec).
	RefreshCron string `yaml:"refresh_cron"`
	// Chains pins the set of chains to process. Empty means discover
	// from the input directory's file names.
	Chains []string `yaml:"chains"`
}

const (
	defaultInputDir = "public/new_data"
	defaultDataDir  = "public/data"
	defaultAddr     = ":3001"
)

// Load reads CONFIG_PATH (if any) and applies env overrides.
func Load() (*Config, error) {
	cfg := &Config{
		InputDir: defaultInputDir,
		DataDir:  defaultDataDir,
		Addr:     defaultAddr,
	}

	if path := utils.Env("CONFIG_PATH", ""); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	cfg.InputDir = utils.Env("INPUT_DIR", cfg.InputDir)
	cfg.DataDir = utils.Env("DATA_DIR", cfg.DataDir)
	cfg.CategoriesFile = utils.Env("CATEGORIES_FILE", cfg.CategoriesFile)
	cfg.Addr = utils.Env("ADDR", cfg.Addr)
	cfg.RefreshCron = utils.Env("REFRESH_CRON", cfg.RefreshCron)

	if cfg.CategoriesFile == "" {
		cfg.CategoriesFile = filepath.Join(cfg.InputDir, "proposal_categories_enhanced.csv")
	}
	cfg.Chains = utils.Dedup(cfg.Chains)

	return cfg, nil
}
