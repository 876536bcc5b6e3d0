package query

import (
	"context"

	"github.com/fsnotify/fsnotify"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/govlens-network/govlens/app/query/types"
	"github.com/govlens-network/govlens/pkg/config"
	"github.com/govlens-network/govlens/pkg/logging"
)

// Initialize initializes the application.
func Initialize(ctx context.Context) *types.App {
	logger, err := logging.New()
	if err != nil {
		// nothing else to do here, we'll just log to stderr
		panic(err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Unable to load configuration", zap.Error(err))
	}

	app := &types.App{
		Config: cfg,
		Logger: logger,
	}

	// The data root may not exist until the first pipeline run; serve
	// anyway and let the watcher/rescan pick chains up later.
	if err := app.RefreshChains(); err != nil {
		logger.Warn("data root not readable yet", zap.String("data_dir", cfg.DataDir), zap.Error(err))
	} else {
		logger.Info("chains discovered", zap.Strings("chains", app.ChainIDs()))
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Warn("filesystem watcher unavailable, chain discovery will rely on rescans", zap.Error(err))
	} else if err := watcher.Add(cfg.DataDir); err != nil {
		logger.Warn("cannot watch data root", zap.String("data_dir", cfg.DataDir), zap.Error(err))
		_ = watcher.Close()
	} else {
		app.Watcher = watcher
	}

	if cfg.RefreshCron != "" {
		c := cron.New()
		if _, err := c.AddFunc(cfg.RefreshCron, func() { app.RunPipeline(ctx) }); err != nil {
			logger.Fatal("Invalid refresh cron spec", zap.String("spec", cfg.RefreshCron), zap.Error(err))
		}
		app.Cron = c
		logger.Info("scheduled pipeline refresh enabled", zap.String("spec", cfg.RefreshCron))
	}

	return app
}
