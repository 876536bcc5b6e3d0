package reclassifier

import (
	"context"

	"go.uber.org/zap"

	"github.com/govlens-network/govlens/pkg/config"
	"github.com/govlens-network/govlens/pkg/logging"
	"github.com/govlens-network/govlens/pkg/reclassify"
)

// App is the second-pass batch command: proposals.json in,
// proposals_v2.json out, per chain directory under the data root.
type App struct {
	Config *config.Config
	Logger *zap.Logger
}

// Initialize initializes the application.
func Initialize() *App {
	logger, err := logging.New()
	if err != nil {
		// nothing else to do here, we'll just log to stderr
		panic(err)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Unable to load configuration", zap.Error(err))
	}

	return &App{Config: cfg, Logger: logger}
}

// Run executes one reclassification pass over the data root.
func (a *App) Run(ctx context.Context) error {
	a.Logger.Info("reclassify pass starting", zap.String("data_dir", a.Config.DataDir))
	return reclassify.Run(ctx, a.Config, a.Logger)
}
