package transform

import (
	"context"

	"go.uber.org/zap"

	"github.com/govlens-network/govlens/pkg/config"
	"github.com/govlens-network/govlens/pkg/logging"
	"github.com/govlens-network/govlens/pkg/pipeline"
)

// App is the first-pass batch command: CSV exports in, per-chain
// proposals/validators/votes JSON out.
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

// Run executes one transformation pass and returns the aggregated
// per-chain errors, if any.
func (a *App) Run(ctx context.Context) error {
	a.Logger.Info("transform pass starting",
		zap.String("input_dir", a.Config.InputDir),
		zap.String("data_dir", a.Config.DataDir))
	return pipeline.Run(ctx, a.Config, a.Logger)
}
