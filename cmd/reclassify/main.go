package main

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/govlens-network/govlens/app/reclassifier"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	defer cancel()

	app := reclassifier.Initialize()

	if err := app.Run(ctx); err != nil {
		app.Logger.Fatal("Reclassify pass failed", zap.Error(err))
	}
}
