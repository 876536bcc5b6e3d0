package types

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/puzpuzpuz/xsync/v4"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/govlens-network/govlens/pkg/config"
	"github.com/govlens-network/govlens/pkg/metrics"
	"github.com/govlens-network/govlens/pkg/pipeline"
	"github.com/govlens-network/govlens/pkg/reclassify"
)

type App struct {
	Config *config.Config
	// Zap Logger
	Logger *zap.Logger
	// Server represents the HTTP server instance used to handle incoming client requests.
	Server *http.Server
	// Cron drives optional scheduled pipeline re-runs (REFRESH_CRON).
	Cron *cron.Cron
	// Watcher refreshes the chain map when the pipeline rewrites the data root.
	Watcher *fsnotify.Watcher

	// chains maps a chain ID to its directory under the data root.
	// Rescans build a fresh map and swap the pointer atomically; the
	// watcher, the cron run and request handlers all touch it
	// concurrently.
	chains atomic.Pointer[xsync.Map[string, string]]

	running atomic.Bool
}

// RefreshChains rescans the data root and swaps in a fresh chain map.
func (a *App) RefreshChains() error {
	entries, err := os.ReadDir(a.Config.DataDir)
	if err != nil {
		return err
	}

	fresh := xsync.NewMap[string, string]()
	for _, e := range entries {
		if e.IsDir() {
			fresh.Store(e.Name(), filepath.Join(a.Config.DataDir, e.Name()))
		}
	}
	a.chains.Store(fresh)
	return nil
}

// LoadChainDir resolves a chain's data directory, refreshing the map
// once on a miss in case the pipeline just produced a new chain. A
// non-nil error means the data root itself was unreadable, which is a
// server-side failure rather than an unknown chain.
func (a *App) LoadChainDir(chainID string) (string, bool, error) {
	if m := a.chains.Load(); m != nil {
		if dir, ok := m.Load(chainID); ok {
			return dir, true, nil
		}
	}

	a.Logger.Debug("chain not in map, rescanning data root", zap.String("chain", chainID))
	if err := a.RefreshChains(); err != nil {
		a.Logger.Error("data root rescan failed", zap.Error(err))
		return "", false, err
	}

	dir, ok := a.chains.Load().Load(chainID)
	return dir, ok, nil
}

// ChainIDs returns the known chain IDs in map order.
func (a *App) ChainIDs() []string {
	m := a.chains.Load()
	if m == nil {
		return nil
	}
	var out []string
	m.Range(func(id string, _ string) bool {
		out = append(out, id)
		return true
	})
	return out
}

// RunPipeline executes transform + reclassify against the configured
// input directory. Overlapping invocations are skipped: a run already
// in flight wins.
func (a *App) RunPipeline(ctx context.Context) {
	if !a.running.CompareAndSwap(false, true) {
		a.Logger.Warn("pipeline run already in flight, skipping")
		return
	}
	defer a.running.Store(false)

	result := "ok"
	if err := pipeline.Run(ctx, a.Config, a.Logger); err != nil {
		a.Logger.Error("scheduled transform failed", zap.Error(err))
		result = "error"
	} else if err := reclassify.Run(ctx, a.Config, a.Logger); err != nil {
		a.Logger.Error("scheduled reclassify failed", zap.Error(err))
		result = "error"
	}
	metrics.PipelineRuns.WithLabelValues(result).Inc()

	if err := a.RefreshChains(); err != nil {
		a.Logger.Error("chain map refresh after run failed", zap.Error(err))
	}
}

// WatchDataRoot consumes watcher events until ctx is done, rescanning
// the chain map whenever a directory appears or disappears under the
// data root.
func (a *App) WatchDataRoot(ctx context.Context) {
	if a.Watcher == nil {
		return
	}
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-a.Watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if err := a.RefreshChains(); err != nil {
				a.Logger.Error("chain map refresh failed", zap.Error(err))
			}
		case err, ok := <-a.Watcher.Errors:
			if !ok {
				return
			}
			a.Logger.Warn("data root watcher error", zap.Error(err))
		}
	}
}

// Start starts the application and blocks until ctx is cancelled.
func (a *App) Start(ctx context.Context) {
	go func() { _ = a.Server.ListenAndServe() }()
	go a.WatchDataRoot(ctx)
	if a.Cron != nil {
		a.Cron.Start()
	}

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if a.Cron != nil {
		<-a.Cron.Stop().Done()
	}
	if a.Watcher != nil {
		_ = a.Watcher.Close()
	}

	_ = a.Server.Shutdown(shutdownCtx)
	a.Logger.Info("query server stopped")
}
