package query

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/govlens-network/govlens/app/query/controller"
	"github.com/govlens-network/govlens/app/query/types"
	"github.com/govlens-network/govlens/pkg/utils"
)

// NewServer creates and returns a new Server instance with the given http.Server and zap.Logger.
func NewServer(app *types.App) error {
	ctler := controller.NewController(app)
	router, err := ctler.NewRouter()
	if err != nil {
		return err
	}

	// use <ip>:<port> to bind to a specific interface or :<port> to bind to all interfaces
	addr := app.Config.Addr

	app.Server = &http.Server{
		Addr:              addr,
		Handler:           controller.WithCORS(router),
		ReadHeaderTimeout: time.Duration(utils.EnvInt("READ_HEADER_TIMEOUT_SECONDS", 10)) * time.Second,
	}
	app.Logger.Info("Starting server", zap.String("addr", addr))

	return nil
}
