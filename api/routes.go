package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/pocket-ledger/internal/cache"
	"github.com/carson-networks/pocket-ledger/internal/config"
	accountHandlers "github.com/carson-networks/pocket-ledger/internal/handlers/v1/account"
	categoryHandlers "github.com/carson-networks/pocket-ledger/internal/handlers/v1/category"
	"github.com/carson-networks/pocket-ledger/internal/handlers/v1/export"
	"github.com/carson-networks/pocket-ledger/internal/handlers/v1/settings"
	"github.com/carson-networks/pocket-ledger/internal/handlers/v1/state"
	"github.com/carson-networks/pocket-ledger/internal/handlers/v1/stats"
	"github.com/carson-networks/pocket-ledger/internal/handlers/v1/status"
	transactionHandlers "github.com/carson-networks/pocket-ledger/internal/handlers/v1/transaction"
	"github.com/carson-networks/pocket-ledger/internal/logging"
	"github.com/carson-networks/pocket-ledger/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Config   config.ServerConfig
	Service  *service.Service
	Cache    *cache.Store
	Database status.Database
}

// Routes builds the mux with every endpoint registered.
func (r *Rest) Routes() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Database)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Pocket Ledger API", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))

	accountHandlers.Register(api, r.Service.Account)
	categoryHandlers.NewHandler(r.Service.Category).Register(api)
	transactionHandlers.Register(api, r.Service.Transaction)
	stats.NewHandler(r.Service.Stats).Register(api)
	export.NewHandler(r.Service.Export).Register(api)
	settings.NewHandler(r.Service.Settings).Register(api)
	state.NewHandler(r.Cache).Register(api)

	return mux
}

// Serve listens until ctx is cancelled, then drains in-flight requests for
// up to the configured shutdown timeout.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              r.Config.Address,
		Handler:           r.Routes(),
		ReadTimeout:       r.Config.ReadTimeout,
		WriteTimeout:      r.Config.WriteTimeout,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("address", r.Config.Address).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
		return err
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), r.Config.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
