package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/cashti-console/internal/handlers/v1/auth"
	"github.com/carson-networks/cashti-console/internal/handlers/v1/common"
	"github.com/carson-networks/cashti-console/internal/handlers/v1/documents"
	"github.com/carson-networks/cashti-console/internal/handlers/v1/phone"
	"github.com/carson-networks/cashti-console/internal/handlers/v1/preferences"
	"github.com/carson-networks/cashti-console/internal/handlers/v1/status"
	"github.com/carson-networks/cashti-console/internal/handlers/v1/transactions"
	"github.com/carson-networks/cashti-console/internal/handlers/v1/users"
	"github.com/carson-networks/cashti-console/internal/handlers/v1/wallet"
	"github.com/carson-networks/cashti-console/internal/logging"
	"github.com/carson-networks/cashti-console/internal/service"
)

const shutdownTimeout = 15 * time.Second

type registrar interface {
	Register(api huma.API)
}

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Database status.Pinger
	Dates    common.Dates
}

// Handler builds the mux serving /status and the console API.
func (r *Rest) Handler() http.Handler {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Database)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	api := humago.New(mux, huma.DefaultConfig("Cash Ti Machann Console", "1.0.0"))
	api.UseMiddleware(logging.Middleware(r.Logger))

	svc := r.Service
	handlers := []registrar{
		auth.NewLoginHandler(svc.Auth),
		users.NewListUsersHandler(svc.Users, r.Dates),
		users.NewExportUsersHandler(svc.Users, r.Dates),
		users.NewGetUserHandler(svc.Users),
		users.NewClientTransactionsHandler(svc.Users, r.Dates),
		users.NewToggleStatusHandler(svc.Users),
		wallet.NewHandler(svc.Wallets),
		transactions.NewListTransactionsHandler(svc.Transactions, r.Dates),
		transactions.NewUpdateStatusHandler(svc.Transactions),
		documents.NewReviewQueueHandler(svc.Documents),
		documents.NewReviewHandler(svc.Documents),
		preferences.NewHandler(svc.Auth, svc.Preferences),
		phone.NewHandler(),
	}
	for _, h := range handlers {
		h.Register(api)
	}

	return mux
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(60) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
