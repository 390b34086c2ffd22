package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/dongledger/internal/backend"
	"github.com/mmynk/dongledger/internal/config"
	"github.com/mmynk/dongledger/internal/httpapi"
	"github.com/mmynk/dongledger/internal/ledger"
	"github.com/mmynk/dongledger/internal/middleware"
	"github.com/mmynk/dongledger/internal/report"
	"github.com/mmynk/dongledger/internal/service"
	"github.com/mmynk/dongledger/pkg/api/apiconnect"
	"github.com/mmynk/dongledger/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional; the environment wins over .env.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := backend.Open(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer store.Close()

	book, err := ledger.OpenBook(ctx, store, ledger.NewReducer(nil),
		ledger.WithLogger(slog.Default()),
		ledger.WithRegisterer(prometheus.DefaultRegisterer),
	)
	if err != nil {
		return err
	}
	slog.Info("Ledger loaded", "app_name", book.State().AppName, "backend", cfg.Store.Backend)

	metrics := middleware.NewMetrics(prometheus.DefaultRegisterer)
	interceptors := connect.WithInterceptors(
		middleware.LoggingInterceptor(),
		metrics.Interceptor(),
	)

	ledgerPath, ledgerHandler := apiconnect.NewLedgerServiceHandler(
		service.NewLedgerService(book, report.New(cfg.App.ReportLocale)),
		interceptors,
	)
	router := httpapi.New(promhttp.Handler(), httpapi.Route{Path: ledgerPath, Handler: ledgerHandler})

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	h2cHandler := h2c.NewHandler(router, &http2.Server{})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           h2cHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down", "timeout", cfg.App.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}
