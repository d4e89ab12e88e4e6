// Package server wires together the application: configuration, database,
// migrations, services and the HTTP endpoint, plus graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/expenso-app/expenso/internal/logging"
	"github.com/expenso-app/expenso/internal/server/config"
	"github.com/expenso-app/expenso/internal/server/httpapi"
	"github.com/expenso-app/expenso/internal/server/rates"
	"github.com/expenso-app/expenso/internal/server/repositories/repomanager"
	"github.com/expenso-app/expenso/internal/server/services"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	api    *httpapi.Server
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(context.Background(), db); err != nil {
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	api := httpapi.NewServer(
		logger,
		[]byte(c.SecretKey),
		db,
		services.NewExpenseService(db, rm),
		services.NewDirectoryService(db, rm),
		services.NewRuleService(db, rm),
		rates.NewClient(c.RateProviderBaseURL, c.RateRequestTimeout, logger),
		services.NewReceiptService(c),
	)

	return &App{config: c, logger: logger, db: db, api: api}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run serves HTTP until ctx is cancelled or a termination signal arrives,
// then drains in-flight requests before returning.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	srv := &http.Server{
		Addr:    app.config.EndpointAddrHTTP,
		Handler: app.api.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting http server", "addr", app.config.EndpointAddrHTTP)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	if err := app.db.Close(); err != nil {
		return fmt.Errorf("db close error: %w", err)
	}
	return nil
}
