package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	internalhttp "call-monitor/internal/http"
	"call-monitor/internal/monitors"
	"call-monitor/internal/quotas"
	"call-monitor/internal/shared/configs"
	"call-monitor/internal/shared/loggers"
	"call-monitor/internal/stores"
)

// App holds all application dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server

	snapshotRefresher monitors.SnapshotRefresher
	backgroundCtx     context.Context
	backgroundCancel  context.CancelFunc
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "call-monitor").
		Logger()

	// Initialize the snapshot pipeline: log store -> scanner -> refresher.
	snapshotHolder := monitors.NewSnapshotHolder()
	callLogStore := stores.NewCallLogStore()
	logScanner := monitors.NewLogScanner(callLogStore, config.Monitor.Sources, config.Monitor.FilesPerSource)
	refresherLogger := appLogger.With().Str(loggers.FieldComponent, "refresher").Logger()
	snapshotRefresher := monitors.NewSnapshotRefresher(
		logScanner,
		snapshotHolder,
		time.Duration(config.Monitor.RefreshIntervalSeconds)*time.Second,
		refresherLogger,
	)

	// Initialize query services over the shared snapshot holder.
	statsService := monitors.NewStatsService(snapshotHolder)
	modelHourlyLimits := quotas.NewLimitTable(config.Limits.ModelHourly)
	userDailyLimits := quotas.NewLimitTable(config.Limits.UserDailyPerModel)
	quotaService := quotas.NewQuotaService(snapshotHolder, modelHourlyLimits, userDailyLimits)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(quotaService, statsService, httpLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:            config,
		appLogger:         appLogger,
		server:            server,
		snapshotRefresher: snapshotRefresher,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting call-monitor service on port %d (log_level=%s, sources=%d, refresh_interval=%ds)",
			app.config.Server.Port,
			app.config.Log.Level,
			len(app.config.Monitor.Sources),
			app.config.Monitor.RefreshIntervalSeconds)

	// start the background refresh cycle
	app.backgroundCtx, app.backgroundCancel = context.WithCancel(context.Background())
	app.snapshotRefresher.Start(app.backgroundCtx)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	// 1) Shutdown server
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	// 2) Cancel the background refresher
	if app.backgroundCancel != nil {
		app.backgroundCancel()
		app.appLogger.Info().Msg("Background refresher cancelled")
	}

	// 3) Wait for the refresher goroutine to finish
	app.snapshotRefresher.Stop()
	app.appLogger.Info().Msg("Background refresher stopped")

	return nil
}
