package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kinur1/FutureInsight/internal/api"
	"github.com/kinur1/FutureInsight/internal/provider"
	"github.com/kinur1/FutureInsight/internal/viewer"
	"github.com/kinur1/FutureInsight/pkg/config"
)

// App represents the main application
type App struct {
	cfg    *config.Config
	logger *logrus.Logger
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// Core components
	provider  provider.HistoryProvider
	pipeline  *viewer.Pipeline
	apiServer *api.Server
}

// New creates a new application instance
func New(cfg *config.Config, logger *logrus.Logger) *App {
	ctx, cancel := context.WithCancel(context.Background())

	return &App{
		cfg:    cfg,
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Initialize initializes all application components
func (a *App) Initialize() error {
	if err := a.initializeProvider(); err != nil {
		return fmt.Errorf("failed to initialize provider: %w", err)
	}

	if err := a.initializeAPIServer(); err != nil {
		return fmt.Errorf("failed to initialize API server: %w", err)
	}

	return nil
}

// Start starts the application
func (a *App) Start() error {
	// Start API server
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.apiServer.Start(); err != nil {
			a.logger.WithError(err).Error("API server error")
		}
	}()

	return nil
}

// Stop gracefully stops the application
func (a *App) Stop() error {
	a.logger.Info("Stopping application...")

	// Cancel context to signal shutdown
	a.cancel()

	// Stop API server with timeout
	if a.apiServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.apiServer.Stop(ctx); err != nil {
			a.logger.WithError(err).Error("Error stopping API server")
		}
	}

	// Wait for goroutines with timeout
	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		a.logger.Info("All goroutines stopped")
	case <-time.After(3 * time.Second):
		a.logger.Warn("Timeout waiting for goroutines to finish")
	}

	a.logger.Info("Application stopped successfully")
	return nil
}

// GetContext returns the application context
func (a *App) GetContext() context.Context {
	return a.ctx
}

// GetConfig returns the application configuration
func (a *App) GetConfig() *config.Config {
	return a.cfg
}

// GetLogger returns the application logger
func (a *App) GetLogger() *logrus.Logger {
	return a.logger
}

// Private initialization methods

func (a *App) initializeProvider() error {
	prov, err := provider.New(&a.cfg.Provider, a.logger)
	if err != nil {
		return err
	}
	a.provider = prov

	a.logger.WithField("source", prov.Name()).Info("Market data provider initialized")
	return nil
}

func (a *App) initializeAPIServer() error {
	a.pipeline = viewer.New(a.provider, a.cfg.Viewer.CurrencyPrefix, a.logger)
	a.apiServer = api.NewServer(a.cfg, a.logger, a.provider, a.pipeline)

	return nil
}
