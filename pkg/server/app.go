package server

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"StonkWatch/pkg/config"
	xhttp "StonkWatch/pkg/http"
	applogger "StonkWatch/pkg/logger"
)

// App encapsulates the application lifecycle: it owns the HTTP server and
// any closable infrastructure, starts everything, and blocks until a
// shutdown signal arrives.
type App struct {
	cfg     *config.Config
	logger  *applogger.Logger
	server  *xhttp.Server
	closers []io.Closer
}

// New creates the application around its HTTP handlers.
func New(cfg *config.Config, l *applogger.Logger, handler xhttp.Handler, closers ...io.Closer) *App {
	srv := xhttp.NewServer(handler, l,
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
	)
	return &App{cfg: cfg, logger: l, server: srv, closers: closers}
}

// Run starts the HTTP server and blocks until interrupted.
func (a *App) Run() error {
	if err := a.server.Start(); err != nil {
		return err
	}
	a.logger.Info("application started",
		applogger.String("environment", a.cfg.Environment),
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("cache_backend", a.cfg.Cache.Backend))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown()
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.server.Stop(ctx); err != nil {
		a.logger.Error("http shutdown failed", applogger.Error(err))
	}
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			a.logger.Error("close failed", applogger.Error(err))
		}
	}
	a.logger.Info("shutdown complete")
	return nil
}
