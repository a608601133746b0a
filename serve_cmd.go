package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aggroot/pokertools/internal/httpapi"
	"github.com/aggroot/pokertools/internal/query"
	"github.com/aggroot/pokertools/internal/warehouse"
)

// ServeCmd serves the range query API over HTTP, backed by an
// already-ingested warehouse (§6).
type ServeCmd struct {
	DB   string `required:"" help:"Path to the range warehouse to serve"`
	Host string `default:"127.0.0.1" help:"Host to bind to"`
	Port int    `default:"8080" help:"Port to bind to"`
}

func (c *ServeCmd) Run() error {
	store, err := warehouse.OpenExisting(c.DB)
	if err != nil {
		return fmt.Errorf("open warehouse: %w", err)
	}
	defer store.Close()

	svc := query.NewService(store.DB())
	srv := httpapi.NewServer(net.JoinHostPort(c.Host, fmt.Sprintf("%d", c.Port)), svc)

	ctx := setupSignalHandler()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}

func setupSignalHandler() context.Context {
	ctx, cancel := context.WithCancel(context.Background())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		slog.Info("received signal", "signal", sig.String())
		cancel()
	}()

	return ctx
}
