package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/nguyentantai21042004/summary-flow/internal/history"
	"github.com/nguyentantai21042004/summary-flow/internal/httpapi"
)

func serveAction(c *cli.Context) error {
	a, err := setup(c)
	if err != nil {
		return err
	}
	defer a.close()

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := history.Open(a.cfg.Paths.Database, a.logger)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           httpapi.New(a.cfg.Server, a.processor, a.summarizer, store, a.logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	a.logger.Info(ctx, "========================================")
	a.logger.Info(ctx, "Summary API listening on %s", a.cfg.Server.Addr)
	a.logger.Info(ctx, "History database: %s", a.cfg.Paths.Database)
	a.logger.Info(ctx, "Allowed origin: %s", a.cfg.Server.AllowedOrigin)
	a.logger.Info(ctx, "========================================")

	select {
	case <-ctx.Done():
		a.logger.Info(context.Background(), "Shutdown signal received")
	case err := <-errChan:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	a.logger.Info(shutdownCtx, "Summary API stopped")
	return nil
}
