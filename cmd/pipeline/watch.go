package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/nguyentantai21042004/summary-flow/internal/watcher"
)

func watchAction(c *cli.Context) error {
	a, err := setup(c)
	if err != nil {
		return err
	}
	defer a.close()

	if err := ensureDirectories(a.cfg); err != nil {
		return err
	}

	handler := watcher.NewInboxHandler(a.cfg.Paths, a.processor, defaultOptions(a.cfg), a.logger)
	w, err := watcher.New(a.cfg.Paths.Input, handler, a.logger, a.cfg.Performance.MaxConcurrent)
	if err != nil {
		return err
	}
	defer w.Stop()

	// Create context with cancellation
	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	a.logger.Info(ctx, "========================================")
	a.logger.Info(ctx, "Summary inbox is ready!")
	a.logger.Info(ctx, "Monitoring: %s", a.cfg.Paths.Input)
	a.logger.Info(ctx, "Output: %s", a.cfg.Paths.Output)
	a.logger.Info(ctx, "Concurrent: %d documents at once", a.cfg.Performance.MaxConcurrent)
	a.logger.Info(ctx, "Press Ctrl+C to stop")
	a.logger.Info(ctx, "========================================")

	select {
	case <-sigChan:
		a.logger.Info(ctx, "Shutdown signal received")
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			a.logger.Error(ctx, "Watcher error: %v", err)
			return err
		}
		return nil
	}

	a.logger.Info(ctx, "Shutting down gracefully...")
	cancel()
	<-done
	a.logger.Info(context.Background(), "Summary inbox stopped")
	return nil
}
