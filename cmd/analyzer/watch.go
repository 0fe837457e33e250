package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/video-analyzer/internal/logger"
	"github.com/nguyentantai21042004/video-analyzer/internal/watcher"
)

func cmdWatch(args []string) error {
	fs := flag.NewFlagSet("watch", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config file")
	fs.Parse(args)

	ctx := context.Background()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return err
	}

	log := logger.New(cfg.LogLevel())

	if err := os.MkdirAll(cfg.Watch.Input, 0755); err != nil {
		log.Error(ctx, "Failed to create watch directory: %v", err)
		return err
	}

	proc := newProcessor(ctx, cfg, log)

	w, err := watcher.New(cfg.Watch.Input, proc.Process, log)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		return err
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			errChan <- err
		}
	}()

	log.Info(ctx, "Video Analyzer is watching %s (mode %s, style %s)", cfg.Watch.Input, cfg.Watch.Mode, cfg.Watch.Style)
	log.Info(ctx, "Output: %s", cfg.Paths.Output)
	log.Info(ctx, "Press Ctrl+C to stop")

	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Watcher error: %v", err)
		return err
	}

	cancel()
	log.Info(ctx, "Video Analyzer stopped")
	return nil
}
