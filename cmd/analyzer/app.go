package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/nguyentantai21042004/video-analyzer/internal/audio"
	"github.com/nguyentantai21042004/video-analyzer/internal/config"
	"github.com/nguyentantai21042004/video-analyzer/internal/failure"
	"github.com/nguyentantai21042004/video-analyzer/internal/frames"
	"github.com/nguyentantai21042004/video-analyzer/internal/logger"
	"github.com/nguyentantai21042004/video-analyzer/internal/processor"
	"github.com/nguyentantai21042004/video-analyzer/internal/saver"
	"github.com/nguyentantai21042004/video-analyzer/internal/source"
	"github.com/nguyentantai21042004/video-analyzer/internal/summarizer"
	"github.com/nguyentantai21042004/video-analyzer/internal/transcriber"
	"github.com/nguyentantai21042004/video-analyzer/pkg/executor"
)

// loadConfig loads configuration and prepares the artifact directories.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, failure.Wrap(failure.ConfigurationError, err, "load config")
	}
	if err := ensureDirectories(cfg); err != nil {
		return nil, failure.Wrap(failure.InternalError, err, "prepare directories")
	}
	return cfg, nil
}

// newProcessor wires every pipeline stage. Clients without credentials are
// replaced by stubs that fail only if a run reaches them.
func newProcessor(ctx context.Context, cfg *config.Config, log logger.Logger) processor.Processor {
	exec := executor.New()
	client := &http.Client{}

	tr, err := transcriber.New(cfg, client, log)
	if err != nil {
		log.Debug(ctx, "Transcriber disabled: %v", err)
		tr = transcriber.Unconfigured(err)
	}

	sum, err := summarizer.New(cfg, client, log)
	if err != nil {
		log.Debug(ctx, "Summarizer disabled: %v", err)
		sum = summarizer.Unconfigured(err)
	}

	return processor.New(cfg, processor.Components{
		Source:      source.New(cfg, exec, log),
		Frames:      frames.New(cfg, exec, log),
		Audio:       audio.New(cfg, exec, log),
		Transcriber: tr,
		Summarizer:  sum,
		Saver:       saver.New(cfg, log),
	}, log)
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Temp,
		cfg.Paths.Output,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
