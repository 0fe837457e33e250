package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/nguyentantai21042004/video-analyzer/internal/failure"
	"github.com/nguyentantai21042004/video-analyzer/internal/logger"
	"github.com/nguyentantai21042004/video-analyzer/internal/models"
	"github.com/nguyentantai21042004/video-analyzer/internal/processor"
)

const errorPrefix = "VideoAnalyzer error: "

func cmdRun(args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config file")
	fs.Parse(args)

	ctx := context.Background()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return respond(ctx, os.Stdout, logger.New("warn"), nil, err)
	}

	log := logger.New(cfg.LogLevel())
	proc := newProcessor(ctx, cfg, log)

	return serve(ctx, os.Stdin, os.Stdout, proc, log)
}

// serve decodes one request from in, runs it and writes the response to out.
// The returned error is the run's failure, if any.
func serve(ctx context.Context, in io.Reader, out io.Writer, proc processor.Processor, log logger.Logger) error {
	var req models.Request
	if err := json.NewDecoder(in).Decode(&req); err != nil {
		return respond(ctx, out, log, nil, failure.Wrap(failure.InvalidInput, err, "decode request"))
	}

	result, err := proc.Analyze(ctx, req)
	return respond(ctx, out, log, result, err)
}

func respond(ctx context.Context, out io.Writer, log logger.Logger, result *models.Result, runErr error) error {
	resp := models.Response{Status: models.StatusSuccess, Result: result}

	if runErr != nil {
		var fe *failure.Error
		if !errors.As(runErr, &fe) {
			runErr = failure.Wrap(failure.InternalError, runErr, "unexpected failure")
		}

		log.Debug(ctx, "Run failed with %s", failure.KindOf(runErr))
		for e := runErr; e != nil; e = errors.Unwrap(e) {
			log.Debug(ctx, "  cause %T: %v", e, e)
		}

		resp = models.Response{Status: models.StatusError, Error: errorPrefix + runErr.Error()}
	}

	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("write response: %w", err)
	}

	return runErr
}
