package saver

import (
	"time"

	"github.com/nguyentantai21042004/video-analyzer/internal/config"
	"github.com/nguyentantai21042004/video-analyzer/internal/logger"
)

type implSaver struct {
	outputDir  string
	exportDocx bool
	logger     logger.Logger
	now        func() time.Time
}

// New creates a Saver rooted at the configured output directory.
func New(cfg *config.Config, log logger.Logger) Saver {
	return &implSaver{
		outputDir:  cfg.Paths.Output,
		exportDocx: cfg.Output.ExportDocx,
		logger:     log,
		now:        time.Now,
	}
}
