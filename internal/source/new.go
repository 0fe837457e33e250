package source

import (
	"time"

	"github.com/nguyentantai21042004/video-analyzer/internal/config"
	"github.com/nguyentantai21042004/video-analyzer/internal/logger"
	"github.com/nguyentantai21042004/video-analyzer/pkg/executor"
)

type implResolver struct {
	tempDir    string
	binaryPath string
	format     string
	timeout    time.Duration
	executor   executor.Executor
	logger     logger.Logger
	newID      func() string
}

// New creates a Resolver that downloads remote references with yt-dlp.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Resolver {
	return &implResolver{
		tempDir:    cfg.Paths.Temp,
		binaryPath: cfg.Download.BinaryPath,
		format:     cfg.Download.Format,
		timeout:    cfg.DownloadTimeout(),
		executor:   exec,
		logger:     log,
		newID:      newID,
	}
}
