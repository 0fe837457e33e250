package frames

import (
	"github.com/nguyentantai21042004/video-analyzer/internal/config"
	"github.com/nguyentantai21042004/video-analyzer/internal/logger"
	"github.com/nguyentantai21042004/video-analyzer/pkg/executor"
)

type implSampler struct {
	enabled     bool
	interval    int
	maxCount    int
	maxDuration float64
	ffmpegPath  string
	outputDir   string
	executor    executor.Executor
	logger      logger.Logger
}

// New creates a Sampler writing into {output}/{runID}/screenshots.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Sampler {
	return &implSampler{
		enabled:     cfg.Screenshots.Enabled,
		interval:    cfg.Screenshots.Interval,
		maxCount:    cfg.Screenshots.Max,
		maxDuration: float64(cfg.FFmpeg.MaxVideoDuration),
		ffmpegPath:  cfg.FFmpeg.BinaryPath,
		outputDir:   cfg.Paths.Output,
		executor:    exec,
		logger:      log,
	}
}
