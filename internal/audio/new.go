package audio

import (
	"github.com/google/uuid"

	"github.com/nguyentantai21042004/video-analyzer/internal/config"
	"github.com/nguyentantai21042004/video-analyzer/internal/logger"
	"github.com/nguyentantai21042004/video-analyzer/pkg/executor"
)

type implExtractor struct {
	ffmpegPath string
	sampleRate int
	tempDir    string
	executor   executor.Executor
	logger     logger.Logger
	newID      func() string
}

// New creates an Extractor writing waveforms into the temp directory.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Extractor {
	return &implExtractor{
		ffmpegPath: cfg.FFmpeg.BinaryPath,
		sampleRate: cfg.FFmpeg.SampleRate,
		tempDir:    cfg.Paths.Temp,
		executor:   exec,
		logger:     log,
		newID:      uuid.NewString,
	}
}
