package processor

import (
	"github.com/google/uuid"

	"github.com/nguyentantai21042004/video-analyzer/internal/audio"
	"github.com/nguyentantai21042004/video-analyzer/internal/config"
	"github.com/nguyentantai21042004/video-analyzer/internal/frames"
	"github.com/nguyentantai21042004/video-analyzer/internal/logger"
	"github.com/nguyentantai21042004/video-analyzer/internal/saver"
	"github.com/nguyentantai21042004/video-analyzer/internal/source"
	"github.com/nguyentantai21042004/video-analyzer/internal/summarizer"
	"github.com/nguyentantai21042004/video-analyzer/internal/transcriber"
)

// Components are the pipeline stages in execution order.
type Components struct {
	Source      source.Resolver
	Frames      frames.Sampler
	Audio       audio.Extractor
	Transcriber transcriber.Transcriber
	Summarizer  summarizer.Summarizer
	Saver       saver.Saver
}

type implProcessor struct {
	cfg    *config.Config
	stages Components
	logger logger.Logger
	newID  func() string
}

// New creates a new Processor instance
func New(cfg *config.Config, stages Components, log logger.Logger) Processor {
	return &implProcessor{
		cfg:    cfg,
		stages: stages,
		logger: log,
		newID:  uuid.NewString,
	}
}
