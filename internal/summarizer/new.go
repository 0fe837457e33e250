package summarizer

import (
	"context"
	"net/http"

	"github.com/nguyentantai21042004/video-analyzer/internal/config"
	"github.com/nguyentantai21042004/video-analyzer/internal/failure"
	"github.com/nguyentantai21042004/video-analyzer/internal/logger"
	"github.com/nguyentantai21042004/video-analyzer/internal/models"
)

type implSummarizer struct {
	backend completer
	logger  logger.Logger
}

// New creates a Summarizer for the configured provider: an OpenAI-compatible
// chat completions endpoint, or Gemini. Missing credentials yield ConfigurationError.
func New(cfg *config.Config, client *http.Client, log logger.Logger) (Summarizer, error) {
	if cfg.AI.APIKey == "" {
		return nil, failure.New(failure.ConfigurationError, "AI API key is not configured")
	}

	var backend completer
	switch cfg.AI.Provider {
	case config.ProviderGemini:
		backend = newGeminiBackend(cfg.AI, log)
	default:
		if cfg.AI.APIURL == "" {
			return nil, failure.New(failure.ConfigurationError, "AI API URL is not configured")
		}
		if client == nil {
			client = http.DefaultClient
		}
		backend = newChatBackend(cfg.AI, client, log)
	}

	return &implSummarizer{
		backend: backend,
		logger:  log,
	}, nil
}

type unconfigured struct {
	err error
}

// Unconfigured returns a Summarizer that fails every call with err.
func Unconfigured(err error) Summarizer {
	return &unconfigured{err: err}
}

func (u *unconfigured) GenerateNotes(ctx context.Context, transcript string, style models.Style, customPrompt string) (string, error) {
	return "", u.err
}

func (u *unconfigured) GenerateSummary(ctx context.Context, transcript string) (string, error) {
	return "", u.err
}
