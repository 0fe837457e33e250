package transcriber

import (
	"context"
	"net/http"
	"time"

	"github.com/nguyentantai21042004/video-analyzer/internal/config"
	"github.com/nguyentantai21042004/video-analyzer/internal/failure"
	"github.com/nguyentantai21042004/video-analyzer/internal/logger"
)

const requestTimeout = 300 * time.Second

type implTranscriber struct {
	apiKey          string
	endpoint        string
	model           string
	defaultLanguage string
	timeout         time.Duration
	client          *http.Client
	logger          logger.Logger
}

// New creates a Transcriber for an OpenAI-compatible /audio/transcriptions endpoint.
// It fails with ConfigurationError when the key or URL is missing.
func New(cfg *config.Config, client *http.Client, log logger.Logger) (Transcriber, error) {
	if cfg.Whisper.APIKey == "" {
		return nil, failure.New(failure.ConfigurationError, "whisper API key is not configured")
	}
	if cfg.Whisper.APIURL == "" {
		return nil, failure.New(failure.ConfigurationError, "whisper API URL is not configured")
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &implTranscriber{
		apiKey:          cfg.Whisper.APIKey,
		endpoint:        normalizeEndpoint(cfg.Whisper.APIURL),
		model:           cfg.Whisper.Model,
		defaultLanguage: cfg.Whisper.Language,
		timeout:         requestTimeout,
		client:          client,
		logger:          log,
	}, nil
}

type unconfigured struct {
	err error
}

// Unconfigured returns a Transcriber that fails every call with err.
// Runs that never reach transcription do not need credentials.
func Unconfigured(err error) Transcriber {
	return &unconfigured{err: err}
}

func (u *unconfigured) Transcribe(ctx context.Context, audioPath, language string) (string, error) {
	return "", u.err
}
