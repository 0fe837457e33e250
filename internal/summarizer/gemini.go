package summarizer

import (
	"context"
	"time"

	"google.golang.org/genai"

	"github.com/nguyentantai21042004/video-analyzer/internal/config"
	"github.com/nguyentantai21042004/video-analyzer/internal/failure"
	"github.com/nguyentantai21042004/video-analyzer/internal/logger"
)

// geminiBackend generates text through the Gemini API.
type geminiBackend struct {
	apiKey    string
	baseURL   string
	model     string
	maxTokens int
	timeout   time.Duration
	logger    logger.Logger
}

func newGeminiBackend(cfg config.AIConfig, log logger.Logger) *geminiBackend {
	return &geminiBackend{
		apiKey:    cfg.APIKey,
		baseURL:   cfg.APIURL,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   requestTimeout,
		logger:    log,
	}
}

func (g *geminiBackend) complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	clientCfg := &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if g.baseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: g.baseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return "", failure.Wrap(failure.ConfigurationError, err, "create Gemini client")
	}

	g.logger.Debug(ctx, "Calling Gemini model %s", g.model)

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](temperature),
		MaxOutputTokens: int32(g.maxTokens),
	})
	if err != nil {
		if failure.IsTimeout(err) {
			return "", failure.Wrap(failure.ApiTimeout, err, "Gemini request timed out after %s", g.timeout)
		}
		return "", failure.Wrap(failure.ApiError, err, "generate content")
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", failure.New(failure.ApiError, "malformed response: no candidates")
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return text, nil
}
