package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nguyentantai21042004/video-analyzer/internal/config"
	"github.com/nguyentantai21042004/video-analyzer/internal/failure"
	"github.com/nguyentantai21042004/video-analyzer/internal/logger"
)

const (
	completionsPath = "/chat/completions"
	requestTimeout  = 120 * time.Second
)

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// chatBackend talks to an OpenAI-compatible chat completions endpoint.
type chatBackend struct {
	apiKey    string
	endpoint  string
	model     string
	maxTokens int
	timeout   time.Duration
	client    *http.Client
	logger    logger.Logger
}

func newChatBackend(cfg config.AIConfig, client *http.Client, log logger.Logger) *chatBackend {
	return &chatBackend{
		apiKey:    cfg.APIKey,
		endpoint:  normalizeEndpoint(cfg.APIURL),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   requestTimeout,
		client:    client,
		logger:    log,
	}
}

func (c *chatBackend) complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		MaxTokens:   c.maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", failure.Wrap(failure.InternalError, err, "encode completion request")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", failure.Wrap(failure.InternalError, err, "build completion request")
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug(ctx, "Calling AI API: %s", c.endpoint)

	resp, err := c.client.Do(req)
	if err != nil {
		if failure.IsTimeout(err) {
			return "", failure.Wrap(failure.ApiTimeout, err, "AI request timed out after %s", c.timeout)
		}
		return "", failure.Wrap(failure.ApiError, err, "AI request failed")
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if failure.IsTimeout(err) {
			return "", failure.Wrap(failure.ApiTimeout, err, "AI response timed out")
		}
		return "", failure.Wrap(failure.ApiError, err, "read AI response")
	}

	if resp.StatusCode != http.StatusOK {
		return "", failure.API(resp.StatusCode, string(data), "AI request failed")
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil || len(parsed.Choices) == 0 {
		return "", failure.API(resp.StatusCode, string(data), "malformed response")
	}

	content := parsed.Choices[0].Message.Content
	c.logger.Debug(ctx, "AI response received, %d characters", len(content))
	return content, nil
}

// normalizeEndpoint appends the completions sub-path unless already present.
func normalizeEndpoint(apiURL string) string {
	u := strings.TrimRight(apiURL, "/")
	if !strings.HasSuffix(u, completionsPath) {
		u += completionsPath
	}
	return u
}
