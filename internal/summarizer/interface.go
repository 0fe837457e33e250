package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/video-analyzer/internal/models"
)

// Summarizer turns a transcript into LLM-generated notes or a short summary.
type Summarizer interface {
	GenerateNotes(ctx context.Context, transcript string, style models.Style, customPrompt string) (string, error)
	GenerateSummary(ctx context.Context, transcript string) (string, error)
}

// completer sends one prompt to a text-generation backend.
type completer interface {
	complete(ctx context.Context, prompt string) (string, error)
}
