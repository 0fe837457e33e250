package summarizer

import (
	"context"

	"github.com/nguyentantai21042004/video-analyzer/internal/models"
)

const temperature = 0.7

// GenerateNotes produces Markdown notes in the requested style.
func (s *implSummarizer) GenerateNotes(ctx context.Context, transcript string, style models.Style, customPrompt string) (string, error) {
	s.logger.Debug(ctx, "Generating %s notes", style)
	return s.backend.complete(ctx, buildNotesPrompt(transcript, style, customPrompt))
}

// GenerateSummary produces a short summary of the transcript.
func (s *implSummarizer) GenerateSummary(ctx context.Context, transcript string) (string, error) {
	s.logger.Debug(ctx, "Generating summary")
	return s.backend.complete(ctx, buildSummaryPrompt(transcript))
}
