package processor

import (
	"context"

	"github.com/nguyentantai21042004/video-analyzer/internal/models"
)

// Processor runs the analysis pipeline for one request at a time.
type Processor interface {
	// Analyze resolves the source and runs the stages selected by the request mode.
	Analyze(ctx context.Context, req models.Request) (*models.Result, error)
	// Process analyzes a local video with the watch mode and style.
	Process(ctx context.Context, videoPath string) error
}
