package saver

import (
	"context"

	"github.com/nguyentantai21042004/video-analyzer/internal/models"
)

// Saver persists a run's result under {output}/{runID}.
// Save is best-effort: any failure yields an empty map, never an error.
type Saver interface {
	Save(ctx context.Context, result *models.Result, runID string, screenshots []string) map[string]string
}
