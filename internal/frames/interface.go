package frames

import (
	"context"

	"github.com/nguyentantai21042004/video-analyzer/internal/models"
)

// Sampler extracts evenly spaced still images from a video.
// Sampling is best-effort: failures yield fewer (or no) screenshots, never an error.
type Sampler interface {
	Sample(ctx context.Context, videoPath, runID string, mode models.Mode) []string
}
