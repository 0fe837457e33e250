package source

import (
	"context"

	"github.com/nguyentantai21042004/video-analyzer/internal/models"
)

// Resolver turns a URL or local path into a playable video file.
type Resolver interface {
	Resolve(ctx context.Context, reference string) (models.Video, error)
}
