package processor

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/nguyentantai21042004/video-analyzer/internal/models"
)

// cleanup removes the run's temporary files unless they are kept.
// A local source video is never removed.
func (p *implProcessor) cleanup(ctx context.Context, video models.Video, audioPath string) {
	if p.cfg.Output.KeepTempFiles {
		p.logger.Debug(ctx, "Keeping temp files for %s", video.Path)
		return
	}

	if video.Downloaded {
		p.cleanupTempFile(ctx, video.Path)
	}
	if audioPath != "" {
		p.cleanupTempFile(ctx, audioPath)
	}
}

// cleanupTempFile removes a temporary file, logs warning if fails
func (p *implProcessor) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return
		}
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}
