package source

import (
	"context"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/video-analyzer/internal/failure"
	"github.com/nguyentantai21042004/video-analyzer/internal/models"
	"github.com/nguyentantai21042004/video-analyzer/pkg/executor"
)

// SupportedExtensions lists the local video formats accepted by Resolve.
var SupportedExtensions = []string{".mp4", ".avi", ".mov", ".mkv", ".webm", ".flv", ".m4v"}

// Resolve returns the absolute path of a local video, or downloads a remote one.
func (r *implResolver) Resolve(ctx context.Context, reference string) (models.Video, error) {
	if isLocal(reference) {
		return r.resolveLocal(ctx, reference)
	}
	return r.download(ctx, reference)
}

// IsVideoFile checks if the file has a supported video extension
func IsVideoFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedExtensions {
		if ext == format {
			return true
		}
	}
	return false
}

// isLocal reports whether reference names a file on this machine: an existing
// path, a file:// URI, or a drive-letter style path.
func isLocal(reference string) bool {
	if _, err := os.Stat(reference); err == nil {
		return true
	}
	if u, err := url.Parse(reference); err == nil && u.Scheme == "file" {
		return true
	}
	return strings.Contains(reference, ":") && !strings.HasPrefix(reference, "http")
}

func (r *implResolver) resolveLocal(ctx context.Context, reference string) (models.Video, error) {
	path := strings.TrimPrefix(reference, "file://")

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.Video{}, failure.Wrap(failure.NotFound, err, "local file does not exist: %s", path)
		}
		return models.Video{}, failure.Wrap(failure.InvalidInput, err, "cannot access local file: %s", path)
	}
	if !info.Mode().IsRegular() {
		return models.Video{}, failure.New(failure.InvalidInput, "not a regular file: %s", path)
	}
	if !IsVideoFile(path) {
		return models.Video{}, failure.New(failure.InvalidInput, "unsupported video format: %s", filepath.Ext(path))
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return models.Video{}, failure.Wrap(failure.InvalidInput, err, "resolve local file: %s", path)
	}

	r.logger.Debug(ctx, "Using local file: %s", abs)
	return models.Video{Path: abs}, nil
}

func (r *implResolver) download(ctx context.Context, reference string) (models.Video, error) {
	id := r.newID()
	args := buildDownloadArgs(r.format, filepath.Join(r.tempDir, id+".%(ext)s"), reference)

	r.logger.Debug(ctx, "Downloading video: %s", reference)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.executor.Execute(ctx, r.binaryPath, args...); err != nil {
		switch {
		case errors.Is(err, executor.ErrNotFound):
			return models.Video{}, failure.Wrap(failure.ToolNotFound, err, "downloader not found: %s", r.binaryPath)
		case errors.Is(err, executor.ErrTimeout):
			return models.Video{}, failure.Wrap(failure.DownloadTimeout, err, "download timed out after %s", r.timeout)
		default:
			return models.Video{}, failure.Wrap(failure.DownloadFailed, err, "video download failed")
		}
	}

	matches, err := filepath.Glob(filepath.Join(r.tempDir, id+".*"))
	if err != nil || len(matches) == 0 {
		return models.Video{}, failure.New(failure.DownloadFailed, "download completed but file missing")
	}

	r.logger.Debug(ctx, "Download completed: %s", matches[0])
	return models.Video{Path: matches[0], Downloaded: true}, nil
}

// buildDownloadArgs builds yt-dlp args for a single-video fetch.
func buildDownloadArgs(format, outputTemplate, reference string) []string {
	return []string{
		"-f", format,
		"-o", outputTemplate,
		"--no-playlist",
		"--quiet",
		"--no-warnings",
		reference,
	}
}

func newID() string {
	return uuid.NewString()
}
