package audio

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/nguyentantai21042004/video-analyzer/internal/failure"
	"github.com/nguyentantai21042004/video-analyzer/pkg/executor"
)

const extractTimeout = 300 * time.Second

// Extract extracts audio from video file and converts it to mono 16-bit PCM WAV
// at the configured sample rate.
func (e *implExtractor) Extract(ctx context.Context, videoPath string) (string, error) {
	absVideoPath, err := filepath.Abs(videoPath)
	if err != nil {
		return "", failure.Wrap(failure.ExtractionFailed, err, "resolve video path: %s", videoPath)
	}
	audioPath := filepath.Join(e.tempDir, e.newID()+".wav")

	e.logger.Debug(ctx, "Extracting audio: %s", absVideoPath)

	ctx, cancel := context.WithTimeout(ctx, extractTimeout)
	defer cancel()

	args := buildExtractArgs(absVideoPath, audioPath, e.sampleRate)
	if _, err := e.executor.Execute(ctx, e.ffmpegPath, args...); err != nil {
		switch {
		case errors.Is(err, executor.ErrNotFound):
			return "", failure.Wrap(failure.ToolNotFound, err, "ffmpeg not found: %s", e.ffmpegPath)
		case errors.Is(err, executor.ErrTimeout):
			return "", failure.Wrap(failure.ExtractionTimeout, err, "audio extraction timed out after %s", extractTimeout)
		default:
			return "", failure.Wrap(failure.ExtractionFailed, err, "audio extraction failed")
		}
	}

	if _, err := os.Stat(audioPath); err != nil {
		return "", failure.Wrap(failure.ExtractionFailed, err, "audio extraction completed but file missing")
	}

	e.logger.Debug(ctx, "Audio extracted successfully: %s", audioPath)
	return audioPath, nil
}

// buildExtractArgs builds ffmpeg args for mono PCM output.
// -vn: no video
// -acodec pcm_s16le: 16-bit little-endian PCM
// -ac 1: mono
// -y: overwrite
// -loglevel error: errors only
func buildExtractArgs(videoPath, audioPath string, sampleRate int) []string {
	return []string{
		"-i", videoPath,
		"-vn",
		"-acodec", "pcm_s16le",
		"-ar", strconv.Itoa(sampleRate),
		"-ac", "1",
		"-y",
		"-loglevel", "error",
		audioPath,
	}
}
