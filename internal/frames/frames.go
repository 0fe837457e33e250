package frames

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/nguyentantai21042004/video-analyzer/internal/models"
)

const (
	probeTimeout = 30 * time.Second
	frameTimeout = 30 * time.Second
	jpegQuality  = "2"
)

// Sample probes the video duration and extracts one JPEG per scheduled timestamp.
func (s *implSampler) Sample(ctx context.Context, videoPath, runID string, mode models.Mode) []string {
	if !s.enabled || mode == models.ModeTranscribe {
		return nil
	}

	absVideoPath, err := filepath.Abs(videoPath)
	if err != nil {
		s.logger.Warn(ctx, "Cannot resolve video path %s: %v", videoPath, err)
		return nil
	}

	s.logger.Debug(ctx, "Extracting screenshots: %s", absVideoPath)

	duration := s.probeDuration(ctx, absVideoPath)
	if duration <= 0 {
		s.logger.Debug(ctx, "Could not determine video duration, skipping screenshots")
		return nil
	}
	if s.maxDuration > 0 && duration > s.maxDuration {
		s.logger.Warn(ctx, "Video duration %.0fs exceeds configured maximum %.0fs", duration, s.maxDuration)
	}

	timestamps := Timestamps(duration, s.interval, s.maxCount)
	if len(timestamps) == 0 {
		return nil
	}

	screenshotDir := filepath.Join(s.outputDir, runID, "screenshots")
	if err := os.MkdirAll(screenshotDir, 0755); err != nil {
		s.logger.Warn(ctx, "Failed to create screenshot dir %s: %v", screenshotDir, err)
		return nil
	}

	screenshots := make([]string, 0, len(timestamps))
	for i, ts := range timestamps {
		outPath := filepath.Join(screenshotDir, fmt.Sprintf("screenshot_%03d.jpg", i+1))
		if s.extractFrame(ctx, absVideoPath, ts, outPath) {
			screenshots = append(screenshots, outPath)
		}
	}

	s.logger.Debug(ctx, "Extracted %d screenshots", len(screenshots))
	return screenshots
}

// probeDuration runs a null-muxer pass and reads the duration from stderr.
// ffmpeg's exit status is ignored: the header is printed either way.
func (s *implSampler) probeDuration(ctx context.Context, videoPath string) float64 {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	out, err := s.executor.Execute(ctx, s.ffmpegPath, "-i", videoPath, "-f", "null", "-")
	if err != nil {
		s.logger.Debug(ctx, "Duration probe exited with error: %v", err)
	}

	duration, ok := ParseDuration(out.Stderr)
	if !ok {
		return 0
	}
	return duration
}

func (s *implSampler) extractFrame(ctx context.Context, videoPath string, timestamp float64, outPath string) bool {
	ctx, cancel := context.WithTimeout(ctx, frameTimeout)
	defer cancel()

	if _, err := s.executor.Execute(ctx, s.ffmpegPath, buildFrameArgs(videoPath, timestamp, outPath)...); err != nil {
		s.logger.Warn(ctx, "Failed to extract frame at %.3fs: %v", timestamp, err)
		return false
	}

	if _, err := os.Stat(outPath); err != nil {
		s.logger.Warn(ctx, "Frame at %.3fs reported success but %s is missing", timestamp, outPath)
		return false
	}
	return true
}

// buildFrameArgs seeks before the input so only one frame is decoded.
func buildFrameArgs(videoPath string, timestamp float64, outPath string) []string {
	return []string{
		"-ss", strconv.FormatFloat(timestamp, 'f', 3, 64),
		"-i", videoPath,
		"-vframes", "1",
		"-q:v", jpegQuality,
		"-y",
		outPath,
	}
}
