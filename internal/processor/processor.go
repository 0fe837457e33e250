package processor

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/video-analyzer/internal/models"
)

// Analyze runs one request. Any stage failure aborts the run and is returned
// unchanged; persistence failures only shrink SavedFiles.
func (p *implProcessor) Analyze(ctx context.Context, req models.Request) (*models.Result, error) {
	req, err := req.Normalize()
	if err != nil {
		return nil, err
	}

	startTime := time.Now()
	runID := p.newID()
	p.logger.Info(ctx, "Starting %s run %s: %s", req.Mode, runID, req.URL)

	// Step 1: Resolve the source
	video, err := p.stages.Source.Resolve(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	if req.Mode == models.ModeDownload {
		p.logger.Info(ctx, "Download completed: %s", video.Path)
		return &models.Result{
			URL:       req.URL,
			Mode:      req.Mode,
			Content:   "Video downloaded to: " + video.Path,
			VideoID:   runID,
			VideoPath: video.Path,
		}, nil
	}

	var audioPath string
	defer func() {
		p.cleanup(ctx, video, audioPath)
	}()

	// Step 2: Sample screenshots
	var screenshots []string
	if req.Mode != models.ModeTranscribe {
		screenshots = p.stages.Frames.Sample(ctx, video.Path, runID, req.Mode)
	}

	// Step 3: Extract audio
	audioPath, err = p.stages.Audio.Extract(ctx, video.Path)
	if err != nil {
		return nil, err
	}

	// Step 4: Transcribe
	transcript, err := p.stages.Transcriber.Transcribe(ctx, audioPath, req.Language)
	if err != nil {
		return nil, err
	}

	result := &models.Result{
		URL:         req.URL,
		Mode:        req.Mode,
		Transcript:  &transcript,
		VideoID:     runID,
		Screenshots: screenshots,
	}

	// Step 5: Produce the content for the mode
	switch req.Mode {
	case models.ModeTranscribe:
		result.Content = transcript
	case models.ModeSummary:
		if result.Content, err = p.stages.Summarizer.GenerateSummary(ctx, transcript); err != nil {
			return nil, err
		}
	default:
		if result.Content, err = p.stages.Summarizer.GenerateNotes(ctx, transcript, req.Style, req.CustomPrompt); err != nil {
			return nil, err
		}
	}

	// Step 6: Persist
	result.SavedFiles = p.stages.Saver.Save(ctx, result, runID, screenshots)

	p.logger.Info(ctx, "Run %s completed in %s (%d screenshots, %d files saved)",
		runID, time.Since(startTime), len(screenshots), len(result.SavedFiles))

	return result, nil
}

// Process analyzes a watched video file.
func (p *implProcessor) Process(ctx context.Context, videoPath string) error {
	result, err := p.Analyze(ctx, models.Request{
		URL:   videoPath,
		Mode:  models.Mode(p.cfg.Watch.Mode),
		Style: models.Style(p.cfg.Watch.Style),
	})
	if err != nil {
		return err
	}

	if path, ok := result.SavedFiles[models.SavedNotes]; ok {
		p.logger.Info(ctx, "Notes for %s: %s", videoPath, path)
	}
	return nil
}
