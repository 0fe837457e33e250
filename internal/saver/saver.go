package saver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/video-analyzer/internal/models"
)

const (
	transcriptFile = "transcript.txt"
	notesFile      = "notes.md"
	docxFile       = "notes.docx"
	resultFile     = "result.json"
)

// Save writes transcript.txt, notes.md (and notes.docx when enabled) and result.json.
func (s *implSaver) Save(ctx context.Context, result *models.Result, runID string, screenshots []string) map[string]string {
	saved, err := s.save(ctx, result, runID, screenshots)
	if err != nil {
		s.logger.Warn(ctx, "Failed to save results for %s: %v", runID, err)
		return map[string]string{}
	}
	return saved
}

func (s *implSaver) save(ctx context.Context, result *models.Result, runID string, screenshots []string) (map[string]string, error) {
	if result == nil {
		return nil, fmt.Errorf("nil result")
	}

	runDir := filepath.Join(s.outputDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	saved := make(map[string]string)

	if result.HasTranscript() {
		path := filepath.Join(runDir, transcriptFile)
		if err := os.WriteFile(path, []byte(*result.Transcript), 0644); err != nil {
			return nil, fmt.Errorf("write transcript: %w", err)
		}
		saved[models.SavedTranscript] = path
		s.logger.Debug(ctx, "Transcript saved: %s", path)
	}

	if result.Content != "" {
		path := filepath.Join(runDir, notesFile)
		md := renderMarkdown(result, screenshots, s.relativeRoot(), s.now())
		if err := os.WriteFile(path, []byte(md), 0644); err != nil {
			return nil, fmt.Errorf("write notes: %w", err)
		}
		saved[models.SavedNotes] = path
		s.logger.Debug(ctx, "Notes saved: %s", path)

		if s.exportDocx {
			docxPath := filepath.Join(runDir, docxFile)
			if err := writeDocx(result, s.now(), docxPath); err != nil {
				s.logger.Warn(ctx, "Failed to export docx %s: %v", docxPath, err)
			} else {
				saved[models.SavedDocx] = docxPath
			}
		}
	}

	path := filepath.Join(runDir, resultFile)
	if err := writeJSON(path, result); err != nil {
		return nil, fmt.Errorf("write result: %w", err)
	}
	saved[models.SavedJSON] = path
	s.logger.Debug(ctx, "JSON result saved: %s", path)

	return saved, nil
}

// relativeRoot is the directory screenshot links in notes.md are relative to.
func (s *implSaver) relativeRoot() string {
	return filepath.Dir(s.outputDir)
}

// writeJSON writes v with two-space indent and unescaped non-ASCII/HTML,
// replacing the file atomically.
func writeJSON(path string, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, buf.Bytes(), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
