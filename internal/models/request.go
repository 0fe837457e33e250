package models

import (
	"strings"

	"github.com/nguyentantai21042004/video-analyzer/internal/failure"
)

// Mode selects how far a run proceeds.
type Mode string

const (
	ModeDownload   Mode = "download"
	ModeTranscribe Mode = "transcribe"
	ModeSummary    Mode = "summary"
	ModeAnalyze    Mode = "analyze"
)

// Style selects the prompt template used for notes.
type Style string

const (
	StyleAcademic Style = "academic"
	StyleCasual   Style = "casual"
	StyleDetailed Style = "detailed"
	StyleBrief    Style = "brief"
	StyleCustom   Style = "custom"
)

// Request is one run's input as read from the caller.
type Request struct {
	URL          string `json:"url"`
	Mode         Mode   `json:"mode,omitempty"`
	Language     string `json:"language,omitempty"`
	Style        Style  `json:"style,omitempty"`
	CustomPrompt string `json:"custom_prompt,omitempty"`
}

// Normalize fills defaults and rejects requests the pipeline cannot run.
func (r Request) Normalize() (Request, error) {
	r.URL = strings.TrimSpace(r.URL)
	if r.URL == "" {
		return r, failure.New(failure.InvalidInput, "missing required parameter: url")
	}

	if r.Mode == "" {
		r.Mode = ModeAnalyze
	}
	switch r.Mode {
	case ModeDownload, ModeTranscribe, ModeSummary, ModeAnalyze:
	default:
		return r, failure.New(failure.InvalidInput, "unsupported mode: %s", r.Mode)
	}

	if r.Style == "" {
		r.Style = StyleBrief
	}
	return r, nil
}
