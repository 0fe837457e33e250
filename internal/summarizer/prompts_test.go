package summarizer

import (
	"strings"
	"testing"

	"github.com/nguyentantai21042004/video-analyzer/internal/models"
)

func TestBuildNotesPrompt(t *testing.T) {
	const transcript = "TRANSCRIPT-BODY"

	tests := []struct {
		name   string
		style  models.Style
		custom string
		want   string
	}{
		{"academic", models.StyleAcademic, "", notePrompts[models.StyleAcademic]},
		{"casual", models.StyleCasual, "", notePrompts[models.StyleCasual]},
		{"detailed", models.StyleDetailed, "", notePrompts[models.StyleDetailed]},
		{"brief", models.StyleBrief, "", notePrompts[models.StyleBrief]},
		{"unknown falls back to brief", "poetic", "", notePrompts[models.StyleBrief]},
		{"custom without template falls back to brief", models.StyleCustom, "", notePrompts[models.StyleBrief]},
		{"custom template ignored for other styles", models.StyleCasual, "X {transcript}", notePrompts[models.StyleCasual]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildNotesPrompt(transcript, tt.style, tt.custom)
			want := strings.ReplaceAll(tt.want, "{transcript}", transcript)
			if got != want {
				t.Errorf("buildNotesPrompt() = %q, want %q", got, want)
			}
			if strings.Contains(got, "{transcript}") {
				t.Error("placeholder was not substituted")
			}
		})
	}
}

func TestBuildNotesPromptCustomTemplate(t *testing.T) {
	got := buildNotesPrompt("hello", models.StyleCustom, "Summarize {transcript} then quote {transcript}. Keep {braces}.")
	want := "Summarize hello then quote hello. Keep {braces}."
	if got != want {
		t.Errorf("buildNotesPrompt() = %q, want %q", got, want)
	}
}

func TestBuildSummaryPrompt(t *testing.T) {
	got := buildSummaryPrompt("abc")
	if !strings.Contains(got, "200 characters") || !strings.HasSuffix(got, "abc") {
		t.Errorf("buildSummaryPrompt() = %q", got)
	}
}
