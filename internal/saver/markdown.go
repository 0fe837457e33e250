package saver

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/video-analyzer/internal/models"
)

const (
	notesTitle      = "Video Analysis Notes"
	timestampLayout = "2006-01-02 15:04:05"
)

// renderMarkdown builds notes.md: metadata, screenshots, content and, when it
// differs from the content, the full transcript.
func renderMarkdown(result *models.Result, screenshots []string, relRoot string, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", notesTitle)

	b.WriteString("## Overview\n\n")
	fmt.Fprintf(&b, "- **Video URL**: %s\n", orNA(result.URL))
	fmt.Fprintf(&b, "- **Mode**: %s\n", orNA(string(result.Mode)))
	fmt.Fprintf(&b, "- **Generated**: %s\n", now.Format(timestampLayout))
	b.WriteString("\n---\n\n")

	if len(screenshots) > 0 {
		b.WriteString("## Screenshots\n\n")
		for i, shot := range screenshots {
			fmt.Fprintf(&b, "### Screenshot %d\n\n", i+1)
			fmt.Fprintf(&b, "![Screenshot %d](%s)\n\n", i+1, relativeLink(relRoot, shot))
		}
		b.WriteString("---\n\n")
	}

	b.WriteString("## Analysis\n\n")
	b.WriteString(result.Content)
	b.WriteString("\n")

	if result.HasTranscript() && *result.Transcript != result.Content {
		b.WriteString("\n---\n\n")
		b.WriteString("## Full Transcript\n\n")
		fmt.Fprintf(&b, "```\n%s\n```\n", *result.Transcript)
	}

	return b.String()
}

func relativeLink(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return filepath.ToSlash(rel)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
