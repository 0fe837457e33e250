package summarizer

import (
	"strings"

	"github.com/nguyentantai21042004/video-analyzer/internal/models"
)

const transcriptPlaceholder = "{transcript}"

var notePrompts = map[models.Style]string{
	models.StyleAcademic: `Based on the following video transcript, write notes in an academic style. Requirements:
1. Use formal academic language
2. Extract the key concepts and theories
3. Organize them into a clear hierarchy
4. Include the important arguments and evidence
5. Use Markdown formatting

Transcript:
{transcript}`,

	models.StyleCasual: `Based on the following video transcript, write casual, conversational notes. Requirements:
1. Use light, easy-to-follow language
2. Extract the core points
3. Keep it short and clear
4. Use Markdown formatting

Transcript:
{transcript}`,

	models.StyleDetailed: `Based on the following video transcript, write detailed notes. Requirements:
1. Record all important information
2. Keep details and examples
3. Organize into a clear structure
4. Use Markdown formatting with headings and lists

Transcript:
{transcript}`,

	models.StyleBrief: `Based on the following video transcript, write brief notes. Requirements:
1. Extract the core points
2. Keep it short and clear
3. Use Markdown formatting

Transcript:
{transcript}`,
}

const summaryPrompt = `Based on the following video transcript, write a short summary (200 characters or fewer).

Transcript:
{transcript}`

// buildNotesPrompt selects the template for style. A custom template is used
// only with the custom style; anything unrecognized falls back to brief.
func buildNotesPrompt(transcript string, style models.Style, customPrompt string) string {
	if style == models.StyleCustom && customPrompt != "" {
		return fillTranscript(customPrompt, transcript)
	}

	tmpl, ok := notePrompts[style]
	if !ok {
		tmpl = notePrompts[models.StyleBrief]
	}
	return fillTranscript(tmpl, transcript)
}

func buildSummaryPrompt(transcript string) string {
	return fillTranscript(summaryPrompt, transcript)
}

func fillTranscript(tmpl, transcript string) string {
	return strings.ReplaceAll(tmpl, transcriptPlaceholder, transcript)
}
