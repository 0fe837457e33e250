package saver

import (
	"regexp"
	"strings"
	"time"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/video-analyzer/internal/models"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	fontColor = "000000"
)

var (
	reHeading   = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold      = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet    = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reImage     = regexp.MustCompile(`^!\[[^\]]*\]\([^)]*\)$`)
	reCodeFence = regexp.MustCompile("^```")
)

// writeDocx renders the notes as a styled Word document. Screenshots are not
// embedded; the transcript is appended when it differs from the content.
func writeDocx(result *models.Result, now time.Time, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), notesTitle, true, 16)

	addRichText(doc.AddParagraph(""), "**Video URL**: "+orNA(result.URL))
	addRichText(doc.AddParagraph(""), "**Mode**: "+orNA(string(result.Mode)))
	addRichText(doc.AddParagraph(""), "**Generated**: "+now.Format(timestampLayout))

	addStyledRun(doc.AddParagraph(""), "Analysis", true, headingSize(2))
	addMarkdown(func() *docx.Paragraph { return doc.AddParagraph("") }, result.Content)

	if result.HasTranscript() && *result.Transcript != result.Content {
		addStyledRun(doc.AddParagraph(""), "Full Transcript", true, headingSize(2))
		for _, line := range strings.Split(*result.Transcript, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			doc.AddParagraph("").AddText(trimmed).Font(fontName).Size(fontSize).Color(fontColor)
		}
	}

	return doc.SaveTo(outputPath)
}

// addMarkdown maps headings, bullets and bold spans onto docx runs.
func addMarkdown(newParagraph func() *docx.Paragraph, markdown string) {
	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || trimmed == "---" || reImage.MatchString(trimmed) || reCodeFence.MatchString(trimmed) {
			continue
		}

		if m := reHeading.FindStringSubmatch(trimmed); m != nil {
			addStyledRun(newParagraph(), m[2], true, headingSize(len(m[1])+1))
			continue
		}

		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			addRichText(newParagraph(), "• "+m[1])
			continue
		}

		addRichText(newParagraph(), trimmed)
	}
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return fontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(cleanMarkdownInline(text)).Font(fontName).Size(size).Color(fontColor)
	if bold {
		run.Bold(true)
	}
}

func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanMarkdownInline(part)).Font(fontName).Size(fontSize).Color(fontColor)
		}
		if i < len(matches) {
			p.AddText(cleanMarkdownInline(matches[i][1])).Font(fontName).Size(fontSize).Color(fontColor).Bold(true)
		}
	}
}

func cleanMarkdownInline(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
