package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/vanderheijden86/quizdeck/pkg/model"
)

// MarkdownRenderer wraps a glamour renderer so lesson summaries get proper
// heading, emphasis, and list styling in the viewport.
type MarkdownRenderer struct {
	renderer *glamour.TermRenderer
	width    int
}

// NewMarkdownRenderer creates a renderer wrapping at the given width.
// A nil glamour renderer (e.g. style detection failure) is tolerated;
// Render falls back to plain text.
func NewMarkdownRenderer(width int) *MarkdownRenderer {
	if width < 20 {
		width = 20
	}
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	return &MarkdownRenderer{renderer: r, width: width}
}

// Width returns the wrap width the renderer was built with.
func (m *MarkdownRenderer) Width() int {
	return m.width
}

// Render renders markdown to styled terminal output, falling back to the
// raw text when glamour is unavailable or fails.
func (m *MarkdownRenderer) Render(markdown string) string {
	if m == nil || m.renderer == nil {
		return markdown
	}
	out, err := m.renderer.Render(markdown)
	if err != nil {
		return markdown
	}
	// Strip trailing whitespace/newlines that glamour adds
	return strings.TrimRight(out, "\n") + "\n"
}

// SummaryMarkdown assembles a lesson's summary sections into one markdown
// document, preserving section order.
func SummaryMarkdown(lesson *model.Lesson) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", lesson.Title)
	if lesson.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", lesson.Description)
	}
	for _, s := range lesson.Summary {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", s.Heading, s.Body)
	}
	if len(lesson.Quiz) > 0 {
		fmt.Fprintf(&b, "---\n\n*%s — press `s` to start the quiz.*\n", countLabel(len(lesson.Quiz), "question"))
	}
	return b.String()
}
