package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RowDelegate renders course, subject, and lesson rows in the browse lists.
type RowDelegate struct {
	Theme Theme
}

func (d RowDelegate) Height() int {
	return 1
}

func (d RowDelegate) Spacing() int {
	return 0
}

func (d RowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd {
	return nil
}

func (d RowDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	t := d.Theme
	width := m.Width()
	if width <= 0 {
		width = 80
	}
	// Reduce width by 1 to prevent terminal wrapping on the exact edge
	width = width - 1

	isSelected := index == m.Index()

	// Row layout: [sel] [badge] [title...] [meta]
	var badge, title, meta string
	var badgeColor lipgloss.TerminalColor

	switch i := listItem.(type) {
	case CourseItem:
		badge, badgeColor = "C", t.CourseColor(i.Course.Color)
		title = i.Course.Title
		meta = i.Description()
	case SubjectItem:
		badge, badgeColor = "S", t.Subject
		title = i.Subject.Title
		meta = i.Description()
		if i.Subject.Description != "" && width > 80 {
			meta = truncateRunesHelper(i.Subject.Description, 30, "…") + " · " + meta
		}
	case LessonItem:
		badge, badgeColor = "L", t.Lesson
		title = i.Lesson.Title
		meta = i.Description()
	default:
		return
	}

	metaRendered := t.MutedText.Render(meta)
	rightWidth := lipgloss.Width(metaRendered)

	// [selector 2] [badge 1] [space 1]
	leftFixedWidth := 2 + 1 + 1

	titleWidth := width - leftFixedWidth - rightWidth - 2
	if titleWidth < 5 {
		titleWidth = 5
	}
	title = truncateRunesHelper(title, titleWidth, "…")
	if cur := lipgloss.Width(title); cur < titleWidth {
		title = title + strings.Repeat(" ", titleWidth-cur)
	}

	var leftSide strings.Builder

	if isSelected {
		leftSide.WriteString(t.PrimaryBold.Render("▸ "))
	} else {
		leftSide.WriteString("  ")
	}

	leftSide.WriteString(t.Renderer.NewStyle().Foreground(badgeColor).Bold(true).Render(badge))
	leftSide.WriteString(" ")

	titleStyle := t.Renderer.NewStyle()
	if isSelected {
		titleStyle = titleStyle.Foreground(t.Primary).Bold(true)
	} else {
		titleStyle = titleStyle.Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#E8E8E8"})
	}
	leftSide.WriteString(titleStyle.Render(title))

	leftLen := lipgloss.Width(leftSide.String())
	padding := width - leftLen - rightWidth
	if padding < 0 {
		padding = 0
	}

	row := leftSide.String() + strings.Repeat(" ", padding) + metaRendered

	rowStyle := t.Renderer.NewStyle().Width(width).MaxWidth(width)
	if isSelected {
		row = rowStyle.Background(t.Highlight).Render(row)
	} else {
		row = rowStyle.Render(row)
	}

	fmt.Fprint(w, row)
}
