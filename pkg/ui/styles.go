package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Adaptive colors for light and dark terminals
// Light mode colors tuned for WCAG AA compliance (contrast ratio >= 4.5:1)
// ══════════════════════════════════════════════════════════════════════════════

var (
	ColorBgHighlight = lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#44475A"}
	ColorMuted       = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#6272A4"}
	ColorInfo        = lipgloss.AdaptiveColor{Light: "#006080", Dark: "#8BE9FD"}

	// Answer feedback backgrounds (subtle, for option rows)
	ColorCorrectBg = lipgloss.AdaptiveColor{Light: "#D4EDDA", Dark: "#1A3D2A"}
	ColorWrongBg   = lipgloss.AdaptiveColor{Light: "#F8D7DA", Dark: "#3D1A1A"}
)

// ══════════════════════════════════════════════════════════════════════════════
// PROGRESS AND SCORE VISUALIZATION
// ══════════════════════════════════════════════════════════════════════════════

// RenderProgressBar renders a filled/empty bar for done of total steps.
// At least one cell is filled once any progress has been made.
func RenderProgressBar(done, total, width int, t Theme) string {
	if width <= 0 || total <= 0 {
		return ""
	}
	filled := (done * width) / total
	if done > 0 && filled == 0 {
		filled = 1
	}
	if filled > width {
		filled = width
	}
	return t.Renderer.NewStyle().Foreground(t.Correct).Render(strings.Repeat("█", filled)) +
		t.Renderer.NewStyle().Foreground(t.Muted).Render(strings.Repeat("░", width-filled))
}

// RenderScoreBar renders a mini horizontal bar for a value between 0 and 1,
// colored by how good the value is.
func RenderScoreBar(value float64, width int, t Theme) string {
	if width <= 0 {
		return ""
	}
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}

	filled := int(value * float64(width))
	if filled > width {
		filled = width
	}

	var barColor lipgloss.AdaptiveColor
	if value >= 0.75 {
		barColor = t.Correct
	} else if value >= 0.5 {
		barColor = t.Unanswered
	} else {
		barColor = t.Wrong
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return t.Renderer.NewStyle().Foreground(barColor).Render(bar)
}

// RenderDivider renders a horizontal divider line
func RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(ColorBgHighlight).
		Render(strings.Repeat("─", width))
}
