package ui

import (
	"strings"
	"testing"

	"github.com/vanderheijden86/quizdeck/pkg/model"
)

func TestSummaryMarkdownOrderAndContent(t *testing.T) {
	lesson := &model.Lesson{
		ID:          "heart",
		Title:       "The Heart",
		Description: "Gross anatomy of the heart.",
		Summary: []model.SummarySection{
			{Heading: "Chambers", Body: "Four chambers."},
			{Heading: "Valves", Body: "Four valves."},
		},
		Quiz: []model.Question{
			{Stem: "q", Options: []string{"a", "b"}, AnswerIndex: 0},
		},
	}

	md := SummaryMarkdown(lesson)
	if !strings.HasPrefix(md, "# The Heart") {
		t.Fatalf("missing title heading:\n%s", md)
	}
	chambers := strings.Index(md, "## Chambers")
	valves := strings.Index(md, "## Valves")
	if chambers < 0 || valves < 0 || chambers > valves {
		t.Fatalf("section order lost:\n%s", md)
	}
	if !strings.Contains(md, "1 question") {
		t.Fatalf("quiz hint missing:\n%s", md)
	}
}

func TestSummaryMarkdownNoQuiz(t *testing.T) {
	lesson := &model.Lesson{ID: "l", Title: "L"}
	if strings.Contains(SummaryMarkdown(lesson), "quiz") {
		t.Fatal("quizless lesson should not advertise a quiz")
	}
}

func TestMarkdownRendererFallsBack(t *testing.T) {
	var r *MarkdownRenderer
	if got := r.Render("plain"); got != "plain" {
		t.Fatalf("nil renderer should pass through, got %q", got)
	}
}

func TestMarkdownRendererRenders(t *testing.T) {
	r := NewMarkdownRenderer(60)
	out := r.Render("# Title\n\nbody text")
	if !strings.Contains(out, "Title") || !strings.Contains(out, "body text") {
		t.Fatalf("render lost content:\n%s", out)
	}
	if r.Width() != 60 {
		t.Errorf("Width = %d", r.Width())
	}
}

func TestMarkdownRendererMinimumWidth(t *testing.T) {
	r := NewMarkdownRenderer(5)
	if r.Width() != 20 {
		t.Errorf("tiny widths should clamp to 20, got %d", r.Width())
	}
}
