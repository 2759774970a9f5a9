package quiz

import (
	"errors"
	"strings"
	"testing"

	"github.com/vanderheijden86/quizdeck/pkg/model"
	"github.com/vanderheijden86/quizdeck/pkg/nav"
)

// threeQuestionContent builds a lesson with correct indices [1,0,2],
// mirroring the canonical scoring scenario.
func threeQuestionContent() *model.Content {
	return &model.Content{
		Courses: []model.Course{{
			ID:    "c1",
			Title: "Course",
			Subjects: []model.Subject{{
				ID:    "s1",
				Title: "Subject",
				Lessons: []model.Lesson{{
					ID:    "l1",
					Title: "Lesson",
					Quiz: []model.Question{
						{Stem: "q1", Options: []string{"a", "b"}, AnswerIndex: 1},
						{Stem: "q2", Options: []string{"a", "b", "c"}, AnswerIndex: 0},
						{Stem: "q3", Options: []string{"a", "b", "c"}, AnswerIndex: 2, Explanation: "because c"},
					},
				}},
			}},
		}},
	}
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(threeQuestionContent(), "c1", "s1", "l1", nav.Lesson("c1", "s1", "l1"))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestNewSessionNotFound(t *testing.T) {
	_, err := NewSession(threeQuestionContent(), "c1", "s1", "missing", nav.Root())
	if err == nil {
		t.Fatal("expected error for bad lesson id")
	}
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("error %v does not wrap ErrNotFound", err)
	}
}

func TestNewSessionEmptyQuiz(t *testing.T) {
	c := threeQuestionContent()
	c.Courses[0].Subjects[0].Lessons[0].Quiz = nil
	_, err := NewSession(c, "c1", "s1", "l1", nav.Root())
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestScoreScenario(t *testing.T) {
	// Correct indices are [1,0,2]; user answers [1,0,1].
	s := newTestSession(t)
	for _, a := range []int{1, 0, 1} {
		if err := s.SelectAnswer(a); err != nil {
			t.Fatalf("SelectAnswer(%d): %v", a, err)
		}
		s.Next()
	}

	sc := s.Score()
	if sc.Correct != 2 || sc.Total != 3 || sc.Percent != 67 {
		t.Fatalf("Score = %+v, want {2 3 67}", sc)
	}

	review := s.Review()
	if len(review) != 1 {
		t.Fatalf("Review has %d entries, want 1", len(review))
	}
	e := review[0]
	if e.Index != 2 {
		t.Errorf("review entry index = %d, want 2", e.Index)
	}
	if e.Chosen != "b" {
		t.Errorf("Chosen = %q, want options[1] of q3 (%q)", e.Chosen, "b")
	}
	if e.CorrectText != "c" {
		t.Errorf("CorrectText = %q, want options[2] of q3 (%q)", e.CorrectText, "c")
	}
}

func TestScoreWithUnanswered(t *testing.T) {
	// Answer only question 1, then score immediately: unanswered questions
	// count as incorrect and appear in review as Not Answered.
	s := newTestSession(t)
	if err := s.SelectAnswer(1); err != nil {
		t.Fatal(err)
	}

	sc := s.Score()
	if sc.Correct != 1 || sc.Total != 3 || sc.Percent != 33 {
		t.Fatalf("Score = %+v, want {1 3 33}", sc)
	}

	review := s.Review()
	if len(review) != 2 {
		t.Fatalf("Review has %d entries, want 2", len(review))
	}
	for _, e := range review {
		if e.Chosen != NotAnswered {
			t.Errorf("Q%d Chosen = %q, want %q", e.Index+1, e.Chosen, NotAnswered)
		}
	}
}

func TestSelectAnswerGuards(t *testing.T) {
	s := newTestSession(t)

	if err := s.SelectAnswer(5); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("out-of-range select: got %v, want ErrInvalidOption", err)
	}
	if err := s.SelectAnswer(-1); !errors.Is(err, ErrInvalidOption) {
		t.Fatalf("negative select: got %v, want ErrInvalidOption", err)
	}

	if err := s.SelectAnswer(0); err != nil {
		t.Fatal(err)
	}
	// Re-selecting after an answer is recorded is a no-op.
	if err := s.SelectAnswer(1); !errors.Is(err, ErrAlreadyAnswered) {
		t.Fatalf("re-select: got %v, want ErrAlreadyAnswered", err)
	}
	if got := s.Answer(0); got != 0 {
		t.Fatalf("answer changed by rejected re-select: %d", got)
	}
}

func TestBoundaryNavigation(t *testing.T) {
	s := newTestSession(t)

	s.Prev() // no-op at index 0
	if s.Current() != 0 {
		t.Fatalf("Prev at 0 moved to %d", s.Current())
	}

	if done := s.Next(); done || s.Current() != 1 {
		t.Fatalf("Next = done=%v current=%d, want false/1", done, s.Current())
	}
	s.Next()
	if s.Current() != 2 {
		t.Fatalf("current = %d, want 2", s.Current())
	}
	// Next at the last question reports done without advancing.
	if done := s.Next(); !done || s.Current() != 2 {
		t.Fatalf("Next at last = done=%v current=%d, want true/2", done, s.Current())
	}
}

func TestRetryResets(t *testing.T) {
	s := newTestSession(t)
	s.SelectAnswer(1)
	s.Next()
	s.SelectAnswer(2)

	fresh := s.Retry()
	if fresh.Current() != 0 {
		t.Fatalf("retry current = %d, want 0", fresh.Current())
	}
	for i := 0; i < fresh.Total(); i++ {
		if fresh.Answer(i) != model.Unanswered {
			t.Fatalf("retry answer %d = %d, want unanswered", i, fresh.Answer(i))
		}
	}
	if fresh.ReturnTo() != s.ReturnTo() {
		t.Fatal("retry lost return target")
	}
}

func TestSummaryIncludesScoreAndMisses(t *testing.T) {
	s := newTestSession(t)
	s.SelectAnswer(1)
	sum := s.Summary()
	if !strings.Contains(sum, "1/3") || !strings.Contains(sum, NotAnswered) {
		t.Fatalf("unexpected summary:\n%s", sum)
	}
}
