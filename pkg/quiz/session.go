// Package quiz manages one quiz attempt from first question to scored
// review. A Session is transient: created fresh each time a quiz is
// entered, discarded on exit, replaced wholesale on retry. It owns its own
// answer record and never mutates the content tree.
package quiz

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/vanderheijden86/quizdeck/pkg/model"
	"github.com/vanderheijden86/quizdeck/pkg/nav"
)

// Session errors. ErrAlreadyAnswered and ErrInvalidOption are defensive
// no-op conditions, never surfaced to the user.
var (
	ErrNoQuestions     = errors.New("lesson has no quiz questions")
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrInvalidOption   = errors.New("option index out of range")
)

// Session is the mutable, transient state of one quiz attempt.
type Session struct {
	courseID  string
	subjectID string
	lessonID  string
	lesson    *model.Lesson
	returnTo  nav.View // explicit view to return to when the quiz is exited

	current int
	answers []int // one slot per question, model.Unanswered until answered
}

// Score is the result of scoring a session.
type Score struct {
	Correct int
	Total   int
	Percent int // round(Correct/Total*100)
}

// ReviewEntry describes one missed (or skipped) question.
type ReviewEntry struct {
	Index       int    // 0-based position in the lesson's question order
	Stem        string
	Chosen      string // option text, or "Not Answered"
	CorrectText string
	Explanation string
}

// NotAnswered is the placeholder text for skipped questions in review output.
const NotAnswered = "Not Answered"

// NewSession resolves the lesson id chain and starts a fresh attempt at
// question 0 with every slot unanswered. Fails with a NotFound error when
// the chain does not resolve, and ErrNoQuestions for a lesson without a
// quiz; the caller falls back to the root view in both cases.
func NewSession(content *model.Content, courseID, subjectID, lessonID string, returnTo nav.View) (*Session, error) {
	lesson, err := content.Lesson(courseID, subjectID, lessonID)
	if err != nil {
		return nil, err
	}
	if len(lesson.Quiz) == 0 {
		return nil, fmt.Errorf("lesson %q: %w", lessonID, ErrNoQuestions)
	}

	answers := make([]int, len(lesson.Quiz))
	for i := range answers {
		answers[i] = model.Unanswered
	}

	return &Session{
		courseID:  courseID,
		subjectID: subjectID,
		lessonID:  lessonID,
		lesson:    lesson,
		returnTo:  returnTo,
		answers:   answers,
	}, nil
}

// Lesson returns the lesson this session quizzes.
func (s *Session) Lesson() *model.Lesson {
	return s.lesson
}

// ReturnTo returns the view captured when the session started. Back
// navigation from the quiz targets this named view rather than indexing
// into history by position.
func (s *Session) ReturnTo() nav.View {
	return s.returnTo
}

// Current returns the 0-based index of the current question.
func (s *Session) Current() int {
	return s.current
}

// Question returns the current question.
func (s *Session) Question() model.Question {
	return s.lesson.Quiz[s.current]
}

// Total returns the number of questions in the quiz.
func (s *Session) Total() int {
	return len(s.lesson.Quiz)
}

// Answer returns the recorded answer for question i, or model.Unanswered.
func (s *Session) Answer(i int) int {
	if i < 0 || i >= len(s.answers) {
		return model.Unanswered
	}
	return s.answers[i]
}

// Answered reports whether the current question has a recorded answer.
func (s *Session) Answered() bool {
	return s.answers[s.current] != model.Unanswered
}

// AnsweredCount returns how many questions have a recorded answer.
func (s *Session) AnsweredCount() int {
	n := 0
	for _, a := range s.answers {
		if a != model.Unanswered {
			n++
		}
	}
	return n
}

// SelectAnswer records option i for the current question. The first valid
// selection wins: once a question is answered, further selections are
// rejected here in the session, not just disabled in the view. Out-of-range
// indexes are rejected the same way.
func (s *Session) SelectAnswer(i int) error {
	q := s.lesson.Quiz[s.current]
	if i < 0 || i >= len(q.Options) {
		return fmt.Errorf("question %d: %w: %d", s.current, ErrInvalidOption, i)
	}
	if s.answers[s.current] != model.Unanswered {
		return fmt.Errorf("question %d: %w", s.current, ErrAlreadyAnswered)
	}
	s.answers[s.current] = i
	return nil
}

// Next advances to the next question and reports done=true instead of
// advancing when already at the last question. The caller transitions to
// scoring/review on done.
func (s *Session) Next() (done bool) {
	if s.current < len(s.lesson.Quiz)-1 {
		s.current++
		return false
	}
	return true
}

// Prev moves to the previous question; no-op at question 0.
func (s *Session) Prev() {
	if s.current > 0 {
		s.current--
	}
}

// Score computes the result over all recorded answers. Unanswered questions
// count as incorrect. Pure: never mutates session state, callable at any
// point in the attempt.
func (s *Session) Score() Score {
	total := len(s.lesson.Quiz)
	correct := 0
	for i, q := range s.lesson.Quiz {
		if s.answers[i] == q.AnswerIndex {
			correct++
		}
	}
	return Score{
		Correct: correct,
		Total:   total,
		Percent: int(math.Round(float64(correct) / float64(total) * 100)),
	}
}

// Review returns one entry per question whose recorded answer differs from
// the correct one, including unanswered questions. Ordering matches the
// lesson's question order, not failure order.
func (s *Session) Review() []ReviewEntry {
	var entries []ReviewEntry
	for i, q := range s.lesson.Quiz {
		a := s.answers[i]
		if a == q.AnswerIndex {
			continue
		}
		chosen := NotAnswered
		if a != model.Unanswered {
			chosen = q.Options[a]
		}
		entries = append(entries, ReviewEntry{
			Index:       i,
			Stem:        q.Stem,
			Chosen:      chosen,
			CorrectText: q.Options[q.AnswerIndex],
			Explanation: q.Explanation,
		})
	}
	return entries
}

// Retry returns a fresh session for the same lesson: all answers reset,
// current index back to 0, same return target. The receiver is left for the
// garbage collector; sessions are never reused.
func (s *Session) Retry() *Session {
	answers := make([]int, len(s.lesson.Quiz))
	for i := range answers {
		answers[i] = model.Unanswered
	}
	return &Session{
		courseID:  s.courseID,
		subjectID: s.subjectID,
		lessonID:  s.lessonID,
		lesson:    s.lesson,
		returnTo:  s.returnTo,
		answers:   answers,
	}
}

// Summary renders a plain-text result summary suitable for the clipboard.
func (s *Session) Summary() string {
	sc := s.Score()
	var b strings.Builder
	fmt.Fprintf(&b, "%s — %d/%d correct (%d%%)\n", s.lesson.Title, sc.Correct, sc.Total, sc.Percent)
	for _, e := range s.Review() {
		fmt.Fprintf(&b, "  Q%d: %s\n    answered: %s\n    correct:  %s\n",
			e.Index+1, e.Stem, e.Chosen, e.CorrectText)
	}
	return b.String()
}
