// Package model defines the study-content entities qv renders: courses,
// subjects, lessons, and quiz questions. The tree is loaded once at startup
// and treated as immutable for the lifetime of the process.
package model

import (
	"fmt"
	"strings"
)

// Unanswered marks a question slot with no recorded answer.
const Unanswered = -1

// Question is a single multiple-choice question in a lesson quiz.
type Question struct {
	Stem        string   `json:"stem"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
	Explanation string   `json:"explanation,omitempty"`
}

// SummarySection is one heading/body pair of a lesson summary.
// Sections are ordered; a slice is used instead of a map so document
// order survives decoding.
type SummarySection struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Lesson is a unit of study content with a summary and an associated quiz.
type Lesson struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Summary     []SummarySection `json:"summary,omitempty"`
	Quiz        []Question       `json:"quiz,omitempty"`
}

// Subject groups lessons within a course.
type Subject struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Lessons     []Lesson `json:"lessons,omitempty"`
}

// Course is a top-level subject-matter grouping.
type Course struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Color    string    `json:"color,omitempty"` // hex accent color, e.g. "#BD93F9"
	Subjects []Subject `json:"subjects,omitempty"`
}

// Content is the root of the study-content tree. Courses are ordered as
// they appear in the source document; ids are explicit fields so ordering
// survives JSON decoding (object keys would not).
type Content struct {
	Courses []Course `json:"courses"`
}

// Validate checks structural invariants of the whole tree: non-empty ids and
// titles, id uniqueness within each parent scope, at least two options per
// question, and answer indexes that resolve to a real option.
func (c *Content) Validate() error {
	courseIDs := make(map[string]bool, len(c.Courses))
	for i := range c.Courses {
		course := &c.Courses[i]
		if strings.TrimSpace(course.ID) == "" {
			return fmt.Errorf("course %d: missing id", i)
		}
		if courseIDs[course.ID] {
			return fmt.Errorf("course %q: duplicate id", course.ID)
		}
		courseIDs[course.ID] = true
		if strings.TrimSpace(course.Title) == "" {
			return fmt.Errorf("course %q: missing title", course.ID)
		}
		if err := course.validate(); err != nil {
			return fmt.Errorf("course %q: %w", course.ID, err)
		}
	}
	return nil
}

func (c *Course) validate() error {
	subjectIDs := make(map[string]bool, len(c.Subjects))
	for i := range c.Subjects {
		subject := &c.Subjects[i]
		if strings.TrimSpace(subject.ID) == "" {
			return fmt.Errorf("subject %d: missing id", i)
		}
		if subjectIDs[subject.ID] {
			return fmt.Errorf("subject %q: duplicate id", subject.ID)
		}
		subjectIDs[subject.ID] = true
		if strings.TrimSpace(subject.Title) == "" {
			return fmt.Errorf("subject %q: missing title", subject.ID)
		}
		if err := subject.validate(); err != nil {
			return fmt.Errorf("subject %q: %w", subject.ID, err)
		}
	}
	return nil
}

func (s *Subject) validate() error {
	lessonIDs := make(map[string]bool, len(s.Lessons))
	for i := range s.Lessons {
		lesson := &s.Lessons[i]
		if strings.TrimSpace(lesson.ID) == "" {
			return fmt.Errorf("lesson %d: missing id", i)
		}
		if lessonIDs[lesson.ID] {
			return fmt.Errorf("lesson %q: duplicate id", lesson.ID)
		}
		lessonIDs[lesson.ID] = true
		if strings.TrimSpace(lesson.Title) == "" {
			return fmt.Errorf("lesson %q: missing title", lesson.ID)
		}
		for qi, q := range lesson.Quiz {
			if strings.TrimSpace(q.Stem) == "" {
				return fmt.Errorf("lesson %q: question %d: missing stem", lesson.ID, qi)
			}
			if len(q.Options) < 2 {
				return fmt.Errorf("lesson %q: question %d: needs at least 2 options, got %d",
					lesson.ID, qi, len(q.Options))
			}
			if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
				return fmt.Errorf("lesson %q: question %d: answer_index %d out of range [0,%d)",
					lesson.ID, qi, q.AnswerIndex, len(q.Options))
			}
		}
	}
	return nil
}

// CourseCount returns the number of courses.
func (c *Content) CourseCount() int {
	return len(c.Courses)
}

// QuestionCount returns the total number of quiz questions in the tree.
func (c *Content) QuestionCount() int {
	n := 0
	for i := range c.Courses {
		for j := range c.Courses[i].Subjects {
			for k := range c.Courses[i].Subjects[j].Lessons {
				n += len(c.Courses[i].Subjects[j].Lessons[k].Quiz)
			}
		}
	}
	return n
}
