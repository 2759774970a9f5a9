package model

import (
	"errors"
	"fmt"
)

// ErrNotFound is the sentinel wrapped by every failed id lookup.
// Callers can match it with errors.Is regardless of which level failed.
var ErrNotFound = errors.New("not found")

// NotFoundError reports the deepest id that failed to resolve in the tree.
type NotFoundError struct {
	Kind string // "course", "subject", or "lesson"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// Course resolves a course id. Returns a NotFoundError if the id does not
// exist; never a partially-filled record.
func (c *Content) Course(courseID string) (*Course, error) {
	for i := range c.Courses {
		if c.Courses[i].ID == courseID {
			return &c.Courses[i], nil
		}
	}
	return nil, &NotFoundError{Kind: "course", ID: courseID}
}

// Subject resolves a subject within a course.
func (c *Content) Subject(courseID, subjectID string) (*Subject, error) {
	course, err := c.Course(courseID)
	if err != nil {
		return nil, err
	}
	for i := range course.Subjects {
		if course.Subjects[i].ID == subjectID {
			return &course.Subjects[i], nil
		}
	}
	return nil, &NotFoundError{Kind: "subject", ID: subjectID}
}

// Lesson resolves a lesson within a subject within a course.
func (c *Content) Lesson(courseID, subjectID, lessonID string) (*Lesson, error) {
	subject, err := c.Subject(courseID, subjectID)
	if err != nil {
		return nil, err
	}
	for i := range subject.Lessons {
		if subject.Lessons[i].ID == lessonID {
			return &subject.Lessons[i], nil
		}
	}
	return nil, &NotFoundError{Kind: "lesson", ID: lessonID}
}
