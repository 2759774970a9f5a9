package ui

import (
	"strings"

	"github.com/vanderheijden86/quizdeck/pkg/model"
)

// CourseItem wraps model.Course to implement list.Item
type CourseItem struct {
	Course model.Course
}

func (i CourseItem) Title() string {
	return i.Course.Title
}

func (i CourseItem) Description() string {
	return countLabel(len(i.Course.Subjects), "subject")
}

func (i CourseItem) FilterValue() string {
	return i.Course.Title + " " + i.Course.ID
}

// SubjectItem wraps model.Subject to implement list.Item.
// CourseColor carries the parent course's accent for row rendering.
type SubjectItem struct {
	Subject     model.Subject
	CourseColor string
}

func (i SubjectItem) Title() string {
	return i.Subject.Title
}

func (i SubjectItem) Description() string {
	return countLabel(len(i.Subject.Lessons), "lesson")
}

func (i SubjectItem) FilterValue() string {
	var sb strings.Builder
	sb.WriteString(i.Subject.Title)
	sb.WriteString(" ")
	sb.WriteString(i.Subject.ID)
	if i.Subject.Description != "" {
		sb.WriteString(" ")
		sb.WriteString(i.Subject.Description)
	}
	return sb.String()
}

// LessonItem wraps model.Lesson to implement list.Item
type LessonItem struct {
	Lesson      model.Lesson
	CourseColor string
}

func (i LessonItem) Title() string {
	return i.Lesson.Title
}

func (i LessonItem) Description() string {
	return countLabel(len(i.Lesson.Quiz), "question")
}

func (i LessonItem) FilterValue() string {
	return i.Lesson.Title + " " + i.Lesson.ID
}
