package ui

import (
	"strings"
	"testing"

	"github.com/vanderheijden86/quizdeck/pkg/model"
)

func TestCourseItem(t *testing.T) {
	i := CourseItem{Course: model.Course{
		ID:       "anatomy",
		Title:    "Anatomy",
		Subjects: []model.Subject{{ID: "a"}, {ID: "b"}},
	}}
	if i.Title() != "Anatomy" {
		t.Errorf("Title = %q", i.Title())
	}
	if i.Description() != "2 subjects" {
		t.Errorf("Description = %q", i.Description())
	}
	if !strings.Contains(i.FilterValue(), "anatomy") {
		t.Errorf("FilterValue should include id: %q", i.FilterValue())
	}
}

func TestSubjectItemFilterIncludesDescription(t *testing.T) {
	i := SubjectItem{Subject: model.Subject{
		ID:          "thorax",
		Title:       "Thorax",
		Description: "Heart and lungs",
		Lessons:     []model.Lesson{{ID: "l"}},
	}}
	if i.Description() != "1 lesson" {
		t.Errorf("Description = %q", i.Description())
	}
	fv := i.FilterValue()
	if !strings.Contains(fv, "lungs") || !strings.Contains(fv, "thorax") {
		t.Errorf("FilterValue = %q", fv)
	}
}

func TestLessonItemQuestionCount(t *testing.T) {
	i := LessonItem{Lesson: model.Lesson{
		ID:    "heart",
		Title: "The Heart",
		Quiz: []model.Question{
			{Stem: "q1", Options: []string{"a", "b"}},
			{Stem: "q2", Options: []string{"a", "b"}},
			{Stem: "q3", Options: []string{"a", "b"}},
		},
	}}
	if i.Description() != "3 questions" {
		t.Errorf("Description = %q", i.Description())
	}
}
