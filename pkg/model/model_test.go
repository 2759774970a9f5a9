package model

import (
	"errors"
	"strings"
	"testing"
)

func validContent() *Content {
	return &Content{
		Courses: []Course{
			{
				ID:    "anatomy",
				Title: "Anatomy",
				Color: "#FF5555",
				Subjects: []Subject{
					{
						ID:    "upper-limb",
						Title: "Upper Limb",
						Lessons: []Lesson{
							{
								ID:    "brachial-plexus",
								Title: "Brachial Plexus",
								Summary: []SummarySection{
									{Heading: "Roots", Body: "C5-T1 ventral rami."},
								},
								Quiz: []Question{
									{
										Stem:        "How many roots form the brachial plexus?",
										Options:     []string{"three", "four", "five"},
										AnswerIndex: 2,
										Explanation: "C5, C6, C7, C8 and T1.",
									},
								},
							},
						},
					},
				},
			},
			{ID: "physiology", Title: "Physiology"},
		},
	}
}

func TestValidateAccepts(t *testing.T) {
	if err := validContent().Validate(); err != nil {
		t.Fatalf("valid content rejected: %v", err)
	}
}

func TestValidateDuplicateCourseID(t *testing.T) {
	c := validContent()
	c.Courses[1].ID = "anatomy"
	err := c.Validate()
	if err == nil || !strings.Contains(err.Error(), "duplicate id") {
		t.Fatalf("expected duplicate id error, got %v", err)
	}
}

func TestValidateDuplicateLessonID(t *testing.T) {
	c := validContent()
	sub := &c.Courses[0].Subjects[0]
	sub.Lessons = append(sub.Lessons, Lesson{ID: "brachial-plexus", Title: "Dup"})
	if err := c.Validate(); err == nil {
		t.Fatal("expected duplicate lesson id error")
	}
}

func TestValidateAnswerIndexOutOfRange(t *testing.T) {
	c := validContent()
	c.Courses[0].Subjects[0].Lessons[0].Quiz[0].AnswerIndex = 3
	err := c.Validate()
	if err == nil || !strings.Contains(err.Error(), "answer_index") {
		t.Fatalf("expected answer_index error, got %v", err)
	}
}

func TestValidateTooFewOptions(t *testing.T) {
	c := validContent()
	c.Courses[0].Subjects[0].Lessons[0].Quiz[0].Options = []string{"only"}
	c.Courses[0].Subjects[0].Lessons[0].Quiz[0].AnswerIndex = 0
	if err := c.Validate(); err == nil {
		t.Fatal("expected option count error")
	}
}

func TestValidateMissingIDs(t *testing.T) {
	c := validContent()
	c.Courses[0].ID = "  "
	if err := c.Validate(); err == nil {
		t.Fatal("expected missing id error")
	}
}

func TestLookupChain(t *testing.T) {
	c := validContent()

	course, err := c.Course("anatomy")
	if err != nil || course.Title != "Anatomy" {
		t.Fatalf("Course lookup failed: %v", err)
	}

	subject, err := c.Subject("anatomy", "upper-limb")
	if err != nil || subject.Title != "Upper Limb" {
		t.Fatalf("Subject lookup failed: %v", err)
	}

	lesson, err := c.Lesson("anatomy", "upper-limb", "brachial-plexus")
	if err != nil || lesson.Title != "Brachial Plexus" {
		t.Fatalf("Lesson lookup failed: %v", err)
	}
}

func TestLookupNotFound(t *testing.T) {
	c := validContent()

	cases := []struct {
		name string
		err  error
		kind string
	}{
		{"bad course", func() error { _, err := c.Course("nope"); return err }(), "course"},
		{"bad subject", func() error { _, err := c.Subject("anatomy", "nope"); return err }(), "subject"},
		{"bad lesson", func() error { _, err := c.Lesson("anatomy", "upper-limb", "nope"); return err }(), "lesson"},
		{"bad chain root", func() error { _, err := c.Lesson("nope", "upper-limb", "brachial-plexus"); return err }(), "course"},
	}

	for _, tc := range cases {
		if tc.err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !errors.Is(tc.err, ErrNotFound) {
			t.Errorf("%s: error %v does not wrap ErrNotFound", tc.name, tc.err)
		}
		var nf *NotFoundError
		if !errors.As(tc.err, &nf) {
			t.Fatalf("%s: error %v is not a NotFoundError", tc.name, tc.err)
		}
		if nf.Kind != tc.kind {
			t.Errorf("%s: kind = %q, want %q", tc.name, nf.Kind, tc.kind)
		}
	}
}

func TestQuestionCount(t *testing.T) {
	c := validContent()
	if got := c.QuestionCount(); got != 1 {
		t.Errorf("QuestionCount = %d, want 1", got)
	}
	if got := c.CourseCount(); got != 2 {
		t.Errorf("CourseCount = %d, want 2", got)
	}
}
