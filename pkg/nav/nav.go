// Package nav models qv's screen navigation: a tagged view state describing
// which screen is displayed, and a history stack with one entry per visited
// screen. The stack owns browsing history only; it never touches content.
package nav

// Screen identifies which screen a View describes.
type Screen int

const (
	ScreenCourses Screen = iota
	ScreenSubjects
	ScreenLessons
	ScreenLesson
	ScreenQuiz
)

// String returns a human-readable label for the screen.
func (s Screen) String() string {
	switch s {
	case ScreenCourses:
		return "courses"
	case ScreenSubjects:
		return "subjects"
	case ScreenLessons:
		return "lessons"
	case ScreenLesson:
		return "lesson"
	case ScreenQuiz:
		return "quiz"
	default:
		return "unknown"
	}
}

// View is an immutable description of one screen and its parameters.
// Id fields are filled left-to-right as the tree deepens; unused fields
// stay empty for shallow screens.
type View struct {
	Screen    Screen
	CourseID  string
	SubjectID string
	LessonID  string
}

// Root is the initial Courses view.
func Root() View {
	return View{Screen: ScreenCourses}
}

// Subjects returns the subject-list view for a course.
func Subjects(courseID string) View {
	return View{Screen: ScreenSubjects, CourseID: courseID}
}

// Lessons returns the lesson-list view for a subject.
func Lessons(courseID, subjectID string) View {
	return View{Screen: ScreenLessons, CourseID: courseID, SubjectID: subjectID}
}

// Lesson returns the lesson-detail view.
func Lesson(courseID, subjectID, lessonID string) View {
	return View{Screen: ScreenLesson, CourseID: courseID, SubjectID: subjectID, LessonID: lessonID}
}

// Quiz returns the quiz view for a lesson.
func Quiz(courseID, subjectID, lessonID string) View {
	return View{Screen: ScreenQuiz, CourseID: courseID, SubjectID: subjectID, LessonID: lessonID}
}

// Stack is the browsing history: append-only on forward navigation, popped
// on back. It holds exactly one entry per visited screen (push on enter,
// pop on leave); an empty stack always resolves to the root Courses view.
type Stack struct {
	entries []View
}

// NewStack returns a history stack seeded with the root view.
func NewStack() *Stack {
	return &Stack{entries: []View{Root()}}
}

// Push appends a view to the history.
func (s *Stack) Push(v View) {
	s.entries = append(s.entries, v)
}

// Top returns the current view, or the root view if the history is empty.
func (s *Stack) Top() View {
	if len(s.entries) == 0 {
		return Root()
	}
	return s.entries[len(s.entries)-1]
}

// Pop removes the current view and returns the new top. Popping an empty or
// single-entry history resolves to the root view; the stack never holds a
// "screen below root".
func (s *Stack) Pop() View {
	if len(s.entries) > 0 {
		s.entries = s.entries[:len(s.entries)-1]
	}
	return s.Top()
}

// Replace swaps the current top entry for v without growing the history.
// Used when a screen transitions in place (e.g. quiz -> its results).
func (s *Stack) Replace(v View) {
	if len(s.entries) == 0 {
		s.entries = append(s.entries, v)
		return
	}
	s.entries[len(s.entries)-1] = v
}

// Reset discards all history and returns to the root view.
func (s *Stack) Reset() {
	s.entries = []View{Root()}
}

// Len returns the number of entries in the history.
func (s *Stack) Len() int {
	return len(s.entries)
}
