package nav

import "testing"

func TestNewStackStartsAtRoot(t *testing.T) {
	s := NewStack()
	if got := s.Top(); got.Screen != ScreenCourses {
		t.Fatalf("Top = %v, want courses", got.Screen)
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
}

func TestPushPop(t *testing.T) {
	s := NewStack()
	s.Push(Subjects("anatomy"))
	s.Push(Lessons("anatomy", "upper-limb"))

	if got := s.Top(); got.Screen != ScreenLessons || got.SubjectID != "upper-limb" {
		t.Fatalf("Top = %+v, want lessons view", got)
	}

	// Pop returns the state that existed immediately before the last push,
	// not two states back.
	got := s.Pop()
	if got.Screen != ScreenSubjects || got.CourseID != "anatomy" {
		t.Fatalf("Pop = %+v, want subjects view", got)
	}
	got = s.Pop()
	if got.Screen != ScreenCourses {
		t.Fatalf("second Pop = %+v, want courses", got)
	}
}

func TestPopOnEmptyResolvesToRoot(t *testing.T) {
	s := &Stack{} // deliberately unseeded
	if got := s.Pop(); got.Screen != ScreenCourses {
		t.Fatalf("Pop on empty = %v, want courses", got.Screen)
	}
	if got := s.Top(); got.Screen != ScreenCourses {
		t.Fatalf("Top on empty = %v, want courses", got.Screen)
	}
}

func TestPopBelowRootStaysAtRoot(t *testing.T) {
	s := NewStack()
	for i := 0; i < 3; i++ {
		if got := s.Pop(); got.Screen != ScreenCourses {
			t.Fatalf("Pop %d = %v, want courses", i, got.Screen)
		}
	}
}

func TestReplaceDoesNotGrowHistory(t *testing.T) {
	s := NewStack()
	s.Push(Lesson("a", "b", "c"))
	n := s.Len()
	s.Replace(Quiz("a", "b", "c"))
	if s.Len() != n {
		t.Fatalf("Len = %d after Replace, want %d", s.Len(), n)
	}
	if got := s.Top(); got.Screen != ScreenQuiz {
		t.Fatalf("Top = %v, want quiz", got.Screen)
	}
	// Back from the replaced entry should land on the view below it, the
	// lesson's parent, not on the replaced lesson view.
	if got := s.Pop(); got.Screen != ScreenCourses {
		t.Fatalf("Pop after Replace = %v, want courses", got.Screen)
	}
}

func TestReset(t *testing.T) {
	s := NewStack()
	s.Push(Subjects("x"))
	s.Push(Lessons("x", "y"))
	s.Reset()
	if s.Len() != 1 || s.Top().Screen != ScreenCourses {
		t.Fatalf("Reset left stack at %+v (len %d)", s.Top(), s.Len())
	}
}

func TestScreenString(t *testing.T) {
	if ScreenQuiz.String() != "quiz" || Screen(99).String() != "unknown" {
		t.Fatal("Screen.String mismatch")
	}
}
