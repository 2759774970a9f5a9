package datasource

import (
	"database/sql"
	"fmt"

	json "github.com/goccy/go-json"
	_ "modernc.org/sqlite"

	"github.com/vanderheijden86/quizdeck/pkg/model"
)

// SQLiteReader provides read access to a deck SQLite database.
//
// Expected schema (all position columns drive ordering):
//
//	courses(id TEXT PRIMARY KEY, title TEXT, color TEXT, position INTEGER)
//	subjects(id TEXT, course_id TEXT, title TEXT, description TEXT, position INTEGER)
//	lessons(id TEXT, subject_id TEXT, course_id TEXT, title TEXT, description TEXT,
//	        summary TEXT /* JSON [{heading,body}] */, position INTEGER)
//	questions(lesson_id TEXT, subject_id TEXT, course_id TEXT, stem TEXT,
//	          options TEXT /* JSON [string] */, answer_index INTEGER,
//	          explanation TEXT, position INTEGER)
type SQLiteReader struct {
	db   *sql.DB
	path string
}

// NewSQLiteReader opens a deck database for reading.
func NewSQLiteReader(source DataSource) (*SQLiteReader, error) {
	if source.Type != SourceTypeSQLite {
		return nil, fmt.Errorf("source is not SQLite: %s", source.Type)
	}

	dsn := fmt.Sprintf("file:%s?mode=ro&_busy_timeout=5000", source.Path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot open deck database: %w", err)
	}

	return &SQLiteReader{db: db, path: source.Path}, nil
}

// Close closes the database connection.
func (r *SQLiteReader) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// LoadContent reads the whole content tree from the database and validates it.
func (r *SQLiteReader) LoadContent() (*model.Content, error) {
	courses, err := r.loadCourses()
	if err != nil {
		return nil, err
	}

	content := &model.Content{Courses: courses}
	if len(content.Courses) == 0 {
		return nil, fmt.Errorf("deck database %s has no courses", r.path)
	}
	if err := content.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck database %s: %w", r.path, err)
	}
	return content, nil
}

func (r *SQLiteReader) loadCourses() ([]model.Course, error) {
	rows, err := r.db.Query(`SELECT id, title, COALESCE(color, '') FROM courses ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying courses: %w", err)
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(&c.ID, &c.Title, &c.Color); err != nil {
			return nil, fmt.Errorf("scanning course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}

	for i := range courses {
		subjects, err := r.loadSubjects(courses[i].ID)
		if err != nil {
			return nil, err
		}
		courses[i].Subjects = subjects
	}
	return courses, nil
}

func (r *SQLiteReader) loadSubjects(courseID string) ([]model.Subject, error) {
	rows, err := r.db.Query(
		`SELECT id, title, COALESCE(description, '') FROM subjects WHERE course_id = ? ORDER BY position`,
		courseID)
	if err != nil {
		return nil, fmt.Errorf("querying subjects: %w", err)
	}
	defer rows.Close()

	var subjects []model.Subject
	for rows.Next() {
		var s model.Subject
		if err := rows.Scan(&s.ID, &s.Title, &s.Description); err != nil {
			return nil, fmt.Errorf("scanning subject: %w", err)
		}
		subjects = append(subjects, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating subjects: %w", err)
	}

	for i := range subjects {
		lessons, err := r.loadLessons(courseID, subjects[i].ID)
		if err != nil {
			return nil, err
		}
		subjects[i].Lessons = lessons
	}
	return subjects, nil
}

func (r *SQLiteReader) loadLessons(courseID, subjectID string) ([]model.Lesson, error) {
	rows, err := r.db.Query(
		`SELECT id, title, COALESCE(description, ''), COALESCE(summary, '')
		 FROM lessons WHERE course_id = ? AND subject_id = ? ORDER BY position`,
		courseID, subjectID)
	if err != nil {
		return nil, fmt.Errorf("querying lessons: %w", err)
	}
	defer rows.Close()

	var lessons []model.Lesson
	for rows.Next() {
		var l model.Lesson
		var summaryJSON string
		if err := rows.Scan(&l.ID, &l.Title, &l.Description, &summaryJSON); err != nil {
			return nil, fmt.Errorf("scanning lesson: %w", err)
		}
		if summaryJSON != "" && summaryJSON != "null" {
			if err := json.Unmarshal([]byte(summaryJSON), &l.Summary); err != nil {
				return nil, fmt.Errorf("lesson %q: parsing summary: %w", l.ID, err)
			}
		}
		lessons = append(lessons, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lessons: %w", err)
	}

	for i := range lessons {
		quiz, err := r.loadQuestions(courseID, subjectID, lessons[i].ID)
		if err != nil {
			return nil, err
		}
		lessons[i].Quiz = quiz
	}
	return lessons, nil
}

func (r *SQLiteReader) loadQuestions(courseID, subjectID, lessonID string) ([]model.Question, error) {
	rows, err := r.db.Query(
		`SELECT stem, options, answer_index, COALESCE(explanation, '')
		 FROM questions WHERE course_id = ? AND subject_id = ? AND lesson_id = ? ORDER BY position`,
		courseID, subjectID, lessonID)
	if err != nil {
		return nil, fmt.Errorf("querying questions: %w", err)
	}
	defer rows.Close()

	var quiz []model.Question
	for rows.Next() {
		var q model.Question
		var optionsJSON string
		if err := rows.Scan(&q.Stem, &optionsJSON, &q.AnswerIndex, &q.Explanation); err != nil {
			return nil, fmt.Errorf("scanning question: %w", err)
		}
		if err := json.Unmarshal([]byte(optionsJSON), &q.Options); err != nil {
			return nil, fmt.Errorf("lesson %q: parsing question options: %w", lessonID, err)
		}
		quiz = append(quiz, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating questions: %w", err)
	}
	return quiz, nil
}
