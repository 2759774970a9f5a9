// Package ui implements the qv terminal interface: a Bubble Tea model that
// routes between the course/subject/lesson browse lists, the lesson detail
// viewport, and the quiz screens, driven by the nav history stack.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/quizdeck/internal/datasource"
	"github.com/vanderheijden86/quizdeck/pkg/config"
	"github.com/vanderheijden86/quizdeck/pkg/debug"
	"github.com/vanderheijden86/quizdeck/pkg/model"
	"github.com/vanderheijden86/quizdeck/pkg/nav"
	"github.com/vanderheijden86/quizdeck/pkg/quiz"
	"github.com/vanderheijden86/quizdeck/pkg/watcher"
)

// FileChangedMsg is sent when the deck file changes on disk
type FileChangedMsg struct{}

// ReadyTimeoutMsg is sent after a short delay to ensure the UI becomes ready
// even if the terminal doesn't send WindowSizeMsg promptly
type ReadyTimeoutMsg struct{}

// ClearStatusMsg clears a temporary status message
type ClearStatusMsg struct{}

// ReadyTimeoutCmd returns a command that sends ReadyTimeoutMsg after 100ms.
// This ensures the TUI doesn't hang on "Initializing..." if the terminal
// is slow to report its size (common in tmux, SSH, some terminal emulators).
func ReadyTimeoutCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(time.Time) tea.Msg {
		return ReadyTimeoutMsg{}
	})
}

// WatchFileCmd returns a command that waits for file changes and sends FileChangedMsg
func WatchFileCmd(w *watcher.Watcher) tea.Cmd {
	return func() tea.Msg {
		<-w.Changed()
		return FileChangedMsg{}
	}
}

// clearStatusCmd clears the status line after a short delay.
func clearStatusCmd() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}

// Model is the main Bubble Tea model for qv
type Model struct {
	// Data
	content  *model.Content
	deckPath string           // Path to the deck file for reloading
	watcher  *watcher.Watcher // File watcher for live reload

	// Navigation
	stack *nav.Stack

	// UI Components
	list     list.Model
	viewport viewport.Model
	renderer *MarkdownRenderer
	theme    Theme

	// Quiz state. session is non-nil exactly while the top view is the
	// quiz screen; quizDone flips the quiz screen into results mode.
	session  *quiz.Session
	quizDone bool

	// View state
	showHelp bool
	ready    bool
	width    int
	height   int

	// Status message (for temporary feedback)
	statusMsg     string
	statusIsError bool

	appConfig config.Config
}

// NewModel creates the main model for a loaded content tree. deckPath is
// the file the content came from, used for live reload; empty (or disabling
// watch in cfg) turns live reload off.
func NewModel(content *model.Content, deckPath string, cfg config.Config) Model {
	theme := DefaultTheme(lipgloss.DefaultRenderer())

	m := Model{
		content:   content,
		deckPath:  deckPath,
		stack:     nav.NewStack(),
		theme:     theme,
		appConfig: cfg,
	}

	m.list = m.newList()
	m.viewport = viewport.New(0, 0)
	m.rebuildList()

	if deckPath != "" && !cfg.Watch.Disabled {
		w, err := watcher.NewWatcher(deckPath,
			watcher.WithDebounceDuration(time.Duration(cfg.DebounceMS())*time.Millisecond))
		if err == nil && w.Start() == nil {
			m.watcher = w
		} else {
			debug.Log("watcher unavailable for %s: %v", deckPath, err)
		}
	}

	return m
}

// Stop releases background resources (the file watcher).
func (m *Model) Stop() {
	if m.watcher != nil {
		m.watcher.Stop()
	}
}

func (m Model) newList() list.Model {
	l := list.New(nil, RowDelegate{Theme: m.theme}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)
	return l
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{ReadyTimeoutCmd()}
	if m.watcher != nil {
		cmds = append(cmds, WatchFileCmd(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resize()
		return m, nil

	case ReadyTimeoutMsg:
		if !m.ready {
			m.ready = true
			if m.width == 0 {
				m.width, m.height = 80, 24
			}
			m.resize()
		}
		return m, nil

	case FileChangedMsg:
		cmd := m.reloadDeck()
		cmds := []tea.Cmd{cmd}
		if m.watcher != nil {
			cmds = append(cmds, WatchFileCmd(m.watcher))
		}
		return m, tea.Batch(cmds...)

	case ClearStatusMsg:
		m.statusMsg = ""
		m.statusIsError = false
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) resize() {
	bodyHeight := m.height - m.headerHeight() - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	m.list.SetSize(m.width, bodyHeight)
	m.viewport.Width = m.width
	m.viewport.Height = bodyHeight

	wrap := m.appConfig.UI.WrapWidth
	if wrap <= 0 || wrap > m.width-2 {
		wrap = m.width - 2
	}
	if m.renderer == nil || m.renderer.Width() != wrap {
		m.renderer = NewMarkdownRenderer(wrap)
		if m.stack.Top().Screen == nav.ScreenLesson {
			m.openLessonViewport(m.stack.Top())
		}
	}
	if m.session != nil && m.quizDone {
		m.viewport.SetContent(m.renderResultsBody())
	}
}

// reloadDeck re-reads the deck file after an on-disk change. The current
// view is kept when its id chain still resolves; otherwise navigation falls
// back to the root course list rather than pointing at content that no
// longer exists.
func (m *Model) reloadDeck() tea.Cmd {
	content, err := datasource.LoadContentFromPath(m.deckPath)
	if err != nil {
		m.setStatus(fmt.Sprintf("Reload failed: %v", err), true)
		return clearStatusCmd()
	}

	m.content = content

	if !m.viewResolves(m.stack.Top()) {
		m.stack.Reset()
		m.session = nil
		m.quizDone = false
		m.setStatus("Deck changed — current item removed, back to courses", true)
	} else {
		// A running quiz restarts against the reloaded lesson.
		if m.session != nil {
			top := m.stack.Top()
			s, err := quiz.NewSession(m.content, top.CourseID, top.SubjectID, top.LessonID, m.session.ReturnTo())
			if err != nil {
				m.exitQuizTo(nav.Root())
			} else {
				m.session = s
				m.quizDone = false
			}
		}
		m.setStatus("Deck reloaded", false)
	}

	m.rebuildList()
	if m.stack.Top().Screen == nav.ScreenLesson {
		m.openLessonViewport(m.stack.Top())
	}
	return clearStatusCmd()
}

// viewResolves reports whether every id a view names still exists in the
// content tree.
func (m *Model) viewResolves(v nav.View) bool {
	var err error
	switch v.Screen {
	case nav.ScreenCourses:
		return true
	case nav.ScreenSubjects:
		_, err = m.content.Course(v.CourseID)
	case nav.ScreenLessons:
		_, err = m.content.Subject(v.CourseID, v.SubjectID)
	case nav.ScreenLesson, nav.ScreenQuiz:
		_, err = m.content.Lesson(v.CourseID, v.SubjectID, v.LessonID)
	}
	return err == nil
}

func (m *Model) setStatus(msg string, isError bool) {
	m.statusMsg = msg
	m.statusIsError = isError
}

// handleKey routes key presses by the current screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Global keys
	switch key {
	case "ctrl+c":
		m.Stop()
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key dismisses the help overlay
		m.showHelp = false
		return m, nil
	}
	if key == "?" {
		m.showHelp = true
		return m, nil
	}

	top := m.stack.Top()

	if top.Screen == nav.ScreenQuiz {
		return m.handleQuizKey(msg)
	}

	// Filtering owns the keyboard while active.
	if top.Screen != nav.ScreenLesson && m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch key {
	case "q":
		m.Stop()
		return m, tea.Quit

	case "esc", "backspace", "h", "left":
		if top.Screen == nav.ScreenCourses {
			// Back at the root is a no-op
			return m, nil
		}
		m.goBack()
		return m, nil

	case "enter", "l", "right":
		if top.Screen == nav.ScreenLesson {
			return m, nil
		}
		return m.enterSelected()

	case "s":
		// Start the quiz for the focused lesson
		switch top.Screen {
		case nav.ScreenLesson:
			return m.startQuiz(top.CourseID, top.SubjectID, top.LessonID)
		case nav.ScreenLessons:
			if item, ok := m.list.SelectedItem().(LessonItem); ok {
				return m.startQuiz(top.CourseID, top.SubjectID, item.Lesson.ID)
			}
		}
	}

	// Remaining keys go to the focused component.
	var cmd tea.Cmd
	if top.Screen == nav.ScreenLesson {
		m.viewport, cmd = m.viewport.Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

// enterSelected pushes the view for the selected list row.
func (m Model) enterSelected() (tea.Model, tea.Cmd) {
	top := m.stack.Top()

	switch item := m.list.SelectedItem().(type) {
	case CourseItem:
		m.pushView(nav.Subjects(item.Course.ID))
	case SubjectItem:
		m.pushView(nav.Lessons(top.CourseID, item.Subject.ID))
	case LessonItem:
		m.pushView(nav.Lesson(top.CourseID, top.SubjectID, item.Lesson.ID))
	}
	return m, nil
}

// pushView navigates forward, falling back to the root course list when the
// target's id chain no longer resolves (e.g. deck changed underneath us).
func (m *Model) pushView(v nav.View) {
	if !m.viewResolves(v) {
		debug.Log("navigation target %s no longer resolves, resetting", v.Screen)
		m.stack.Reset()
		m.setStatus("Content not found — back to courses", true)
		m.rebuildList()
		return
	}

	m.stack.Push(v)
	if v.Screen == nav.ScreenLesson {
		m.openLessonViewport(v)
		return
	}
	m.rebuildList()
}

// goBack pops exactly one entry off the history.
func (m *Model) goBack() {
	from := m.stack.Top()
	to := m.stack.Pop()
	debug.Log("back: %s -> %s", from.Screen, to.Screen)

	if to.Screen == nav.ScreenLesson {
		m.openLessonViewport(to)
		return
	}
	m.rebuildList()
	m.reselect(from)
}

// reselect moves the list cursor to the row we just came back from.
func (m *Model) reselect(from nav.View) {
	var want string
	switch from.Screen {
	case nav.ScreenSubjects:
		want = from.CourseID
	case nav.ScreenLessons:
		want = from.SubjectID
	case nav.ScreenLesson, nav.ScreenQuiz:
		want = from.LessonID
	default:
		return
	}

	for idx, it := range m.list.Items() {
		var id string
		switch item := it.(type) {
		case CourseItem:
			id = item.Course.ID
		case SubjectItem:
			id = item.Subject.ID
		case LessonItem:
			id = item.Lesson.ID
		}
		if id == want {
			m.list.Select(idx)
			return
		}
	}
}

// rebuildList fills the list component for the current view.
func (m *Model) rebuildList() {
	top := m.stack.Top()
	var items []list.Item

	switch top.Screen {
	case nav.ScreenCourses:
		for _, c := range m.content.Courses {
			items = append(items, CourseItem{Course: c})
		}

	case nav.ScreenSubjects:
		course, err := m.content.Course(top.CourseID)
		if err != nil {
			m.stack.Reset()
			m.rebuildList()
			return
		}
		for _, s := range course.Subjects {
			items = append(items, SubjectItem{Subject: s, CourseColor: course.Color})
		}

	case nav.ScreenLessons:
		course, err := m.content.Course(top.CourseID)
		if err != nil {
			m.stack.Reset()
			m.rebuildList()
			return
		}
		subject, err := m.content.Subject(top.CourseID, top.SubjectID)
		if err != nil {
			m.stack.Reset()
			m.rebuildList()
			return
		}
		for _, l := range subject.Lessons {
			items = append(items, LessonItem{Lesson: l, CourseColor: course.Color})
		}
	}

	m.list.SetItems(items)
	m.list.ResetFilter()
	m.list.Select(0)
}

// openLessonViewport renders the lesson summary into the viewport.
func (m *Model) openLessonViewport(v nav.View) {
	lesson, err := m.content.Lesson(v.CourseID, v.SubjectID, v.LessonID)
	if err != nil {
		m.stack.Reset()
		m.setStatus("Lesson not found — back to courses", true)
		m.rebuildList()
		return
	}
	m.viewport.SetContent(m.renderer.Render(SummaryMarkdown(lesson)))
	m.viewport.GotoTop()
}

// startQuiz creates a fresh session and pushes the quiz view. The view to
// return to afterwards is captured now, by name, from the current top.
func (m Model) startQuiz(courseID, subjectID, lessonID string) (tea.Model, tea.Cmd) {
	returnTo := m.stack.Top()
	session, err := quiz.NewSession(m.content, courseID, subjectID, lessonID, returnTo)
	if err != nil {
		m.setStatus(fmt.Sprintf("Cannot start quiz: %v", err), true)
		return m, clearStatusCmd()
	}

	m.session = session
	m.quizDone = false
	m.stack.Push(nav.Quiz(courseID, subjectID, lessonID))
	return m, nil
}

// exitQuizTo leaves the quiz screen for the given view.
func (m *Model) exitQuizTo(to nav.View) {
	m.session = nil
	m.quizDone = false
	m.stack.Pop()
	if m.stack.Top() != to {
		m.stack.Replace(to)
	}
	if to.Screen == nav.ScreenLesson {
		m.openLessonViewport(to)
		return
	}
	m.rebuildList()
}

// handleQuizKey handles keys on the quiz and results screens.
func (m Model) handleQuizKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session == nil {
		// Defensive: quiz screen without a session falls back to root
		m.stack.Reset()
		m.rebuildList()
		return m, nil
	}

	if m.quizDone {
		return m.handleResultsKey(msg)
	}

	key := msg.String()

	// Answer selection (a/b/c/... or 1/2/3/...) wins over the single-letter
	// navigation aliases until the question is answered, so high-indexed
	// options stay reachable on questions with many of them.
	if m.session.Answer(m.session.Current()) == model.Unanswered {
		if idx, ok := optionIndexForKey(key, len(m.session.Question().Options)); ok {
			if err := m.session.SelectAnswer(idx); err != nil {
				debug.Log("selection rejected: %v", err)
			}
			return m, nil
		}
	}

	switch key {
	case "q", "esc":
		m.exitQuizTo(m.session.ReturnTo())
		return m, nil

	case "n", "right", "l", "enter":
		if m.session.Next() {
			m.quizDone = true
			m.viewport.SetContent(m.renderResultsBody())
			m.viewport.GotoTop()
		}
		return m, nil

	case "p", "left", "h":
		m.session.Prev()
		return m, nil
	}

	return m, nil
}

// handleResultsKey handles keys on the results screen.
func (m Model) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r":
		m.session = m.session.Retry()
		m.quizDone = false
		return m, nil

	case "c":
		if err := clipboard.WriteAll(m.session.Summary()); err != nil {
			m.setStatus("Clipboard unavailable", true)
		} else {
			m.setStatus("Results copied to clipboard", false)
		}
		return m, clearStatusCmd()

	case "q", "esc", "enter":
		m.exitQuizTo(m.session.ReturnTo())
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// optionIndexForKey maps "a".."z" and "1".."9" to an option index.
func optionIndexForKey(key string, optionCount int) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	c := key[0]
	var idx int
	switch {
	case c >= 'a' && c <= 'z':
		idx = int(c - 'a')
	case c >= '1' && c <= '9':
		idx = int(c - '1')
	default:
		return 0, false
	}
	if idx >= optionCount {
		return 0, false
	}
	return idx, true
}

// Stack exposes the navigation history (read-only use in tests and status).
func (m Model) Stack() *nav.Stack {
	return m.stack
}

// Session exposes the active quiz session, nil outside the quiz screen.
func (m Model) Session() *quiz.Session {
	return m.session
}

const footerHeight = 2

// headerHeight is 2 rows (title line plus divider), or 1 in headless mode.
func (m Model) headerHeight() int {
	if m.appConfig.UI.Headless {
		return 1
	}
	return 2
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var body string
	top := m.stack.Top()
	switch top.Screen {
	case nav.ScreenLesson:
		body = m.viewport.View()
	case nav.ScreenQuiz:
		if m.quizDone {
			body = m.viewport.View()
		} else {
			body = m.renderQuiz()
		}
	default:
		body = m.list.View()
	}

	return strings.Join([]string{m.renderHeader(), body, m.renderFooter()}, "\n")
}

// renderHeader renders the app title, breadcrumb, and quiz progress. In
// headless mode the title block and divider are dropped to save two rows.
func (m Model) renderHeader() string {
	t := m.theme

	left := t.SecondaryText.Render(m.breadcrumb())
	if !m.appConfig.UI.Headless {
		left = t.Header.Render(" qv ") + " " + left
	}

	right := ""
	if m.session != nil && !m.quizDone {
		sc := fmt.Sprintf("Question %d/%d  ", m.session.Current()+1, m.session.Total())
		bar := RenderProgressBar(m.session.AnsweredCount(), m.session.Total(), 10, t)
		right = t.MutedText.Render(sc) + bar
	}

	pad := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if pad < 1 {
		pad = 1
	}
	line := left + strings.Repeat(" ", pad) + right
	if m.appConfig.UI.Headless {
		return line
	}
	return line + "\n" + RenderDivider(m.width)
}

// breadcrumb renders the course > subject > lesson trail for the current view.
func (m Model) breadcrumb() string {
	top := m.stack.Top()
	parts := []string{"Courses"}

	if top.CourseID != "" {
		if c, err := m.content.Course(top.CourseID); err == nil {
			parts = append(parts, truncate(c.Title, 24))
		}
	}
	if top.SubjectID != "" {
		if s, err := m.content.Subject(top.CourseID, top.SubjectID); err == nil {
			parts = append(parts, truncate(s.Title, 24))
		}
	}
	if top.LessonID != "" {
		if l, err := m.content.Lesson(top.CourseID, top.SubjectID, top.LessonID); err == nil {
			parts = append(parts, truncate(l.Title, 24))
		}
	}
	if top.Screen == nav.ScreenQuiz {
		if m.quizDone {
			parts = append(parts, "Results")
		} else {
			parts = append(parts, "Quiz")
		}
	}
	return strings.Join(parts, " › ")
}

// renderFooter renders the status line and contextual key hints.
func (m Model) renderFooter() string {
	t := m.theme

	status := ""
	if m.statusMsg != "" {
		if m.statusIsError {
			status = t.WrongText.Render(m.statusMsg)
		} else {
			status = t.CorrectText.Render(m.statusMsg)
		}
	}

	var hints string
	top := m.stack.Top()
	switch {
	case top.Screen == nav.ScreenQuiz && m.quizDone:
		hints = "r retry · c copy · enter back · ? help"
	case top.Screen == nav.ScreenQuiz:
		hints = "a-z answer · n next · p prev · esc leave · ? help"
	case top.Screen == nav.ScreenLesson:
		hints = "s quiz · j/k scroll · esc back · ? help"
	case top.Screen == nav.ScreenCourses:
		hints = "enter open · / filter · q quit · ? help"
	default:
		hints = "enter open · esc back · / filter · ? help"
	}

	return RenderDivider(m.width) + "\n" + status +
		strings.Repeat(" ", max(1, m.width-lipgloss.Width(status)-lipgloss.Width(hints)-1)) +
		t.MutedText.Render(hints)
}

// renderQuiz renders the active question with its options and, once
// answered, correctness feedback and the explanation.
func (m Model) renderQuiz() string {
	t := m.theme
	s := m.session
	q := s.Question()
	chosen := s.Answer(s.Current())
	answered := chosen != model.Unanswered

	var b strings.Builder

	stemStyle := t.Renderer.NewStyle().Bold(true).Width(m.width - 4)
	b.WriteString("\n")
	b.WriteString(stemStyle.Render(fmt.Sprintf("%d. %s", s.Current()+1, q.Stem)))
	b.WriteString("\n\n")

	for i, opt := range q.Options {
		label := fmt.Sprintf("  %s) %s", optionLabel(i), opt)
		style := t.Base

		if answered {
			switch {
			case i == q.AnswerIndex:
				style = t.CorrectText.Background(ColorCorrectBg)
				label += "  ✓"
			case i == chosen:
				style = t.WrongText.Background(ColorWrongBg)
				label += "  ✗"
			default:
				style = t.MutedText
			}
		}

		b.WriteString(style.Render(truncateRunesHelper(label, m.width-2, "…")))
		b.WriteString("\n")
	}

	if answered && m.appConfig.UI.ShowExplanations {
		b.WriteString("\n")
		if chosen == q.AnswerIndex {
			b.WriteString(t.CorrectText.Render("Correct."))
		} else {
			b.WriteString(t.WrongText.Render("Incorrect."))
		}
		if q.Explanation != "" {
			b.WriteString("\n")
			expl := t.Renderer.NewStyle().Foreground(t.Subtext).Width(m.width - 4).Render(q.Explanation)
			b.WriteString(expl)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderResultsBody renders the score and review list for the viewport.
func (m Model) renderResultsBody() string {
	t := m.theme
	s := m.session
	sc := s.Score()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(t.PrimaryBold.Render(fmt.Sprintf("  %s — Results", s.Lesson().Title)))
	b.WriteString("\n\n")

	bar := RenderScoreBar(float64(sc.Correct)/float64(sc.Total), 20, t)
	b.WriteString(fmt.Sprintf("  %d/%d correct (%d%%)  %s\n", sc.Correct, sc.Total, sc.Percent, bar))

	review := s.Review()
	if len(review) == 0 {
		b.WriteString("\n")
		b.WriteString(t.CorrectText.Render("  Perfect score!"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(t.SecondaryText.Render(fmt.Sprintf("  To review (%d):", len(review))))
	b.WriteString("\n\n")

	wrap := t.Renderer.NewStyle().Width(m.width - 8)
	for _, e := range review {
		b.WriteString(t.Base.Bold(true).Render(fmt.Sprintf("  Q%d. ", e.Index+1)))
		b.WriteString(wrap.Render(e.Stem))
		b.WriteString("\n")
		chosenStyle := t.WrongText
		if e.Chosen == quiz.NotAnswered {
			chosenStyle = t.Renderer.NewStyle().Foreground(t.Unanswered)
		}
		b.WriteString("      " + chosenStyle.Render("your answer: "+e.Chosen) + "\n")
		b.WriteString("      " + t.CorrectText.Render("correct:     "+e.CorrectText) + "\n")
		if e.Explanation != "" {
			b.WriteString(t.MutedText.Render("      " + truncateRunesHelper(e.Explanation, m.width-8, "…")))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderHelp renders the full-screen help overlay.
func (m Model) renderHelp() string {
	t := m.theme

	rows := []struct{ key, desc string }{
		{"enter / l", "open the selected item"},
		{"esc / h", "go back one screen"},
		{"j / k", "move selection, scroll"},
		{"/", "filter the current list"},
		{"s", "start the quiz for a lesson"},
		{"a-z, 1-9", "answer the current question"},
		{"n / p", "next / previous question"},
		{"r", "retry the quiz (results screen)"},
		{"c", "copy results to clipboard"},
		{"q", "quit"},
		{"?", "toggle this help"},
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(t.Header.Render(" qv — keys "))
	b.WriteString("\n\n")
	for _, r := range rows {
		b.WriteString("  " + t.PrimaryBold.Render(padRight(r.key, 12)) + t.Base.Render(r.desc) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(t.MutedText.Render("  press any key to close"))
	return b.String()
}
