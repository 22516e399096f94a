package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/subassign/portal/client"
	"github.com/subassign/portal/portal"
)

type submissionsPhase int

const (
	subPhaseBrowse submissionsPhase = iota
	subPhaseGrade
	subPhaseWaiting
)

type submissionsModel struct {
	board *portal.SubmissionBoard

	// empty means the instructor's all-submissions view
	assignmentID string

	phase  submissionsPhase
	cursor int
	errMsg string
	notice string

	gradeTarget   string
	gradeInput    textinput.Model
	feedbackInput textinput.Model
	gradeRow      int

	waitingSpn spinner.Model
}

type submissionsLoaded struct{ err error }
type gradeDone struct{ err error }

func newSubmissionsModel(board *portal.SubmissionBoard, assignmentID string) submissionsModel {
	spn := spinner.New()
	spn.Spinner = spinner.Dot
	spn.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#3498db"))

	return submissionsModel{
		board:        board,
		assignmentID: assignmentID,
		phase:        subPhaseWaiting,
		waitingSpn:   spn,
	}
}

func (m submissionsModel) Init() tea.Cmd {
	board := m.board
	assignmentID := m.assignmentID
	load := func() tea.Msg {
		if assignmentID == "" {
			return submissionsLoaded{err: board.Refresh(context.Background())}
		}
		return submissionsLoaded{err: board.RefreshByAssignment(context.Background(), assignmentID)}
	}
	return tea.Batch(load, m.waitingSpn.Tick)
}

func (m submissionsModel) Update(msg tea.Msg) (submissionsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.waitingSpn, cmd = m.waitingSpn.Update(msg)
		return m, cmd
	case submissionsLoaded:
		m.phase = subPhaseBrowse
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.cursor = 0
		return m, nil
	case gradeDone:
		if msg.err != nil {
			// grading stays open so the instructor can retry
			m.phase = subPhaseGrade
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.phase = subPhaseBrowse
		m.errMsg = ""
		m.notice = "submission graded"
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m submissionsModel) handleKey(msg tea.KeyMsg) (submissionsModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.phase == subPhaseGrade {
		return m.handleGradeKey(msg)
	}
	if m.phase == subPhaseWaiting {
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "b", "esc":
		return m, gotoCmd(stateDashboard)
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.board.Items())-1 {
			m.cursor++
		}
	case "g":
		items := m.board.Items()
		if m.cursor >= 0 && m.cursor < len(items) {
			m.startGrading(items[m.cursor].ID)
			return m, textinput.Blink
		}
	}
	return m, nil
}

func (m *submissionsModel) startGrading(submissionID string) {
	grade := textinput.New()
	grade.Placeholder = "grade 0-100"
	grade.CharLimit = 3
	grade.Width = 12
	grade.Focus()

	feedback := textinput.New()
	feedback.Placeholder = "feedback (optional)"
	feedback.CharLimit = 512
	feedback.Width = 60

	m.board.OpenGrading(submissionID)
	m.gradeTarget = submissionID
	m.gradeInput = grade
	m.feedbackInput = feedback
	m.gradeRow = 0
	m.errMsg = ""
	m.notice = ""
	m.phase = subPhaseGrade
}

func (m submissionsModel) handleGradeKey(msg tea.KeyMsg) (submissionsModel, tea.Cmd) {
	rows := []*textinput.Model{&m.gradeInput, &m.feedbackInput}

	switch msg.Type {
	case tea.KeyEsc:
		m.board.CancelGrading(m.gradeTarget)
		m.phase = subPhaseBrowse
		m.errMsg = ""
		return m, nil
	case tea.KeyTab:
		rows[m.gradeRow].Blur()
		m.gradeRow = (m.gradeRow + 1) % len(rows)
		rows[m.gradeRow].Focus()
		return m, nil
	case tea.KeyEnter:
		if m.gradeRow == 0 {
			rows[0].Blur()
			m.gradeRow = 1
			rows[1].Focus()
			return m, nil
		}
		m.phase = subPhaseWaiting
		board := m.board
		target := m.gradeTarget
		rawGrade := m.gradeInput.Value()
		feedback := m.feedbackInput.Value()
		grade := func() tea.Msg {
			return gradeDone{err: board.Grade(context.Background(), target, rawGrade, feedback)}
		}
		return m, tea.Batch(grade, m.waitingSpn.Tick)
	}

	var cmd tea.Cmd
	*rows[m.gradeRow], cmd = rows[m.gradeRow].Update(msg)
	return m, cmd
}

func renderGrade(s client.Submission) string {
	if s.Grade == nil {
		return "ungraded"
	}
	res := fmt.Sprintf("grade %d", *s.Grade)
	if s.Feedback != nil {
		res += fmt.Sprintf(" (%s)", *s.Feedback)
	}
	return res
}

func (m submissionsModel) View() string {
	b := lipgloss.NewStyle().Foreground(lipgloss.Color("#3498db"))
	v := lipgloss.NewStyle().Foreground(lipgloss.Color("#e056fd"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c"))

	switch m.phase {
	case subPhaseWaiting:
		return fmt.Sprintf("%s working...\n", m.waitingSpn.View())
	case subPhaseGrade:
		s := "Grade submission\n\n"
		s += fmt.Sprintf("  %s\n  %s\n\n", m.gradeInput.View(), m.feedbackInput.View())
		if m.errMsg != "" {
			s += errStyle.Render(m.errMsg) + "\n"
		}
		s += "\nEnter on the feedback row grades, esc cancels.\n"
		return s
	}

	title := "All submissions"
	if m.assignmentID != "" {
		title = "Submissions for assignment " + m.assignmentID
	}
	s := title + "\n\n"

	items := m.board.Items()
	if len(items) == 0 {
		s += "  nothing to show\n"
	}
	for i, item := range items {
		prefix := "  "
		if i == m.cursor {
			prefix = b.Render("> ")
		}
		line := fmt.Sprintf("%s%s: %q | %s", prefix, item.StudentName, item.Content, renderGrade(item))
		if item.FilePath != nil {
			line += " [file]"
		}
		s += line + "\n"
	}

	if m.errMsg != "" {
		s += "\n" + errStyle.Render(m.errMsg) + "\n"
	}
	if m.notice != "" {
		s += "\n" + v.Render(m.notice) + "\n"
	}

	s += "\ng grade, b back, q quit.\n"
	return s
}
