package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/subassign/portal/auth"
	"github.com/subassign/portal/client"
	"github.com/subassign/portal/portal"
	"github.com/subassign/portal/session"
)

type assignmentsPhase int

const (
	phaseBrowse assignmentsPhase = iota
	phaseSearch
	phaseCreate
	phaseSubmit
	phaseWaiting
)

type assignmentsModel struct {
	list     *portal.AssignmentList
	board    *portal.SubmissionBoard
	sessions *session.Store

	phase  assignmentsPhase
	cursor int
	errMsg string
	notice string

	searchInput textinput.Model

	// create form (instructor)
	titleInput textinput.Model
	descInput  textinput.Model
	dueInput   textinput.Model
	createRow  int

	// submit form (student)
	submitTarget string
	contentInput textinput.Model
	fileInput    textinput.Model
	submitRow    int

	waitingSpn spinner.Model
}

type refreshDone struct{ err error }
type deleteDone struct{ err error }
type createDone struct{ err error }
type submitDone struct{ err error }

func newAssignmentsModel(c client.Client, sessions *session.Store) assignmentsModel {
	search := textinput.New()
	search.Placeholder = "search title or description"
	search.CharLimit = 156
	search.Width = 40

	spn := spinner.New()
	spn.Spinner = spinner.Dot
	spn.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#3498db"))

	return assignmentsModel{
		list:        portal.NewAssignmentList(c, sessions),
		board:       portal.NewSubmissionBoard(c, sessions),
		sessions:    sessions,
		searchInput: search,
		waitingSpn:  spn,
	}
}

func (m assignmentsModel) Init() tea.Cmd {
	// full refetch on entry, no cross-view cache
	return tea.Batch(m.refreshCmd(), m.waitingSpn.Tick)
}

func (m assignmentsModel) refreshCmd() tea.Cmd {
	list := m.list
	return func() tea.Msg {
		return refreshDone{err: list.Refresh(context.Background())}
	}
}

func (m assignmentsModel) visible() []client.Assignment {
	return m.list.Visible(time.Now())
}

func (m assignmentsModel) Update(msg tea.Msg) (assignmentsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.waitingSpn, cmd = m.waitingSpn.Update(msg)
		return m, cmd
	case refreshDone:
		m.phase = phaseBrowse
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, m.redirectIfLoggedOut()
		}
		m.errMsg = ""
		m.cursor = 0
		return m, nil
	case deleteDone:
		m.phase = phaseBrowse
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, m.redirectIfLoggedOut()
		}
		m.errMsg = ""
		m.notice = "assignment deleted"
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case createDone:
		if msg.err != nil {
			m.phase = phaseCreate
			m.errMsg = msg.err.Error()
			return m, m.redirectIfLoggedOut()
		}
		m.errMsg = ""
		m.notice = "assignment created"
		m.phase = phaseWaiting
		return m, m.refreshCmd()
	case submitDone:
		if msg.err != nil {
			m.phase = phaseSubmit
			m.errMsg = msg.err.Error()
			return m, m.redirectIfLoggedOut()
		}
		m.errMsg = ""
		m.notice = "submission created"
		m.phase = phaseBrowse
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// redirectIfLoggedOut sends the user to the login view when a stale
// token got the session cleared mid-flight.
func (m assignmentsModel) redirectIfLoggedOut() tea.Cmd {
	if session.CanAccess(m.sessions.Snapshot(), nil) == session.DecisionRedirectToLogin {
		return gotoCmd(stateLogin)
	}
	return nil
}

func (m assignmentsModel) handleKey(msg tea.KeyMsg) (assignmentsModel, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseSearch:
		return m.handleSearchKey(msg)
	case phaseCreate:
		return m.handleCreateKey(msg)
	case phaseSubmit:
		return m.handleSubmitKey(msg)
	case phaseWaiting:
		return m, nil
	}

	user := m.sessions.CurrentUser()

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "b", "esc":
		return m, gotoCmd(stateDashboard)
	case "r":
		m.phase = phaseWaiting
		return m, tea.Batch(m.refreshCmd(), m.waitingSpn.Tick)
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
	case "/":
		m.phase = phaseSearch
		m.searchInput.Focus()
		return m, textinput.Blink
	case "f":
		m.list.SetStatusFilter((m.list.StatusFilter() + 1) % 3)
		m.cursor = 0
	case "v":
		if a, ok := m.selected(); ok {
			return m, gotoSubmissionsCmd(a.ID)
		}
	case "n":
		if user != nil && user.Role == auth.RoleInstructor {
			m.startCreate()
			return m, textinput.Blink
		}
	case "d":
		if user != nil && user.Role == auth.RoleInstructor {
			if a, ok := m.selected(); ok {
				m.phase = phaseWaiting
				list := m.list
				id := a.ID
				del := func() tea.Msg {
					return deleteDone{err: list.Delete(context.Background(), id)}
				}
				return m, tea.Batch(del, m.waitingSpn.Tick)
			}
		}
	case "s":
		if user != nil && user.Role == auth.RoleStudent {
			if a, ok := m.selected(); ok {
				m.startSubmit(a.ID)
				return m, textinput.Blink
			}
		}
	}
	return m, nil
}

func (m assignmentsModel) selected() (client.Assignment, bool) {
	visible := m.visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return client.Assignment{}, false
	}
	return visible[m.cursor], true
}

func (m assignmentsModel) handleSearchKey(msg tea.KeyMsg) (assignmentsModel, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.phase = phaseBrowse
		m.searchInput.Blur()
		m.cursor = 0
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.list.SetQuery(m.searchInput.Value())
	m.cursor = 0
	return m, cmd
}

func (m *assignmentsModel) startCreate() {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 156
	title.Width = 40
	title.Focus()

	desc := textinput.New()
	desc.Placeholder = "description"
	desc.CharLimit = 512
	desc.Width = 40

	due := textinput.New()
	due.Placeholder = "due date (2006-01-02 15:04)"
	due.CharLimit = 32
	due.Width = 40

	m.titleInput = title
	m.descInput = desc
	m.dueInput = due
	m.createRow = 0
	m.errMsg = ""
	m.notice = ""
	m.phase = phaseCreate
}

func (m assignmentsModel) handleCreateKey(msg tea.KeyMsg) (assignmentsModel, tea.Cmd) {
	rows := []*textinput.Model{&m.titleInput, &m.descInput, &m.dueInput}

	switch msg.Type {
	case tea.KeyEsc:
		m.phase = phaseBrowse
		return m, nil
	case tea.KeyTab:
		rows[m.createRow].Blur()
		m.createRow = (m.createRow + 1) % len(rows)
		rows[m.createRow].Focus()
		return m, nil
	case tea.KeyEnter:
		if m.createRow < len(rows)-1 {
			rows[m.createRow].Blur()
			m.createRow++
			rows[m.createRow].Focus()
			return m, nil
		}
		dueDate, err := time.ParseInLocation("2006-01-02 15:04", m.dueInput.Value(), time.Local)
		if err != nil {
			m.errMsg = "due date must look like 2006-01-02 15:04"
			return m, nil
		}
		m.phase = phaseWaiting
		list := m.list
		params := client.CreateAssignmentParams{
			Title:       m.titleInput.Value(),
			Description: m.descInput.Value(),
			DueDate:     dueDate,
		}
		create := func() tea.Msg {
			_, err := list.Create(context.Background(), params)
			return createDone{err: err}
		}
		return m, tea.Batch(create, m.waitingSpn.Tick)
	}

	var cmd tea.Cmd
	*rows[m.createRow], cmd = rows[m.createRow].Update(msg)
	return m, cmd
}

func (m *assignmentsModel) startSubmit(assignmentID string) {
	content := textinput.New()
	content.Placeholder = "your answer"
	content.CharLimit = 2048
	content.Width = 60
	content.Focus()

	file := textinput.New()
	file.Placeholder = "optional file path"
	file.CharLimit = 256
	file.Width = 60

	m.submitTarget = assignmentID
	m.contentInput = content
	m.fileInput = file
	m.submitRow = 0
	m.errMsg = ""
	m.notice = ""
	m.phase = phaseSubmit
}

func (m assignmentsModel) handleSubmitKey(msg tea.KeyMsg) (assignmentsModel, tea.Cmd) {
	rows := []*textinput.Model{&m.contentInput, &m.fileInput}

	switch msg.Type {
	case tea.KeyEsc:
		m.phase = phaseBrowse
		return m, nil
	case tea.KeyTab:
		rows[m.submitRow].Blur()
		m.submitRow = (m.submitRow + 1) % len(rows)
		rows[m.submitRow].Focus()
		return m, nil
	case tea.KeyEnter:
		if m.submitRow == 0 {
			rows[0].Blur()
			m.submitRow = 1
			rows[1].Focus()
			return m, nil
		}

		params := portal.SubmitParams{
			AssignmentID: m.submitTarget,
			Content:      m.contentInput.Value(),
		}
		if path := m.fileInput.Value(); path != "" {
			raw, err := os.ReadFile(path)
			if err != nil {
				m.errMsg = fmt.Sprintf("cannot read file: %v", err)
				return m, nil
			}
			params.FileName = filepath.Base(path)
			params.FileContent = raw
		}

		m.phase = phaseWaiting
		board := m.board
		submit := func() tea.Msg {
			return submitDone{err: board.Submit(context.Background(), params)}
		}
		return m, tea.Batch(submit, m.waitingSpn.Tick)
	}

	var cmd tea.Cmd
	*rows[m.submitRow], cmd = rows[m.submitRow].Update(msg)
	return m, cmd
}

func filterLabel(f portal.StatusFilter) string {
	switch f {
	case portal.FilterUpcoming:
		return "upcoming"
	case portal.FilterOverdue:
		return "overdue"
	}
	return "all"
}

func (m assignmentsModel) View() string {
	b := lipgloss.NewStyle().Foreground(lipgloss.Color("#3498db"))
	v := lipgloss.NewStyle().Foreground(lipgloss.Color("#e056fd"))
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c"))

	switch m.phase {
	case phaseWaiting:
		return fmt.Sprintf("%s working...\n", m.waitingSpn.View())
	case phaseCreate:
		s := "New assignment\n\n"
		s += fmt.Sprintf("  %s\n  %s\n  %s\n\n",
			m.titleInput.View(), m.descInput.View(), m.dueInput.View())
		if m.errMsg != "" {
			s += errStyle.Render(m.errMsg) + "\n"
		}
		s += "\nEnter to advance/publish, esc to cancel.\n"
		return s
	case phaseSubmit:
		s := "Submit your work\n\n"
		s += fmt.Sprintf("  %s\n  %s\n\n", m.contentInput.View(), m.fileInput.View())
		if m.errMsg != "" {
			s += errStyle.Render(m.errMsg) + "\n"
		}
		s += "\nEnter on the file row submits, esc cancels.\n"
		return s
	}

	now := time.Now()
	s := fmt.Sprintf("Assignments (%s)\n", v.Render(filterLabel(m.list.StatusFilter())))
	if m.phase == phaseSearch || m.searchInput.Value() != "" {
		s += fmt.Sprintf("Search: %s\n", m.searchInput.View())
	}
	s += "\n"

	visible := m.visible()
	if len(visible) == 0 {
		s += "  nothing to show\n"
	}
	for i, a := range visible {
		prefix := "  "
		if i == m.cursor {
			prefix = b.Render("> ")
		}
		status := "due " + a.DueDate.Format("2006-01-02 15:04")
		if portal.IsOverdue(a, now) {
			status = errStyle.Render("overdue")
		}
		s += fmt.Sprintf("%s%s | %s (%s)\n", prefix, a.Title, a.Description, status)
	}

	if m.errMsg != "" {
		s += "\n" + errStyle.Render(m.errMsg) + "\n"
	}
	if m.notice != "" {
		s += "\n" + v.Render(m.notice) + "\n"
	}

	s += "\n/ search, f filter, v submissions, r refresh"
	if user := m.sessions.CurrentUser(); user != nil {
		switch user.Role {
		case auth.RoleInstructor:
			s += ", n new, d delete"
		case auth.RoleStudent:
			s += ", s submit"
		}
	}
	s += ", b back, q quit.\n"
	return s
}
