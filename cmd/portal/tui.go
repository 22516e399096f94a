package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/subassign/portal/auth"
	"github.com/subassign/portal/client"
	"github.com/subassign/portal/portal"
	"github.com/subassign/portal/session"
)

type state int

const (
	stateLogin state = iota
	stateDashboard
	stateAssignments
	stateSubmissions
)

type rootModel struct {
	state    state
	client   client.Client
	sessions *session.Store

	loginModel       loginModel
	assignmentsModel assignmentsModel
	submissionsModel submissionsModel
}

func newRootModel(c client.Client, sessions *session.Store) rootModel {
	m := rootModel{
		client:   c,
		sessions: sessions,
	}
	m.state = m.route()
	if m.state == stateLogin {
		m.loginModel = newLoginModel(c, sessions)
	}
	return m
}

// route applies the authorization gate to the landing view.
func (m rootModel) route() state {
	switch session.CanAccess(m.sessions.Snapshot(), nil) {
	case session.DecisionAllow:
		return stateDashboard
	default:
		return stateLogin
	}
}

func (m rootModel) Init() tea.Cmd {
	if m.state == stateLogin {
		return m.loginModel.Init()
	}
	return nil
}

// gotoMsg switches the root view. Child models emit it when they are
// done or when the gate sends the user elsewhere.
type gotoMsg struct {
	state state

	// set when navigating to the submissions of one assignment
	assignmentID string
}

func gotoCmd(s state) tea.Cmd {
	return func() tea.Msg { return gotoMsg{state: s} }
}

func gotoSubmissionsCmd(assignmentID string) tea.Cmd {
	return func() tea.Msg {
		return gotoMsg{state: stateSubmissions, assignmentID: assignmentID}
	}
}

func (m rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if g, ok := msg.(gotoMsg); ok {
		return m.enterWithAssignment(g.state, g.assignmentID)
	}

	switch m.state {
	case stateLogin:
		var cmd tea.Cmd
		m.loginModel, cmd = m.loginModel.Update(msg)
		return m, cmd
	case stateDashboard:
		return m.updateDashboard(msg)
	case stateAssignments:
		var cmd tea.Cmd
		m.assignmentsModel, cmd = m.assignmentsModel.Update(msg)
		return m, cmd
	case stateSubmissions:
		var cmd tea.Cmd
		m.submissionsModel, cmd = m.submissionsModel.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m rootModel) enter(target state) (tea.Model, tea.Cmd) {
	return m.enterWithAssignment(target, "")
}

// enterWithAssignment gates the target view and initializes its model.
// Role-gated views fall back per the gate decision instead of erroring.
func (m rootModel) enterWithAssignment(target state, assignmentID string) (tea.Model, tea.Cmd) {
	var required *auth.Role
	switch target {
	case stateSubmissions:
		// the all-submissions view is instructor only; per-assignment
		// submissions stay visible to the submitting student
		if assignmentID == "" {
			role := auth.RoleInstructor
			required = &role
		}
	}

	if target != stateLogin {
		switch session.CanAccess(m.sessions.Snapshot(), required) {
		case session.DecisionRedirectToLogin:
			target = stateLogin
		case session.DecisionRedirectToDefault:
			target = stateDashboard
		}
	}

	m.state = target
	switch target {
	case stateLogin:
		m.loginModel = newLoginModel(m.client, m.sessions)
		return m, m.loginModel.Init()
	case stateAssignments:
		m.assignmentsModel = newAssignmentsModel(m.client, m.sessions)
		return m, m.assignmentsModel.Init()
	case stateSubmissions:
		m.submissionsModel = newSubmissionsModel(
			portal.NewSubmissionBoard(m.client, m.sessions), assignmentID)
		return m, m.submissionsModel.Init()
	}
	return m, nil
}

func (m rootModel) updateDashboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "1":
			return m.enter(stateAssignments)
		case "2":
			return m.enter(stateSubmissions)
		case "l":
			m.sessions.Logout()
			return m.enter(stateLogin)
		}
	}
	return m, nil
}

func (m rootModel) View() string {
	switch m.state {
	case stateLogin:
		return m.loginModel.View()
	case stateDashboard:
		return m.dashboardView()
	case stateAssignments:
		return m.assignmentsModel.View()
	case stateSubmissions:
		return m.submissionsModel.View()
	}
	return ""
}

func (m rootModel) dashboardView() string {
	user := m.sessions.CurrentUser()
	if user == nil {
		return "Redirecting to login...\n"
	}

	b := lipgloss.NewStyle().Foreground(lipgloss.Color("#3498db"))

	s := fmt.Sprintf("Signed in as %s (%s)\n\n", b.Render(user.Name), user.Role)
	s += "Select an action:\n\n"
	s += "1. Browse assignments\n"
	if user.Role == auth.RoleInstructor {
		s += "2. Review all submissions\n"
	}
	s += "\nPress l to log out, q to quit.\n"
	return s
}
