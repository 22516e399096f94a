package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/subassign/portal/client"
	"github.com/subassign/portal/session"
)

type loginModel struct {
	client   client.Client
	sessions *session.Store

	emailInput    textinput.Model
	passwordInput textinput.Model
	focusPassword bool

	waiting    bool
	waitingSpn spinner.Model
	errMsg     string
}

type loginResult struct {
	res *client.LoginResult
	err error
}

func newLoginModel(c client.Client, sessions *session.Store) loginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.Focus()
	email.CharLimit = 156
	email.Width = 40

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 156
	password.Width = 40

	spn := spinner.New()
	spn.Spinner = spinner.Dot
	spn.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#3498db"))

	return loginModel{
		client:        c,
		sessions:      sessions,
		emailInput:    email,
		passwordInput: password,
		waitingSpn:    spn,
	}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResult:
		m.waiting = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.sessions.Login(msg.res.User, msg.res.Token)
		return m, gotoCmd(stateDashboard)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.waitingSpn, cmd = m.waitingSpn.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if m.waiting {
			if msg.Type == tea.KeyCtrlC {
				return m, tea.Quit
			}
			return m, nil
		}
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyTab, tea.KeyShiftTab:
			m.focusPassword = !m.focusPassword
			m.syncFocus()
			return m, nil
		case tea.KeyEnter:
			if !m.focusPassword {
				m.focusPassword = true
				m.syncFocus()
				return m, nil
			}
			m.waiting = true
			m.errMsg = ""
			email := m.emailInput.Value()
			password := m.passwordInput.Value()
			login := func() tea.Msg {
				res, err := m.client.Login(context.Background(), email, password)
				return loginResult{res: res, err: err}
			}
			return m, tea.Batch(login, m.waitingSpn.Tick)
		}
	}

	var cmd tea.Cmd
	if m.focusPassword {
		m.passwordInput, cmd = m.passwordInput.Update(msg)
	} else {
		m.emailInput, cmd = m.emailInput.Update(msg)
	}
	return m, cmd
}

func (m loginModel) View() string {
	s := "Sign in to subassign\n\n"
	s += fmt.Sprintf("  %s\n  %s\n\n", m.emailInput.View(), m.passwordInput.View())

	if m.waiting {
		s += fmt.Sprintf("%s signing in...\n", m.waitingSpn.View())
		return s
	}

	if m.errMsg != "" {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c"))
		s += errStyle.Render(m.errMsg) + "\n"
	}

	s += "\nPress enter to continue, ctrl+c to quit.\n"
	return s
}

func (m *loginModel) syncFocus() {
	if m.focusPassword {
		m.emailInput.Blur()
		m.passwordInput.Focus()
	} else {
		m.passwordInput.Blur()
		m.emailInput.Focus()
	}
}
