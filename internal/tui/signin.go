package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avrillon/roomscout/pkg/api"
	"github.com/avrillon/roomscout/pkg/domain"
)

type signInField int

const (
	signInEmail signInField = iota
	signInPassword
	numSignInFields
)

// sessionStartedMsg hands a fresh token to the root, which runs the
// login transition and swaps the navigation branch.
type sessionStartedMsg struct {
	token  string
	userID string
}

// showSignUpMsg and showSignInMsg swap between the two auth screens.
type showSignUpMsg struct{}
type showSignInMsg struct{}

type signInResultMsg struct {
	auth *domain.AuthResponse
	err  error
}

type signInModel struct {
	client       *api.Client
	fields       [numSignInFields]string
	focus        signInField
	showPassword bool
	errMsg       string
	submitting   bool
}

func newSignInModel(c *api.Client) signInModel {
	return signInModel{client: c}
}

func (m signInModel) Init() tea.Cmd {
	return nil
}

func (m signInModel) Update(msg tea.Msg) (signInModel, tea.Cmd) {
	switch msg := msg.(type) {
	case signInResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = api.UserMessage(msg.err, errSubmit)
			return m, nil
		}
		auth := msg.auth
		return m, func() tea.Msg {
			return sessionStartedMsg{token: auth.Token, userID: auth.UserID}
		}

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m signInModel) updateKeys(msg tea.KeyMsg) (signInModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	switch msg.String() {
	case "enter":
		return m.submit()
	case "tab", "down":
		m.errMsg = ""
		m.focus = (m.focus + 1) % numSignInFields
	case "shift+tab", "up":
		m.errMsg = ""
		m.focus = (m.focus - 1 + numSignInFields) % numSignInFields
	case "ctrl+r":
		m.showPassword = !m.showPassword
	case "ctrl+n":
		return m, func() tea.Msg { return showSignUpMsg{} }
	default:
		m.errMsg = ""
		m.fields[m.focus] = editRune(m.fields[m.focus], msg.String())
	}
	return m, nil
}

// submit checks non-empty fields only; the server does the real
// validation.
func (m signInModel) submit() (signInModel, tea.Cmd) {
	email := strings.TrimSpace(m.fields[signInEmail])
	password := m.fields[signInPassword]

	if email == "" || password == "" {
		m.errMsg = "Email and password are required."
		return m, nil
	}

	m.submitting = true
	m.errMsg = ""
	c := m.client
	return m, func() tea.Msg {
		auth, err := c.SignIn(context.Background(), domain.SignInRequest{
			Email:    email,
			Password: password,
		})
		return signInResultMsg{auth: auth, err: err}
	}
}

func (m signInModel) View() string {
	var b strings.Builder

	b.WriteString("\n " + selectedStyle.Render("Sign in") + "\n\n")

	labels := [numSignInFields]string{"email", "password"}
	for i := signInField(0); i < numSignInFields; i++ {
		cursor := " "
		style := metaStyle
		if i == m.focus {
			cursor = ">"
			style = selectedStyle
		}
		value := m.fields[i]
		if i == signInPassword && !m.showPassword {
			value = strings.Repeat("*", len([]rune(value)))
		}
		if i == m.focus {
			value += "█"
		}
		fmt.Fprintf(&b, " %s %s: %s\n", cursor, style.Render(fmt.Sprintf("%-9s", labels[i])), value)
	}

	b.WriteString("\n")
	switch {
	case m.submitting:
		b.WriteString(" " + dimStyle.Render("signing in..."))
	case m.errMsg != "":
		b.WriteString(" " + errorStyle.Render(m.errMsg))
	}
	b.WriteString("\n\n " + dimStyle.Render("No account yet?") + " " + accentStyle.Render("ctrl+n to sign up") + "\n")

	return b.String()
}
