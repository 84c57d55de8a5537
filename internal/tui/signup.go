package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avrillon/roomscout/pkg/api"
	"github.com/avrillon/roomscout/pkg/domain"
)

type signUpField int

const (
	signUpEmail signUpField = iota
	signUpUsername
	signUpDescription
	signUpPassword
	signUpConfirm
	numSignUpFields
)

type signUpResultMsg struct {
	auth *domain.AuthResponse
	err  error
}

type signUpModel struct {
	client     *api.Client
	fields     [numSignUpFields]string
	focus      signUpField
	errMsg     string
	submitting bool
}

func newSignUpModel(c *api.Client) signUpModel {
	return signUpModel{client: c}
}

func (m signUpModel) Init() tea.Cmd {
	return nil
}

func (m signUpModel) Update(msg tea.Msg) (signUpModel, tea.Cmd) {
	switch msg := msg.(type) {
	case signUpResultMsg:
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

func (m signUpModel) updateKeys(msg tea.KeyMsg) (signUpModel, tea.Cmd) {
	if m.submitting {
		return m, nil
	}
	switch msg.String() {
	case "enter":
		return m.submit()
	case "tab", "down":
		m.errMsg = ""
		m.focus = (m.focus + 1) % numSignUpFields
	case "shift+tab", "up":
		m.errMsg = ""
		m.focus = (m.focus - 1 + numSignUpFields) % numSignUpFields
	case "ctrl+n":
		return m, func() tea.Msg { return showSignInMsg{} }
	default:
		m.errMsg = ""
		m.fields[m.focus] = editRune(m.fields[m.focus], msg.String())
	}
	return m, nil
}

// submit validates locally before any network call: every field
// non-empty and password equal to its confirmation. A failed check
// short-circuits synchronously.
func (m signUpModel) submit() (signUpModel, tea.Cmd) {
	email := strings.TrimSpace(m.fields[signUpEmail])
	username := strings.TrimSpace(m.fields[signUpUsername])
	description := strings.TrimSpace(m.fields[signUpDescription])
	password := m.fields[signUpPassword]
	confirm := m.fields[signUpConfirm]

	if email == "" || username == "" || description == "" || password == "" || confirm == "" {
		m.errMsg = "All fields are required."
		return m, nil
	}
	if password != confirm {
		m.errMsg = "Passwords do not match."
		return m, nil
	}

	m.submitting = true
	m.errMsg = ""
	c := m.client
	return m, func() tea.Msg {
		auth, err := c.SignUp(context.Background(), domain.SignUpRequest{
			Email:       email,
			Username:    username,
			Description: description,
			Password:    password,
		})
		return signUpResultMsg{auth: auth, err: err}
	}
}

func (m signUpModel) View() string {
	var b strings.Builder

	b.WriteString("\n " + selectedStyle.Render("Sign up") + "\n\n")

	labels := [numSignUpFields]string{"email", "username", "about you", "password", "confirm"}
	for i := signUpField(0); i < numSignUpFields; i++ {
		cursor := " "
		style := metaStyle
		if i == m.focus {
			cursor = ">"
			style = selectedStyle
		}
		value := m.fields[i]
		if i == signUpPassword || i == signUpConfirm {
			value = strings.Repeat("*", len([]rune(value)))
		}
		if i == m.focus {
			value += "█"
		}
		if i == signUpDescription && value == "" && i != m.focus {
			value = inputPlaceholderStyle.Render("describe yourself in a few words...")
		}
		fmt.Fprintf(&b, " %s %s: %s\n", cursor, style.Render(fmt.Sprintf("%-9s", labels[i])), value)
	}

	b.WriteString("\n")
	switch {
	case m.submitting:
		b.WriteString(" " + dimStyle.Render("creating account..."))
	case m.errMsg != "":
		b.WriteString(" " + errorStyle.Render(m.errMsg))
	}
	b.WriteString("\n\n " + dimStyle.Render("Already have an account?") + " " + accentStyle.Render("ctrl+n to sign in") + "\n")

	return b.String()
}
