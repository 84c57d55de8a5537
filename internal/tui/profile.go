package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avrillon/roomscout/internal/session"
	"github.com/avrillon/roomscout/pkg/api"
	"github.com/avrillon/roomscout/pkg/domain"
)

type profileField int

const (
	profEmail profileField = iota
	profUsername
	profDescription
	profPhoto
	numProfileFields
)

type profileLoadedMsg struct {
	gen  int
	user *domain.UserProfile
	err  error
}

type profileSavedMsg struct {
	user      *domain.UserProfile
	err       error
	uploadErr error
}

// profileModel is the profile tab: editable local copies of the fetched
// profile, a combined update call, and an independent photo upload.
// It needs both session capabilities: Reader for the token and user id,
// Writer (via sessionEndedMsg to the root) for logout.
type profileModel struct {
	client  *api.Client
	session session.Reader

	fetch   fetchState[*domain.UserProfile]
	fields  [numProfileFields]string
	focus   profileField
	editing bool // typing in the focused field

	photoURL   string // remote photo currently on the profile
	localPhoto string // local path chosen for the next upload, "" if none

	saving    bool
	errMsg    string
	statusMsg string
	width     int
	height    int
}

func newProfileModel(c *api.Client, reader session.Reader) profileModel {
	return profileModel{client: c, session: reader}
}

// activate fetches the profile for the current session's user id.
func (m profileModel) activate() (profileModel, tea.Cmd) {
	gen := m.fetch.begin()
	c := m.client
	token := m.session.Token()
	userID := m.session.CurrentUserID()
	return m, func() tea.Msg {
		user, err := c.GetUser(context.Background(), token, userID)
		return profileLoadedMsg{gen: gen, user: user, err: err}
	}
}

func (m profileModel) Update(msg tea.Msg) (profileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.err != nil && api.IsStatus(msg.err, 401) {
			return m, expireSessionCmd()
		}
		m.fetch.resolve(msg.gen, msg.user, msg.err, errFetchProfile)
		if msg.gen == m.fetch.gen && msg.err == nil && msg.user != nil {
			// Seed the editable copies from the fetch result.
			m.fields[profEmail] = msg.user.Email
			m.fields[profUsername] = msg.user.Username
			m.fields[profDescription] = msg.user.Description
			m.fields[profPhoto] = ""
			m.photoURL = msg.user.PhotoURL()
			m.localPhoto = ""
		}
		return m, nil

	case profileSavedMsg:
		m.saving = false
		if msg.err != nil {
			if api.IsStatus(msg.err, 401) {
				return m, expireSessionCmd()
			}
			m.errMsg = api.UserMessage(msg.err, errSubmit)
			return m, nil
		}
		if msg.user != nil {
			m.photoURL = msg.user.PhotoURL()
		}
		// The two calls are not transactional: the field update stays
		// committed even when the upload fails.
		if msg.uploadErr != nil {
			m.errMsg = "Profile saved, but the photo upload failed: " + api.UserMessage(msg.uploadErr, "please try again.")
			return m, nil
		}
		m.statusMsg = "profile updated"
		m.localPhoto = ""
		m.fields[profPhoto] = ""
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m profileModel) updateKeys(msg tea.KeyMsg) (profileModel, tea.Cmd) {
	if m.saving {
		return m, nil
	}
	m.statusMsg = ""

	if m.editing {
		switch msg.String() {
		case "enter", "esc":
			m.editing = false
		default:
			m.errMsg = ""
			m.fields[m.focus] = editRune(m.fields[m.focus], msg.String())
		}
		return m, nil
	}

	switch msg.String() {
	case "j", "down", "tab":
		m.focus = (m.focus + 1) % numProfileFields
	case "k", "up", "shift+tab":
		m.focus = (m.focus - 1 + numProfileFields) % numProfileFields
	case "enter":
		m.editing = true
	case "x":
		// Clear the photo locally; nothing is committed until save.
		m.photoURL = ""
		m.localPhoto = ""
		m.fields[profPhoto] = ""
	case "ctrl+s":
		return m.submit()
	case "ctrl+l":
		return m, func() tea.Msg { return sessionEndedMsg{} }
	}
	return m, nil
}

// submit validates the three text fields, sends the combined update,
// then — only when a new local photo was chosen — the independent
// multipart upload.
func (m profileModel) submit() (profileModel, tea.Cmd) {
	email := strings.TrimSpace(m.fields[profEmail])
	username := strings.TrimSpace(m.fields[profUsername])
	description := strings.TrimSpace(m.fields[profDescription])

	if email == "" || username == "" || description == "" {
		m.errMsg = "All fields are required."
		return m, nil
	}

	m.saving = true
	m.errMsg = ""
	m.localPhoto = strings.TrimSpace(m.fields[profPhoto])

	c := m.client
	token := m.session.Token()
	localPhoto := m.localPhoto
	return m, func() tea.Msg {
		ctx := context.Background()
		user, err := c.UpdateUser(ctx, token, api.UpdateUserRequest{
			Email:       email,
			Username:    username,
			Description: description,
		})
		if err != nil {
			return profileSavedMsg{err: err}
		}
		if localPhoto == "" {
			return profileSavedMsg{user: user}
		}
		uploaded, upErr := c.UploadPicture(ctx, token, localPhoto)
		if upErr != nil {
			return profileSavedMsg{user: user, uploadErr: upErr}
		}
		return profileSavedMsg{user: uploaded}
	}
}

func (m profileModel) View() string {
	if m.fetch.loading {
		return " " + dimStyle.Render("loading profile...")
	}
	if m.fetch.err != "" {
		return " " + errorStyle.Render("error: "+m.fetch.err)
	}
	if m.fetch.data == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("\n " + selectedStyle.Render("Your profile") + "\n\n")

	labels := [numProfileFields]string{"email", "username", "about you", "new photo"}
	for i := profileField(0); i < numProfileFields; i++ {
		cursor := " "
		style := metaStyle
		if i == m.focus {
			cursor = ">"
			style = selectedStyle
		}
		value := m.fields[i]
		if i == m.focus && m.editing {
			value += "█"
		}
		if i == profPhoto && value == "" && !(i == m.focus && m.editing) {
			value = inputPlaceholderStyle.Render("path to an image file...")
		}
		fmt.Fprintf(&sb, " %s %s: %s\n", cursor, style.Render(fmt.Sprintf("%-9s", labels[i])), value)
	}

	sb.WriteString("\n")
	if m.photoURL != "" {
		sb.WriteString(" " + metaStyle.Render("photo: ") + dimStyle.Render(truncStr(m.photoURL, maxInt(m.width-12, 20))) + "  " + metaStyle.Render("(x to remove)") + "\n")
	} else {
		sb.WriteString(" " + dimStyle.Render("no profile photo") + "\n")
	}

	sb.WriteString("\n")
	switch {
	case m.saving:
		sb.WriteString(" " + dimStyle.Render("saving..."))
	case m.errMsg != "":
		sb.WriteString(" " + errorStyle.Render(m.errMsg))
	case m.statusMsg != "":
		sb.WriteString(" " + statusStyle.Render(m.statusMsg))
	}
	sb.WriteString("\n")

	return sb.String()
}
