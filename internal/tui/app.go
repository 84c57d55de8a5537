package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/avrillon/roomscout/internal/geo"
	"github.com/avrillon/roomscout/internal/session"
	"github.com/avrillon/roomscout/pkg/api"
)

type view int

const (
	viewSignIn view = iota
	viewSignUp
	viewHome
	viewAround
	viewProfile
)

// sessionEndedMsg asks the root to run the logout transition. A reason
// is shown as a notice on the sign-in screen, e.g. after an expiry.
type sessionEndedMsg struct {
	reason string
}

// expireSessionCmd is emitted when an authenticated call comes back 401:
// the stored token is stale, so the only sane move is a fresh sign-in.
func expireSessionCmd() tea.Cmd {
	return func() tea.Msg {
		return sessionEndedMsg{reason: "Your session has expired. Please sign in again."}
	}
}

// App is the root Bubbletea model. It owns the navigation branch swap:
// unauthenticated sessions see the auth screens, authenticated ones the
// three tabs. Tab models persist across switches so in-flight responses
// from a previous visit can be told apart from current ones.
type App struct {
	client  *api.Client
	session *session.Controller
	logger  *zap.Logger

	view    view
	signIn  signInModel
	signUp  signUpModel
	home    homeModel
	around  aroundModel
	profile profileModel

	notice  string
	initCmd tea.Cmd
	width   int
	height  int
	frame   int // logo shimmer animation frame
}

// NewApp creates the root model. The starting branch follows the
// bootstrapped session: a restored token lands on the listings tab.
func NewApp(c *api.Client, sess *session.Controller, locator geo.Provider, logger *zap.Logger) App {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := App{
		client:  c,
		session: sess,
		logger:  logger,
		signIn:  newSignInModel(c),
		signUp:  newSignUpModel(c),
		home:    newHomeModel(c),
		around:  newAroundModel(c, locator),
		profile: newProfileModel(c, sess),
	}
	if sess.Authenticated() {
		a.view = viewHome
		a.home, a.initCmd = a.home.activate()
	} else {
		a.view = viewSignIn
	}
	return a
}

func (a App) Init() tea.Cmd {
	return tea.Batch(shimmerTickCmd(), a.initCmd)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Chrome: header(2) + tabs(1) + help(1) = 4 lines
		bodyMsg := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 4}
		a.home, _ = a.home.Update(bodyMsg)
		a.around, _ = a.around.Update(bodyMsg)
		a.profile, _ = a.profile.Update(bodyMsg)
		return a, nil

	case shimmerTickMsg:
		a.frame++
		return a, shimmerTickCmd()

	case sessionStartedMsg:
		if err := a.session.Login(msg.token, msg.userID); err != nil {
			a.logger.Warn("persisting session failed", zap.Error(err))
			a.notice = "Signing in failed. Please try again."
			a.view = viewSignIn
			return a, nil
		}
		a.notice = ""
		a.signIn = newSignInModel(a.client)
		a.signUp = newSignUpModel(a.client)
		a.view = viewHome
		var cmd tea.Cmd
		a.home, cmd = a.home.activate()
		return a, cmd

	case sessionEndedMsg:
		if err := a.session.Logout(); err != nil {
			a.logger.Warn("clearing session failed", zap.Error(err))
		}
		a.notice = msg.reason
		a.signIn = newSignInModel(a.client)
		a.view = viewSignIn
		return a, nil

	case showSignUpMsg:
		a.view = viewSignUp
		a.signUp = newSignUpModel(a.client)
		return a, nil

	case showSignInMsg:
		a.view = viewSignIn
		a.signIn = newSignInModel(a.client)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.session.Authenticated() && !a.isEditing() {
			switch msg.String() {
			case "q":
				return a, tea.Quit
			case "1":
				if a.view != viewHome {
					a.view = viewHome
					var cmd tea.Cmd
					a.home, cmd = a.home.activate()
					return a, cmd
				}
				return a, nil
			case "2":
				if a.view != viewAround {
					a.view = viewAround
					var cmd tea.Cmd
					a.around, cmd = a.around.activate()
					return a, cmd
				}
				return a, nil
			case "3":
				if a.view != viewProfile {
					a.view = viewProfile
					var cmd tea.Cmd
					a.profile, cmd = a.profile.activate()
					return a, cmd
				}
				return a, nil
			}
		}
	}

	var cmd tea.Cmd
	switch a.view {
	case viewSignIn:
		a.signIn, cmd = a.signIn.Update(msg)
	case viewSignUp:
		a.signUp, cmd = a.signUp.Update(msg)
	case viewHome:
		a.home, cmd = a.home.Update(msg)
	case viewAround:
		a.around, cmd = a.around.Update(msg)
	case viewProfile:
		a.profile, cmd = a.profile.Update(msg)
	}
	return a, cmd
}

func (a App) isEditing() bool {
	return a.view == viewProfile && a.profile.editing
}

func (a App) View() string {
	// Header: centered shimmer logo
	logo := renderShimmerLogo(a.frame)
	logoWidth := lipgloss.Width(logo)
	logoPad := (a.width - logoWidth) / 2
	if logoPad < 0 {
		logoPad = 0
	}
	header := strings.Repeat(" ", logoPad) + logo

	if a.notice != "" {
		noticeLine := errorStyle.Render(a.notice)
		noticePad := (a.width - lipgloss.Width(noticeLine)) / 2
		if noticePad < 0 {
			noticePad = 0
		}
		header += "\n" + strings.Repeat(" ", noticePad) + noticeLine
	} else {
		header += "\n"
	}

	// Auth branch: no tab bar, just the form.
	if !a.session.Authenticated() {
		var body, help string
		if a.view == viewSignUp {
			body = a.signUp.View()
			help = " " + helpEntry("tab", "next") + "  " + helpEntry("enter", "submit") + "  " + helpEntry("ctrl+n", "sign in") + "  " + helpEntry("ctrl+c", "quit")
		} else {
			body = a.signIn.View()
			help = " " + helpEntry("tab", "next") + "  " + helpEntry("enter", "submit") + "  " + helpEntry("ctrl+r", "show password") + "  " + helpEntry("ctrl+n", "sign up") + "  " + helpEntry("ctrl+c", "quit")
		}
		body = strings.TrimRight(truncateToHeight(body, a.height-4), "\n")
		return fmt.Sprintf("%s\n\n%s\n%s", header, body, help)
	}

	// Tab bar: 3 equal-width columns spread across the terminal
	type tabEntry struct {
		key  string
		name string
		v    view
	}
	tabs := []tabEntry{
		{"1", "Home", viewHome},
		{"2", "Around me", viewAround},
		{"3", "Profile", viewProfile},
	}

	colWidth := a.width / len(tabs)
	var tabBar strings.Builder
	for _, t := range tabs {
		var label string
		if t.v == a.view {
			label = accentStyle.Render(t.key) + " " + selectedStyle.Underline(true).Render(t.name)
		} else {
			label = metaStyle.Render(t.key) + " " + dimStyle.Render(t.name)
		}
		labelWidth := lipgloss.Width(label)
		leftPad := (colWidth - labelWidth) / 2
		if leftPad < 0 {
			leftPad = 0
		}
		rightPad := colWidth - labelWidth - leftPad
		if rightPad < 0 {
			rightPad = 0
		}
		tabBar.WriteString(strings.Repeat(" ", leftPad) + label + strings.Repeat(" ", rightPad))
	}

	var body, help string
	switch a.view {
	case viewHome:
		body = a.home.View()
		if a.home.detail != nil {
			help = " " + helpEntry("m", "more/less") + "  " + helpEntry("o", "photo") + "  " + helpEntry("c", "copy id") + "  " + helpEntry("esc", "back")
		} else {
			help = " " + helpEntry("1-3", "tabs") + "  " + helpEntry("j/k", "nav") + "  " + helpEntry("enter", "open") + "  " + helpEntry("q", "quit")
		}
	case viewAround:
		body = a.around.View()
		if a.around.detail != nil {
			help = " " + helpEntry("m", "more/less") + "  " + helpEntry("o", "photo") + "  " + helpEntry("c", "copy id") + "  " + helpEntry("esc", "back")
		} else {
			help = " " + helpEntry("1-3", "tabs") + "  " + helpEntry("j/k", "pins") + "  " + helpEntry("enter", "open") + "  " + helpEntry("q", "quit")
		}
	case viewProfile:
		body = a.profile.View()
		if a.profile.editing {
			help = " " + helpEntry("enter/esc", "done")
		} else {
			help = " " + helpEntry("1-3", "tabs") + "  " + helpEntry("j/k", "field") + "  " + helpEntry("enter", "edit") + "  " + helpEntry("ctrl+s", "save") + "  " + helpEntry("x", "clear photo") + "  " + helpEntry("ctrl+l", "log out")
		}
	}

	// Chrome budget: header(2) + tabs(1) + help(1) = 4 lines + body
	body = strings.TrimRight(truncateToHeight(body, a.height-4), "\n")

	return fmt.Sprintf("%s\n%s\n%s\n%s", header, tabBar.String(), body, help)
}
