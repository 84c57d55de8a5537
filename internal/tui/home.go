package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avrillon/roomscout/pkg/api"
	"github.com/avrillon/roomscout/pkg/domain"
)

type listingsLoadedMsg struct {
	gen      int
	listings []domain.Listing
	err      error
}

// homeModel is the listing list tab. It hosts its own detail push so
// back-navigation stays inside the tab.
type homeModel struct {
	client *api.Client
	fetch  fetchState[[]domain.Listing]
	cursor int
	detail *roomModel
	width  int
	height int
}

func newHomeModel(c *api.Client) homeModel {
	return homeModel{client: c}
}

// activate fetches the unfiltered listing set. Called on every entry to
// the tab: listings are request-scoped, never cached across visits.
func (m homeModel) activate() (homeModel, tea.Cmd) {
	gen := m.fetch.begin()
	c := m.client
	return m, func() tea.Msg {
		listings, err := c.ListListings(context.Background())
		return listingsLoadedMsg{gen: gen, listings: listings, err: err}
	}
}

func (m homeModel) Update(msg tea.Msg) (homeModel, tea.Cmd) {
	// A pushed detail screen sees everything first; esc pops it.
	if m.detail != nil {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
			m.detail = nil
			return m, nil
		}
		if size, ok := msg.(tea.WindowSizeMsg); ok {
			m.width, m.height = size.Width, size.Height
		}
		d, cmd := m.detail.Update(msg)
		m.detail = &d
		return m, cmd
	}

	switch msg := msg.(type) {
	case listingsLoadedMsg:
		m.fetch.resolve(msg.gen, msg.listings, msg.err, errFetchListings)
		if m.cursor >= len(m.fetch.data) {
			m.cursor = 0
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.fetch.data)-1 {
				m.cursor++
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "enter":
			if len(m.fetch.data) > 0 {
				d, cmd := newRoomModel(m.client, m.fetch.data[m.cursor].ID, m.width, m.height).activate()
				m.detail = &d
				return m, cmd
			}
		}
	}
	return m, nil
}

func (m homeModel) View() string {
	if m.detail != nil {
		return m.detail.View()
	}
	// Loading wins over the empty state so a slow fetch never flashes
	// "no listings".
	if m.fetch.loading {
		return " " + dimStyle.Render("loading listings...")
	}
	if m.fetch.err != "" {
		return " " + errorStyle.Render("error: "+m.fetch.err)
	}
	if len(m.fetch.data) == 0 {
		return " " + dimStyle.Render("no listings yet")
	}

	var sb strings.Builder
	titleWidth := maxInt(m.width-24, 20)

	// Two lines per card plus a separator.
	maxRows := maxInt((m.height-1)/3, 3)
	start := 0
	if m.cursor >= maxRows {
		start = m.cursor - maxRows + 1
	}

	for i := start; i < len(m.fetch.data) && i < start+maxRows; i++ {
		l := m.fetch.data[i]

		cursor := "  "
		titleStyle := normalStyle
		if i == m.cursor {
			cursor = accentStyle.Render("> ")
			titleStyle = selectedStyle
		}

		title := truncStr(l.Title, titleWidth)
		sb.WriteString(" " + cursor + titleStyle.Render(title) + "  " + priceStyle.Render(fmt.Sprintf("%d €", l.Price)) + "\n")

		meta := "   " + renderStars(l.RatingValue) + "  " + dimStyle.Render(fmt.Sprintf("%d reviews", l.Reviews))
		if l.User.Account.Username != "" {
			meta += dimStyle.Render(" · hosted by ") + metaStyle.Render(l.User.Account.Username)
		}
		sb.WriteString(" " + meta + "\n\n")
	}

	return sb.String()
}
