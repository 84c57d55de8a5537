package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/avrillon/roomscout/internal/browser"
	"github.com/avrillon/roomscout/pkg/api"
	"github.com/avrillon/roomscout/pkg/domain"
)

// descriptionLines is the clipped height of the description before the
// user asks for more.
const descriptionLines = 3

type roomLoadedMsg struct {
	gen     int
	listing *domain.Listing
	err     error
}

type roomCopyMsg struct{ err error }

// roomModel is the listing detail screen. It is pushed inside a tab's
// stack, so the tab bar stays visible and esc pops back to the list.
type roomModel struct {
	client    *api.Client
	id        string
	fetch     fetchState[*domain.Listing]
	truncated bool // description clipped to descriptionLines; pure UI state
	statusMsg string
	width     int
	height    int
}

func newRoomModel(c *api.Client, id string, width, height int) roomModel {
	return roomModel{
		client:    c,
		id:        id,
		truncated: true,
		width:     width,
		height:    height,
	}
}

// activate kicks off the fetch for this listing.
func (m roomModel) activate() (roomModel, tea.Cmd) {
	gen := m.fetch.begin()
	c, id := m.client, m.id
	return m, func() tea.Msg {
		listing, err := c.GetListing(context.Background(), id)
		return roomLoadedMsg{gen: gen, listing: listing, err: err}
	}
}

func (m roomModel) Update(msg tea.Msg) (roomModel, tea.Cmd) {
	switch msg := msg.(type) {
	case roomLoadedMsg:
		m.fetch.resolve(msg.gen, msg.listing, msg.err, errFetchListing)
		return m, nil

	case roomCopyMsg:
		if msg.err != nil {
			m.statusMsg = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			m.statusMsg = "copied!"
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.statusMsg = ""
		switch msg.String() {
		case "m":
			m.truncated = !m.truncated
		case "o":
			if m.fetch.data != nil {
				if url := m.fetch.data.FirstPhotoURL(); url != "" {
					browser.Open(url) //nolint:errcheck // best-effort browser open
				}
			}
		case "c":
			if m.fetch.data != nil {
				id := m.fetch.data.ID
				return m, func() tea.Msg {
					return roomCopyMsg{err: clipboard.WriteAll(id)}
				}
			}
		}
	}
	return m, nil
}

func (m roomModel) View() string {
	if m.fetch.loading {
		return " " + dimStyle.Render("loading listing...")
	}
	if m.fetch.err != "" {
		return " " + errorStyle.Render("error: "+m.fetch.err)
	}
	listing := m.fetch.data
	if listing == nil {
		return ""
	}

	var sb strings.Builder

	title := truncStr(listing.Title, maxInt(m.width-12, 20))
	sb.WriteString(" " + selectedStyle.Render(title) + "  " + priceStyle.Render(fmt.Sprintf("%d €", listing.Price)) + "\n")
	sb.WriteString(" " + renderStars(listing.RatingValue) + "  " + dimStyle.Render(fmt.Sprintf("%d reviews", listing.Reviews)))
	if listing.User.Account.Username != "" {
		sb.WriteString(dimStyle.Render(" · hosted by ") + normalStyle.Render(listing.User.Account.Username))
	}
	sb.WriteString("\n\n")

	// Description, clipped to three lines until toggled.
	bodyWidth := maxInt(m.width-2, 20)
	wrapped := lipgloss.NewStyle().Width(bodyWidth).Render(normalStyle.Render(listing.Description))
	clipped := false
	if m.truncated {
		wrapped, clipped = capLines(wrapped, descriptionLines)
	}
	for _, line := range strings.Split(wrapped, "\n") {
		sb.WriteString(" " + line + "\n")
	}
	if clipped || !m.truncated {
		label := "Show more"
		if !m.truncated {
			label = "Show less"
		}
		sb.WriteString(" " + accentStyle.Render(label) + " " + metaStyle.Render("(m)") + "\n")
	}
	sb.WriteString("\n")

	if coord, ok := listing.Coordinate(); ok {
		sb.WriteString(renderMap(coord, []mapMarker{{coord: coord, selected: true}}, maxInt(m.width-2, 20), 8))
	}

	if url := listing.FirstPhotoURL(); url != "" {
		sb.WriteString("\n " + metaStyle.Render("photo: ") + dimStyle.Render(truncStr(url, maxInt(m.width-12, 20))) + "\n")
	}
	if m.statusMsg != "" {
		sb.WriteString(" " + statusStyle.Render(m.statusMsg) + "\n")
	}

	return sb.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
