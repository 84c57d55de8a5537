package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avrillon/roomscout/internal/geo"
	"github.com/avrillon/roomscout/pkg/api"
	"github.com/avrillon/roomscout/pkg/domain"
)

type aroundLoadedMsg struct {
	gen      int
	listings []domain.Listing
	center   domain.Coordinate
	granted  bool
	err      error
}

// aroundModel is the map tab: device position (or the Paris fallback)
// in the middle, nearby listings as pins.
type aroundModel struct {
	client  *api.Client
	geo     geo.Provider
	fetch   fetchState[[]domain.Listing]
	center  domain.Coordinate
	granted bool
	cursor  int
	detail  *roomModel
	width   int
	height  int
}

func newAroundModel(c *api.Client, p geo.Provider) aroundModel {
	return aroundModel{client: c, geo: p, center: geo.DefaultCoordinate}
}

// activate resolves the device position, then branches: a granted
// position queries the nearby endpoint, a denied one falls back to the
// full listing set. The two branches never mix.
func (m aroundModel) activate() (aroundModel, tea.Cmd) {
	gen := m.fetch.begin()
	c, p := m.client, m.geo
	return m, func() tea.Msg {
		ctx := context.Background()
		coord, granted := geo.Resolve(ctx, p)

		var listings []domain.Listing
		var err error
		if granted {
			listings, err = c.ListListingsAround(ctx, coord)
		} else {
			listings, err = c.ListListings(ctx)
		}
		return aroundLoadedMsg{gen: gen, listings: listings, center: coord, granted: granted, err: err}
	}
}

func (m aroundModel) Update(msg tea.Msg) (aroundModel, tea.Cmd) {
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
	case aroundLoadedMsg:
		m.fetch.resolve(msg.gen, msg.listings, msg.err, errFetchListings)
		if msg.gen == m.fetch.gen {
			m.center = msg.center
			m.granted = msg.granted
		}
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
		case "j", "down", "l":
			if m.cursor < len(m.fetch.data)-1 {
				m.cursor++
			}
		case "k", "up", "h":
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

func (m aroundModel) View() string {
	if m.detail != nil {
		return m.detail.View()
	}
	if m.fetch.loading {
		return " " + dimStyle.Render("locating you...")
	}
	if m.fetch.err != "" {
		return " " + errorStyle.Render("error: "+m.fetch.err)
	}

	var sb strings.Builder

	if m.granted {
		sb.WriteString(" " + dimStyle.Render(fmt.Sprintf("around %.4f, %.4f", m.center.Latitude, m.center.Longitude)) + "\n")
	} else {
		sb.WriteString(" " + dimStyle.Render("location unavailable — showing Paris") + "\n")
	}

	markers := make([]mapMarker, 0, len(m.fetch.data))
	for i, l := range m.fetch.data {
		coord, ok := l.Coordinate()
		if !ok {
			continue
		}
		markers = append(markers, mapMarker{coord: coord, selected: i == m.cursor})
	}
	mapHeight := maxInt(m.height-5, 6)
	sb.WriteString(renderMap(m.center, markers, maxInt(m.width-2, 20), mapHeight))

	if len(m.fetch.data) == 0 {
		sb.WriteString(" " + dimStyle.Render("no listings around here") + "\n")
		return sb.String()
	}

	sel := m.fetch.data[m.cursor]
	line := " " + markerSelectedStyle.Render("◉") + " " + selectedStyle.Render(truncStr(sel.Title, maxInt(m.width-30, 16))) +
		"  " + priceStyle.Render(fmt.Sprintf("%d €", sel.Price)) +
		"  " + dimStyle.Render(fmt.Sprintf("(%d/%d)", m.cursor+1, len(m.fetch.data)))
	sb.WriteString(line + "\n")

	return sb.String()
}
