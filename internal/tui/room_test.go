package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avrillon/roomscout/pkg/domain"
)

func newTestRoomModel(listing domain.Listing) roomModel {
	m := newRoomModel(nil, listing.ID, 40, 24)
	m, _ = m.activate()
	m, _ = m.Update(roomLoadedMsg{gen: m.fetch.gen, listing: &listing})
	return m
}

func TestRoomRendersListing(t *testing.T) {
	m := newTestRoomModel(makeListing("a", "Loft near canal", 120, 3.7))

	view := m.View()
	if !strings.Contains(view, "Loft near canal") {
		t.Errorf("expected title, got:\n%s", view)
	}
	if !strings.Contains(view, "120 €") {
		t.Errorf("expected price, got:\n%s", view)
	}
	if strings.Count(view, "★") != 3 {
		t.Errorf("expected 3 filled stars for 3.7, got %d", strings.Count(view, "★"))
	}
	if !strings.Contains(view, "◉") {
		t.Errorf("expected the listing pin on the map, got:\n%s", view)
	}
	if !strings.Contains(view, "https://cdn/a.jpg") {
		t.Errorf("expected photo URL, got:\n%s", view)
	}
}

func TestRoomDescriptionTruncationToggle(t *testing.T) {
	listing := makeListing("a", "Loft", 120, 4)
	listing.Description = strings.Repeat("A very long description that wraps over many lines. ", 10)
	m := newTestRoomModel(listing)

	view := m.View()
	if !strings.Contains(view, "Show more") {
		t.Errorf("expected 'Show more' on a clipped description, got:\n%s", view)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	expanded := m.View()
	if !strings.Contains(expanded, "Show less") {
		t.Errorf("expected 'Show less' after toggling, got:\n%s", expanded)
	}
	if len(expanded) <= len(view) {
		t.Error("expected the expanded view to carry more of the description")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("m")})
	if !strings.Contains(m.View(), "Show more") {
		t.Error("expected the toggle to flip back")
	}
}

func TestRoomShortDescriptionHasNoToggle(t *testing.T) {
	listing := makeListing("a", "Loft", 120, 4)
	listing.Description = "Short."
	m := newTestRoomModel(listing)

	if strings.Contains(m.View(), "Show more") {
		t.Error("expected no toggle for a description that fits")
	}
}

func TestRoomCopyStatus(t *testing.T) {
	m := newTestRoomModel(makeListing("a", "Loft", 120, 4))

	m, _ = m.Update(roomCopyMsg{})
	if !strings.Contains(m.View(), "copied!") {
		t.Errorf("expected copy confirmation, got:\n%s", m.View())
	}

	m, _ = m.Update(roomCopyMsg{err: errors.New("no display")})
	if !strings.Contains(m.View(), "copy failed") {
		t.Errorf("expected copy failure notice, got:\n%s", m.View())
	}
}

func TestRoomErrorState(t *testing.T) {
	m := newRoomModel(nil, "a", 40, 24)
	m, _ = m.activate()
	m, _ = m.Update(roomLoadedMsg{gen: m.fetch.gen, err: errors.New("boom")})

	if !strings.Contains(m.View(), errFetchListing) {
		t.Errorf("expected the generic fetch message, got:\n%s", m.View())
	}
}
