package tui

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Shimmer animation for the ROOMSCOUT logo.
type shimmerTickMsg time.Time

func shimmerTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return shimmerTickMsg(t)
	})
}

// renderShimmerLogo renders "R O O M S C O U T" as a flowing wave of
// coral light, deep brick (#4a1d20) -> bright coral (#EB5A62).
func renderShimmerLogo(frame int) string {
	const text = "ROOMSCOUT"
	n := len(text)

	var out string
	t := float64(frame)

	for i := 0; i < n; i++ {
		x := float64(i) / float64(n-1)

		// One smooth wave advancing through the text.
		phase := t*0.1 - x*3.0
		phase += math.Sin(t*0.023) * 2.0

		b := math.Sin(phase)*0.5 + 0.5
		b = math.Pow(b, 1.3)

		tide := math.Sin(t*0.035) * 0.12
		b = b*0.75 + tide + 0.18

		if b > 1.0 {
			b = 1.0
		} else if b < 0.05 {
			b = 0.05
		}

		// Deep:   (74, 29, 32)   #4a1d20
		// Bright: (235, 90, 98)  #EB5A62
		r := clampByte(74 + b*(235-74))
		g := clampByte(29 + b*(90-29))
		bl := clampByte(32 + b*(98-32))

		color := fmt.Sprintf("#%02X%02X%02X", r, g, bl)

		s := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(color))
		out += s.Render(string(text[i]))

		if i < n-1 {
			out += " "
		}
	}

	return out
}

func clampByte(v float64) int {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

var (
	// Base palette
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e4e4ec")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0c4d0"))

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Brand coral — the original app's #EB5A62.
	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EB5A62"))

	priceStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EB5A62")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e06060"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80"))

	// Star rating
	starFilledStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FBB101"))

	starEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#BBBBBB"))

	// Help bar
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8890a0"))

	helpLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#505868"))

	// Forms
	inputPlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#343c4a"))

	// Map surface
	mapDotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2a2f3a"))

	markerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EB5A62"))

	markerSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FBB101")).
				Bold(true)
)

// helpEntry renders a single "key label" pair for help bars.
func helpEntry(key, label string) string {
	return helpKeyStyle.Render(key) + " " + helpLabelStyle.Render(label)
}
