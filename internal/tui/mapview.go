package tui

import (
	"strings"

	"github.com/avrillon/roomscout/pkg/domain"
)

// mapMarker is a pin drawn on the map surface.
type mapMarker struct {
	coord    domain.Coordinate
	selected bool
}

// Span of the map window in degrees, mirroring the 0.1 delta the mobile
// map opened with. Longitude gets double to compensate for character
// cells being taller than wide.
const (
	mapLatSpan = 0.1
	mapLonSpan = 0.2
)

// renderMap projects markers around center onto a width x height
// character grid: longitude maps to columns, latitude to rows, north up.
// Markers outside the window are dropped.
func renderMap(center domain.Coordinate, markers []mapMarker, width, height int) string {
	if width < 10 {
		width = 10
	}
	if height < 5 {
		height = 5
	}

	type cell struct {
		ch       rune
		selected bool
	}
	grid := make([][]cell, height)
	for r := range grid {
		grid[r] = make([]cell, width)
	}

	for _, mk := range markers {
		col := int((mk.coord.Longitude - center.Longitude + mapLonSpan/2) / mapLonSpan * float64(width))
		row := int((center.Latitude - mk.coord.Latitude + mapLatSpan/2) / mapLatSpan * float64(height))
		if col < 0 || col >= width || row < 0 || row >= height {
			continue
		}
		// A selected marker wins the cell over an unselected one.
		if grid[row][col].ch == 0 || mk.selected {
			grid[row][col] = cell{ch: '●', selected: mk.selected}
		}
	}

	var sb strings.Builder
	for r := 0; r < height; r++ {
		sb.WriteString(" ")
		for c := 0; c < width; c++ {
			cl := grid[r][c]
			switch {
			case cl.ch != 0 && cl.selected:
				sb.WriteString(markerSelectedStyle.Render("◉"))
			case cl.ch != 0:
				sb.WriteString(markerStyle.Render("●"))
			case r%2 == 0 && c%4 == 0:
				sb.WriteString(mapDotStyle.Render("·"))
			default:
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
