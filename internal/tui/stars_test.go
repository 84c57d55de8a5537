package tui

import (
	"strings"
	"testing"
)

func TestRenderStarsFloorSemantics(t *testing.T) {
	tests := []struct {
		rating     float64
		wantFilled int
	}{
		{0, 0},
		{0.9, 0},
		{3, 3},
		{3.7, 3},
		{4.999, 4},
		{5, 5},
		{-1, 0},
		{9, 5},
	}
	for _, tc := range tests {
		bar := renderStars(tc.rating)
		filled := strings.Count(bar, "★")
		empty := strings.Count(bar, "☆")
		if filled != tc.wantFilled {
			t.Errorf("rating %v: expected %d filled stars, got %d", tc.rating, tc.wantFilled, filled)
		}
		if filled+empty != 5 {
			t.Errorf("rating %v: expected 5 stars total, got %d", tc.rating, filled+empty)
		}
	}
}
