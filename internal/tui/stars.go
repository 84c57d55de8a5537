package tui

import (
	"math"
	"strings"
)

// renderStars renders a five-star rating bar. The filled count uses
// floor semantics: 3.7 shows three filled stars.
func renderStars(ratingValue float64) string {
	filled := int(math.Floor(ratingValue))
	if filled < 0 {
		filled = 0
	}
	if filled > 5 {
		filled = 5
	}
	var b strings.Builder
	for i := 0; i < 5; i++ {
		if i < filled {
			b.WriteString(starFilledStyle.Render("★"))
		} else {
			b.WriteString(starEmptyStyle.Render("☆"))
		}
	}
	return b.String()
}
