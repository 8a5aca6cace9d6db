package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type (
	measureFunc func(s string) int
	fitFunc     func(s string, width int) string
)

// joinRow lays blocks out left to right with gap blank cells between them.
// When width is positive and the natural row is wider, the non-shrinking
// blocks keep their width and the rest share what is left.
func joinRow(blocks []Block, gap, width int, measure measureFunc, fit fitFunc) string {
	if len(blocks) == 0 {
		return ""
	}
	if gap < 0 {
		gap = 0
	}

	parts := make([]string, len(blocks))
	for i, b := range blocks {
		parts[i] = b.Content
	}

	if width > 0 {
		fixed := gap * (len(blocks) - 1)
		natural := fixed
		var shrinkable []int
		for i, b := range blocks {
			w := measure(b.Content)
			natural += w
			if b.Shrink {
				shrinkable = append(shrinkable, i)
				continue
			}
			fixed += w
		}

		if natural > width && len(shrinkable) > 0 {
			share := (width - fixed) / len(shrinkable)
			if share < 1 {
				share = 1
			}
			for _, i := range shrinkable {
				if measure(parts[i]) > share {
					parts[i] = fit(parts[i], share)
				}
			}
		}
	}

	if gap == 0 || len(parts) == 1 {
		return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}

	spacer := strings.Repeat(" ", gap)
	row := make([]string, 0, 2*len(parts)-1)
	for i, p := range parts {
		if i > 0 {
			row = append(row, spacer)
		}
		row = append(row, p)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, row...)
}
