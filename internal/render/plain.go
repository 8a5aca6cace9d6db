package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Plain paints render trees without any escape sequences. Colors are
// dropped and widths are measured in terminal cells.
type Plain struct{}

// RenderText implements Renderer.
func (Plain) RenderText(content string, _ TextStyle) string {
	return content
}

// RenderBox implements Renderer.
func (Plain) RenderBox(children []Block, style BoxStyle, width int) string {
	return joinRow(children, style.ColumnGap, width, cellWidth, runewidth.Wrap)
}

// cellWidth returns the width of the widest line in s.
func cellWidth(s string) int {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		if w := runewidth.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}
