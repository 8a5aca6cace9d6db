package render

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// namedColors maps the color names used by themes to ANSI palette indices.
var namedColors = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",
	"gray":    "8",
	"grey":    "8",
}

// Lipgloss paints render trees with lipgloss styles.
type Lipgloss struct {
	r *lipgloss.Renderer
}

// LipglossOption configures a Lipgloss renderer.
type LipglossOption func(*Lipgloss)

// WithProfile forces a color profile instead of detecting one from the output.
func WithProfile(p termenv.Profile) LipglossOption {
	return func(l *Lipgloss) {
		l.r.SetColorProfile(p)
	}
}

// NewLipgloss returns a renderer whose color profile is detected from w.
// A nil writer means os.Stdout.
func NewLipgloss(w io.Writer, opts ...LipglossOption) *Lipgloss {
	if w == nil {
		w = os.Stdout
	}
	l := &Lipgloss{r: lipgloss.NewRenderer(w)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ColorProfile returns the profile used for color output.
func (l *Lipgloss) ColorProfile() termenv.Profile {
	return l.r.ColorProfile()
}

// RenderText implements Renderer.
func (l *Lipgloss) RenderText(content string, style TextStyle) string {
	if style.Color == "" {
		return content
	}
	return l.r.NewStyle().Foreground(Color(style.Color)).Render(content)
}

// RenderBox implements Renderer.
func (l *Lipgloss) RenderBox(children []Block, style BoxStyle, width int) string {
	return joinRow(children, style.ColumnGap, width, lipgloss.Width, l.fit)
}

func (l *Lipgloss) fit(s string, width int) string {
	return l.r.NewStyle().Width(width).Render(s)
}

// Color converts a theme color into a lipgloss color. Names such as "green"
// map to the ANSI palette, anything else is passed through.
func Color(name string) lipgloss.Color {
	if idx, ok := namedColors[name]; ok {
		return lipgloss.Color(idx)
	}
	return lipgloss.Color(name)
}
