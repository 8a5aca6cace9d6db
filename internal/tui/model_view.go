package tui

import (
	"strings"

	"statusmsg/internal/render"
	"statusmsg/internal/statusmessage"
	"statusmsg/pkg/logging"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle = lipgloss.NewStyle().Faint(true)
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Status message preview"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(m.Variant().String()))
	b.WriteString("\n")
	b.WriteString(statusmessage.Render(m.renderer, m.opts, m.props(), m.width))
	b.WriteString("\n\n")

	if m.editing {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}

	if len(m.logs) > 0 {
		b.WriteString(labelStyle.Render("log"))
		b.WriteString("\n")
		for _, entry := range m.logs {
			b.WriteString(m.renderLog(entry))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderLog shows a log entry as a status message of the matching variant.
func (m Model) renderLog(entry logging.LogEntry) string {
	text := entry.Message
	if entry.Err != nil {
		text += ": " + entry.Err.Error()
	}
	content := render.NewText(render.TextStyle{},
		render.NewText(render.TextStyle{Color: "gray"}, render.String(entry.Timestamp.Format("15:04:05")+" ")),
		render.String(text),
	)
	return statusmessage.Render(m.renderer, m.opts, statusmessage.Props{
		Variant: VariantForLevel(entry.Level),
		Content: content,
	}, m.width)
}
