package tui

import (
	"statusmsg/internal/statusmessage"
	"statusmsg/pkg/logging"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
		return m, nil

	case logEntryMsg:
		m.addLog(msg.entry)
		return m, ListenForLogs(m.logChannel)

	case copiedMsg:
		if msg.err != nil {
			logging.Error(subsystem, msg.err, "Copy to clipboard failed")
		} else {
			logging.Info(subsystem, "Copied %q to clipboard", msg.text)
		}
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Prev):
		m.selected = nextIndex(len(m.variants), m.selected, -1)
	case key.Matches(msg, m.keys.Next):
		m.selected = nextIndex(len(m.variants), m.selected, 1)
	case key.Matches(msg, m.keys.Edit):
		m.editing = true
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Copy):
		return m, copyCmd(m.opts, m.props())
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Done) {
		m.editing = false
		m.input.Blur()
		logging.Debug(subsystem, "Message set to %q", m.input.Value())
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) props() statusmessage.Props {
	return statusmessage.Props{
		Variant: m.Variant(),
		Content: statusmessage.Text(m.input.Value()),
	}
}

// nextIndex moves current by delta positions, wrapping around n entries.
func nextIndex(n, current, delta int) int {
	if n == 0 {
		return current
	}
	return ((current+delta)%n + n) % n
}
