package tui

import (
	"statusmsg/internal/render"
	"statusmsg/internal/statusmessage"
	"statusmsg/internal/variant"
	"statusmsg/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MaxLogLines is the number of log entries kept for display.
const MaxLogLines = 3

const subsystem = "Preview"

// Model is the bubbletea model of the interactive status message preview.
type Model struct {
	keys     KeyMap
	help     help.Model
	input    textinput.Model
	renderer render.Renderer
	opts     statusmessage.Options

	variants []variant.Variant
	selected int
	editing  bool
	width    int

	logs       []logging.LogEntry
	logChannel <-chan logging.LogEntry
}

// NewModel creates a preview starting at the given variant and message.
// logChannel may be nil when logging is not routed to the TUI.
func NewModel(r render.Renderer, opts statusmessage.Options, start variant.Variant, message string, logChannel <-chan logging.LogEntry) Model {
	input := textinput.New()
	input.Placeholder = "Type a message"
	input.Prompt = "> "
	input.CharLimit = 256
	input.SetValue(message)

	m := Model{
		keys:       DefaultKeyMap(),
		help:       help.New(),
		input:      input,
		renderer:   r,
		opts:       opts,
		variants:   variant.Variants(),
		logChannel: logChannel,
	}
	for i, v := range m.variants {
		if v == start {
			m.selected = i
		}
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return ListenForLogs(m.logChannel)
}

// Variant returns the variant currently shown.
func (m Model) Variant() variant.Variant {
	return m.variants[m.selected]
}

// Message returns the current message text.
func (m Model) Message() string {
	return m.input.Value()
}

// Editing reports whether key presses go to the message input.
func (m Model) Editing() bool {
	return m.editing
}

// Logs returns the retained log entries, oldest first.
func (m Model) Logs() []logging.LogEntry {
	return m.logs
}

func (m *Model) addLog(entry logging.LogEntry) {
	m.logs = append(m.logs, entry)
	if len(m.logs) > MaxLogLines {
		m.logs = m.logs[len(m.logs)-MaxLogLines:]
	}
}

// VariantForLevel picks the status variant used to display a log entry.
func VariantForLevel(level logging.LogLevel) variant.Variant {
	switch level {
	case logging.LevelError:
		return variant.Error
	case logging.LevelWarn:
		return variant.Warning
	default:
		return variant.Info
	}
}
