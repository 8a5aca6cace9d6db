package tui

import (
	"statusmsg/internal/render"
	"statusmsg/internal/statusmessage"
	"statusmsg/pkg/logging"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// For mocking in tests
var writeClipboard = clipboard.WriteAll

// logEntryMsg carries one entry from the logging channel.
type logEntryMsg struct {
	entry logging.LogEntry
}

// copiedMsg reports the result of a clipboard write.
type copiedMsg struct {
	text string
	err  error
}

// ListenForLogs waits for the next log entry. It returns nil when ch is nil.
func ListenForLogs(ch <-chan logging.LogEntry) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return nil
		}
		return logEntryMsg{entry: entry}
	}
}

// copyCmd writes the current message, painted without colors, to the clipboard.
func copyCmd(opts statusmessage.Options, props statusmessage.Props) tea.Cmd {
	return func() tea.Msg {
		text := statusmessage.Render(render.Plain{}, opts, props, 0)
		return copiedMsg{text: text, err: writeClipboard(text)}
	}
}
