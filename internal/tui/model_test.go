package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"statusmsg/internal/figures"
	"statusmsg/internal/render"
	"statusmsg/internal/statusmessage"
	"statusmsg/internal/theme"
	"statusmsg/internal/variant"
	"statusmsg/pkg/logging"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(start variant.Variant, message string) Model {
	opts := statusmessage.Options{Theme: theme.Default(), Symbols: figures.ASCII}
	return NewModel(render.Plain{}, opts, start, message, nil)
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestNextIndex(t *testing.T) {
	assert.Equal(t, 1, nextIndex(4, 0, 1))
	assert.Equal(t, 0, nextIndex(4, 3, 1), "wrap forward")
	assert.Equal(t, 3, nextIndex(4, 0, -1), "wrap backward")
	assert.Equal(t, 2, nextIndex(0, 2, 1), "empty keeps current")
}

func TestNewModel_StartVariant(t *testing.T) {
	m := newTestModel(variant.Error, "boom")
	assert.Equal(t, variant.Error, m.Variant())
	assert.Equal(t, "boom", m.Message())
	assert.Nil(t, m.Init(), "no log channel means no listener")
}

func TestUpdate_CyclesVariants(t *testing.T) {
	m := newTestModel(variant.Info, "hello")

	m, _ = update(t, m, runeKey("l"))
	assert.Equal(t, variant.Success, m.Variant())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, variant.Error, m.Variant())

	m, _ = update(t, m, runeKey("h"))
	m, _ = update(t, m, runeKey("h"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, variant.Warning, m.Variant())
}

func TestUpdate_EditMessage(t *testing.T) {
	m := newTestModel(variant.Success, "")

	m, _ = update(t, m, runeKey("e"))
	require.True(t, m.Editing())

	m, _ = update(t, m, runeKey("Done"))
	// "h" would switch variants outside edit mode
	m, _ = update(t, m, runeKey("h"))
	assert.Equal(t, "Doneh", m.Message())
	assert.Equal(t, variant.Success, m.Variant())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Editing())
	assert.Contains(t, m.View(), figures.ASCII.Tick+" Doneh")
}

func TestUpdate_Quit(t *testing.T) {
	m := newTestModel(variant.Info, "")

	_, cmd := update(t, m, runeKey("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	m, _ = update(t, m, runeKey("e"))
	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdate_Copy(t *testing.T) {
	original := writeClipboard
	defer func() { writeClipboard = original }()

	var copied string
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}

	m := newTestModel(variant.Warning, "disk almost full")
	_, cmd := update(t, m, runeKey("y"))
	require.NotNil(t, cmd)

	msg := cmd()
	result, ok := msg.(copiedMsg)
	require.True(t, ok)
	assert.NoError(t, result.err)
	assert.Equal(t, figures.ASCII.Warning+" disk almost full", copied)

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	msg = cmd()
	assert.Error(t, msg.(copiedMsg).err)
	_, next := update(t, m, msg)
	assert.Nil(t, next)
}

func TestUpdate_LogEntries(t *testing.T) {
	ch := make(chan logging.LogEntry, 1)
	opts := statusmessage.Options{Theme: theme.Default(), Symbols: figures.ASCII}
	m := NewModel(render.Plain{}, opts, variant.Info, "", ch)

	listen := m.Init()
	require.NotNil(t, listen)

	ch <- logging.LogEntry{
		Timestamp: time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
		Level:     logging.LevelError,
		Message:   "Copy to clipboard failed",
		Err:       errors.New("no clipboard"),
	}
	msg := listen()
	m, next := update(t, m, msg)
	assert.NotNil(t, next, "keeps listening")
	require.Len(t, m.Logs(), 1)

	view := m.View()
	assert.Contains(t, view, figures.ASCII.Cross+" 12:30:00 Copy to clipboard failed: no clipboard")

	for i := 0; i < MaxLogLines+2; i++ {
		m, _ = update(t, m, logEntryMsg{entry: logging.LogEntry{Level: logging.LevelInfo, Message: "tick"}})
	}
	assert.Len(t, m.Logs(), MaxLogLines)

	close(ch)
	assert.Nil(t, listen(), "closed channel ends listening")
}

func TestUpdate_WindowSizeWrapsMessage(t *testing.T) {
	m := newTestModel(variant.Info, strings.Repeat("word ", 20))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 30, Height: 20})

	view := m.View()
	assert.Contains(t, view, figures.ASCII.Info+" word")
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, "word") {
			assert.LessOrEqual(t, len(line), 30, "line %q", line)
		}
	}
}

func TestVariantForLevel(t *testing.T) {
	assert.Equal(t, variant.Info, VariantForLevel(logging.LevelDebug))
	assert.Equal(t, variant.Info, VariantForLevel(logging.LevelInfo))
	assert.Equal(t, variant.Warning, VariantForLevel(logging.LevelWarn))
	assert.Equal(t, variant.Error, VariantForLevel(logging.LevelError))
}

func TestView_ShowsHelp(t *testing.T) {
	m := newTestModel(variant.Info, "hi")
	assert.Contains(t, m.View(), "quit")

	m, _ = update(t, m, runeKey("?"))
	assert.Contains(t, m.View(), "copy as plain text")
}
