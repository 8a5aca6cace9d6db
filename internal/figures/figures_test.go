package figures

import (
	"testing"

	"statusmsg/internal/terminal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSets_AreComplete(t *testing.T) {
	assert.True(t, Unicode.Complete())
	assert.True(t, ASCII.Complete())
	assert.False(t, Set{Info: "i", Tick: "v", Cross: "x"}.Complete())
	assert.NotEqual(t, Unicode, ASCII)
}

func TestForEnv(t *testing.T) {
	assert.Equal(t, Unicode, ForEnv(terminal.Env{}))
	assert.Equal(t, Unicode, ForEnv(terminal.Env{"LANG": "en_US.UTF-8", "platform": "win32"}))
	assert.Equal(t, ASCII, ForEnv(terminal.Env{"platform": "win32"}))
}

func TestResolve(t *testing.T) {
	windows := terminal.Env{"platform": "win32"}

	tests := []struct {
		mode     Mode
		expected Set
	}{
		{ModeAuto, ASCII},
		{"", ASCII},
		{ModeUnicode, Unicode},
		{ModeASCII, ASCII},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			got, err := Resolve(tt.mode, windows)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := Resolve("emoji", windows)
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestParseMode(t *testing.T) {
	for input, expected := range map[string]Mode{
		"":        ModeAuto,
		"auto":    ModeAuto,
		" ASCII ": ModeASCII,
		"Unicode": ModeUnicode,
	} {
		got, err := ParseMode(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, expected, got)
	}

	_, err := ParseMode("nerdfont")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 1, ASCII.Width())
	assert.GreaterOrEqual(t, Unicode.Width(), 1)
	assert.Equal(t, 0, Set{}.Width())
}
