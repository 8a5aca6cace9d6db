// Package figures provides the symbol sets used for status icons, in a
// Unicode form and an ASCII fallback form.
package figures

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"statusmsg/internal/terminal"
)

// Set is a named collection of status glyphs.
type Set struct {
	Info    string
	Tick    string
	Cross   string
	Warning string
}

var (
	// Unicode is used when the terminal can draw it.
	Unicode = Set{
		Info:    "ℹ", // U+2139
		Tick:    "✔", // U+2714
		Cross:   "✘", // U+2718
		Warning: "⚠", // U+26A0 without VS16
	}

	// ASCII is the fallback for terminals without Unicode support.
	ASCII = Set{
		Info:    "i",
		Tick:    "√",
		Cross:   "×",
		Warning: "‼",
	}
)

// Mode selects how a Set is chosen.
type Mode string

const (
	ModeAuto    Mode = "auto"
	ModeUnicode Mode = "unicode"
	ModeASCII   Mode = "ascii"
)

// ErrUnknownMode is returned for symbol modes other than auto, unicode or ascii.
var ErrUnknownMode = errors.New("unknown symbol mode")

// ParseMode validates a mode string. Empty means auto.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeUnicode, ModeASCII:
		return m, nil
	default:
		return ModeAuto, fmt.Errorf("%w: %q (expected auto, unicode or ascii)", ErrUnknownMode, s)
	}
}

// ForEnv picks the Unicode set when the terminal described by env supports
// it and the ASCII set otherwise.
func ForEnv(env terminal.Env) Set {
	if terminal.IsUnicodeSupported(env) {
		return Unicode
	}
	return ASCII
}

// Resolve returns the set for an explicit mode, deferring to ForEnv for auto.
func Resolve(mode Mode, env terminal.Env) (Set, error) {
	switch mode {
	case ModeAuto, "":
		return ForEnv(env), nil
	case ModeUnicode:
		return Unicode, nil
	case ModeASCII:
		return ASCII, nil
	default:
		return Set{}, fmt.Errorf("%w: %q", ErrUnknownMode, string(mode))
	}
}

// Complete reports whether every symbol in the set is defined.
func (s Set) Complete() bool {
	return s.Info != "" && s.Tick != "" && s.Cross != "" && s.Warning != ""
}

// Width returns the widest glyph in the set, in terminal cells.
func (s Set) Width() int {
	widest := 0
	for _, g := range []string{s.Info, s.Tick, s.Cross, s.Warning} {
		if w := runewidth.StringWidth(g); w > widest {
			widest = w
		}
	}
	return widest
}
