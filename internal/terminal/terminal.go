package terminal

import (
	"os"
	"runtime"
	"strings"
)

// Keys read by IsUnicodeSupported.
const (
	KeyLang        = "LANG"
	KeyColorTerm   = "COLORTERM"
	KeyTermProgram = "TERM_PROGRAM"
	KeyPlatform    = "platform"
)

// PlatformWindows is the platform value that disables the optimistic fallback.
const PlatformWindows = "win32"

// Env is a snapshot of the values the detector looks at. Missing keys read
// as the empty string.
type Env map[string]string

// EnvFunc is the signature for environment variable lookup (matches os.Getenv).
type EnvFunc func(string) string

// Get returns the value for key, or "" if unset. Safe on a nil Env.
func (e Env) Get(key string) string {
	return e[key]
}

// modernTerminals are TERM_PROGRAM substrings that always render Unicode.
var modernTerminals = []string{"vscode", "iTerm.app", "Terminal.app"}

// IsUnicodeSupported reports whether the terminal described by env can be
// trusted to draw Unicode symbols. Any one of these is enough: a UTF-8
// locale, a truecolor COLORTERM, a known modern TERM_PROGRAM, or a platform
// other than Windows. An empty env is therefore supported.
func IsUnicodeSupported(env Env) bool {
	if strings.Contains(strings.ToLower(env.Get(KeyLang)), "utf-8") {
		return true
	}

	colorTerm := env.Get(KeyColorTerm)
	if strings.Contains(colorTerm, "truecolor") || strings.Contains(colorTerm, "24bit") {
		return true
	}

	termProgram := env.Get(KeyTermProgram)
	for _, name := range modernTerminals {
		if strings.Contains(termProgram, name) {
			return true
		}
	}

	return env.Get(KeyPlatform) != PlatformWindows
}

// FromLookup builds an Env using getenv for the environment keys and
// runtime.GOOS for the platform.
func FromLookup(getenv EnvFunc) Env {
	env := Env{KeyPlatform: Platform(runtime.GOOS)}
	for _, key := range []string{KeyLang, KeyColorTerm, KeyTermProgram} {
		if v := getenv(key); v != "" {
			env[key] = v
		}
	}
	return env
}

// FromOS builds an Env from the current process.
func FromOS() Env {
	return FromLookup(os.Getenv)
}

// Platform maps a GOOS value onto the platform names the detector expects.
func Platform(goos string) string {
	if goos == "windows" {
		return PlatformWindows
	}
	return goos
}
