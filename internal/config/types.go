package config

import (
	"fmt"

	"statusmsg/internal/figures"
	"statusmsg/internal/variant"
)

// StatusmsgConfig is the top-level configuration structure for statusmsg.
type StatusmsgConfig struct {
	Symbols string            `yaml:"symbols,omitempty"` // "auto", "unicode" or "ascii"
	Width   *int              `yaml:"width,omitempty"`   // Total output width, 0 for natural width
	Plain   bool              `yaml:"plain,omitempty"`   // Disable colors
	Colors  map[string]string `yaml:"colors,omitempty"`  // Icon color per variant name, e.g. success: "#10B981"
}

// GetDefaultConfig returns the built-in configuration.
func GetDefaultConfig() StatusmsgConfig {
	return StatusmsgConfig{
		Symbols: string(figures.ModeAuto),
	}
}

// Validate checks symbol mode, width and color keys.
func (c StatusmsgConfig) Validate() error {
	if _, err := figures.ParseMode(c.Symbols); err != nil {
		return fmt.Errorf("invalid symbols setting: %w", err)
	}
	if c.OutputWidth() < 0 {
		return fmt.Errorf("invalid width %d: must not be negative", c.OutputWidth())
	}
	if _, err := c.ColorOverrides(); err != nil {
		return err
	}
	return nil
}

// OutputWidth returns the configured width, 0 when no layer sets one.
func (c StatusmsgConfig) OutputWidth() int {
	if c.Width == nil {
		return 0
	}
	return *c.Width
}

// IntPtr returns a pointer to n.
func IntPtr(n int) *int {
	return &n
}

// SymbolMode returns the parsed symbol mode.
func (c StatusmsgConfig) SymbolMode() (figures.Mode, error) {
	return figures.ParseMode(c.Symbols)
}

// ColorOverrides converts the colors section into per-variant overrides.
func (c StatusmsgConfig) ColorOverrides() (map[variant.Variant]string, error) {
	if len(c.Colors) == 0 {
		return nil, nil
	}
	out := make(map[variant.Variant]string, len(c.Colors))
	for name, color := range c.Colors {
		v, err := variant.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("invalid colors entry: %w", err)
		}
		out[v] = color
	}
	return out, nil
}
