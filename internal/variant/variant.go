package variant

import (
	"errors"
	"fmt"
	"strings"
)

// Variant is the semantic category of a status message.
type Variant int

const (
	Info Variant = iota
	Success
	Error
	Warning
)

// ErrUnknownVariant is returned when a string does not name one of the four variants.
var ErrUnknownVariant = errors.New("unknown variant")

// Color names understood by the renderer.
const (
	ColorGreen  = "green"
	ColorRed    = "red"
	ColorYellow = "yellow"
	ColorBlue   = "blue"
)

// colorByVariant has exactly one entry per variant.
var colorByVariant = map[Variant]string{
	Success: ColorGreen,
	Error:   ColorRed,
	Warning: ColorYellow,
	Info:    ColorBlue,
}

// Variants returns all variants in display order.
func Variants() []Variant {
	return []Variant{Info, Success, Error, Warning}
}

// String makes Variant satisfy the fmt.Stringer interface.
func (v Variant) String() string {
	switch v {
	case Info:
		return "info"
	case Success:
		return "success"
	case Error:
		return "error"
	case Warning:
		return "warning"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Valid reports whether v is one of the four known variants.
func (v Variant) Valid() bool {
	_, ok := colorByVariant[v]
	return ok
}

// Color returns the display color name for v.
func Color(v Variant) string {
	return colorByVariant[v]
}

// ColorByVariant returns a copy of the variant to color mapping.
func ColorByVariant() map[Variant]string {
	out := make(map[Variant]string, len(colorByVariant))
	for v, c := range colorByVariant {
		out[v] = c
	}
	return out
}

// Parse converts user input such as a flag value or a config key into a Variant.
func Parse(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info":
		return Info, nil
	case "success":
		return Success, nil
	case "error":
		return Error, nil
	case "warning":
		return Warning, nil
	default:
		return Info, fmt.Errorf("%w: %q (expected one of info, success, error, warning)", ErrUnknownVariant, s)
	}
}
