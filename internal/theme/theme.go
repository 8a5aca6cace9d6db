package theme

import (
	"statusmsg/internal/render"
	"statusmsg/internal/variant"
)

// Props is the input to the variant-dependent style slots.
type Props struct {
	Variant variant.Variant
}

// Theme is the set of style slots used by the status message component.
// A nil slot falls back to the default for that slot.
type Theme struct {
	Container     func() render.BoxStyle
	IconContainer func() render.BoxStyle
	Icon          func(Props) render.TextStyle
	Message       func() render.TextStyle
}

// Default returns the stock theme.
func Default() Theme {
	return Theme{
		Container:     container,
		IconContainer: iconContainer,
		Icon:          icon,
		Message:       message,
	}
}

func container() render.BoxStyle {
	return render.BoxStyle{ColumnGap: 1}
}

func iconContainer() render.BoxStyle {
	return render.BoxStyle{FlexShrink: render.Shrink(0)}
}

func icon(props Props) render.TextStyle {
	return render.TextStyle{Color: variant.Color(props.Variant)}
}

func message() render.TextStyle {
	return render.TextStyle{}
}

// Override returns a copy of t where every non-nil slot of o replaces the
// slot in t.
func (t Theme) Override(o Theme) Theme {
	if o.Container != nil {
		t.Container = o.Container
	}
	if o.IconContainer != nil {
		t.IconContainer = o.IconContainer
	}
	if o.Icon != nil {
		t.Icon = o.Icon
	}
	if o.Message != nil {
		t.Message = o.Message
	}
	return t
}

// Complete fills every nil slot with the default.
func (t Theme) Complete() Theme {
	return Default().Override(t)
}

// WithColors returns a theme whose icon color comes from colors, falling
// back to t's icon slot for variants missing from the map.
func (t Theme) WithColors(colors map[variant.Variant]string) Theme {
	if len(colors) == 0 {
		return t
	}
	base := t.Complete().Icon
	overrides := make(map[variant.Variant]string, len(colors))
	for v, c := range colors {
		if c != "" {
			overrides[v] = c
		}
	}
	t.Icon = func(props Props) render.TextStyle {
		style := base(props)
		if c, ok := overrides[props.Variant]; ok {
			style.Color = c
		}
		return style
	}
	return t
}
