package render

// BoxStyle holds layout attributes for a Box.
type BoxStyle struct {
	// ColumnGap is the number of blank cells between horizontal children.
	ColumnGap int
	// FlexShrink controls whether the box gives up width when its parent is
	// constrained. Nil means the default of 1.
	FlexShrink *int
}

// TextStyle holds attributes for a Text node.
type TextStyle struct {
	// Color is a color name (e.g. "green"), an ANSI index or a hex value.
	// Empty means the terminal default.
	Color string
}

// Inherit fills unset attributes of s from parent.
func (s TextStyle) Inherit(parent TextStyle) TextStyle {
	if s.Color == "" {
		s.Color = parent.Color
	}
	return s
}

// Shrink returns a FlexShrink value.
func Shrink(n int) *int {
	return &n
}

// Shrinks reports whether the box may be narrowed below its natural width.
func (s BoxStyle) Shrinks() bool {
	return s.FlexShrink == nil || *s.FlexShrink > 0
}

// Node is an element of a render tree.
type Node interface {
	isNode()
}

// String is a literal text leaf.
type String string

// Box lays out its children horizontally.
type Box struct {
	Style    BoxStyle
	Children []Node
}

// Text renders its children inline. Its style applies to every descendant
// that does not set its own.
type Text struct {
	Style    TextStyle
	Children []Node
}

func (String) isNode() {}
func (Box) isNode()    {}
func (Text) isNode()   {}

// NewBox is a convenience constructor for Box.
func NewBox(style BoxStyle, children ...Node) Box {
	return Box{Style: style, Children: children}
}

// NewText is a convenience constructor for Text.
func NewText(style TextStyle, children ...Node) Text {
	return Text{Style: style, Children: children}
}
