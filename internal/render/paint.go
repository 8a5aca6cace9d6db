package render

import "strings"

// Block is a painted child handed to RenderBox.
type Block struct {
	Content string
	// Shrink is false for children that must keep their natural width.
	Shrink bool
}

// Renderer is the host framework's painting surface.
type Renderer interface {
	// RenderBox joins already painted children horizontally. A positive
	// width constrains the total width of the box.
	RenderBox(children []Block, style BoxStyle, width int) string
	// RenderText applies a resolved text style to a single text leaf.
	RenderText(content string, style TextStyle) string
}

// Paint walks n depth-first, children in order, and returns the painted
// output. width constrains the root node only; 0 means natural width.
func Paint(r Renderer, n Node, width int) string {
	return paint(r, n, width, TextStyle{}).Content
}

// paint styles each String leaf with the style inherited from its enclosing
// Text nodes, so already styled output is never wrapped again.
func paint(r Renderer, n Node, width int, style TextStyle) Block {
	switch n := n.(type) {
	case nil:
		return Block{Shrink: true}
	case String:
		if n == "" {
			return Block{Shrink: true}
		}
		return Block{Content: r.RenderText(string(n), style), Shrink: true}
	case Text:
		return Block{Content: inline(r, n.Children, n.Style.Inherit(style)), Shrink: true}
	case Box:
		blocks := make([]Block, 0, len(n.Children))
		for _, child := range n.Children {
			blocks = append(blocks, paint(r, child, 0, style))
		}
		return Block{Content: r.RenderBox(blocks, n.Style, width), Shrink: n.Style.Shrinks()}
	default:
		return Block{Shrink: true}
	}
}

// inline concatenates the painted children of a Text node.
func inline(r Renderer, children []Node, style TextStyle) string {
	var b strings.Builder
	for _, child := range children {
		b.WriteString(paint(r, child, 0, style).Content)
	}
	return b.String()
}
