// Package statusmessage implements the StatusMessage component: a colored
// icon followed by a message, for one of the info, success, error and
// warning variants.
//
// The component is a pure function of its props and the injected Options.
// It builds a render tree and leaves painting to a render.Renderer:
//
//	opts := statusmessage.DefaultOptions(terminal.FromOS())
//	node := statusmessage.StatusMessage(opts, statusmessage.Props{
//	    Variant: variant.Success,
//	    Content: statusmessage.Text("Deployed"),
//	})
//	fmt.Println(render.Paint(render.NewLipgloss(os.Stdout), node, 0))
package statusmessage

import (
	"statusmsg/internal/figures"
	"statusmsg/internal/render"
	"statusmsg/internal/terminal"
	"statusmsg/internal/theme"
	"statusmsg/internal/variant"
)

// Props are supplied by the caller for each render.
type Props struct {
	Variant variant.Variant
	// Content is forwarded verbatim into the message slot.
	Content render.Node
}

// Options carries the capabilities the component depends on.
type Options struct {
	Theme   theme.Theme
	Symbols figures.Set
}

// DefaultOptions uses the stock theme and the symbol set suited to env.
func DefaultOptions(env terminal.Env) Options {
	return Options{
		Theme:   theme.Default(),
		Symbols: figures.ForEnv(env),
	}
}

// Text wraps a plain string as message content.
func Text(s string) render.Node {
	return render.String(s)
}

// IconByVariant maps each variant to its symbol in set.
func IconByVariant(set figures.Set) map[variant.Variant]string {
	return map[variant.Variant]string{
		variant.Info:    set.Info,
		variant.Success: set.Tick,
		variant.Error:   set.Cross,
		variant.Warning: set.Warning,
	}
}

// StatusMessage builds the render tree for props.
func StatusMessage(opts Options, props Props) render.Node {
	th := opts.Theme.Complete()
	icon := IconByVariant(opts.Symbols)[props.Variant]

	return render.NewBox(th.Container(),
		render.NewBox(th.IconContainer(),
			render.NewText(th.Icon(theme.Props{Variant: props.Variant}), render.String(icon)),
		),
		render.NewText(th.Message(), props.Content),
	)
}

// Render builds and paints the component in one step. A positive width
// constrains the output; the icon column never shrinks.
func Render(r render.Renderer, opts Options, props Props, width int) string {
	return render.Paint(r, StatusMessage(opts, props), width)
}
