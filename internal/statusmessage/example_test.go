package statusmessage_test

import (
	"fmt"

	"statusmsg/internal/figures"
	"statusmsg/internal/render"
	"statusmsg/internal/statusmessage"
	"statusmsg/internal/theme"
	"statusmsg/internal/variant"
)

// ExampleRender shows each variant painted without colors.
func ExampleRender() {
	opts := statusmessage.Options{Theme: theme.Default(), Symbols: figures.ASCII}

	for _, v := range variant.Variants() {
		fmt.Println(statusmessage.Render(render.Plain{}, opts, statusmessage.Props{
			Variant: v,
			Content: statusmessage.Text("Build " + v.String()),
		}, 0))
	}
	// Output:
	// i Build info
	// √ Build success
	// × Build error
	// ‼ Build warning
}
