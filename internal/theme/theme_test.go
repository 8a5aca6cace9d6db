package theme

import (
	"testing"

	"statusmsg/internal/render"
	"statusmsg/internal/variant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcon_ColorPerVariant(t *testing.T) {
	th := Default()

	tests := []struct {
		variant  variant.Variant
		expected string
	}{
		{variant.Success, "green"},
		{variant.Error, "red"},
		{variant.Warning, "yellow"},
		{variant.Info, "blue"},
	}

	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			got := th.Icon(Props{Variant: tt.variant})
			assert.Equal(t, render.TextStyle{Color: tt.expected}, got)
		})
	}
}

func TestFixedSlots(t *testing.T) {
	th := Default()

	assert.Equal(t, render.BoxStyle{ColumnGap: 1}, th.Container())
	assert.Equal(t, render.TextStyle{}, th.Message())

	ic := th.IconContainer()
	require.NotNil(t, ic.FlexShrink)
	assert.Equal(t, 0, *ic.FlexShrink)
	assert.False(t, ic.Shrinks())
	assert.Equal(t, 0, ic.ColumnGap)
}

func TestSlots_AreDeterministic(t *testing.T) {
	a, b := Default(), Default()
	for _, v := range variant.Variants() {
		assert.Equal(t, a.Icon(Props{Variant: v}), b.Icon(Props{Variant: v}))
		assert.Equal(t, a.Icon(Props{Variant: v}), a.Icon(Props{Variant: v}))
	}
	assert.Equal(t, a.Container(), b.Container())
	assert.Equal(t, a.IconContainer(), b.IconContainer())
	assert.Equal(t, a.Message(), b.Message())
}

func TestOverride_Subset(t *testing.T) {
	custom := Default().Override(Theme{
		Message: func() render.TextStyle { return render.TextStyle{Color: "gray"} },
	})

	assert.Equal(t, render.TextStyle{Color: "gray"}, custom.Message())
	assert.Equal(t, render.BoxStyle{ColumnGap: 1}, custom.Container())
	assert.Equal(t, render.TextStyle{Color: "red"}, custom.Icon(Props{Variant: variant.Error}))
}

func TestComplete_FillsNilSlots(t *testing.T) {
	th := Theme{
		Container: func() render.BoxStyle { return render.BoxStyle{ColumnGap: 2} },
	}.Complete()

	require.NotNil(t, th.IconContainer)
	require.NotNil(t, th.Icon)
	require.NotNil(t, th.Message)
	assert.Equal(t, 2, th.Container().ColumnGap)
	assert.Equal(t, "blue", th.Icon(Props{Variant: variant.Info}).Color)
}

func TestWithColors(t *testing.T) {
	th := Default().WithColors(map[variant.Variant]string{
		variant.Success: "#10B981",
		variant.Error:   "",
	})

	assert.Equal(t, "#10B981", th.Icon(Props{Variant: variant.Success}).Color)
	assert.Equal(t, "red", th.Icon(Props{Variant: variant.Error}).Color, "empty override keeps default")
	assert.Equal(t, "yellow", th.Icon(Props{Variant: variant.Warning}).Color)

	same := Default().WithColors(nil)
	assert.Equal(t, "blue", same.Icon(Props{Variant: variant.Info}).Color)
}
