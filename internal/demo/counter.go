// Package demo builds the element trees run by cmd/uidemo.
package demo

import (
	"github.com/gogpu/ui"
	"github.com/gogpu/ui/state"
	"github.com/gogpu/ui/value"
)

// Counter is a label showing how often a button was clicked.
type Counter struct {
	Count *state.Shared[int]
	Text  *value.Stringify[int]
	Root  ui.Element
}

// NewCounter builds
//
//	column(
//	    label("clicked " + count + " times"),
//	    on_click(layers(rect(green), label("click me!")), count++),
//	)
func NewCounter() *Counter {
	c := &Counter{Count: state.NewShared(0)}
	c.Text = value.Stringified[int](value.FromShared(c.Count))

	caption := ui.NewLabel(value.Concat3(value.Of("clicked "), c.Text, value.Of(" times")))
	button := ui.NewOnClick(
		ui.NewLayers(ui.NewRect(value.Of(ui.Green)), ui.NewLabel(value.Of("click me!"))),
		func(sig state.Sender) ui.EventResult {
			c.Count.Update(sig, func(n *int) { *n++ })
			return ui.Consumed
		},
	)
	c.Root = ui.Column(caption, button)
	return c
}

// ButtonCenter returns the pixel position of the button's centre in a
// window of the given size.
func ButtonCenter(width, height uint32) (x, y float64) {
	return float64(width) / 2, float64(height) * 3 / 4
}
