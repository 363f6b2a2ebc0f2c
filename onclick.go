package ui

import (
	"github.com/gogpu/ui/draw"
	"github.com/gogpu/ui/location"
	"github.com/gogpu/ui/resource"
	"github.com/gogpu/ui/state"
)

// ClickHandler reacts to a left click. It may write shared cells through
// sig.
type ClickHandler func(sig state.Sender) EventResult

// OnClick wraps an element with a left-click handler.
//
// A click reaches the handler only when it lands inside the location the
// element was last drawn at; an element that was never drawn receives no
// clicks. When the handler does not consume the click, or the click falls
// outside, it is passed on to the wrapped element.
type OnClick struct {
	Child   Element
	Handler ClickHandler

	drawn bool
	last  location.Location
}

// NewOnClick wraps child with handler.
func NewOnClick(child Element, handler ClickHandler) *OnClick {
	return &OnClick{Child: child, Handler: handler}
}

// Draw implements Element. The child is drawn unchanged.
func (o *OnClick) Draw(pass *draw.Pass, res *resource.Registry, loc location.Location) {
	o.drawn = true
	o.last = loc
	o.Child.Draw(pass, res, loc)
}

// HandleEvent implements Element.
func (o *OnClick) HandleEvent(ev Event) EventResult {
	if c, ok := ev.(Click); ok && c.Button == ButtonLeft && o.hit(c.Point) {
		if o.Handler(c.Signals) == Consumed {
			return Consumed
		}
	}
	return o.Child.HandleEvent(ev)
}

func (o *OnClick) hit(p location.Point) bool {
	return o.drawn && o.last.Contains(p)
}

// InvalidateCaches implements Element.
func (o *OnClick) InvalidateCaches(addrs state.AddressSet) bool {
	return o.Child.InvalidateCaches(addrs)
}

// Children implements Container.
func (o *OnClick) Children() []Element { return []Element{o.Child} }
