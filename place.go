package ui

import (
	"github.com/gogpu/ui/draw"
	"github.com/gogpu/ui/location"
	"github.com/gogpu/ui/resource"
	"github.com/gogpu/ui/state"
)

// Place draws its child at a rectangle relative to its own location.
type Place struct {
	Rect  location.Rect
	Child Element
}

// NewPlace returns child placed at r.
func NewPlace(r location.Rect, child Element) *Place {
	return &Place{Rect: r, Child: child}
}

// Draw implements Element.
func (p *Place) Draw(pass *draw.Pass, res *resource.Registry, loc location.Location) {
	p.Child.Draw(pass, res, loc.Sub(p.Rect))
}

// HandleEvent implements Element.
func (p *Place) HandleEvent(ev Event) EventResult { return p.Child.HandleEvent(ev) }

// InvalidateCaches implements Element.
func (p *Place) InvalidateCaches(addrs state.AddressSet) bool {
	return p.Child.InvalidateCaches(addrs)
}

// Children implements Container.
func (p *Place) Children() []Element { return []Element{p.Child} }
