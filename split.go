package ui

import (
	"fmt"

	"github.com/gogpu/ui/draw"
	"github.com/gogpu/ui/location"
	"github.com/gogpu/ui/resource"
	"github.com/gogpu/ui/state"
)

// SplitKind selects the axis a Split divides.
type SplitKind uint8

const (
	// Vertical stacks children top to bottom.
	Vertical SplitKind = iota
	// Horizontal stacks children left to right.
	Horizontal
	// Adaptive is reserved. Laying it out panics.
	Adaptive
)

func (k SplitKind) String() string {
	switch k {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	case Adaptive:
		return "adaptive"
	default:
		return fmt.Sprintf("SplitKind(%d)", uint8(k))
	}
}

// Weighted is a Split child with its share of the axis.
type Weighted struct {
	Weight  float64
	Element Element
}

// W pairs an element with a weight.
func W(weight float64, e Element) Weighted {
	return Weighted{Weight: weight, Element: e}
}

// Split divides its location among weighted children along one axis.
// Child i receives weight_i / Σweights of the axis, after the shares of
// the children before it.
type Split struct {
	Kind     SplitKind
	Elements []Weighted
}

// NewSplit returns a split of the given kind.
func NewSplit(kind SplitKind, children ...Weighted) *Split {
	return &Split{Kind: kind, Elements: children}
}

// Column stacks children top to bottom with equal weights.
func Column(children ...Element) *Split {
	return NewSplit(Vertical, equalWeights(children)...)
}

// Row stacks children left to right with equal weights.
func Row(children ...Element) *Split {
	return NewSplit(Horizontal, equalWeights(children)...)
}

func equalWeights(children []Element) []Weighted {
	ws := make([]Weighted, len(children))
	for i, c := range children {
		ws[i] = Weighted{Weight: 1, Element: c}
	}
	return ws
}

// Layout returns the rectangle of every child relative to the split.
func (s *Split) Layout() []location.Rect {
	if s.Kind == Adaptive {
		panic("ui: adaptive split is not implemented")
	}
	total := 0.0
	for _, w := range s.Elements {
		total += w.Weight
	}
	rects := make([]location.Rect, len(s.Elements))
	if total <= 0 {
		return rects
	}
	before := 0.0
	for i, w := range s.Elements {
		offset, fraction := before/total, w.Weight/total
		switch s.Kind {
		case Vertical:
			rects[i] = location.NewRect(0, offset, 1, fraction)
		case Horizontal:
			rects[i] = location.NewRect(offset, 0, fraction, 1)
		default:
			panic(fmt.Sprintf("ui: unknown split kind %v", s.Kind))
		}
		before += w.Weight
	}
	return rects
}

// Draw implements Element.
func (s *Split) Draw(pass *draw.Pass, res *resource.Registry, loc location.Location) {
	for i, r := range s.Layout() {
		s.Elements[i].Element.Draw(pass, res, loc.Sub(r))
	}
}

// HandleEvent implements Element. Children see events in declaration
// order.
func (s *Split) HandleEvent(ev Event) EventResult {
	return dispatch(s.Children(), ev)
}

// InvalidateCaches implements Element.
func (s *Split) InvalidateCaches(addrs state.AddressSet) bool {
	return invalidateAll(s.Children(), addrs)
}

// Children implements Container.
func (s *Split) Children() []Element {
	out := make([]Element, len(s.Elements))
	for i, w := range s.Elements {
		out[i] = w.Element
	}
	return out
}

// Layers stacks children on the same location. The first child is painted
// first; events reach the last child first.
type Layers struct {
	Elements []Element
}

// NewLayers returns a stack of children, back to front.
func NewLayers(children ...Element) *Layers {
	return &Layers{Elements: children}
}

// Draw implements Element.
func (l *Layers) Draw(pass *draw.Pass, res *resource.Registry, loc location.Location) {
	for _, e := range l.Elements {
		e.Draw(pass, res, loc)
	}
}

// HandleEvent implements Element.
func (l *Layers) HandleEvent(ev Event) EventResult {
	return dispatchReverse(l.Elements, ev)
}

// InvalidateCaches implements Element.
func (l *Layers) InvalidateCaches(addrs state.AddressSet) bool {
	return invalidateAll(l.Elements, addrs)
}

// Children implements Container.
func (l *Layers) Children() []Element { return l.Elements }
