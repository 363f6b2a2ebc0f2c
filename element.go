package ui

import (
	"fmt"

	"github.com/gogpu/ui/draw"
	"github.com/gogpu/ui/location"
	"github.com/gogpu/ui/resource"
	"github.com/gogpu/ui/state"
)

// Element is a node of the UI tree.
type Element interface {
	// Draw issues the element's draw requests for loc. It must not write
	// shared cells.
	Draw(pass *draw.Pass, res *resource.Registry, loc location.Location)

	// HandleEvent reacts to ev. Consumed stops sibling traversal.
	HandleEvent(ev Event) EventResult

	// InvalidateCaches drops caches depending on addrs, recursively, and
	// reports whether any cache was actually reset.
	InvalidateCaches(addrs state.AddressSet) bool
}

// Container is implemented by elements with children.
type Container interface {
	Children() []Element
}

// EventResult tells a container whether to keep dispatching an event.
type EventResult uint8

const (
	// OK lets the event continue to the next sibling.
	OK EventResult = iota
	// Consumed stops the event.
	Consumed
)

func (r EventResult) String() string {
	if r == Consumed {
		return "Consumed"
	}
	return "OK"
}

// Event is an input event dispatched through the tree.
type Event interface {
	isEvent()
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
	ButtonOther
)

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return fmt.Sprintf("MouseButton(%d)", uint8(b))
	}
}

// Click is a released mouse button at Point. Signals lets handlers write
// shared cells.
type Click struct {
	Point   location.Point
	Button  MouseButton
	Signals state.Sender
}

func (Click) isEvent() {}

// Group is an ordered set of elements sharing one location. It draws in
// order, dispatches events in order until one is consumed and visits every
// child on invalidation.
type Group []Element

// Draw implements Element.
func (g Group) Draw(pass *draw.Pass, res *resource.Registry, loc location.Location) {
	for _, e := range g {
		e.Draw(pass, res, loc)
	}
}

// HandleEvent implements Element.
func (g Group) HandleEvent(ev Event) EventResult {
	return dispatch(g, ev)
}

// InvalidateCaches implements Element.
func (g Group) InvalidateCaches(addrs state.AddressSet) bool {
	return invalidateAll(g, addrs)
}

// Children implements Container.
func (g Group) Children() []Element { return g }

func dispatch(children []Element, ev Event) EventResult {
	for _, e := range children {
		if e.HandleEvent(ev) == Consumed {
			return Consumed
		}
	}
	return OK
}

func dispatchReverse(children []Element, ev Event) EventResult {
	for i := len(children) - 1; i >= 0; i-- {
		if children[i].HandleEvent(ev) == Consumed {
			return Consumed
		}
	}
	return OK
}

// invalidateAll never short-circuits: every child must drop its caches.
func invalidateAll(children []Element, addrs state.AddressSet) bool {
	reset := false
	for _, e := range children {
		if e.InvalidateCaches(addrs) {
			reset = true
		}
	}
	return reset
}
