package ui

import (
	"fmt"
	"reflect"

	"github.com/gogpu/ui/draw"
	"github.com/gogpu/ui/location"
	"github.com/gogpu/ui/resource"
	"github.com/gogpu/ui/state"
)

// Anchor names a typed slot through which a shared cell set near the root
// reaches elements deep in the tree.
type Anchor[T any] struct {
	name string
}

// NewAnchor returns a new slot. Anchors are compared by identity.
func NewAnchor[T any](name string) *Anchor[T] {
	return &Anchor[T]{name: name}
}

func (a *Anchor[T]) String() string {
	return fmt.Sprintf("%s (%v)", a.name, reflect.TypeFor[T]())
}

// AnchorError reports an anchor that is read but never set.
type AnchorError struct {
	Anchor string
}

func (e *AnchorError) Error() string {
	return fmt.Sprintf("ui: anchor %s is got but never set", e.Anchor)
}

type anchorSetter interface {
	anchorKey() any
	anchorCell() any
}

type anchorGetter interface {
	anchorKey() any
	anchorName() string
	resolved() bool
	resolve(cell any)
}

// SetAnchor provides cell to every GetAnchor of the same anchor.
type SetAnchor[T any] struct {
	anchor *Anchor[T]
	cell   *state.Shared[T]
	Child  Element
}

// Set returns an element that draws child and provides cell under a.
func Set[T any](a *Anchor[T], cell *state.Shared[T], child Element) *SetAnchor[T] {
	return &SetAnchor[T]{anchor: a, cell: cell, Child: child}
}

func (s *SetAnchor[T]) anchorKey() any  { return s.anchor }
func (s *SetAnchor[T]) anchorCell() any { return s.cell }

// Draw implements Element.
func (s *SetAnchor[T]) Draw(pass *draw.Pass, res *resource.Registry, loc location.Location) {
	s.Child.Draw(pass, res, loc)
}

// HandleEvent implements Element.
func (s *SetAnchor[T]) HandleEvent(ev Event) EventResult { return s.Child.HandleEvent(ev) }

// InvalidateCaches implements Element.
func (s *SetAnchor[T]) InvalidateCaches(addrs state.AddressSet) bool {
	return s.Child.InvalidateCaches(addrs)
}

// Children implements Container.
func (s *SetAnchor[T]) Children() []Element { return []Element{s.Child} }

// GetAnchor builds its content from the cell set under an anchor. The
// content exists once ResolveAnchors has run.
type GetAnchor[T any] struct {
	anchor *Anchor[T]
	build  func(*state.Shared[T]) Element
	cell   *state.Shared[T]
	child  Element
	done   bool
}

// Get returns an element whose content is build(cell) for the cell set
// under a.
func Get[T any](a *Anchor[T], build func(*state.Shared[T]) Element) *GetAnchor[T] {
	return &GetAnchor[T]{anchor: a, build: build}
}

func (g *GetAnchor[T]) anchorKey() any     { return g.anchor }
func (g *GetAnchor[T]) anchorName() string { return g.anchor.String() }
func (g *GetAnchor[T]) resolved() bool     { return g.done }

func (g *GetAnchor[T]) resolve(cell any) {
	g.cell = cell.(*state.Shared[T])
	g.child = g.build(g.cell)
	g.done = true
}

// Cell returns the resolved cell, or nil before resolution.
func (g *GetAnchor[T]) Cell() *state.Shared[T] { return g.cell }

func (g *GetAnchor[T]) content() Element {
	if g.child == nil {
		panic(&AnchorError{Anchor: g.anchorName()})
	}
	return g.child
}

// Draw implements Element.
func (g *GetAnchor[T]) Draw(pass *draw.Pass, res *resource.Registry, loc location.Location) {
	g.content().Draw(pass, res, loc)
}

// HandleEvent implements Element.
func (g *GetAnchor[T]) HandleEvent(ev Event) EventResult { return g.content().HandleEvent(ev) }

// InvalidateCaches implements Element.
func (g *GetAnchor[T]) InvalidateCaches(addrs state.AddressSet) bool {
	if g.child == nil {
		return false
	}
	return g.child.InvalidateCaches(addrs)
}

// Children implements Container.
func (g *GetAnchor[T]) Children() []Element {
	if g.child == nil {
		return nil
	}
	return []Element{g.child}
}

// walk visits e and then its children. Children are read after the visit,
// so content built by the visit is walked too.
func walk(e Element, visit func(Element)) {
	visit(e)
	if c, ok := e.(Container); ok {
		for _, child := range c.Children() {
			walk(child, visit)
		}
	}
}

// ResolveAnchors wires every GetAnchor in the tree to the cell of the
// matching SetAnchor. Sets are collected over the whole tree; when an anchor
// is set twice the later one in depth-first order wins.
//
// Content built by a get may itself hold sets and gets. Resolution repeats
// until no get is left or a pass makes no progress, so a set inside built
// content reaches the gets that are still unresolved at that point. Gets
// resolved earlier, including by a previous call, keep their content. A get
// with no matching set yields *AnchorError.
func ResolveAnchors(root Element) error {
	sets := make(map[any]any)
	for {
		walk(root, func(e Element) {
			if s, ok := e.(anchorSetter); ok {
				sets[s.anchorKey()] = s.anchorCell()
			}
		})

		progress := false
		var missing anchorGetter
		walk(root, func(e Element) {
			g, ok := e.(anchorGetter)
			if !ok || g.resolved() {
				return
			}
			cell, found := sets[g.anchorKey()]
			if !found {
				if missing == nil {
					missing = g
				}
				return
			}
			g.resolve(cell)
			progress = true
		})
		switch {
		case missing == nil:
			return nil
		case !progress:
			return &AnchorError{Anchor: missing.anchorName()}
		}
	}
}

// MustResolveAnchors is like ResolveAnchors but panics on error.
func MustResolveAnchors(root Element) {
	if err := ResolveAnchors(root); err != nil {
		panic(err)
	}
}
