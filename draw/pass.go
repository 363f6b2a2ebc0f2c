// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import "fmt"

// Kind identifies the drawer a request goes to.
type Kind uint8

const (
	// KindNone means no drawer is active.
	KindNone Kind = iota
	// KindMesh is the instanced textured mesh drawer.
	KindMesh
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindMesh:
		return "mesh"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Pass routes draw requests of one redraw to the drawers.
//
// Switching kinds flushes the previously active drawer. End flushes what
// is left; it must be called exactly once per pass, typically deferred.
// The first error encountered is kept and returned by End; later requests
// are dropped.
type Pass struct {
	rp      RenderPass
	drawers *Drawers
	active  Kind
	err     error
	ended   bool
}

// NewPass starts a pass recording into rp.
func NewPass(rp RenderPass, drawers *Drawers) *Pass {
	return &Pass{rp: rp, drawers: drawers}
}

// Active returns the kind of the drawer currently accumulating.
func (p *Pass) Active() Kind { return p.active }

// DrawMesh requests one mesh instance.
func (p *Pass) DrawMesh(req MeshRequest) {
	if p.ended {
		p.fail(ErrPassEnded)
		return
	}
	if p.err != nil {
		return
	}
	if err := p.switchTo(KindMesh); err != nil {
		p.fail(err)
		return
	}
	if err := p.drawers.meshDrawer().Push(p.rp, req); err != nil {
		p.fail(err)
	}
}

func (p *Pass) switchTo(k Kind) error {
	if p.active == k {
		return nil
	}
	err := p.flushActive()
	p.active = k
	return err
}

func (p *Pass) flushActive() error {
	switch p.active {
	case KindMesh:
		return p.drawers.meshDrawer().Flush(p.rp)
	default:
		return nil
	}
}

func (p *Pass) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

// Err returns the first error recorded so far.
func (p *Pass) Err() error { return p.err }

// End flushes the active drawer and returns the first error of the pass.
// Further calls return the same error without flushing again.
func (p *Pass) End() error {
	if p.ended {
		return p.err
	}
	p.ended = true
	if err := p.flushActive(); err != nil {
		p.fail(err)
	}
	p.active = KindNone
	return p.err
}
