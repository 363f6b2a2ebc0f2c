package ui

import (
	"testing"

	"github.com/gogpu/ui/draw"
	"github.com/gogpu/ui/location"
	"github.com/gogpu/ui/resource"
	"github.com/gogpu/ui/state"
)

// recordedBatch is a copy of one flush.
type recordedBatch struct {
	Texture   string
	Instances []draw.Transform
}

type recordingRenderer struct {
	batches []recordedBatch
}

func (r *recordingRenderer) RenderBatch(_ draw.RenderPass, b draw.Batch) error {
	r.batches = append(r.batches, recordedBatch{
		Texture:   b.Texture.Label,
		Instances: append([]draw.Transform(nil), b.Instances...),
	})
	return nil
}

func newTestRegistry() *resource.Registry {
	r := resource.NewRegistry(nil)
	resource.Provide(r, draw.NoGlobalTransform, &draw.GlobalTransform{Transform: draw.Identity()})
	resource.Provide(r, draw.UnitSquareTopLeft, &draw.Mesh{Label: "unit-square"})
	resource.Provide(r, draw.DefaultTexture, &draw.Texture{Label: "default"})
	return r
}

// testFrame draws root once and returns the recorded batches and stats.
func testFrame(t *testing.T, root Element, reg *resource.Registry, window location.Size) ([]recordedBatch, draw.Stats) {
	t.Helper()
	r := &recordingRenderer{}
	d := draw.NewDrawers(r)
	d.BeginFrame()
	pass := draw.NewPass(nil, d)
	root.Draw(pass, reg, location.Initial(window))
	if err := pass.End(); err != nil {
		t.Fatalf("pass.End() = %v", err)
	}
	return r.batches, d.Stats()
}

// spy is an element that logs what happens to it.
type spy struct {
	name       string
	log        *[]string
	result     EventResult
	invalidate bool
	loc        location.Location
}

func (p *spy) Draw(_ *draw.Pass, _ *resource.Registry, loc location.Location) {
	p.loc = loc
	*p.log = append(*p.log, "draw "+p.name)
}

func (p *spy) HandleEvent(Event) EventResult {
	*p.log = append(*p.log, "event "+p.name)
	return p.result
}

func (p *spy) InvalidateCaches(state.AddressSet) bool {
	*p.log = append(*p.log, "invalidate "+p.name)
	return p.invalidate
}

// panicker fails the test if it receives an event.
type panicker struct{ spy }

func (p *panicker) HandleEvent(Event) EventResult {
	panic("event reached an element behind a consumer")
}

func clickAt(px, py float64, window location.Size) Click {
	return Click{Point: location.PointFromPixels(px, py, window), Button: ButtonLeft}
}
