package demo

import (
	"testing"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/draw"
	"github.com/gogpu/ui/location"
	"github.com/gogpu/ui/resource"
	"github.com/gogpu/ui/state"
)

type countingRenderer struct {
	textures []string
	total    int
}

func (r *countingRenderer) RenderBatch(_ draw.RenderPass, b draw.Batch) error {
	r.textures = append(r.textures, b.Texture.Label)
	r.total += len(b.Instances)
	return nil
}

func testRegistry() *resource.Registry {
	r := resource.NewRegistry(nil)
	resource.Provide(r, draw.NoGlobalTransform, &draw.GlobalTransform{Transform: draw.Identity()})
	resource.Provide(r, draw.UnitSquareTopLeft, &draw.Mesh{Label: "unit-square"})
	resource.Provide(r, draw.DefaultTexture, &draw.Texture{Label: "default"})
	resource.Provide(r, LightSquare, &draw.Texture{Label: "light"})
	resource.Provide(r, DarkSquare, &draw.Texture{Label: "dark"})
	return r
}

var window = location.Size{W: 800, H: 800}

func drawFrame(t *testing.T, root ui.Element) (*countingRenderer, draw.Stats) {
	t.Helper()
	r := &countingRenderer{}
	d := draw.NewDrawers(r)
	d.BeginFrame()
	pass := draw.NewPass(nil, d)
	root.Draw(pass, testRegistry(), location.Initial(window))
	if err := pass.End(); err != nil {
		t.Fatalf("End() = %v", err)
	}
	return r, d.Stats()
}

func TestChessFlushes(t *testing.T) {
	tests := []struct {
		order Order
		want  int
	}{
		{Contiguous, 2},
		{Interleaved, 64},
	}
	for _, tt := range tests {
		r, stats := drawFrame(t, NewChess(tt.order).Root)
		if stats.Flushes != tt.want || len(r.textures) != tt.want {
			t.Errorf("order %d: %d flushes, want %d", tt.order, stats.Flushes, tt.want)
		}
		if r.total != BoardSize*BoardSize || stats.Instances != BoardSize*BoardSize {
			t.Errorf("order %d: %d squares drawn", tt.order, r.total)
		}
	}
}

func TestChessSelect(t *testing.T) {
	c := NewChess(Contiguous)
	drawFrame(t, c.Root)

	q := state.NewQueue()
	x, y := SquareCenter(3, 5, window.W, window.H)
	click := ui.Click{Point: location.PointFromPixels(x, y, window), Button: ui.ButtonLeft, Signals: q.Sender()}
	if got := c.Root.HandleEvent(click); got != ui.Consumed {
		t.Fatalf("HandleEvent() = %v, want Consumed", got)
	}
	if got := c.Selected.Load(); got != 5*BoardSize+3 {
		t.Errorf("selected = %d, want %d", got, 5*BoardSize+3)
	}

	sigs := q.Drain()
	want := []state.Signal{state.SharedUpdated(c.Selected.Addr()), state.Redraw()}
	if len(sigs) != len(want) || sigs[0] != want[0] || sigs[1] != want[1] {
		t.Errorf("signals = %v, want %v", sigs, want)
	}
}

func TestCounterTree(t *testing.T) {
	c := NewCounter()
	r, stats := drawFrame(t, c.Root)
	if stats.Flushes != 1 || r.total != 3 {
		t.Errorf("flushes = %d, instances = %d, want 1, 3", stats.Flushes, r.total)
	}
	if got, _ := c.Text.Cached(); got != "0" {
		t.Errorf("Cached() = %q, want \"0\"", got)
	}
}
