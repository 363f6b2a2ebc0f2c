package ui

import (
	"image/color"
	"testing"

	"github.com/gogpu/ui/draw"
	"github.com/gogpu/ui/location"
	"github.com/gogpu/ui/resource"
	"github.com/gogpu/ui/state"
	"github.com/gogpu/ui/value"
	"github.com/google/go-cmp/cmp"
)

var window = location.Size{W: 400, H: 200}

func TestLayersOrder(t *testing.T) {
	var log []string
	a := &spy{name: "a", log: &log}
	b := &spy{name: "b", log: &log}
	l := NewLayers(a, b)

	l.Draw(nil, nil, location.Initial(window))
	l.HandleEvent(Click{})
	want := []string{"draw a", "draw b", "event b", "event a"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestLayersShortCircuit(t *testing.T) {
	var log []string
	consumer := &spy{name: "top", log: &log, result: Consumed}
	behind := &panicker{spy{name: "behind", log: &log}}
	l := NewLayers(behind, consumer)
	if got := l.HandleEvent(Click{}); got != Consumed {
		t.Errorf("HandleEvent() = %v, want Consumed", got)
	}
}

func TestGroupDispatchInOrder(t *testing.T) {
	var log []string
	g := Group{
		&spy{name: "a", log: &log},
		&spy{name: "b", log: &log, result: Consumed},
		&spy{name: "c", log: &log},
	}
	if got := g.HandleEvent(Click{}); got != Consumed {
		t.Errorf("HandleEvent() = %v, want Consumed", got)
	}
	if diff := cmp.Diff([]string{"event a", "event b"}, log); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestInvalidateVisitsEveryChild(t *testing.T) {
	var log []string
	root := Column(
		&spy{name: "a", log: &log, invalidate: true},
		NewLayers(&spy{name: "b", log: &log}, &spy{name: "c", log: &log}),
	)
	if !root.InvalidateCaches(state.NewAddressSet(1)) {
		t.Error("InvalidateCaches() = false although a child reset")
	}
	want := []string{"invalidate a", "invalidate b", "invalidate c"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("visits mismatch (-want +got):\n%s", diff)
	}
}

func TestVerticalSplitLayout(t *testing.T) {
	for n := 1; n <= 7; n++ {
		var log []string
		children := make([]Element, n)
		spies := make([]*spy, n)
		for i := range children {
			spies[i] = &spy{log: &log}
			children[i] = spies[i]
		}
		parent := location.Initial(window).Sub(location.NewRect(0.1, 0.2, 0.5, 0.6))
		Column(children...).Draw(nil, nil, parent)

		for i, p := range spies {
			want := parent.Sub(location.NewRect(0, float64(i)/float64(n), 1, 1/float64(n)))
			if p.loc != want {
				t.Errorf("n=%d child %d at %v, want %v", n, i, p.loc.Rect, want.Rect)
			}
		}
	}
}

func TestHorizontalSplitWeights(t *testing.T) {
	s := NewSplit(Horizontal, W(1, nil), W(3, nil))
	got := s.Layout()
	want := []location.Rect{location.NewRect(0, 0, 0.25, 1), location.NewRect(0.25, 0, 0.75, 1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Layout() mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitDispatchInDeclarationOrder(t *testing.T) {
	var log []string
	s := Row(&spy{name: "a", log: &log}, &spy{name: "b", log: &log})
	s.HandleEvent(Click{})
	if diff := cmp.Diff([]string{"event a", "event b"}, log); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestAdaptiveSplitPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adaptive split did not panic")
		}
	}()
	NewSplit(Adaptive, W(1, &Rect{})).Layout()
}

func TestRectDraw(t *testing.T) {
	batches, stats := testFrame(t, NewRect(value.Of(Green)), newTestRegistry(), window)
	if stats.Flushes != 1 || len(batches[0].Instances) != 1 {
		t.Fatalf("stats = %+v", stats)
	}
	want := draw.RectTransform(location.Initial(window).Rect, Green.Float32())
	if diff := cmp.Diff(want, batches[0].Instances[0]); diff != "" {
		t.Errorf("transform mismatch (-want +got):\n%s", diff)
	}
}

func TestLabelDeterministic(t *testing.T) {
	r1, c1 := labelGeometry("click me!")
	r2, c2 := labelGeometry("click me!")
	if r1 != r2 || c1 != c2 {
		t.Errorf("labelGeometry() is not deterministic: %v/%v vs %v/%v", r1, c1, r2, c2)
	}
	if c1.A != labelAlpha {
		t.Errorf("alpha = %v, want %v", c1.A, labelAlpha)
	}
	if r1.TopLeft.X < 0 || r1.TopLeft.X >= 0.25 || r1.Size.X <= 0.5 {
		t.Errorf("padding out of range: %v", r1)
	}

	reg := newTestRegistry()
	first, _ := testFrame(t, NewLabel(value.Of("click me!")), reg, window)
	second, _ := testFrame(t, NewLabel(value.Of("click me!")), reg, window)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same text drew differently (-first +second):\n%s", diff)
	}
}

func TestInvalidationIsIdempotent(t *testing.T) {
	cell := state.NewShared(3)
	label := NewLabel(value.Stringified[int](value.FromShared(cell)))
	root := Column(label, NewRect(value.Of(Red)))
	testFrame(t, root, newTestRegistry(), window)

	addrs := state.NewAddressSet(cell.Addr())
	if !root.InvalidateCaches(addrs) {
		t.Fatal("first invalidation reset nothing")
	}
	if root.InvalidateCaches(addrs) {
		t.Error("second invalidation reported a reset")
	}
	if root.InvalidateCaches(state.NewAddressSet()) {
		t.Error("empty address set reported a reset")
	}
}

func TestImageUsesItsTexture(t *testing.T) {
	reg := newTestRegistry()
	light := draw.SolidTexture("light", color.RGBA{R: 0xee, G: 0xee, B: 0xd2, A: 0xff})
	resource.Provide(reg, light, &draw.Texture{Label: "light"})

	batches, _ := testFrame(t, Row(NewImage(light), NewRect(value.Of(Red))), reg, window)
	got := []string{batches[0].Texture, batches[1].Texture}
	if diff := cmp.Diff([]string{"light", "default"}, got); diff != "" {
		t.Errorf("textures mismatch (-want +got):\n%s", diff)
	}
}
