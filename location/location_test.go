package location

import (
	"math/rand/v2"
	"testing"
)

const eps = 1e-9

func TestSubrectWindowSize(t *testing.T) {
	window := Size{W: 400, H: 200}
	tests := []struct {
		name string
		rect Rect
		want Size
	}{
		{"full", Full, Size{W: 400, H: 200}},
		{"right half", NewRect(0.5, 0, 0.5, 1), Size{W: 200, H: 200}},
		{"quarter", NewRect(0.25, 0.5, 0.5, 0.5), Size{W: 200, H: 100}},
		{"empty", NewRect(0.3, 0.3, 0, 0), Size{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Initial(window).Sub(tt.rect).WindowRectSize(); got != tt.want {
				t.Errorf("WindowRectSize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInitialCoversWindow(t *testing.T) {
	l := Initial(Size{W: 640, H: 480})
	if got := l.WindowRectSize(); got != (Size{W: 640, H: 480}) {
		t.Errorf("WindowRectSize() = %v, want 640x480", got)
	}
	if got := l.Sub(Full); got != l {
		t.Errorf("Sub(Full) = %v, want %v", got, l)
	}
}

func TestSubComposition(t *testing.T) {
	parent := Rect{TopLeft: V2(-1, 1), Size: V2(2, -2)}
	child := NewRect(0.25, 0.5, 0.5, 0.5)
	got := parent.Sub(child)
	want := Rect{TopLeft: V2(-0.5, 0), Size: V2(1, -1)}
	if !got.approx(want, eps) {
		t.Errorf("Sub() = %v, want %v", got, want)
	}
}

func randomRect(r *rand.Rand) Rect {
	return NewRect(r.Float64()*2-1, r.Float64()*2-1, r.Float64()*2-1, r.Float64()*2-1)
}

func TestSubAssociative(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := range 500 {
		l, r1, r2 := randomRect(r), randomRect(r), randomRect(r)
		a := l.Sub(r1).Sub(r2)
		b := l.Sub(r1.Sub(r2))
		if !a.approx(b, eps) {
			t.Fatalf("case %d: (L.R1).R2 = %v, L.(R1.R2) = %v", i, a, b)
		}
	}
}

func TestContains(t *testing.T) {
	window := Size{W: 100, H: 100}
	l := Initial(window).Sub(NewRect(0, 0, 0.5, 0.5))
	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"top-left corner", 0, 0, true},
		{"inside", 25, 25, true},
		{"right edge excluded", 50, 10, false},
		{"below", 10, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PointFromPixels(tt.px, tt.py, window)
			if got := l.Contains(p); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.px, tt.py, got, tt.want)
			}
		})
	}
}

func TestPointFromPixels(t *testing.T) {
	window := Size{W: 200, H: 100}
	p := PointFromPixels(50, 25, window)
	if !p.NDC.approx(V2(-0.5, 0.5), eps) {
		t.Errorf("NDC = %v, want (-0.5, 0.5)", p.NDC)
	}
}
