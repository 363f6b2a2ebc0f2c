// Package location implements the rectangle algebra used to lay out
// elements.
//
// Rectangles are expressed in normalised device coordinates, where the
// window spans [-1, 1] on both axes and Y grows upwards. The root location
// therefore starts at (-1, +1) with a size of (+2, -2) so that child
// rectangles grow downwards, matching window pixel order. A child rectangle
// is expressed relative to its parent: (0, 0) is the parent's top-left
// corner and (1, 1) its bottom-right.
package location

import (
	"fmt"
	"math"
)

// Size is the inner size of a window in pixels.
type Size struct {
	W, H uint32
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.W, s.H) }

// Rect is a top-left corner plus a signed size.
type Rect struct {
	TopLeft Vec2
	Size    Vec2
}

// Full is the identity rectangle for Sub.
var Full = Rect{Size: Vec2{X: 1, Y: 1}}

// NewRect returns the rectangle at (x, y) with size (w, h).
func NewRect(x, y, w, h float64) Rect {
	return Rect{TopLeft: Vec2{X: x, Y: y}, Size: Vec2{X: w, Y: h}}
}

// Sub maps child, expressed relative to r, into r's coordinate space.
func (r Rect) Sub(child Rect) Rect {
	return Rect{
		TopLeft: r.TopLeft.Add(child.TopLeft.Scale(r.Size)),
		Size:    r.Size.Scale(child.Size),
	}
}

// Contains reports whether p lies inside r. The size may be negative on
// either axis; edges on the top-left side are inclusive.
func (r Rect) Contains(p Vec2) bool {
	return within(p.X, r.TopLeft.X, r.Size.X) && within(p.Y, r.TopLeft.Y, r.Size.Y)
}

func within(v, start, extent float64) bool {
	end := start + extent
	if extent < 0 {
		return v <= start && v > end
	}
	return v >= start && v < end
}

func (r Rect) String() string {
	return fmt.Sprintf("{(%g, %g) (%g, %g)}", r.TopLeft.X, r.TopLeft.Y, r.Size.X, r.Size.Y)
}

// Location is where an element draws: a rectangle inside a window.
type Location struct {
	Rect   Rect
	Window Size
}

// Initial returns the location covering the whole window.
func Initial(window Size) Location {
	return Location{
		Rect:   Rect{TopLeft: Vec2{X: -1, Y: 1}, Size: Vec2{X: 2, Y: -2}},
		Window: window,
	}
}

// Sub returns the location of child, expressed relative to l.
func (l Location) Sub(child Rect) Location {
	return Location{Rect: l.Rect.Sub(child), Window: l.Window}
}

// WindowRectSize projects the rectangle size onto window pixels: the NDC
// extent of each axis is halved and scaled by the window dimension. A
// child spanning half its parent's width in a 400 px wide window is
// therefore 200 px wide.
func (l Location) WindowRectSize() Size {
	return Size{
		W: uint32(math.Round(math.Abs(l.Rect.Size.X) / 2 * float64(l.Window.W))),
		H: uint32(math.Round(math.Abs(l.Rect.Size.Y) / 2 * float64(l.Window.H))),
	}
}

// Contains reports whether p falls inside the location.
func (l Location) Contains(p Point) bool {
	return l.Rect.Contains(p.NDC)
}

// Point is a position in normalised device coordinates together with the
// window it was measured in.
type Point struct {
	NDC    Vec2
	Window Size
}

// PointFromPixels converts a window pixel position, origin at the top-left
// corner, to a Point.
func PointFromPixels(x, y float64, window Size) Point {
	w := math.Max(float64(window.W), 1)
	h := math.Max(float64(window.H), 1)
	return Point{
		NDC:    Vec2{X: x/w*2 - 1, Y: 1 - y/h*2},
		Window: window,
	}
}

