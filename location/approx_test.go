package location

import "math"

func (v Vec2) approx(w Vec2, epsilon float64) bool {
	return math.Abs(v.X-w.X) < epsilon && math.Abs(v.Y-w.Y) < epsilon
}

func (r Rect) approx(o Rect, epsilon float64) bool {
	return r.TopLeft.approx(o.TopLeft, epsilon) && r.Size.approx(o.Size, epsilon)
}
