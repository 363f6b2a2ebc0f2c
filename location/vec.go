package location

// Vec2 is a 2D vector in normalised device coordinates.
type Vec2 struct {
	X, Y float64
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Scale multiplies componentwise.
func (v Vec2) Scale(w Vec2) Vec2 {
	return Vec2{X: v.X * w.X, Y: v.Y * w.Y}
}

// Float32 returns the vector packed for the GPU.
func (v Vec2) Float32() [2]float32 {
	return [2]float32{float32(v.X), float32(v.Y)}
}
