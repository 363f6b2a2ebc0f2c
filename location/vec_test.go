package location

import "testing"

func TestVec2Arithmetic(t *testing.T) {
	tests := []struct {
		name   string
		got    Vec2
		expect Vec2
	}{
		{"add", V2(1, -2).Add(V2(-3, 4)), V2(-2, 2)},
		{"add zero", V2(3, 4).Add(V2(0, 0)), V2(3, 4)},
		{"scale", V2(2, -1).Scale(V2(0.5, -2)), V2(1, 2)},
		{"scale by root size", V2(0.5, 0.25).Scale(V2(2, -2)), V2(1, -0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.approx(tt.expect, 1e-10) {
				t.Errorf("got %v, want %v", tt.got, tt.expect)
			}
		})
	}
}

func TestVec2Float32(t *testing.T) {
	if got := V2(0.25, -1).Float32(); got != [2]float32{0.25, -1} {
		t.Errorf("Float32() = %v", got)
	}
}
