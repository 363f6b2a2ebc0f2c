package ui

import (
	"image/color"
	"math"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#000", color.NRGBA{0, 0, 0, 255}},
		{"fff", color.NRGBA{255, 255, 255, 255}},
		{"#f008", color.NRGBA{255, 0, 0, 136}},
		{"#3498db", color.NRGBA{0x34, 0x98, 0xdb, 255}},
		{"3498DB80", color.NRGBA{0x34, 0x98, 0xdb, 0x80}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q) = %v", tt.in, err)
			}
			if got := c.NRGBA(); got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "12", "#12345", "zzzzzz", "#1234567"} {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q) succeeded", in)
		}
		if Hex(in) != Black {
			t.Errorf("Hex(%q) did not fall back to black", in)
		}
	}
}

func TestHSL(t *testing.T) {
	tests := []struct {
		h    float64
		want Color
	}{
		{0, Red},
		{120, Green},
		{240, Blue},
		{-120, Blue},
		{360, Red},
	}
	for _, tt := range tests {
		got := HSL(tt.h, 1, 0.5)
		if math.Abs(got.R-tt.want.R) > 1e-9 || math.Abs(got.G-tt.want.G) > 1e-9 || math.Abs(got.B-tt.want.B) > 1e-9 {
			t.Errorf("HSL(%v, 1, 0.5) = %v, want %v", tt.h, got, tt.want)
		}
	}
}

func TestColorFloat32(t *testing.T) {
	got := RGBA(1, 0.5, 0.25, 0.5).Float32()
	if got != [4]float32{1, 0.5, 0.25, 0.5} {
		t.Errorf("Float32() = %v", got)
	}
	if n := RGBA(2, -1, 0, 1).NRGBA(); n.R != 255 || n.G != 0 {
		t.Errorf("NRGBA() did not clamp: %v", n)
	}
}
