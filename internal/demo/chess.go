package demo

import (
	"image/color"

	"github.com/gogpu/ui"
	"github.com/gogpu/ui/draw"
	"github.com/gogpu/ui/location"
	"github.com/gogpu/ui/state"
)

// BoardSize is the number of squares per side.
const BoardSize = 8

// Square textures. Keys are compared by identity, so every board shares
// the same two textures.
var (
	LightSquare = draw.SolidTexture("light-square", color.RGBA{R: 0xee, G: 0xee, B: 0xd2, A: 0xff})
	DarkSquare  = draw.SolidTexture("dark-square", color.RGBA{R: 0x76, G: 0x96, B: 0x56, A: 0xff})
)

var selectedTint = ui.Hex("#f6f669")

// Order is the sequence squares are issued in.
type Order uint8

const (
	// Contiguous issues all light squares, then all dark squares.
	Contiguous Order = iota
	// Interleaved alternates light and dark squares.
	Interleaved
)

// Chess is an 8×8 board whose squares can be selected by clicking.
type Chess struct {
	// Selected holds the selected square index, or -1.
	Selected *state.Shared[int]
	Root     ui.Element
}

// NewChess builds the board with squares issued in the given order.
func NewChess(order Order) *Chess {
	c := &Chess{Selected: state.NewShared(-1)}

	var light, dark []ui.Element
	for y := range BoardSize {
		for x := range BoardSize {
			sq := c.square(x, y)
			if (x+y)%2 == 0 {
				light = append(light, sq)
			} else {
				dark = append(dark, sq)
			}
		}
	}

	var squares ui.Group
	switch order {
	case Interleaved:
		for i := range light {
			squares = append(squares, light[i], dark[i])
		}
	default:
		squares = append(append(squares, light...), dark...)
	}
	c.Root = squares
	return c
}

func (c *Chess) square(x, y int) ui.Element {
	index := y*BoardSize + x
	key := LightSquare
	if (x+y)%2 != 0 {
		key = DarkSquare
	}
	img := ui.NewImage(key)
	img.Tint = highlight{selected: c.Selected, index: index}

	const side = 1.0 / BoardSize
	r := location.NewRect(float64(x)*side, float64(y)*side, side, side)
	return ui.NewPlace(r, ui.NewOnClick(img, func(sig state.Sender) ui.EventResult {
		c.Selected.Store(sig, index)
		if err := sig.Redraw(); err != nil {
			panic(err)
		}
		return ui.Consumed
	}))
}

// SquareCenter returns the pixel position of the centre of square (x, y)
// in a window of the given size.
func SquareCenter(x, y int, width, height uint32) (px, py float64) {
	w, h := float64(width)/BoardSize, float64(height)/BoardSize
	return (float64(x) + 0.5) * w, (float64(y) + 0.5) * h
}

// highlight tints the selected square. It keeps no cache, so selection
// changes request a redraw explicitly.
type highlight struct {
	selected *state.Shared[int]
	index    int
}

func (h highlight) Get() ui.Color {
	if h.selected.Load() == h.index {
		return selectedTint
	}
	return ui.White
}

func (highlight) InvalidateCaches(state.AddressSet) bool { return false }

func (h highlight) Dependencies(deps *state.AddressSet) { deps.Add(h.selected.Addr()) }
