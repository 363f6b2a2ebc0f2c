package ui

import (
	"hash/fnv"

	"github.com/gogpu/ui/draw"
	"github.com/gogpu/ui/location"
	"github.com/gogpu/ui/resource"
	"github.com/gogpu/ui/state"
	"github.com/gogpu/ui/value"
)

// drawQuad fills r with c using the shared unit quad and default texture.
func drawQuad(pass *draw.Pass, res *resource.Registry, r location.Rect, c Color) {
	pass.DrawMesh(draw.MeshRequest{
		Global:    resource.MustGet(res, draw.NoGlobalTransform),
		Mesh:      resource.MustGet(res, draw.UnitSquareTopLeft),
		Texture:   resource.MustGet(res, draw.DefaultTexture),
		Transform: draw.RectTransform(r, c.Float32()),
	})
}

// Rect fills its location with a colour.
type Rect struct {
	Color value.Source[Color]
}

// NewRect returns a rectangle tinted by color.
func NewRect(color value.Source[Color]) *Rect {
	return &Rect{Color: color}
}

// Draw implements Element.
func (r *Rect) Draw(pass *draw.Pass, res *resource.Registry, loc location.Location) {
	drawQuad(pass, res, loc.Rect, r.Color.Get())
}

// HandleEvent implements Element. Rectangles ignore events.
func (r *Rect) HandleEvent(Event) EventResult { return OK }

// InvalidateCaches implements Element.
func (r *Rect) InvalidateCaches(addrs state.AddressSet) bool {
	return r.Color.InvalidateCaches(addrs)
}

// labelAlpha is the opacity of the placeholder label box.
const labelAlpha = 0.5

// Label shows text. Until glyph rendering exists a label is drawn as a
// translucent box whose inset and hue derive from a hash of the text, so a
// given string always renders the same way.
type Label struct {
	Text value.Source[string]
}

// NewLabel returns a label reading text.
func NewLabel(text value.Source[string]) *Label {
	return &Label{Text: text}
}

// labelGeometry returns the box drawn for text, relative to the label's
// location.
func labelGeometry(text string) (location.Rect, Color) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(text))
	sum := h.Sum64()

	pad := float64(sum%16) / 64
	box := location.NewRect(pad, pad, 1-2*pad, 1-2*pad)
	c := HSL(float64((sum>>4)%360), 0.6, 0.5).WithAlpha(labelAlpha)
	return box, c
}

// Draw implements Element.
func (l *Label) Draw(pass *draw.Pass, res *resource.Registry, loc location.Location) {
	box, c := labelGeometry(l.Text.Get())
	drawQuad(pass, res, loc.Sub(box).Rect, c)
}

// HandleEvent implements Element. Labels ignore events.
func (l *Label) HandleEvent(Event) EventResult { return OK }

// InvalidateCaches implements Element.
func (l *Label) InvalidateCaches(addrs state.AddressSet) bool {
	return l.Text.InvalidateCaches(addrs)
}
