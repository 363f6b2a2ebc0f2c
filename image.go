package ui

import (
	"github.com/gogpu/ui/draw"
	"github.com/gogpu/ui/location"
	"github.com/gogpu/ui/resource"
	"github.com/gogpu/ui/state"
	"github.com/gogpu/ui/value"
)

// Image fills its location with a texture, tinted.
type Image struct {
	Texture *resource.Key[*draw.Texture]
	Tint    value.Source[Color]
}

// NewImage returns an untinted image of the texture built by key.
func NewImage(key *resource.Key[*draw.Texture]) *Image {
	return &Image{Texture: key, Tint: value.Of(White)}
}

// Draw implements Element.
func (im *Image) Draw(pass *draw.Pass, res *resource.Registry, loc location.Location) {
	pass.DrawMesh(draw.MeshRequest{
		Global:    resource.MustGet(res, draw.NoGlobalTransform),
		Mesh:      resource.MustGet(res, draw.UnitSquareTopLeft),
		Texture:   resource.MustGet(res, im.Texture),
		Transform: draw.RectTransform(loc.Rect, im.Tint.Get().Float32()),
	})
}

// HandleEvent implements Element. Images ignore events.
func (im *Image) HandleEvent(Event) EventResult { return OK }

// InvalidateCaches implements Element.
func (im *Image) InvalidateCaches(addrs state.AddressSet) bool {
	return im.Tint.InvalidateCaches(addrs)
}
