// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"os"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// Texture is a bind group 1 instance. Textures are compared by pointer.
type Texture struct {
	Label     string
	Width     uint32
	Height    uint32
	BindGroup *wgpu.BindGroup

	texture *wgpu.Texture
	view    *wgpu.TextureView
}

// NewTexture uploads img as an RGBA8 texture bound with the texture layout.
func NewTexture(device *wgpu.Device, layouts *Layouts, label string, img *image.RGBA) (*Texture, error) {
	if device == nil {
		return nil, ErrNoDevice
	}
	b := img.Bounds()
	w, h := uint32(b.Dx()), uint32(b.Dy())
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("create texture %s: empty image", label)
	}

	tex, err := device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         label,
		Size:          wgpu.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create texture %s: %w", label, err)
	}
	t := &Texture{Label: label, Width: w, Height: h, texture: tex}

	err = device.Queue().WriteTexture(
		&wgpu.ImageCopyTexture{Texture: tex, Aspect: gputypes.TextureAspectAll},
		tightPixels(img),
		&wgpu.ImageDataLayout{BytesPerRow: 4 * w, RowsPerImage: h},
		&wgpu.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	)
	if err != nil {
		t.Release()
		return nil, fmt.Errorf("upload texture %s: %w", label, err)
	}

	view, err := device.CreateTextureView(tex, nil)
	if err != nil {
		t.Release()
		return nil, fmt.Errorf("create texture %s view: %w", label, err)
	}
	t.view = view

	bg, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   label,
		Layout:  layouts.Texture,
		Entries: []wgpu.BindGroupEntry{{Binding: 0, TextureView: view}},
	})
	if err != nil {
		t.Release()
		return nil, fmt.Errorf("create texture %s bind group: %w", label, err)
	}
	t.BindGroup = bg
	return t, nil
}

// Release frees the bind group, view and texture.
func (t *Texture) Release() {
	if t.BindGroup != nil {
		t.BindGroup.Release()
		t.BindGroup = nil
	}
	if t.view != nil {
		t.view.Release()
		t.view = nil
	}
	if t.texture != nil {
		t.texture.Release()
		t.texture = nil
	}
}

// tightPixels returns img's pixels without row padding.
func tightPixels(img *image.RGBA) []byte {
	b := img.Bounds()
	row := 4 * b.Dx()
	if img.Stride == row && len(img.Pix) == row*b.Dy() {
		return img.Pix
	}
	out := make([]byte, 0, row*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		out = append(out, img.Pix[off:off+row]...)
	}
	return out
}

// SolidImage returns a w×h image filled with c.
func SolidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

// DecodeImage reads an image file and converts it to RGBA.
// Failures are reported as *DecodeError.
func DecodeImage(path string) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DecodeError{Kind: DecodeIO, Path: path, Err: err}
	}
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Kind: DecodeFormat, Path: path, Err: err}
	}
	return toRGBA(src), nil
}

func toRGBA(src image.Image) *image.RGBA {
	if rgba, ok := src.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), src, b.Min, xdraw.Src)
	return dst
}
