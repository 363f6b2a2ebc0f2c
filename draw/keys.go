// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"image/color"

	"github.com/gogpu/ui/resource"
)

// BindGroupLayouts is the registry key of the shared mesh bind group
// layouts.
var BindGroupLayouts = resource.NewKey("bind-group-layouts", func(r *resource.Registry) (*Layouts, error) {
	return NewLayouts(r.Device())
})

// UnitSquareTopLeft is the registry key of the unit quad mesh with its
// top-left corner at the origin.
var UnitSquareTopLeft = resource.NewKey("unit-square-top-left", func(r *resource.Registry) (*Mesh, error) {
	return NewMesh(r.Device(), "unit_square_top_left", UnitSquareVertices(), UnitSquareIndices())
})

// NoGlobalTransform is the registry key of the identity global transform.
var NoGlobalTransform = resource.NewKey("no-global-transform", func(r *resource.Registry) (*GlobalTransform, error) {
	layouts, err := resource.Get(r, BindGroupLayouts)
	if err != nil {
		return nil, err
	}
	return NewGlobalTransform(r.Device(), layouts, Identity())
})

// DefaultTexture is the registry key of a 1×1 opaque white texture.
var DefaultTexture = resource.NewKey("default-texture", func(r *resource.Registry) (*Texture, error) {
	layouts, err := resource.Get(r, BindGroupLayouts)
	if err != nil {
		return nil, err
	}
	white := SolidImage(1, 1, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
	return NewTexture(r.Device(), layouts, "default_texture", white)
})

// ImageTexture returns a registry key that decodes the image at path on
// first use. Decoding failures surface as *DecodeError.
func ImageTexture(path string) *resource.Key[*Texture] {
	return resource.NewKey("image-texture:"+path, func(r *resource.Registry) (*Texture, error) {
		img, err := DecodeImage(path)
		if err != nil {
			return nil, err
		}
		layouts, err := resource.Get(r, BindGroupLayouts)
		if err != nil {
			return nil, err
		}
		return NewTexture(r.Device(), layouts, path, img)
	})
}

// SolidTexture returns a registry key for a 1×1 texture of colour c.
func SolidTexture(label string, c color.RGBA) *resource.Key[*Texture] {
	return resource.NewKey("solid-texture:"+label, func(r *resource.Registry) (*Texture, error) {
		layouts, err := resource.Get(r, BindGroupLayouts)
		if err != nil {
			return nil, err
		}
		return NewTexture(r.Device(), layouts, label, SolidImage(1, 1, c))
	})
}
