// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
)

// Layouts are the bind group layouts shared by the mesh pipeline and every
// bind group drawn with it.
type Layouts struct {
	// Global is group 0: one uniform Transform.
	Global *wgpu.BindGroupLayout
	// Texture is group 1: one float texture_2d.
	Texture *wgpu.BindGroupLayout
}

// NewLayouts creates the mesh bind group layouts.
func NewLayouts(device *wgpu.Device) (*Layouts, error) {
	if device == nil {
		return nil, ErrNoDevice
	}
	global, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "mesh_global_transform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex,
				Buffer: &gputypes.BufferBindingLayout{
					Type:           gputypes.BufferBindingTypeUniform,
					MinBindingSize: TransformSize,
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create global transform layout: %w", err)
	}

	texture, err := device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "mesh_texture_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
		},
	})
	if err != nil {
		global.Release()
		return nil, fmt.Errorf("create texture layout: %w", err)
	}
	return &Layouts{Global: global, Texture: texture}, nil
}

// Release frees both layouts.
func (l *Layouts) Release() {
	if l.Texture != nil {
		l.Texture.Release()
		l.Texture = nil
	}
	if l.Global != nil {
		l.Global.Release()
		l.Global = nil
	}
}

// GlobalTransform is a bind group 0 instance: a uniform Transform applied
// after every instance transform.
type GlobalTransform struct {
	Transform Transform
	Buffer    *wgpu.Buffer
	BindGroup *wgpu.BindGroup
}

// NewGlobalTransform uploads t and binds it with the global layout.
func NewGlobalTransform(device *wgpu.Device, layouts *Layouts, t Transform) (*GlobalTransform, error) {
	if device == nil {
		return nil, ErrNoDevice
	}
	data := make([]byte, TransformSize)
	t.Put(data)
	buf, err := uploadBuffer(device, "global_transform", gputypes.BufferUsageUniform, data)
	if err != nil {
		return nil, fmt.Errorf("create global transform buffer: %w", err)
	}
	bg, err := device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   "global_transform",
		Layout:  layouts.Global,
		Entries: []wgpu.BindGroupEntry{{Binding: 0, Buffer: buf, Size: TransformSize}},
	})
	if err != nil {
		buf.Release()
		return nil, fmt.Errorf("create global transform bind group: %w", err)
	}
	return &GlobalTransform{Transform: t, Buffer: buf, BindGroup: bg}, nil
}

// Release frees the bind group and its buffer.
func (g *GlobalTransform) Release() {
	if g.BindGroup != nil {
		g.BindGroup.Release()
		g.BindGroup = nil
	}
	if g.Buffer != nil {
		g.Buffer.Release()
		g.Buffer = nil
	}
}
