// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
)

// RenderPass is the part of *wgpu.RenderPassEncoder a flush records into.
type RenderPass interface {
	SetPipeline(pipeline *wgpu.RenderPipeline)
	SetBindGroup(index uint32, group *wgpu.BindGroup, offsets []uint32)
	SetVertexBuffer(slot uint32, buffer *wgpu.Buffer, offset uint64)
	SetIndexBuffer(buffer *wgpu.Buffer, format gputypes.IndexFormat, offset uint64)
	Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32)
	DrawIndexed(indexCount, instanceCount, firstIndex uint32, baseVertex int32, firstInstance uint32)
}

var _ RenderPass = (*wgpu.RenderPassEncoder)(nil)

// Batch is a run of instances sharing one mesh, texture and global
// transform.
type Batch struct {
	Global    *GlobalTransform
	Mesh      *Mesh
	Texture   *Texture
	Instances []Transform
}

// Renderer turns batches into GPU commands. Instances are only valid for
// the duration of the call.
type Renderer interface {
	RenderBatch(rp RenderPass, b Batch) error
}

// frameRenderer is implemented by renderers with per-frame state.
type frameRenderer interface {
	BeginFrame()
}

// MeshRequest asks for one instance of Mesh.
type MeshRequest struct {
	Global    *GlobalTransform
	Mesh      *Mesh
	Texture   *Texture
	Transform Transform
}

type batchKey struct {
	global  *GlobalTransform
	mesh    *Mesh
	texture *Texture
}

func (r *MeshRequest) key() batchKey {
	return batchKey{global: r.Global, mesh: r.Mesh, texture: r.Texture}
}

// MeshDrawer accumulates contiguous requests for the same mesh and bind
// groups and hands each run to a Renderer as one batch.
type MeshDrawer struct {
	renderer  Renderer
	current   batchKey
	instances []Transform
	flushes   int
	drawn     int
}

// NewMeshDrawer returns an empty drawer.
func NewMeshDrawer(renderer Renderer) *MeshDrawer {
	return &MeshDrawer{renderer: renderer}
}

// Push appends req to the current run. A request for different resources
// flushes the run first.
func (d *MeshDrawer) Push(rp RenderPass, req MeshRequest) error {
	k := req.key()
	if len(d.instances) > 0 && k != d.current {
		if err := d.Flush(rp); err != nil {
			return err
		}
	}
	d.current = k
	d.instances = append(d.instances, req.Transform)
	return nil
}

// Flush renders the pending run. It does nothing when the run is empty.
func (d *MeshDrawer) Flush(rp RenderPass) error {
	if len(d.instances) == 0 {
		return nil
	}
	err := d.renderer.RenderBatch(rp, Batch{
		Global:    d.current.global,
		Mesh:      d.current.mesh,
		Texture:   d.current.texture,
		Instances: d.instances,
	})
	d.flushes++
	d.drawn += len(d.instances)
	d.instances = d.instances[:0]
	d.current = batchKey{}
	return err
}

// Pending returns the number of instances waiting for a flush.
func (d *MeshDrawer) Pending() int { return len(d.instances) }

// Stats counts the work done since the last BeginFrame.
type Stats struct {
	Flushes   int
	Instances int
}

// Drawers holds one drawer per draw kind and outlives individual frames.
// Drawers are created on first use.
type Drawers struct {
	renderer Renderer
	mesh     *MeshDrawer
}

// NewDrawers returns drawers recording through renderer.
func NewDrawers(renderer Renderer) *Drawers {
	return &Drawers{renderer: renderer}
}

// BeginFrame resets per-frame statistics and renderer state.
func (d *Drawers) BeginFrame() {
	if fr, ok := d.renderer.(frameRenderer); ok {
		fr.BeginFrame()
	}
	if d.mesh != nil {
		d.mesh.flushes = 0
		d.mesh.drawn = 0
	}
}

// Stats returns the counters of the current frame.
func (d *Drawers) Stats() Stats {
	if d.mesh == nil {
		return Stats{}
	}
	return Stats{Flushes: d.mesh.flushes, Instances: d.mesh.drawn}
}

func (d *Drawers) meshDrawer() *MeshDrawer {
	if d.mesh == nil {
		d.mesh = NewMeshDrawer(d.renderer)
	}
	return d.mesh
}
