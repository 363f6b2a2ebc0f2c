// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu"
)

// Mesh is vertex data on the GPU, optionally indexed.
// Meshes are compared by pointer: two meshes with identical geometry never
// share a batch.
type Mesh struct {
	Label       string
	Vertices    *wgpu.Buffer
	Indices     *wgpu.Buffer
	VertexCount uint32
	IndexCount  uint32
}

// Indexed reports whether the mesh is drawn through its index buffer.
func (m *Mesh) Indexed() bool { return m.Indices != nil }

// NewMesh uploads vertices and, when non-empty, indices.
func NewMesh(device *wgpu.Device, label string, vertices []Vertex, indices []uint32) (*Mesh, error) {
	if device == nil {
		return nil, ErrNoDevice
	}
	m := &Mesh{Label: label, VertexCount: uint32(len(vertices)), IndexCount: uint32(len(indices))}

	vb, err := uploadBuffer(device, label+"_vertices", gputypes.BufferUsageVertex, PackVertices(vertices))
	if err != nil {
		return nil, fmt.Errorf("create mesh %s vertices: %w", label, err)
	}
	m.Vertices = vb

	if len(indices) > 0 {
		ib, err := uploadBuffer(device, label+"_indices", gputypes.BufferUsageIndex, PackIndices(indices))
		if err != nil {
			vb.Release()
			return nil, fmt.Errorf("create mesh %s indices: %w", label, err)
		}
		m.Indices = ib
	}
	return m, nil
}

// Release frees the mesh buffers in reverse creation order.
func (m *Mesh) Release() {
	if m.Indices != nil {
		m.Indices.Release()
		m.Indices = nil
	}
	if m.Vertices != nil {
		m.Vertices.Release()
		m.Vertices = nil
	}
}

func uploadBuffer(device *wgpu.Device, label string, usage gputypes.BufferUsage, data []byte) (*wgpu.Buffer, error) {
	buf, err := device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, err
	}
	if err := device.Queue().WriteBuffer(buf, 0, data); err != nil {
		buf.Release()
		return nil, err
	}
	return buf, nil
}

// UnitSquareVertices returns the unit quad anchored at the origin, with
// texture coordinates equal to positions.
func UnitSquareVertices() []Vertex {
	white := [4]float32{1, 1, 1, 1}
	corners := [][2]float32{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	vs := make([]Vertex, len(corners))
	for i, c := range corners {
		vs[i] = Vertex{Position: c, Color: white, TexCoord: c}
	}
	return vs
}

// UnitSquareIndices returns the two triangles of the unit quad.
func UnitSquareIndices() []uint32 {
	return []uint32{0, 1, 2, 0, 2, 3}
}
