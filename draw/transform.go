// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/ui/location"
)

// TransformSize is the byte size of one packed Transform.
const TransformSize = 64

// VertexSize is the byte stride of one packed Vertex.
const VertexSize = 48

// Transform places one mesh instance: a 2x2 linear map, a translation,
// a tint and the texture sub-rectangle sampled by the mesh.
type Transform struct {
	// Linear is column-major: {x.x, x.y, y.x, y.y}.
	Linear      [4]float32
	Translation [2]float32
	Color       [4]float32
	TexTopLeft  [2]float32
	TexSize     [2]float32
}

// Identity returns the transform that leaves geometry, colour and texture
// coordinates unchanged.
func Identity() Transform {
	return Transform{
		Linear:  [4]float32{1, 0, 0, 1},
		Color:   [4]float32{1, 1, 1, 1},
		TexSize: [2]float32{1, 1},
	}
}

// RectTransform maps the unit square onto r and tints it with color.
func RectTransform(r location.Rect, color [4]float32) Transform {
	t := Identity()
	t.Linear = [4]float32{float32(r.Size.X), 0, 0, float32(r.Size.Y)}
	t.Translation = r.TopLeft.Float32()
	t.Color = color
	return t
}

func putF32(buf []byte, off int, vs ...float32) {
	for i, v := range vs {
		binary.LittleEndian.PutUint32(buf[off+4*i:], math.Float32bits(v))
	}
}

// Put writes t into buf, which must hold TransformSize bytes.
// Padding bytes are zeroed.
func (t *Transform) Put(buf []byte) {
	_ = buf[TransformSize-1]
	putF32(buf, 0, t.Linear[:]...)
	putF32(buf, 16, t.Translation[0], t.Translation[1], 0, 0)
	putF32(buf, 32, t.Color[:]...)
	putF32(buf, 48, t.TexTopLeft[0], t.TexTopLeft[1], t.TexSize[0], t.TexSize[1])
}

// PackTransforms appends the packed form of ts to dst.
func PackTransforms(dst []byte, ts []Transform) []byte {
	start := len(dst)
	need := start + len(ts)*TransformSize
	if cap(dst) < need {
		grown := make([]byte, start, need)
		copy(grown, dst)
		dst = grown
	}
	dst = dst[:need]
	for i := range ts {
		ts[i].Put(dst[start+i*TransformSize:])
	}
	return dst
}

// Vertex is one mesh vertex.
type Vertex struct {
	Position [2]float32
	Color    [4]float32
	TexCoord [2]float32
}

// Put writes v into buf, which must hold VertexSize bytes.
func (v *Vertex) Put(buf []byte) {
	_ = buf[VertexSize-1]
	putF32(buf, 0, v.Position[0], v.Position[1], 0, 0)
	putF32(buf, 16, v.Color[:]...)
	putF32(buf, 32, v.TexCoord[0], v.TexCoord[1], 0, 0)
}

// PackVertices returns the packed form of vs.
func PackVertices(vs []Vertex) []byte {
	buf := make([]byte, len(vs)*VertexSize)
	for i := range vs {
		vs[i].Put(buf[i*VertexSize:])
	}
	return buf
}

// PackIndices returns the little-endian form of indices.
func PackIndices(indices []uint32) []byte {
	buf := make([]byte, len(indices)*4)
	for i, idx := range indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}

// meshVertexLayout returns the two vertex streams of the mesh pipeline:
// per-vertex geometry and per-instance transforms.
func meshVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: VertexSize,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},  // position
				{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 1}, // color
				{Format: gputypes.VertexFormatFloat32x2, Offset: 32, ShaderLocation: 2}, // tex coord
			},
		},
		{
			ArrayStride: TransformSize,
			StepMode:    gputypes.VertexStepModeInstance,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 3},  // linear x
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 4},  // linear y
				{Format: gputypes.VertexFormatFloat32x2, Offset: 16, ShaderLocation: 5}, // translation
				{Format: gputypes.VertexFormatFloat32x4, Offset: 32, ShaderLocation: 6}, // color
				{Format: gputypes.VertexFormatFloat32x2, Offset: 48, ShaderLocation: 7}, // texture top-left
				{Format: gputypes.VertexFormatFloat32x2, Offset: 56, ShaderLocation: 8}, // texture size
			},
		},
	}
}
