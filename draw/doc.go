// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package draw records element drawing into a wgpu render pass.
//
// Elements issue [MeshRequest]s into a [Pass] while the tree is traversed.
// The pass forwards them to the drawer of the request's kind; the
// [MeshDrawer] coalesces contiguous requests that share a mesh, a texture
// and a global transform into one instanced draw call. A run ends when a
// request with a different identity arrives, when the pass switches kind,
// or when the pass ends. Paint order is therefore preserved while
// same-resource neighbours collapse into a single call.
//
// GPU work happens behind the [Renderer] interface. [MeshPipeline] is the
// wgpu implementation: it owns the render pipeline built from the embedded
// WGSL shader and a per-frame arena of instance buffers.
//
// Layout of one instance ([Transform], 64 bytes):
//
//	offset  0  linear      mat2x2<f32>  column-major
//	offset 16  translation vec2<f32>    + 8 bytes padding
//	offset 32  color       vec4<f32>
//	offset 48  texture top-left vec2<f32>
//	offset 56  texture size     vec2<f32>
//
// Layout of one mesh vertex ([Vertex], 48 bytes):
//
//	offset  0  position  vec2<f32>  + 8 bytes padding
//	offset 16  color     vec4<f32>
//	offset 32  tex coord vec2<f32>  + 8 bytes padding
package draw
