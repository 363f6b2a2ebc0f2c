// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/ui/internal/logx"
	"github.com/gogpu/wgpu"
)

// MeshPipeline renders batches of textured mesh instances with wgpu.
//
// The render pipeline is created on the first batch. Instance data goes
// to a per-frame arena of vertex buffers; BeginFrame recycles it.
type MeshPipeline struct {
	device  *wgpu.Device
	format  gputypes.TextureFormat
	layouts *Layouts

	shader     *wgpu.ShaderModule
	pipeLayout *wgpu.PipelineLayout
	pipeline   *wgpu.RenderPipeline

	arena instanceArena
}

// NewMeshPipeline returns a pipeline rendering into targets of format.
// No GPU object is created until the first batch.
func NewMeshPipeline(device *wgpu.Device, format gputypes.TextureFormat, layouts *Layouts) *MeshPipeline {
	mp := &MeshPipeline{device: device, format: format, layouts: layouts}
	mp.arena.alloc = func(size uint64) (*wgpu.Buffer, error) {
		logx.L().Debug("draw: instance buffer allocated", "bytes", size)
		return device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: "mesh_instances",
			Size:  size,
			Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
		})
	}
	mp.arena.write = func(buf *wgpu.Buffer, offset uint64, data []byte) error {
		return device.Queue().WriteBuffer(buf, offset, data)
	}
	return mp
}

// BeginFrame recycles the instance arena.
func (mp *MeshPipeline) BeginFrame() {
	mp.arena.reset()
}

// RenderBatch uploads the batch instances and records one instanced draw.
func (mp *MeshPipeline) RenderBatch(rp RenderPass, b Batch) error {
	if err := mp.ensurePipeline(); err != nil {
		return err
	}
	buf, offset, err := mp.arena.upload(b.Instances)
	if err != nil {
		return fmt.Errorf("upload mesh instances: %w", err)
	}
	recordBatch(rp, mp.pipeline, buf, offset, b)
	return nil
}

// recordBatch records the commands of one flush.
func recordBatch(rp RenderPass, pipeline *wgpu.RenderPipeline, instances *wgpu.Buffer, offset uint64, b Batch) {
	n := uint32(len(b.Instances))
	rp.SetPipeline(pipeline)
	rp.SetBindGroup(0, b.Global.BindGroup, nil)
	rp.SetBindGroup(1, b.Texture.BindGroup, nil)
	rp.SetVertexBuffer(0, b.Mesh.Vertices, 0)
	rp.SetVertexBuffer(1, instances, offset)
	if b.Mesh.Indexed() {
		rp.SetIndexBuffer(b.Mesh.Indices, gputypes.IndexFormatUint32, 0)
		rp.DrawIndexed(b.Mesh.IndexCount, n, 0, 0, 0)
		return
	}
	rp.Draw(b.Mesh.VertexCount, n, 0, 0)
}

func (mp *MeshPipeline) ensurePipeline() error {
	if mp.pipeline != nil {
		return nil
	}
	return mp.createPipeline()
}

// createPipeline compiles the mesh shader and creates the alpha-blended
// instanced pipeline.
func (mp *MeshPipeline) createPipeline() error {
	if mp.device == nil {
		return ErrNoDevice
	}
	if err := ValidateShader(meshShaderSource); err != nil {
		return err
	}

	shader, err := mp.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "mesh_shader",
		WGSL:  meshShaderSource,
	})
	if err != nil {
		return fmt.Errorf("compile mesh shader: %w", err)
	}
	mp.shader = shader

	pipeLayout, err := mp.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "mesh_pipe_layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{mp.layouts.Global, mp.layouts.Texture},
	})
	if err != nil {
		mp.destroyPipeline()
		return fmt.Errorf("create mesh pipeline layout: %w", err)
	}
	mp.pipeLayout = pipeLayout

	blend := gputypes.BlendStateAlpha()
	pipeline, err := mp.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "mesh_pipeline",
		Layout: mp.pipeLayout,
		Vertex: wgpu.VertexState{
			Module:     mp.shader,
			EntryPoint: "vs_main",
			Buffers:    meshVertexLayout(),
		},
		Fragment: &wgpu.FragmentState{
			Module:     mp.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    mp.format,
					Blend:     &blend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology:  gputypes.PrimitiveTopologyTriangleList,
			FrontFace: gputypes.FrontFaceCCW,
			CullMode:  gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		mp.destroyPipeline()
		return fmt.Errorf("create mesh pipeline: %w", err)
	}
	mp.pipeline = pipeline
	logx.L().Debug("draw: mesh pipeline created", "format", mp.format)
	return nil
}

// Release frees every GPU object held by the pipeline. Safe to call
// multiple times.
func (mp *MeshPipeline) Release() {
	mp.arena.release()
	mp.destroyPipeline()
}

// destroyPipeline releases pipeline objects in reverse creation order.
func (mp *MeshPipeline) destroyPipeline() {
	if mp.pipeline != nil {
		mp.pipeline.Release()
		mp.pipeline = nil
	}
	if mp.pipeLayout != nil {
		mp.pipeLayout.Release()
		mp.pipeLayout = nil
	}
	if mp.shader != nil {
		mp.shader.Release()
		mp.shader = nil
	}
}
