// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package app

import (
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/ui"
	"github.com/gogpu/ui/draw"
	"github.com/gogpu/ui/internal/logx"
	"github.com/gogpu/ui/location"
	"github.com/gogpu/ui/resource"
	"github.com/gogpu/wgpu"
)

// Window is a native window the GPU can present to.
type Window interface {
	gpucontext.WindowProvider

	// Handles returns the platform display and window handles.
	Handles() (display, window uintptr)
}

// GPU owns the device and the render target of one window, or of an
// offscreen texture when created with NewHeadlessGPU.
type GPU struct {
	cfg      Config
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	device   *wgpu.Device
	queue    *wgpu.Queue

	format    gputypes.TextureFormat
	alphaMode gputypes.CompositeAlphaMode

	// mu guards the surface configuration and the offscreen target.
	mu            sync.Mutex
	width, height uint32
	surface       *wgpu.Surface
	offscreen     *wgpu.Texture
	offscreenView *wgpu.TextureView

	registry *resource.Registry
	pipeline *draw.MeshPipeline
}

var _ Target = (*GPU)(nil)

// NewGPU creates the device and configures a surface on window. The initial
// size is the window's physical size, or the configured size when the
// window reports none.
func NewGPU(cfg Config, window Window) (*GPU, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &GPU{cfg: cfg, width: cfg.Width, height: cfg.Height}
	if w, h := window.Size(); w > 0 && h > 0 {
		sf := window.ScaleFactor()
		g.width = clampDim(int(float64(w) * sf))
		g.height = clampDim(int(float64(h) * sf))
	}

	if err := g.createInstance(); err != nil {
		return nil, err
	}
	display, handle := window.Handles()
	surface, err := g.instance.CreateSurface(display, handle)
	if err != nil {
		g.Close()
		return nil, fmt.Errorf("%w: create: %w", ErrSurface, err)
	}
	g.surface = surface

	if err := g.createDevice(surface); err != nil {
		g.Close()
		return nil, err
	}

	caps := g.adapter.GetSurfaceCapabilities(surface)
	if caps == nil || len(caps.Formats) == 0 {
		g.Close()
		return nil, fmt.Errorf("%w: adapter reports no surface formats", ErrSurface)
	}
	g.format = caps.Formats[0]
	g.alphaMode = gputypes.CompositeAlphaModeOpaque
	if len(caps.AlphaModes) > 0 {
		g.alphaMode = caps.AlphaModes[0]
	}

	if err := g.configure(); err != nil {
		g.Close()
		return nil, err
	}
	g.initDrawing()
	return g, nil
}

// NewHeadlessGPU creates the device without a window. Frames are rendered
// into an RGBA8 texture of the configured size.
func NewHeadlessGPU(cfg Config) (*GPU, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g := &GPU{
		cfg:    cfg,
		width:  cfg.Width,
		height: cfg.Height,
		format: gputypes.TextureFormatRGBA8Unorm,
	}
	if err := g.createInstance(); err != nil {
		return nil, err
	}
	if err := g.createDevice(nil); err != nil {
		g.Close()
		return nil, err
	}
	if err := g.createOffscreen(); err != nil {
		g.Close()
		return nil, err
	}
	g.initDrawing()
	return g, nil
}

func (g *GPU) createInstance() error {
	instance, err := wgpu.CreateInstance(&wgpu.InstanceDescriptor{
		Backends: gputypes.BackendsPrimary,
	})
	if err != nil {
		return fmt.Errorf("%w: create instance: %w", ErrNoAdapter, err)
	}
	g.instance = instance
	return nil
}

func (g *GPU) createDevice(surface *wgpu.Surface) error {
	adapter, err := g.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		PowerPreference:      g.cfg.PowerPreference.gpu(),
		ForceFallbackAdapter: false,
		CompatibleSurface:    surface,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoAdapter, err)
	}
	g.adapter = adapter
	info := adapter.Info()
	logx.L().Info("app: adapter selected",
		"name", info.Name,
		"vendor", info.Vendor,
		"backend", info.Backend.String())

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:          "ui-device",
		RequiredLimits: requiredLimits(adapter.Limits()),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoDevice, err)
	}
	g.device = device
	g.queue = device.Queue()
	return nil
}

// requiredLimits starts from the downlevel defaults and raises the texture
// dimension to what the adapter supports, so large windows still fit.
func requiredLimits(adapter gputypes.Limits) gputypes.Limits {
	limits := gputypes.DownlevelLimits()
	limits.MaxTextureDimension2D = max(limits.MaxTextureDimension2D, adapter.MaxTextureDimension2D)
	return limits
}

func (g *GPU) configure() error {
	err := g.surface.Configure(g.device, &wgpu.SurfaceConfiguration{
		Width:       g.width,
		Height:      g.height,
		Format:      g.format,
		Usage:       gputypes.TextureUsageRenderAttachment,
		PresentMode: g.cfg.PresentMode.gpu(),
		AlphaMode:   g.alphaMode,
	})
	if err != nil {
		return fmt.Errorf("%w: configure %dx%d: %w", ErrSurface, g.width, g.height, err)
	}
	logx.L().Info("app: surface configured",
		"width", g.width,
		"height", g.height,
		"format", fmt.Sprint(g.format),
		"max_frame_latency", g.cfg.MaxFrameLatency)
	return nil
}

func (g *GPU) createOffscreen() error {
	tex, err := g.device.CreateTexture(&wgpu.TextureDescriptor{
		Label:         "ui-offscreen",
		Size:          wgpu.Extent3D{Width: g.width, Height: g.height, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        g.format,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("%w: offscreen texture: %w", ErrSurface, err)
	}
	view, err := g.device.CreateTextureView(tex, nil)
	if err != nil {
		tex.Release()
		return fmt.Errorf("%w: offscreen view: %w", ErrSurface, err)
	}
	g.offscreen, g.offscreenView = tex, view
	return nil
}

func (g *GPU) releaseOffscreen() {
	if g.offscreenView != nil {
		g.offscreenView.Release()
		g.offscreenView = nil
	}
	if g.offscreen != nil {
		g.offscreen.Release()
		g.offscreen = nil
	}
}

func (g *GPU) initDrawing() {
	g.registry = resource.NewRegistry(g.device)
	g.pipeline = draw.NewMeshPipeline(g.device, g.format, resource.MustGet(g.registry, draw.BindGroupLayouts))
}

// Device returns the logical device.
func (g *GPU) Device() *wgpu.Device { return g.device }

// Registry returns the resource registry bound to the device.
func (g *GPU) Registry() *resource.Registry { return g.registry }

// Renderer returns the mesh pipeline batches are recorded with.
func (g *GPU) Renderer() draw.Renderer { return g.pipeline }

// Size implements Target.
func (g *GPU) Size() location.Size {
	g.mu.Lock()
	defer g.mu.Unlock()
	return location.Size{W: g.width, H: g.height}
}

// Resize implements Target. Dimensions below 1 are raised to 1.
func (g *GPU) Resize(width, height uint32) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	width, height = max(width, 1), max(height, 1)
	if width == g.width && height == g.height {
		return nil
	}
	g.width, g.height = width, height
	if g.surface != nil {
		return g.configure()
	}
	g.releaseOffscreen()
	return g.createOffscreen()
}

// Acquire implements Target.
func (g *GPU) Acquire(clear ui.Color) (Frame, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	f := &gpuFrame{gpu: g, view: g.offscreenView}
	if g.surface != nil {
		st, suboptimal, err := g.surface.GetCurrentTexture()
		if err != nil {
			return nil, fmt.Errorf("%w: acquire: %w", ErrSurface, err)
		}
		if suboptimal {
			logx.L().Debug("app: suboptimal surface texture")
		}
		view, err := st.CreateView(nil)
		if err != nil {
			g.surface.DiscardTexture()
			return nil, fmt.Errorf("%w: texture view: %w", ErrSurface, err)
		}
		f.surfaceTexture, f.view, f.ownsView = st, view, true
	}

	encoder, err := g.device.CreateCommandEncoder(&wgpu.CommandEncoderDescriptor{Label: "ui-frame"})
	if err != nil {
		f.discard()
		return nil, fmt.Errorf("command encoder: %w", err)
	}
	f.encoder = encoder

	c := clear.Float32()
	pass, err := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "ui-clear",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       f.view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: gputypes.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2]), A: float64(c[3])},
		}},
	})
	if err != nil {
		encoder.DiscardEncoding()
		f.discard()
		return nil, fmt.Errorf("begin render pass: %w", err)
	}
	f.pass = pass
	return f, nil
}

// Close releases every GPU object in reverse creation order.
func (g *GPU) Close() {
	if g.pipeline != nil {
		g.pipeline.Release()
		g.pipeline = nil
	}
	if g.registry != nil {
		g.registry.Close()
		g.registry = nil
	}
	g.releaseOffscreen()
	if g.surface != nil {
		g.surface.Release()
		g.surface = nil
	}
	if g.device != nil {
		g.device.Release()
		g.device = nil
	}
	if g.adapter != nil {
		g.adapter.Release()
		g.adapter = nil
	}
	if g.instance != nil {
		g.instance.Release()
		g.instance = nil
	}
}

type gpuFrame struct {
	gpu            *GPU
	encoder        *wgpu.CommandEncoder
	pass           *wgpu.RenderPassEncoder
	view           *wgpu.TextureView
	ownsView       bool
	surfaceTexture *wgpu.SurfaceTexture
}

func (f *gpuFrame) RenderPass() draw.RenderPass { return f.pass }

func (f *gpuFrame) Submit() error {
	defer f.releaseView()

	if err := f.pass.End(); err != nil {
		f.encoder.DiscardEncoding()
		f.discardSurface()
		return fmt.Errorf("end render pass: %w", err)
	}
	cmd, err := f.encoder.Finish()
	if err != nil {
		f.discardSurface()
		return fmt.Errorf("finish commands: %w", err)
	}
	if _, err := f.gpu.queue.Submit(cmd); err != nil {
		cmd.Release()
		f.discardSurface()
		return fmt.Errorf("submit: %w", err)
	}
	if f.surfaceTexture != nil {
		if err := f.gpu.surface.Present(f.surfaceTexture); err != nil {
			return fmt.Errorf("%w: present: %w", ErrSurface, err)
		}
	}
	return nil
}

func (f *gpuFrame) discard() {
	f.releaseView()
	f.discardSurface()
}

func (f *gpuFrame) discardSurface() {
	if f.surfaceTexture != nil {
		f.gpu.surface.DiscardTexture()
		f.surfaceTexture = nil
	}
}

func (f *gpuFrame) releaseView() {
	if f.ownsView && f.view != nil {
		f.view.Release()
		f.view = nil
	}
}
