package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/ui"
	"github.com/gogpu/ui/draw"
	"github.com/gogpu/ui/internal/logx"
	"github.com/gogpu/ui/location"
	"github.com/gogpu/ui/resource"
	"github.com/gogpu/ui/state"
)

// Handler drives an element tree from window events.
//
// All methods must be called from the thread that owns the window, and so
// must every access to the shared cells of the tree. Other goroutines may
// only send signals through Sender; the next drain picks them up.
type Handler struct {
	target  Target
	window  gpucontext.WindowProvider
	root    ui.Element
	res     *resource.Registry
	drawers *draw.Drawers
	queue   *state.Queue
	cursors map[DeviceID]location.Vec2
	clear   ui.Color

	redraw bool
	closed bool
	frames uint64
	err    error
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithWindow makes redraw requests reach w. Without a window the handler
// only records that a redraw is pending.
func WithWindow(w gpucontext.WindowProvider) HandlerOption {
	return func(h *Handler) { h.window = w }
}

// WithClearColor sets the colour frames are cleared to.
func WithClearColor(c ui.Color) HandlerOption {
	return func(h *Handler) { h.clear = c }
}

// WithQueue makes the handler drain q instead of a private queue.
func WithQueue(q *state.Queue) HandlerOption {
	return func(h *Handler) { h.queue = q }
}

// NewHandler resolves the anchors of root and returns a handler rendering
// it to target through renderer.
func NewHandler(target Target, root ui.Element, res *resource.Registry, renderer draw.Renderer, opts ...HandlerOption) (*Handler, error) {
	if err := ui.ResolveAnchors(root); err != nil {
		return nil, fmt.Errorf("build tree: %w", err)
	}
	h := &Handler{
		target:  target,
		root:    root,
		res:     res,
		drawers: draw.NewDrawers(renderer),
		cursors: make(map[DeviceID]location.Vec2),
		clear:   ui.Black,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.queue == nil {
		h.queue = state.NewQueue()
	}
	// The first frame is always wanted.
	h.requestRedraw()
	return h, nil
}

// Sender returns the sender handlers and background producers write with.
func (h *Handler) Sender() state.Sender { return h.queue.Sender() }

// RedrawPending reports whether a redraw was requested since the last
// frame.
func (h *Handler) RedrawPending() bool { return h.redraw }

// Frames returns the number of frames submitted.
func (h *Handler) Frames() uint64 { return h.frames }

// Stats returns the drawer counters of the last frame.
func (h *Handler) Stats() draw.Stats { return h.drawers.Stats() }

// Closed reports whether CloseRequested was handled.
func (h *Handler) Closed() bool { return h.closed }

// Err returns the first error of an event delivered through Attach.
func (h *Handler) Err() error { return h.err }

// Handle applies ev to the tree and drains the signals it produced.
// It reports exit after CloseRequested.
func (h *Handler) Handle(ev WindowEvent) (exit bool, err error) {
	switch ev := ev.(type) {
	case Resized:
		if err := h.target.Resize(max(ev.W, 1), max(ev.H, 1)); err != nil {
			return false, err
		}
		h.requestRedraw()
	case CursorMoved:
		h.cursors[ev.Device] = location.V2(ev.X, ev.Y)
	case CursorLeft:
		delete(h.cursors, ev.Device)
	case MouseInput:
		if !ev.Pressed {
			h.click(ev.Device, ev.Button)
		}
	case RedrawRequested:
		if err := h.Redraw(); err != nil {
			return false, err
		}
	case CloseRequested:
		h.closed = true
		exit = true
	}
	h.DrainSignals()
	if exit {
		h.queue.Shutdown()
	}
	return exit, nil
}

func (h *Handler) click(dev DeviceID, button ui.MouseButton) {
	pos, ok := h.cursors[dev]
	if !ok {
		logx.L().Debug("app: release without cursor position", "device", int(dev))
		return
	}
	h.root.HandleEvent(ui.Click{
		Point:   location.PointFromPixels(pos.X, pos.Y, h.target.Size()),
		Button:  button,
		Signals: h.queue.Sender(),
	})
}

// DrainSignals processes pending signals until a pass produces none.
// Shared-cell updates of one pass are folded into a single invalidation.
func (h *Handler) DrainSignals() {
	for {
		sigs := h.queue.Drain()
		if len(sigs) == 0 {
			return
		}
		var addrs state.AddressSet
		for _, sig := range sigs {
			switch sig.Kind {
			case state.SignalRedraw:
				h.requestRedraw()
			case state.SignalSharedUpdated:
				addrs.Add(sig.Addr)
			}
		}
		if !addrs.Empty() && h.root.InvalidateCaches(addrs) {
			h.requestRedraw()
		}
	}
}

func (h *Handler) requestRedraw() {
	h.redraw = true
	if h.window != nil {
		h.window.RequestRedraw()
	}
}

// Redraw renders one frame: acquire, clear, draw the tree, flush, submit
// and present.
func (h *Handler) Redraw() error {
	h.redraw = false

	frame, err := h.target.Acquire(h.clear)
	if err != nil {
		return err
	}
	h.drawers.BeginFrame()
	pass := draw.NewPass(frame.RenderPass(), h.drawers)
	h.root.Draw(pass, h.res, location.Initial(h.target.Size()))
	if err := errors.Join(pass.End(), frame.Submit()); err != nil {
		return fmt.Errorf("redraw: %w", err)
	}

	h.frames++
	stats := h.drawers.Stats()
	logx.L().Debug("app: frame submitted",
		"frame", h.frames,
		"flushes", stats.Flushes,
		"instances", stats.Instances)
	return nil
}

// Run handles events until CloseRequested, until events is closed or until
// ctx is done. Signals sent from other goroutines wake the loop. Without a
// window, pending redraws are rendered after each event.
func (h *Handler) Run(ctx context.Context, events <-chan WindowEvent) error {
	for {
		if h.redraw && h.window == nil {
			if err := h.Redraw(); err != nil {
				return err
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-h.queue.Wake():
			h.DrainSignals()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			exit, err := h.Handle(ev)
			if err != nil {
				return err
			}
			if exit {
				return nil
			}
		}
	}
}

// Attach registers callbacks on src that feed Handle.
//
// When src provides pointer events, they are the only input used: sources
// such as gogpu's report every mouse release through both the pointer and
// the mouse callbacks. Otherwise the mouse callbacks are used with device 0.
// Errors are kept for Err.
func (h *Handler) Attach(src gpucontext.EventSource) {
	src.OnResize(func(w, hgt int) {
		h.deliver(Resized{W: clampDim(w), H: clampDim(hgt)})
	})
	if ps, ok := src.(gpucontext.PointerEventSource); ok {
		ps.OnPointer(h.pointer)
		return
	}
	src.OnMouseMove(func(x, y float64) {
		h.deliver(CursorMoved{X: x, Y: y})
	})
	src.OnMouseRelease(func(b gpucontext.MouseButton, x, y float64) {
		h.deliver(CursorMoved{X: x, Y: y})
		h.deliver(MouseInput{Button: mouseButton(b)})
	})
}

func (h *Handler) pointer(ev gpucontext.PointerEvent) {
	dev := DeviceID(ev.PointerID)
	switch ev.Type {
	case gpucontext.PointerMove, gpucontext.PointerEnter:
		h.deliver(CursorMoved{Device: dev, X: ev.X, Y: ev.Y})
	case gpucontext.PointerUp:
		h.deliver(CursorMoved{Device: dev, X: ev.X, Y: ev.Y})
		h.deliver(MouseInput{Device: dev, Button: pointerButton(ev.Button)})
	case gpucontext.PointerLeave, gpucontext.PointerCancel:
		h.deliver(CursorLeft{Device: dev})
	}
}

func (h *Handler) deliver(ev WindowEvent) {
	if h.closed {
		return
	}
	if _, err := h.Handle(ev); err != nil && h.err == nil {
		h.err = err
		logx.L().Warn("app: event failed", "err", err)
	}
}

func clampDim(v int) uint32 {
	if v < 1 {
		return 1
	}
	return uint32(v)
}

func mouseButton(b gpucontext.MouseButton) ui.MouseButton {
	switch b {
	case gpucontext.MouseButtonLeft:
		return ui.ButtonLeft
	case gpucontext.MouseButtonRight:
		return ui.ButtonRight
	case gpucontext.MouseButtonMiddle:
		return ui.ButtonMiddle
	default:
		return ui.ButtonOther
	}
}

func pointerButton(b gpucontext.Button) ui.MouseButton {
	switch b {
	case gpucontext.ButtonLeft:
		return ui.ButtonLeft
	case gpucontext.ButtonRight:
		return ui.ButtonRight
	case gpucontext.ButtonMiddle:
		return ui.ButtonMiddle
	default:
		return ui.ButtonOther
	}
}
