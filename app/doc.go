// Package app runs an element tree against a window.
//
// A Handler owns the tree root, the resource registry, the batched drawers
// and the signal queue. Each window event is mapped onto the tree and then
// followed by a signal drain: shared-cell updates are folded into one
// address set, caches depending on them are invalidated and a redraw is
// requested when anything changed.
//
// GPU owns the wgpu instance, adapter, device and either a window surface
// or an offscreen texture. It implements Target, the interface the handler
// renders frames through.
//
//	gpu, err := app.NewGPU(cfg, window)
//	if err != nil {
//	    return err
//	}
//	defer gpu.Close()
//	h, err := app.NewHandler(gpu, root, gpu.Registry(), gpu.Renderer())
//	if err != nil {
//	    return err
//	}
//	h.Attach(events)
package app
