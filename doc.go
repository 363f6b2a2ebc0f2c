// Package ui is a small retained-mode UI toolkit drawn with wgpu.
//
// An application describes its interface as a tree of [Element] values:
// rectangles, labels, weighted splits, layer stacks and click handlers.
// Mutable state lives in [state.Shared] cells that elements read through
// [value.Source]s. Writing a cell queues a signal; the event loop in
// package app drains the queue, asks the tree to drop caches that depend
// on the written cells and redraws when anything changed.
//
// Every element satisfies three contracts:
//
//   - Draw issues mesh requests into a [draw.Pass] for a given
//     [location.Location]. It reads sources but never writes cells.
//   - HandleEvent reacts to an [Event] and may write cells. Returning
//     [Consumed] stops the event from reaching later siblings.
//   - InvalidateCaches drops memoised values depending on a set of cell
//     addresses and reports whether anything was actually dropped.
//
// Basic usage:
//
//	counter := state.NewShared(0)
//	root := ui.Column(
//	    ui.NewLabel(value.Concat3(value.Of("clicked "),
//	        value.Stringified[int](value.FromShared(counter)), value.Of(" times"))),
//	    ui.NewOnClick(ui.NewRect(value.Of(ui.Green)), func(sig state.Sender) ui.EventResult {
//	        counter.Update(sig, func(n *int) { *n++ })
//	        return ui.Consumed
//	    }),
//	)
package ui
