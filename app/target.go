package app

import (
	"github.com/gogpu/ui"
	"github.com/gogpu/ui/draw"
	"github.com/gogpu/ui/location"
)

// Target is something frames can be rendered to.
type Target interface {
	// Size returns the current inner size in physical pixels.
	Size() location.Size

	// Resize reconfigures the target. Both dimensions are at least 1.
	Resize(width, height uint32) error

	// Acquire begins a frame whose render pass is cleared to clear.
	Acquire(clear ui.Color) (Frame, error)
}

// Frame is one acquired frame.
type Frame interface {
	// RenderPass returns the open render pass.
	RenderPass() draw.RenderPass

	// Submit ends the render pass, submits the recorded commands and
	// presents the frame.
	Submit() error
}
