package app

import "github.com/gogpu/ui"

// DeviceID identifies a pointing device. Mice report 0; touch and pen
// pointers report their pointer id.
type DeviceID int

// WindowEvent is an event delivered by the windowing layer.
type WindowEvent interface {
	isWindowEvent()
}

// Resized reports a new inner size in physical pixels.
type Resized struct {
	W, H uint32
}

// CursorMoved reports a cursor position in physical pixels, origin at the
// top-left corner.
type CursorMoved struct {
	Device DeviceID
	X, Y   float64
}

// CursorLeft reports that a cursor left the window.
type CursorLeft struct {
	Device DeviceID
}

// MouseInput reports a button transition at the device's last position.
type MouseInput struct {
	Device  DeviceID
	Pressed bool
	Button  ui.MouseButton
}

// RedrawRequested asks for a frame.
type RedrawRequested struct{}

// CloseRequested asks the loop to exit.
type CloseRequested struct{}

// Focused reports a focus change. The handler ignores it.
type Focused struct {
	Focused bool
}

// ScaleFactorChanged reports a DPI change. The handler ignores it; the
// following Resized carries the new physical size.
type ScaleFactorChanged struct {
	Factor float64
}

func (Resized) isWindowEvent()            {}
func (CursorMoved) isWindowEvent()        {}
func (CursorLeft) isWindowEvent()         {}
func (MouseInput) isWindowEvent()         {}
func (RedrawRequested) isWindowEvent()    {}
func (CloseRequested) isWindowEvent()     {}
func (Focused) isWindowEvent()            {}
func (ScaleFactorChanged) isWindowEvent() {}
