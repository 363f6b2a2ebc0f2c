// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDevice is returned when a GPU resource is requested from a
	// registry that was created without a device.
	ErrNoDevice = errors.New("draw: no GPU device")

	// ErrPassEnded is recorded when a request reaches a pass after End.
	ErrPassEnded = errors.New("draw: pass already ended")

	// ErrEmptyShader is returned when the embedded shader source is missing.
	ErrEmptyShader = errors.New("draw: mesh shader source is empty")
)

// DecodeErrorKind tells why an image could not be turned into a texture.
type DecodeErrorKind uint8

const (
	// DecodeIO means the file could not be read.
	DecodeIO DecodeErrorKind = iota
	// DecodeFormat means the bytes are not a supported image.
	DecodeFormat
)

func (k DecodeErrorKind) String() string {
	switch k {
	case DecodeIO:
		return "io"
	case DecodeFormat:
		return "format"
	default:
		return fmt.Sprintf("DecodeErrorKind(%d)", uint8(k))
	}
}

// DecodeError reports a failure to load a texture image.
type DecodeError struct {
	Kind DecodeErrorKind
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("draw: decode %s (%s): %v", e.Path, e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
