// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package draw

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/gogpu/naga"
)

//go:embed shaders/mesh.wgsl
var meshShaderSource string

// MeshShaderSource returns the WGSL source of the mesh pipeline.
func MeshShaderSource() string { return meshShaderSource }

// ValidateShader parses, lowers and validates WGSL source.
func ValidateShader(source string) error {
	if source == "" {
		return ErrEmptyShader
	}
	ast, err := naga.Parse(source)
	if err != nil {
		return fmt.Errorf("parse shader: %w", err)
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return fmt.Errorf("lower shader: %w", err)
	}
	verrs, err := naga.Validate(module)
	if err != nil {
		return fmt.Errorf("validate shader: %w", err)
	}
	if len(verrs) > 0 {
		errs := make([]error, len(verrs))
		for i := range verrs {
			errs[i] = verrs[i]
		}
		return fmt.Errorf("validate shader: %w", errors.Join(errs...))
	}
	return nil
}
