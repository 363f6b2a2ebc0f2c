package draw

import (
	"errors"
	"strings"
	"testing"
)

func TestMeshShaderValidates(t *testing.T) {
	if MeshShaderSource() == "" {
		t.Fatal("mesh shader source is empty")
	}
	if err := ValidateShader(MeshShaderSource()); err != nil {
		errStr := err.Error()
		if strings.Contains(errStr, "not yet implemented") || strings.Contains(errStr, "not supported") {
			t.Skipf("Skipping: naga feature not yet implemented: %v", err)
		}
		t.Fatalf("ValidateShader() = %v", err)
	}
}

func TestMeshShaderInterface(t *testing.T) {
	src := MeshShaderSource()
	for _, want := range []string{
		"@group(0) @binding(0)\nvar<uniform> global_transform: Transform;",
		"@group(1) @binding(0)\nvar color_texture: texture_2d<f32>;",
		"fn vs_main(",
		"fn fs_main(",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("shader lacks %q", want)
		}
	}
}

func TestValidateShaderEmpty(t *testing.T) {
	if err := ValidateShader(""); !errors.Is(err, ErrEmptyShader) {
		t.Errorf("ValidateShader(\"\") = %v, want ErrEmptyShader", err)
	}
}

func TestValidateShaderRejectsGarbage(t *testing.T) {
	if err := ValidateShader("fn ("); err == nil {
		t.Error("ValidateShader() accepted malformed source")
	}
}
