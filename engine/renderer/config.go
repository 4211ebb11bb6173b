package renderer

import (
	"fmt"

	"github.com/banned104/OpenGL-Framework/engine/renderer/shader"
	"github.com/go-gl/mathgl/mgl32"
)

// Config is the immutable bundle of shader sources, geometry, and render
// parameters a Renderer consumes exactly once in Initialize. Each renderer
// variant accepts only its own concrete config type (TriangleConfig or
// CubeConfig) because only that type carries the vertex layout the variant
// understands; Initialize reports a mismatch rather than guessing.
//
// A config is read-only for the duration of Initialize. The renderer copies
// what it needs (shader text, GPU upload) and holds no reference into the
// config afterward, so the caller may discard it.
type Config interface {
	// VertexShaderSource returns the GLSL vertex shader source text.
	VertexShaderSource() string

	// FragmentShaderSource returns the GLSL fragment shader source text.
	FragmentShaderSource() string

	// ClearColor returns the framebuffer clear color. Components are
	// conventionally in [0, 1] but not enforced at this layer.
	ClearColor() mgl32.Vec4

	// RotationSpeed returns the per-frame rotation increment in degrees.
	RotationSpeed() float32

	// VertexData returns the type-erased vertex bytes to upload. The byte
	// layout is described by the variant's fixed vertex layout.
	VertexData() []byte

	// VertexCount returns the number of vertices in VertexData.
	VertexCount() int

	// VertexStride returns the size of one vertex in bytes.
	VertexStride() int
}

// loadShaderPair reads both GLSL sources for a shader-files config option.
// The first read failure wins; the variant's Initialize reports it.
func loadShaderPair(vertexPath, fragmentPath string) (vertexSrc, fragmentSrc string, err error) {
	vertexSrc, err = shader.LoadFile(vertexPath)
	if err != nil {
		return "", "", fmt.Errorf("vertex shader: %w", err)
	}
	fragmentSrc, err = shader.LoadFile(fragmentPath)
	if err != nil {
		return "", "", fmt.Errorf("fragment shader: %w", err)
	}
	return vertexSrc, fragmentSrc, nil
}
