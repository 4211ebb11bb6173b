// Package gpu abstracts the graphics-driver primitives the renderers need:
// shader program compilation, vertex buffer upload, and draw submission.
// The OpenGL implementation lives in gl_device.go; tests substitute their own
// Device so no graphics context is required.
package gpu

import (
	"github.com/banned104/OpenGL-Framework/engine/renderer/shader"
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh holds the opaque GPU handles for one uploaded vertex range. A zero
// Mesh means "no GPU resources".
type Mesh struct {
	// VAO is the vertex array object name.
	VAO uint32

	// VBO is the vertex buffer object name.
	VBO uint32
}

// Valid reports whether the mesh refers to live GPU buffers.
func (m Mesh) Valid() bool {
	return m.VAO != 0
}

// Device is the capability the renderers draw through. Implementations are
// not safe for concurrent use; every call must happen on the thread owning
// the graphics context.
type Device interface {
	// CompileProgram compiles and links a shader program from GLSL sources.
	//
	// Parameters:
	//   - vertexSrc: GLSL vertex shader source
	//   - fragmentSrc: GLSL fragment shader source
	//
	// Returns:
	//   - shader.Shader: the linked program
	//   - error: compile or link failure carrying the driver diagnostic
	CompileProgram(vertexSrc, fragmentSrc string) (shader.Shader, error)

	// CreateMesh uploads raw vertex bytes and configures the vertex-input
	// stage from the layout. Empty data or an invalid layout is an error and
	// creates no GPU handles.
	//
	// Parameters:
	//   - data: tightly packed vertex bytes (a multiple of layout.Stride)
	//   - layout: the vertex format for the attribute bindings
	//
	// Returns:
	//   - Mesh: handles for the uploaded buffers
	//   - error: validation or upload failure
	CreateMesh(data []byte, layout VertexLayout) (Mesh, error)

	// DestroyMesh frees the mesh's GPU buffers. A zero Mesh is a no-op.
	DestroyMesh(m Mesh)

	// Clear clears the color and depth buffers to the given color.
	Clear(color mgl32.Vec4)

	// Viewport sets the GL viewport to cover width x height pixels.
	Viewport(width, height int)

	// DrawTriangles draws count vertices from the mesh as triangles.
	DrawTriangles(m Mesh, count int)
}
