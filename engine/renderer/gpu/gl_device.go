package gpu

import (
	"fmt"

	"github.com/banned104/OpenGL-Framework/engine/renderer/shader"
	"github.com/banned104/OpenGL-Framework/log"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// glDevice is the OpenGL 4.1 core implementation of Device.
type glDevice struct {
	lg *log.Logger
}

var _ Device = &glDevice{}

// NewGLDevice loads the OpenGL function pointers for the current context and
// returns a Device backed by it. The calling goroutine must own a current GL
// context (typically right after glfw.Window.MakeContextCurrent).
//
// Parameters:
//   - lg: logger for driver information and warnings
//
// Returns:
//   - Device: the OpenGL device
//   - error: failure to initialize the GL bindings
func NewGLDevice(lg *log.Logger) (Device, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	lg.Infof("OpenGL vendor %s renderer %s version %s",
		gl.GoStr(gl.GetString(gl.VENDOR)),
		gl.GoStr(gl.GetString(gl.RENDERER)),
		gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	return &glDevice{lg: lg}, nil
}

func (d *glDevice) CompileProgram(vertexSrc, fragmentSrc string) (shader.Shader, error) {
	return shader.NewFromSource(d.lg, vertexSrc, fragmentSrc)
}

func (d *glDevice) CreateMesh(data []byte, layout VertexLayout) (Mesh, error) {
	if len(data) == 0 {
		return Mesh{}, fmt.Errorf("no vertex data")
	}
	if err := layout.Validate(); err != nil {
		return Mesh{}, err
	}
	if len(data)%layout.Stride != 0 {
		return Mesh{}, fmt.Errorf("vertex data length %d is not a multiple of stride %d", len(data), layout.Stride)
	}

	var m Mesh
	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)

	gl.GenBuffers(1, &m.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data), gl.Ptr(data), gl.STATIC_DRAW)

	for _, attr := range layout.Attributes {
		gl.EnableVertexAttribArray(attr.Location)
		gl.VertexAttribPointerWithOffset(attr.Location, attr.Components, gl.FLOAT, false,
			int32(layout.Stride), uintptr(attr.Offset))
	}

	gl.BindVertexArray(0)

	d.lg.Debugf("created mesh vao=%d vbo=%d (%d bytes)", m.VAO, m.VBO, len(data))
	return m, nil
}

func (d *glDevice) DestroyMesh(m Mesh) {
	if m.VAO != 0 {
		gl.DeleteVertexArrays(1, &m.VAO)
	}
	if m.VBO != 0 {
		gl.DeleteBuffers(1, &m.VBO)
	}
}

func (d *glDevice) Clear(color mgl32.Vec4) {
	gl.ClearColor(color.X(), color.Y(), color.Z(), color.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (d *glDevice) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (d *glDevice) DrawTriangles(m Mesh, count int) {
	gl.BindVertexArray(m.VAO)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))
	gl.BindVertexArray(0)
}
