package renderer

import (
	"unsafe"

	"github.com/banned104/OpenGL-Framework/common"
	"github.com/banned104/OpenGL-Framework/engine/renderer/gpu"
	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	Register(RenderTypeTriangle, NewTriangleRenderer)
}

// TriangleVertexLayout returns the fixed vertex layout of the triangle
// variant: position and color, both vec3, packed per TriangleVertex.
func TriangleVertexLayout() gpu.VertexLayout {
	return gpu.VertexLayout{
		Stride: common.SizeOf[TriangleVertex](),
		Attributes: []gpu.VertexAttribute{
			{Name: "aPos", Location: 0, Components: 3, Offset: int(unsafe.Offsetof(TriangleVertex{}.Position))},
			{Name: "aColor", Location: 1, Components: 3, Offset: int(unsafe.Offsetof(TriangleVertex{}.Color))},
		},
	}
}

// triangleRenderer draws a rotating colored triangle.
type triangleRenderer struct {
	vertexRenderer
}

var _ Renderer = &triangleRenderer{}

// NewTriangleRenderer creates an uninitialized triangle renderer.
//
// Parameters:
//   - options: functional options (device, logger, error callback)
//
// Returns:
//   - Renderer: the uninitialized renderer
func NewTriangleRenderer(options ...RendererOption) Renderer {
	r := &triangleRenderer{vertexRenderer{
		name:       string(RenderTypeTriangle),
		layout:     TriangleVertexLayout(),
		projection: mgl32.Ident4(),
	}}
	for _, opt := range options {
		opt(&r.vertexRenderer)
	}
	return r
}

func (r *triangleRenderer) Initialize(config Config) bool {
	cfg, ok := config.(*TriangleConfig)
	if !ok {
		r.reportError(ErrInitializationFailed, "invalid config type for triangle renderer")
		return false
	}
	if cfg.sourceErr != nil {
		r.reportError(ErrShaderCompilationFailed, cfg.sourceErr.Error())
		return false
	}
	return r.initialize(config)
}
