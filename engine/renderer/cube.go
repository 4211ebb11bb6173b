package renderer

import (
	"unsafe"

	"github.com/banned104/OpenGL-Framework/common"
	"github.com/banned104/OpenGL-Framework/engine/renderer/gpu"
	"github.com/go-gl/mathgl/mgl32"
)

func init() {
	Register(RenderTypeCube, NewCubeRenderer)
}

// CubeVertexLayout returns the fixed vertex layout of the cube variant:
// a vec3 position and a vec2 texture coordinate, packed per CubeVertex.
func CubeVertexLayout() gpu.VertexLayout {
	return gpu.VertexLayout{
		Stride: common.SizeOf[CubeVertex](),
		Attributes: []gpu.VertexAttribute{
			{Name: "aPos", Location: 0, Components: 3, Offset: int(unsafe.Offsetof(CubeVertex{}.Position))},
			{Name: "aTexCoord", Location: 1, Components: 2, Offset: int(unsafe.Offsetof(CubeVertex{}.TexCoord))},
		},
	}
}

// cubeRenderer draws a rotating UV-mapped quad.
type cubeRenderer struct {
	vertexRenderer
}

var _ Renderer = &cubeRenderer{}

// NewCubeRenderer creates an uninitialized cube renderer.
//
// Parameters:
//   - options: functional options (device, logger, error callback)
//
// Returns:
//   - Renderer: the uninitialized renderer
func NewCubeRenderer(options ...RendererOption) Renderer {
	r := &cubeRenderer{vertexRenderer{
		name:       string(RenderTypeCube),
		layout:     CubeVertexLayout(),
		projection: mgl32.Ident4(),
	}}
	for _, opt := range options {
		opt(&r.vertexRenderer)
	}
	return r
}

func (r *cubeRenderer) Initialize(config Config) bool {
	cfg, ok := config.(*CubeConfig)
	if !ok {
		r.reportError(ErrInitializationFailed, "invalid config type for cube renderer")
		return false
	}
	if cfg.sourceErr != nil {
		r.reportError(ErrShaderCompilationFailed, cfg.sourceErr.Error())
		return false
	}
	return r.initialize(config)
}
