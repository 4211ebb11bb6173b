package renderer

import (
	"github.com/banned104/OpenGL-Framework/common"
	"github.com/go-gl/mathgl/mgl32"
)

// CubeVertex is the vertex format the cube renderer understands: a position
// and a texture coordinate.
type CubeVertex struct {
	Position mgl32.Vec3
	TexCoord mgl32.Vec2
}

// CubeConfig configures the cube renderer. Construct it with NewCubeConfig;
// the zero value is not usable.
type CubeConfig struct {
	vertexShader   string
	fragmentShader string
	sourceErr      error
	vertices       []CubeVertex
	clearColor     mgl32.Vec4
	rotationSpeed  float32
}

var _ Config = &CubeConfig{}

// CubeConfigOption is a functional option applied by NewCubeConfig.
type CubeConfigOption func(*CubeConfig)

// NewCubeConfig returns a fully populated cube config: the built-in shader
// pair, a default quad (two triangles) with UVs, a dark gray clear color, and
// rotation speed 1.0. Options override individual fields.
//
// Parameters:
//   - options: functional options overriding the defaults
//
// Returns:
//   - *CubeConfig: the configured value
func NewCubeConfig(options ...CubeConfigOption) *CubeConfig {
	c := &CubeConfig{
		vertexShader:   cubeVertexShader,
		fragmentShader: cubeFragmentShader,
		vertices: []CubeVertex{
			{Position: mgl32.Vec3{-1.0, -1.0, 0.0}, TexCoord: mgl32.Vec2{0.0, 0.0}},
			{Position: mgl32.Vec3{1.0, -1.0, 0.0}, TexCoord: mgl32.Vec2{1.0, 0.0}},
			{Position: mgl32.Vec3{1.0, 1.0, 0.0}, TexCoord: mgl32.Vec2{1.0, 1.0}},

			{Position: mgl32.Vec3{1.0, 1.0, 0.0}, TexCoord: mgl32.Vec2{1.0, 1.0}},
			{Position: mgl32.Vec3{-1.0, 1.0, 0.0}, TexCoord: mgl32.Vec2{0.0, 1.0}},
			{Position: mgl32.Vec3{-1.0, -1.0, 0.0}, TexCoord: mgl32.Vec2{0.0, 0.0}},
		},
		clearColor:    mgl32.Vec4{0.1, 0.1, 0.1, 1.0},
		rotationSpeed: 1.0,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// WithCubeShaderSources overrides the built-in GLSL sources.
//
// Parameters:
//   - vertexSrc: GLSL vertex shader source
//   - fragmentSrc: GLSL fragment shader source
//
// Returns:
//   - CubeConfigOption: option function to apply
func WithCubeShaderSources(vertexSrc, fragmentSrc string) CubeConfigOption {
	return func(c *CubeConfig) {
		c.vertexShader = vertexSrc
		c.fragmentShader = fragmentSrc
	}
}

// WithCubeShaderFiles loads the GLSL sources from files. A read failure is
// held in the config and surfaces when the renderer consumes it at
// Initialize, as a shader compilation failure carrying the load error text.
//
// Parameters:
//   - vertexPath: path to the GLSL vertex shader file
//   - fragmentPath: path to the GLSL fragment shader file
//
// Returns:
//   - CubeConfigOption: option function to apply
func WithCubeShaderFiles(vertexPath, fragmentPath string) CubeConfigOption {
	return func(c *CubeConfig) {
		c.vertexShader, c.fragmentShader, c.sourceErr = loadShaderPair(vertexPath, fragmentPath)
	}
}

// WithCubeVertices replaces the default geometry. The slice is copied.
//
// Parameters:
//   - vertices: the cube vertex list
//
// Returns:
//   - CubeConfigOption: option function to apply
func WithCubeVertices(vertices []CubeVertex) CubeConfigOption {
	return func(c *CubeConfig) {
		c.vertices = append([]CubeVertex(nil), vertices...)
	}
}

// WithCubeClearColor sets the framebuffer clear color.
//
// Parameters:
//   - color: RGBA clear color
//
// Returns:
//   - CubeConfigOption: option function to apply
func WithCubeClearColor(color mgl32.Vec4) CubeConfigOption {
	return func(c *CubeConfig) {
		c.clearColor = color
	}
}

// WithCubeRotationSpeed sets the per-frame rotation increment in degrees.
//
// Parameters:
//   - speed: degrees advanced per rendered frame
//
// Returns:
//   - CubeConfigOption: option function to apply
func WithCubeRotationSpeed(speed float32) CubeConfigOption {
	return func(c *CubeConfig) {
		c.rotationSpeed = speed
	}
}

func (c *CubeConfig) VertexShaderSource() string {
	return c.vertexShader
}

func (c *CubeConfig) FragmentShaderSource() string {
	return c.fragmentShader
}

func (c *CubeConfig) ClearColor() mgl32.Vec4 {
	return c.clearColor
}

func (c *CubeConfig) RotationSpeed() float32 {
	return c.rotationSpeed
}

func (c *CubeConfig) VertexData() []byte {
	return common.SliceToBytes(c.vertices)
}

func (c *CubeConfig) VertexCount() int {
	return len(c.vertices)
}

func (c *CubeConfig) VertexStride() int {
	return common.SizeOf[CubeVertex]()
}

// Vertices returns the configured geometry.
func (c *CubeConfig) Vertices() []CubeVertex {
	return c.vertices
}
