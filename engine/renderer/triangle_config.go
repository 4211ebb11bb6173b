package renderer

import (
	"github.com/banned104/OpenGL-Framework/common"
	"github.com/go-gl/mathgl/mgl32"
)

// TriangleVertex is the vertex format the triangle renderer understands:
// a position and a per-vertex color.
type TriangleVertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// TriangleConfig configures the triangle renderer. Construct it with
// NewTriangleConfig; the zero value is not usable.
type TriangleConfig struct {
	vertexShader   string
	fragmentShader string
	sourceErr      error
	vertices       []TriangleVertex
	clearColor     mgl32.Vec4
	rotationSpeed  float32
}

var _ Config = &TriangleConfig{}

// TriangleConfigOption is a functional option applied by NewTriangleConfig.
type TriangleConfigOption func(*TriangleConfig)

// NewTriangleConfig returns a fully populated triangle config: the built-in
// shader pair, the default tri-colored triangle, a dark blue clear color, and
// rotation speed 1.0. Options override individual fields; no validation is
// performed here - malformed shader text or empty vertex data is detected by
// the renderer at Initialize time.
//
// Parameters:
//   - options: functional options overriding the defaults
//
// Returns:
//   - *TriangleConfig: the configured value
func NewTriangleConfig(options ...TriangleConfigOption) *TriangleConfig {
	c := &TriangleConfig{
		vertexShader:   triangleVertexShader,
		fragmentShader: triangleFragmentShader,
		vertices: []TriangleVertex{
			{Position: mgl32.Vec3{-0.5, -0.5, 0.0}, Color: mgl32.Vec3{1.0, 0.0, 0.0}},
			{Position: mgl32.Vec3{0.0, 0.5, 0.0}, Color: mgl32.Vec3{0.0, 1.0, 0.0}},
			{Position: mgl32.Vec3{0.5, -0.5, 0.0}, Color: mgl32.Vec3{0.0, 0.0, 1.0}},
		},
		clearColor:    mgl32.Vec4{0.0, 0.0, 0.5, 1.0},
		rotationSpeed: 1.0,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// WithTriangleShaderSources overrides the built-in GLSL sources.
//
// Parameters:
//   - vertexSrc: GLSL vertex shader source
//   - fragmentSrc: GLSL fragment shader source
//
// Returns:
//   - TriangleConfigOption: option function to apply
func WithTriangleShaderSources(vertexSrc, fragmentSrc string) TriangleConfigOption {
	return func(c *TriangleConfig) {
		c.vertexShader = vertexSrc
		c.fragmentShader = fragmentSrc
	}
}

// WithTriangleShaderFiles loads the GLSL sources from files. A read failure
// is held in the config and surfaces when the renderer consumes it at
// Initialize, as a shader compilation failure carrying the load error text.
//
// Parameters:
//   - vertexPath: path to the GLSL vertex shader file
//   - fragmentPath: path to the GLSL fragment shader file
//
// Returns:
//   - TriangleConfigOption: option function to apply
func WithTriangleShaderFiles(vertexPath, fragmentPath string) TriangleConfigOption {
	return func(c *TriangleConfig) {
		c.vertexShader, c.fragmentShader, c.sourceErr = loadShaderPair(vertexPath, fragmentPath)
	}
}

// WithTriangleVertices replaces the default geometry. The slice is copied.
//
// Parameters:
//   - vertices: the triangle vertex list (may be empty; the renderer rejects
//     empty geometry at Initialize)
//
// Returns:
//   - TriangleConfigOption: option function to apply
func WithTriangleVertices(vertices []TriangleVertex) TriangleConfigOption {
	return func(c *TriangleConfig) {
		c.vertices = append([]TriangleVertex(nil), vertices...)
	}
}

// WithTriangleClearColor sets the framebuffer clear color.
//
// Parameters:
//   - color: RGBA clear color
//
// Returns:
//   - TriangleConfigOption: option function to apply
func WithTriangleClearColor(color mgl32.Vec4) TriangleConfigOption {
	return func(c *TriangleConfig) {
		c.clearColor = color
	}
}

// WithTriangleRotationSpeed sets the per-frame rotation increment in degrees.
//
// Parameters:
//   - speed: degrees advanced per rendered frame
//
// Returns:
//   - TriangleConfigOption: option function to apply
func WithTriangleRotationSpeed(speed float32) TriangleConfigOption {
	return func(c *TriangleConfig) {
		c.rotationSpeed = speed
	}
}

func (c *TriangleConfig) VertexShaderSource() string {
	return c.vertexShader
}

func (c *TriangleConfig) FragmentShaderSource() string {
	return c.fragmentShader
}

func (c *TriangleConfig) ClearColor() mgl32.Vec4 {
	return c.clearColor
}

func (c *TriangleConfig) RotationSpeed() float32 {
	return c.rotationSpeed
}

func (c *TriangleConfig) VertexData() []byte {
	return common.SliceToBytes(c.vertices)
}

func (c *TriangleConfig) VertexCount() int {
	return len(c.vertices)
}

func (c *TriangleConfig) VertexStride() int {
	return common.SizeOf[TriangleVertex]()
}

// Vertices returns the configured geometry.
func (c *TriangleConfig) Vertices() []TriangleVertex {
	return c.vertices
}
