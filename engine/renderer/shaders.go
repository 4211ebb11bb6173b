package renderer

import _ "embed"

// Built-in GLSL sources for each renderer variant, embedded at build time.
var (
	//go:embed shaders/triangle.vert
	triangleVertexShader string

	//go:embed shaders/triangle.frag
	triangleFragmentShader string

	//go:embed shaders/cube.vert
	cubeVertexShader string

	//go:embed shaders/cube.frag
	cubeFragmentShader string
)
