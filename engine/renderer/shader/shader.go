// Package shader wraps an OpenGL shader program: compilation and linking from
// GLSL source, uniform setting with memoized location lookups, and release of
// the GPU program object.
package shader

import (
	"fmt"
	"os"
	"strings"

	"github.com/banned104/OpenGL-Framework/log"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader is a compiled and linked GPU shader program. All methods must be
// called on the thread that owns the OpenGL context the program was created
// on.
type Shader interface {
	// Use binds the shader program. Must be called before setting uniforms
	// or issuing draw calls tied to this program.
	Use()

	// Unuse unbinds the current shader program.
	Unuse()

	// ProgramID returns the OpenGL program object name, or 0 after Release.
	//
	// Returns:
	//   - uint32: the GL program id
	ProgramID() uint32

	// Valid reports whether the program is usable (non-zero program id).
	//
	// Returns:
	//   - bool: true while the program has not been released
	Valid() bool

	// Release deletes the GPU program and clears the uniform location cache.
	// Safe to call more than once.
	Release()

	// Uniform setters. A name that does not resolve to an active uniform
	// logs a warning and is otherwise a no-op.

	SetBool(name string, value bool)
	SetInt(name string, value int32)
	SetFloat(name string, value float32)
	SetVec2(name string, value mgl32.Vec2)
	SetVec3(name string, value mgl32.Vec3)
	SetVec4(name string, value mgl32.Vec4)
	SetMat3(name string, value mgl32.Mat3)
	SetMat4(name string, value mgl32.Mat4)
}

// glShader is the OpenGL implementation of the Shader interface.
type glShader struct {
	lg        *log.Logger
	programID uint32

	// uniformCache memoizes glGetUniformLocation results per uniform name.
	// A cached -1 marks a name already warned about.
	uniformCache map[string]int32
}

var _ Shader = &glShader{}

// NewFromSource compiles and links a shader program from in-memory GLSL
// sources. On failure no GL program object is retained and the returned error
// carries the driver's compile or link diagnostic text.
//
// Parameters:
//   - lg: logger for uniform warnings (nil disables them)
//   - vertexSrc: GLSL vertex shader source
//   - fragmentSrc: GLSL fragment shader source
//
// Returns:
//   - Shader: the linked program
//   - error: compile or link failure with driver diagnostics
func NewFromSource(lg *log.Logger, vertexSrc, fragmentSrc string) (Shader, error) {
	vert, err := compileStage(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	frag, err := compileStage(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		gl.DeleteShader(vert)
		return nil, fmt.Errorf("fragment shader: %w", err)
	}

	program, err := linkProgram(vert, frag)

	// Stage objects are owned by the program once linked; delete them either way.
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	if err != nil {
		return nil, err
	}

	return &glShader{
		lg:           lg,
		programID:    program,
		uniformCache: make(map[string]int32),
	}, nil
}

// NewFromFiles reads GLSL sources from the given paths and compiles them.
// Both files are read before any GL call is made, so a missing or unreadable
// file fails without touching the graphics context.
//
// Parameters:
//   - lg: logger for uniform warnings (nil disables them)
//   - vertexPath: path to the vertex shader file
//   - fragmentPath: path to the fragment shader file
//
// Returns:
//   - Shader: the linked program
//   - error: file read, compile, or link failure
func NewFromFiles(lg *log.Logger, vertexPath, fragmentPath string) (Shader, error) {
	vertexSrc, err := LoadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	fragmentSrc, err := LoadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("fragment shader: %w", err)
	}
	return NewFromSource(lg, vertexSrc, fragmentSrc)
}

// LoadFile reads GLSL source from a file. Purely a filesystem operation; no
// GL context is required.
//
// Parameters:
//   - path: path to the shader source file
//
// Returns:
//   - string: the source text
//   - error: the read failure
func LoadFile(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read shader %q: %w", path, err)
	}
	return string(src), nil
}

func compileStage(stage uint32, source string) (uint32, error) {
	sh := gl.CreateShader(stage)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csources, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		infoLog := shaderInfoLog(sh)
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("compile failed: %s", infoLog)
	}
	return sh, nil
}

func linkProgram(vert, frag uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link failed: %s", strings.TrimRight(infoLog, "\x00"))
	}
	return program, nil
}

func shaderInfoLog(sh uint32) string {
	var logLength int32
	gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLength)
	infoLog := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(sh, logLength, nil, gl.Str(infoLog))
	return strings.TrimRight(infoLog, "\x00")
}

func (s *glShader) Use() {
	if s.programID != 0 {
		gl.UseProgram(s.programID)
	}
}

func (s *glShader) Unuse() {
	gl.UseProgram(0)
}

func (s *glShader) ProgramID() uint32 {
	return s.programID
}

func (s *glShader) Valid() bool {
	return s.programID != 0
}

func (s *glShader) Release() {
	if s.programID != 0 {
		gl.DeleteProgram(s.programID)
		s.programID = 0
	}
	s.uniformCache = make(map[string]int32)
}

// uniformLocation resolves a uniform name to its location, memoizing the
// lookup. The warning for an unknown name fires once per name.
func (s *glShader) uniformLocation(name string) int32 {
	if loc, ok := s.uniformCache[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.programID, gl.Str(name+"\x00"))
	if loc < 0 {
		s.lg.Warnf("shader: uniform %q not found in program %d", name, s.programID)
	}
	s.uniformCache[name] = loc
	return loc
}

func (s *glShader) SetBool(name string, value bool) {
	v := int32(0)
	if value {
		v = 1
	}
	if loc := s.uniformLocation(name); loc >= 0 {
		gl.Uniform1i(loc, v)
	}
}

func (s *glShader) SetInt(name string, value int32) {
	if loc := s.uniformLocation(name); loc >= 0 {
		gl.Uniform1i(loc, value)
	}
}

func (s *glShader) SetFloat(name string, value float32) {
	if loc := s.uniformLocation(name); loc >= 0 {
		gl.Uniform1f(loc, value)
	}
}

func (s *glShader) SetVec2(name string, value mgl32.Vec2) {
	if loc := s.uniformLocation(name); loc >= 0 {
		gl.Uniform2fv(loc, 1, &value[0])
	}
}

func (s *glShader) SetVec3(name string, value mgl32.Vec3) {
	if loc := s.uniformLocation(name); loc >= 0 {
		gl.Uniform3fv(loc, 1, &value[0])
	}
}

func (s *glShader) SetVec4(name string, value mgl32.Vec4) {
	if loc := s.uniformLocation(name); loc >= 0 {
		gl.Uniform4fv(loc, 1, &value[0])
	}
}

func (s *glShader) SetMat3(name string, value mgl32.Mat3) {
	if loc := s.uniformLocation(name); loc >= 0 {
		gl.UniformMatrix3fv(loc, 1, false, &value[0])
	}
}

func (s *glShader) SetMat4(name string, value mgl32.Mat4) {
	if loc := s.uniformLocation(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &value[0])
	}
}
