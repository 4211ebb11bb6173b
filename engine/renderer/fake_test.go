package renderer

import (
	"errors"

	"github.com/banned104/OpenGL-Framework/engine/renderer/gpu"
	"github.com/banned104/OpenGL-Framework/engine/renderer/shader"
	"github.com/go-gl/mathgl/mgl32"
)

// fakeShader records shader interactions without a GL context.
type fakeShader struct {
	id       uint32
	released bool
	useCount int
	mat4s    map[string]mgl32.Mat4
}

var _ shader.Shader = &fakeShader{}

func (s *fakeShader) Use()              { s.useCount++ }
func (s *fakeShader) Unuse()            {}
func (s *fakeShader) ProgramID() uint32 { return s.id }
func (s *fakeShader) Valid() bool       { return !s.released }
func (s *fakeShader) Release()          { s.released = true }

func (s *fakeShader) SetBool(name string, value bool)       {}
func (s *fakeShader) SetInt(name string, value int32)       {}
func (s *fakeShader) SetFloat(name string, value float32)   {}
func (s *fakeShader) SetVec2(name string, value mgl32.Vec2) {}
func (s *fakeShader) SetVec3(name string, value mgl32.Vec3) {}
func (s *fakeShader) SetVec4(name string, value mgl32.Vec4) {}
func (s *fakeShader) SetMat3(name string, value mgl32.Mat3) {}
func (s *fakeShader) SetMat4(name string, value mgl32.Mat4) {
	if s.mat4s == nil {
		s.mat4s = make(map[string]mgl32.Mat4)
	}
	s.mat4s[name] = value
}

// fakeDevice implements gpu.Device in memory, tracking resource lifetimes so
// tests can assert that nothing leaks.
type fakeDevice struct {
	compileErr error
	uploadErr  error

	shaders         []*fakeShader
	meshesCreated   int
	meshesDestroyed int
	nextHandle      uint32

	clears    []mgl32.Vec4
	viewports [][2]int
	draws     []int
}

var _ gpu.Device = &fakeDevice{}

func (d *fakeDevice) CompileProgram(vertexSrc, fragmentSrc string) (shader.Shader, error) {
	if d.compileErr != nil {
		return nil, d.compileErr
	}
	d.nextHandle++
	s := &fakeShader{id: d.nextHandle}
	d.shaders = append(d.shaders, s)
	return s, nil
}

func (d *fakeDevice) CreateMesh(data []byte, layout gpu.VertexLayout) (gpu.Mesh, error) {
	if len(data) == 0 {
		return gpu.Mesh{}, errors.New("no vertex data")
	}
	if err := layout.Validate(); err != nil {
		return gpu.Mesh{}, err
	}
	if d.uploadErr != nil {
		return gpu.Mesh{}, d.uploadErr
	}
	d.nextHandle++
	d.meshesCreated++
	return gpu.Mesh{VAO: d.nextHandle, VBO: d.nextHandle}, nil
}

func (d *fakeDevice) DestroyMesh(m gpu.Mesh) {
	if m.Valid() {
		d.meshesDestroyed++
	}
}

func (d *fakeDevice) Clear(color mgl32.Vec4) {
	d.clears = append(d.clears, color)
}

func (d *fakeDevice) Viewport(width, height int) {
	d.viewports = append(d.viewports, [2]int{width, height})
}

func (d *fakeDevice) DrawTriangles(m gpu.Mesh, count int) {
	d.draws = append(d.draws, count)
}

// errorRecorder collects error callback invocations.
type errorRecorder struct {
	kinds    []RenderError
	messages []string
}

func (r *errorRecorder) callback() ErrorCallback {
	return func(err RenderError, message string) {
		r.kinds = append(r.kinds, err)
		r.messages = append(r.messages, message)
	}
}

func (r *errorRecorder) last() (RenderError, bool) {
	if len(r.kinds) == 0 {
		return 0, false
	}
	return r.kinds[len(r.kinds)-1], true
}
