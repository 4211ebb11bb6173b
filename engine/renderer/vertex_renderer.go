package renderer

import (
	"math"

	"github.com/banned104/OpenGL-Framework/engine/renderer/gpu"
	"github.com/banned104/OpenGL-Framework/engine/renderer/shader"
	"github.com/banned104/OpenGL-Framework/log"
	"github.com/go-gl/mathgl/mgl32"
)

// vertexRenderer is the shared core behind the concrete renderer variants.
// Each variant contributes its name, its fixed vertex layout, and the config
// type check; everything after that (shader compilation, geometry upload,
// the per-frame draw, resize, cleanup) is identical across variants.
type vertexRenderer struct {
	name   string
	layout gpu.VertexLayout

	dev gpu.Device
	lg  *log.Logger

	shader      shader.Shader
	mesh        gpu.Mesh
	vertexCount int

	projection    mgl32.Mat4
	clearColor    mgl32.Vec4
	rotationSpeed float32
	currentAngle  float32

	initialized   bool
	errorCallback ErrorCallback
}

// initialize runs the variant-independent part of Initialize. The caller has
// already verified the config's concrete type.
func (r *vertexRenderer) initialize(config Config) bool {
	if r.dev == nil {
		dev, err := gpu.NewGLDevice(r.lg)
		if err != nil {
			r.reportError(ErrInitializationFailed, "failed to create GL device: "+err.Error())
			return false
		}
		r.dev = dev
	}

	sh, err := r.dev.CompileProgram(config.VertexShaderSource(), config.FragmentShaderSource())
	if err != nil {
		r.reportError(ErrShaderCompilationFailed, "failed to compile shader: "+err.Error())
		return false
	}

	mesh, err := r.dev.CreateMesh(config.VertexData(), r.layout)
	if err != nil {
		// Release the compiled program so a failed Initialize leaves no
		// partial GPU state behind.
		sh.Release()
		r.reportError(ErrBufferCreationFailed, "failed to create vertex buffer: "+err.Error())
		return false
	}

	r.shader = sh
	r.mesh = mesh
	r.vertexCount = config.VertexCount()
	r.clearColor = config.ClearColor()
	r.rotationSpeed = config.RotationSpeed()
	r.initialized = true

	r.lg.Infof("%s renderer initialized: %d vertices, rotation speed %.2f deg/frame",
		r.name, r.vertexCount, r.rotationSpeed)
	return true
}

func (r *vertexRenderer) Render(ctx Context) bool {
	if !r.initialized {
		r.reportError(ErrInitializationFailed, r.name+" renderer not initialized")
		return false
	}

	r.dev.Clear(r.clearColor)

	// Fixed per-call increment; ctx.DeltaTime() is carried for callers that
	// want time-based animation but does not feed the angle here.
	r.currentAngle = float32(math.Mod(float64(r.currentAngle+r.rotationSpeed), 360))

	model := mgl32.Translate3D(0, 0, -5).Mul4(
		mgl32.HomogRotate3DZ(mgl32.DegToRad(r.currentAngle)))
	mvp := ctx.Projection().Mul4(model)

	r.shader.Use()
	r.shader.SetMat4("mvp", mvp)
	r.dev.DrawTriangles(r.mesh, r.vertexCount)
	r.shader.Unuse()

	return true
}

func (r *vertexRenderer) Resize(width, height int) bool {
	if width <= 0 || height <= 0 {
		r.lg.Warnf("%s renderer: ignoring resize to %dx%d", r.name, width, height)
		return false
	}
	if r.dev == nil {
		r.reportError(ErrInitializationFailed, r.name+" renderer not initialized")
		return false
	}

	r.dev.Viewport(width, height)
	aspect := float32(width) / float32(height)
	r.projection = mgl32.Perspective(mgl32.DegToRad(30), aspect, 3.0, 10.0)
	return true
}

func (r *vertexRenderer) Cleanup() {
	if r.mesh.Valid() {
		r.dev.DestroyMesh(r.mesh)
		r.mesh = gpu.Mesh{}
	}
	if r.shader != nil {
		r.shader.Release()
		r.shader = nil
	}
	r.vertexCount = 0
	r.initialized = false
}

func (r *vertexRenderer) SetErrorCallback(callback ErrorCallback) {
	r.errorCallback = callback
}

func (r *vertexRenderer) Name() string {
	return r.name
}

// Projection returns the projection computed by the last successful Resize.
func (r *vertexRenderer) Projection() mgl32.Mat4 {
	return r.projection
}

func (r *vertexRenderer) reportError(err RenderError, message string) {
	r.lg.Errorf("%s renderer: %s: %s", r.name, err, message)
	if r.errorCallback != nil {
		r.errorCallback(err, message)
	}
}
