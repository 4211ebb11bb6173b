package renderer

import (
	"math"
	"testing"

	"github.com/banned104/OpenGL-Framework/log"
	"github.com/go-gl/mathgl/mgl32"
)

func newTestTriangle(dev *fakeDevice, rec *errorRecorder) Renderer {
	return NewTriangleRenderer(
		WithDevice(dev),
		WithLogger(log.NewDiscard()),
		WithErrorCallback(rec.callback()),
	)
}

func newTestCube(dev *fakeDevice, rec *errorRecorder) Renderer {
	return NewCubeRenderer(
		WithDevice(dev),
		WithLogger(log.NewDiscard()),
		WithErrorCallback(rec.callback()),
	)
}

func testContext(width, height int) Context {
	return NewContext(ViewportSize{Width: width, Height: height}, mgl32.Ident4(), 1.0/60.0)
}

func TestRenderBeforeInitialize(t *testing.T) {
	dev := &fakeDevice{}
	rec := &errorRecorder{}
	r := newTestTriangle(dev, rec)

	if r.Render(testContext(800, 600)) {
		t.Fatal("Render before Initialize should return false")
	}
	kind, ok := rec.last()
	if !ok {
		t.Fatal("expected an error callback invocation")
	}
	if kind != ErrInitializationFailed {
		t.Fatalf("error kind = %v, want %v", kind, ErrInitializationFailed)
	}
	if len(dev.draws) != 0 {
		t.Fatalf("expected no draw calls, got %d", len(dev.draws))
	}
}

func TestInitializeWrongConfigType(t *testing.T) {
	dev := &fakeDevice{}
	rec := &errorRecorder{}
	r := newTestTriangle(dev, rec)

	if r.Initialize(NewCubeConfig()) {
		t.Fatal("Initialize with a cube config should fail on a triangle renderer")
	}
	if kind, _ := rec.last(); kind != ErrInitializationFailed {
		t.Fatalf("error kind = %v, want %v", kind, ErrInitializationFailed)
	}
	if len(dev.shaders) != 0 {
		t.Fatalf("expected no shader compilation on config type mismatch, got %d", len(dev.shaders))
	}

	// The renderer recovers once handed the right config type.
	if !r.Initialize(NewTriangleConfig()) {
		t.Fatal("Initialize with the correct config type should succeed")
	}
	if !r.Render(testContext(800, 600)) {
		t.Fatal("Render after successful Initialize should succeed")
	}
}

func TestInitializeShaderFailure(t *testing.T) {
	dev := &fakeDevice{compileErr: errSentinel("link failed: undefined uniform")}
	rec := &errorRecorder{}
	r := newTestTriangle(dev, rec)

	if r.Initialize(NewTriangleConfig()) {
		t.Fatal("Initialize should fail when shader compilation fails")
	}
	kind, ok := rec.last()
	if !ok || kind != ErrShaderCompilationFailed {
		t.Fatalf("error kind = %v, want %v", kind, ErrShaderCompilationFailed)
	}
	if dev.meshesCreated != 0 {
		t.Fatalf("expected no mesh creation after shader failure, got %d", dev.meshesCreated)
	}
	if r.Render(testContext(800, 600)) {
		t.Fatal("Render after failed Initialize should return false")
	}
}

func TestInitializeEmptyVertexData(t *testing.T) {
	dev := &fakeDevice{}
	rec := &errorRecorder{}
	r := newTestTriangle(dev, rec)

	cfg := NewTriangleConfig(WithTriangleVertices(nil))
	if r.Initialize(cfg) {
		t.Fatal("Initialize should fail on empty vertex data")
	}
	kind, ok := rec.last()
	if !ok || kind != ErrBufferCreationFailed {
		t.Fatalf("error kind = %v, want %v", kind, ErrBufferCreationFailed)
	}
	if dev.meshesCreated != 0 {
		t.Fatalf("expected no mesh to survive, got %d created", dev.meshesCreated)
	}
	// The compiled program must not be leaked by the failed geometry upload.
	if len(dev.shaders) != 1 || !dev.shaders[0].released {
		t.Fatal("expected the compiled shader to be released after the buffer failure")
	}
}

func TestRotationAngleWraps(t *testing.T) {
	tests := []struct {
		name   string
		speed  float32
		frames int
	}{
		{name: "default speed", speed: 1.0, frames: 10},
		{name: "fast spin wraps", speed: 90.0, frames: 7},
		{name: "full revolution", speed: 45.0, frames: 8},
		{name: "many frames", speed: 3.5, frames: 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := &fakeDevice{}
			rec := &errorRecorder{}
			r := newTestTriangle(dev, rec)
			cfg := NewTriangleConfig(WithTriangleRotationSpeed(tt.speed))
			if !r.Initialize(cfg) {
				t.Fatal("Initialize failed")
			}
			ctx := testContext(800, 600)
			for i := 0; i < tt.frames; i++ {
				if !r.Render(ctx) {
					t.Fatalf("Render failed on frame %d", i)
				}
			}
			got := r.(*triangleRenderer).currentAngle
			want := float32(math.Mod(float64(tt.frames)*float64(tt.speed), 360))
			if diff := math.Abs(float64(got - want)); diff > 1e-2 {
				t.Fatalf("angle after %d frames = %v, want %v", tt.frames, got, want)
			}
			if got < 0 || got >= 360 {
				t.Fatalf("angle %v outside [0, 360)", got)
			}
		})
	}
}

func TestTriangleDrawsThreeVertices(t *testing.T) {
	dev := &fakeDevice{}
	rec := &errorRecorder{}
	r := newTestTriangle(dev, rec)
	if !r.Initialize(NewTriangleConfig()) {
		t.Fatal("Initialize failed")
	}
	if !r.Render(testContext(800, 600)) {
		t.Fatal("Render failed")
	}
	if len(dev.draws) != 1 || dev.draws[0] != 3 {
		t.Fatalf("draw calls = %v, want one call with 3 vertices", dev.draws)
	}
	if len(dev.clears) != 1 || dev.clears[0] != (mgl32.Vec4{0.0, 0.0, 0.5, 1.0}) {
		t.Fatalf("clear calls = %v, want one dark blue clear", dev.clears)
	}
}

func TestCubeDrawsSixVertices(t *testing.T) {
	dev := &fakeDevice{}
	rec := &errorRecorder{}
	r := newTestCube(dev, rec)
	if !r.Initialize(NewCubeConfig()) {
		t.Fatal("Initialize failed")
	}
	if !r.Render(testContext(800, 600)) {
		t.Fatal("Render failed")
	}
	if len(dev.draws) != 1 || dev.draws[0] != 6 {
		t.Fatalf("draw calls = %v, want one call with 6 vertices", dev.draws)
	}
}

func TestRenderSetsMVPUniform(t *testing.T) {
	dev := &fakeDevice{}
	rec := &errorRecorder{}
	r := newTestTriangle(dev, rec)
	if !r.Initialize(NewTriangleConfig()) {
		t.Fatal("Initialize failed")
	}
	if !r.Render(testContext(800, 600)) {
		t.Fatal("Render failed")
	}
	sh := dev.shaders[0]
	if sh.useCount != 1 {
		t.Fatalf("shader Use count = %d, want 1", sh.useCount)
	}
	if _, ok := sh.mat4s["mvp"]; !ok {
		t.Fatal("expected the mvp uniform to be set during Render")
	}
}

func TestResizeRejectsDegenerateDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          bool
	}{
		{name: "normal", width: 800, height: 600, want: true},
		{name: "zero height", width: 800, height: 0, want: false},
		{name: "zero width", width: 0, height: 600, want: false},
		{name: "negative height", width: 800, height: -1, want: false},
		{name: "one by one", width: 1, height: 1, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := &fakeDevice{}
			rec := &errorRecorder{}
			r := newTestTriangle(dev, rec)
			if got := r.Resize(tt.width, tt.height); got != tt.want {
				t.Fatalf("Resize(%d, %d) = %v, want %v", tt.width, tt.height, got, tt.want)
			}
			wantViewports := 0
			if tt.want {
				wantViewports = 1
			}
			if len(dev.viewports) != wantViewports {
				t.Fatalf("viewport calls = %v, want %d", dev.viewports, wantViewports)
			}
		})
	}
}

func TestProjectionTracksResize(t *testing.T) {
	dev := &fakeDevice{}
	rec := &errorRecorder{}
	r := newTestTriangle(dev, rec)

	if r.Projection() != mgl32.Ident4() {
		t.Fatal("projection before any resize should be the identity")
	}
	if !r.Resize(800, 600) {
		t.Fatal("Resize failed")
	}
	want := mgl32.Perspective(mgl32.DegToRad(30), 800.0/600.0, 3.0, 10.0)
	if r.Projection() != want {
		t.Fatal("projection after resize does not match the perspective parameters")
	}
	// A rejected resize must not disturb the current projection.
	r.Resize(800, 0)
	if r.Projection() != want {
		t.Fatal("rejected resize changed the projection")
	}
}

func TestCleanupIdempotent(t *testing.T) {
	dev := &fakeDevice{}
	rec := &errorRecorder{}
	r := newTestTriangle(dev, rec)
	if !r.Initialize(NewTriangleConfig()) {
		t.Fatal("Initialize failed")
	}

	r.Cleanup()
	r.Cleanup()

	if dev.meshesDestroyed != 1 {
		t.Fatalf("meshes destroyed = %d, want 1", dev.meshesDestroyed)
	}
	if !dev.shaders[0].released {
		t.Fatal("expected the shader to be released by Cleanup")
	}
	if r.Render(testContext(800, 600)) {
		t.Fatal("Render after Cleanup should return false")
	}
}

func TestReinitializeAfterCleanup(t *testing.T) {
	dev := &fakeDevice{}
	rec := &errorRecorder{}
	r := newTestTriangle(dev, rec)
	if !r.Initialize(NewTriangleConfig()) {
		t.Fatal("first Initialize failed")
	}
	r.Cleanup()
	if !r.Initialize(NewTriangleConfig(WithTriangleRotationSpeed(2.0))) {
		t.Fatal("Initialize after Cleanup failed")
	}
	if !r.Render(testContext(800, 600)) {
		t.Fatal("Render after reinitialize failed")
	}
	if dev.meshesCreated != 2 {
		t.Fatalf("meshes created = %d, want 2", dev.meshesCreated)
	}
}

func TestVariantLayoutsValid(t *testing.T) {
	if err := TriangleVertexLayout().Validate(); err != nil {
		t.Fatalf("triangle layout invalid: %v", err)
	}
	if err := CubeVertexLayout().Validate(); err != nil {
		t.Fatalf("cube layout invalid: %v", err)
	}
}

// errSentinel is a trivial error type for injecting device failures.
type errSentinel string

func (e errSentinel) Error() string { return string(e) }
