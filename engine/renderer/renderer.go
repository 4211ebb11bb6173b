// Package renderer contains the core rendering abstraction: a polymorphic
// Renderer capability with one concrete variant per drawable type, the
// per-variant configuration values consumed by Initialize, the immutable
// per-frame Context, and the factory that maps variant names to fresh
// renderer instances.
package renderer

import (
	"github.com/banned104/OpenGL-Framework/engine/renderer/gpu"
	"github.com/banned104/OpenGL-Framework/log"
	"github.com/go-gl/mathgl/mgl32"
)

// Renderer is one concrete drawable type (triangle, cube) owning its GPU
// resources. The lifecycle is a small state machine:
//
//	uninitialized --Initialize--> ready --Cleanup--> uninitialized
//
// Initialize either fully succeeds or leaves the renderer uninitialized with
// any partially acquired GPU resources released. Failures are signaled by a
// false return plus the registered error callback; no method panics across
// this boundary.
//
// Renderers have no internal synchronization: every method that touches GPU
// state (Initialize, Render, Resize, Cleanup) must be called on the thread
// that owns the graphics context, strictly sequentially.
type Renderer interface {
	// Initialize compiles the config's shader pair, uploads its geometry,
	// and caches its render parameters. The config must be the concrete
	// type this variant accepts.
	//
	// Parameters:
	//   - config: the variant's config, consumed by this one call
	//
	// Returns:
	//   - bool: true if the renderer is ready to render
	Initialize(config Config) bool

	// Render draws one frame using the cached GPU handles and the given
	// per-frame context. Reports ErrInitializationFailed and returns false
	// if called before a successful Initialize; the renderer stays safely
	// callable afterward.
	//
	// Parameters:
	//   - ctx: the immutable per-frame snapshot
	//
	// Returns:
	//   - bool: true if a frame was drawn
	Render(ctx Context) bool

	// Resize updates the GPU viewport and recomputes the perspective
	// projection (30 degree vertical fov, near 3.0, far 10.0). Returns
	// false without touching GL state when either dimension is not
	// positive, since the aspect ratio would be undefined.
	//
	// Parameters:
	//   - width: drawable width in pixels
	//   - height: drawable height in pixels
	//
	// Returns:
	//   - bool: true if the viewport and projection were updated
	Resize(width, height int) bool

	// Cleanup releases all GPU handles and returns the renderer to the
	// uninitialized state. Idempotent: calling it on an already-clean
	// renderer is a no-op.
	Cleanup()

	// SetErrorCallback registers the sink invoked by every reporting path
	// in Initialize and Render. At most one callback is active; a new one
	// replaces the old.
	//
	// Parameters:
	//   - callback: the (kind, message) sink, or nil to disable
	SetErrorCallback(callback ErrorCallback)

	// Projection returns the perspective projection computed by the last
	// successful Resize, or the identity matrix before any resize. Hosts
	// use it to build the per-frame Context without duplicating the
	// projection parameters.
	//
	// Returns:
	//   - mgl32.Mat4: the current projection matrix
	Projection() mgl32.Mat4

	// Name returns the variant name, e.g. "triangle".
	//
	// Returns:
	//   - string: the variant name
	Name() string
}

// RendererOption is a functional option applied to a renderer variant during
// construction.
type RendererOption func(*vertexRenderer)

// WithDevice injects the GPU device the renderer draws through. When not
// set, an OpenGL device is created lazily on the first Initialize call,
// which therefore must run on the thread owning a current GL context.
//
// Parameters:
//   - dev: the device to draw through
//
// Returns:
//   - RendererOption: option function to apply
func WithDevice(dev gpu.Device) RendererOption {
	return func(r *vertexRenderer) {
		r.dev = dev
	}
}

// WithLogger sets the logger the renderer reports diagnostics to.
//
// Parameters:
//   - lg: the logger (nil discards debug and info output)
//
// Returns:
//   - RendererOption: option function to apply
func WithLogger(lg *log.Logger) RendererOption {
	return func(r *vertexRenderer) {
		r.lg = lg
	}
}

// WithErrorCallback registers the error callback at construction time,
// equivalent to calling SetErrorCallback on the built renderer.
//
// Parameters:
//   - callback: the (kind, message) sink
//
// Returns:
//   - RendererOption: option function to apply
func WithErrorCallback(callback ErrorCallback) RendererOption {
	return func(r *vertexRenderer) {
		r.errorCallback = callback
	}
}
