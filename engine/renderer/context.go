package renderer

import "github.com/go-gl/mathgl/mgl32"

// ViewportSize holds the drawable surface dimensions in pixels.
type ViewportSize struct {
	Width  int
	Height int
}

// Context is the immutable per-frame snapshot passed to Renderer.Render.
// Contexts are plain values: the With* methods return modified copies and
// never touch the receiver, so a context can be inspected or logged without
// any risk of a renderer mutating shared state. Construct one fresh each
// frame and discard it when Render returns.
type Context struct {
	viewport    ViewportSize
	projection  mgl32.Mat4
	deltaTime   float32
	frameNumber uint64
}

// NewContext creates a frame context with frame number zero. Viewport
// dimensions are accepted unvalidated at this layer; consumers must guard
// before using them in aspect-ratio computations.
//
// Parameters:
//   - viewport: drawable surface size in pixels
//   - projection: the projection matrix for this frame
//   - deltaTime: seconds since the previous frame (may be 0)
//
// Returns:
//   - Context: the new frame context
func NewContext(viewport ViewportSize, projection mgl32.Mat4, deltaTime float32) Context {
	return Context{
		viewport:   viewport,
		projection: projection,
		deltaTime:  deltaTime,
	}
}

// WithFrameNumber returns a copy of the context carrying the given frame
// number. The receiver is unchanged.
func (c Context) WithFrameNumber(frame uint64) Context {
	c.frameNumber = frame
	return c
}

// WithDeltaTime returns a copy of the context carrying the given delta time.
// The receiver is unchanged.
func (c Context) WithDeltaTime(dt float32) Context {
	c.deltaTime = dt
	return c
}

// Viewport returns the drawable surface size.
func (c Context) Viewport() ViewportSize {
	return c.viewport
}

// Width returns the viewport width in pixels.
func (c Context) Width() int {
	return c.viewport.Width
}

// Height returns the viewport height in pixels.
func (c Context) Height() int {
	return c.viewport.Height
}

// Projection returns the frame's projection matrix.
func (c Context) Projection() mgl32.Mat4 {
	return c.projection
}

// DeltaTime returns the seconds elapsed since the previous frame.
func (c Context) DeltaTime() float32 {
	return c.deltaTime
}

// FrameNumber returns the monotonic frame counter value.
func (c Context) FrameNumber() uint64 {
	return c.frameNumber
}
