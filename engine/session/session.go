// Package session bundles one renderer with its viewport, projection, and
// frame counter into a single owned object with an explicit lifetime. It is
// the embedding surface for host environments (an Android surface, a foreign
// window system) that drive rendering through create/resize/render/destroy
// calls instead of owning a frame loop, and it replaces any notion of
// process-wide renderer state: every Session is independent.
package session

import (
	"fmt"

	"github.com/banned104/OpenGL-Framework/engine/renderer"
	"github.com/banned104/OpenGL-Framework/log"
)

// Session owns a single initialized renderer. Not safe for concurrent use:
// like the renderer it wraps, all methods must run on the thread owning the
// graphics context.
type Session struct {
	lg       *log.Logger
	renderer renderer.Renderer

	width       int
	height      int
	frameNumber uint64
	closed      bool

	rendererOptions []renderer.RendererOption
}

// Option is a functional option applied by New.
type Option func(*Session)

// WithLogger sets the session's logger, also forwarded to the renderer.
//
// Parameters:
//   - lg: the logger
//
// Returns:
//   - Option: option function to apply
func WithLogger(lg *log.Logger) Option {
	return func(s *Session) {
		s.lg = lg
	}
}

// WithRendererOptions forwards extra options to the renderer constructor,
// e.g. renderer.WithDevice for tests.
//
// Parameters:
//   - options: renderer options to forward
//
// Returns:
//   - Option: option function to apply
func WithRendererOptions(options ...renderer.RendererOption) Option {
	return func(s *Session) {
		s.rendererOptions = append(s.rendererOptions, options...)
	}
}

// New creates a session for the named variant and initializes its renderer
// with the given config. The current thread must own the graphics context.
//
// Parameters:
//   - variant: the renderer variant to create
//   - config: the variant's config, consumed by the renderer's Initialize
//   - options: session options
//
// Returns:
//   - *Session: the ready session
//   - error: unknown variant or initialization failure, with the renderer's
//     diagnostic text
func New(variant renderer.RenderType, config renderer.Config, options ...Option) (*Session, error) {
	s := &Session{}
	for _, opt := range options {
		opt(s)
	}

	opts := append([]renderer.RendererOption{renderer.WithLogger(s.lg)}, s.rendererOptions...)
	r := renderer.Create(variant, opts...)
	if r == nil {
		return nil, fmt.Errorf("unknown renderer variant %q (available: %v)", variant, renderer.Available())
	}

	// Capture the failure detail so the caller gets it in the error rather
	// than only in the log.
	var lastMessage string
	r.SetErrorCallback(func(_ renderer.RenderError, message string) {
		lastMessage = message
	})
	if !r.Initialize(config) {
		return nil, fmt.Errorf("failed to initialize %s renderer: %s", variant, lastMessage)
	}
	r.SetErrorCallback(nil)

	s.renderer = r
	return s, nil
}

// Resize propagates a new surface size to the renderer and records it for
// per-frame context construction.
//
// Parameters:
//   - width: surface width in pixels
//   - height: surface height in pixels
//
// Returns:
//   - bool: true if the renderer accepted the new size
func (s *Session) Resize(width, height int) bool {
	if s.closed {
		return false
	}
	if !s.renderer.Resize(width, height) {
		return false
	}
	s.width, s.height = width, height
	return true
}

// RenderFrame builds the per-frame context from the session's tracked state
// and draws one frame, then advances the frame counter.
//
// Parameters:
//   - deltaTime: seconds since the previous frame (may be 0)
//
// Returns:
//   - bool: true if a frame was drawn
func (s *Session) RenderFrame(deltaTime float32) bool {
	if s.closed {
		return false
	}
	ctx := renderer.NewContext(
		renderer.ViewportSize{Width: s.width, Height: s.height},
		s.renderer.Projection(),
		deltaTime,
	).WithFrameNumber(s.frameNumber)
	s.frameNumber++
	return s.renderer.Render(ctx)
}

// FrameNumber returns the number of frames rendered so far.
func (s *Session) FrameNumber() uint64 {
	return s.frameNumber
}

// Renderer exposes the owned renderer, e.g. to install an error callback.
func (s *Session) Renderer() renderer.Renderer {
	return s.renderer
}

// Close releases the renderer's GPU resources. Idempotent.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.renderer.Cleanup()
	s.closed = true
	s.lg.Infof("session closed after %d frames", s.frameNumber)
}
