// Package window provides the GLFW windowing layer: an OpenGL-capable window
// with a callback-driven message loop. The rendering core never imports this
// package; it only sees the resize and update callbacks the host wires up.
package window

import (
	"fmt"
	"runtime"

	"github.com/banned104/OpenGL-Framework/common"
)

// Window provides platform windowing and input event handling for an OpenGL
// context. NewWindow makes the context current on the calling goroutine,
// which it locks to its OS thread; all rendering must happen there.
type Window interface {
	// SetUpdateCallback sets the function called once per message loop
	// iteration, before the frame buffers are swapped. This is where the
	// host renders.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the framebuffer is
	// resized. Dimensions are in pixels, which on high-DPI displays differ
	// from window coordinates.
	//
	// Parameters:
	//   - callback: function receiving the new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the callback for key press events. Escape
	// closes the window and is not forwarded.
	//
	// Parameters:
	//   - callback: function receiving the key code
	SetKeyDownCallback(callback func(keyCode uint32))

	// IsRunning returns true while the window is active.
	//
	// Returns:
	//   - bool: true if the window has not been closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if the window was never initialized
	Close() error

	// ProcessMessages runs the message loop: each iteration invokes the
	// update callback, swaps the frame buffers, and polls pending events.
	// Blocks until the window is closed.
	ProcessMessages()

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// width and height track the framebuffer size in pixels.
	width  int
	height int

	// vsync enables swap synchronization with the display refresh.
	vsync bool

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// onUpdate is called each iteration of the message loop (if set).
	onUpdate func()

	// onResize is called when the framebuffer is resized.
	onResize func(width, height int)

	// onKeyDown is called when a key is pressed.
	onKeyDown func(keyCode uint32)
}

var _ Window = &engineWindow{}

// NewWindow creates a window with a current OpenGL core profile context.
// Applies each option in order; unset title and dimensions fall back to
// 800x600 "OpenGL Framework".
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the configured window with its GL context current
func NewWindow(options ...WindowBuilderOption) Window {
	w := &engineWindow{vsync: true}
	for _, opt := range options {
		opt(w)
	}
	w.title = common.Coalesce(w.title, "OpenGL Framework")
	w.width = common.Coalesce(w.width, 800)
	w.height = common.Coalesce(w.height, 600)
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(keyCode uint32)) {
	w.onKeyDown = callback
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if w.onUpdate != nil {
			w.onUpdate()
		}

		if succ := platformProcessMessages(w); !succ {
			break
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
