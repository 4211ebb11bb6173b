package session

import "sync"

// Handle is an opaque identifier for a Session, for host boundaries that can
// only carry an integer (JNI, C ABIs). Handle 0 is never issued.
type Handle int64

// The handle table has its own lock because host callbacks may arrive on a
// different thread than the render thread; the Sessions themselves keep the
// single-graphics-thread contract.
var (
	handlesMu  sync.Mutex
	handles    = make(map[Handle]*Session)
	nextHandle Handle = 1
)

// Open registers the session in the handle table.
//
// Parameters:
//   - s: the session to register
//
// Returns:
//   - Handle: the opaque identifier to hand across the host boundary
func Open(s *Session) Handle {
	handlesMu.Lock()
	defer handlesMu.Unlock()
	h := nextHandle
	nextHandle++
	handles[h] = s
	return h
}

// Lookup resolves a handle back to its session.
//
// Parameters:
//   - h: the handle to resolve
//
// Returns:
//   - *Session: the session, or nil for an unknown or released handle
func Lookup(h Handle) *Session {
	handlesMu.Lock()
	defer handlesMu.Unlock()
	return handles[h]
}

// Release removes the handle and closes its session. Unknown handles are a
// no-op. The close itself must still happen on the graphics thread.
//
// Parameters:
//   - h: the handle to release
func Release(h Handle) {
	handlesMu.Lock()
	s := handles[h]
	delete(handles, h)
	handlesMu.Unlock()

	if s != nil {
		s.Close()
	}
}
