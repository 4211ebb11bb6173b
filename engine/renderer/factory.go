package renderer

import "sync"

// RenderType identifies a compiled-in renderer variant. Names are
// case-sensitive.
type RenderType string

const (
	// RenderTypeTriangle selects the rotating triangle renderer.
	RenderTypeTriangle RenderType = "triangle"

	// RenderTypeCube selects the rotating cube renderer.
	RenderTypeCube RenderType = "cube"
)

// FactoryFunc constructs a fresh, uninitialized renderer instance.
type FactoryFunc func(options ...RendererOption) Renderer

// registry maps variant names to their factory functions. Variants register
// themselves from init(), so a build that excludes a variant's file behaves
// exactly like an unknown name.
var (
	registryMu sync.RWMutex
	registry   = make(map[RenderType]FactoryFunc)
)

// Register adds a renderer variant to the factory registry. Typically called
// from init() in the file defining the variant. Registering an existing name
// replaces the previous factory.
//
// Parameters:
//   - t: the variant name
//   - f: the factory function for the variant
func Register(t RenderType, f FactoryFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[t] = f
}

// Create returns a freshly constructed, uninitialized renderer of the named
// variant, or nil if the variant is not compiled into this build. It never
// panics; callers must check for nil.
//
// Parameters:
//   - t: the variant name
//   - options: functional options forwarded to the variant's constructor
//
// Returns:
//   - Renderer: the new renderer, or nil for an unknown variant
func Create(t RenderType, options ...RendererOption) Renderer {
	registryMu.RLock()
	f, ok := registry[t]
	registryMu.RUnlock()
	if !ok {
		return nil
	}
	return f(options...)
}

// CreateByName is Create for callers holding a plain string token.
//
// Parameters:
//   - name: the variant name, case-sensitive
//   - options: functional options forwarded to the variant's constructor
//
// Returns:
//   - Renderer: the new renderer, or nil for an unknown variant
func CreateByName(name string, options ...RendererOption) Renderer {
	return Create(RenderType(name), options...)
}

// Available returns the names of all compiled-in variants.
//
// Returns:
//   - []RenderType: the registered variant names, in no particular order
func Available() []RenderType {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]RenderType, 0, len(registry))
	for t := range registry {
		names = append(names, t)
	}
	return names
}
