package gpu

import "fmt"

// VertexAttribute describes one attribute binding within a vertex: where it
// lives inside the vertex struct and how the GPU should interpret it. All
// attributes are tightly packed 32-bit floats.
type VertexAttribute struct {
	// Name is the attribute's semantic name, matching the GLSL input variable.
	Name string

	// Location is the GLSL layout location the attribute binds to.
	Location uint32

	// Components is the number of float components (2, 3, or 4).
	Components int32

	// Offset is the attribute's byte offset within the vertex struct.
	Offset int
}

// VertexLayout describes the complete vertex format for one renderer variant.
// Layouts are fixed values declared next to the vertex struct they describe;
// they are never mutated at runtime.
type VertexLayout struct {
	// Stride is the size in bytes of one vertex.
	Stride int

	// Attributes lists the attribute bindings in location order.
	Attributes []VertexAttribute
}

// Validate checks the structural invariants of the layout: a positive stride,
// component counts in {2, 3, 4}, offsets non-decreasing and every attribute
// fitting inside the stride.
//
// Returns:
//   - error: the first violated invariant, or nil
func (l VertexLayout) Validate() error {
	if l.Stride <= 0 {
		return fmt.Errorf("vertex layout: stride must be positive, got %d", l.Stride)
	}
	if len(l.Attributes) == 0 {
		return fmt.Errorf("vertex layout: no attributes declared")
	}

	prevOffset := 0
	for _, attr := range l.Attributes {
		if attr.Components < 2 || attr.Components > 4 {
			return fmt.Errorf("vertex layout: attribute %q has %d components, want 2-4", attr.Name, attr.Components)
		}
		if attr.Offset < prevOffset {
			return fmt.Errorf("vertex layout: attribute %q offset %d decreases", attr.Name, attr.Offset)
		}
		if end := attr.Offset + int(attr.Components)*4; end > l.Stride {
			return fmt.Errorf("vertex layout: attribute %q ends at byte %d, past stride %d", attr.Name, end, l.Stride)
		}
		prevOffset = attr.Offset
	}
	return nil
}
