// File: registry.go
// Role: Dimension lifecycle and registry-wide queries.
// Determinism:
//   - Dimensions() and Names() return creation order, which is the global
//     fallback priority. Map iteration order is never observable.

package dimension

import "fmt"

// CreateDimension registers an empty dimension under name.
//
// Dimensions are ranked by creation: the first created dimension is the
// most significant digit of every normalized weight.
//
// Errors:
//   - ErrEmptyDimensionName if name == "".
//   - ErrDuplicateDimensionName if name is already registered.
//
// Complexity: O(1) amortized.
func (r *Registry) CreateDimension(name string) (*Dimension, error) {
	if name == "" {
		return nil, ErrEmptyDimensionName
	}
	if _, exists := r.dimensions[name]; exists {
		return nil, fmt.Errorf("dimension %q: %w", name, ErrDuplicateDimensionName)
	}
	d := &Dimension{
		name:     name,
		byID:     make(map[string]int),
		children: make(map[int][]int),
	}
	r.dimensions[name] = d
	r.order = append(r.order, name)

	return d, nil
}

// Dimension returns the dimension registered under name.
// Errors: ErrUnknownDimension if absent.
func (r *Registry) Dimension(name string) (*Dimension, error) {
	d, ok := r.dimensions[name]
	if !ok {
		return nil, fmt.Errorf("dimension %q: %w", name, ErrUnknownDimension)
	}

	return d, nil
}

// HasDimension reports whether name is registered.
func (r *Registry) HasDimension(name string) bool {
	_, ok := r.dimensions[name]
	return ok
}

// Dimensions returns all dimensions in priority (creation) order.
func (r *Registry) Dimensions() []*Dimension {
	out := make([]*Dimension, len(r.order))
	for i, name := range r.order {
		out[i] = r.dimensions[name]
	}

	return out
}

// Names returns all dimension names in priority (creation) order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)

	return out
}

// Len returns the number of registered dimensions.
func (r *Registry) Len() int { return len(r.order) }

// Lookup resolves a value by dimension name and identifier.
// Errors: ErrUnknownDimension or ErrUnknownValue.
func (r *Registry) Lookup(dimensionName, identifier string) (*Value, error) {
	d, err := r.Dimension(dimensionName)
	if err != nil {
		return nil, err
	}

	return d.Value(identifier)
}

// Owns reports whether v was created by a dimension of this registry.
func (r *Registry) Owns(v *Value) bool {
	if v == nil {
		return false
	}
	d, ok := r.dimensions[v.dimension]

	return ok && d.owns(v)
}

// MaxDepth returns the deepest value depth across all dimensions.
func (r *Registry) MaxDepth() int {
	deepest := 0
	for _, d := range r.dimensions {
		if d.maxDepth > deepest {
			deepest = d.maxDepth
		}
	}

	return deepest
}

// WeightNormalizationBase returns 1 + MaxDepth(), the radix of the
// positional encoding of weight vectors. Every weight component is at most
// MaxDepth(), so no digit can carry into the next position.
// An empty registry yields 1.
func (r *Registry) WeightNormalizationBase() int {
	return 1 + r.MaxDepth()
}
