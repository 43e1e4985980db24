// File: dimension.go
// Role: Value lifecycle and hierarchy queries inside one Dimension.
// Determinism:
//   - Values(), RootValues() and Specializations() return creation order.
//   - Ancestors() walks parent links from nearest to root.

package dimension

import "fmt"

// Name returns the dimension name.
func (d *Dimension) Name() string { return d.name }

// MaxDepth returns the depth of the deepest value, 0 for an empty dimension.
func (d *Dimension) MaxDepth() int { return d.maxDepth }

// Len returns the number of values in the dimension.
func (d *Dimension) Len() int { return len(d.values) }

// CreateValue adds a value to the dimension.
//
// parent == nil creates a root value with depth 0; otherwise the value
// becomes a specialization of parent with depth parent.Depth()+1.
// The parent must have been created by this dimension, so the parent chain
// can never form a cycle.
//
// Errors:
//   - ErrEmptyValueIdentifier if identifier == "".
//   - ErrDuplicateValueIdentifier if identifier already exists here.
//   - ErrForeignParent if parent was created by another dimension.
//
// Complexity: O(1) amortized.
func (d *Dimension) CreateValue(identifier string, parent *Value) (*Value, error) {
	if identifier == "" {
		return nil, fmt.Errorf("dimension %q: %w", d.name, ErrEmptyValueIdentifier)
	}
	if _, exists := d.byID[identifier]; exists {
		return nil, fmt.Errorf("dimension %q: value %q: %w", d.name, identifier, ErrDuplicateValueIdentifier)
	}

	v := &Value{
		dimension:  d.name,
		identifier: identifier,
		index:      len(d.values),
		parent:     rootParent,
	}
	if parent != nil {
		if !d.owns(parent) {
			return nil, fmt.Errorf("dimension %q: parent %s: %w", d.name, parent, ErrForeignParent)
		}
		v.parent = parent.index
		v.depth = parent.depth + 1
	}

	d.values = append(d.values, v)
	d.byID[identifier] = v.index
	if v.parent == rootParent {
		d.roots = append(d.roots, v.index)
	} else {
		d.children[v.parent] = append(d.children[v.parent], v.index)
	}
	if v.depth > d.maxDepth {
		d.maxDepth = v.depth
	}

	return v, nil
}

// Value returns the value with the given identifier.
// Errors: ErrUnknownValue if absent.
func (d *Dimension) Value(identifier string) (*Value, error) {
	i, ok := d.byID[identifier]
	if !ok {
		return nil, fmt.Errorf("dimension %q: value %q: %w", d.name, identifier, ErrUnknownValue)
	}

	return d.values[i], nil
}

// Values returns every value in creation order.
func (d *Dimension) Values() []*Value {
	out := make([]*Value, len(d.values))
	copy(out, d.values)

	return out
}

// RootValues returns the values without generalization, in creation order.
func (d *Dimension) RootValues() []*Value {
	return d.collect(d.roots)
}

// Specializations returns the direct children of v in creation order.
// A value that does not belong to d has no specializations here.
func (d *Dimension) Specializations(v *Value) []*Value {
	if !d.owns(v) {
		return nil
	}

	return d.collect(d.children[v.index])
}

// Generalization returns the parent of v, or nil for roots and foreign values.
func (d *Dimension) Generalization(v *Value) *Value {
	if !d.owns(v) || v.parent == rootParent {
		return nil
	}

	return d.values[v.parent]
}

// Ancestors returns the generalizations of v ordered from the direct parent
// up to the root. The result has exactly v.Depth() elements.
// Complexity: O(depth).
func (d *Dimension) Ancestors(v *Value) []*Value {
	if !d.owns(v) {
		return nil
	}
	out := make([]*Value, 0, v.depth)
	for p := v.parent; p != rootParent; p = d.values[p].parent {
		out = append(out, d.values[p])
	}

	return out
}

// IsGeneralizationOf reports whether general equals specific or is one of
// its ancestors. Values of different dimensions are never related.
// Complexity: O(depth(specific) - depth(general)).
func (d *Dimension) IsGeneralizationOf(general, specific *Value) bool {
	if !d.owns(general) || !d.owns(specific) || general.depth > specific.depth {
		return false
	}
	i := specific.index
	for steps := specific.depth - general.depth; steps > 0; steps-- {
		i = d.values[i].parent
	}

	return i == general.index
}

// owns reports whether v is an arena member of d (pointer identity).
func (d *Dimension) owns(v *Value) bool {
	return v != nil && v.dimension == d.name && v.index < len(d.values) && d.values[v.index] == v
}

func (d *Dimension) collect(indices []int) []*Value {
	out := make([]*Value, len(indices))
	for i, idx := range indices {
		out[i] = d.values[idx]
	}

	return out
}
