// SPDX-License-Identifier: MIT
// Package: contentdim/dimension
//
// types.go — Value, Dimension, Registry and the sentinel errors of the
// intra-dimensional graph.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Implementations attach context with %w, never by redefining messages.

package dimension

import "errors"

// Sentinel errors for dimension configuration.
var (
	// ErrEmptyDimensionName indicates CreateDimension was called with "".
	ErrEmptyDimensionName = errors.New("dimension: dimension name is empty")

	// ErrDuplicateDimensionName indicates a dimension with the same name already exists.
	ErrDuplicateDimensionName = errors.New("dimension: duplicate dimension name")

	// ErrUnknownDimension indicates a lookup referenced a dimension that is not registered.
	ErrUnknownDimension = errors.New("dimension: unknown dimension")

	// ErrEmptyValueIdentifier indicates CreateValue was called with "".
	ErrEmptyValueIdentifier = errors.New("dimension: value identifier is empty")

	// ErrDuplicateValueIdentifier indicates the identifier is already taken in this dimension.
	ErrDuplicateValueIdentifier = errors.New("dimension: duplicate value identifier")

	// ErrUnknownValue indicates a lookup referenced a value that does not exist in the dimension.
	ErrUnknownValue = errors.New("dimension: unknown value")

	// ErrForeignParent indicates the parent value belongs to another dimension.
	ErrForeignParent = errors.New("dimension: parent belongs to another dimension")
)

// rootParent marks a value without generalization.
const rootParent = -1

// Value is one node of a dimension's value forest.
//
// A Value never points at its parent directly: it stores the parent's
// position in the owning Dimension's arena. Specializations are derived
// from the dimension's children index.
type Value struct {
	dimension  string // owning dimension name
	identifier string // unique within the dimension
	index      int    // position in Dimension.values
	parent     int    // index of the generalization or rootParent
	depth      int    // 0 for roots, parent depth + 1 otherwise
}

// Identifier returns the opaque value identifier, e.g. "en_US".
func (v *Value) Identifier() string { return v.identifier }

// Dimension returns the name of the dimension that owns v.
func (v *Value) Dimension() string { return v.dimension }

// Depth returns the distance from v to its root value.
func (v *Value) Depth() int { return v.depth }

// IsRoot reports whether v has no generalization.
func (v *Value) IsRoot() bool { return v.parent == rootParent }

// String implements fmt.Stringer as "dimension:identifier".
func (v *Value) String() string { return v.dimension + ":" + v.identifier }

// Dimension owns the value forest of one named axis.
type Dimension struct {
	name     string
	values   []*Value       // arena in creation order
	byID     map[string]int // identifier → arena index
	children map[int][]int  // parent index → child indices, creation order
	roots    []int          // root indices, creation order
	maxDepth int
}

// Registry is the intra-dimensional graph: it owns every Dimension and
// records the order in which they were created. That order is the global
// fallback priority (first created is most significant).
type Registry struct {
	dimensions map[string]*Dimension
	order      []string
}

// NewRegistry returns an empty Registry.
// Complexity: O(1).
func NewRegistry() *Registry {
	return &Registry{dimensions: make(map[string]*Dimension)}
}
