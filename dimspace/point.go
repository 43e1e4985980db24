// Package dimspace defines dimension-space points: immutable combinations of
// one dimension.Value per dimension, identified by a stable hash.
package dimspace

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/contentdim/dimension"
)

var (
	// ErrNilValue indicates a coordinate without value.
	ErrNilValue = errors.New("dimspace: coordinate value is nil")

	// ErrCoordinateMismatch indicates a value stored under another dimension's key.
	ErrCoordinateMismatch = errors.New("dimspace: value does not belong to the keyed dimension")
)

// hashNamespace scopes point hashes so they never collide with other
// name-based UUIDs derived from the same bytes.
var hashNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("contentdim.dimspace.point"))

// Point is an immutable dimension-space point.
//
// Coordinates reference registry-owned values; a Point never copies them.
type Point struct {
	coordinates map[string]*dimension.Value
	names       []string // sorted dimension names
	hash        string
}

// NewPoint validates coordinates and computes the identity hash.
//
// Errors:
//   - ErrNilValue if any value is nil.
//   - ErrCoordinateMismatch if a value's dimension differs from its key.
//
// Complexity: O(k log k) for k coordinates.
func NewPoint(coordinates map[string]*dimension.Value) (*Point, error) {
	p := &Point{
		coordinates: make(map[string]*dimension.Value, len(coordinates)),
		names:       make([]string, 0, len(coordinates)),
	}
	for name, v := range coordinates {
		if v == nil {
			return nil, fmt.Errorf("dimension %q: %w", name, ErrNilValue)
		}
		if v.Dimension() != name {
			return nil, fmt.Errorf("dimension %q: value %s: %w", name, v, ErrCoordinateMismatch)
		}
		p.coordinates[name] = v
		p.names = append(p.names, name)
	}
	sort.Strings(p.names)
	p.hash = identityHash(p.names, p.coordinates)

	return p, nil
}

// FromIdentifiers resolves dimension name → value identifier pairs through
// reg and builds the Point. Unknown names or identifiers surface the
// registry's ErrUnknownDimension / ErrUnknownValue.
func FromIdentifiers(reg *dimension.Registry, identifiers map[string]string) (*Point, error) {
	coordinates := make(map[string]*dimension.Value, len(identifiers))
	for name, id := range identifiers {
		v, err := reg.Lookup(name, id)
		if err != nil {
			return nil, err
		}
		coordinates[name] = v
	}

	return NewPoint(coordinates)
}

// identityHash serializes the sorted (dimension, identifier) pairs as JSON,
// which keeps separators unambiguous, and derives a name-based UUID from it.
func identityHash(names []string, coordinates map[string]*dimension.Value) string {
	pairs := make([][2]string, len(names))
	for i, name := range names {
		pairs[i] = [2]string{name, coordinates[name].Identifier()}
	}
	// Marshalling [][2]string cannot fail.
	canonical, _ := json.Marshal(pairs)

	return uuid.NewSHA1(hashNamespace, canonical).String()
}

// Hash returns the identity hash. Equal coordinate sets always share a hash.
func (p *Point) Hash() string { return p.hash }

// Dimensions returns the coordinate dimension names, sorted.
func (p *Point) Dimensions() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)

	return out
}

// Len returns the number of coordinates.
func (p *Point) Len() int { return len(p.names) }

// Value returns the coordinate for dimension name.
func (p *Point) Value(name string) (*dimension.Value, bool) {
	v, ok := p.coordinates[name]
	return v, ok
}

// Coordinates returns a copy of the coordinate mapping.
func (p *Point) Coordinates() map[string]*dimension.Value {
	out := make(map[string]*dimension.Value, len(p.coordinates))
	for k, v := range p.coordinates {
		out[k] = v
	}

	return out
}

// Identifiers returns dimension name → value identifier.
func (p *Point) Identifiers() map[string]string {
	out := make(map[string]string, len(p.coordinates))
	for k, v := range p.coordinates {
		out[k] = v.Identifier()
	}

	return out
}

// IntrinsicWeight returns the depth of every coordinate value, the measure
// of how specific the point is on its own.
func (p *Point) IntrinsicWeight() Weight {
	w := make(Weight, len(p.coordinates))
	for k, v := range p.coordinates {
		w[k] = v.Depth()
	}

	return w
}

// Equal reports whether p and o carry identical coordinates.
func (p *Point) Equal(o *Point) bool {
	if p == nil || o == nil {
		return p == o
	}

	return p.hash == o.hash
}

// String renders "dim=value, ..." in sorted dimension order.
func (p *Point) String() string {
	var sb strings.Builder
	for i, name := range p.names {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(p.coordinates[name].Identifier())
	}

	return sb.String()
}
