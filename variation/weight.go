// File: weight.go
// Role: fallback weight vectors and their positional normalization.
//
// A weight vector is read as the digits of a base-B number, most
// significant dimension first (registry creation order), with
// B = WeightNormalizationBase(). Because every digit is below B, comparing
// normalized values compares the vectors lexicographically in priority
// order: a candidate closer in an earlier dimension always wins, whatever
// the later digits are.

package variation

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/contentdim/dimension"
	"github.com/katalvlaran/contentdim/dimspace"
)

// WeightNormalizationBase returns the radix used by NormalizeWeight:
// 1 + the deepest value depth of the registry, or 1 without dimensions.
func (g *Graph) WeightNormalizationBase() int {
	return g.registry.WeightNormalizationBase()
}

// CalculateFallbackWeight returns the per-dimension distance from variant
// down to fallback.
//
// For every dimension d of variant:
//   - d present in fallback: depth(variant[d]) - depth(fallback[d]);
//   - d absent from fallback: depth(variant[d]) (the fallback is treated as
//     sitting at the dimension's root).
//
// Dimensions only present in fallback are not scored. The result may hold
// negative components; ConnectSubgraphs rejects those.
// Complexity: O(k) for k variant coordinates.
func (g *Graph) CalculateFallbackWeight(variant, fallback *dimspace.Point) dimspace.Weight {
	w := make(dimspace.Weight, variant.Len())
	for _, name := range variant.Dimensions() {
		v, _ := variant.Value(name)
		if f, ok := fallback.Value(name); ok {
			w[name] = v.Depth() - f.Depth()
			continue
		}
		w[name] = v.Depth()
	}

	return w
}

// NormalizeWeight encodes w as Σ w[d_i]·B^(n-1-i) over the registry's
// dimensions d_0..d_{n-1} in creation order, using 0 for missing entries.
//
// Errors:
//   - dimension.ErrUnknownDimension if w names a dimension the registry lacks.
//   - ErrInvalidVariation if a component is negative.
//   - ErrWeightOutOfRange if a component is >= B, since it would carry into
//     the next digit and break the ordering.
//   - ErrWeightOverflow if the encoded value exceeds math.MaxInt64.
//
// Complexity: O(n) for n dimensions.
func (g *Graph) NormalizeWeight(w dimspace.Weight) (int64, error) {
	if err := g.checkWeightKeys(w); err != nil {
		return 0, err
	}
	base := int64(g.registry.WeightNormalizationBase())

	var total int64
	for _, name := range g.registry.Names() {
		digit := int64(w[name])
		switch {
		case digit < 0:
			return 0, fmt.Errorf("dimension %q weight %d: %w", name, digit, ErrInvalidVariation)
		case digit >= base:
			return 0, fmt.Errorf("dimension %q weight %d, base %d: %w", name, digit, base, ErrWeightOutOfRange)
		}
		// Horner step total = total*base + digit, guarded against overflow.
		if total > (math.MaxInt64-digit)/base {
			return 0, ErrWeightOverflow
		}
		total = total*base + digit
	}

	return total, nil
}

// checkWeightKeys rejects dimensions unknown to the registry; the first
// offending name in sorted order is reported.
func (g *Graph) checkWeightKeys(w dimspace.Weight) error {
	var unknown []string
	for name := range w {
		if !g.registry.HasDimension(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) == 0 {
		return nil
	}
	sort.Strings(unknown)

	return fmt.Errorf("weight dimension %q: %w", unknown[0], dimension.ErrUnknownDimension)
}
