package dimspace

import "sort"

// Weight maps a dimension name to a non-negative distance in that dimension.
// Dimensions missing from a Weight count as 0.
type Weight map[string]int

// Clone returns an independent copy of w.
func (w Weight) Clone() Weight {
	out := make(Weight, len(w))
	for k, v := range w {
		out[k] = v
	}

	return out
}

// Total returns the sum of all components.
func (w Weight) Total() int {
	sum := 0
	for _, v := range w {
		sum += v
	}

	return sum
}

// Negative returns the sorted dimension names whose component is below zero.
func (w Weight) Negative() []string {
	var out []string
	for k, v := range w {
		if v < 0 {
			out = append(out, k)
		}
	}
	sort.Strings(out)

	return out
}

// IsZero reports whether every component is 0.
func (w Weight) IsZero() bool {
	for _, v := range w {
		if v != 0 {
			return false
		}
	}

	return true
}
