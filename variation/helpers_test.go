// SPDX-License-Identifier: MIT
// Package variation_test contains fixtures shared by the variation tests.
package variation_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/contentdim/dimension"
	"github.com/katalvlaran/contentdim/dimspace"
)

// Dimension names used by the priority fixtures.
const (
	dimPrimary   = "primary"
	dimSecondary = "secondary"
	dimTertiary  = "tertiary"
)

// chains is a registry whose dimensions are linear value chains; chains.values[d][k]
// is the value of depth k in dimension d.
type chains struct {
	reg    *dimension.Registry
	values map[string][]*dimension.Value
}

// newChains creates the dimensions in the given order, each a chain of the given depth.
func newChains(t *testing.T, depth int, names ...string) *chains {
	t.Helper()
	c := &chains{reg: dimension.NewRegistry(), values: make(map[string][]*dimension.Value)}
	for _, name := range names {
		d, err := c.reg.CreateDimension(name)
		require.NoError(t, err)
		var parent *dimension.Value
		for k := 0; k <= depth; k++ {
			v, err := d.CreateValue(fmt.Sprintf("%s%d", name, k), parent)
			require.NoError(t, err)
			c.values[name] = append(c.values[name], v)
			parent = v
		}
	}

	return c
}

// Point returns the point whose coordinate in each dimension has the given depth.
func (c *chains) Point(t *testing.T, depths map[string]int) *dimspace.Point {
	t.Helper()
	coordinates := make(map[string]*dimension.Value, len(depths))
	for name, k := range depths {
		coordinates[name] = c.values[name][k]
	}
	p, err := dimspace.NewPoint(coordinates)
	require.NoError(t, err)

	return p
}

// pst is shorthand for a three-dimensional depth triple.
func pst(p, s, t int) map[string]int {
	return map[string]int{dimPrimary: p, dimSecondary: s, dimTertiary: t}
}

// newLanguageMarket builds language: mul → {en → en_US, de}; market: WW → CH.
func newLanguageMarket(t *testing.T) *dimension.Registry {
	t.Helper()
	r := dimension.NewRegistry()

	lang, err := r.CreateDimension("language")
	require.NoError(t, err)
	mul, err := lang.CreateValue("mul", nil)
	require.NoError(t, err)
	en, err := lang.CreateValue("en", mul)
	require.NoError(t, err)
	_, err = lang.CreateValue("en_US", en)
	require.NoError(t, err)
	_, err = lang.CreateValue("de", mul)
	require.NoError(t, err)

	market, err := r.CreateDimension("market")
	require.NoError(t, err)
	ww, err := market.CreateValue("WW", nil)
	require.NoError(t, err)
	_, err = market.CreateValue("CH", ww)
	require.NoError(t, err)

	return r
}

// lm resolves a language/market point in r.
func lm(t *testing.T, r *dimension.Registry, language, market string) *dimspace.Point {
	t.Helper()
	p, err := dimspace.FromIdentifiers(r, map[string]string{"language": language, "market": market})
	require.NoError(t, err)

	return p
}

// pointStrings renders points for readable assertions.
func pointStrings(points []*dimspace.Point) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.String()
	}

	return out
}
