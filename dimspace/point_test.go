package dimspace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/contentdim/dimension"
	"github.com/katalvlaran/contentdim/dimspace"
)

// fixture: language mul → en → en_US, de; market WW → CH.
func fixture(t *testing.T) *dimension.Registry {
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

func TestNewPoint_HashIsOrderIndependent(t *testing.T) {
	r := fixture(t)
	enUS, err := r.Lookup("language", "en_US")
	require.NoError(t, err)
	ch, err := r.Lookup("market", "CH")
	require.NoError(t, err)

	a, err := dimspace.NewPoint(map[string]*dimension.Value{"language": enUS, "market": ch})
	require.NoError(t, err)
	b, err := dimspace.FromIdentifiers(r, map[string]string{"market": "CH", "language": "en_US"})
	require.NoError(t, err)

	assert.NotEmpty(t, a.Hash())
	assert.Equal(t, a.Hash(), b.Hash())
	assert.True(t, a.Equal(b))
	assert.Equal(t, "language=en_US, market=CH", a.String())
	assert.Equal(t, []string{"language", "market"}, a.Dimensions())
}

func TestNewPoint_DistinctCoordinatesDistinctHashes(t *testing.T) {
	r := fixture(t)
	seen := make(map[string]string)
	for _, lang := range []string{"mul", "en", "en_US", "de"} {
		for _, market := range []string{"WW", "CH"} {
			p, err := dimspace.FromIdentifiers(r, map[string]string{"language": lang, "market": market})
			require.NoError(t, err)
			prev, dup := seen[p.Hash()]
			assert.False(t, dup, "hash collision between %s and %s", prev, p)
			seen[p.Hash()] = p.String()
		}
	}

	// a subset of coordinates is a different point
	onlyLang, err := dimspace.FromIdentifiers(r, map[string]string{"language": "mul"})
	require.NoError(t, err)
	_, dup := seen[onlyLang.Hash()]
	assert.False(t, dup)
}

func TestNewPoint_Errors(t *testing.T) {
	r := fixture(t)
	ch, err := r.Lookup("market", "CH")
	require.NoError(t, err)

	_, err = dimspace.NewPoint(map[string]*dimension.Value{"language": ch})
	assert.ErrorIs(t, err, dimspace.ErrCoordinateMismatch)

	_, err = dimspace.NewPoint(map[string]*dimension.Value{"language": nil})
	assert.ErrorIs(t, err, dimspace.ErrNilValue)

	_, err = dimspace.FromIdentifiers(r, map[string]string{"audience": "kids"})
	assert.ErrorIs(t, err, dimension.ErrUnknownDimension)

	_, err = dimspace.FromIdentifiers(r, map[string]string{"language": "fr"})
	assert.ErrorIs(t, err, dimension.ErrUnknownValue)
}

func TestPoint_IntrinsicWeightAndCopies(t *testing.T) {
	r := fixture(t)
	p, err := dimspace.FromIdentifiers(r, map[string]string{"language": "en_US", "market": "CH"})
	require.NoError(t, err)

	assert.Equal(t, dimspace.Weight{"language": 2, "market": 1}, p.IntrinsicWeight())
	assert.Equal(t, map[string]string{"language": "en_US", "market": "CH"}, p.Identifiers())

	coords := p.Coordinates()
	delete(coords, "language")
	_, ok := p.Value("language")
	assert.True(t, ok, "Coordinates must return a copy")
	assert.Equal(t, 2, p.Len())
}

func TestWeight_Helpers(t *testing.T) {
	w := dimspace.Weight{"b": -1, "a": -2, "c": 3}
	assert.Equal(t, []string{"a", "b"}, w.Negative())
	assert.Equal(t, 0, w.Total())
	assert.False(t, w.IsZero())
	assert.True(t, dimspace.Weight{"x": 0}.IsZero())

	c := w.Clone()
	c["c"] = 0
	assert.Equal(t, 3, w["c"])
}
