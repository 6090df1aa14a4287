package brighter

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/litescript/brighter-stars/internal/config"
	"github.com/litescript/brighter-stars/internal/render"
	"github.com/litescript/brighter-stars/internal/sed"
	"github.com/litescript/brighter-stars/internal/skycatalog"
)

// galaxy is a non-star object used to trip the element type check.
type galaxy struct{}

func (galaxy) ID() string         { return "g1" }
func (galaxy) RA() float64        { return 0 }
func (galaxy) Dec() float64       { return 0 }
func (galaxy) ObjectType() string { return "galaxy" }

func (galaxy) GSObjectComponents(map[string]any, *rand.Rand) (map[string]render.Profile, error) {
	return nil, nil
}

func (galaxy) ObserverSEDComponent(string, *float64) (*sed.SED, error) {
	return nil, nil
}

func starList(n int) skycatalog.ObjectSlice {
	out := make(skycatalog.ObjectSlice, n)
	for i := range out {
		out[i] = skycatalog.NewStarObject(string(rune('a'+i%26)), float64(i), 0, 10+float64(i))
	}
	return out
}

func newCatalog(t *testing.T, yaml string, stars skycatalog.StarList) *skycatalog.SkyCatalog {
	t.Helper()
	raw, err := config.LoadReader(strings.NewReader(yaml))
	require.NoError(t, err)
	cat, err := skycatalog.New(raw, stars, nil)
	require.NoError(t, err)
	return cat
}

func TestNewCollection_TypeTags(t *testing.T) {
	c := NewCollection(starList(2), 1, nil)

	assert.Equal(t, "brighter_stars", c.ObjectType())
	assert.Equal(t, "brighter_stars", c.ObjectTypeUnique())
	assert.Empty(t, c.NativeColumns())
	assert.NotNil(t, c.NativeColumns())
	assert.Equal(t, 1.0, c.DeltaMagnorm())
}

func TestCollection_LenMatchesWrappedList(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 200).Draw(t, "n")
		c := NewCollection(starList(n), 0, nil)
		if c.Len() != n {
			t.Fatalf("Len() = %d, want %d", c.Len(), n)
		}
	})
}

func TestCollection_At(t *testing.T) {
	list := starList(3)
	c := NewCollection(list, 2, nil)

	obj, err := c.At(1)
	require.NoError(t, err)

	b, ok := obj.(*Object)
	require.True(t, ok)
	assert.Equal(t, "brighter_star_b", b.ID())
	assert.Same(t, c, b.BelongsTo())
	assert.Equal(t, 1, b.Index())
	assert.Equal(t, 2.0, b.DeltaMagnorm())
	assert.Same(t, list[1], b.Star())
}

func TestCollection_AtIsNotMemoized(t *testing.T) {
	c := NewCollection(starList(1), 1.25, nil)

	first, err := c.Get(0)
	require.NoError(t, err)
	second, err := c.Get(0)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, first.ID(), second.ID())
	assert.Equal(t, first.RA(), second.RA())
	assert.Equal(t, first.Dec(), second.Dec())

	s1, err := first.ObserverSEDComponent("this_object", nil)
	require.NoError(t, err)
	s2, err := second.ObserverSEDComponent("this_object", nil)
	require.NoError(t, err)
	assert.Equal(t, s1.Flux(), s2.Flux())
}

func TestCollection_AtRejectsNonStar(t *testing.T) {
	list := skycatalog.ObjectSlice{
		skycatalog.NewStarObject("a", 0, 0, 1),
		galaxy{},
	}
	c := NewCollection(list, 0, nil)

	_, err := c.At(0)
	require.NoError(t, err)

	obj, err := c.At(1)
	assert.Nil(t, obj)
	assert.ErrorIs(t, err, ErrNotStarObject)
}

func TestCollection_AtOutOfRange(t *testing.T) {
	c := NewCollection(starList(2), 0, nil)

	_, err := c.At(2)
	assert.ErrorIs(t, err, skycatalog.ErrIndexOutOfRange)
}

func TestRegister(t *testing.T) {
	cat := newCatalog(t, "{}", nil)
	require.NoError(t, Register(cat, "brighter_stars"))

	st, ok := cat.Registry().Lookup("brighter_stars")
	require.True(t, ok)
	assert.True(t, st.CustomLoad)
	assert.NotNil(t, st.Load)

	// A second registration on the same catalog is refused by the host.
	assert.ErrorIs(t, Register(cat, "brighter_stars"), skycatalog.ErrDuplicateType)
}

func TestRegister_DiscoveredFromConfig(t *testing.T) {
	cat := newCatalog(t, "object_types:\n  brighter_stars:\n    delta_magnorm: 0.5\n", nil)

	_, ok := cat.Registry().Lookup(ObjectType)
	assert.True(t, ok)
	assert.Contains(t, skycatalog.PluginNames(), ObjectType)
}

func TestLoadCollection_EndToEnd(t *testing.T) {
	stars := skycatalog.StarList{
		skycatalog.NewStarObject("s1", 10.0, 0, 12),
		skycatalog.NewStarObject("s2", 10.5, 0.5, 13),
		skycatalog.NewStarObject("s3", 9.5, -0.5, 14),
		skycatalog.NewStarObject("far", 180, 45, 11),
	}
	cat := newCatalog(t, "object_types:\n  brighter_stars:\n    delta_magnorm: 1.0\n", stars)
	region := skycatalog.Disk{RA: 10, Dec: 0, Radius: 1}

	coll, err := cat.GetObjectTypeByRegion(region, ObjectType, nil)
	require.NoError(t, err)
	require.Equal(t, 3, coll.Len())

	bc, ok := coll.(*Collection)
	require.True(t, ok)
	assert.Same(t, cat, bc.SkyCatalog())
	assert.Equal(t, 1.0, bc.DeltaMagnorm())

	obj, err := coll.At(0)
	require.NoError(t, err)
	assert.Equal(t, "brighter_star_s1", obj.ID())

	base, err := stars[0].ObserverSEDComponent("this_object", nil)
	require.NoError(t, err)
	got, err := obj.ObserverSEDComponent("this_object", nil)
	require.NoError(t, err)

	ratio := got.Flux()[0] / base.Flux()[0]
	assert.InDelta(t, math.Pow(10, -0.4), ratio, 1e-12)
	assert.InDelta(t, 0.398, ratio, 1e-3)
}

func TestLoadCollection_EmptyRegion(t *testing.T) {
	cat := newCatalog(t, "object_types:\n  brighter_stars:\n    delta_magnorm: -2\n", skycatalog.BuiltinStars())

	coll, err := LoadCollection(skycatalog.Disk{RA: 0, Dec: 0, Radius: 0}, cat, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, coll.Len())
}

func TestLoadCollection_IntegerDelta(t *testing.T) {
	cat := newCatalog(t, "object_types:\n  brighter_stars:\n    delta_magnorm: 2\n", skycatalog.BuiltinStars())

	coll, err := LoadCollection(skycatalog.AllSky{}, cat, nil, map[string]any{"ignored": true})
	require.NoError(t, err)
	assert.Equal(t, 2.0, coll.(*Collection).DeltaMagnorm())
	assert.Equal(t, len(skycatalog.BuiltinStars()), coll.Len())
}

func TestLoadCollection_MissingConfig(t *testing.T) {
	cat := newCatalog(t, "{}", nil)

	_, err := LoadCollection(skycatalog.AllSky{}, cat, nil, nil)
	assert.ErrorIs(t, err, config.ErrMissingSection)
}

func TestLoadCollection_MissingKey(t *testing.T) {
	cat := newCatalog(t, "object_types:\n  brighter_stars:\n    other: 1\n", nil)

	_, err := LoadCollection(skycatalog.AllSky{}, cat, nil, nil)
	assert.ErrorIs(t, err, config.ErrMissingKey)
}

func TestLoadCollection_MalformedDelta(t *testing.T) {
	cat := newCatalog(t, "object_types:\n  brighter_stars:\n    delta_magnorm: bright\n", nil)

	_, err := LoadCollection(skycatalog.AllSky{}, cat, nil, nil)
	assert.Error(t, err)
}
