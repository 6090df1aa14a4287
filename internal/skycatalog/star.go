package skycatalog

import (
	"fmt"
	"math/rand/v2"

	"github.com/litescript/brighter-stars/internal/astro"
	"github.com/litescript/brighter-stars/internal/render"
	"github.com/litescript/brighter-stars/internal/sed"
)

// StarType is the registered name of the native star type.
const StarType = "star"

// StarObject is a native star record.
type StarObject struct {
	id      string
	ra      float64
	dec     float64
	magnorm float64
}

// NewStarObject creates a star with a flat AB spectrum normalised to magnorm.
func NewStarObject(id string, ra, dec, magnorm float64) *StarObject {
	return &StarObject{id: id, ra: ra, dec: dec, magnorm: magnorm}
}

func (s *StarObject) ID() string         { return s.id }
func (s *StarObject) RA() float64        { return s.ra }
func (s *StarObject) Dec() float64       { return s.dec }
func (s *StarObject) ObjectType() string { return StarType }

// Magnorm is the normalisation magnitude of the star's spectrum.
func (s *StarObject) Magnorm() float64 { return s.magnorm }

func (s *StarObject) GSObjectComponents(gsparams map[string]any, _ *rand.Rand) (map[string]render.Profile, error) {
	return PointSourceComponents(gsparams)
}

func (s *StarObject) ObserverSEDComponent(component string, _ *float64) (*sed.SED, error) {
	if component != ComponentName {
		return nil, UnknownComponentError(component)
	}
	return sed.FlatAB(s.magnorm), nil
}

// PointSourceComponents is the component map of any point-like object.
func PointSourceComponents(gsparams map[string]any) (map[string]render.Profile, error) {
	var params *render.GSParams
	if gsparams != nil {
		p, err := render.NewGSParams(gsparams)
		if err != nil {
			return nil, err
		}
		params = &p
	}
	return map[string]render.Profile{ComponentName: render.DeltaFunction(params)}, nil
}

// StarCollection is the native collection of stars within a region.
type StarCollection struct {
	stars []*StarObject
}

// NewStarCollection wraps stars without copying.
func NewStarCollection(stars []*StarObject) *StarCollection {
	return &StarCollection{stars: stars}
}

func (c *StarCollection) Len() int { return len(c.stars) }

func (c *StarCollection) At(i int) (Object, error) {
	if i < 0 || i >= len(c.stars) {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(c.stars))
	}
	return c.stars[i], nil
}

func (c *StarCollection) ObjectType() string       { return StarType }
func (c *StarCollection) ObjectTypeUnique() string { return StarType }

func (c *StarCollection) NativeColumns() []string {
	return []string{"id", "ra", "dec", "magnorm"}
}

// StarSource supplies the full native star table.
type StarSource interface {
	Stars() []*StarObject
}

// StarList is a fixed StarSource.
type StarList []*StarObject

func (l StarList) Stars() []*StarObject { return l }

// BuiltinStars returns the bright star table as a StarSource, using each
// star's visual magnitude as its magnorm.
func BuiltinStars() StarList {
	cat := astro.DefaultStarCatalog()
	stars := make(StarList, len(cat.Stars))
	for i, s := range cat.Stars {
		stars[i] = NewStarObject(s.ID(), s.RAdeg, s.DecDeg, s.Mag)
	}
	return stars
}
