// Package brighter adds the brighter_stars object type: native stars whose
// observer SED is scaled by a configured magnitude offset, delta_magnorm.
//
// A positive delta_magnorm dims the star, a negative one brightens it; the
// flux multiplier is 10^(-delta_magnorm/2.5).
package brighter

import (
	"math"
	"math/rand/v2"

	"github.com/litescript/brighter-stars/internal/render"
	"github.com/litescript/brighter-stars/internal/sed"
	"github.com/litescript/brighter-stars/internal/skycatalog"
)

// IDPrefix is prepended to the wrapped star's ID.
const IDPrefix = "brighter_star_"

// FluxScale converts a magnitude offset into a linear flux multiplier.
func FluxScale(deltaMagnorm float64) float64 {
	return math.Pow(10, -deltaMagnorm/2.5)
}

// Object is a star with its SED rescaled by the collection's delta_magnorm.
type Object struct {
	id           string
	ra           float64
	dec          float64
	star         *skycatalog.StarObject
	deltaMagnorm float64
	belongsTo    *Collection
	index        int
}

// NewObject wraps star as element index of parent.
func NewObject(star *skycatalog.StarObject, deltaMagnorm float64, parent *Collection, index int) *Object {
	return &Object{
		id:           IDPrefix + star.ID(),
		ra:           star.RA(),
		dec:          star.Dec(),
		star:         star,
		deltaMagnorm: deltaMagnorm,
		belongsTo:    parent,
		index:        index,
	}
}

func (o *Object) ID() string         { return o.id }
func (o *Object) RA() float64        { return o.ra }
func (o *Object) Dec() float64       { return o.dec }
func (o *Object) ObjectType() string { return ObjectType }

// Star returns the wrapped native star.
func (o *Object) Star() *skycatalog.StarObject { return o.star }

// DeltaMagnorm returns the magnitude offset applied to the star.
func (o *Object) DeltaMagnorm() float64 { return o.deltaMagnorm }

// FluxScale returns the multiplier applied to the star's SED.
func (o *Object) FluxScale() float64 { return FluxScale(o.deltaMagnorm) }

// BelongsTo returns the collection the object was drawn from.
func (o *Object) BelongsTo() *Collection { return o.belongsTo }

// Index returns the object's position within BelongsTo.
func (o *Object) Index() int { return o.index }

// GSObjectComponents returns a single point-source component. rng is unused.
func (o *Object) GSObjectComponents(gsparams map[string]any, _ *rand.Rand) (map[string]render.Profile, error) {
	return skycatalog.PointSourceComponents(gsparams)
}

// ObserverSEDComponent returns the wrapped star's SED scaled by FluxScale.
func (o *Object) ObserverSEDComponent(component string, mjd *float64) (*sed.SED, error) {
	if component != skycatalog.ComponentName {
		return nil, skycatalog.UnknownComponentError(component)
	}
	s, err := o.star.ObserverSEDComponent(component, mjd)
	if err != nil {
		return nil, err
	}
	return s.Scale(o.FluxScale()), nil
}
