// Package skycatalog is the host side of the sky catalog: the contracts
// every object type satisfies, the registry that maps type names to
// loaders, and region queries over the native star source.
package skycatalog

import (
	"errors"
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"

	"github.com/litescript/brighter-stars/internal/render"
	"github.com/litescript/brighter-stars/internal/sed"
)

// ComponentName is the single light component of a point-like object.
const ComponentName = "this_object"

var (
	ErrUnknownComponent = errors.New("unknown SED component")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrUnknownType      = errors.New("unknown object type")
	ErrDuplicateType    = errors.New("object type already registered")
)

// Object is a single catalog entry as seen by consumers.
type Object interface {
	ID() string
	RA() float64
	Dec() float64
	ObjectType() string

	// GSObjectComponents returns the light profile of each component, keyed
	// by component name. gsparams, when non-nil, overrides accuracy settings.
	GSObjectComponents(gsparams map[string]any, rng *rand.Rand) (map[string]render.Profile, error)

	// ObserverSEDComponent returns the observer-frame SED of one component.
	// mjd is optional.
	ObserverSEDComponent(component string, mjd *float64) (*sed.SED, error)
}

// ObjectList is indexed access to a sequence of objects.
type ObjectList interface {
	Len() int
	At(i int) (Object, error)
}

// Collection is the per-type result of a region query.
type Collection interface {
	ObjectList

	// ObjectType is the registered type name of the collection.
	ObjectType() string

	// ObjectTypeUnique is the type shared by every element, or "" when the
	// collection is heterogeneous and callers must dispatch per object.
	ObjectTypeUnique() string

	// NativeColumns lists tabular columns the collection adds beyond the
	// generic Object interface.
	NativeColumns() []string
}

// ObjectSlice adapts a plain slice to ObjectList.
type ObjectSlice []Object

func (s ObjectSlice) Len() int { return len(s) }

func (s ObjectSlice) At(i int) (Object, error) {
	if i < 0 || i >= len(s) {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(s))
	}
	return s[i], nil
}

// UnknownComponentError builds the error returned for an unsupported component name.
func UnknownComponentError(component string) error {
	return fmt.Errorf("%w: %s", ErrUnknownComponent, component)
}

// ObserverSED sums the SEDs of every component of o.
func ObserverSED(o Object, mjd *float64) (*sed.SED, error) {
	components, err := o.GSObjectComponents(nil, nil)
	if err != nil {
		return nil, err
	}
	var total *sed.SED
	for _, name := range slices.Sorted(maps.Keys(components)) {
		s, err := o.ObserverSEDComponent(name, mjd)
		if err != nil {
			return nil, fmt.Errorf("%s component %s: %w", o.ID(), name, err)
		}
		if total == nil {
			total = s
			continue
		}
		if total, err = total.Add(s); err != nil {
			return nil, fmt.Errorf("%s component %s: %w", o.ID(), name, err)
		}
	}
	return total, nil
}
