package brighter

import (
	"errors"
	"fmt"

	"github.com/litescript/brighter-stars/internal/config"
	"github.com/litescript/brighter-stars/internal/skycatalog"
)

// ObjectType is the registered type name and config section key.
const ObjectType = "brighter_stars"

// ErrNotStarObject is returned when the wrapped list holds something other than a native star.
var ErrNotStarObject = errors.New("expected StarObject")

// Settings is the object_types.brighter_stars config section.
type Settings struct {
	DeltaMagnorm float64 `mapstructure:"delta_magnorm"`
}

// Collection is a view over a native star list producing brighter_stars objects.
type Collection struct {
	objects      skycatalog.ObjectList
	deltaMagnorm float64
	skyCatalog   *skycatalog.SkyCatalog
	objectType   string
}

func init() {
	skycatalog.RegisterPlugin(ObjectType, Register)
}

// NewCollection wraps objects. Every element must be a *skycatalog.StarObject.
func NewCollection(objects skycatalog.ObjectList, deltaMagnorm float64, cat *skycatalog.SkyCatalog) *Collection {
	return &Collection{
		objects:      objects,
		deltaMagnorm: deltaMagnorm,
		skyCatalog:   cat,
		objectType:   ObjectType,
	}
}

func (c *Collection) ObjectType() string { return c.objectType }

// ObjectTypeUnique reports that every element is a brighter_stars object.
func (c *Collection) ObjectTypeUnique() string { return c.objectType }

// NativeColumns is empty: the collection adds no columns of its own.
func (c *Collection) NativeColumns() []string { return []string{} }

// DeltaMagnorm returns the offset applied to every object.
func (c *Collection) DeltaMagnorm() float64 { return c.deltaMagnorm }

// SkyCatalog returns the catalog the collection was loaded from.
func (c *Collection) SkyCatalog() *skycatalog.SkyCatalog { return c.skyCatalog }

// Len returns the length of the wrapped list.
func (c *Collection) Len() int { return c.objects.Len() }

// At returns a new Object wrapping element key. Objects are not cached.
func (c *Collection) At(key int) (skycatalog.Object, error) {
	obj, err := c.Get(key)
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// Get is At with the concrete return type.
func (c *Collection) Get(key int) (*Object, error) {
	obj, err := c.objects.At(key)
	if err != nil {
		return nil, err
	}
	star, ok := obj.(*skycatalog.StarObject)
	if !ok {
		return nil, fmt.Errorf("%w at index %d, got %T", ErrNotStarObject, key, obj)
	}
	return NewObject(star, c.deltaMagnorm, c, key), nil
}

// Register registers the brighter_stars type with cat. objectType is the
// config key that triggered registration; the type is always registered
// under ObjectType.
func Register(cat *skycatalog.SkyCatalog, objectType string) error {
	return cat.Registry().RegisterSourceType(skycatalog.SourceType{
		Name:        ObjectType,
		Description: "stars with SEDs rescaled by delta_magnorm",
		CustomLoad:  true,
		Load:        LoadCollection,
	})
}

// LoadCollection reads delta_magnorm from the brighter_stars config section
// and wraps the native stars of region. mjd and opts are accepted for the
// loader signature only.
func LoadCollection(region skycatalog.Region, cat *skycatalog.SkyCatalog, mjd *float64, opts map[string]any) (skycatalog.Collection, error) {
	section, err := cat.RawConfig().ObjectType(ObjectType)
	if err != nil {
		return nil, err
	}
	if err := config.RequireKeys(section, "delta_magnorm"); err != nil {
		return nil, fmt.Errorf("%s: %w", ObjectType, err)
	}
	var settings Settings
	if err := config.DecodeSection(section, &settings); err != nil {
		return nil, fmt.Errorf("%s: %w", ObjectType, err)
	}

	stars, err := cat.GetObjectTypeByRegion(region, skycatalog.StarType, nil)
	if err != nil {
		return nil, err
	}

	cat.Logger().Debug("%s: %d stars in %s, delta_magnorm=%g",
		ObjectType, stars.Len(), region, settings.DeltaMagnorm)

	return NewCollection(stars, settings.DeltaMagnorm, cat), nil
}
