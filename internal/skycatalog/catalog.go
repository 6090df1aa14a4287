package skycatalog

import (
	"fmt"

	"github.com/litescript/brighter-stars/internal/config"
	"github.com/litescript/brighter-stars/internal/logging"
)

// SkyCatalog is the catalog context handed to plugins: the raw configuration,
// the type registry and the native star source.
type SkyCatalog struct {
	raw      config.Raw
	registry *Registry
	stars    StarSource
	logger   *logging.Logger
}

// New builds a catalog over stars. The native star type is registered first;
// then every object type named in the configuration that has a discoverable
// plugin gets its registration hook called once.
func New(raw config.Raw, stars StarSource, logger *logging.Logger) (*SkyCatalog, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	cat := &SkyCatalog{
		raw:      raw,
		registry: NewRegistry(),
		stars:    stars,
		logger:   logger.With("skycatalog"),
	}

	if err := cat.registry.RegisterSourceType(SourceType{
		Name:        StarType,
		Description: "native point-source stars",
	}); err != nil {
		return nil, err
	}

	for _, name := range raw.ObjectTypeNames() {
		if _, ok := cat.registry.Lookup(name); ok {
			continue
		}
		hook, ok := lookupPlugin(name)
		if !ok {
			cat.logger.Warn("object type %s has no plugin; ignoring", name)
			continue
		}
		if err := hook(cat, name); err != nil {
			return nil, fmt.Errorf("register object type %s: %w", name, err)
		}
		cat.logger.Debug("registered object type %s", name)
	}

	return cat, nil
}

// RawConfig returns the configuration the catalog was built from.
func (c *SkyCatalog) RawConfig() config.Raw { return c.raw }

// Registry returns the catalog's type registry.
func (c *SkyCatalog) Registry() *Registry { return c.registry }

// Logger returns the catalog logger for use by plugins.
func (c *SkyCatalog) Logger() *logging.Logger { return c.logger }

// GetObjectTypeByRegion returns the collection of objectType within region.
func (c *SkyCatalog) GetObjectTypeByRegion(region Region, objectType string, mjd *float64) (Collection, error) {
	st, ok := c.registry.Lookup(objectType)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, objectType)
	}
	if st.CustomLoad {
		c.logger.Debug("custom load of %s in %s", objectType, region)
		return st.Load(region, c, mjd, nil)
	}
	return c.loadNative(region, objectType)
}

// GetObjectsByRegion returns one collection per object type. With no types
// given, every configured type that is registered is queried.
func (c *SkyCatalog) GetObjectsByRegion(region Region, mjd *float64, types ...string) ([]Collection, error) {
	if len(types) == 0 {
		for _, name := range c.raw.ObjectTypeNames() {
			if _, ok := c.registry.Lookup(name); ok {
				types = append(types, name)
			}
		}
	}

	out := make([]Collection, 0, len(types))
	for _, name := range types {
		coll, err := c.GetObjectTypeByRegion(region, name, mjd)
		if err != nil {
			return nil, err
		}
		out = append(out, coll)
	}
	return out, nil
}

func (c *SkyCatalog) loadNative(region Region, objectType string) (Collection, error) {
	if objectType != StarType || c.stars == nil {
		return nil, fmt.Errorf("%w: no native source for %s", ErrUnknownType, objectType)
	}
	var selected []*StarObject
	for _, s := range c.stars.Stars() {
		if region.Contains(s.RA(), s.Dec()) {
			selected = append(selected, s)
		}
	}
	c.logger.Debug("native load of %s in %s: %d objects", objectType, region, len(selected))
	return NewStarCollection(selected), nil
}
