package skycatalog

import (
	"fmt"
	"slices"
	"sync"
)

// LoaderFunc builds the collection of one object type for a region.
// mjd is optional; opts carries loader-specific keyword arguments.
type LoaderFunc func(region Region, cat *SkyCatalog, mjd *float64, opts map[string]any) (Collection, error)

// SourceType describes a registered object type.
type SourceType struct {
	Name        string
	Description string

	// CustomLoad routes region queries to Load instead of the native loader.
	CustomLoad bool
	Load       LoaderFunc
}

// Registry maps object type names to their source types.
type Registry struct {
	mu    sync.RWMutex
	types map[string]SourceType
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]SourceType)}
}

// RegisterSourceType adds st. Names must be unique and custom types must
// supply a loader.
func (r *Registry) RegisterSourceType(st SourceType) error {
	if st.Name == "" {
		return fmt.Errorf("register source type: empty name")
	}
	if st.CustomLoad && st.Load == nil {
		return fmt.Errorf("register source type %s: custom load without loader", st.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.types[st.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateType, st.Name)
	}
	r.types[st.Name] = st
	return nil
}

// Lookup returns the source type registered under name.
func (r *Registry) Lookup(name string) (SourceType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.types[name]
	return st, ok
}

// Names returns every registered type name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// RegisterFunc is a plugin hook that registers its object type with a catalog.
// objectType is the config key that triggered the hook.
type RegisterFunc func(cat *SkyCatalog, objectType string) error

var (
	pluginsMu sync.RWMutex
	plugins   = make(map[string]RegisterFunc)
)

// RegisterPlugin makes an object type plugin discoverable under name.
// It is meant to be called from init and panics on duplicates or a nil hook.
func RegisterPlugin(name string, fn RegisterFunc) {
	pluginsMu.Lock()
	defer pluginsMu.Unlock()
	if fn == nil {
		panic("skycatalog: RegisterPlugin hook is nil")
	}
	if _, dup := plugins[name]; dup {
		panic("skycatalog: RegisterPlugin called twice for " + name)
	}
	plugins[name] = fn
}

// PluginNames returns the names of all discoverable plugins, sorted.
func PluginNames() []string {
	pluginsMu.RLock()
	defer pluginsMu.RUnlock()
	names := make([]string, 0, len(plugins))
	for name := range plugins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func lookupPlugin(name string) (RegisterFunc, bool) {
	pluginsMu.RLock()
	defer pluginsMu.RUnlock()
	fn, ok := plugins[name]
	return fn, ok
}
