// Package config loads the raw sky catalog configuration.
//
// The configuration is kept as a generic mapping so that object-type plugins
// can read their own sections without the host knowing their shape.
// Values come from skycatalog.yaml, BRIGHTER_STARS_* env vars and defaults.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to environment overrides, e.g.
	// BRIGHTER_STARS_OBJECT_TYPES_BRIGHTER_STARS_DELTA_MAGNORM.
	EnvPrefix = "BRIGHTER_STARS"

	// DefaultName is the config file searched for when no path is given.
	DefaultName = "skycatalog"

	KeyObjectTypes = "object_types"
	KeyLogLevel    = "log_level"
	KeyCatalogName = "catalog_name"
)

var (
	ErrMissingSection = errors.New("config: missing section")
	ErrMissingKey     = errors.New("config: missing key")
)

// Raw is the full configuration tree with lower-cased keys.
type Raw map[string]any

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyCatalogName, "bright_stars")
	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from path. When path is empty, ./skycatalog.yaml
// and $HOME/skycatalog.yaml are tried; a missing default file is not an error.
func Load(path string) (Raw, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return settings(v), nil
	}

	v.SetConfigName(DefaultName)
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return settings(v), nil
}

// LoadReader reads YAML configuration from r, applying the same defaults as Load.
func LoadReader(r io.Reader) (Raw, error) {
	v := newViper()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return settings(v), nil
}

// settings snapshots v. The native star type is always present so that
// plugins wrapping it have something to load.
func settings(v *viper.Viper) Raw {
	raw := Raw(v.AllSettings())
	types, ok := raw[KeyObjectTypes].(map[string]any)
	if !ok {
		types = map[string]any{}
		raw[KeyObjectTypes] = types
	}
	// AllSettings drops sections with no keys ("name: {}" or "name:"),
	// but an empty section still declares the type.
	for name, section := range v.GetStringMap(KeyObjectTypes) {
		if _, ok := types[name]; ok {
			continue
		}
		if m, ok := section.(map[string]any); ok {
			types[name] = m
		} else {
			types[name] = map[string]any{}
		}
	}
	if _, ok := types["star"]; !ok {
		types["star"] = map[string]any{}
	}
	return raw
}

// LogLevel returns the configured log level name.
func (r Raw) LogLevel() string {
	s, _ := r[KeyLogLevel].(string)
	return s
}

// CatalogName returns the configured catalog name.
func (r Raw) CatalogName() string {
	s, _ := r[KeyCatalogName].(string)
	return s
}

// ObjectTypes returns the object_types section, or nil when absent.
func (r Raw) ObjectTypes() map[string]any {
	m, _ := r[KeyObjectTypes].(map[string]any)
	return m
}

// ObjectTypeNames returns the configured object type names, sorted.
func (r Raw) ObjectTypeNames() []string {
	types := r.ObjectTypes()
	names := make([]string, 0, len(types))
	for name := range types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ObjectType returns a copy of the object_types.<name> section.
func (r Raw) ObjectType(name string) (map[string]any, error) {
	raw, ok := r.ObjectTypes()[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrMissingSection, KeyObjectTypes, name)
	}
	section, ok := raw.(map[string]any)
	if !ok {
		// "name:" with no body parses as nil
		if raw == nil {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("config: %s.%s is %T, not a mapping", KeyObjectTypes, name, raw)
	}
	out := make(map[string]any, len(section))
	for k, v := range section {
		out[k] = v
	}
	return out, nil
}

// RequireKeys reports ErrMissingKey for the first key absent from section.
func RequireKeys(section map[string]any, keys ...string) error {
	for _, k := range keys {
		if _, ok := section[k]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingKey, k)
		}
	}
	return nil
}

// DecodeSection decodes a config section into out, a pointer to a struct
// with mapstructure tags. Scalar strings are converted where possible.
func DecodeSection(section map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(section)
}
