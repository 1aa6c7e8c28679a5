// Package config provides the settings loader for rebind.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.trai.ch/rebind/internal/core/domain"
	"go.trai.ch/rebind/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the settings file looked up when Load is given a directory.
	FileName = "rebind.yaml"
	// SkipReloadableSubtypesEnv forces the reloadable subtype escape hatch when true.
	SkipReloadableSubtypesEnv = "REBIND_SKIP_RELOADABLE_SUBTYPES"

	supportedVersion = "1"
)

// Loader implements ports.SettingsLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads and validates the settings at path. A directory is resolved to its rebind.yaml.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	path, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file Rebindfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	if err := file.Validate(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidSettings.Error()), "path", path)
	}

	cache, err := file.Cache.toDomain()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidSettings.Error()), "path", path)
	}

	manifest := file.Manifest
	if !filepath.IsAbs(manifest) {
		manifest = filepath.Join(filepath.Dir(path), manifest)
	}

	settings := &domain.Settings{
		ManifestPath:           filepath.Clean(manifest),
		ReloadablePackages:     normalizePrefixes(file.Reloadable),
		SkipReloadableSubtypes: file.SkipReloadableSubtypes,
		Cache:                  cache,
	}
	l.applyEnv(settings)

	return settings, nil
}

func resolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve config path"), "path", path)
	}
	if info, err := os.Stat(abs); err == nil && info.IsDir() {
		abs = filepath.Join(abs, FileName)
	}
	return abs, nil
}

func (l *Loader) applyEnv(s *domain.Settings) {
	raw, ok := os.LookupEnv(SkipReloadableSubtypesEnv)
	if !ok || raw == "" {
		return
	}
	skip, err := strconv.ParseBool(raw)
	if err != nil {
		l.Logger.Warn(fmt.Sprintf("ignoring %s=%q: not a boolean", SkipReloadableSubtypesEnv, raw))
		return
	}
	s.SkipReloadableSubtypes = skip
}

// Validate checks the file against the supported schema.
func (f Rebindfile) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Version, validation.Required, validation.In(supportedVersion)),
		validation.Field(&f.Manifest, validation.Required),
		validation.Field(&f.Reloadable, validation.Each(validation.Required)),
		validation.Field(&f.Cache),
	)
}

// Validate checks the cache sizing. Zero values mean "use the default".
func (c CacheDTO) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Capacity, validation.Min(0)),
		validation.Field(&c.Shards, validation.Min(0)),
		validation.Field(&c.EvictionPercentage, validation.Min(0), validation.Max(100)),
		validation.Field(&c.TTL, validation.By(isDuration)),
	)
}

func isDuration(value any) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return validation.NewError("validation_is_duration", "must be a duration such as 10m")
	}
	if d <= 0 {
		return validation.NewError("validation_positive_duration", "must be positive")
	}
	return nil
}

func (c *CacheDTO) toDomain() (domain.CacheSettings, error) {
	out := domain.DefaultCacheSettings()
	if c == nil {
		return out, nil
	}
	if c.Capacity > 0 {
		out.Capacity = c.Capacity
	}
	if c.Shards > 0 {
		out.NumShards = c.Shards
	}
	if c.EvictionPercentage > 0 {
		out.EvictionPercentage = c.EvictionPercentage
	}
	if c.TTL != "" {
		ttl, err := time.ParseDuration(c.TTL)
		if err != nil {
			return domain.CacheSettings{}, zerr.With(zerr.Wrap(err, "invalid cache ttl"), "ttl", c.TTL)
		}
		out.TTL = ttl
	}
	return out, nil
}

// normalizePrefixes trims blanks and drops duplicates, keeping the first occurrence.
func normalizePrefixes(prefixes []string) []string {
	seen := make(map[string]bool, len(prefixes))
	out := make([]string, 0, len(prefixes))
	for _, p := range prefixes {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}
