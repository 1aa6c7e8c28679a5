package domain

import "time"

// Settings is the validated content of a rebind.yaml file.
type Settings struct {
	// ManifestPath is the absolute path of the universe manifest.
	ManifestPath string
	// ReloadablePackages are the package prefixes recompiled by the current session.
	ReloadablePackages []string
	// SkipReloadableSubtypes disables the in-memory pass of subtype lookups.
	SkipReloadableSubtypes bool
	Cache                  CacheSettings
}

// CacheSettings sizes the stable-scan cache.
type CacheSettings struct {
	Capacity           int
	NumShards          int
	TTL                time.Duration
	EvictionPercentage int
}

// DefaultCacheSettings returns the cache sizing used when rebind.yaml omits it.
func DefaultCacheSettings() CacheSettings {
	return CacheSettings{
		Capacity:           10000,
		NumShards:          64,
		TTL:                10 * time.Minute,
		EvictionPercentage: 10,
	}
}
