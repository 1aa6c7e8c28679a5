package config

// Rebindfile represents the structure of the rebind.yaml settings file.
type Rebindfile struct {
	Version                string    `yaml:"version"`
	Manifest               string    `yaml:"manifest"`
	Reloadable             []string  `yaml:"reloadable"`
	SkipReloadableSubtypes bool      `yaml:"skipReloadableSubtypes"`
	Cache                  *CacheDTO `yaml:"cache"`
}

// CacheDTO sizes the stable-scan cache. Omitted fields take their defaults.
type CacheDTO struct {
	Capacity           int    `yaml:"capacity"`
	Shards             int    `yaml:"shards"`
	TTL                string `yaml:"ttl"`
	EvictionPercentage int    `yaml:"evictionPercentage"`
}
