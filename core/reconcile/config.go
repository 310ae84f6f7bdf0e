package reconcile

import "time"

// Config holds settings for store-backed reconciliation.
type Config struct {
	// SnapshotPrefix is the object prefix under which discovery snapshots are stored.
	SnapshotPrefix string `mapstructure:"snapshot_prefix" default:"catalogs"`
	// CacheTTLSeconds is how long decoded snapshots stay cached. Zero disables the cache.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
	// KeepSnapshots is how many snapshots per connection survive a prune.
	KeepSnapshots int `mapstructure:"keep_snapshots" default:"10"`
}

// CacheTTL returns the snapshot cache lifetime.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
