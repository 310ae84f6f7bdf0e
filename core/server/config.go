package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// BodyLimitMB caps request bodies. Catalogs of large sources run to megabytes.
	BodyLimitMB int `mapstructure:"body_limit_mb" default:"8"`
}

// BodyLimit returns the request body limit in bytes, falling back to 8MB.
func (c Config) BodyLimit() int {
	if c.BodyLimitMB <= 0 {
		return 8 * 1024 * 1024
	}
	return c.BodyLimitMB * 1024 * 1024
}

// AuthEnabled reports whether requests must carry the API key.
func (c Config) AuthEnabled() bool {
	return c.ApiKey != ""
}
