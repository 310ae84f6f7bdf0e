// Package config loads the application configuration.
//
// Values come from environment variables, optionally seeded from a .env file
// via godotenv. Every setting declares its default in a `default` struct tag.
// Environment names are the upper-cased section and key joined by an
// underscore, e.g. RECONCILE_CACHE_TTL_SECONDS.
//
// Sections:
//   - Server: port, API key and body limit
//   - Database: configuration store connection (mysql or sqlite)
//   - Storage: S3/MinIO credentials and the snapshot bucket
//   - Log: level and format
//   - Reconcile: snapshot prefix, cache TTL and retention
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
