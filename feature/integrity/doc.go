// Package integrity checks the infrastructure the catalog service depends on.
//
// # Checks Provided
//
//   - Structure: The snapshot bucket and its prefix exist (fixable).
//   - Server: The connection_catalogs table matches the gorm model (columns, explicit types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/server : Runs server schema check.
package integrity
