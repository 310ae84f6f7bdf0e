// Package catalog defines the stream catalog model shared by the reconcile engine,
// the connection feature and the CLI.
//
// A Catalog is an ordered list of StreamEntry values. Each entry pairs a
// StreamDescriptor (schema-owned, always reflects what the connector reported)
// with a StreamConfig (user-owned, survives schema changes).
//
// # Identity
//
// Streams are identified by (namespace, name). The namespace is optional and an
// absent namespace is a distinct identity from an explicit empty namespace:
//
//	catalog.NewIdentity("users", nil)            // "users"
//	catalog.NewIdentity("users", catalog.Ptr("")) // ".users"
//
// # Wire Format
//
// Catalogs are encoded as snake_case JSON (json_schema, supported_sync_modes,
// source_defined_primary_key, ...). Use Decode/Encode or ReadFile/WriteFile.
//
// # Validation
//
// Validate checks the structural invariants (every entry has a descriptor with a
// name, configured catalogs carry a config per entry, identities are unique) and
// reports every problem at once through a *ValidationError.
package catalog
