// Package connection exposes catalog reconciliation over HTTP and keeps the
// state a refresh needs between runs.
//
// Configured catalogs live in the connection_catalogs table together with
// the ID of the discovery snapshot they were last merged against (the
// baseline). Discovery snapshots are JSON objects in the storage bucket at
// <prefix>/<connection>/<snapshot>.json. A refresh loads the stored catalog,
// the baseline and a new snapshot, merges them and can store the result
// with the new snapshot as the next baseline.
//
// # HTTP Endpoints
//
//   - POST /catalogs/merge : Stateless merge of three catalogs.
//   - POST /catalogs/diff : Stateless diff of two discoveries.
//   - GET /connections : Lists stored connections.
//   - GET, PUT /connections/:id/catalog : Reads or replaces the configured catalog.
//   - GET, POST /connections/:id/snapshots : Lists or uploads discovery snapshots.
//   - POST /connections/:id/refresh : Merges against a snapshot (supports ?snapshot= and ?apply=true).
package connection
