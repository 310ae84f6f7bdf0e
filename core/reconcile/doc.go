// Package reconcile merges a user's configured catalog with freshly discovered
// connector schema.
//
// Three catalogs take part in every merge:
//   - configured: the catalog the user last saved, with their stream configs
//   - previously discovered: the schema that configuration was built against
//   - newly discovered: the schema the connector reports now
//
// # Architecture
//
// The engine is made of three pieces composed in a single pass:
//
// 1. Matcher: pairs streams across catalogs by exact (namespace, name) identity.
// A stream without a namespace never matches one with an empty namespace, and
// renamed streams show up as one removal plus one addition.
//
// 2. Resolver: decides for each field whether the discovered or the configured
// value wins. Descriptors always come from the new discovery. A configured
// stream is kept when its descriptor did not change since the previous
// discovery, or when none of the reset triggers fire. Otherwise its
// configuration is reset to defaults. A source-defined primary key always wins.
//
// 3. Merger: validates the inputs, resolves every stream of the new discovery
// in order and drops streams the connector no longer exposes.
//
// The engine performs no I/O and holds no state, so it is safe for concurrent use.
// Inputs are never modified and the returned catalog shares no memory with them.
//
// # Usage Example
//
//	merged, err := reconcile.MergeCatalogWithConfiguration(configured, previous, discovered)
//	if errors.Is(err, catalog.ErrMalformedCatalog) {
//	    // reject the request
//	}
//
//	// With per-stream outcomes
//	plan, err := reconcile.MergeWithPlan(configured, previous, discovered)
//	for _, r := range plan.Results {
//	    fmt.Println(r.Identity, r.Outcome, r.Reasons)
//	}
//
// Diff reports the schema changes between two discoveries and flags the ones
// that break the configured cursor or primary key.
package reconcile
