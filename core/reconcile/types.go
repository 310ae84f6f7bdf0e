package reconcile

import "catalog-manager/core/catalog"

// MatchKind classifies how an identity pairs up across two catalogs.
type MatchKind string

const (
	// MatchMatched means the identity exists in both catalogs.
	MatchMatched MatchKind = "matched"
	// MatchAdded means the identity exists only in the second catalog.
	MatchAdded MatchKind = "added"
	// MatchRemoved means the identity exists only in the first catalog.
	MatchRemoved MatchKind = "removed"
)

// Match is one identity of the union of two catalogs.
type Match struct {
	// Identity is the (namespace, name) key.
	Identity catalog.Identity `json:"identity"`

	// Kind tells which side(s) the identity was found on.
	Kind MatchKind `json:"kind"`

	// A is the entry from the first catalog, nil when absent.
	A *catalog.StreamEntry `json:"-"`

	// B is the entry from the second catalog, nil when absent.
	B *catalog.StreamEntry `json:"-"`
}

// Outcome is what the merge did with one stream.
type Outcome string

const (
	// OutcomeKept means the configuration was carried over.
	OutcomeKept Outcome = "kept"
	// OutcomeReset means the configuration was reverted to defaults.
	OutcomeReset Outcome = "reset"
	// OutcomeAdded means the stream had no configuration and got defaults.
	OutcomeAdded Outcome = "added"
	// OutcomeRemoved means a configured stream is no longer discovered.
	OutcomeRemoved Outcome = "removed"
)

// StreamResult is the merge outcome for a single stream.
type StreamResult struct {
	// Identity is the stream key.
	Identity catalog.Identity `json:"identity"`

	// Outcome classifies the merge decision.
	Outcome Outcome `json:"outcome"`

	// Reasons lists reset triggers and pruned field references.
	Reasons []string `json:"reasons"`

	// Pruned counts hashed and selected field references dropped
	// because their path left the schema.
	Pruned int `json:"pruned"`

	// Entry is the merged entry. It is nil for removed streams.
	Entry *catalog.StreamEntry `json:"-"`
}

// ReconcilePlan contains the merged catalog and per-stream results.
type ReconcilePlan struct {
	// Catalog is the merged catalog in discovery order.
	Catalog *catalog.Catalog `json:"catalog"`

	// Results holds one entry per output stream in output order,
	// followed by removed configured streams.
	Results []StreamResult `json:"results"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a reconcile plan.
type PlanSummary struct {
	// TotalStreams is the number of streams in the merged catalog.
	TotalStreams int `json:"total_streams"`

	// Kept counts streams whose configuration survived.
	Kept int `json:"kept"`

	// Reset counts configured streams reverted to defaults.
	Reset int `json:"reset"`

	// Added counts streams without prior configuration.
	Added int `json:"added"`

	// Removed counts configured streams absent from discovery.
	Removed int `json:"removed"`

	// PrunedFields counts dropped hashed and selected field references.
	PrunedFields int `json:"pruned_fields"`
}

// HasChanges reports whether applying the plan would alter the configuration.
func (s PlanSummary) HasChanges() bool {
	return s.Reset > 0 || s.Added > 0 || s.Removed > 0 || s.PrunedFields > 0
}
