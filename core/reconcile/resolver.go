package reconcile

import (
	"fmt"

	"catalog-manager/core/catalog"
)

// Reset reasons reported in StreamResult.Reasons.
const (
	ReasonNoBaseline        = "no previously discovered stream to confirm stability"
	ReasonSyncModeDropped   = "sync mode %s is no longer supported"
	ReasonSelectionEmptied  = "none of the selected fields remain in the schema"
	ReasonHashedFieldPruned = "hashed field %s is no longer in the schema"
	ReasonSelectedFieldGone = "selected field %s is no longer in the schema"
)

// resolveStream produces the merged entry for one identity of the new
// discovery. configured and previous may be nil; discovered may not.
// None of the inputs are modified or aliased by the result.
func resolveStream(configured, previous, discovered *catalog.StreamEntry) StreamResult {
	descriptor := discovered.Stream.Clone()
	result := StreamResult{
		Identity: descriptor.Identity(),
		Reasons:  []string{},
	}

	var cfg *catalog.StreamConfig
	switch {
	case configured == nil:
		cfg = defaultConfig(discovered)
		result.Outcome = OutcomeAdded

	case previous != nil && sameShape(previous.Stream, discovered.Stream):
		cfg = configured.Config.Clone()
		result.Outcome = OutcomeKept

	default:
		if reasons := resetReasons(configured.Config, previous, descriptor); len(reasons) > 0 {
			cfg = defaultConfig(discovered)
			cfg.DestinationObjectName = cloneString(configured.Config.DestinationObjectName)
			result.Outcome = OutcomeReset
			result.Reasons = reasons
			break
		}
		cfg = configured.Config.Clone()
		result.Outcome = OutcomeKept
		result.Pruned = pruneFields(cfg, descriptor.JSONSchema, &result.Reasons)
	}

	applyPrimaryKeyRule(cfg, descriptor)

	result.Entry = &catalog.StreamEntry{Stream: descriptor, Config: cfg}
	return result
}

// resetReasons evaluates the reset triggers of a configured stream whose
// stability against the previous discovery could not be confirmed. A cursor
// that left the schema is not a trigger; Diff flags it as breaking instead.
func resetReasons(cfg *catalog.StreamConfig, previous *catalog.StreamEntry, discovered *catalog.StreamDescriptor) []string {
	var reasons []string

	if previous == nil {
		reasons = append(reasons, ReasonNoBaseline)
	}

	if cfg.SyncMode != "" && !discovered.Supports(cfg.SyncMode) {
		reasons = append(reasons, fmt.Sprintf(ReasonSyncModeDropped, cfg.SyncMode))
	}

	if len(cfg.SelectedFields) > 0 {
		remaining := 0
		for _, f := range cfg.SelectedFields {
			if catalog.HasField(discovered.JSONSchema, f.FieldPath) {
				remaining++
			}
		}
		if remaining == 0 {
			reasons = append(reasons, ReasonSelectionEmptied)
		}
	}

	return reasons
}

// pruneFields drops hashed and selected field references whose path left the
// schema. It returns how many references were removed.
func pruneFields(cfg *catalog.StreamConfig, schema catalog.JSONSchema, reasons *[]string) int {
	pruned := 0

	keep := func(fields []catalog.SelectedField, format string) []catalog.SelectedField {
		out := fields[:0]
		for _, f := range fields {
			if catalog.HasField(schema, f.FieldPath) {
				out = append(out, f)
				continue
			}
			pruned++
			*reasons = append(*reasons, fmt.Sprintf(format, f.FieldPath))
		}
		return out
	}

	cfg.HashedFields = keep(cfg.HashedFields, ReasonHashedFieldPruned)
	cfg.SelectedFields = keep(cfg.SelectedFields, ReasonSelectedFieldGone)
	return pruned
}

// applyPrimaryKeyRule lets a source-defined primary key override the configured one.
func applyPrimaryKeyRule(cfg *catalog.StreamConfig, descriptor *catalog.StreamDescriptor) {
	if descriptor.HasSourceDefinedPrimaryKey() {
		cfg.PrimaryKey = catalog.ClonePaths(descriptor.SourceDefinedPrimaryKey)
	}
}

// defaultConfig is the configuration of a stream nobody has configured yet.
func defaultConfig(discovered *catalog.StreamEntry) *catalog.StreamConfig {
	includeFiles := false
	if discovered.Config != nil {
		includeFiles = discovered.Config.IncludeFiles
	}
	return &catalog.StreamConfig{
		SyncMode:            catalog.FullRefresh,
		DestinationSyncMode: catalog.Overwrite,
		CursorField:         catalog.FieldPath{},
		PrimaryKey:          []catalog.FieldPath{},
		AliasName:           discovered.Stream.Name,
		Selected:            false,
		Suggested:           false,
		SelectedFields:      []catalog.SelectedField{},
		HashedFields:        []catalog.SelectedField{},
		IncludeFiles:        includeFiles,
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	return catalog.Ptr(*s)
}
