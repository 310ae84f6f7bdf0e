package reconcile

import "catalog-manager/core/catalog"

// descriptor builds a flat stream supporting both sync modes.
func descriptor(name string, namespace *string, fields ...catalog.SchemaField) *catalog.StreamDescriptor {
	return &catalog.StreamDescriptor{
		Name:               name,
		Namespace:          namespace,
		JSONSchema:         catalog.FieldsToSchema(fields...),
		SupportedSyncModes: []catalog.SyncMode{catalog.FullRefresh, catalog.Incremental},
		DefaultCursorField: catalog.FieldPath{},
	}
}

func discoveredEntry(d *catalog.StreamDescriptor) catalog.StreamEntry {
	return catalog.StreamEntry{Stream: d}
}

func configuredEntry(d *catalog.StreamDescriptor, cfg *catalog.StreamConfig) catalog.StreamEntry {
	return catalog.StreamEntry{Stream: d, Config: cfg}
}

func catalogOf(entries ...catalog.StreamEntry) *catalog.Catalog {
	return &catalog.Catalog{Streams: entries}
}

// userConfig is a customised configuration that differs from every default.
func userConfig() *catalog.StreamConfig {
	return &catalog.StreamConfig{
		SyncMode:            catalog.Incremental,
		DestinationSyncMode: catalog.AppendDedup,
		CursorField:         catalog.FieldPath{"field1"},
		PrimaryKey:          []catalog.FieldPath{{"field1"}},
		AliasName:           "custom_alias",
		Selected:            true,
		Suggested:           true,
		SelectedFields:      []catalog.SelectedField{},
		HashedFields:        []catalog.SelectedField{},
	}
}

func paths(ps ...string) []catalog.FieldPath {
	out := make([]catalog.FieldPath, 0, len(ps))
	for _, p := range ps {
		out = append(out, catalog.FieldPath{p})
	}
	return out
}

func fields(ps ...string) []catalog.SelectedField {
	out := make([]catalog.SelectedField, 0, len(ps))
	for _, p := range ps {
		out = append(out, catalog.SelectedField{FieldPath: catalog.FieldPath{p}})
	}
	return out
}

func identities(c *catalog.Catalog) []catalog.Identity {
	ids := make([]catalog.Identity, 0, c.Len())
	for _, e := range c.Streams {
		ids = append(ids, e.Identity())
	}
	return ids
}
