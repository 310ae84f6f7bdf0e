package catalog

// Clone returns a deep copy of the catalog. A nil catalog yields an empty one.
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{Streams: make([]StreamEntry, 0, c.Len())}
	if c == nil {
		return out
	}
	for _, entry := range c.Streams {
		out.Streams = append(out.Streams, entry.Clone())
	}
	return out
}

// Clone returns a deep copy of the entry.
func (e StreamEntry) Clone() StreamEntry {
	return StreamEntry{
		Stream: e.Stream.Clone(),
		Config: e.Config.Clone(),
	}
}

// Clone returns a deep copy of the descriptor. Nil and empty values are kept
// exactly as they are so a clone compares equal to its source.
func (d *StreamDescriptor) Clone() *StreamDescriptor {
	if d == nil {
		return nil
	}
	out := *d
	if d.Namespace != nil {
		out.Namespace = Ptr(*d.Namespace)
	}
	out.JSONSchema = d.JSONSchema.Clone()
	if d.SupportedSyncModes != nil {
		out.SupportedSyncModes = append([]SyncMode{}, d.SupportedSyncModes...)
	}
	out.DefaultCursorField = clonePath(d.DefaultCursorField)
	out.SourceDefinedPrimaryKey = clonePaths(d.SourceDefinedPrimaryKey)
	return &out
}

// Clone returns a deep copy of the config. Nil slices become empty slices so
// merged configurations always serialize lists as [].
func (c *StreamConfig) Clone() *StreamConfig {
	if c == nil {
		return nil
	}
	out := *c
	if c.DestinationObjectName != nil {
		out.DestinationObjectName = Ptr(*c.DestinationObjectName)
	}
	out.CursorField = orEmptyPath(clonePath(c.CursorField))
	out.PrimaryKey = orEmptyPaths(clonePaths(c.PrimaryKey))
	out.SelectedFields = orEmptyFields(cloneFields(c.SelectedFields))
	out.HashedFields = orEmptyFields(cloneFields(c.HashedFields))
	return &out
}

// ClonePaths deep copies a list of paths, normalising nil to empty.
func ClonePaths(paths []FieldPath) []FieldPath {
	return orEmptyPaths(clonePaths(paths))
}

func clonePath(p FieldPath) FieldPath {
	if p == nil {
		return nil
	}
	return append(FieldPath{}, p...)
}

func clonePaths(paths []FieldPath) []FieldPath {
	if paths == nil {
		return nil
	}
	out := make([]FieldPath, len(paths))
	for i, p := range paths {
		out[i] = clonePath(p)
	}
	return out
}

func cloneFields(fields []SelectedField) []SelectedField {
	if fields == nil {
		return nil
	}
	out := make([]SelectedField, len(fields))
	for i, f := range fields {
		out[i] = SelectedField{FieldPath: clonePath(f.FieldPath)}
	}
	return out
}

func orEmptyPath(p FieldPath) FieldPath {
	if p == nil {
		return FieldPath{}
	}
	return p
}

func orEmptyPaths(p []FieldPath) []FieldPath {
	if p == nil {
		return []FieldPath{}
	}
	return p
}

func orEmptyFields(f []SelectedField) []SelectedField {
	if f == nil {
		return []SelectedField{}
	}
	return f
}
