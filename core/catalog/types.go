package catalog

import "strings"

// SyncMode is the read mode of a source stream.
type SyncMode string

const (
	FullRefresh SyncMode = "full_refresh"
	Incremental SyncMode = "incremental"
)

// DestinationSyncMode controls how records land in the destination.
type DestinationSyncMode string

const (
	Append         DestinationSyncMode = "append"
	Overwrite      DestinationSyncMode = "overwrite"
	AppendDedup    DestinationSyncMode = "append_dedup"
	OverwriteDedup DestinationSyncMode = "overwrite_dedup"
)

// IsDedup reports whether the destination deduplicates on the primary key.
func (m DestinationSyncMode) IsDedup() bool {
	return m == AppendDedup || m == OverwriteDedup
}

// FieldPath is an ordered path into a json-schema, e.g. ["address", "city"].
type FieldPath []string

// String returns the dotted representation of the path.
func (p FieldPath) String() string {
	return strings.Join(p, ".")
}

// Key returns a value usable as a map key. Unlike String it cannot collide
// for field names containing dots.
func (p FieldPath) Key() string {
	return strings.Join(p, "\x1f")
}

// Equal reports whether both paths have the same segments in the same order.
func (p FieldPath) Equal(other FieldPath) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// SelectedField references a field of the stream schema. It is used for both
// projections (selected fields) and pseudonymization (hashed fields).
type SelectedField struct {
	FieldPath FieldPath `json:"field_path"`
}

// StreamDescriptor describes a stream as reported by discovery.
// It is never edited by users.
type StreamDescriptor struct {
	Name                    string      `json:"name" validate:"required"`
	Namespace               *string     `json:"namespace,omitempty"`
	JSONSchema              JSONSchema  `json:"json_schema"`
	SupportedSyncModes      []SyncMode  `json:"supported_sync_modes" validate:"dive,oneof=full_refresh incremental" hash:"set"`
	DefaultCursorField      FieldPath   `json:"default_cursor_field"`
	SourceDefinedCursor     bool        `json:"source_defined_cursor"`
	SourceDefinedPrimaryKey []FieldPath `json:"source_defined_primary_key"`
	IsFileBased             bool        `json:"is_file_based"`
}

// Identity returns the (namespace, name) identity of the stream.
func (d *StreamDescriptor) Identity() Identity {
	return NewIdentity(d.Name, d.Namespace)
}

// Supports reports whether the stream can be read with the given sync mode.
func (d *StreamDescriptor) Supports(mode SyncMode) bool {
	for _, m := range d.SupportedSyncModes {
		if m == mode {
			return true
		}
	}
	return false
}

// HasSourceDefinedPrimaryKey reports whether the connector dictates the key.
func (d *StreamDescriptor) HasSourceDefinedPrimaryKey() bool {
	return len(d.SourceDefinedPrimaryKey) > 0
}

// StreamConfig holds the user's sync settings for one stream.
type StreamConfig struct {
	SyncMode              SyncMode            `json:"sync_mode" validate:"omitempty,oneof=full_refresh incremental"`
	DestinationSyncMode   DestinationSyncMode `json:"destination_sync_mode" validate:"omitempty,oneof=append overwrite append_dedup overwrite_dedup"`
	CursorField           FieldPath           `json:"cursor_field"`
	PrimaryKey            []FieldPath         `json:"primary_key"`
	AliasName             string              `json:"alias_name"`
	DestinationObjectName *string             `json:"destination_object_name,omitempty"`
	Selected              bool                `json:"selected"`
	Suggested             bool                `json:"suggested"`
	SelectedFields        []SelectedField     `json:"selected_fields"`
	HashedFields          []SelectedField     `json:"hashed_fields"`
	IncludeFiles          bool                `json:"include_files"`
}

// StreamEntry pairs a descriptor with its configuration.
type StreamEntry struct {
	Stream *StreamDescriptor `json:"stream"`
	Config *StreamConfig     `json:"config,omitempty"`
}

// Identity returns the identity of the entry's descriptor.
// The entry must carry a descriptor.
func (e StreamEntry) Identity() Identity {
	return e.Stream.Identity()
}

// Catalog is an ordered sequence of stream entries.
type Catalog struct {
	Streams []StreamEntry `json:"streams"`
}

// Len returns the number of streams, treating a nil catalog as empty.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Streams)
}

// Ptr returns a pointer to v. Handy for optional namespaces and object names.
func Ptr[T any](v T) *T {
	return &v
}
