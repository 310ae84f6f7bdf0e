package reconcile

import (
	"reflect"
	"sort"

	"catalog-manager/core/catalog"
)

// StreamTransformType is the kind of change a stream went through.
type StreamTransformType string

const (
	AddStream    StreamTransformType = "add_stream"
	RemoveStream StreamTransformType = "remove_stream"
	UpdateStream StreamTransformType = "update_stream"
)

// FieldTransformType is the kind of change a field went through.
type FieldTransformType string

const (
	AddField          FieldTransformType = "add_field"
	RemoveField       FieldTransformType = "remove_field"
	UpdateFieldSchema FieldTransformType = "update_field_schema"
)

// AttributeTransformType is the kind of change a stream attribute went through.
type AttributeTransformType string

const UpdatePrimaryKey AttributeTransformType = "update_primary_key"

// CatalogDiff lists the changes between two discoveries of the same source.
type CatalogDiff struct {
	Transforms []StreamTransform `json:"transforms"`
}

// StreamTransform describes one added, removed or updated stream.
type StreamTransform struct {
	Type     StreamTransformType    `json:"type"`
	Identity catalog.Identity       `json:"identity"`
	Update   *UpdateStreamTransform `json:"update,omitempty"`
}

// UpdateStreamTransform holds the field and attribute changes of an updated stream.
type UpdateStreamTransform struct {
	FieldTransforms     []FieldTransform           `json:"field_transforms"`
	AttributeTransforms []StreamAttributeTransform `json:"attribute_transforms"`
}

// FieldTransform is a change to one field of the schema.
type FieldTransform struct {
	Type      FieldTransformType `json:"type"`
	FieldPath catalog.FieldPath  `json:"field_path"`
	Breaking  bool               `json:"breaking"`
	OldSchema catalog.JSONSchema `json:"old_schema,omitempty"`
	NewSchema catalog.JSONSchema `json:"new_schema,omitempty"`
}

// StreamAttributeTransform is a change to a stream-level attribute.
type StreamAttributeTransform struct {
	Type          AttributeTransformType `json:"type"`
	OldPrimaryKey []catalog.FieldPath    `json:"old_primary_key"`
	NewPrimaryKey []catalog.FieldPath    `json:"new_primary_key"`
	Breaking      bool                   `json:"breaking"`
}

// Breaking reports whether any change can break the configured sync.
func (d *CatalogDiff) Breaking() bool {
	for _, t := range d.Transforms {
		if t.Update == nil {
			continue
		}
		for _, f := range t.Update.FieldTransforms {
			if f.Breaking {
				return true
			}
		}
		for _, a := range t.Update.AttributeTransforms {
			if a.Breaking {
				return true
			}
		}
	}
	return false
}

// IsEmpty reports whether the two discoveries are equivalent.
func (d *CatalogDiff) IsEmpty() bool {
	return len(d.Transforms) == 0
}

// Diff compares two discoveries. The configured catalog is optional and is
// used to decide which changes break the user's configuration.
func Diff(previous, discovered, configured *catalog.Catalog) (*CatalogDiff, error) {
	if err := validateInputs(configured, previous, discovered); err != nil {
		return nil, err
	}

	cfgIndex, err := Index(configured)
	if err != nil {
		return nil, err
	}
	matches, err := MatchCatalogs(previous, discovered)
	if err != nil {
		return nil, err
	}

	diff := &CatalogDiff{Transforms: []StreamTransform{}}
	for _, m := range matches {
		switch m.Kind {
		case MatchAdded:
			diff.Transforms = append(diff.Transforms, StreamTransform{Type: AddStream, Identity: m.Identity})
		case MatchRemoved:
			diff.Transforms = append(diff.Transforms, StreamTransform{Type: RemoveStream, Identity: m.Identity})
		case MatchMatched:
			var cfg *catalog.StreamConfig
			if entry := cfgIndex.Get(m.Identity); entry != nil {
				cfg = entry.Config
			}
			if update := diffStream(m.A.Stream, m.B.Stream, cfg); update != nil {
				diff.Transforms = append(diff.Transforms, StreamTransform{
					Type:     UpdateStream,
					Identity: m.Identity,
					Update:   update,
				})
			}
		}
	}
	return diff, nil
}

// diffStream returns nil when the two descriptors have no reportable change.
func diffStream(prev, next *catalog.StreamDescriptor, cfg *catalog.StreamConfig) *UpdateStreamTransform {
	update := &UpdateStreamTransform{
		FieldTransforms:     diffFields(prev.JSONSchema, next.JSONSchema, cfg),
		AttributeTransforms: []StreamAttributeTransform{},
	}

	if !samePaths(prev.SourceDefinedPrimaryKey, next.SourceDefinedPrimaryKey) {
		update.AttributeTransforms = append(update.AttributeTransforms, StreamAttributeTransform{
			Type:          UpdatePrimaryKey,
			OldPrimaryKey: catalog.ClonePaths(prev.SourceDefinedPrimaryKey),
			NewPrimaryKey: catalog.ClonePaths(next.SourceDefinedPrimaryKey),
			Breaking: cfg != nil && cfg.DestinationSyncMode.IsDedup() &&
				!samePathSet(prev.SourceDefinedPrimaryKey, next.SourceDefinedPrimaryKey),
		})
	}

	if len(update.FieldTransforms) == 0 && len(update.AttributeTransforms) == 0 {
		return nil
	}
	return update
}

func diffFields(prev, next catalog.JSONSchema, cfg *catalog.StreamConfig) []FieldTransform {
	oldFields := fieldsByKey(prev)
	newFields := fieldsByKey(next)
	transforms := []FieldTransform{}

	for key, nf := range newFields {
		of, existed := oldFields[key]
		switch {
		case !existed:
			transforms = append(transforms, FieldTransform{
				Type:      AddField,
				FieldPath: nf.Path,
				NewSchema: nf.Schema.Clone(),
			})
		case !reflect.DeepEqual(ownAttributes(of.Schema), ownAttributes(nf.Schema)):
			transforms = append(transforms, FieldTransform{
				Type:      UpdateFieldSchema,
				FieldPath: nf.Path,
				OldSchema: of.Schema.Clone(),
				NewSchema: nf.Schema.Clone(),
			})
		}
	}

	for key, of := range oldFields {
		if _, kept := newFields[key]; kept {
			continue
		}
		transforms = append(transforms, FieldTransform{
			Type:      RemoveField,
			FieldPath: of.Path,
			Breaking:  usedByConfig(cfg, of.Path),
			OldSchema: of.Schema.Clone(),
		})
	}

	sort.Slice(transforms, func(i, j int) bool {
		return transforms[i].FieldPath.String() < transforms[j].FieldPath.String()
	})
	return transforms
}

// usedByConfig reports whether removing path breaks the configured cursor or primary key.
func usedByConfig(cfg *catalog.StreamConfig, path catalog.FieldPath) bool {
	if cfg == nil {
		return false
	}
	if cfg.SyncMode == catalog.Incremental && cfg.CursorField.Equal(path) {
		return true
	}
	for _, pk := range cfg.PrimaryKey {
		if pk.Equal(path) {
			return true
		}
	}
	return false
}

func fieldsByKey(schema catalog.JSONSchema) map[string]catalog.SchemaField {
	fields := catalog.SchemaFields(schema)
	out := make(map[string]catalog.SchemaField, len(fields))
	for _, f := range fields {
		out[f.Path.Key()] = f
	}
	return out
}

// ownAttributes strips nested properties so a change deep in an object is
// reported on the nested field only.
func ownAttributes(schema catalog.JSONSchema) map[string]any {
	out := make(map[string]any, len(schema))
	for k, v := range schema {
		if k == "properties" {
			continue
		}
		out[k] = v
	}
	return out
}

func samePaths(a, b []catalog.FieldPath) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func samePathSet(a, b []catalog.FieldPath) bool {
	set := make(map[string]int, len(a))
	for _, p := range a {
		set[p.Key()]++
	}
	for _, p := range b {
		set[p.Key()]--
	}
	for _, n := range set {
		if n != 0 {
			return false
		}
	}
	return true
}
