package reconcile

import (
	"testing"

	"catalog-manager/core/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff_StreamAndFieldTransforms(t *testing.T) {
	previous := catalogOf(
		discoveredEntry(descriptor("s1", nil,
			catalog.Field("field1", "string"),
			catalog.Field("field2", "string"),
			catalog.Field("field4", "string"),
		)),
		discoveredEntry(descriptor("gone", nil)),
	)
	discovered := catalogOf(
		discoveredEntry(descriptor("s1", nil,
			catalog.Field("field1", "string"),
			catalog.Field("field2", "integer"),
			catalog.Field("field3", "number"),
		)),
		discoveredEntry(descriptor("brand", nil)),
	)

	diff, err := Diff(previous, discovered, nil)
	require.NoError(t, err)
	require.Len(t, diff.Transforms, 3)

	update := diff.Transforms[0]
	assert.Equal(t, UpdateStream, update.Type)
	assert.Equal(t, "s1", update.Identity.Name)
	require.NotNil(t, update.Update)
	require.Len(t, update.Update.FieldTransforms, 3)

	assert.Equal(t, FieldTransform{
		Type:      UpdateFieldSchema,
		FieldPath: catalog.FieldPath{"field2"},
		OldSchema: catalog.JSONSchema{"type": "string"},
		NewSchema: catalog.JSONSchema{"type": "integer"},
	}, update.Update.FieldTransforms[0])
	assert.Equal(t, AddField, update.Update.FieldTransforms[1].Type)
	assert.Equal(t, catalog.FieldPath{"field3"}, update.Update.FieldTransforms[1].FieldPath)
	assert.Equal(t, RemoveField, update.Update.FieldTransforms[2].Type)
	assert.False(t, update.Update.FieldTransforms[2].Breaking)
	assert.Empty(t, update.Update.AttributeTransforms)

	assert.Equal(t, StreamTransform{Type: AddStream, Identity: catalog.NewIdentity("brand", nil)}, diff.Transforms[1])
	assert.Equal(t, StreamTransform{Type: RemoveStream, Identity: catalog.NewIdentity("gone", nil)}, diff.Transforms[2])
	assert.False(t, diff.Breaking())
}

func TestDiff_RemovedFieldBreaksConfiguration(t *testing.T) {
	prev := descriptor("s1", nil, catalog.Field("field1", "string"), catalog.Field("field2", "string"))
	next := descriptor("s1", nil, catalog.Field("field1", "string"))

	tests := []struct {
		name     string
		config   *catalog.StreamConfig
		breaking bool
	}{
		{
			name:     "incremental cursor",
			config:   &catalog.StreamConfig{SyncMode: catalog.Incremental, CursorField: catalog.FieldPath{"field2"}},
			breaking: true,
		},
		{
			name:     "full refresh cursor",
			config:   &catalog.StreamConfig{SyncMode: catalog.FullRefresh, CursorField: catalog.FieldPath{"field2"}},
			breaking: false,
		},
		{
			name:     "primary key member",
			config:   &catalog.StreamConfig{SyncMode: catalog.FullRefresh, PrimaryKey: paths("field1", "field2")},
			breaking: true,
		},
		{
			name:     "unrelated field",
			config:   &catalog.StreamConfig{SyncMode: catalog.Incremental, CursorField: catalog.FieldPath{"field1"}},
			breaking: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff, err := Diff(
				catalogOf(discoveredEntry(prev)),
				catalogOf(discoveredEntry(next)),
				catalogOf(configuredEntry(prev, tt.config)),
			)
			require.NoError(t, err)
			require.Len(t, diff.Transforms, 1)

			ft := diff.Transforms[0].Update.FieldTransforms
			require.Len(t, ft, 1)
			assert.Equal(t, RemoveField, ft[0].Type)
			assert.Equal(t, tt.breaking, ft[0].Breaking)
			assert.Equal(t, tt.breaking, diff.Breaking())
		})
	}
}

func TestDiff_PrimaryKeyChange(t *testing.T) {
	tests := []struct {
		name     string
		oldPK    []catalog.FieldPath
		newPK    []catalog.FieldPath
		destMode catalog.DestinationSyncMode
		expectPK bool
		breaking bool
	}{
		{name: "different key with dedup", oldPK: paths("id"), newPK: paths("uuid"), destMode: catalog.AppendDedup, expectPK: true, breaking: true},
		{name: "different key with overwrite dedup", oldPK: paths("id"), newPK: paths("uuid"), destMode: catalog.OverwriteDedup, expectPK: true, breaking: true},
		{name: "different key without dedup", oldPK: paths("id"), newPK: paths("uuid"), destMode: catalog.Append, expectPK: true, breaking: false},
		{name: "reordered key with dedup", oldPK: paths("id", "uuid"), newPK: paths("uuid", "id"), destMode: catalog.AppendDedup, expectPK: true, breaking: false},
		{name: "same key", oldPK: paths("id"), newPK: paths("id"), destMode: catalog.AppendDedup, expectPK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := descriptor("s1", nil, catalog.Field("id", "integer"), catalog.Field("uuid", "string"))
			prev.SourceDefinedPrimaryKey = tt.oldPK
			next := prev.Clone()
			next.SourceDefinedPrimaryKey = tt.newPK

			diff, err := Diff(
				catalogOf(discoveredEntry(prev)),
				catalogOf(discoveredEntry(next)),
				catalogOf(configuredEntry(prev, &catalog.StreamConfig{DestinationSyncMode: tt.destMode})),
			)
			require.NoError(t, err)

			if !tt.expectPK {
				assert.True(t, diff.IsEmpty())
				return
			}
			require.Len(t, diff.Transforms, 1)
			attrs := diff.Transforms[0].Update.AttributeTransforms
			require.Len(t, attrs, 1)
			assert.Equal(t, UpdatePrimaryKey, attrs[0].Type)
			assert.Equal(t, tt.oldPK, attrs[0].OldPrimaryKey)
			assert.Equal(t, tt.newPK, attrs[0].NewPrimaryKey)
			assert.Equal(t, tt.breaking, attrs[0].Breaking)
			assert.Empty(t, diff.Transforms[0].Update.FieldTransforms)
		})
	}
}

func TestDiff_NestedFieldChange(t *testing.T) {
	nested := func(cityType string) catalog.JSONSchema {
		return catalog.JSONSchema{
			"type": "object",
			"properties": map[string]any{
				"address": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"city": map[string]any{"type": cityType},
					},
				},
			},
		}
	}
	prev := descriptor("s1", nil)
	prev.JSONSchema = nested("string")
	next := descriptor("s1", nil)
	next.JSONSchema = nested("integer")

	diff, err := Diff(catalogOf(discoveredEntry(prev)), catalogOf(discoveredEntry(next)), nil)
	require.NoError(t, err)
	require.Len(t, diff.Transforms, 1)

	ft := diff.Transforms[0].Update.FieldTransforms
	require.Len(t, ft, 1)
	assert.Equal(t, catalog.FieldPath{"address", "city"}, ft[0].FieldPath)
	assert.Equal(t, UpdateFieldSchema, ft[0].Type)
}

func TestDiff_Unchanged(t *testing.T) {
	stream := descriptor("s1", nil, catalog.Field("field1", "string"))

	diff, err := Diff(catalogOf(discoveredEntry(stream)), catalogOf(discoveredEntry(stream.Clone())), nil)
	require.NoError(t, err)
	assert.True(t, diff.IsEmpty())
	assert.NotNil(t, diff.Transforms)
	assert.False(t, diff.Breaking())
}

func TestDiff_MalformedInput(t *testing.T) {
	stream := descriptor("s1", nil)
	_, err := Diff(nil, catalogOf(discoveredEntry(stream), discoveredEntry(stream)), nil)
	assert.ErrorIs(t, err, catalog.ErrMalformedCatalog)
}
