package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	tests := []struct {
		name      string
		namespace *string
		expect    string
	}{
		{name: "users", expect: "users"},
		{name: "users", namespace: Ptr(""), expect: ".users"},
		{name: "users", namespace: Ptr("public"), expect: "public.users"},
	}

	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			assert.Equal(t, tt.expect, NewIdentity(tt.name, tt.namespace).String())
		})
	}

	assert.NotEqual(t, NewIdentity("users", nil), NewIdentity("users", Ptr("")))
	assert.Equal(t, NewIdentity("users", Ptr("a")), (&StreamDescriptor{Name: "users", Namespace: Ptr("a")}).Identity())
}

func TestFieldPath(t *testing.T) {
	p := FieldPath{"address", "city"}

	assert.Equal(t, "address.city", p.String())
	assert.True(t, p.Equal(FieldPath{"address", "city"}))
	assert.False(t, p.Equal(FieldPath{"address"}))
	assert.NotEqual(t, FieldPath{"a.b"}.Key(), FieldPath{"a", "b"}.Key())
}

func TestDestinationSyncMode_IsDedup(t *testing.T) {
	assert.True(t, AppendDedup.IsDedup())
	assert.True(t, OverwriteDedup.IsDedup())
	assert.False(t, Append.IsDedup())
	assert.False(t, Overwrite.IsDedup())
}

func TestSchemaFields(t *testing.T) {
	schema := JSONSchema{
		"type": "object",
		"properties": map[string]any{
			"id": map[string]any{"type": "integer"},
			"address": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"city": map[string]any{"type": "string"},
				},
			},
		},
	}

	fields := SchemaFields(schema)
	got := make([]string, 0, len(fields))
	for _, f := range fields {
		got = append(got, f.Path.String())
	}
	assert.Equal(t, []string{"address", "address.city", "id"}, got)

	assert.True(t, HasField(schema, FieldPath{"address", "city"}))
	assert.False(t, HasField(schema, FieldPath{"city"}))
	assert.False(t, HasField(schema, FieldPath{}))
	assert.False(t, HasField(nil, FieldPath{"id"}))

	city, ok := LookupField(schema, FieldPath{"address", "city"})
	require.True(t, ok)
	assert.Equal(t, JSONSchema{"type": "string"}, city)
}

func TestFieldsToSchema(t *testing.T) {
	schema := FieldsToSchema(Field("field1", "string"), Field("field2", "integer"))

	assert.Equal(t, JSONSchema{
		"type": "object",
		"properties": map[string]any{
			"field1": map[string]any{"type": "string"},
			"field2": map[string]any{"type": "integer"},
		},
	}, schema)
}

func TestClone(t *testing.T) {
	t.Run("descriptor keeps nil and empty values", func(t *testing.T) {
		d := &StreamDescriptor{
			Name:               "users",
			Namespace:          Ptr(""),
			JSONSchema:         FieldsToSchema(Field("id", "integer")),
			SupportedSyncModes: []SyncMode{FullRefresh},
			DefaultCursorField: FieldPath{},
		}
		clone := d.Clone()
		assert.Equal(t, d, clone)
		assert.NotSame(t, d.Namespace, clone.Namespace)
		assert.Nil(t, clone.SourceDefinedPrimaryKey)

		clone.JSONSchema["properties"].(map[string]any)["id"].(map[string]any)["type"] = "string"
		clone.SupportedSyncModes[0] = Incremental
		assert.Equal(t, JSONSchema{"type": "integer"}, mustLookup(t, d.JSONSchema, "id"))
		assert.Equal(t, FullRefresh, d.SupportedSyncModes[0])
	})

	t.Run("config normalises nil lists", func(t *testing.T) {
		clone := (&StreamConfig{SyncMode: FullRefresh}).Clone()
		assert.NotNil(t, clone.CursorField)
		assert.NotNil(t, clone.PrimaryKey)
		assert.NotNil(t, clone.SelectedFields)
		assert.NotNil(t, clone.HashedFields)
	})

	t.Run("config deep copies paths", func(t *testing.T) {
		cfg := &StreamConfig{
			PrimaryKey:            []FieldPath{{"id"}},
			HashedFields:          []SelectedField{{FieldPath: FieldPath{"email"}}},
			DestinationObjectName: Ptr("users_v2"),
		}
		clone := cfg.Clone()
		clone.PrimaryKey[0][0] = "other"
		clone.HashedFields[0].FieldPath[0] = "other"
		*clone.DestinationObjectName = "other"

		assert.Equal(t, "id", cfg.PrimaryKey[0][0])
		assert.Equal(t, "email", cfg.HashedFields[0].FieldPath[0])
		assert.Equal(t, "users_v2", *cfg.DestinationObjectName)
	})

	t.Run("nil catalog", func(t *testing.T) {
		var c *Catalog
		assert.Equal(t, &Catalog{Streams: []StreamEntry{}}, c.Clone())
		assert.Equal(t, 0, c.Len())
	})
}

func mustLookup(t *testing.T, schema JSONSchema, name string) JSONSchema {
	t.Helper()
	s, ok := LookupField(schema, FieldPath{name})
	require.True(t, ok)
	return s
}
