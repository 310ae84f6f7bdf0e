package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"catalog-manager/core/catalog"
	"catalog-manager/core/reconcile"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeCatalog(t *testing.T, dir, name string, c *catalog.Catalog) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, catalog.WriteFile(path, c))
	return path
}

func ordersStream(fields ...string) *catalog.StreamDescriptor {
	schemaFields := make([]catalog.SchemaField, 0, len(fields))
	for _, f := range fields {
		schemaFields = append(schemaFields, catalog.Field(f, "string"))
	}
	return &catalog.StreamDescriptor{
		Name:               "orders",
		JSONSchema:         catalog.FieldsToSchema(schemaFields...),
		SupportedSyncModes: []catalog.SyncMode{catalog.FullRefresh, catalog.Incremental},
		DefaultCursorField: catalog.FieldPath{},
	}
}

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		configuredPath, previousPath, discoveredPath, outPath = "", "", "", ""
		printPlan = false
	})
}

func TestRunMerge(t *testing.T) {
	dir := t.TempDir()
	cfg := &catalog.StreamConfig{
		SyncMode:            catalog.Incremental,
		DestinationSyncMode: catalog.Append,
		CursorField:         catalog.FieldPath{"updated_at"},
		AliasName:           "orders_v2",
		Selected:            true,
	}
	configured := writeCatalog(t, dir, "configured.json", &catalog.Catalog{Streams: []catalog.StreamEntry{
		{Stream: ordersStream("id", "updated_at"), Config: cfg},
	}})
	previous := writeCatalog(t, dir, "previous.json", &catalog.Catalog{Streams: []catalog.StreamEntry{
		{Stream: ordersStream("id", "updated_at")},
	}})
	discovered := writeCatalog(t, dir, "discovered.json", &catalog.Catalog{Streams: []catalog.StreamEntry{
		{Stream: ordersStream("id", "updated_at", "total")},
	}})

	t.Run("Prints Catalog", func(t *testing.T) {
		resetFlags(t)
		configuredPath, previousPath, discoveredPath = configured, previous, discovered

		var out bytes.Buffer
		require.NoError(t, runMerge(&out, zap.NewNop()))

		merged, err := catalog.Unmarshal(out.Bytes())
		require.NoError(t, err)
		require.Equal(t, 1, merged.Len())
		assert.Equal(t, "orders_v2", merged.Streams[0].Config.AliasName)
	})

	t.Run("Prints Plan", func(t *testing.T) {
		resetFlags(t)
		configuredPath, previousPath, discoveredPath = configured, previous, discovered
		printPlan = true

		var out bytes.Buffer
		require.NoError(t, runMerge(&out, zap.NewNop()))

		var plan reconcile.ReconcilePlan
		require.NoError(t, json.Unmarshal(out.Bytes(), &plan))
		assert.Equal(t, 1, plan.Summary.Kept)
	})

	t.Run("Writes File", func(t *testing.T) {
		resetFlags(t)
		discoveredPath = discovered
		outPath = filepath.Join(dir, "merged.json")

		var out bytes.Buffer
		require.NoError(t, runMerge(&out, zap.NewNop()))
		assert.Empty(t, out.String())

		merged, err := catalog.ReadFile(outPath)
		require.NoError(t, err)
		assert.Equal(t, "orders", merged.Streams[0].Config.AliasName)
	})

	t.Run("Missing File", func(t *testing.T) {
		resetFlags(t)
		discoveredPath = filepath.Join(dir, "nope.json")
		assert.Error(t, runMerge(&bytes.Buffer{}, zap.NewNop()))
	})

	t.Run("Malformed Catalog", func(t *testing.T) {
		resetFlags(t)
		broken := filepath.Join(dir, "broken.json")
		require.NoError(t, os.WriteFile(broken, []byte(`{"streams":[{"config":{}}]}`), 0o644))
		discoveredPath = broken

		err := runMerge(&bytes.Buffer{}, zap.NewNop())
		assert.ErrorIs(t, err, catalog.ErrMalformedCatalog)
	})
}

func TestRunDiff(t *testing.T) {
	resetFlags(t)
	dir := t.TempDir()
	previousPath = writeCatalog(t, dir, "previous.json", &catalog.Catalog{Streams: []catalog.StreamEntry{
		{Stream: ordersStream("id")},
	}})
	discoveredPath = writeCatalog(t, dir, "discovered.json", &catalog.Catalog{Streams: []catalog.StreamEntry{
		{Stream: ordersStream("id", "total")},
	}})

	var out bytes.Buffer
	require.NoError(t, runDiff(&out, zap.NewNop()))

	var diff reconcile.CatalogDiff
	require.NoError(t, json.Unmarshal(out.Bytes(), &diff))
	require.Len(t, diff.Transforms, 1)
	assert.Equal(t, reconcile.UpdateStream, diff.Transforms[0].Type)
	assert.Equal(t, reconcile.AddField, diff.Transforms[0].Update.FieldTransforms[0].Type)
}
