package connection

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"testing"
	"time"

	"catalog-manager/core/catalog"
	"catalog-manager/core/database"
	"catalog-manager/feature/connection/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, NewGormStore(db).Migrate())
	return db
}

func usersStream(fields ...string) *catalog.StreamDescriptor {
	schemaFields := make([]catalog.SchemaField, 0, len(fields))
	for _, f := range fields {
		schemaFields = append(schemaFields, catalog.Field(f, "string"))
	}
	return &catalog.StreamDescriptor{
		Name:               "users",
		Namespace:          catalog.Ptr("public"),
		JSONSchema:         catalog.FieldsToSchema(schemaFields...),
		SupportedSyncModes: []catalog.SyncMode{catalog.FullRefresh, catalog.Incremental},
		DefaultCursorField: catalog.FieldPath{},
	}
}

func discovered(streams ...*catalog.StreamDescriptor) *catalog.Catalog {
	c := &catalog.Catalog{Streams: []catalog.StreamEntry{}}
	for _, s := range streams {
		c.Streams = append(c.Streams, catalog.StreamEntry{Stream: s})
	}
	return c
}

func configured(stream *catalog.StreamDescriptor, cursor string) *catalog.Catalog {
	return &catalog.Catalog{Streams: []catalog.StreamEntry{{
		Stream: stream,
		Config: &catalog.StreamConfig{
			SyncMode:            catalog.Incremental,
			DestinationSyncMode: catalog.AppendDedup,
			CursorField:         catalog.FieldPath{cursor},
			PrimaryKey:          []catalog.FieldPath{{"id"}},
			AliasName:           "people",
			Selected:            true,
			SelectedFields:      []catalog.SelectedField{},
			HashedFields:        []catalog.SelectedField{},
		},
	}}}
}

func objectBody(t *testing.T, c *catalog.Catalog) io.ReadCloser {
	t.Helper()
	data, err := catalog.Marshal(c)
	require.NoError(t, err)
	return io.NopCloser(bytes.NewReader(data))
}

// memSnapshots is an in-memory DiscoveryProvider.
type memSnapshots struct {
	mu     sync.Mutex
	seq    int
	byConn map[string]map[string]*memSnapshot
	pruned []string
}

type memSnapshot struct {
	catalog *catalog.Catalog
	at      time.Time
}

func newMemSnapshots() *memSnapshots {
	return &memSnapshots{byConn: map[string]map[string]*memSnapshot{}}
}

// add stores c under id with increasing timestamps.
func (m *memSnapshots) add(connectionID, id string, c *catalog.Catalog) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	if m.byConn[connectionID] == nil {
		m.byConn[connectionID] = map[string]*memSnapshot{}
	}
	m.byConn[connectionID][id] = &memSnapshot{
		catalog: c,
		at:      time.Date(2024, 1, 1, 0, 0, m.seq, 0, time.UTC),
	}
}

func (m *memSnapshots) GetSnapshot(_ context.Context, connectionID, snapshotID string) (*catalog.Catalog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	snap, ok := m.byConn[connectionID][snapshotID]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrSnapshotNotFound, connectionID, snapshotID)
	}
	return snap.catalog, nil
}

func (m *memSnapshots) LatestSnapshotID(ctx context.Context, connectionID string) (string, error) {
	list, _ := m.ListSnapshots(ctx, connectionID)
	if len(list) == 0 {
		return "", fmt.Errorf("%w: no snapshots for %s", ErrSnapshotNotFound, connectionID)
	}
	return list[0].ID, nil
}

func (m *memSnapshots) PutSnapshot(_ context.Context, connectionID string, c *catalog.Catalog) (*models.SnapshotInfo, error) {
	id := fmt.Sprintf("snap-%d", m.seq+1)
	m.add(connectionID, id, c)
	return &models.SnapshotInfo{ID: id, Key: connectionID + "/" + id + ".json"}, nil
}

func (m *memSnapshots) ListSnapshots(_ context.Context, connectionID string) ([]models.SnapshotInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.SnapshotInfo{}
	for id, snap := range m.byConn[connectionID] {
		out = append(out, models.SnapshotInfo{ID: id, LastModified: snap.at})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastModified.After(out[j].LastModified) })
	return out, nil
}

func (m *memSnapshots) PruneSnapshots(ctx context.Context, connectionID string, keep int, protected ...string) (int, error) {
	list, _ := m.ListSnapshots(ctx, connectionID)
	if keep <= 0 || len(list) <= keep {
		return 0, nil
	}
	skip := map[string]bool{}
	for _, id := range protected {
		skip[id] = true
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for _, snap := range list[keep:] {
		if skip[snap.ID] {
			continue
		}
		delete(m.byConn[connectionID], snap.ID)
		m.pruned = append(m.pruned, snap.ID)
		removed++
	}
	return removed, nil
}
