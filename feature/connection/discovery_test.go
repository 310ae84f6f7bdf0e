package connection

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"catalog-manager/core/storage/mocks"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func object(key string, at time.Time) minio.ObjectInfo {
	return minio.ObjectInfo{Key: key, Size: 42, LastModified: at}
}

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestSnapshotStore(client *mocks.Client) *SnapshotStore {
	return NewSnapshotStore(client, "bucket", "/catalogs/", time.Minute, zap.NewNop())
}

func TestSnapshotStore_GetSnapshot(t *testing.T) {
	ctx := context.Background()

	t.Run("Decodes And Caches", func(t *testing.T) {
		client := new(mocks.Client)
		store := newTestSnapshotStore(client)
		want := discovered(usersStream("id"))

		client.On("GetObject", mock.Anything, "bucket", "catalogs/conn-a/s1.json", mock.Anything).
			Return(objectBody(t, want), nil).Once()

		got, err := store.GetSnapshot(ctx, "conn-a", "s1")
		require.NoError(t, err)
		assert.Equal(t, want, got)

		again, err := store.GetSnapshot(ctx, "conn-a", "s1")
		require.NoError(t, err)
		assert.Same(t, got, again)
		client.AssertExpectations(t)
	})

	t.Run("Missing Object", func(t *testing.T) {
		client := new(mocks.Client)
		store := newTestSnapshotStore(client)
		client.On("GetObject", mock.Anything, "bucket", "catalogs/conn-a/gone.json", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey"})

		_, err := store.GetSnapshot(ctx, "conn-a", "gone")
		assert.ErrorIs(t, err, ErrSnapshotNotFound)
	})

	t.Run("Missing Object On Read", func(t *testing.T) {
		client := new(mocks.Client)
		store := newTestSnapshotStore(client)
		client.On("GetObject", mock.Anything, "bucket", "catalogs/conn-a/gone.json", mock.Anything).
			Return(io.NopCloser(&failingReader{err: minio.ErrorResponse{Code: "NoSuchKey"}}), nil)

		_, err := store.GetSnapshot(ctx, "conn-a", "gone")
		assert.ErrorIs(t, err, ErrSnapshotNotFound)
	})

	t.Run("Storage Failure", func(t *testing.T) {
		client := new(mocks.Client)
		store := newTestSnapshotStore(client)
		client.On("GetObject", mock.Anything, "bucket", "catalogs/conn-a/s1.json", mock.Anything).
			Return(nil, errors.New("connection refused"))

		_, err := store.GetSnapshot(ctx, "conn-a", "s1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrSnapshotNotFound)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("Corrupt Object", func(t *testing.T) {
		client := new(mocks.Client)
		store := newTestSnapshotStore(client)
		client.On("GetObject", mock.Anything, "bucket", "catalogs/conn-a/s1.json", mock.Anything).
			Return(io.NopCloser(strings.NewReader("{")), nil)

		_, err := store.GetSnapshot(ctx, "conn-a", "s1")
		assert.ErrorContains(t, err, "snapshot s1 of conn-a")
	})
}

type failingReader struct{ err error }

func (r *failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestSnapshotStore_ListSnapshots(t *testing.T) {
	client := new(mocks.Client)
	store := newTestSnapshotStore(client)

	client.On("ListObjects", mock.Anything, "bucket", minio.ListObjectsOptions{Prefix: "catalogs/conn-a/", Recursive: true}).
		Return(mocks.Listing(
			object("catalogs/conn-a/old.json", t0),
			object("catalogs/conn-a/new.json", t0.Add(time.Hour)),
			object("catalogs/conn-a/README.txt", t0.Add(2*time.Hour)),
			object("catalogs/conn-a/nested/x.json", t0.Add(3*time.Hour)),
			object("catalogs/conn-a/b.json", t0),
		))

	list, err := store.ListSnapshots(context.Background(), "conn-a")
	require.NoError(t, err)

	ids := make([]string, 0, len(list))
	for _, s := range list {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []string{"new", "old", "b"}, ids)
	assert.Equal(t, "catalogs/conn-a/new.json", list[0].Key)
	assert.Equal(t, int64(42), list[0].Size)
}

func TestSnapshotStore_LatestSnapshotID(t *testing.T) {
	ctx := context.Background()

	t.Run("Newest Wins", func(t *testing.T) {
		client := new(mocks.Client)
		store := newTestSnapshotStore(client)
		client.On("ListObjects", mock.Anything, "bucket", mock.Anything).
			Return(mocks.Listing(object("catalogs/c/a.json", t0), object("catalogs/c/b.json", t0.Add(time.Second))))

		id, err := store.LatestSnapshotID(ctx, "c")
		require.NoError(t, err)
		assert.Equal(t, "b", id)
	})

	t.Run("No Snapshots", func(t *testing.T) {
		client := new(mocks.Client)
		store := newTestSnapshotStore(client)
		client.On("ListObjects", mock.Anything, "bucket", mock.Anything).Return(mocks.Listing())

		_, err := store.LatestSnapshotID(ctx, "c")
		assert.ErrorIs(t, err, ErrSnapshotNotFound)
	})

	t.Run("Listing Error", func(t *testing.T) {
		client := new(mocks.Client)
		store := newTestSnapshotStore(client)
		client.On("ListObjects", mock.Anything, "bucket", mock.Anything).
			Return(mocks.Listing(minio.ObjectInfo{Err: errors.New("access denied")}))

		_, err := store.LatestSnapshotID(ctx, "c")
		assert.ErrorContains(t, err, "access denied")
	})
}

func TestSnapshotStore_PutSnapshot(t *testing.T) {
	client := new(mocks.Client)
	store := newTestSnapshotStore(client)

	var storedKey string
	client.On("PutObject", mock.Anything, "bucket", mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "catalogs/conn-a/") && strings.HasSuffix(key, ".json")
	}), mock.Anything, mock.Anything, minio.PutObjectOptions{ContentType: "application/json"}).
		Run(func(args mock.Arguments) { storedKey = args.String(2) }).
		Return(minio.UploadInfo{LastModified: t0}, nil)

	info, err := store.PutSnapshot(context.Background(), "conn-a", discovered(usersStream("id")))
	require.NoError(t, err)

	parsed, err := uuid.Parse(info.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.Equal(t, storedKey, info.Key)
	assert.Equal(t, t0, info.LastModified)
	assert.Positive(t, info.Size)
}

func TestSnapshotStore_PruneSnapshots(t *testing.T) {
	client := new(mocks.Client)
	store := newTestSnapshotStore(client)

	client.On("ListObjects", mock.Anything, "bucket", mock.Anything).Return(mocks.Listing(
		object("catalogs/c/s1.json", t0),
		object("catalogs/c/s2.json", t0.Add(1*time.Minute)),
		object("catalogs/c/s3.json", t0.Add(2*time.Minute)),
		object("catalogs/c/s4.json", t0.Add(3*time.Minute)),
	))

	var removedKeys []string
	client.On("RemoveObjects", mock.Anything, "bucket", mock.Anything, mock.Anything).
		Run(mocks.CollectRemoved(&removedKeys)).
		Return(nil)

	removed, err := store.PruneSnapshots(context.Background(), "c", 2, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Equal(t, []string{"catalogs/c/s2.json"}, removedKeys)
}

func TestSnapshotStore_PruneSnapshots_NothingToDo(t *testing.T) {
	client := new(mocks.Client)
	store := newTestSnapshotStore(client)

	removed, err := store.PruneSnapshots(context.Background(), "c", 0)
	require.NoError(t, err)
	assert.Zero(t, removed)

	client.On("ListObjects", mock.Anything, "bucket", mock.Anything).Return(mocks.Listing(object("catalogs/c/s1.json", t0)))
	removed, err = store.PruneSnapshots(context.Background(), "c", 5)
	require.NoError(t, err)
	assert.Zero(t, removed)
	client.AssertNotCalled(t, "RemoveObjects", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
