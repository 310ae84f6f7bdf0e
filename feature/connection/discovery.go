package connection

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"catalog-manager/core/catalog"
	"catalog-manager/core/storage"
	"catalog-manager/feature/connection/models"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

const snapshotExt = ".json"

// DiscoveryProvider stores and serves discovered catalogs.
type DiscoveryProvider interface {
	// GetSnapshot returns a snapshot or ErrSnapshotNotFound.
	GetSnapshot(ctx context.Context, connectionID, snapshotID string) (*catalog.Catalog, error)
	// LatestSnapshotID returns the newest snapshot or ErrSnapshotNotFound.
	LatestSnapshotID(ctx context.Context, connectionID string) (string, error)
	// PutSnapshot stores a new snapshot and returns its description.
	PutSnapshot(ctx context.Context, connectionID string, c *catalog.Catalog) (*models.SnapshotInfo, error)
	// ListSnapshots returns the snapshots of a connection, newest first.
	ListSnapshots(ctx context.Context, connectionID string) ([]models.SnapshotInfo, error)
	// PruneSnapshots deletes all but the newest keep snapshots, never touching protected IDs.
	PruneSnapshots(ctx context.Context, connectionID string, keep int, protected ...string) (int, error)
}

// SnapshotStore keeps snapshots as JSON objects at <prefix>/<connection>/<snapshot>.json.
type SnapshotStore struct {
	client storage.Client
	bucket string
	prefix string
	cache  *snapshotCache
	logger *zap.Logger
}

// NewSnapshotStore creates a snapshot store. A zero ttl disables caching.
func NewSnapshotStore(client storage.Client, bucket, prefix string, ttl time.Duration, logger *zap.Logger) *SnapshotStore {
	return &SnapshotStore{
		client: client,
		bucket: bucket,
		prefix: strings.Trim(prefix, "/"),
		cache:  newSnapshotCache(ttl),
		logger: logger,
	}
}

func (s *SnapshotStore) objectKey(connectionID, snapshotID string) string {
	return path.Join(s.prefix, connectionID, snapshotID+snapshotExt)
}

func (s *SnapshotStore) connectionPrefix(connectionID string) string {
	return path.Join(s.prefix, connectionID) + "/"
}

func (s *SnapshotStore) GetSnapshot(ctx context.Context, connectionID, snapshotID string) (*catalog.Catalog, error) {
	key := s.objectKey(connectionID, snapshotID)
	return s.cache.getOrLoad(ctx, key, func(ctx context.Context) (*catalog.Catalog, error) {
		obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
		if err != nil {
			return nil, s.objectError(err, connectionID, snapshotID)
		}
		defer obj.Close()

		// minio reports a missing key on the first read
		data, err := io.ReadAll(obj)
		if err != nil {
			return nil, s.objectError(err, connectionID, snapshotID)
		}

		c, err := catalog.Unmarshal(data)
		if err != nil {
			return nil, fmt.Errorf("snapshot %s of %s: %w", snapshotID, connectionID, err)
		}
		return c, nil
	})
}

func (s *SnapshotStore) objectError(err error, connectionID, snapshotID string) error {
	if storage.IsNotFound(err) {
		return fmt.Errorf("%w: %s/%s", ErrSnapshotNotFound, connectionID, snapshotID)
	}
	return fmt.Errorf("failed to read snapshot %s of %s: %w", snapshotID, connectionID, err)
}

func (s *SnapshotStore) LatestSnapshotID(ctx context.Context, connectionID string) (string, error) {
	snapshots, err := s.ListSnapshots(ctx, connectionID)
	if err != nil {
		return "", err
	}
	if len(snapshots) == 0 {
		return "", fmt.Errorf("%w: no snapshots for %s", ErrSnapshotNotFound, connectionID)
	}
	return snapshots[0].ID, nil
}

func (s *SnapshotStore) PutSnapshot(ctx context.Context, connectionID string, c *catalog.Catalog) (*models.SnapshotInfo, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate snapshot id: %w", err)
	}

	data, err := catalog.Marshal(c)
	if err != nil {
		return nil, err
	}

	key := s.objectKey(connectionID, id.String())
	info, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store snapshot for %s: %w", connectionID, err)
	}

	lastModified := info.LastModified
	if lastModified.IsZero() {
		lastModified = time.Now().UTC()
	}

	s.logger.Info("Stored discovery snapshot",
		zap.String("connection_id", connectionID),
		zap.String("snapshot_id", id.String()),
		zap.Int("streams", c.Len()))

	return &models.SnapshotInfo{
		ID:           id.String(),
		Key:          key,
		Size:         int64(len(data)),
		LastModified: lastModified,
	}, nil
}

func (s *SnapshotStore) ListSnapshots(ctx context.Context, connectionID string) ([]models.SnapshotInfo, error) {
	var snapshots []models.SnapshotInfo
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{
		Prefix:    s.connectionPrefix(connectionID),
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots of %s: %w", connectionID, obj.Err)
		}
		name := path.Base(obj.Key)
		if !strings.HasSuffix(name, snapshotExt) || path.Dir(obj.Key)+"/" != s.connectionPrefix(connectionID) {
			continue
		}
		snapshots = append(snapshots, models.SnapshotInfo{
			ID:           strings.TrimSuffix(name, snapshotExt),
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}

	// newest first; v7 IDs break ties within the same second
	sort.Slice(snapshots, func(i, j int) bool {
		if !snapshots[i].LastModified.Equal(snapshots[j].LastModified) {
			return snapshots[i].LastModified.After(snapshots[j].LastModified)
		}
		return snapshots[i].ID > snapshots[j].ID
	})
	return snapshots, nil
}

func (s *SnapshotStore) PruneSnapshots(ctx context.Context, connectionID string, keep int, protected ...string) (int, error) {
	if keep <= 0 {
		return 0, nil
	}
	snapshots, err := s.ListSnapshots(ctx, connectionID)
	if err != nil {
		return 0, err
	}
	if len(snapshots) <= keep {
		return 0, nil
	}

	skip := make(map[string]struct{}, len(protected))
	for _, id := range protected {
		skip[id] = struct{}{}
	}

	var doomed []models.SnapshotInfo
	for _, snap := range snapshots[keep:] {
		if _, ok := skip[snap.ID]; ok {
			continue
		}
		doomed = append(doomed, snap)
	}
	if len(doomed) == 0 {
		return 0, nil
	}

	objectsCh := make(chan minio.ObjectInfo, len(doomed))
	for _, snap := range doomed {
		objectsCh <- minio.ObjectInfo{Key: snap.Key}
	}
	close(objectsCh)

	removed := len(doomed)
	for rerr := range s.client.RemoveObjects(ctx, s.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		removed--
		s.logger.Warn("Failed to remove snapshot",
			zap.String("key", rerr.ObjectName),
			zap.Error(rerr.Err))
	}
	for _, snap := range doomed {
		s.cache.invalidate(snap.Key)
	}

	s.logger.Info("Pruned discovery snapshots",
		zap.String("connection_id", connectionID),
		zap.Int("removed", removed))
	return removed, nil
}

// SweepCache drops expired cache entries.
func (s *SnapshotStore) SweepCache() int {
	return s.cache.sweep()
}
