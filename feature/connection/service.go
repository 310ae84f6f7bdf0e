package connection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog-manager/core/catalog"
	"catalog-manager/core/metrics"
	"catalog-manager/core/reconcile"
	"catalog-manager/core/utils"
	"catalog-manager/feature/connection/models"

	"go.uber.org/zap"
)

// Service merges catalogs, either from request bodies or from the
// configuration store and the snapshot store.
type Service struct {
	store     ConfigurationStore
	snapshots DiscoveryProvider
	keep      int
	logger    *zap.Logger
}

// NewService creates a connection service. store may be nil, in which case
// every store-backed operation returns ErrStoreUnavailable.
func NewService(store ConfigurationStore, snapshots DiscoveryProvider, keep int, logger *zap.Logger) *Service {
	return &Service{
		store:     store,
		snapshots: snapshots,
		keep:      keep,
		logger:    logger,
	}
}

// Merge runs a stateless merge.
func (s *Service) Merge(ctx context.Context, req models.MergeRequest) (*reconcile.ReconcilePlan, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}
	return s.merge(req.Configured, req.Previous, req.Discovered)
}

// Diff runs a stateless diff.
func (s *Service) Diff(ctx context.Context, req models.DiffRequest) (*reconcile.CatalogDiff, error) {
	if err := utils.Validate(req); err != nil {
		return nil, err
	}
	return reconcile.Diff(req.Previous, req.Discovered, req.Configured)
}

func (s *Service) merge(configured, previous, discovered *catalog.Catalog) (*reconcile.ReconcilePlan, error) {
	start := time.Now()
	plan, err := reconcile.MergeWithPlan(configured, previous, discovered)
	metrics.ReconcileDurationSeconds.Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		metrics.ReconcileRunsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	case errors.Is(err, catalog.ErrMalformedCatalog):
		metrics.ReconcileRunsTotal.WithLabelValues(metrics.ResultMalformed).Inc()
		return nil, err
	default:
		metrics.ReconcileRunsTotal.WithLabelValues(metrics.ResultError).Inc()
		return nil, err
	}

	for _, r := range plan.Results {
		metrics.ReconcileStreamsTotal.WithLabelValues(string(r.Outcome)).Inc()
	}
	return plan, nil
}

// ListConnections returns every connection with a stored catalog.
func (s *Service) ListConnections(ctx context.Context) ([]models.ConnectionSummary, error) {
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}
	return s.store.ListConnections(ctx)
}

// GetCatalog returns the stored catalog of a connection.
func (s *Service) GetCatalog(ctx context.Context, connectionID string) (*models.StoredCatalog, error) {
	if err := checkID(connectionID); err != nil {
		return nil, err
	}
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}
	return s.store.GetCatalog(ctx, connectionID)
}

// SaveCatalog stores a configured catalog. Without an explicit baseline the
// latest snapshot becomes the baseline, or none when no snapshot exists.
func (s *Service) SaveCatalog(ctx context.Context, connectionID string, req models.SaveCatalogRequest) (*models.StoredCatalog, error) {
	if err := checkID(connectionID); err != nil {
		return nil, err
	}
	if err := utils.Validate(req); err != nil {
		return nil, err
	}
	if err := req.Catalog.Validate(catalog.RoleConfigured); err != nil {
		return nil, err
	}
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}

	baseline := req.BaselineSnapshotID
	if baseline == "" {
		latest, err := s.snapshots.LatestSnapshotID(ctx, connectionID)
		switch {
		case err == nil:
			baseline = latest
		case !errors.Is(err, ErrSnapshotNotFound):
			return nil, err
		}
	}

	if err := s.store.SaveCatalog(ctx, connectionID, req.Catalog, baseline); err != nil {
		return nil, err
	}
	s.logger.Info("Saved configured catalog",
		zap.String("connection_id", connectionID),
		zap.String("baseline_snapshot_id", baseline),
		zap.Int("streams", req.Catalog.Len()))

	return s.store.GetCatalog(ctx, connectionID)
}

// ListSnapshots returns the discovery snapshots of a connection, newest first.
func (s *Service) ListSnapshots(ctx context.Context, connectionID string) ([]models.SnapshotInfo, error) {
	if err := checkID(connectionID); err != nil {
		return nil, err
	}
	return s.snapshots.ListSnapshots(ctx, connectionID)
}

// UploadSnapshot stores a new discovery and prunes old snapshots. The new
// snapshot and the stored baseline are never pruned.
func (s *Service) UploadSnapshot(ctx context.Context, connectionID string, c *catalog.Catalog) (*models.SnapshotInfo, error) {
	if err := checkID(connectionID); err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("%w: snapshot body is empty", ErrInvalidRequest)
	}
	if err := c.Validate(catalog.RoleDiscovered); err != nil {
		return nil, err
	}

	info, err := s.snapshots.PutSnapshot(ctx, connectionID, c)
	if err != nil {
		return nil, err
	}

	protected := []string{info.ID}
	if s.store != nil {
		stored, err := s.store.GetCatalog(ctx, connectionID)
		switch {
		case err == nil:
			protected = append(protected, stored.BaselineSnapshotID)
		case !errors.Is(err, ErrConnectionNotFound):
			// without the baseline nothing can be pruned safely
			s.logger.Warn("Skipping snapshot prune", zap.String("connection_id", connectionID), zap.Error(err))
			return info, nil
		}
	}

	if _, err := s.snapshots.PruneSnapshots(ctx, connectionID, s.keep, protected...); err != nil {
		s.logger.Warn("Snapshot prune failed", zap.String("connection_id", connectionID), zap.Error(err))
	}
	return info, nil
}

// Refresh merges the stored configuration with a discovery snapshot, using
// the stored baseline as the previous discovery. A connection without a
// stored catalog starts from an empty configuration. With opts.Apply the
// merged catalog is stored and the snapshot becomes the new baseline.
func (s *Service) Refresh(ctx context.Context, connectionID string, opts models.RefreshOptions) (*models.RefreshResult, error) {
	if err := checkID(connectionID); err != nil {
		return nil, err
	}
	if err := utils.Validate(opts); err != nil {
		return nil, err
	}
	if s.store == nil {
		return nil, ErrStoreUnavailable
	}

	l := s.logger.With(zap.String("connection_id", connectionID))

	configured := &catalog.Catalog{}
	baseline := ""
	stored, err := s.store.GetCatalog(ctx, connectionID)
	switch {
	case err == nil:
		configured = stored.Catalog
		baseline = stored.BaselineSnapshotID
	case errors.Is(err, ErrConnectionNotFound):
		l.Info("No stored catalog, starting from an empty configuration")
	default:
		return nil, err
	}

	snapshotID := opts.SnapshotID
	if snapshotID == "" {
		if snapshotID, err = s.snapshots.LatestSnapshotID(ctx, connectionID); err != nil {
			return nil, err
		}
	}
	discovered, err := s.snapshots.GetSnapshot(ctx, connectionID, snapshotID)
	if err != nil {
		return nil, err
	}

	previous := &catalog.Catalog{}
	if baseline != "" {
		previous, err = s.snapshots.GetSnapshot(ctx, connectionID, baseline)
		if errors.Is(err, ErrSnapshotNotFound) {
			l.Warn("Baseline snapshot is gone, merging without a baseline", zap.String("baseline_snapshot_id", baseline))
			previous, err = &catalog.Catalog{}, nil
		}
		if err != nil {
			return nil, err
		}
	}

	plan, err := s.merge(configured, previous, discovered)
	if err != nil {
		return nil, err
	}
	diff, err := reconcile.Diff(previous, discovered, configured)
	if err != nil {
		return nil, err
	}

	result := &models.RefreshResult{
		ConnectionID:       connectionID,
		BaselineSnapshotID: baseline,
		SnapshotID:         snapshotID,
		Plan:               plan,
		Diff:               diff,
	}

	l.Info("Refreshed catalog",
		zap.String("snapshot_id", snapshotID),
		zap.Int("kept", plan.Summary.Kept),
		zap.Int("reset", plan.Summary.Reset),
		zap.Int("added", plan.Summary.Added),
		zap.Int("removed", plan.Summary.Removed),
		zap.Bool("breaking", diff.Breaking()))

	if opts.Apply {
		if err := s.Apply(ctx, result); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Apply stores the merged catalog of a refresh with its snapshot as the new
// baseline.
func (s *Service) Apply(ctx context.Context, result *models.RefreshResult) error {
	if s.store == nil {
		return ErrStoreUnavailable
	}
	if result == nil || result.Plan == nil {
		return fmt.Errorf("%w: nothing to apply", ErrInvalidRequest)
	}
	if err := s.store.SaveCatalog(ctx, result.ConnectionID, result.Plan.Catalog, result.SnapshotID); err != nil {
		return err
	}
	result.Applied = true

	if _, err := s.snapshots.PruneSnapshots(ctx, result.ConnectionID, s.keep, result.SnapshotID); err != nil {
		s.logger.Warn("Snapshot prune failed", zap.String("connection_id", result.ConnectionID), zap.Error(err))
	}
	return nil
}

func checkID(id string) error {
	if !utils.IsResourceID(id) {
		return fmt.Errorf("%w: %q is not a valid connection id", ErrInvalidRequest, id)
	}
	return nil
}
