package connection

import (
	"context"
	"time"

	"catalog-manager/core/reconcile"
	"catalog-manager/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service   *Service
	handler   *Handler
	snapshots *SnapshotStore
	logger    *zap.Logger
}

// NewFeature wires the stores into a connection feature. db may be nil.
func NewFeature(client storage.Client, bucket string, logger *zap.Logger, db *gorm.DB, cfg reconcile.Config) *Feature {
	var store ConfigurationStore
	if db != nil {
		store = NewGormStore(db)
	}
	snapshots := NewSnapshotStore(client, bucket, cfg.SnapshotPrefix, cfg.CacheTTL(), logger)
	svc := NewService(store, snapshots, cfg.KeepSnapshots, logger)
	return &Feature{service: svc, handler: NewHandler(svc), snapshots: snapshots, logger: logger}
}

// RunCacheSweeper drops expired snapshot cache entries every interval until
// ctx is done. It returns immediately when interval is not positive.
func (f *Feature) RunCacheSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := f.snapshots.SweepCache(); n > 0 {
				f.logger.Debug("Swept snapshot cache", zap.Int("removed", n))
			}
		}
	}
}

// Service exposes the feature's service to the CLI.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "connection"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
