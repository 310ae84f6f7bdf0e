package connection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog-manager/core/catalog"
	"catalog-manager/feature/connection/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConfigurationStore persists configured catalogs.
type ConfigurationStore interface {
	// GetCatalog returns the stored catalog or ErrConnectionNotFound.
	GetCatalog(ctx context.Context, connectionID string) (*models.StoredCatalog, error)
	// SaveCatalog upserts the catalog and the snapshot it was built against.
	SaveCatalog(ctx context.Context, connectionID string, c *catalog.Catalog, baselineSnapshotID string) error
	// ListConnections returns every stored connection ordered by ID.
	ListConnections(ctx context.Context) ([]models.ConnectionSummary, error)
}

// GormStore is the ConfigurationStore backed by the connection_catalogs table.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store on db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the connection_catalogs table.
func (s *GormStore) Migrate() error {
	return s.db.AutoMigrate(&models.ConnectionCatalog{})
}

func (s *GormStore) GetCatalog(ctx context.Context, connectionID string) (*models.StoredCatalog, error) {
	var row models.ConnectionCatalog
	err := s.db.WithContext(ctx).Where("connection_id = ?", connectionID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrConnectionNotFound, connectionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog of %s: %w", connectionID, err)
	}

	c, err := catalog.Unmarshal([]byte(row.Catalog))
	if err != nil {
		return nil, fmt.Errorf("stored catalog of %s is corrupt: %w", connectionID, err)
	}

	return &models.StoredCatalog{
		ConnectionID:       row.ConnectionID,
		Catalog:            c,
		BaselineSnapshotID: row.BaselineSnapshotID,
		UpdatedAt:          row.UpdatedAt,
	}, nil
}

func (s *GormStore) SaveCatalog(ctx context.Context, connectionID string, c *catalog.Catalog, baselineSnapshotID string) error {
	data, err := catalog.Marshal(c)
	if err != nil {
		return err
	}

	row := models.ConnectionCatalog{
		ConnectionID:       connectionID,
		Catalog:            string(data),
		BaselineSnapshotID: baselineSnapshotID,
		UpdatedAt:          time.Now().UTC(),
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "connection_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"catalog", "baseline_snapshot_id", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save catalog of %s: %w", connectionID, err)
	}
	return nil
}

func (s *GormStore) ListConnections(ctx context.Context) ([]models.ConnectionSummary, error) {
	var rows []models.ConnectionCatalog
	err := s.db.WithContext(ctx).
		Select("connection_id", "baseline_snapshot_id", "updated_at").
		Order("connection_id").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}

	out := make([]models.ConnectionSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.ConnectionSummary{
			ConnectionID:       r.ConnectionID,
			BaselineSnapshotID: r.BaselineSnapshotID,
			UpdatedAt:          r.UpdatedAt,
		})
	}
	return out, nil
}
