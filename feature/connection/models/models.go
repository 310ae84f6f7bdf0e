package models

import (
	"time"

	"catalog-manager/core/catalog"
	"catalog-manager/core/reconcile"
)

// ConnectionCatalog is the persisted configured catalog of one connection.
type ConnectionCatalog struct {
	ConnectionID       string    `gorm:"column:connection_id;primaryKey;size:128"`
	Catalog            string    `gorm:"column:catalog;type:longtext;not null"`
	BaselineSnapshotID string    `gorm:"column:baseline_snapshot_id;size:128"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

// TableName pins the table name used by the integrity check.
func (ConnectionCatalog) TableName() string {
	return "connection_catalogs"
}

// StoredCatalog is a decoded ConnectionCatalog.
type StoredCatalog struct {
	ConnectionID       string           `json:"connection_id"`
	Catalog            *catalog.Catalog `json:"catalog"`
	BaselineSnapshotID string           `json:"baseline_snapshot_id"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// ConnectionSummary is one row of the connection listing.
type ConnectionSummary struct {
	ConnectionID       string    `json:"connection_id"`
	BaselineSnapshotID string    `json:"baseline_snapshot_id"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// SnapshotInfo describes one stored discovery snapshot.
type SnapshotInfo struct {
	ID           string    `json:"id"`
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified"`
}

// MergeRequest is the body of a stateless merge.
type MergeRequest struct {
	Configured *catalog.Catalog `json:"configured"`
	Previous   *catalog.Catalog `json:"previous"`
	Discovered *catalog.Catalog `json:"discovered" validate:"required"`
}

// DiffRequest is the body of a stateless diff.
type DiffRequest struct {
	Previous   *catalog.Catalog `json:"previous"`
	Discovered *catalog.Catalog `json:"discovered" validate:"required"`
	Configured *catalog.Catalog `json:"configured"`
}

// SaveCatalogRequest is the body of a configured catalog update.
type SaveCatalogRequest struct {
	Catalog *catalog.Catalog `json:"catalog" validate:"required"`
	// BaselineSnapshotID defaults to the latest snapshot when empty.
	BaselineSnapshotID string `json:"baseline_snapshot_id" validate:"omitempty,resource_id"`
}

// RefreshOptions controls a store-backed refresh.
type RefreshOptions struct {
	// SnapshotID selects the new discovery. Empty means the latest snapshot.
	SnapshotID string `json:"snapshot_id" validate:"omitempty,resource_id"`
	// Apply persists the merged catalog with SnapshotID as the new baseline.
	Apply bool `json:"apply"`
}

// RefreshResult reports a refresh and whether it was persisted.
type RefreshResult struct {
	ConnectionID       string                   `json:"connection_id"`
	BaselineSnapshotID string                   `json:"baseline_snapshot_id"`
	SnapshotID         string                   `json:"snapshot_id"`
	Plan               *reconcile.ReconcilePlan `json:"plan"`
	Diff               *reconcile.CatalogDiff   `json:"diff"`
	Applied            bool                     `json:"applied"`
}
