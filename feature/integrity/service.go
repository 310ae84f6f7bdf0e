package integrity

import (
	"context"

	"catalog-manager/core/storage"
	"catalog-manager/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client  storage.Client
	bucket  string
	folders []string
	db      *gorm.DB
	logger  *zap.Logger
}

// NewService creates a new integrity service. folders are the bucket
// prefixes that must exist. db may be nil.
func NewService(client storage.Client, bucket string, folders []string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		client:  client,
		bucket:  bucket,
		folders: folders,
		db:      db,
		logger:  logger,
	}
}

// CheckStructure reports missing storage structure.
func (s *Service) CheckStructure(ctx context.Context) (*checks.StructureReport, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket, s.folders)
}

// FixStructure creates whatever the report lists as missing.
func (s *Service) FixStructure(ctx context.Context, report *checks.StructureReport) error {
	return checks.FixStructure(ctx, s.client, report, s.logger)
}

// CheckServer compares the database schema with the models.
func (s *Service) CheckServer() (*checks.ServerReport, error) {
	return checks.CheckServerIntegrity(s.db)
}
