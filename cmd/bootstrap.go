package cmd

import (
	"fmt"

	"catalog-manager/core/config"
	"catalog-manager/core/database"
	"catalog-manager/core/logger"
	"catalog-manager/core/storage"
	"catalog-manager/feature/connection"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// deps holds what store-backed commands share.
type deps struct {
	cfg    *config.Config
	logger *zap.Logger
	client storage.Client
	db     *gorm.DB
}

// bootstrap loads configuration, builds the logger and the storage client
// and connects the database. requireDB turns a failed connection into an error.
func bootstrap(requireDB bool) (*deps, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	rt := &deps{cfg: cfg, logger: logg, client: client}

	db, err := database.Connect(cfg.Database)
	switch {
	case err == nil:
		rt.db = db
		logg.Info("Connected to configuration store", zap.String("driver", cfg.Database.Driver))
	case requireDB:
		return nil, fmt.Errorf("database connection required: %w", err)
	default:
		logg.Warn("Optional database connection failed", zap.Error(err))
	}

	return rt, nil
}

// migrate creates or updates the configuration store tables, if connected.
func (rt *deps) migrate() error {
	if rt.db == nil {
		return nil
	}
	if err := connection.NewGormStore(rt.db).Migrate(); err != nil {
		return fmt.Errorf("failed to migrate configuration store: %w", err)
	}
	return nil
}

func (rt *deps) connectionService() *connection.Service {
	return connection.NewFeature(rt.client, rt.cfg.Storage.Bucket, rt.logger, rt.db, rt.cfg.Reconcile).Service()
}
