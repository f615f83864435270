package main

import (
	"context"

	"estate_erp/internal/dao/mongodb"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Migrator prepares a database for the service: indexes plus pre-images on the watched collections.
type Migrator struct {
	db          *mongo.Database
	collections []string
	logger      *zap.Logger
}

func newMigrator(db *mongo.Database, collections []string, logger *zap.Logger) *Migrator {
	return &Migrator{db: db, collections: collections, logger: logger.Named("Migrator")}
}

func (m *Migrator) Run(ctx context.Context) error {
	if err := mongodb.EnsureIndexes(ctx, m.db, m.logger); err != nil {
		return err
	}
	if err := mongodb.EnablePreImages(ctx, m.db, m.collections, m.logger); err != nil {
		return err
	}
	m.logger.Info("migration finished", zap.Int("collections", len(m.collections)))
	return nil
}
