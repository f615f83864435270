package mongodb

import (
	"context"
	"errors"
	"fmt"

	"estate_erp/internal/dao/fields"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const errCodeNamespaceNotFound = 26

// EnsureIndexes creates the compound uniqueness constraints of the building hierarchy and the audit lookup indexes.
func EnsureIndexes(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	specs := map[string][]mongo.IndexModel{
		CollectionFloorUnits: {
			{
				Keys:    bson.D{{Key: fields.FieldFloorBuilding, Value: 1}, {Key: fields.FieldFloorNumber, Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_building_floor_number"),
			},
		},
		CollectionPropertyUnits: {
			{
				Keys:    bson.D{{Key: fields.FieldUnitFloor, Value: 1}, {Key: fields.FieldUnitPlotNo, Value: 1}},
				Options: options.Index().SetUnique(true).SetName("uniq_floor_plot_no"),
			},
			{
				Keys:    bson.D{{Key: fields.FieldUnitBuilding, Value: 1}, {Key: fields.FieldUnitSaleStatus, Value: 1}},
				Options: options.Index().SetName("building_sale_status"),
			},
		},
		CollectionAuditLogs: {
			{
				Keys:    bson.D{{Key: fields.FieldAuditCollectionName, Value: 1}, {Key: fields.FieldAuditDocumentID, Value: 1}},
				Options: options.Index().SetName("collection_document"),
			},
			{
				Keys:    bson.D{{Key: fields.FieldCreatedAt, Value: -1}},
				Options: options.Index().SetName("created_at_desc"),
			},
		},
	}

	for coll, models := range specs {
		names, err := db.Collection(coll).Indexes().CreateMany(ctx, models)
		if err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
		logger.Info("indexes ensured", zap.String("collection", coll), zap.Strings("indexes", names))
	}
	return nil
}

// EnablePreImages turns on changeStreamPreAndPostImages so update events carry a before-image.
// Collections that do not exist yet are created with the option set.
func EnablePreImages(ctx context.Context, db *mongo.Database, collections []string, logger *zap.Logger) error {
	for _, coll := range collections {
		cmd := bson.D{
			{Key: "collMod", Value: coll},
			{Key: "changeStreamPreAndPostImages", Value: bson.M{"enabled": true}},
		}
		err := db.RunCommand(ctx, cmd).Err()
		if err == nil {
			continue
		}

		var se mongo.ServerError
		if !errors.As(err, &se) || !se.HasErrorCode(errCodeNamespaceNotFound) {
			return fmt.Errorf("enable pre-images on %s: %w", coll, err)
		}

		createOpts := options.CreateCollection().SetChangeStreamPreAndPostImages(bson.M{"enabled": true})
		if err := db.CreateCollection(ctx, coll, createOpts); err != nil {
			return fmt.Errorf("create %s with pre-images: %w", coll, err)
		}
		logger.Info("collection created with pre-images", zap.String("collection", coll))
	}
	return nil
}
