package mongodb

import (
	"context"
	"errors"
	"time"

	"estate_erp/internal/dao/fields"
	"estate_erp/internal/dao/repository"
	"estate_erp/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func NewBuildingsDAO(db *mongo.Database, logger *zap.Logger) *BuildingsDAO {
	return &BuildingsDAO{
		buildings: newSoftDeleteCollection(db.Collection(CollectionBuildings)),
		logger:    logger.Named("BuildingsDAO"),
	}
}

type BuildingsDAO struct {
	buildings *softDeleteCollection
	logger    *zap.Logger
}

func (d *BuildingsDAO) CreateBuilding(ctx context.Context, b *models.Building) (primitive.ObjectID, error) {
	id, err := insertedID(d.buildings.InsertOne(ctx, b))
	if err != nil && !errors.Is(err, ErrDuplicate) {
		d.logger.Error("CreateBuilding: InsertOne failed", zap.Error(err), zap.String("name", b.Name))
	}
	return id, err
}

func (d *BuildingsDAO) GetBuildingByID(ctx context.Context, id primitive.ObjectID, opts ...repository.QueryOption) (*models.Building, error) {
	return d.FindBuilding(ctx, repository.BuildingQuery{ID: &id}, opts...)
}

func (d *BuildingsDAO) FindBuilding(ctx context.Context, q repository.BuildingQuery, opts ...repository.QueryOption) (*models.Building, error) {
	filter := bson.M{}
	if q.ID != nil {
		filter[fields.FieldObjectId] = *q.ID
	}
	if q.Code != "" {
		filter[fields.FieldBuildingCode] = q.Code
	}
	if q.Name != "" {
		filter[fields.FieldName] = q.Name
	}

	var b models.Building
	if err := decodeSingle(d.buildings.View(opts...).FindOne(ctx, filter), &b); err != nil {
		if !errors.Is(err, ErrNotFound) {
			d.logger.Error("FindBuilding: FindOne failed", zap.Error(err), zap.Any("query", q))
		}
		return nil, err
	}
	return &b, nil
}

func (d *BuildingsDAO) ListBuildings(ctx context.Context, limit, offset int, opts ...repository.QueryOption) ([]*models.Building, int64, error) {
	view := d.buildings.View(opts...)

	total, err := view.CountDocuments(ctx, bson.M{})
	if err != nil {
		d.logger.Error("ListBuildings: CountDocuments failed", zap.Error(err))
		return nil, 0, err
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: fields.FieldCreatedAt, Value: -1}, {Key: fields.FieldObjectId, Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cursor, err := view.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		d.logger.Error("ListBuildings: Find failed", zap.Error(err))
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	res := make([]*models.Building, 0)
	if err := cursor.All(ctx, &res); err != nil {
		d.logger.Error("ListBuildings: cursor.All failed", zap.Error(err))
		return nil, 0, err
	}
	return res, total, nil
}

// DeleteBuildingByID physically removes the building whether or not it is soft-deleted.
func (d *BuildingsDAO) DeleteBuildingByID(ctx context.Context, id primitive.ObjectID) (*models.Building, error) {
	var b models.Building
	res := d.buildings.View(repository.WithDeleted()).FindOneAndDelete(ctx, bson.M{fields.FieldObjectId: id})
	if err := decodeSingle(res, &b); err != nil {
		if !errors.Is(err, ErrNotFound) {
			d.logger.Error("DeleteBuildingByID: FindOneAndDelete failed", zap.Error(err), zap.Stringer("buildingID", id))
		}
		return nil, err
	}
	return &b, nil
}

func (d *BuildingsDAO) SoftDeleteBuilding(ctx context.Context, id primitive.ObjectID, p repository.SoftDeleteParams) (*models.Building, error) {
	var b models.Building
	res := d.buildings.View().FindOneAndUpdate(ctx, bson.M{fields.FieldObjectId: id}, softDeleteUpdate(p), returnAfter())
	if err := decodeSingle(res, &b); err != nil {
		if !errors.Is(err, ErrNotFound) {
			d.logger.Error("SoftDeleteBuilding: FindOneAndUpdate failed", zap.Error(err), zap.Stringer("buildingID", id))
		}
		return nil, err
	}
	return &b, nil
}

func (d *BuildingsDAO) RestoreBuilding(ctx context.Context, id primitive.ObjectID, p repository.RestoreParams) (*models.Building, error) {
	var b models.Building
	res := d.buildings.View(repository.OnlyDeleted()).FindOneAndUpdate(ctx, bson.M{fields.FieldObjectId: id}, restoreUpdate(p), returnAfter())
	if err := decodeSingle(res, &b); err != nil {
		if !errors.Is(err, ErrNotFound) {
			d.logger.Error("RestoreBuilding: FindOneAndUpdate failed", zap.Error(err), zap.Stringer("buildingID", id))
		}
		return nil, err
	}
	return &b, nil
}

func (d *BuildingsDAO) UpdateBuildingCounters(ctx context.Context, id primitive.ObjectID, counters models.UnitCounters, floors int) error {
	update := bson.M{"$set": bson.M{
		fields.FieldBuildingTotalUnits:     counters.Total,
		fields.FieldBuildingAvailableUnits: counters.Available,
		fields.FieldBuildingSoldUnits:      counters.Sold,
		fields.FieldBuildingTotalFloors:    floors,
		fields.FieldUpdatedAt:              time.Now(),
	}}
	res, err := d.buildings.View(repository.WithDeleted()).UpdateMany(ctx, bson.M{fields.FieldObjectId: id}, update)
	if err != nil {
		d.logger.Error("UpdateBuildingCounters: UpdateMany failed", zap.Error(err), zap.Stringer("buildingID", id))
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

var _ repository.BuildingRepository = (*BuildingsDAO)(nil)
