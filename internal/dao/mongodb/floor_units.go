package mongodb

import (
	"context"
	"errors"

	"estate_erp/internal/dao/fields"
	"estate_erp/internal/dao/repository"
	"estate_erp/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func NewFloorUnitsDAO(db *mongo.Database, logger *zap.Logger) *FloorUnitsDAO {
	return &FloorUnitsDAO{
		floors: newSoftDeleteCollection(db.Collection(CollectionFloorUnits)),
		logger: logger.Named("FloorUnitsDAO"),
	}
}

type FloorUnitsDAO struct {
	floors *softDeleteCollection
	logger *zap.Logger
}

// CreateFloorUnit returns ErrDuplicate when the building already has this floor number.
func (d *FloorUnitsDAO) CreateFloorUnit(ctx context.Context, f *models.FloorUnit) (primitive.ObjectID, error) {
	id, err := insertedID(d.floors.InsertOne(ctx, f))
	if err != nil && !errors.Is(err, ErrDuplicate) {
		d.logger.Error("CreateFloorUnit: InsertOne failed", zap.Error(err), zap.Stringer("buildingID", f.BuildingID), zap.Int("floorNumber", f.FloorNumber))
	}
	return id, err
}

func (d *FloorUnitsDAO) GetFloorUnitByID(ctx context.Context, id primitive.ObjectID, opts ...repository.QueryOption) (*models.FloorUnit, error) {
	var f models.FloorUnit
	if err := decodeSingle(d.floors.View(opts...).FindOne(ctx, bson.M{fields.FieldObjectId: id}), &f); err != nil {
		if !errors.Is(err, ErrNotFound) {
			d.logger.Error("GetFloorUnitByID: FindOne failed", zap.Error(err), zap.Stringer("floorID", id))
		}
		return nil, err
	}
	return &f, nil
}

func (d *FloorUnitsDAO) ListFloorUnitsByBuilding(ctx context.Context, buildingID primitive.ObjectID, opts ...repository.QueryOption) ([]*models.FloorUnit, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: fields.FieldFloorNumber, Value: 1}})
	cursor, err := d.floors.View(opts...).Find(ctx, bson.M{fields.FieldFloorBuilding: buildingID}, findOpts)
	if err != nil {
		d.logger.Error("ListFloorUnitsByBuilding: Find failed", zap.Error(err), zap.Stringer("buildingID", buildingID))
		return nil, err
	}
	defer cursor.Close(ctx)

	res := make([]*models.FloorUnit, 0)
	if err := cursor.All(ctx, &res); err != nil {
		d.logger.Error("ListFloorUnitsByBuilding: cursor.All failed", zap.Error(err), zap.Stringer("buildingID", buildingID))
		return nil, err
	}
	return res, nil
}

func (d *FloorUnitsDAO) FindFloorUnitIDsByBuilding(ctx context.Context, buildingID primitive.ObjectID, opts ...repository.QueryOption) ([]primitive.ObjectID, error) {
	findOpts := options.Find().SetProjection(bson.M{fields.FieldObjectId: 1})
	cursor, err := d.floors.View(opts...).Find(ctx, bson.M{fields.FieldFloorBuilding: buildingID}, findOpts)
	if err != nil {
		d.logger.Error("FindFloorUnitIDsByBuilding: Find failed", zap.Error(err), zap.Stringer("buildingID", buildingID))
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		d.logger.Error("FindFloorUnitIDsByBuilding: cursor.All failed", zap.Error(err), zap.Stringer("buildingID", buildingID))
		return nil, err
	}

	ids := make([]primitive.ObjectID, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids, nil
}

func (d *FloorUnitsDAO) DeleteFloorUnitByID(ctx context.Context, id primitive.ObjectID) (*models.FloorUnit, error) {
	var f models.FloorUnit
	res := d.floors.View(repository.WithDeleted()).FindOneAndDelete(ctx, bson.M{fields.FieldObjectId: id})
	if err := decodeSingle(res, &f); err != nil {
		if !errors.Is(err, ErrNotFound) {
			d.logger.Error("DeleteFloorUnitByID: FindOneAndDelete failed", zap.Error(err), zap.Stringer("floorID", id))
		}
		return nil, err
	}
	return &f, nil
}

// DeleteFloorUnitsByIDs physically removes the floors, soft-deleted ones included.
func (d *FloorUnitsDAO) DeleteFloorUnitsByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := d.floors.View(repository.WithDeleted()).DeleteMany(ctx, bson.M{fields.FieldObjectId: bson.M{"$in": ids}})
	if err != nil {
		d.logger.Error("DeleteFloorUnitsByIDs: DeleteMany failed", zap.Error(err), zap.Int("count", len(ids)))
		return 0, err
	}
	return res.DeletedCount, nil
}

func (d *FloorUnitsDAO) SoftDeleteFloorUnit(ctx context.Context, id primitive.ObjectID, p repository.SoftDeleteParams) (*models.FloorUnit, error) {
	var f models.FloorUnit
	res := d.floors.View().FindOneAndUpdate(ctx, bson.M{fields.FieldObjectId: id}, softDeleteUpdate(p), returnAfter())
	if err := decodeSingle(res, &f); err != nil {
		if !errors.Is(err, ErrNotFound) {
			d.logger.Error("SoftDeleteFloorUnit: FindOneAndUpdate failed", zap.Error(err), zap.Stringer("floorID", id))
		}
		return nil, err
	}
	return &f, nil
}

// SoftDeleteFloorUnitsByIDs only touches floors that are still live, so earlier deletion stamps survive.
func (d *FloorUnitsDAO) SoftDeleteFloorUnitsByIDs(ctx context.Context, ids []primitive.ObjectID, p repository.SoftDeleteParams) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res, err := d.floors.View().UpdateMany(ctx, bson.M{fields.FieldObjectId: bson.M{"$in": ids}}, softDeleteUpdate(p))
	if err != nil {
		d.logger.Error("SoftDeleteFloorUnitsByIDs: UpdateMany failed", zap.Error(err), zap.Int("count", len(ids)))
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (d *FloorUnitsDAO) RestoreFloorUnit(ctx context.Context, id primitive.ObjectID, p repository.RestoreParams) (*models.FloorUnit, error) {
	var f models.FloorUnit
	res := d.floors.View(repository.OnlyDeleted()).FindOneAndUpdate(ctx, bson.M{fields.FieldObjectId: id}, restoreUpdate(p), returnAfter())
	if err := decodeSingle(res, &f); err != nil {
		if !errors.Is(err, ErrNotFound) {
			d.logger.Error("RestoreFloorUnit: FindOneAndUpdate failed", zap.Error(err), zap.Stringer("floorID", id))
		}
		return nil, err
	}
	return &f, nil
}

// RestoreFloorUnitsByBuilding restores the building's floors stamped with p.DeletedAt and returns their ids.
func (d *FloorUnitsDAO) RestoreFloorUnitsByBuilding(ctx context.Context, buildingID primitive.ObjectID, p repository.RestoreParams) ([]primitive.ObjectID, error) {
	view := d.floors.View(repository.OnlyDeleted())
	filter := bson.M{
		fields.FieldFloorBuilding: buildingID,
		fields.FieldDeletedAt:     p.DeletedAt,
	}

	cursor, err := view.Find(ctx, filter, options.Find().SetProjection(bson.M{fields.FieldObjectId: 1}))
	if err != nil {
		d.logger.Error("RestoreFloorUnitsByBuilding: Find failed", zap.Error(err), zap.Stringer("buildingID", buildingID))
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		d.logger.Error("RestoreFloorUnitsByBuilding: cursor.All failed", zap.Error(err), zap.Stringer("buildingID", buildingID))
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]primitive.ObjectID, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	if _, err := view.UpdateMany(ctx, bson.M{fields.FieldObjectId: bson.M{"$in": ids}}, restoreUpdate(p)); err != nil {
		d.logger.Error("RestoreFloorUnitsByBuilding: UpdateMany failed", zap.Error(err), zap.Stringer("buildingID", buildingID))
		return nil, err
	}
	return ids, nil
}

var _ repository.FloorUnitRepository = (*FloorUnitsDAO)(nil)
