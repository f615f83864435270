package mongodb

import (
	"context"
	"errors"

	"estate_erp/internal/constants"
	"estate_erp/internal/dao/fields"
	"estate_erp/internal/dao/repository"
	"estate_erp/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func NewPropertyUnitsDAO(db *mongo.Database, logger *zap.Logger) *PropertyUnitsDAO {
	return &PropertyUnitsDAO{
		units:  newSoftDeleteCollection(db.Collection(CollectionPropertyUnits)),
		logger: logger.Named("PropertyUnitsDAO"),
	}
}

type PropertyUnitsDAO struct {
	units  *softDeleteCollection
	logger *zap.Logger
}

// CreatePropertyUnit returns ErrDuplicate when the floor already has this plot number.
func (d *PropertyUnitsDAO) CreatePropertyUnit(ctx context.Context, u *models.PropertyUnit) (primitive.ObjectID, error) {
	id, err := insertedID(d.units.InsertOne(ctx, u))
	if err != nil && !errors.Is(err, ErrDuplicate) {
		d.logger.Error("CreatePropertyUnit: InsertOne failed", zap.Error(err), zap.Stringer("floorID", u.FloorID), zap.String("plotNo", u.PlotNo))
	}
	return id, err
}

func (d *PropertyUnitsDAO) GetPropertyUnitByID(ctx context.Context, id primitive.ObjectID, opts ...repository.QueryOption) (*models.PropertyUnit, error) {
	var u models.PropertyUnit
	if err := decodeSingle(d.units.View(opts...).FindOne(ctx, bson.M{fields.FieldObjectId: id}), &u); err != nil {
		if !errors.Is(err, ErrNotFound) {
			d.logger.Error("GetPropertyUnitByID: FindOne failed", zap.Error(err), zap.Stringer("unitID", id))
		}
		return nil, err
	}
	return &u, nil
}

func (d *PropertyUnitsDAO) ListPropertyUnitsByFloor(ctx context.Context, floorID primitive.ObjectID, opts ...repository.QueryOption) ([]*models.PropertyUnit, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: fields.FieldUnitPlotNo, Value: 1}})
	cursor, err := d.units.View(opts...).Find(ctx, bson.M{fields.FieldUnitFloor: floorID}, findOpts)
	if err != nil {
		d.logger.Error("ListPropertyUnitsByFloor: Find failed", zap.Error(err), zap.Stringer("floorID", floorID))
		return nil, err
	}
	defer cursor.Close(ctx)

	res := make([]*models.PropertyUnit, 0)
	if err := cursor.All(ctx, &res); err != nil {
		d.logger.Error("ListPropertyUnitsByFloor: cursor.All failed", zap.Error(err), zap.Stringer("floorID", floorID))
		return nil, err
	}
	return res, nil
}

// CountPendingUnitsByFloor counts the floor's live units whose project status is not completed.
func (d *PropertyUnitsDAO) CountPendingUnitsByFloor(ctx context.Context, floorID primitive.ObjectID) (int64, error) {
	filter := bson.M{
		fields.FieldUnitFloor:         floorID,
		fields.FieldUnitProjectStatus: bson.M{"$ne": constants.ProjectStatusCompleted.String()},
	}
	n, err := d.units.View().CountDocuments(ctx, filter)
	if err != nil {
		d.logger.Error("CountPendingUnitsByFloor: CountDocuments failed", zap.Error(err), zap.Stringer("floorID", floorID))
		return 0, err
	}
	return n, nil
}

// CountUnitsByBuilding aggregates the building's live units by sale status.
func (d *PropertyUnitsDAO) CountUnitsByBuilding(ctx context.Context, buildingID primitive.ObjectID) (models.UnitCounters, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{fields.FieldUnitBuilding: buildingID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$" + fields.FieldUnitSaleStatus,
			"count": bson.M{"$sum": 1},
		}}},
	}
	cursor, err := d.units.View().Aggregate(ctx, pipeline)
	if err != nil {
		d.logger.Error("CountUnitsByBuilding: Aggregate failed", zap.Error(err), zap.Stringer("buildingID", buildingID))
		return models.UnitCounters{}, err
	}
	defer cursor.Close(ctx)

	var rows []struct {
		SaleStatus string `bson:"_id"`
		Count      int    `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		d.logger.Error("CountUnitsByBuilding: cursor.All failed", zap.Error(err), zap.Stringer("buildingID", buildingID))
		return models.UnitCounters{}, err
	}

	var c models.UnitCounters
	for _, r := range rows {
		c.Total += r.Count
		switch constants.ParseSaleStatus(r.SaleStatus) {
		case constants.SaleStatusAvailable:
			c.Available += r.Count
		case constants.SaleStatusSold:
			c.Sold += r.Count
		}
	}
	return c, nil
}

func (d *PropertyUnitsDAO) UpdatePropertyUnit(ctx context.Context, id primitive.ObjectID, opts ...repository.UpdateOption) (*models.PropertyUnit, error) {
	o := repository.NewUpdateOptions()
	for _, opt := range opts {
		opt(o)
	}
	if len(o.SetFields) == 0 {
		return d.GetPropertyUnitByID(ctx, id)
	}

	var u models.PropertyUnit
	res := d.units.View().FindOneAndUpdate(ctx, bson.M{fields.FieldObjectId: id}, bson.M{"$set": o.SetFields}, returnAfter())
	if err := decodeSingle(res, &u); err != nil {
		if !errors.Is(err, ErrNotFound) {
			d.logger.Error("UpdatePropertyUnit: FindOneAndUpdate failed", zap.Error(err), zap.Stringer("unitID", id))
		}
		return nil, err
	}
	return &u, nil
}

func (d *PropertyUnitsDAO) DeletePropertyUnitByID(ctx context.Context, id primitive.ObjectID) (*models.PropertyUnit, error) {
	var u models.PropertyUnit
	res := d.units.View(repository.WithDeleted()).FindOneAndDelete(ctx, bson.M{fields.FieldObjectId: id})
	if err := decodeSingle(res, &u); err != nil {
		if !errors.Is(err, ErrNotFound) {
			d.logger.Error("DeletePropertyUnitByID: FindOneAndDelete failed", zap.Error(err), zap.Stringer("unitID", id))
		}
		return nil, err
	}
	return &u, nil
}

// DeletePropertyUnitsByFloors physically removes every unit on the floors, soft-deleted ones included.
func (d *PropertyUnitsDAO) DeletePropertyUnitsByFloors(ctx context.Context, floorIDs []primitive.ObjectID) (int64, error) {
	if len(floorIDs) == 0 {
		return 0, nil
	}
	res, err := d.units.View(repository.WithDeleted()).DeleteMany(ctx, bson.M{fields.FieldUnitFloor: bson.M{"$in": floorIDs}})
	if err != nil {
		d.logger.Error("DeletePropertyUnitsByFloors: DeleteMany failed", zap.Error(err), zap.Int("floors", len(floorIDs)))
		return 0, err
	}
	return res.DeletedCount, nil
}

func (d *PropertyUnitsDAO) SoftDeletePropertyUnit(ctx context.Context, id primitive.ObjectID, p repository.SoftDeleteParams) (*models.PropertyUnit, error) {
	var u models.PropertyUnit
	res := d.units.View().FindOneAndUpdate(ctx, bson.M{fields.FieldObjectId: id}, softDeleteUpdate(p), returnAfter())
	if err := decodeSingle(res, &u); err != nil {
		if !errors.Is(err, ErrNotFound) {
			d.logger.Error("SoftDeletePropertyUnit: FindOneAndUpdate failed", zap.Error(err), zap.Stringer("unitID", id))
		}
		return nil, err
	}
	return &u, nil
}

func (d *PropertyUnitsDAO) SoftDeletePropertyUnitsByFloors(ctx context.Context, floorIDs []primitive.ObjectID, p repository.SoftDeleteParams) (int64, error) {
	if len(floorIDs) == 0 {
		return 0, nil
	}
	res, err := d.units.View().UpdateMany(ctx, bson.M{fields.FieldUnitFloor: bson.M{"$in": floorIDs}}, softDeleteUpdate(p))
	if err != nil {
		d.logger.Error("SoftDeletePropertyUnitsByFloors: UpdateMany failed", zap.Error(err), zap.Int("floors", len(floorIDs)))
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (d *PropertyUnitsDAO) RestorePropertyUnit(ctx context.Context, id primitive.ObjectID, p repository.RestoreParams) (*models.PropertyUnit, error) {
	var u models.PropertyUnit
	res := d.units.View(repository.OnlyDeleted()).FindOneAndUpdate(ctx, bson.M{fields.FieldObjectId: id}, restoreUpdate(p), returnAfter())
	if err := decodeSingle(res, &u); err != nil {
		if !errors.Is(err, ErrNotFound) {
			d.logger.Error("RestorePropertyUnit: FindOneAndUpdate failed", zap.Error(err), zap.Stringer("unitID", id))
		}
		return nil, err
	}
	return &u, nil
}

// RestorePropertyUnitsByFloors restores the floors' units stamped with p.DeletedAt.
func (d *PropertyUnitsDAO) RestorePropertyUnitsByFloors(ctx context.Context, floorIDs []primitive.ObjectID, p repository.RestoreParams) (int64, error) {
	if len(floorIDs) == 0 {
		return 0, nil
	}
	filter := bson.M{
		fields.FieldUnitFloor: bson.M{"$in": floorIDs},
		fields.FieldDeletedAt: p.DeletedAt,
	}
	res, err := d.units.View(repository.OnlyDeleted()).UpdateMany(ctx, filter, restoreUpdate(p))
	if err != nil {
		d.logger.Error("RestorePropertyUnitsByFloors: UpdateMany failed", zap.Error(err), zap.Int("floors", len(floorIDs)))
		return 0, err
	}
	return res.ModifiedCount, nil
}

var _ repository.PropertyUnitRepository = (*PropertyUnitsDAO)(nil)
