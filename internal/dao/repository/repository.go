package repository

import (
	"context"
	"estate_erp/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BuildingRepository interface {
	CreateBuilding(ctx context.Context, b *models.Building) (primitive.ObjectID, error)
	GetBuildingByID(ctx context.Context, id primitive.ObjectID, opts ...QueryOption) (*models.Building, error)
	FindBuilding(ctx context.Context, q BuildingQuery, opts ...QueryOption) (*models.Building, error)
	ListBuildings(ctx context.Context, limit, offset int, opts ...QueryOption) ([]*models.Building, int64, error)
	DeleteBuildingByID(ctx context.Context, id primitive.ObjectID) (*models.Building, error)
	SoftDeleteBuilding(ctx context.Context, id primitive.ObjectID, p SoftDeleteParams) (*models.Building, error)
	RestoreBuilding(ctx context.Context, id primitive.ObjectID, p RestoreParams) (*models.Building, error)
	UpdateBuildingCounters(ctx context.Context, id primitive.ObjectID, counters models.UnitCounters, floors int) error
}

type FloorUnitRepository interface {
	CreateFloorUnit(ctx context.Context, f *models.FloorUnit) (primitive.ObjectID, error)
	GetFloorUnitByID(ctx context.Context, id primitive.ObjectID, opts ...QueryOption) (*models.FloorUnit, error)
	ListFloorUnitsByBuilding(ctx context.Context, buildingID primitive.ObjectID, opts ...QueryOption) ([]*models.FloorUnit, error)
	FindFloorUnitIDsByBuilding(ctx context.Context, buildingID primitive.ObjectID, opts ...QueryOption) ([]primitive.ObjectID, error)
	DeleteFloorUnitByID(ctx context.Context, id primitive.ObjectID) (*models.FloorUnit, error)
	DeleteFloorUnitsByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error)
	SoftDeleteFloorUnit(ctx context.Context, id primitive.ObjectID, p SoftDeleteParams) (*models.FloorUnit, error)
	SoftDeleteFloorUnitsByIDs(ctx context.Context, ids []primitive.ObjectID, p SoftDeleteParams) (int64, error)
	RestoreFloorUnit(ctx context.Context, id primitive.ObjectID, p RestoreParams) (*models.FloorUnit, error)
	RestoreFloorUnitsByBuilding(ctx context.Context, buildingID primitive.ObjectID, p RestoreParams) ([]primitive.ObjectID, error)
}

type PropertyUnitRepository interface {
	CreatePropertyUnit(ctx context.Context, u *models.PropertyUnit) (primitive.ObjectID, error)
	GetPropertyUnitByID(ctx context.Context, id primitive.ObjectID, opts ...QueryOption) (*models.PropertyUnit, error)
	ListPropertyUnitsByFloor(ctx context.Context, floorID primitive.ObjectID, opts ...QueryOption) ([]*models.PropertyUnit, error)
	CountPendingUnitsByFloor(ctx context.Context, floorID primitive.ObjectID) (int64, error)
	CountUnitsByBuilding(ctx context.Context, buildingID primitive.ObjectID) (models.UnitCounters, error)
	UpdatePropertyUnit(ctx context.Context, id primitive.ObjectID, opts ...UpdateOption) (*models.PropertyUnit, error)
	DeletePropertyUnitByID(ctx context.Context, id primitive.ObjectID) (*models.PropertyUnit, error)
	DeletePropertyUnitsByFloors(ctx context.Context, floorIDs []primitive.ObjectID) (int64, error)
	SoftDeletePropertyUnit(ctx context.Context, id primitive.ObjectID, p SoftDeleteParams) (*models.PropertyUnit, error)
	SoftDeletePropertyUnitsByFloors(ctx context.Context, floorIDs []primitive.ObjectID, p SoftDeleteParams) (int64, error)
	RestorePropertyUnit(ctx context.Context, id primitive.ObjectID, p RestoreParams) (*models.PropertyUnit, error)
	RestorePropertyUnitsByFloors(ctx context.Context, floorIDs []primitive.ObjectID, p RestoreParams) (int64, error)
}

// AuditLogRepository is append-only: there is deliberately no update or delete.
type AuditLogRepository interface {
	Create(ctx context.Context, log *models.AuditLog) error
	Find(ctx context.Context, q AuditLogQuery) ([]*models.AuditLog, int64, error)
}

// ChangeStream is the cursor side of a change feed; *mongo.ChangeStream satisfies it.
type ChangeStream interface {
	Next(ctx context.Context) bool
	Decode(val interface{}) error
	Err() error
	ResumeToken() bson.Raw
	Close(ctx context.Context) error
}

// ChangeFeed opens change streams scoped to a collection allow-list.
type ChangeFeed interface {
	Watch(ctx context.Context, collections []string, resumeAfter bson.Raw) (ChangeStream, error)
}
