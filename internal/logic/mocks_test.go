package logic

import (
	"context"

	"estate_erp/internal/dao/repository"
	"estate_erp/internal/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Mock BuildingRepository ---

type mockBuildingRepository struct {
	mock.Mock
}

func newMockBuildingRepository() *mockBuildingRepository {
	return &mockBuildingRepository{}
}

func (m *mockBuildingRepository) CreateBuilding(ctx context.Context, b *models.Building) (primitive.ObjectID, error) {
	args := m.Called(ctx, b)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockBuildingRepository) GetBuildingByID(ctx context.Context, id primitive.ObjectID, opts ...repository.QueryOption) (*models.Building, error) {
	args := m.Called(ctx, id, repository.NewQueryOptions(opts...).Scope)
	if b := args.Get(0); b != nil {
		return b.(*models.Building), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBuildingRepository) FindBuilding(ctx context.Context, q repository.BuildingQuery, opts ...repository.QueryOption) (*models.Building, error) {
	args := m.Called(ctx, q, repository.NewQueryOptions(opts...).Scope)
	if b := args.Get(0); b != nil {
		return b.(*models.Building), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBuildingRepository) ListBuildings(ctx context.Context, limit, offset int, opts ...repository.QueryOption) ([]*models.Building, int64, error) {
	args := m.Called(ctx, limit, offset, repository.NewQueryOptions(opts...).Scope)
	if b := args.Get(0); b != nil {
		return b.([]*models.Building), args.Get(1).(int64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *mockBuildingRepository) DeleteBuildingByID(ctx context.Context, id primitive.ObjectID) (*models.Building, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*models.Building), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBuildingRepository) SoftDeleteBuilding(ctx context.Context, id primitive.ObjectID, p repository.SoftDeleteParams) (*models.Building, error) {
	args := m.Called(ctx, id, p)
	if b := args.Get(0); b != nil {
		return b.(*models.Building), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBuildingRepository) RestoreBuilding(ctx context.Context, id primitive.ObjectID, p repository.RestoreParams) (*models.Building, error) {
	args := m.Called(ctx, id, p)
	if b := args.Get(0); b != nil {
		return b.(*models.Building), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBuildingRepository) UpdateBuildingCounters(ctx context.Context, id primitive.ObjectID, counters models.UnitCounters, floors int) error {
	args := m.Called(ctx, id, counters, floors)
	return args.Error(0)
}

// --- Mock FloorUnitRepository ---

type mockFloorUnitRepository struct {
	mock.Mock
}

func newMockFloorUnitRepository() *mockFloorUnitRepository {
	return &mockFloorUnitRepository{}
}

func (m *mockFloorUnitRepository) CreateFloorUnit(ctx context.Context, f *models.FloorUnit) (primitive.ObjectID, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockFloorUnitRepository) GetFloorUnitByID(ctx context.Context, id primitive.ObjectID, opts ...repository.QueryOption) (*models.FloorUnit, error) {
	args := m.Called(ctx, id, repository.NewQueryOptions(opts...).Scope)
	if f := args.Get(0); f != nil {
		return f.(*models.FloorUnit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFloorUnitRepository) ListFloorUnitsByBuilding(ctx context.Context, buildingID primitive.ObjectID, opts ...repository.QueryOption) ([]*models.FloorUnit, error) {
	args := m.Called(ctx, buildingID, repository.NewQueryOptions(opts...).Scope)
	if f := args.Get(0); f != nil {
		return f.([]*models.FloorUnit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFloorUnitRepository) FindFloorUnitIDsByBuilding(ctx context.Context, buildingID primitive.ObjectID, opts ...repository.QueryOption) ([]primitive.ObjectID, error) {
	args := m.Called(ctx, buildingID, repository.NewQueryOptions(opts...).Scope)
	if ids := args.Get(0); ids != nil {
		return ids.([]primitive.ObjectID), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFloorUnitRepository) DeleteFloorUnitByID(ctx context.Context, id primitive.ObjectID) (*models.FloorUnit, error) {
	args := m.Called(ctx, id)
	if f := args.Get(0); f != nil {
		return f.(*models.FloorUnit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFloorUnitRepository) DeleteFloorUnitsByIDs(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockFloorUnitRepository) SoftDeleteFloorUnit(ctx context.Context, id primitive.ObjectID, p repository.SoftDeleteParams) (*models.FloorUnit, error) {
	args := m.Called(ctx, id, p)
	if f := args.Get(0); f != nil {
		return f.(*models.FloorUnit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFloorUnitRepository) SoftDeleteFloorUnitsByIDs(ctx context.Context, ids []primitive.ObjectID, p repository.SoftDeleteParams) (int64, error) {
	args := m.Called(ctx, ids, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockFloorUnitRepository) RestoreFloorUnit(ctx context.Context, id primitive.ObjectID, p repository.RestoreParams) (*models.FloorUnit, error) {
	args := m.Called(ctx, id, p)
	if f := args.Get(0); f != nil {
		return f.(*models.FloorUnit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockFloorUnitRepository) RestoreFloorUnitsByBuilding(ctx context.Context, buildingID primitive.ObjectID, p repository.RestoreParams) ([]primitive.ObjectID, error) {
	args := m.Called(ctx, buildingID, p)
	if ids := args.Get(0); ids != nil {
		return ids.([]primitive.ObjectID), args.Error(1)
	}
	return nil, args.Error(1)
}

// --- Mock PropertyUnitRepository ---

type mockPropertyUnitRepository struct {
	mock.Mock
}

func newMockPropertyUnitRepository() *mockPropertyUnitRepository {
	return &mockPropertyUnitRepository{}
}

func (m *mockPropertyUnitRepository) CreatePropertyUnit(ctx context.Context, u *models.PropertyUnit) (primitive.ObjectID, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *mockPropertyUnitRepository) GetPropertyUnitByID(ctx context.Context, id primitive.ObjectID, opts ...repository.QueryOption) (*models.PropertyUnit, error) {
	args := m.Called(ctx, id, repository.NewQueryOptions(opts...).Scope)
	if u := args.Get(0); u != nil {
		return u.(*models.PropertyUnit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPropertyUnitRepository) ListPropertyUnitsByFloor(ctx context.Context, floorID primitive.ObjectID, opts ...repository.QueryOption) ([]*models.PropertyUnit, error) {
	args := m.Called(ctx, floorID, repository.NewQueryOptions(opts...).Scope)
	if u := args.Get(0); u != nil {
		return u.([]*models.PropertyUnit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPropertyUnitRepository) CountPendingUnitsByFloor(ctx context.Context, floorID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, floorID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPropertyUnitRepository) CountUnitsByBuilding(ctx context.Context, buildingID primitive.ObjectID) (models.UnitCounters, error) {
	args := m.Called(ctx, buildingID)
	return args.Get(0).(models.UnitCounters), args.Error(1)
}

func (m *mockPropertyUnitRepository) UpdatePropertyUnit(ctx context.Context, id primitive.ObjectID, opts ...repository.UpdateOption) (*models.PropertyUnit, error) {
	o := repository.NewUpdateOptions()
	for _, opt := range opts {
		opt(o)
	}
	args := m.Called(ctx, id, o.SetFields)
	if u := args.Get(0); u != nil {
		return u.(*models.PropertyUnit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPropertyUnitRepository) DeletePropertyUnitByID(ctx context.Context, id primitive.ObjectID) (*models.PropertyUnit, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*models.PropertyUnit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPropertyUnitRepository) DeletePropertyUnitsByFloors(ctx context.Context, floorIDs []primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, floorIDs)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPropertyUnitRepository) SoftDeletePropertyUnit(ctx context.Context, id primitive.ObjectID, p repository.SoftDeleteParams) (*models.PropertyUnit, error) {
	args := m.Called(ctx, id, p)
	if u := args.Get(0); u != nil {
		return u.(*models.PropertyUnit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPropertyUnitRepository) SoftDeletePropertyUnitsByFloors(ctx context.Context, floorIDs []primitive.ObjectID, p repository.SoftDeleteParams) (int64, error) {
	args := m.Called(ctx, floorIDs, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockPropertyUnitRepository) RestorePropertyUnit(ctx context.Context, id primitive.ObjectID, p repository.RestoreParams) (*models.PropertyUnit, error) {
	args := m.Called(ctx, id, p)
	if u := args.Get(0); u != nil {
		return u.(*models.PropertyUnit), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockPropertyUnitRepository) RestorePropertyUnitsByFloors(ctx context.Context, floorIDs []primitive.ObjectID, p repository.RestoreParams) (int64, error) {
	args := m.Called(ctx, floorIDs, p)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock AuditLogRepository ---

type mockAuditLogRepository struct {
	mock.Mock
}

func newMockAuditLogRepository() *mockAuditLogRepository {
	return &mockAuditLogRepository{}
}

func (m *mockAuditLogRepository) Create(ctx context.Context, log *models.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *mockAuditLogRepository) Find(ctx context.Context, q repository.AuditLogQuery) ([]*models.AuditLog, int64, error) {
	args := m.Called(ctx, q)
	if logs := args.Get(0); logs != nil {
		return logs.([]*models.AuditLog), args.Get(1).(int64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

var (
	_ repository.BuildingRepository     = (*mockBuildingRepository)(nil)
	_ repository.FloorUnitRepository    = (*mockFloorUnitRepository)(nil)
	_ repository.PropertyUnitRepository = (*mockPropertyUnitRepository)(nil)
	_ repository.AuditLogRepository     = (*mockAuditLogRepository)(nil)
)
