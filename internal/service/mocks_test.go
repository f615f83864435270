package service

import (
	"context"

	"estate_erp/internal/constants"
	"estate_erp/internal/dao/repository"
	"estate_erp/internal/dto"
	"estate_erp/internal/models"
	"estate_erp/pkg/pagination"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockEntityLogic struct {
	mock.Mock
}

func (m *MockEntityLogic) Delete(ctx context.Context, entity constants.EntityType, id, actor primitive.ObjectID, hard bool) (interface{}, error) {
	args := m.Called(ctx, entity, id, actor, hard)
	return args.Get(0), args.Error(1)
}

func (m *MockEntityLogic) Restore(ctx context.Context, entity constants.EntityType, id, actor primitive.ObjectID) (interface{}, error) {
	args := m.Called(ctx, entity, id, actor)
	return args.Get(0), args.Error(1)
}

func (m *MockEntityLogic) DeleteBuilding(ctx context.Context, id, actor primitive.ObjectID, hard bool) (*models.Building, error) {
	args := m.Called(ctx, id, actor, hard)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Building), args.Error(1)
}

func (m *MockEntityLogic) FindAndDeleteBuilding(ctx context.Context, q repository.BuildingQuery, actor primitive.ObjectID, hard bool) (*models.Building, error) {
	args := m.Called(ctx, q, actor, hard)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Building), args.Error(1)
}

func (m *MockEntityLogic) DeleteFloorUnit(ctx context.Context, id, actor primitive.ObjectID, hard bool) (*models.FloorUnit, error) {
	args := m.Called(ctx, id, actor, hard)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FloorUnit), args.Error(1)
}

func (m *MockEntityLogic) DeletePropertyUnit(ctx context.Context, id, actor primitive.ObjectID, hard bool) (*models.PropertyUnit, error) {
	args := m.Called(ctx, id, actor, hard)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PropertyUnit), args.Error(1)
}

func (m *MockEntityLogic) RestoreBuilding(ctx context.Context, id, actor primitive.ObjectID) (*models.Building, error) {
	args := m.Called(ctx, id, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Building), args.Error(1)
}

func (m *MockEntityLogic) RestoreFloorUnit(ctx context.Context, id, actor primitive.ObjectID) (*models.FloorUnit, error) {
	args := m.Called(ctx, id, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FloorUnit), args.Error(1)
}

func (m *MockEntityLogic) RestorePropertyUnit(ctx context.Context, id, actor primitive.ObjectID) (*models.PropertyUnit, error) {
	args := m.Called(ctx, id, actor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PropertyUnit), args.Error(1)
}

type MockHierarchyLogic struct {
	mock.Mock
}

func (m *MockHierarchyLogic) CreateBuilding(ctx context.Context, actor primitive.ObjectID, req *dto.CreateBuildingRequest) (*models.Building, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Building), args.Error(1)
}

func (m *MockHierarchyLogic) GetBuilding(ctx context.Context, id primitive.ObjectID, includeDeleted bool) (*models.Building, error) {
	args := m.Called(ctx, id, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Building), args.Error(1)
}

func (m *MockHierarchyLogic) ListBuildings(ctx context.Context, page pagination.PageRequest, includeDeleted bool) (pagination.PageResult[*models.Building], error) {
	args := m.Called(ctx, page, includeDeleted)
	return args.Get(0).(pagination.PageResult[*models.Building]), args.Error(1)
}

func (m *MockHierarchyLogic) CreateFloorUnit(ctx context.Context, actor, buildingID primitive.ObjectID, req *dto.CreateFloorUnitRequest) (*models.FloorUnit, error) {
	args := m.Called(ctx, actor, buildingID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FloorUnit), args.Error(1)
}

func (m *MockHierarchyLogic) ListFloorUnits(ctx context.Context, buildingID primitive.ObjectID, includeDeleted bool) ([]*models.FloorUnit, error) {
	args := m.Called(ctx, buildingID, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FloorUnit), args.Error(1)
}

func (m *MockHierarchyLogic) CreatePropertyUnit(ctx context.Context, actor, floorID primitive.ObjectID, req *dto.CreatePropertyUnitRequest) (*models.PropertyUnit, error) {
	args := m.Called(ctx, actor, floorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PropertyUnit), args.Error(1)
}

func (m *MockHierarchyLogic) ListPropertyUnits(ctx context.Context, floorID primitive.ObjectID, includeDeleted bool) ([]*models.PropertyUnit, error) {
	args := m.Called(ctx, floorID, includeDeleted)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.PropertyUnit), args.Error(1)
}

func (m *MockHierarchyLogic) UpdatePropertyUnitStatus(ctx context.Context, actor, unitID primitive.ObjectID, req *dto.UpdateUnitStatusRequest) (*models.PropertyUnit, error) {
	args := m.Called(ctx, actor, unitID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PropertyUnit), args.Error(1)
}

type MockAuditLogic struct {
	mock.Mock
}

func (m *MockAuditLogic) QueryAuditLogs(ctx context.Context, q *dto.AuditLogQuery) (pagination.PageResult[*models.AuditLog], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(pagination.PageResult[*models.AuditLog]), args.Error(1)
}
