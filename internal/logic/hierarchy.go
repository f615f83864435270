package logic

import (
	"context"
	"fmt"
	"time"

	"estate_erp/internal/constants"
	"estate_erp/internal/dao/repository"
	"estate_erp/internal/dto"
	"estate_erp/internal/models"
	"estate_erp/pkg/pagination"

	"github.com/go-playground/validator/v10"
	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var validate = validator.New()

// HierarchyLogic creates and reads buildings, floors and property units.
type HierarchyLogic interface {
	CreateBuilding(ctx context.Context, actor primitive.ObjectID, req *dto.CreateBuildingRequest) (*models.Building, error)
	GetBuilding(ctx context.Context, id primitive.ObjectID, includeDeleted bool) (*models.Building, error)
	ListBuildings(ctx context.Context, page pagination.PageRequest, includeDeleted bool) (pagination.PageResult[*models.Building], error)

	CreateFloorUnit(ctx context.Context, actor, buildingID primitive.ObjectID, req *dto.CreateFloorUnitRequest) (*models.FloorUnit, error)
	ListFloorUnits(ctx context.Context, buildingID primitive.ObjectID, includeDeleted bool) ([]*models.FloorUnit, error)

	CreatePropertyUnit(ctx context.Context, actor, floorID primitive.ObjectID, req *dto.CreatePropertyUnitRequest) (*models.PropertyUnit, error)
	ListPropertyUnits(ctx context.Context, floorID primitive.ObjectID, includeDeleted bool) ([]*models.PropertyUnit, error)
	UpdatePropertyUnitStatus(ctx context.Context, actor, unitID primitive.ObjectID, req *dto.UpdateUnitStatusRequest) (*models.PropertyUnit, error)
}

var _ HierarchyLogic = (*hierarchyLogic)(nil)

type hierarchyLogic struct {
	buildings repository.BuildingRepository
	floors    repository.FloorUnitRepository
	units     repository.PropertyUnitRepository
	counters  *buildingCounters
	logger    *zap.Logger
}

func NewHierarchyLogic(buildings repository.BuildingRepository, floors repository.FloorUnitRepository, units repository.PropertyUnitRepository, logger *zap.Logger) *hierarchyLogic {
	logger = logger.Named("HierarchyLogic")
	return &hierarchyLogic{
		buildings: buildings,
		floors:    floors,
		units:     units,
		counters:  newBuildingCounters(buildings, floors, units, logger),
		logger:    logger,
	}
}

var HierarchyLogicProviderSet = wire.NewSet(NewHierarchyLogic, wire.Bind(new(HierarchyLogic), new(*hierarchyLogic)))

func scope(includeDeleted bool) []repository.QueryOption {
	if includeDeleted {
		return []repository.QueryOption{repository.WithDeleted()}
	}
	return nil
}

func validateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidArgument, err.Error())
	}
	return nil
}

func (l *hierarchyLogic) CreateBuilding(ctx context.Context, actor primitive.ObjectID, req *dto.CreateBuildingRequest) (*models.Building, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	b := &models.Building{
		Name:    req.Name,
		Code:    req.Code,
		Address: req.Address,
		Stamps:  models.Stamps{CreatedAt: time.Now().UTC(), CreatedBy: actor},
	}
	id, err := l.buildings.CreateBuilding(ctx, b)
	if err != nil {
		return nil, storeErr(err, ErrBuildingNotFound, "create building")
	}
	b.ID = id
	return b, nil
}

func (l *hierarchyLogic) GetBuilding(ctx context.Context, id primitive.ObjectID, includeDeleted bool) (*models.Building, error) {
	b, err := l.buildings.GetBuildingByID(ctx, id, scope(includeDeleted)...)
	if err != nil {
		return nil, storeErr(err, ErrBuildingNotFound, "get building")
	}
	return b, nil
}

func (l *hierarchyLogic) ListBuildings(ctx context.Context, page pagination.PageRequest, includeDeleted bool) (pagination.PageResult[*models.Building], error) {
	items, total, err := l.buildings.ListBuildings(ctx, page.Limit(), page.Offset(), scope(includeDeleted)...)
	if err != nil {
		return pagination.PageResult[*models.Building]{}, fmt.Errorf("list buildings: %w", err)
	}
	return pagination.NewPageResult(items, total, page), nil
}

// CreateFloorUnit requires a live building. A repeated floor number fails with ErrDuplicate.
func (l *hierarchyLogic) CreateFloorUnit(ctx context.Context, actor, buildingID primitive.ObjectID, req *dto.CreateFloorUnitRequest) (*models.FloorUnit, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if _, err := l.buildings.GetBuildingByID(ctx, buildingID); err != nil {
		return nil, storeErr(err, ErrBuildingNotFound, "get building")
	}

	f := &models.FloorUnit{
		BuildingID:  buildingID,
		FloorNumber: *req.FloorNumber,
		Name:        req.Name,
		Stamps:      models.Stamps{CreatedAt: time.Now().UTC(), CreatedBy: actor},
	}
	id, err := l.floors.CreateFloorUnit(ctx, f)
	if err != nil {
		return nil, storeErr(err, ErrFloorUnitNotFound, "create floor unit")
	}
	f.ID = id

	l.counters.refreshQuietly(ctx, buildingID)
	return f, nil
}

func (l *hierarchyLogic) ListFloorUnits(ctx context.Context, buildingID primitive.ObjectID, includeDeleted bool) ([]*models.FloorUnit, error) {
	if _, err := l.buildings.GetBuildingByID(ctx, buildingID, scope(includeDeleted)...); err != nil {
		return nil, storeErr(err, ErrBuildingNotFound, "get building")
	}
	floors, err := l.floors.ListFloorUnitsByBuilding(ctx, buildingID, scope(includeDeleted)...)
	if err != nil {
		return nil, fmt.Errorf("list floor units: %w", err)
	}
	return floors, nil
}

// CreatePropertyUnit requires a live floor. A repeated plot number on the floor fails with ErrDuplicate.
func (l *hierarchyLogic) CreatePropertyUnit(ctx context.Context, actor, floorID primitive.ObjectID, req *dto.CreatePropertyUnitRequest) (*models.PropertyUnit, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	f, err := l.floors.GetFloorUnitByID(ctx, floorID)
	if err != nil {
		return nil, storeErr(err, ErrFloorUnitNotFound, "get floor unit")
	}

	projectStatus := req.ProjectStatus
	if projectStatus == "" {
		projectStatus = constants.ProjectStatusPending.String()
	}
	saleStatus := req.SaleStatus
	if saleStatus == "" {
		saleStatus = constants.SaleStatusAvailable.String()
	}

	u := &models.PropertyUnit{
		BuildingID:    f.BuildingID,
		FloorID:       f.ID,
		PlotNo:        req.PlotNo,
		Area:          req.Area,
		ProjectStatus: projectStatus,
		SaleStatus:    saleStatus,
		Stamps:        models.Stamps{CreatedAt: time.Now().UTC(), CreatedBy: actor},
	}
	id, err := l.units.CreatePropertyUnit(ctx, u)
	if err != nil {
		return nil, storeErr(err, ErrPropertyUnitNotFound, "create property unit")
	}
	u.ID = id

	l.counters.refreshQuietly(ctx, f.BuildingID)
	return u, nil
}

func (l *hierarchyLogic) ListPropertyUnits(ctx context.Context, floorID primitive.ObjectID, includeDeleted bool) ([]*models.PropertyUnit, error) {
	if _, err := l.floors.GetFloorUnitByID(ctx, floorID, scope(includeDeleted)...); err != nil {
		return nil, storeErr(err, ErrFloorUnitNotFound, "get floor unit")
	}
	units, err := l.units.ListPropertyUnitsByFloor(ctx, floorID, scope(includeDeleted)...)
	if err != nil {
		return nil, fmt.Errorf("list property units: %w", err)
	}
	return units, nil
}

func (l *hierarchyLogic) UpdatePropertyUnitStatus(ctx context.Context, actor, unitID primitive.ObjectID, req *dto.UpdateUnitStatusRequest) (*models.PropertyUnit, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if req.ProjectStatus == "" && req.SaleStatus == "" {
		return nil, fmt.Errorf("%w: project_status or sale_status is required", ErrInvalidArgument)
	}

	opts := []repository.UpdateOption{
		repository.WithUpdatedBy(actor),
		repository.WithUpdatedAt(time.Now().UTC()),
	}
	if req.ProjectStatus != "" {
		opts = append(opts, repository.WithProjectStatus(req.ProjectStatus))
	}
	if req.SaleStatus != "" {
		opts = append(opts, repository.WithSaleStatus(req.SaleStatus))
	}

	u, err := l.units.UpdatePropertyUnit(ctx, unitID, opts...)
	if err != nil {
		return nil, storeErr(err, ErrPropertyUnitNotFound, "update property unit")
	}
	if req.SaleStatus != "" {
		l.counters.refreshQuietly(ctx, u.BuildingID)
	}
	return u, nil
}
