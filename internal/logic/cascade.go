package logic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"estate_erp/internal/constants"
	"estate_erp/internal/dao/mongodb"
	"estate_erp/internal/dao/repository"
	"estate_erp/internal/metrics"
	"estate_erp/internal/models"

	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// EntityLogic deletes and restores entities of the building hierarchy.
// Every deletion resolves children before the parent: PropertyUnit, then FloorUnit, then Building.
type EntityLogic interface {
	Delete(ctx context.Context, entity constants.EntityType, id, actor primitive.ObjectID, hard bool) (interface{}, error)
	Restore(ctx context.Context, entity constants.EntityType, id, actor primitive.ObjectID) (interface{}, error)

	DeleteBuilding(ctx context.Context, id, actor primitive.ObjectID, hard bool) (*models.Building, error)
	FindAndDeleteBuilding(ctx context.Context, q repository.BuildingQuery, actor primitive.ObjectID, hard bool) (*models.Building, error)
	DeleteFloorUnit(ctx context.Context, id, actor primitive.ObjectID, hard bool) (*models.FloorUnit, error)
	DeletePropertyUnit(ctx context.Context, id, actor primitive.ObjectID, hard bool) (*models.PropertyUnit, error)

	RestoreBuilding(ctx context.Context, id, actor primitive.ObjectID) (*models.Building, error)
	RestoreFloorUnit(ctx context.Context, id, actor primitive.ObjectID) (*models.FloorUnit, error)
	RestorePropertyUnit(ctx context.Context, id, actor primitive.ObjectID) (*models.PropertyUnit, error)
}

var _ EntityLogic = (*cascadeLogic)(nil)

type cascadeLogic struct {
	buildings repository.BuildingRepository
	floors    repository.FloorUnitRepository
	units     repository.PropertyUnitRepository
	counters  *buildingCounters
	metrics   *metrics.Metrics
	now       func() time.Time
	logger    *zap.Logger
}

func NewEntityLogic(buildings repository.BuildingRepository, floors repository.FloorUnitRepository, units repository.PropertyUnitRepository, m *metrics.Metrics, logger *zap.Logger) *cascadeLogic {
	logger = logger.Named("EntityLogic")
	return &cascadeLogic{
		buildings: buildings,
		floors:    floors,
		units:     units,
		counters:  newBuildingCounters(buildings, floors, units, logger),
		metrics:   m,
		now:       time.Now,
		logger:    logger,
	}
}

var EntityLogicProviderSet = wire.NewSet(NewEntityLogic, wire.Bind(new(EntityLogic), new(*cascadeLogic)))

// removal says how a cascade step takes documents away.
type removal struct {
	hard bool
	soft repository.SoftDeleteParams
}

// stamp is the current time at the precision MongoDB stores, so stamps read back compare equal.
func (l *cascadeLogic) stamp() time.Time {
	return l.now().UTC().Truncate(time.Millisecond)
}

func (l *cascadeLogic) removal(actor primitive.ObjectID, hard bool) removal {
	return removal{hard: hard, soft: repository.SoftDeleteParams{At: l.stamp(), Actor: actor}}
}

// lookupScope lets a hard delete purge an entity that is already soft-deleted.
func lookupScope(hard bool) []repository.QueryOption {
	if hard {
		return []repository.QueryOption{repository.WithDeleted()}
	}
	return nil
}

// ------------------- Building -------------------

func (l *cascadeLogic) DeleteBuilding(ctx context.Context, id, actor primitive.ObjectID, hard bool) (*models.Building, error) {
	b, err := l.buildings.GetBuildingByID(ctx, id, lookupScope(hard)...)
	if err != nil {
		return nil, storeErr(err, ErrBuildingNotFound, "get building")
	}
	return l.deleteBuilding(ctx, b, actor, hard)
}

// FindAndDeleteBuilding is the query-shaped entry point. It runs the same cascade as DeleteBuilding.
func (l *cascadeLogic) FindAndDeleteBuilding(ctx context.Context, q repository.BuildingQuery, actor primitive.ObjectID, hard bool) (*models.Building, error) {
	if q.IsEmpty() {
		return nil, fmt.Errorf("%w: building query has no criteria", ErrInvalidArgument)
	}
	b, err := l.buildings.FindBuilding(ctx, q, lookupScope(hard)...)
	if err != nil {
		return nil, storeErr(err, ErrBuildingNotFound, "find building")
	}
	return l.deleteBuilding(ctx, b, actor, hard)
}

func (l *cascadeLogic) deleteBuilding(ctx context.Context, b *models.Building, actor primitive.ObjectID, hard bool) (*models.Building, error) {
	r := l.removal(actor, hard)
	if err := l.cascadeBuilding(ctx, b.ID, r); err != nil {
		l.metrics.IncCascadeFailure(string(constants.EntityBuilding))
		l.logger.Error("building cascade aborted", zap.Error(err), zap.Stringer("buildingID", b.ID), zap.Bool("hard", hard))
		return nil, err
	}

	var (
		out *models.Building
		err error
	)
	if hard {
		out, err = l.buildings.DeleteBuildingByID(ctx, b.ID)
	} else {
		out, err = l.buildings.SoftDeleteBuilding(ctx, b.ID, r.soft)
	}
	if err != nil {
		if !errors.Is(err, mongodb.ErrNotFound) {
			l.metrics.IncCascadeFailure(string(constants.EntityBuilding))
		}
		return nil, storeErr(err, ErrBuildingNotFound, "delete building")
	}

	l.metrics.IncCascadeDelete(string(constants.EntityBuilding), hard)
	l.logger.Info("building deleted", zap.Stringer("buildingID", b.ID), zap.Stringer("actor", actor), zap.Bool("hard", hard))
	return out, nil
}

// cascadeBuilding removes every floor of the building together with the units on those floors.
func (l *cascadeLogic) cascadeBuilding(ctx context.Context, buildingID primitive.ObjectID, r removal) error {
	floorIDs, err := l.floors.FindFloorUnitIDsByBuilding(ctx, buildingID, lookupScope(r.hard)...)
	if err != nil {
		return fmt.Errorf("find floors of building %s: %w", buildingID.Hex(), err)
	}
	return l.cascadeFloors(ctx, floorIDs, r)
}

// cascadeFloors removes the units on floorIDs, then the floors. An empty set is a no-op.
func (l *cascadeLogic) cascadeFloors(ctx context.Context, floorIDs []primitive.ObjectID, r removal) error {
	if len(floorIDs) == 0 {
		return nil
	}
	if err := l.removeUnitsOnFloors(ctx, floorIDs, r); err != nil {
		return err
	}

	var (
		n   int64
		err error
	)
	if r.hard {
		n, err = l.floors.DeleteFloorUnitsByIDs(ctx, floorIDs)
	} else {
		n, err = l.floors.SoftDeleteFloorUnitsByIDs(ctx, floorIDs, r.soft)
	}
	if err != nil {
		return fmt.Errorf("remove %d floor(s): %w", len(floorIDs), err)
	}
	l.logger.Debug("cascade removed floors", zap.Int64("count", n), zap.Bool("hard", r.hard))
	return nil
}

func (l *cascadeLogic) removeUnitsOnFloors(ctx context.Context, floorIDs []primitive.ObjectID, r removal) error {
	var (
		n   int64
		err error
	)
	if r.hard {
		n, err = l.units.DeletePropertyUnitsByFloors(ctx, floorIDs)
	} else {
		n, err = l.units.SoftDeletePropertyUnitsByFloors(ctx, floorIDs, r.soft)
	}
	if err != nil {
		return fmt.Errorf("remove property units on %d floor(s): %w", len(floorIDs), err)
	}
	l.logger.Debug("cascade removed property units", zap.Int64("count", n), zap.Bool("hard", r.hard))
	return nil
}

// ------------------- FloorUnit -------------------

// DeleteFloorUnit refuses while any live unit on the floor is not completed.
func (l *cascadeLogic) DeleteFloorUnit(ctx context.Context, id, actor primitive.ObjectID, hard bool) (*models.FloorUnit, error) {
	f, err := l.floors.GetFloorUnitByID(ctx, id, lookupScope(hard)...)
	if err != nil {
		return nil, storeErr(err, ErrFloorUnitNotFound, "get floor unit")
	}

	pending, err := l.units.CountPendingUnitsByFloor(ctx, f.ID)
	if err != nil {
		return nil, fmt.Errorf("count pending units on floor %s: %w", f.ID.Hex(), err)
	}
	if pending > 0 {
		l.metrics.IncDeleteBlocked()
		return nil, &PendingUnitsError{FloorID: f.ID, Count: pending}
	}

	r := l.removal(actor, hard)
	if err := l.removeUnitsOnFloors(ctx, []primitive.ObjectID{f.ID}, r); err != nil {
		l.metrics.IncCascadeFailure(string(constants.EntityFloorUnit))
		l.logger.Error("floor cascade aborted", zap.Error(err), zap.Stringer("floorID", f.ID), zap.Bool("hard", hard))
		return nil, err
	}

	var out *models.FloorUnit
	if hard {
		out, err = l.floors.DeleteFloorUnitByID(ctx, f.ID)
	} else {
		out, err = l.floors.SoftDeleteFloorUnit(ctx, f.ID, r.soft)
	}
	if err != nil {
		return nil, storeErr(err, ErrFloorUnitNotFound, "delete floor unit")
	}

	l.metrics.IncCascadeDelete(string(constants.EntityFloorUnit), hard)
	l.logger.Info("floor unit deleted", zap.Stringer("floorID", f.ID), zap.Stringer("actor", actor), zap.Bool("hard", hard))
	l.counters.refreshQuietly(ctx, f.BuildingID)
	return out, nil
}

// ------------------- PropertyUnit -------------------

func (l *cascadeLogic) DeletePropertyUnit(ctx context.Context, id, actor primitive.ObjectID, hard bool) (*models.PropertyUnit, error) {
	u, err := l.units.GetPropertyUnitByID(ctx, id, lookupScope(hard)...)
	if err != nil {
		return nil, storeErr(err, ErrPropertyUnitNotFound, "get property unit")
	}

	var out *models.PropertyUnit
	if hard {
		out, err = l.units.DeletePropertyUnitByID(ctx, u.ID)
	} else {
		out, err = l.units.SoftDeletePropertyUnit(ctx, u.ID, l.removal(actor, false).soft)
	}
	if err != nil {
		return nil, storeErr(err, ErrPropertyUnitNotFound, "delete property unit")
	}

	l.metrics.IncCascadeDelete(string(constants.EntityPropertyUnit), hard)
	l.counters.refreshQuietly(ctx, u.BuildingID)
	return out, nil
}

// ------------------- Restore -------------------

// RestoreBuilding brings back the building, then the floors and units its cascade soft-deleted.
// Children removed earlier on their own carry a different stamp and stay deleted.
func (l *cascadeLogic) RestoreBuilding(ctx context.Context, id, actor primitive.ObjectID) (*models.Building, error) {
	b, err := l.buildings.GetBuildingByID(ctx, id, repository.WithDeleted())
	if err != nil {
		return nil, storeErr(err, ErrBuildingNotFound, "get building")
	}
	if !b.IsDeleted {
		return nil, ErrNotDeleted
	}

	p := l.restoreParams(b.SoftDelete, actor)
	restored, err := l.buildings.RestoreBuilding(ctx, id, p)
	if err != nil {
		return nil, storeErr(err, ErrNotDeleted, "restore building")
	}

	floorIDs, err := l.floors.RestoreFloorUnitsByBuilding(ctx, id, p)
	if err != nil {
		return nil, fmt.Errorf("restore floors of building %s: %w", id.Hex(), err)
	}
	if _, err := l.units.RestorePropertyUnitsByFloors(ctx, floorIDs, p); err != nil {
		return nil, fmt.Errorf("restore property units of building %s: %w", id.Hex(), err)
	}

	l.logger.Info("building restored", zap.Stringer("buildingID", id), zap.Stringer("actor", actor), zap.Int("floors", len(floorIDs)))
	l.counters.refreshQuietly(ctx, id)
	return restored, nil
}

func (l *cascadeLogic) RestoreFloorUnit(ctx context.Context, id, actor primitive.ObjectID) (*models.FloorUnit, error) {
	f, err := l.floors.GetFloorUnitByID(ctx, id, repository.WithDeleted())
	if err != nil {
		return nil, storeErr(err, ErrFloorUnitNotFound, "get floor unit")
	}
	if !f.IsDeleted {
		return nil, ErrNotDeleted
	}
	if _, err := l.buildings.GetBuildingByID(ctx, f.BuildingID); err != nil {
		return nil, storeErr(err, ErrParentDeleted, "get parent building")
	}

	p := l.restoreParams(f.SoftDelete, actor)
	restored, err := l.floors.RestoreFloorUnit(ctx, id, p)
	if err != nil {
		return nil, storeErr(err, ErrNotDeleted, "restore floor unit")
	}
	if _, err := l.units.RestorePropertyUnitsByFloors(ctx, []primitive.ObjectID{id}, p); err != nil {
		return nil, fmt.Errorf("restore property units of floor %s: %w", id.Hex(), err)
	}

	l.counters.refreshQuietly(ctx, f.BuildingID)
	return restored, nil
}

func (l *cascadeLogic) RestorePropertyUnit(ctx context.Context, id, actor primitive.ObjectID) (*models.PropertyUnit, error) {
	u, err := l.units.GetPropertyUnitByID(ctx, id, repository.WithDeleted())
	if err != nil {
		return nil, storeErr(err, ErrPropertyUnitNotFound, "get property unit")
	}
	if !u.IsDeleted {
		return nil, ErrNotDeleted
	}
	if _, err := l.floors.GetFloorUnitByID(ctx, u.FloorID); err != nil {
		return nil, storeErr(err, ErrParentDeleted, "get parent floor unit")
	}

	restored, err := l.units.RestorePropertyUnit(ctx, id, l.restoreParams(u.SoftDelete, actor))
	if err != nil {
		return nil, storeErr(err, ErrNotDeleted, "restore property unit")
	}

	l.counters.refreshQuietly(ctx, u.BuildingID)
	return restored, nil
}

func (l *cascadeLogic) restoreParams(sd models.SoftDelete, actor primitive.ObjectID) repository.RestoreParams {
	p := repository.RestoreParams{At: l.stamp(), Actor: actor}
	if sd.DeletedAt != nil {
		p.DeletedAt = *sd.DeletedAt
	}
	return p
}
