package logic

import (
	"context"
	"errors"

	"estate_erp/internal/dao/mongodb"
	"estate_erp/internal/dao/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// buildingCounters keeps Building.total_units, available_units, sold_units and total_floors
// in line with the live children.
type buildingCounters struct {
	buildings repository.BuildingRepository
	floors    repository.FloorUnitRepository
	units     repository.PropertyUnitRepository
	logger    *zap.Logger
}

func newBuildingCounters(buildings repository.BuildingRepository, floors repository.FloorUnitRepository, units repository.PropertyUnitRepository, logger *zap.Logger) *buildingCounters {
	return &buildingCounters{buildings: buildings, floors: floors, units: units, logger: logger}
}

// refresh recomputes the counters. A building that no longer exists is not an error.
func (c *buildingCounters) refresh(ctx context.Context, buildingID primitive.ObjectID) error {
	counters, err := c.units.CountUnitsByBuilding(ctx, buildingID)
	if err != nil {
		return err
	}
	floorIDs, err := c.floors.FindFloorUnitIDsByBuilding(ctx, buildingID)
	if err != nil {
		return err
	}
	err = c.buildings.UpdateBuildingCounters(ctx, buildingID, counters, len(floorIDs))
	if errors.Is(err, mongodb.ErrNotFound) {
		return nil
	}
	return err
}

// refreshQuietly logs instead of failing: the primary write has already committed.
func (c *buildingCounters) refreshQuietly(ctx context.Context, buildingID primitive.ObjectID) {
	if err := c.refresh(ctx, buildingID); err != nil {
		c.logger.Warn("building counters not refreshed", zap.Error(err), zap.Stringer("buildingID", buildingID))
	}
}
