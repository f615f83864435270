package logic

import (
	"context"
	"fmt"

	"estate_erp/internal/constants"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Delete routes to the typed delete of entity. Soft delete is the default; hard removes physically.
func (l *cascadeLogic) Delete(ctx context.Context, entity constants.EntityType, id, actor primitive.ObjectID, hard bool) (interface{}, error) {
	switch entity {
	case constants.EntityBuilding:
		return result(l.DeleteBuilding(ctx, id, actor, hard))
	case constants.EntityFloorUnit:
		return result(l.DeleteFloorUnit(ctx, id, actor, hard))
	case constants.EntityPropertyUnit:
		return result(l.DeletePropertyUnit(ctx, id, actor, hard))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEntity, entity)
	}
}

// Restore reverses a soft delete. It fails with ErrNotDeleted when the entity is live.
func (l *cascadeLogic) Restore(ctx context.Context, entity constants.EntityType, id, actor primitive.ObjectID) (interface{}, error) {
	switch entity {
	case constants.EntityBuilding:
		return result(l.RestoreBuilding(ctx, id, actor))
	case constants.EntityFloorUnit:
		return result(l.RestoreFloorUnit(ctx, id, actor))
	case constants.EntityPropertyUnit:
		return result(l.RestorePropertyUnit(ctx, id, actor))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedEntity, entity)
	}
}

// result keeps a nil *T from becoming a non-nil interface value.
func result[T any](v *T, err error) (interface{}, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}
