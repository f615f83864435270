package logic

import (
	"errors"
	"fmt"

	"estate_erp/internal/dao/mongodb"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrBuildingNotFound     = errors.New("building not found")
	ErrFloorUnitNotFound    = errors.New("floor unit not found")
	ErrPropertyUnitNotFound = errors.New("property unit not found")
	ErrPendingUnits         = errors.New("floor has pending property units")
	ErrNotDeleted           = errors.New("entity is not soft-deleted")
	ErrParentDeleted        = errors.New("parent entity is soft-deleted")
	ErrUnsupportedEntity    = errors.New("unsupported entity type")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrDuplicate            = errors.New("entity already exists")
)

// PendingUnitsError blocks a floor deletion. It matches ErrPendingUnits with errors.Is.
type PendingUnitsError struct {
	FloorID primitive.ObjectID
	Count   int64
}

func (e *PendingUnitsError) Error() string {
	return fmt.Sprintf("floor %s has %d pending property unit(s) that are not completed", e.FloorID.Hex(), e.Count)
}

func (e *PendingUnitsError) Unwrap() error {
	return ErrPendingUnits
}

// storeErr translates DAO sentinels into logic errors; anything else is wrapped with op.
func storeErr(err error, notFound error, op string) error {
	switch {
	case errors.Is(err, mongodb.ErrNotFound):
		return notFound
	case errors.Is(err, mongodb.ErrDuplicate):
		return ErrDuplicate
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
