package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Parameter Structs ---

// BuildingQuery selects a single building by any combination of its identifying fields.
type BuildingQuery struct {
	ID   *primitive.ObjectID
	Code string
	Name string
}

// IsEmpty reports whether the query would match an arbitrary building.
func (q BuildingQuery) IsEmpty() bool {
	return q.ID == nil && q.Code == "" && q.Name == ""
}

// SoftDeleteParams carries the stamps written when entities are logically removed.
type SoftDeleteParams struct {
	At    time.Time
	Actor primitive.ObjectID
}

// RestoreParams selects the cascaded children to bring back with their parent.
type RestoreParams struct {
	// DeletedAt is the parent's deletion stamp; only children carrying the same stamp are restored.
	DeletedAt time.Time
	At        time.Time
	Actor     primitive.ObjectID
}

// AuditLogQuery filters audit records. Zero values are ignored.
type AuditLogQuery struct {
	CollectionName string
	DocumentID     interface{}
	From           *time.Time
	To             *time.Time
	Limit          int
	Offset         int
}
