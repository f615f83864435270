package repository

import (
	"estate_erp/internal/dao/fields"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ------------------- QueryOptions -------------------

// DeleteScope selects which documents a read sees with respect to soft deletion.
type DeleteScope int

const (
	// ScopeActive hides soft-deleted documents. It is the default for every query.
	ScopeActive DeleteScope = iota
	// ScopeAll sees live and soft-deleted documents alike.
	ScopeAll
	// ScopeDeleted sees soft-deleted documents only.
	ScopeDeleted
)

// QueryOptions holds the optional parameters shared by entity queries.
type QueryOptions struct {
	Scope DeleteScope
}

type QueryOption func(*QueryOptions)

// WithDeleted lifts the default soft-delete filter ("show deleted" views, purges).
func WithDeleted() QueryOption {
	return func(o *QueryOptions) {
		o.Scope = ScopeAll
	}
}

// OnlyDeleted restricts a query to soft-deleted documents (restore lookups).
func OnlyDeleted() QueryOption {
	return func(o *QueryOptions) {
		o.Scope = ScopeDeleted
	}
}

// NewQueryOptions applies opts over the default (active only) scope.
func NewQueryOptions(opts ...QueryOption) *QueryOptions {
	o := &QueryOptions{Scope: ScopeActive}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// ------------------- UpdateOptions -------------------

// UpdateOptions collects the $set fields of a MongoDB update built with functional options.
type UpdateOptions struct {
	SetFields bson.M
}

func NewUpdateOptions() *UpdateOptions {
	return &UpdateOptions{SetFields: bson.M{}}
}

type UpdateOption func(*UpdateOptions)

// WithProjectStatus updates a property unit's project status.
func WithProjectStatus(status string) UpdateOption {
	return func(o *UpdateOptions) {
		o.SetFields[fields.FieldUnitProjectStatus] = status
	}
}

// WithSaleStatus updates a property unit's sale status.
func WithSaleStatus(status string) UpdateOption {
	return func(o *UpdateOptions) {
		o.SetFields[fields.FieldUnitSaleStatus] = status
	}
}

// WithUpdatedBy stamps updated_by.
func WithUpdatedBy(actor primitive.ObjectID) UpdateOption {
	return func(o *UpdateOptions) {
		o.SetFields[fields.FieldUpdatedBy] = actor
	}
}

// WithUpdatedAt stamps updated_at.
func WithUpdatedAt(t time.Time) UpdateOption {
	return func(o *UpdateOptions) {
		o.SetFields[fields.FieldUpdatedAt] = t
	}
}
