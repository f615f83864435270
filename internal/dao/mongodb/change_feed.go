package mongodb

import (
	"context"
	"errors"

	"estate_erp/internal/dao/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ChangeStreamHistoryLost is returned when a resume token is older than the oplog window.
const ChangeStreamHistoryLost = 286

func NewChangeFeedDAO(db *mongo.Database, beforeChange string, logger *zap.Logger) *ChangeFeedDAO {
	return &ChangeFeedDAO{
		db:           db,
		beforeChange: options.FullDocument(beforeChange),
		logger:       logger.Named("ChangeFeedDAO"),
	}
}

// ChangeFeedDAO opens database-level change streams filtered to inserts, updates and replaces.
type ChangeFeedDAO struct {
	db           *mongo.Database
	beforeChange options.FullDocument
	logger       *zap.Logger
}

func (d *ChangeFeedDAO) Watch(ctx context.Context, collections []string, resumeAfter bson.Raw) (repository.ChangeStream, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"operationType": bson.M{"$in": bson.A{"insert", "update", "replace"}},
			"ns.coll":       bson.M{"$in": collections},
		}}},
	}

	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)
	if d.beforeChange != "" && d.beforeChange != options.Off {
		opts.SetFullDocumentBeforeChange(d.beforeChange)
	}
	if len(resumeAfter) > 0 {
		opts.SetStartAfter(resumeAfter)
	}

	cs, err := d.db.Watch(ctx, pipeline, opts)
	if err != nil {
		d.logger.Error("Watch: db.Watch failed", zap.Error(err), zap.Bool("resuming", len(resumeAfter) > 0))
		return nil, err
	}
	return cs, nil
}

// IsHistoryLost reports whether err means the stored resume token can no longer be used.
func IsHistoryLost(err error) bool {
	var se mongo.ServerError
	if errors.As(err, &se) {
		return se.HasErrorCode(ChangeStreamHistoryLost)
	}
	return false
}

var _ repository.ChangeFeed = (*ChangeFeedDAO)(nil)
