package mongodb

import (
	"context"

	"estate_erp/internal/dao/fields"
	"estate_erp/internal/dao/repository"
	"estate_erp/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func NewAuditLogDAO(db *mongo.Database, logger *zap.Logger) *AuditLogDAO {
	return &AuditLogDAO{
		collection: db.Collection(CollectionAuditLogs),
		logger:     logger.Named("AuditLogDAO"),
	}
}

// AuditLogDAO only ever inserts and reads; audit records are never rewritten.
type AuditLogDAO struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

func (d *AuditLogDAO) Create(ctx context.Context, log *models.AuditLog) error {
	if _, err := d.collection.InsertOne(ctx, log); err != nil {
		d.logger.Error("Create: InsertOne failed", zap.Error(err),
			zap.String("collection", log.CollectionName), zap.Any("documentID", log.DocumentID))
		return err
	}
	return nil
}

// Find returns the records matching q, newest first, plus the total match count.
func (d *AuditLogDAO) Find(ctx context.Context, q repository.AuditLogQuery) ([]*models.AuditLog, int64, error) {
	filter := bson.M{}
	if q.CollectionName != "" {
		filter[fields.FieldAuditCollectionName] = q.CollectionName
	}
	if q.DocumentID != nil {
		filter[fields.FieldAuditDocumentID] = q.DocumentID
	}
	if q.From != nil || q.To != nil {
		created := bson.M{}
		if q.From != nil {
			created["$gte"] = *q.From
		}
		if q.To != nil {
			created["$lte"] = *q.To
		}
		filter[fields.FieldCreatedAt] = created
	}

	total, err := d.collection.CountDocuments(ctx, filter)
	if err != nil {
		d.logger.Error("Find: CountDocuments failed", zap.Error(err), zap.Any("filter", filter))
		return nil, 0, err
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: fields.FieldCreatedAt, Value: -1}, {Key: fields.FieldAuditSequence, Value: -1}}).
		SetSkip(int64(q.Offset))
	if q.Limit > 0 {
		findOpts.SetLimit(int64(q.Limit))
	}

	cursor, err := d.collection.Find(ctx, filter, findOpts)
	if err != nil {
		d.logger.Error("Find: Find failed", zap.Error(err), zap.Any("filter", filter))
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	logs := make([]*models.AuditLog, 0)
	if err := cursor.All(ctx, &logs); err != nil {
		d.logger.Error("Find: cursor.All failed", zap.Error(err))
		return nil, 0, err
	}
	return logs, total, nil
}

var _ repository.AuditLogRepository = (*AuditLogDAO)(nil)
