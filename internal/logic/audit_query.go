package logic

import (
	"context"
	"fmt"

	"estate_erp/internal/dao/repository"
	"estate_erp/internal/dto"
	"estate_erp/internal/models"
	"estate_erp/pkg/pagination"

	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// AuditLogic is the read-only view of the audit trail.
type AuditLogic interface {
	QueryAuditLogs(ctx context.Context, q *dto.AuditLogQuery) (pagination.PageResult[*models.AuditLog], error)
}

var _ AuditLogic = (*auditLogic)(nil)

type auditLogic struct {
	auditLogRepo repository.AuditLogRepository
	logger       *zap.Logger
}

func NewAuditLogic(auditLogRepo repository.AuditLogRepository, logger *zap.Logger) *auditLogic {
	return &auditLogic{
		auditLogRepo: auditLogRepo,
		logger:       logger.Named("AuditLogic"),
	}
}

var AuditLogicProviderSet = wire.NewSet(NewAuditLogic, wire.Bind(new(AuditLogic), new(*auditLogic)))

func (l *auditLogic) QueryAuditLogs(ctx context.Context, q *dto.AuditLogQuery) (pagination.PageResult[*models.AuditLog], error) {
	var empty pagination.PageResult[*models.AuditLog]
	if err := validateRequest(q); err != nil {
		return empty, err
	}
	if q.From != nil && q.To != nil && q.From.After(*q.To) {
		return empty, fmt.Errorf("%w: from is after to", ErrInvalidArgument)
	}

	page := pagination.NewPageRequest(q.Page.Page, q.Page.PageSize)
	rq := repository.AuditLogQuery{
		CollectionName: q.Collection,
		From:           q.From,
		To:             q.To,
		Limit:          page.Limit(),
		Offset:         page.Offset(),
	}
	if q.DocumentID != "" {
		rq.DocumentID = documentKey(q.DocumentID)
	}

	logs, total, err := l.auditLogRepo.Find(ctx, rq)
	if err != nil {
		return empty, fmt.Errorf("query audit logs: %w", err)
	}
	return pagination.NewPageResult(logs, total, page), nil
}

// documentKey matches how document ids are stored: ObjectIDs when the string is one, else verbatim.
func documentKey(s string) interface{} {
	if id, err := primitive.ObjectIDFromHex(s); err == nil {
		return id
	}
	return s
}
