package service

import (
	"fmt"
	"net/http"
	"time"

	"estate_erp/internal/dto"
	"estate_erp/internal/logic"
	"estate_erp/pkg/pagination"

	"go.uber.org/zap"
)

// AuditHandler serves the read side of the audit log.
type AuditHandler struct {
	logic  logic.AuditLogic
	logger *zap.Logger
}

func NewAuditHandler(l logic.AuditLogic, logger *zap.Logger) *AuditHandler {
	return &AuditHandler{logic: l, logger: logger.Named("AuditHandler")}
}

// ListAuditLogs handles GET /api/v1/audit-logs.
func (h *AuditHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := pagination.FromQuery(q)
	if err != nil {
		WriteHttpError(w, http.StatusBadRequest, err.Error())
		return
	}
	from, err := timeQuery(q.Get("from"), "from")
	if err != nil {
		WriteHttpError(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := timeQuery(q.Get("to"), "to")
	if err != nil {
		WriteHttpError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := h.logic.QueryAuditLogs(r.Context(), &dto.AuditLogQuery{
		Collection: q.Get("collection"),
		DocumentID: q.Get("document_id"),
		From:       from,
		To:         to,
		Page:       page,
	})
	if err != nil {
		writeLogicError(w, h.logger, "ListAuditLogs", err)
		return
	}
	WriteHttpSuccess(w, http.StatusOK, res)
}

func timeQuery(raw, name string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s %q, want RFC 3339", name, raw)
	}
	return &t, nil
}
