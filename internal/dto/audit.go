package dto

import (
	"time"

	"estate_erp/pkg/pagination"
)

// AuditLogQuery filters GET /api/v1/audit-logs. Empty fields do not filter.
type AuditLogQuery struct {
	Collection string `validate:"omitempty,max=64"`
	DocumentID string `validate:"omitempty,max=128"`
	From       *time.Time
	To         *time.Time
	Page       pagination.PageRequest
}
