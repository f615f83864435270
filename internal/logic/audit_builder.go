package logic

import (
	"strconv"
	"strings"
	"time"

	"estate_erp/internal/constants"
	"estate_erp/internal/dao/fields"
	"estate_erp/internal/dao/mongodb"
	"estate_erp/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DropReason says why a change event produced no audit record. The empty reason means it did.
type DropReason string

const (
	DropNone                 DropReason = ""
	DropMissingNamespace     DropReason = "missing_namespace"
	DropMissingDocumentKey   DropReason = "missing_document_key"
	DropUnwatchedCollection  DropReason = "unwatched_collection"
	DropUnsupportedOperation DropReason = "unsupported_operation"
)

// AuditBuilder turns change events into audit records. It does no I/O.
type AuditBuilder struct {
	watched map[string]struct{}
	now     func() time.Time
}

// NewAuditBuilder accepts events for collections; the audit collection itself is always refused.
func NewAuditBuilder(collections []string) *AuditBuilder {
	watched := make(map[string]struct{}, len(collections))
	for _, c := range collections {
		watched[c] = struct{}{}
	}
	delete(watched, mongodb.CollectionAuditLogs)
	return &AuditBuilder{watched: watched, now: time.Now}
}

// Watched returns the collections the builder accepts.
func (b *AuditBuilder) Watched() []string {
	out := make([]string, 0, len(b.watched))
	for c := range b.watched {
		out = append(out, c)
	}
	return out
}

// Build derives the audit record for ev, or reports why ev is dropped.
func (b *AuditBuilder) Build(ev *models.ChangeEvent) (*models.AuditLog, DropReason) {
	if ev == nil || ev.Namespace == nil || ev.Namespace.Coll == "" {
		return nil, DropMissingNamespace
	}
	if _, ok := b.watched[ev.Namespace.Coll]; !ok {
		return nil, DropUnwatchedCollection
	}
	docID, ok := ev.DocumentKey[fields.FieldObjectId]
	if !ok || docID == nil {
		return nil, DropMissingDocumentKey
	}

	now := b.now().UTC()
	log := &models.AuditLog{
		Database:       ev.Namespace.DB,
		CollectionName: ev.Namespace.Coll,
		DocumentID:     docID,
		RemovedFields:  []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var updated bson.M
	switch ev.OperationType {
	case constants.ChangeOperationInsert:
		log.OperationType = constants.AuditOperationInsert
		log.FullDocument = ev.FullDocument
	case constants.ChangeOperationReplace:
		// A replace is an update of every field; the new document is kept whole.
		log.OperationType = constants.AuditOperationUpdate
		log.FullDocument = ev.FullDocument
	case constants.ChangeOperationUpdate:
		var removed []string
		if ev.UpdateDescription != nil {
			updated = ev.UpdateDescription.UpdatedFields
			removed = ev.UpdateDescription.RemovedFields
		}
		if updated == nil {
			updated = bson.M{}
		}
		if removed != nil {
			log.RemovedFields = removed
		}
		log.OperationType = constants.AuditOperationUpdate
		log.UpdatedFields = updated
		if ev.FullDocumentBeforeChange != nil {
			log.PreviousFields = previousValues(ev.FullDocumentBeforeChange, updated, log.RemovedFields)
		}
		if isSoftDelete(updated, ev.FullDocument) {
			log.OperationType = constants.AuditOperationDelete
			log.FullDocument = ev.FullDocument
		}
	default:
		return nil, DropUnsupportedOperation
	}

	log.UserID = resolveActor(updated, ev.FullDocument, ev.FullDocumentBeforeChange)
	return log, DropNone
}

// isSoftDelete recognises an update that logically removed the document.
func isSoftDelete(updated, after bson.M) bool {
	if v, ok := updated[fields.FieldIsDeleted].(bool); ok && v {
		return true
	}
	if by, ok := updated[fields.FieldDeletedBy]; ok && by != nil {
		v, _ := after[fields.FieldIsDeleted].(bool)
		return v
	}
	return false
}

// resolveActor walks the attribution sources in priority order. The first value that
// resolves to a user id wins; no match leaves the record unattributed.
func resolveActor(updated, after, before bson.M) *primitive.ObjectID {
	candidates := []interface{}{
		updated[fields.FieldDeletedBy],
		updated[fields.FieldUpdatedBy],
	}
	for _, doc := range []bson.M{after, before} {
		candidates = append(candidates,
			doc[fields.FieldDeletedBy],
			doc[fields.FieldUpdatedBy],
			doc[fields.FieldCreatedBy],
		)
	}
	for _, c := range candidates {
		if id, ok := toObjectID(c); ok {
			return &id
		}
	}
	return nil
}

func toObjectID(v interface{}) (primitive.ObjectID, bool) {
	switch t := v.(type) {
	case primitive.ObjectID:
		return t, !t.IsZero()
	case *primitive.ObjectID:
		if t == nil {
			return primitive.NilObjectID, false
		}
		return *t, !t.IsZero()
	case string:
		id, err := primitive.ObjectIDFromHex(t)
		return id, err == nil
	case bson.M:
		for _, k := range []string{fields.FieldObjectId, "user_id"} {
			if id, ok := toObjectID(t[k]); ok {
				return id, true
			}
		}
	case bson.D:
		return toObjectID(t.Map())
	}
	return primitive.NilObjectID, false
}

// previousValues collects the before-image value of every updated or removed path.
// Paths the before-image does not have are left out.
func previousValues(before, updated bson.M, removed []string) bson.M {
	prev := bson.M{}
	for path := range updated {
		if v, ok := lookupPath(before, path); ok {
			prev[path] = v
		}
	}
	for _, path := range removed {
		if v, ok := lookupPath(before, path); ok {
			prev[path] = v
		}
	}
	return prev
}

// lookupPath resolves a dotted path such as "address.city" or "tags.0".
func lookupPath(doc bson.M, path string) (interface{}, bool) {
	var cur interface{} = doc
	for _, part := range strings.Split(path, ".") {
		switch node := cur.(type) {
		case bson.M:
			v, ok := node[part]
			if !ok {
				return nil, false
			}
			cur = v
		case bson.D:
			v, ok := node.Map()[part]
			if !ok {
				return nil, false
			}
			cur = v
		case bson.A:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			cur = node[i]
		default:
			return nil, false
		}
	}
	return cur, true
}
