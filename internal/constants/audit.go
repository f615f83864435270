package constants

// Audit operation types as stored on AuditLog records.
const (
	AuditOperationInsert = "insert"
	AuditOperationUpdate = "update"
	AuditOperationDelete = "delete"
)

// Change stream operation types the capture pipeline subscribes to.
const (
	ChangeOperationInsert  = "insert"
	ChangeOperationUpdate  = "update"
	ChangeOperationReplace = "replace"
)
