package mongodb

const (
	CollectionBuildings     = "buildings"
	CollectionFloorUnits    = "floor_units"
	CollectionPropertyUnits = "property_units"
	CollectionAuditLogs     = "audit_logs"
)

// WatchedCollections is the default allow-list observed by the audit change feed.
// CollectionAuditLogs must never appear here.
var WatchedCollections = []string{
	"properties",
	CollectionPropertyUnits,
	CollectionBuildings,
	CollectionFloorUnits,
	"projects",
	"leads",
	"lead_followups",
	"customers",
	"site_visits",
	"bookings",
	"purchases",
	"sale_agreements",
	"contractors",
	"contractor_bills",
	"vendors",
	"purchase_orders",
	"materials",
	"material_issues",
	"inventory",
	"invoices",
	"payments",
	"payment_schedules",
	"receipts",
	"expenses",
	"commissions",
	"brokers",
	"employees",
	"attendances",
	"leaves",
	"payrolls",
	"users",
	"roles",
	"tasks",
	"milestones",
	"documents",
	"quotations",
	"contracts",
	"complaints",
	"maintenance_requests",
	"amenities",
}
