package constants

type ProjectStatus int

const (
	ProjectStatusUnknown ProjectStatus = iota
	ProjectStatusPending
	ProjectStatusInProgress
	ProjectStatusOnHold
	ProjectStatusCompleted
)

func (s ProjectStatus) String() string {
	switch s {
	case ProjectStatusPending:
		return "pending"
	case ProjectStatusInProgress:
		return "in_progress"
	case ProjectStatusOnHold:
		return "on_hold"
	case ProjectStatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

var projectStatusMap = map[string]ProjectStatus{
	"pending":     ProjectStatusPending,
	"in_progress": ProjectStatusInProgress,
	"on_hold":     ProjectStatusOnHold,
	"completed":   ProjectStatusCompleted,
}

// ParseProjectStatus returns ProjectStatusUnknown for anything it does not recognise.
func ParseProjectStatus(s string) ProjectStatus {
	if status, ok := projectStatusMap[s]; ok {
		return status
	}
	return ProjectStatusUnknown
}

// IsTerminal reports whether a unit in this status no longer blocks removal of its floor.
func (s ProjectStatus) IsTerminal() bool {
	return s == ProjectStatusCompleted
}
