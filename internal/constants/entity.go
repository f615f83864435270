package constants

// EntityType names an entity that takes part in cascade and soft-delete handling.
type EntityType string

const (
	EntityBuilding     EntityType = "buildings"
	EntityFloorUnit    EntityType = "floors"
	EntityPropertyUnit EntityType = "units"
)

func (e EntityType) String() string {
	return string(e)
}

// ParseEntityType maps the path segment used by the HTTP surface to an EntityType.
func ParseEntityType(s string) (EntityType, bool) {
	switch EntityType(s) {
	case EntityBuilding, EntityFloorUnit, EntityPropertyUnit:
		return EntityType(s), true
	}
	return "", false
}
