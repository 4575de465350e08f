package domain

// EntityType identifies a core portal entity that can carry custom fields
type EntityType string

// EntityType constants. The set is closed: custom fields can only be attached
// to these four portal entities.
const (
	EntityTypeOpportunity     EntityType = "opportunity"
	EntityTypeAccount         EntityType = "account"
	EntityTypeContact         EntityType = "contact"
	EntityTypeContractVehicle EntityType = "contract_vehicle"
)

// AllEntityTypes lists every supported entity type in display order
func AllEntityTypes() []EntityType {
	return []EntityType{
		EntityTypeOpportunity,
		EntityTypeAccount,
		EntityTypeContact,
		EntityTypeContractVehicle,
	}
}

// IsValidEntityType reports whether the given entity type is one of the closed set
func IsValidEntityType(entityType EntityType) bool {
	switch entityType {
	case EntityTypeOpportunity, EntityTypeAccount, EntityTypeContact, EntityTypeContractVehicle:
		return true
	default:
		return false
	}
}

// Collection returns the plural REST collection name used by the core portal
// API for this entity type, e.g. for existence checks on lookup fields.
func (e EntityType) Collection() string {
	switch e {
	case EntityTypeOpportunity:
		return "opportunities"
	case EntityTypeAccount:
		return "accounts"
	case EntityTypeContact:
		return "contacts"
	case EntityTypeContractVehicle:
		return "contract-vehicles"
	default:
		return string(e)
	}
}
