package domain

import "github.com/google/uuid"

// PicklistDefinition is a named, reusable enumeration shared across custom
// fields (e.g. "ContractType"). Names are unique case-insensitively: NameKey
// holds the lowercased name and carries the unique index, so duplicate
// detection is authoritative at the storage layer.
type PicklistDefinition struct {
	BaseModel
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	NameKey     string          `gorm:"type:varchar(100);not null;uniqueIndex:uq_picklists_name_key" json:"-"`
	Description string          `gorm:"type:varchar(500)" json:"description"`
	IsSystem    bool            `gorm:"type:boolean;not null;default:false" json:"is_system"` // seeded picklists cannot be removed
	Values      []PicklistValue `gorm:"foreignKey:PicklistID;constraint:OnDelete:CASCADE" json:"values,omitempty"`
}

// TableName specifies the table name for PicklistDefinition
func (PicklistDefinition) TableName() string {
	return "picklist_definitions"
}

// PicklistValue is one selectable option inside a picklist. Value is the
// stable key stored on entity records and is immutable once created;
// deactivation hides it from new selection without touching history.
type PicklistValue struct {
	BaseModel
	PicklistID uuid.UUID `gorm:"type:uuid;not null;index:idx_picklist_values_picklist_id;uniqueIndex:uq_picklist_values_picklist_value,priority:1" json:"picklist_id"`
	Value      string    `gorm:"type:varchar(100);not null;uniqueIndex:uq_picklist_values_picklist_value,priority:2" json:"value"`
	Label      string    `gorm:"type:varchar(200);not null" json:"label"`
	SortOrder  int       `gorm:"type:int;not null;default:0;index:idx_picklist_values_sort_order" json:"sort_order"`
	IsActive   bool      `gorm:"type:boolean;not null;default:true" json:"is_active"`
}

// TableName specifies the table name for PicklistValue
func (PicklistValue) TableName() string {
	return "picklist_values"
}

// ActiveValueKeys returns the value keys currently selectable in this picklist
func (p *PicklistDefinition) ActiveValueKeys() []string {
	keys := make([]string, 0, len(p.Values))
	for _, v := range p.Values {
		if v.IsActive {
			keys = append(keys, v.Value)
		}
	}
	return keys
}

// LabelFor resolves a stored value key to its display label. Inactive values
// still resolve so historical records stay readable; the boolean is false
// only when the key is unknown to the picklist.
func (p *PicklistDefinition) LabelFor(valueKey string) (string, bool) {
	for _, v := range p.Values {
		if v.Value == valueKey {
			return v.Label, true
		}
	}
	return "", false
}
