package domain

import (
	"encoding/json"
	"regexp"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// fieldNamePattern restricts machine field names to word characters so they
// are safe as map keys, query parameters, and form names.
var fieldNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// IsValidFieldName reports whether a machine field name matches the allowed character set
func IsValidFieldName(name string) bool {
	return fieldNamePattern.MatchString(name)
}

// CustomFieldDefinition is administrator-authored metadata describing one
// custom field on a portal entity. EntityType, FieldName, and FieldType are
// immutable after creation; "deletion" only flips IsActive so historical
// values remain interpretable. (entity_type, field_name) is unique whether or
// not the definition is active, enforced by the composite unique index.
type CustomFieldDefinition struct {
	BaseModel
	EntityType   EntityType `gorm:"type:varchar(50);not null;index:idx_field_defs_entity_type;uniqueIndex:uq_field_defs_entity_name,priority:1" json:"entity_type"`
	FieldName    string     `gorm:"type:varchar(100);not null;uniqueIndex:uq_field_defs_entity_name,priority:2" json:"field_name"`
	DisplayLabel string     `gorm:"type:varchar(200);not null" json:"display_label"`
	FieldType    FieldType  `gorm:"type:varchar(50);not null" json:"field_type"`

	// Picklist and MultiPicklist fields carry either a shared picklist
	// reference or an inline JSON array of option strings. Shared picklists
	// are canonical for new fields; inline lists remain supported.
	PicklistID    *uuid.UUID     `gorm:"type:uuid;index:idx_field_defs_picklist_id" json:"picklist_id,omitempty"`
	InlineOptions datatypes.JSON `gorm:"type:jsonb" json:"inline_options,omitempty"`

	// Lookup fields name the referenced portal entity kind.
	LookupEntityType *EntityType `gorm:"type:varchar(50)" json:"lookup_entity_type,omitempty"`

	DefaultValue *string `gorm:"type:text" json:"default_value,omitempty"`
	HelpText     string  `gorm:"type:varchar(500)" json:"help_text"`
	Section      string  `gorm:"type:varchar(100)" json:"section"`

	// Optional numeric range for Number/Currency/Percent fields. Percent
	// defaults to 0..100 when unset.
	MinValue *float64 `json:"min_value,omitempty"`
	MaxValue *float64 `json:"max_value,omitempty"`

	IsRequired      bool `gorm:"type:boolean;not null;default:false" json:"is_required"`
	IsSearchable    bool `gorm:"type:boolean;not null;default:false" json:"is_searchable"`
	IsVisibleInList bool `gorm:"type:boolean;not null;default:false" json:"is_visible_in_list"`
	IsActive        bool `gorm:"type:boolean;not null;default:true" json:"is_active"`
	SortOrder       int  `gorm:"type:int;not null;default:0;index:idx_field_defs_sort_order" json:"sort_order"`

	Picklist *PicklistDefinition `gorm:"foreignKey:PicklistID" json:"picklist,omitempty"`
}

// TableName specifies the table name for CustomFieldDefinition
func (CustomFieldDefinition) TableName() string {
	return "custom_field_definitions"
}

// DecodeInlineOptions parses the inline option list. The wire format is a
// JSON array of strings; anything else is a malformed literal and must be
// rejected at validation time, not at display time.
func (d *CustomFieldDefinition) DecodeInlineOptions() ([]string, error) {
	if len(d.InlineOptions) == 0 {
		return nil, nil
	}
	var options []string
	if err := json.Unmarshal(d.InlineOptions, &options); err != nil {
		return nil, err
	}
	return options, nil
}

// HasPicklistSource reports whether the definition has any option source,
// shared or inline
func (d *CustomFieldDefinition) HasPicklistSource() bool {
	return d.PicklistID != nil || len(d.InlineOptions) > 0
}
