package dto

import (
	"time"

	"github.com/google/uuid"
)

// SetValueRequest represents the request to write one custom field value.
// Value is decoded per the field's storage kind: strings for text-family
// fields, numbers for numeric fields, booleans for checkboxes, ISO date
// strings for dates, string arrays for multi-picklists, and entity ids for
// lookups. A null value clears the stored value.
type SetValueRequest struct {
	Value interface{} `json:"value"`
}

// SetValueResponse represents the outcome of a value write
type SetValueResponse struct {
	FieldName string      `json:"fieldName"`
	Value     interface{} `json:"value"`
	Warning   string      `json:"warning,omitempty"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// EntityValuesResponse represents all stored values of one entity instance,
// keyed by machine field name
type EntityValuesResponse struct {
	EntityType string                 `json:"entityType"`
	EntityID   string                 `json:"entityId"`
	Values     map[string]interface{} `json:"values"`
}

// ProjectionRowResponse represents one field of an entity's display
// projection: the definition metadata, the raw typed value (nil when unset),
// and the human-readable rendering of it
type ProjectionRowResponse struct {
	FieldID       uuid.UUID   `json:"fieldId"`
	FieldName     string      `json:"fieldName"`
	DisplayLabel  string      `json:"displayLabel"`
	FieldType     string      `json:"fieldType"`
	Section       string      `json:"section"`
	SortOrder     int         `json:"sortOrder"`
	Value         interface{} `json:"value"`
	DisplayString string      `json:"displayString"`
}

// ProjectionResponse represents the ordered display projection of one entity instance
type ProjectionResponse struct {
	EntityType string                  `json:"entityType"`
	EntityID   string                  `json:"entityId"`
	Rows       []ProjectionRowResponse `json:"rows"`
}
