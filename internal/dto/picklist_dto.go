package dto

import (
	"time"

	"github.com/google/uuid"
)

// PicklistValueResponse represents one selectable option of a picklist
type PicklistValueResponse struct {
	ValueID   uuid.UUID `json:"valueId"`
	Value     string    `json:"value"`
	Label     string    `json:"label"`
	SortOrder int       `json:"sortOrder"`
	IsActive  bool      `json:"isActive"`
}

// PicklistResponse represents a picklist with its values in display order
type PicklistResponse struct {
	PicklistID  uuid.UUID               `json:"picklistId"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	IsSystem    bool                    `json:"isSystem"`
	Values      []PicklistValueResponse `json:"values"`
	CreatedAt   time.Time               `json:"createdAt"`
	UpdatedAt   time.Time               `json:"updatedAt"`
}

// PicklistValueInput represents one option supplied at picklist creation
type PicklistValueInput struct {
	Value string `json:"value" binding:"required,max=100"`
	Label string `json:"label" binding:"omitempty,max=200"`
}

// CreatePicklistRequest represents the request to create a new picklist
type CreatePicklistRequest struct {
	Name        string               `json:"name" binding:"required,max=100"`
	Description string               `json:"description" binding:"omitempty,max=500"`
	Values      []PicklistValueInput `json:"values" binding:"omitempty,dive"`
}

// AddPicklistValueRequest represents the request to append a value to a picklist
type AddPicklistValueRequest struct {
	Value string `json:"value" binding:"required,max=100"`
	Label string `json:"label" binding:"omitempty,max=200"`
}

// UpdatePicklistValueRequest represents the request to relabel, reposition,
// or activate/deactivate a picklist value. The value key itself is immutable.
type UpdatePicklistValueRequest struct {
	Label     *string `json:"label" binding:"omitempty,max=200"`
	SortOrder *int    `json:"sortOrder" binding:"omitempty,min=0"`
	IsActive  *bool   `json:"isActive"`
}

// ReorderPicklistRequest represents the request to reorder a picklist's values.
// The id list must be a permutation of the picklist's current value set.
type ReorderPicklistRequest struct {
	OrderedValueIDs []uuid.UUID `json:"orderedValueIds" binding:"required,min=1"`
}

// SeedResultResponse reports the outcome of an idempotent seeding run
type SeedResultResponse struct {
	Created  int `json:"created"`
	Existing int `json:"existing"`
}
