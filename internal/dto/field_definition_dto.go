package dto

import (
	"time"

	"github.com/google/uuid"
)

// FieldDefinitionResponse represents a custom field definition
type FieldDefinitionResponse struct {
	FieldID          uuid.UUID         `json:"fieldId"`
	EntityType       string            `json:"entityType"`
	FieldName        string            `json:"fieldName"`
	DisplayLabel     string            `json:"displayLabel"`
	FieldType        string            `json:"fieldType"`
	StorageKind      string            `json:"storageKind"`
	PicklistID       *uuid.UUID        `json:"picklistId,omitempty"`
	Picklist         *PicklistResponse `json:"picklist,omitempty"`
	InlineOptions    []string          `json:"inlineOptions,omitempty"`
	LookupEntityType *string           `json:"lookupEntityType,omitempty"`
	DefaultValue     *string           `json:"defaultValue,omitempty"`
	HelpText         string            `json:"helpText"`
	Section          string            `json:"section"`
	MinValue         *float64          `json:"minValue,omitempty"`
	MaxValue         *float64          `json:"maxValue,omitempty"`
	IsRequired       bool              `json:"isRequired"`
	IsSearchable     bool              `json:"isSearchable"`
	IsVisibleInList  bool              `json:"isVisibleInList"`
	IsActive         bool              `json:"isActive"`
	SortOrder        int               `json:"sortOrder"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

// CreateFieldDefinitionRequest represents the request to define a new custom field
type CreateFieldDefinitionRequest struct {
	FieldName        string     `json:"fieldName" binding:"required,max=100"`
	DisplayLabel     string     `json:"displayLabel" binding:"required,max=200"`
	FieldType        string     `json:"fieldType" binding:"required,max=50"`
	PicklistID       *uuid.UUID `json:"picklistId"`
	InlineOptions    []string   `json:"inlineOptions"`
	LookupEntityType *string    `json:"lookupEntityType"`
	DefaultValue     *string    `json:"defaultValue"`
	HelpText         string     `json:"helpText" binding:"omitempty,max=500"`
	Section          string     `json:"section" binding:"omitempty,max=100"`
	MinValue         *float64   `json:"minValue"`
	MaxValue         *float64   `json:"maxValue"`
	IsRequired       bool       `json:"isRequired"`
	IsSearchable     bool       `json:"isSearchable"`
	IsVisibleInList  bool       `json:"isVisibleInList"`
	SortOrder        *int       `json:"sortOrder"`
}

// UpdateFieldDefinitionRequest represents the request to update a custom
// field definition. FieldName and FieldType are present so attempts to change
// them can be rejected explicitly rather than silently ignored.
type UpdateFieldDefinitionRequest struct {
	FieldName        *string    `json:"fieldName" binding:"omitempty,max=100"`
	FieldType        *string    `json:"fieldType" binding:"omitempty,max=50"`
	DisplayLabel     *string    `json:"displayLabel" binding:"omitempty,max=200"`
	PicklistID       *uuid.UUID `json:"picklistId"`
	InlineOptions    []string   `json:"inlineOptions"`
	LookupEntityType *string    `json:"lookupEntityType"`
	DefaultValue     *string    `json:"defaultValue"`
	HelpText         *string    `json:"helpText" binding:"omitempty,max=500"`
	Section          *string    `json:"section" binding:"omitempty,max=100"`
	MinValue         *float64   `json:"minValue"`
	MaxValue         *float64   `json:"maxValue"`
	IsRequired       *bool      `json:"isRequired"`
	IsSearchable     *bool      `json:"isSearchable"`
	IsVisibleInList  *bool      `json:"isVisibleInList"`
	SortOrder        *int       `json:"sortOrder"`
	IsActive         *bool      `json:"isActive"`
}

// FieldTypeInfoResponse describes one entry of the field type catalog
type FieldTypeInfoResponse struct {
	FieldType            string `json:"fieldType"`
	StorageKind          string `json:"storageKind"`
	RequiresPicklist     bool   `json:"requiresPicklist"`
	RequiresLookupTarget bool   `json:"requiresLookupTarget"`
}
