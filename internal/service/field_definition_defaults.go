package service

import "portal-metadata-api/internal/domain"

// fieldDefinitionTemplate describes one stock field definition
type fieldDefinitionTemplate struct {
	EntityType       domain.EntityType
	FieldName        string
	DisplayLabel     string
	FieldType        domain.FieldType
	PicklistName     string // resolved against seeded system picklists
	LookupEntityType domain.EntityType
	HelpText         string
	Section          string
	MinValue         *float64
	MaxValue         *float64
	IsRequired       bool
	IsSearchable     bool
	IsVisibleInList  bool
	SortOrder        int
}

func floatPtr(f float64) *float64 { return &f }

// defaultFieldDefinitions returns the stock custom fields each portal entity
// starts with. Picklist-backed fields reference the system picklists by name.
func defaultFieldDefinitions() []fieldDefinitionTemplate {
	return []fieldDefinitionTemplate{
		// Opportunity
		{
			EntityType:      domain.EntityTypeOpportunity,
			FieldName:       "acquisition_type",
			DisplayLabel:    "Acquisition Type",
			FieldType:       domain.FieldTypePicklist,
			PicklistName:    "AcquisitionType",
			Section:         "Capture",
			IsSearchable:    true,
			IsVisibleInList: true,
			SortOrder:       0,
		},
		{
			EntityType:      domain.EntityTypeOpportunity,
			FieldName:       "contract_type",
			DisplayLabel:    "Contract Type",
			FieldType:       domain.FieldTypePicklist,
			PicklistName:    "ContractType",
			Section:         "Capture",
			IsVisibleInList: true,
			SortOrder:       1,
		},
		{
			EntityType:      domain.EntityTypeOpportunity,
			FieldName:       "contract_value",
			DisplayLabel:    "Contract Value",
			FieldType:       domain.FieldTypeCurrency,
			Section:         "Financials",
			MinValue:        floatPtr(0),
			IsVisibleInList: true,
			SortOrder:       2,
		},
		{
			EntityType:   domain.EntityTypeOpportunity,
			FieldName:    "pwin",
			DisplayLabel: "PWin",
			FieldType:    domain.FieldTypePercent,
			HelpText:     "Estimated probability of winning",
			Section:      "Capture",
			SortOrder:    3,
		},
		{
			EntityType:   domain.EntityTypeOpportunity,
			FieldName:    "proposal_due_date",
			DisplayLabel: "Proposal Due Date",
			FieldType:    domain.FieldTypeDate,
			Section:      "Schedule",
			SortOrder:    4,
		},
		{
			EntityType:   domain.EntityTypeOpportunity,
			FieldName:    "incumbent",
			DisplayLabel: "Incumbent",
			FieldType:    domain.FieldTypeText,
			Section:      "Capture",
			IsSearchable: true,
			SortOrder:    5,
		},
		{
			EntityType:       domain.EntityTypeOpportunity,
			FieldName:        "contract_vehicle",
			DisplayLabel:     "Contract Vehicle",
			FieldType:        domain.FieldTypeLookup,
			LookupEntityType: domain.EntityTypeContractVehicle,
			Section:          "Capture",
			SortOrder:        6,
		},

		// Account
		{
			EntityType:      domain.EntityTypeAccount,
			FieldName:       "portfolio",
			DisplayLabel:    "Portfolio",
			FieldType:       domain.FieldTypePicklist,
			PicklistName:    "Portfolio",
			Section:         "Classification",
			IsSearchable:    true,
			IsVisibleInList: true,
			SortOrder:       0,
		},
		{
			EntityType:   domain.EntityTypeAccount,
			FieldName:    "uei_number",
			DisplayLabel: "UEI Number",
			FieldType:    domain.FieldTypeText,
			HelpText:     "SAM.gov Unique Entity Identifier",
			Section:      "Registration",
			IsSearchable: true,
			SortOrder:    1,
		},
		{
			EntityType:   domain.EntityTypeAccount,
			FieldName:    "website",
			DisplayLabel: "Website",
			FieldType:    domain.FieldTypeURL,
			Section:      "General",
			SortOrder:    2,
		},

		// Contact
		{
			EntityType:   domain.EntityTypeContact,
			FieldName:    "linkedin_url",
			DisplayLabel: "LinkedIn",
			FieldType:    domain.FieldTypeURL,
			Section:      "General",
			SortOrder:    0,
		},
		{
			EntityType:   domain.EntityTypeContact,
			FieldName:    "work_phone",
			DisplayLabel: "Work Phone",
			FieldType:    domain.FieldTypePhone,
			Section:      "General",
			SortOrder:    1,
		},
		{
			EntityType:   domain.EntityTypeContact,
			FieldName:    "is_key_contact",
			DisplayLabel: "Key Contact",
			FieldType:    domain.FieldTypeCheckbox,
			Section:      "General",
			SortOrder:    2,
		},

		// Contract vehicle
		{
			EntityType:      domain.EntityTypeContractVehicle,
			FieldName:       "ceiling_value",
			DisplayLabel:    "Ceiling Value",
			FieldType:       domain.FieldTypeCurrency,
			Section:         "Financials",
			MinValue:        floatPtr(0),
			IsVisibleInList: true,
			SortOrder:       0,
		},
		{
			EntityType:      domain.EntityTypeContractVehicle,
			FieldName:       "expiration_date",
			DisplayLabel:    "Expiration Date",
			FieldType:       domain.FieldTypeDate,
			Section:         "Schedule",
			IsVisibleInList: true,
			SortOrder:       1,
		},
		{
			EntityType:       domain.EntityTypeContractVehicle,
			FieldName:        "prime_account",
			DisplayLabel:     "Prime Account",
			FieldType:        domain.FieldTypeLookup,
			LookupEntityType: domain.EntityTypeAccount,
			Section:          "General",
			SortOrder:        2,
		},
	}
}
