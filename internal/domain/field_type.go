package domain

// FieldType represents the type of a custom field
type FieldType string

// FieldType constants. The enumeration is closed; ParseFieldType rejects
// anything outside this set so repositories and the validation engine can
// switch exhaustively over it.
const (
	FieldTypeText          FieldType = "text"
	FieldTypeTextArea      FieldType = "textarea"
	FieldTypeNumber        FieldType = "number"
	FieldTypeCurrency      FieldType = "currency"
	FieldTypePercent       FieldType = "percent"
	FieldTypeDate          FieldType = "date"
	FieldTypeDateTime      FieldType = "datetime"
	FieldTypeCheckbox      FieldType = "checkbox"
	FieldTypePicklist      FieldType = "picklist"
	FieldTypeMultiPicklist FieldType = "multipicklist"
	FieldTypeLookup        FieldType = "lookup"
	FieldTypeURL           FieldType = "url"
	FieldTypeEmail         FieldType = "email"
	FieldTypePhone         FieldType = "phone"
)

// StorageKind is the primitive representation a field type is persisted as
type StorageKind string

// StorageKind constants
const (
	StorageKindString    StorageKind = "string"
	StorageKindNumber    StorageKind = "number"
	StorageKindBoolean   StorageKind = "boolean"
	StorageKindDate      StorageKind = "date"
	StorageKindStringSet StorageKind = "string_set"
	StorageKindReference StorageKind = "reference"
)

// TypeInfo describes the storage and reference requirements of a field type
type TypeInfo struct {
	StorageKind          StorageKind `json:"storageKind"`
	RequiresPicklist     bool        `json:"requiresPicklist"`
	RequiresLookupTarget bool        `json:"requiresLookupTarget"`
}

var fieldTypeCatalog = map[FieldType]TypeInfo{
	FieldTypeText:          {StorageKind: StorageKindString},
	FieldTypeTextArea:      {StorageKind: StorageKindString},
	FieldTypeNumber:        {StorageKind: StorageKindNumber},
	FieldTypeCurrency:      {StorageKind: StorageKindNumber},
	FieldTypePercent:       {StorageKind: StorageKindNumber},
	FieldTypeDate:          {StorageKind: StorageKindDate},
	FieldTypeDateTime:      {StorageKind: StorageKindDate},
	FieldTypeCheckbox:      {StorageKind: StorageKindBoolean},
	FieldTypePicklist:      {StorageKind: StorageKindString, RequiresPicklist: true},
	FieldTypeMultiPicklist: {StorageKind: StorageKindStringSet, RequiresPicklist: true},
	FieldTypeLookup:        {StorageKind: StorageKindReference, RequiresLookupTarget: true},
	FieldTypeURL:           {StorageKind: StorageKindString},
	FieldTypeEmail:         {StorageKind: StorageKindString},
	FieldTypePhone:         {StorageKind: StorageKindString},
}

// Describe returns the TypeInfo for a field type. The boolean is false for
// values outside the closed set.
func Describe(fieldType FieldType) (TypeInfo, bool) {
	info, ok := fieldTypeCatalog[fieldType]
	return info, ok
}

// ParseFieldType converts a raw string into a FieldType, rejecting unknown values
func ParseFieldType(raw string) (FieldType, bool) {
	ft := FieldType(raw)
	_, ok := fieldTypeCatalog[ft]
	return ft, ok
}

// AllFieldTypes lists every supported field type in a stable order
func AllFieldTypes() []FieldType {
	return []FieldType{
		FieldTypeText,
		FieldTypeTextArea,
		FieldTypeNumber,
		FieldTypeCurrency,
		FieldTypePercent,
		FieldTypeDate,
		FieldTypeDateTime,
		FieldTypeCheckbox,
		FieldTypePicklist,
		FieldTypeMultiPicklist,
		FieldTypeLookup,
		FieldTypeURL,
		FieldTypeEmail,
		FieldTypePhone,
	}
}
