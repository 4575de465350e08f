package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CustomFieldValue is the datum a portal entity instance stores for one
// custom field. The row keeps a weak reference to both the field definition
// and the host entity; (entity_type, entity_id, field_definition_id) is the
// upsert key, so concurrent writes are last-writer-wins. The value lives in
// the typed column matching the field's storage kind; the others stay NULL.
type CustomFieldValue struct {
	BaseModel
	EntityType        EntityType  `gorm:"type:varchar(50);not null;uniqueIndex:uq_field_values_owner_field,priority:1;index:idx_field_values_owner,priority:1" json:"entity_type"`
	EntityID          string      `gorm:"type:varchar(100);not null;uniqueIndex:uq_field_values_owner_field,priority:2;index:idx_field_values_owner,priority:2" json:"entity_id"`
	FieldDefinitionID uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:uq_field_values_owner_field,priority:3;index:idx_field_values_definition" json:"field_definition_id"`
	Kind              StorageKind `gorm:"type:varchar(20);not null" json:"kind"`

	ValueString *string        `gorm:"type:text" json:"value_string,omitempty"`
	ValueNumber *float64       `json:"value_number,omitempty"`
	ValueBool   *bool          `json:"value_bool,omitempty"`
	ValueTime   *time.Time     `json:"value_time,omitempty"`
	ValueSet    datatypes.JSON `gorm:"type:jsonb" json:"value_set,omitempty"`
	ValueRef    *string        `gorm:"type:varchar(100)" json:"value_ref,omitempty"`
}

// TableName specifies the table name for CustomFieldValue
func (CustomFieldValue) TableName() string {
	return "custom_field_values"
}

// TypedValue is the in-memory tagged variant for a validated custom field
// value. Kind selects which member is meaningful; consumers must switch over
// Kind rather than guessing, so every new field type is handled everywhere.
type TypedValue struct {
	Kind StorageKind `json:"kind"`
	Str  string      `json:"str,omitempty"`
	Num  float64     `json:"num,omitempty"`
	Bool bool        `json:"bool,omitempty"`
	Time time.Time   `json:"time,omitempty"`
	Set  []string    `json:"set,omitempty"`
	Ref  string      `json:"ref,omitempty"`
}

// StringValue builds a string-kinded TypedValue
func StringValue(s string) TypedValue {
	return TypedValue{Kind: StorageKindString, Str: s}
}

// NumberValue builds a number-kinded TypedValue
func NumberValue(n float64) TypedValue {
	return TypedValue{Kind: StorageKindNumber, Num: n}
}

// BoolValue builds a boolean-kinded TypedValue
func BoolValue(b bool) TypedValue {
	return TypedValue{Kind: StorageKindBoolean, Bool: b}
}

// DateValue builds a date-kinded TypedValue; timestamps are stored in UTC
func DateValue(t time.Time) TypedValue {
	return TypedValue{Kind: StorageKindDate, Time: t.UTC()}
}

// SetValue builds a string-set-kinded TypedValue
func SetValue(set []string) TypedValue {
	return TypedValue{Kind: StorageKindStringSet, Set: set}
}

// RefValue builds a reference-kinded TypedValue
func RefValue(id string) TypedValue {
	return TypedValue{Kind: StorageKindReference, Ref: id}
}

// ToRow writes the typed value into the storage columns of a CustomFieldValue
func (v TypedValue) ToRow(row *CustomFieldValue) error {
	row.Kind = v.Kind
	row.ValueString = nil
	row.ValueNumber = nil
	row.ValueBool = nil
	row.ValueTime = nil
	row.ValueSet = nil
	row.ValueRef = nil

	switch v.Kind {
	case StorageKindString:
		s := v.Str
		row.ValueString = &s
	case StorageKindNumber:
		n := v.Num
		row.ValueNumber = &n
	case StorageKindBoolean:
		b := v.Bool
		row.ValueBool = &b
	case StorageKindDate:
		t := v.Time.UTC()
		row.ValueTime = &t
	case StorageKindStringSet:
		encoded, err := json.Marshal(v.Set)
		if err != nil {
			return fmt.Errorf("failed to encode value set: %w", err)
		}
		row.ValueSet = datatypes.JSON(encoded)
	case StorageKindReference:
		r := v.Ref
		row.ValueRef = &r
	default:
		return fmt.Errorf("unsupported storage kind: %s", v.Kind)
	}
	return nil
}

// FromRow reconstructs the typed value from the storage columns
func (row *CustomFieldValue) FromRow() (TypedValue, error) {
	switch row.Kind {
	case StorageKindString:
		if row.ValueString == nil {
			return TypedValue{}, fmt.Errorf("string value row %s has no value_string", row.ID)
		}
		return StringValue(*row.ValueString), nil
	case StorageKindNumber:
		if row.ValueNumber == nil {
			return TypedValue{}, fmt.Errorf("number value row %s has no value_number", row.ID)
		}
		return NumberValue(*row.ValueNumber), nil
	case StorageKindBoolean:
		if row.ValueBool == nil {
			return TypedValue{}, fmt.Errorf("boolean value row %s has no value_bool", row.ID)
		}
		return BoolValue(*row.ValueBool), nil
	case StorageKindDate:
		if row.ValueTime == nil {
			return TypedValue{}, fmt.Errorf("date value row %s has no value_time", row.ID)
		}
		return DateValue(*row.ValueTime), nil
	case StorageKindStringSet:
		var set []string
		if err := json.Unmarshal(row.ValueSet, &set); err != nil {
			return TypedValue{}, fmt.Errorf("failed to decode value set for row %s: %w", row.ID, err)
		}
		return SetValue(set), nil
	case StorageKindReference:
		if row.ValueRef == nil {
			return TypedValue{}, fmt.Errorf("reference value row %s has no value_ref", row.ID)
		}
		return RefValue(*row.ValueRef), nil
	default:
		return TypedValue{}, fmt.Errorf("unsupported storage kind: %s", row.Kind)
	}
}
