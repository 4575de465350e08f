package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"portal-metadata-api/internal/client"
	"portal-metadata-api/internal/domain"
	"portal-metadata-api/internal/repository"
	"portal-metadata-api/internal/response"
)

const (
	dateLayout = "2006-01-02"

	defaultPercentMin = 0
	defaultPercentMax = 100
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\-() .]{5,24}$`)
)

// ValidationEngine checks a raw submitted value against a field definition
// and produces the typed value to store. Checks run required-first, then
// format, then range/membership, so clients always see the most actionable
// error for a rejected write.
type ValidationEngine interface {
	Validate(ctx context.Context, def *domain.CustomFieldDefinition, raw interface{}) (domain.TypedValue, error)
}

// validationEngineImpl is the implementation of ValidationEngine
type validationEngineImpl struct {
	picklistRepo repository.PicklistRepository
	portalClient client.PortalClient
}

// NewValidationEngine creates a new instance of ValidationEngine
func NewValidationEngine(picklistRepo repository.PicklistRepository, portalClient client.PortalClient) ValidationEngine {
	return &validationEngineImpl{
		picklistRepo: picklistRepo,
		portalClient: portalClient,
	}
}

// Validate checks raw against the definition and returns the typed value.
// raw must not be nil; clearing a value is handled before validation.
func (e *validationEngineImpl) Validate(ctx context.Context, def *domain.CustomFieldDefinition, raw interface{}) (domain.TypedValue, error) {
	if def.IsRequired && isEmptySubmission(raw) {
		return domain.TypedValue{}, response.NewAppError(response.ErrCodeRequiredFieldMissing,
			fmt.Sprintf("Field '%s' is required and cannot be empty", def.FieldName), "")
	}

	switch def.FieldType {
	case domain.FieldTypeText, domain.FieldTypeTextArea:
		return e.validateText(def, raw)
	case domain.FieldTypeEmail:
		return e.validateEmail(def, raw)
	case domain.FieldTypeURL:
		return e.validateURL(def, raw)
	case domain.FieldTypePhone:
		return e.validatePhone(def, raw)
	case domain.FieldTypeNumber, domain.FieldTypeCurrency, domain.FieldTypePercent:
		return e.validateNumber(def, raw)
	case domain.FieldTypeDate:
		return e.validateDate(def, raw)
	case domain.FieldTypeDateTime:
		return e.validateDateTime(def, raw)
	case domain.FieldTypeCheckbox:
		return e.validateCheckbox(def, raw)
	case domain.FieldTypePicklist:
		return e.validatePicklist(ctx, def, raw)
	case domain.FieldTypeMultiPicklist:
		return e.validateMultiPicklist(ctx, def, raw)
	case domain.FieldTypeLookup:
		return e.validateLookup(ctx, def, raw)
	default:
		return domain.TypedValue{}, response.NewAppError(response.ErrCodeInternal,
			fmt.Sprintf("Field '%s' has unsupported type %s", def.FieldName, def.FieldType), "")
	}
}

func (e *validationEngineImpl) validateText(def *domain.CustomFieldDefinition, raw interface{}) (domain.TypedValue, error) {
	s, ok := raw.(string)
	if !ok {
		return domain.TypedValue{}, formatError(def, "expects a string")
	}
	return domain.StringValue(s), nil
}

func (e *validationEngineImpl) validateEmail(def *domain.CustomFieldDefinition, raw interface{}) (domain.TypedValue, error) {
	s, ok := raw.(string)
	if !ok {
		return domain.TypedValue{}, formatError(def, "expects a string")
	}
	if !emailPattern.MatchString(s) {
		return domain.TypedValue{}, formatError(def, fmt.Sprintf("'%s' is not a valid email address", s))
	}
	return domain.StringValue(s), nil
}

func (e *validationEngineImpl) validateURL(def *domain.CustomFieldDefinition, raw interface{}) (domain.TypedValue, error) {
	s, ok := raw.(string)
	if !ok {
		return domain.TypedValue{}, formatError(def, "expects a string")
	}
	parsed, err := url.Parse(s)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return domain.TypedValue{}, formatError(def, fmt.Sprintf("'%s' is not an absolute http(s) URL", s))
	}
	return domain.StringValue(s), nil
}

func (e *validationEngineImpl) validatePhone(def *domain.CustomFieldDefinition, raw interface{}) (domain.TypedValue, error) {
	s, ok := raw.(string)
	if !ok {
		return domain.TypedValue{}, formatError(def, "expects a string")
	}
	if !phonePattern.MatchString(s) {
		return domain.TypedValue{}, formatError(def, fmt.Sprintf("'%s' is not a valid phone number", s))
	}
	return domain.StringValue(s), nil
}

func (e *validationEngineImpl) validateNumber(def *domain.CustomFieldDefinition, raw interface{}) (domain.TypedValue, error) {
	n, ok := raw.(float64)
	if !ok {
		return domain.TypedValue{}, formatError(def, "expects a number")
	}

	min, max := def.MinValue, def.MaxValue
	if def.FieldType == domain.FieldTypePercent {
		// Percent fields are bounded even when the definition leaves the range open
		if min == nil {
			min = floatPtr(defaultPercentMin)
		}
		if max == nil {
			max = floatPtr(defaultPercentMax)
		}
	}

	if min != nil && n < *min {
		return domain.TypedValue{}, rangeError(def, fmt.Sprintf("%v is below the minimum of %v", n, *min))
	}
	if max != nil && n > *max {
		return domain.TypedValue{}, rangeError(def, fmt.Sprintf("%v is above the maximum of %v", n, *max))
	}
	return domain.NumberValue(n), nil
}

func (e *validationEngineImpl) validateDate(def *domain.CustomFieldDefinition, raw interface{}) (domain.TypedValue, error) {
	s, ok := raw.(string)
	if !ok {
		return domain.TypedValue{}, formatError(def, "expects a date string")
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return domain.TypedValue{}, formatError(def, fmt.Sprintf("'%s' is not a YYYY-MM-DD date", s))
	}
	return domain.DateValue(t), nil
}

func (e *validationEngineImpl) validateDateTime(def *domain.CustomFieldDefinition, raw interface{}) (domain.TypedValue, error) {
	s, ok := raw.(string)
	if !ok {
		return domain.TypedValue{}, formatError(def, "expects a timestamp string")
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return domain.TypedValue{}, formatError(def, fmt.Sprintf("'%s' is not an RFC 3339 timestamp", s))
	}
	return domain.DateValue(t), nil
}

func (e *validationEngineImpl) validateCheckbox(def *domain.CustomFieldDefinition, raw interface{}) (domain.TypedValue, error) {
	b, ok := raw.(bool)
	if !ok {
		return domain.TypedValue{}, formatError(def, "expects a boolean")
	}
	return domain.BoolValue(b), nil
}

func (e *validationEngineImpl) validatePicklist(ctx context.Context, def *domain.CustomFieldDefinition, raw interface{}) (domain.TypedValue, error) {
	s, ok := raw.(string)
	if !ok {
		return domain.TypedValue{}, formatError(def, "expects an option key string")
	}
	options, err := e.activeOptions(ctx, def)
	if err != nil {
		return domain.TypedValue{}, err
	}
	if !options[s] {
		return domain.TypedValue{}, response.NewAppError(response.ErrCodeInvalidOption,
			fmt.Sprintf("'%s' is not an active option of field '%s'", s, def.FieldName), "")
	}
	return domain.StringValue(s), nil
}

func (e *validationEngineImpl) validateMultiPicklist(ctx context.Context, def *domain.CustomFieldDefinition, raw interface{}) (domain.TypedValue, error) {
	items, ok := raw.([]interface{})
	if !ok {
		return domain.TypedValue{}, formatError(def, "expects an array of option key strings")
	}
	options, err := e.activeOptions(ctx, def)
	if err != nil {
		return domain.TypedValue{}, err
	}

	set := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return domain.TypedValue{}, formatError(def, "expects an array of option key strings")
		}
		if !options[s] {
			return domain.TypedValue{}, response.NewAppError(response.ErrCodeInvalidOption,
				fmt.Sprintf("'%s' is not an active option of field '%s'", s, def.FieldName), "")
		}
		if seen[s] {
			continue
		}
		seen[s] = true
		set = append(set, s)
	}
	return domain.SetValue(set), nil
}

func (e *validationEngineImpl) validateLookup(ctx context.Context, def *domain.CustomFieldDefinition, raw interface{}) (domain.TypedValue, error) {
	s, ok := raw.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return domain.TypedValue{}, formatError(def, "expects a referenced entity id string")
	}
	if def.LookupEntityType == nil {
		return domain.TypedValue{}, response.NewAppError(response.ErrCodeMissingLookupTarget,
			fmt.Sprintf("Field '%s' has no lookup target configured", def.FieldName), "")
	}

	if e.portalClient == nil {
		return domain.TypedValue{}, response.NewAppError(response.ErrCodeValidation,
			fmt.Sprintf("Field '%s' cannot be verified: portal lookups are not configured", def.FieldName), "")
	}

	exists, err := e.portalClient.EntityExists(ctx, *def.LookupEntityType, s)
	if err != nil {
		return domain.TypedValue{}, response.NewAppError(response.ErrCodeInternal,
			"Failed to verify referenced entity", err.Error())
	}
	if !exists {
		return domain.TypedValue{}, response.NewAppError(response.ErrCodeDanglingReference,
			fmt.Sprintf("%s '%s' does not exist", *def.LookupEntityType, s), "")
	}
	return domain.RefValue(s), nil
}

// activeOptions resolves the currently selectable option keys of a picklist
// field, from the shared picklist or the inline list.
func (e *validationEngineImpl) activeOptions(ctx context.Context, def *domain.CustomFieldDefinition) (map[string]bool, error) {
	options := make(map[string]bool)

	if def.PicklistID != nil {
		picklist := def.Picklist
		if picklist == nil {
			loaded, err := e.picklistRepo.FindByID(ctx, *def.PicklistID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, response.NewAppError(response.ErrCodeMissingPicklistReference,
						fmt.Sprintf("Picklist of field '%s' no longer exists", def.FieldName), "")
				}
				return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load picklist", err.Error())
			}
			picklist = loaded
		}
		for _, key := range picklist.ActiveValueKeys() {
			options[key] = true
		}
		return options, nil
	}

	inline, err := def.DecodeInlineOptions()
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeMalformedPicklistJSON,
			fmt.Sprintf("Inline options of field '%s' are not a JSON string array", def.FieldName), err.Error())
	}
	if len(inline) == 0 {
		return nil, response.NewAppError(response.ErrCodeMissingPicklistReference,
			fmt.Sprintf("Field '%s' has no option source", def.FieldName), "")
	}
	for _, key := range inline {
		options[key] = true
	}
	return options, nil
}

// isEmptySubmission reports whether raw carries no usable value: a blank
// string or an empty option set. Submitting either to a required field is
// equivalent to clearing it.
func isEmptySubmission(raw interface{}) bool {
	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v) == ""
	case []interface{}:
		return len(v) == 0
	}
	return false
}

func formatError(def *domain.CustomFieldDefinition, detail string) error {
	return response.NewAppError(response.ErrCodeFormat,
		fmt.Sprintf("Field '%s' (%s) %s", def.FieldName, def.FieldType, detail), "")
}

func rangeError(def *domain.CustomFieldDefinition, detail string) error {
	return response.NewAppError(response.ErrCodeRange,
		fmt.Sprintf("Field '%s': %s", def.FieldName, detail), "")
}
