package response

import "fmt"

// Generic error codes
const (
	ErrCodeInternal      = "INTERNAL_ERROR"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeForbidden     = "FORBIDDEN"
)

// Registry error codes (field definitions and picklists)
const (
	ErrCodeDuplicateName            = "DUPLICATE_NAME"
	ErrCodeDuplicateField           = "DUPLICATE_FIELD"
	ErrCodeDuplicateValue           = "DUPLICATE_VALUE"
	ErrCodeInvalidFieldName         = "INVALID_FIELD_NAME"
	ErrCodeInvalidSet               = "INVALID_SET"
	ErrCodeUnknownField             = "UNKNOWN_FIELD"
	ErrCodeImmutableAttribute       = "IMMUTABLE_ATTRIBUTE"
	ErrCodeMissingPicklistReference = "MISSING_PICKLIST_REFERENCE"
	ErrCodeMissingLookupTarget      = "MISSING_LOOKUP_TARGET"
)

// Value validation error codes
const (
	ErrCodeFormat                = "FORMAT_ERROR"
	ErrCodeRange                 = "RANGE_ERROR"
	ErrCodeInvalidOption         = "INVALID_OPTION"
	ErrCodeDanglingReference     = "DANGLING_REFERENCE"
	ErrCodeRequiredFieldMissing  = "REQUIRED_FIELD_MISSING"
	ErrCodeMalformedPicklistJSON = "MALFORMED_PICKLIST_JSON"
)

// AppError is the service-layer error carried up to the HTTP handlers.
// Code is one of the ErrCode* constants; Details is optional diagnostic text
// that is logged but never returned to clients.
type AppError struct {
	Code    string
	Message string
	Details string
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewAppError creates a new AppError with an arbitrary code
func NewAppError(code, message, details string) *AppError {
	return &AppError{Code: code, Message: message, Details: details}
}

// NewValidationError creates a generic validation AppError
func NewValidationError(message, details string) *AppError {
	return NewAppError(ErrCodeValidation, message, details)
}

// NewNotFoundError creates a not-found AppError
func NewNotFoundError(message, details string) *AppError {
	return NewAppError(ErrCodeNotFound, message, details)
}

// NewForbiddenError creates a forbidden AppError
func NewForbiddenError(message, details string) *AppError {
	return NewAppError(ErrCodeForbidden, message, details)
}
