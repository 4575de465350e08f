package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"portal-metadata-api/internal/response"
)

// handleServiceError maps service layer errors to appropriate HTTP responses
func handleServiceError(c *gin.Context, err error) {
	// Log the error for debugging
	fmt.Printf("[ERROR] Service error: %v\n", err)

	// Check for GORM errors
	if errors.Is(err, gorm.ErrRecordNotFound) {
		response.SendError(c, http.StatusNotFound, response.ErrCodeNotFound, "Resource not found")
		return
	}

	// Check for custom AppError
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		statusCode := mapErrorCodeToHTTPStatus(appErr.Code)
		response.SendError(c, statusCode, appErr.Code, appErr.Message)
		return
	}

	// Default to internal server error
	fmt.Printf("[ERROR] Unhandled error type: %T, value: %v\n", err, err)
	response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, "Internal server error")
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case response.ErrCodeNotFound, response.ErrCodeUnknownField:
		return http.StatusNotFound
	case response.ErrCodeAlreadyExists,
		response.ErrCodeDuplicateName,
		response.ErrCodeDuplicateField,
		response.ErrCodeDuplicateValue:
		return http.StatusConflict
	case response.ErrCodeValidation,
		response.ErrCodeInvalidFieldName,
		response.ErrCodeInvalidSet,
		response.ErrCodeImmutableAttribute,
		response.ErrCodeMissingPicklistReference,
		response.ErrCodeMissingLookupTarget,
		response.ErrCodeFormat,
		response.ErrCodeRange,
		response.ErrCodeInvalidOption,
		response.ErrCodeDanglingReference,
		response.ErrCodeRequiredFieldMissing,
		response.ErrCodeMalformedPicklistJSON:
		return http.StatusBadRequest
	case response.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case response.ErrCodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
