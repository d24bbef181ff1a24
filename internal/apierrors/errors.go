package apierrors

import (
	"fmt"
	"net/http"
)

// Machine-readable error codes returned to API clients
const (
	CodeInvalidInput           = "INVALID_INPUT"
	CodeUnauthorized           = "UNAUTHORIZED"
	CodeForbidden              = "FORBIDDEN"
	CodeCampaignNotFound       = "CAMPAIGN_NOT_FOUND"
	CodeCampaignConfigNotFound = "CAMPAIGN_CONFIG_NOT_FOUND"
	CodeExtractionNotFound     = "EXTRACTION_NOT_FOUND"
	CodeDeviceRequired         = "DEVICE_REQUIRED"
	CodeNoUsableAccounts       = "NO_USABLE_ACCOUNTS"
	CodeDeviceCampaignActive   = "DEVICE_CAMPAIGN_ACTIVE"
	CodeAccountsReserved       = "ACCOUNTS_RESERVED"
	CodeInvalidTransition      = "INVALID_TRANSITION"
	CodeConcurrentModification = "CONCURRENT_MODIFICATION"
	CodeStartInProgress        = "START_IN_PROGRESS"
	CodeInternalError          = "INTERNAL_ERROR"
)

// APIError is an error that knows how it should be rendered over HTTP
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	// Details is rendered as-is in the response body when set.
	Details any
	// Err is the underlying error. It is logged, never sent to the client.
	Err error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// InternalError hides err behind a generic message
func InternalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Err:        err,
	}
}
