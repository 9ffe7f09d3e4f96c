package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ContentTypeProblemJSON is the MIME type for RFC 9457 Problem Details.
const ContentTypeProblemJSON = "application/problem+json"

// WriteProblem writes problem with the problem+json content type and a
// Retry-After header when the problem carries one.
func WriteProblem(c *gin.Context, problem *ProblemDetails) {
	if problem.Instance == "" && c.Request != nil {
		problem.Instance = c.Request.URL.Path
	}
	if problem.RetryAfter != nil {
		c.Header("Retry-After", strconv.Itoa(*problem.RetryAfter))
	}
	c.Header("Content-Type", ContentTypeProblemJSON)
	c.JSON(problem.Status, problem)
}

// AbortWithProblem writes problem and stops the handler chain.
func AbortWithProblem(c *gin.Context, problem *ProblemDetails) {
	WriteProblem(c, problem)
	c.Abort()
}

// GetRequestID returns the request ID set by the request logger, falling back
// to the inbound X-Request-ID header.
func GetRequestID(c *gin.Context) string {
	if v, ok := c.Get("request_id"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	if c.Request == nil {
		return ""
	}
	return c.GetHeader("X-Request-ID")
}

// NewValidationError reports every failing field at once.
func NewValidationError(requestID string, errs []FieldError) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeValidation,
		Title:       TitleValidation,
		Status:      http.StatusBadRequest,
		Detail:      "One or more fields failed validation",
		RequestID:   requestID,
		UserMessage: "Please check your input and try again",
		Errors:      errs,
	}
}

// FromBindError turns a gin binding failure into a problem, listing each
// validator field error when there are any.
func FromBindError(requestID string, err error) *ProblemDetails {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewBadRequestError(requestID, "Request body could not be parsed", "Please check your input and try again")
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
			Code:    fe.Tag(),
		})
	}
	return NewValidationError(requestID, fields)
}

func NewBadRequestError(requestID, detail, userMessage string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeBadRequest,
		Title:       TitleBadRequest,
		Status:      http.StatusBadRequest,
		Detail:      detail,
		RequestID:   requestID,
		UserMessage: userMessage,
	}
}

// NewInvalidCalendarError reports an unusable tz or week_start parameter.
func NewInvalidCalendarError(requestID, field, value string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeInvalidTimezone,
		Title:       TitleInvalidTimezone,
		Status:      http.StatusBadRequest,
		Detail:      fmt.Sprintf("Unsupported value for '%s': '%s'", field, value),
		RequestID:   requestID,
		UserMessage: "The report settings are not supported",
		Errors: []FieldError{
			{Field: field, Message: "unsupported value", Code: "invalid_" + field},
		},
	}
}

func NewInvalidDeviceError(requestID, value string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeInvalidDevice,
		Title:       TitleInvalidDevice,
		Status:      http.StatusBadRequest,
		Detail:      fmt.Sprintf("Device identifier '%s' is not a MAC address or UUID", value),
		RequestID:   requestID,
		UserMessage: "That QR code does not belong to a companion toy",
		Errors: []FieldError{
			{Field: "device_id", Message: "must be a MAC address or UUID", Code: "invalid_device_id"},
		},
	}
}

func NewUnauthorizedError(requestID string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeUnauthorized,
		Title:       TitleUnauthorized,
		Status:      http.StatusUnauthorized,
		Detail:      "Authentication is required to access this resource",
		RequestID:   requestID,
		UserMessage: "Please sign in to continue",
	}
}

// NewInvalidCredentialsError is returned for a failed login.
func NewInvalidCredentialsError(requestID string) *ProblemDetails {
	p := NewUnauthorizedError(requestID)
	p.Detail = "Email or password is incorrect"
	p.UserMessage = "Email or password is incorrect"
	return p
}

func NewNotFoundError(requestID, resource, id string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeNotFound,
		Title:       TitleNotFound,
		Status:      http.StatusNotFound,
		Detail:      fmt.Sprintf("%s '%s' was not found", resource, id),
		RequestID:   requestID,
		UserMessage: fmt.Sprintf("The requested %s could not be found", resource),
	}
}

func NewConflictError(requestID, detail, userMessage string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeConflict,
		Title:       TitleConflict,
		Status:      http.StatusConflict,
		Detail:      detail,
		RequestID:   requestID,
		UserMessage: userMessage,
	}
}

// NewRateLimitError tells the client how many seconds to wait.
func NewRateLimitError(requestID string, retryAfter int) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeRateLimit,
		Title:       TitleRateLimit,
		Status:      http.StatusTooManyRequests,
		Detail:      fmt.Sprintf("Rate limit exceeded. Please retry after %d seconds", retryAfter),
		RequestID:   requestID,
		UserMessage: "Too many requests. Please wait before trying again.",
		RetryAfter:  &retryAfter,
	}
}

// NewRecordSourceError reports that logs for a report could not be fetched.
// The collection name is included; the upstream message is not.
func NewRecordSourceError(requestID, collection string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeRecordSource,
		Title:       TitleRecordSource,
		Status:      http.StatusBadGateway,
		Detail:      fmt.Sprintf("Fetching %s from the record source failed", collection),
		RequestID:   requestID,
		UserMessage: "We couldn't load your toy's activity. Please try again.",
	}
}

// NewInternalError hides the cause; log it server-side.
func NewInternalError(requestID string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeInternal,
		Title:       TitleInternal,
		Status:      http.StatusInternalServerError,
		Detail:      "An unexpected error occurred",
		RequestID:   requestID,
		UserMessage: "Something went wrong. Please try again later.",
	}
}
