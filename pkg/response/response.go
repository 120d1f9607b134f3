package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Error codes as strings
const (
	CodeSuccess         = "SUCCESS"
	CodeBadRequest      = "BAD_REQUEST"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "PERMISSION_DENIED"
	CodeNotFound        = "NOT_FOUND"
	CodeConflict        = "ALREADY_EXISTS"
	CodeInternalError   = "INTERNAL_ERROR"
	CodeValidationError = "VALIDATION_ERROR"
)

// RequestIDKey is the key used to store request ID in gin context
const RequestIDKey = "X-Request-ID"

// Response is the standard API response structure for success
type Response struct {
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	RequestID string      `json:"requestId"`
}

// ErrorResponse is the standard API response structure for errors
type ErrorResponse struct {
	Code      string `json:"code"`
	HTTPCode  int    `json:"httpCode"`
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
}

// ListData holds list response data with offset paging
type ListData struct {
	Items interface{} `json:"items"`
	Skip  int         `json:"skip"`
	Limit int         `json:"limit"`
}

// GetRequestID retrieves the request ID from context, or generates a new one
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(RequestIDKey); exists {
		if id, ok := requestID.(string); ok && id != "" {
			return id
		}
	}
	if requestID := c.GetHeader(RequestIDKey); requestID != "" {
		return requestID
	}
	return "req-" + uuid.New().String()
}

// Success sends a success response
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:      CodeSuccess,
		Message:   "success",
		Data:      data,
		RequestID: GetRequestID(c),
	})
}

// Created sends a created response
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:      CodeSuccess,
		Message:   "created",
		Data:      data,
		RequestID: GetRequestID(c),
	})
}

// SuccessList sends a list success response
func SuccessList(c *gin.Context, items interface{}, skip, limit int) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: "success",
		Data: ListData{
			Items: items,
			Skip:  skip,
			Limit: limit,
		},
		RequestID: GetRequestID(c),
	})
}

// Error sends an error response
func Error(c *gin.Context, httpStatus int, code string, message string) {
	c.JSON(httpStatus, ErrorResponse{
		Code:      code,
		HTTPCode:  httpStatus,
		Message:   message,
		RequestID: GetRequestID(c),
	})
}

// BadRequest sends a bad request response
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, CodeBadRequest, message)
}

// Unauthorized sends an unauthorized response
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, CodeUnauthorized, message)
}

// Forbidden sends a forbidden response
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, CodeForbidden, message)
}

// NotFound sends a not found response
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, CodeNotFound, message)
}

// Conflict sends a conflict response
func Conflict(c *gin.Context, message string) {
	Error(c, http.StatusConflict, CodeConflict, message)
}

// ValidationError sends a validation error response
func ValidationError(c *gin.Context, message string) {
	Error(c, http.StatusUnprocessableEntity, CodeValidationError, message)
}

// InternalError sends an internal server error response
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, CodeInternalError, message)
}
