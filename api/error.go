package api

import (
	"github.com/gin-gonic/gin"
)

// Machine-readable error codes returned in the error envelope.
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeChannelDisabled = "CHANNEL_DISABLED"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeInternal        = "INTERNAL_ERROR"
)

type FieldViolation struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func fieldViolation(field string, err error) *FieldViolation {
	return &FieldViolation{
		Field:       field,
		Description: err.Error(),
	}
}

type ErrorBody struct {
	Code            string            `json:"code" example:"NOT_FOUND"`
	Message         string            `json:"message" example:"Notification not found"`
	FieldViolations []*FieldViolation `json:"field_violations,omitempty"`
}

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

func errorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorBody{Code: code, Message: message}}
}

func failedValidationError(violations []*FieldViolation) ErrorResponse {
	return ErrorResponse{Error: ErrorBody{
		Code:            CodeValidation,
		Message:         "Invalid request parameters",
		FieldViolations: violations,
	}}
}

// SuccessResponse is the envelope of every successful response.
type SuccessResponse struct {
	Success bool   `json:"success" example:"true"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

type Pagination struct {
	Page       int   `json:"page" example:"1"`
	Limit      int   `json:"limit" example:"10"`
	Total      int64 `json:"total" example:"42"`
	TotalPages int64 `json:"total_pages" example:"5"`
}

type PaginatedResponse struct {
	Success    bool       `json:"success" example:"true"`
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

func successResponse(data any) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}

func abortWithError(ctx *gin.Context, status int, code, message string) {
	ctx.AbortWithStatusJSON(status, errorResponse(code, message))
}
