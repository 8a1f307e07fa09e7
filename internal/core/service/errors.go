package service

import (
	"net/http"
	"sort"
)

// ServiceError carries an HTTP status code for the handler boundary.
type ServiceError struct {
	Code    int
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewServiceError(code int, message string) *ServiceError {
	return &ServiceError{Code: code, Message: message}
}

func NewNotFoundError(message string) *ServiceError {
	return &ServiceError{Code: http.StatusNotFound, Message: message}
}

func NewForbiddenError(message string) *ServiceError {
	return &ServiceError{Code: http.StatusForbidden, Message: message}
}

// ValidationError reports per-field failures. No mutation has taken
// place when one is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	msg := "validation failed:"
	for _, field := range fields {
		msg += " " + field + ": " + e.Fields[field] + ";"
	}
	return msg[:len(msg)-1]
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
