package models

import (
	"strings"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// HasErrors returns true if there are validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// GetMessages returns all error messages as a slice of strings
func (ve ValidationErrors) GetMessages() []string {
	messages := make([]string, len(ve))
	for i, err := range ve {
		messages[i] = err.Message
	}
	return messages
}

// Error implements the error interface so services can return validation failures directly
func (ve ValidationErrors) Error() string {
	return "validation failed: " + strings.Join(ve.GetMessages(), ", ")
}

// MessageResponse is the generic {"message": ...} JSON body
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is returned for rejected requests
type ErrorResponse struct {
	Message string           `json:"message"`
	Errors  ValidationErrors `json:"errors,omitempty"`
}
