package zipstat

import (
	"errors"
	"fmt"
	"strings"
)

// Standard error messages and error creation functions for consistency
var (
	// ErrUnsupportedFormat indicates an unsupported file format
	ErrUnsupportedFormat = errors.New("zipstat: unsupported file format")

	// ErrDatasetNotLoaded indicates that an operation needs a dataset that was not provided
	ErrDatasetNotLoaded = errors.New("zipstat: dataset not loaded")

	// ErrNoInput indicates that no input file was configured
	ErrNoInput = errors.New("zipstat: no input files")

	// ErrEmptySheet indicates an XLSX workbook without rows on its first sheet
	ErrEmptySheet = errors.New("zipstat: workbook has no rows")

	// ErrInvalidJSON indicates that a JSON input is not an array of objects
	ErrInvalidJSON = errors.New("zipstat: json input must be an array of objects")
)

// ErrorContext provides context for where an error occurred
type ErrorContext struct {
	Operation string
	FilePath  string
	Details   string
}

// NewErrorContext creates a new error context
func NewErrorContext(operation, filePath string) *ErrorContext {
	return &ErrorContext{
		Operation: operation,
		FilePath:  filePath,
	}
}

// WithDetails adds details to the error context
func (ec *ErrorContext) WithDetails(details string) *ErrorContext {
	ec.Details = details
	return ec
}

// Error creates a formatted error with context
func (ec *ErrorContext) Error(baseErr error) error {
	var parts []string
	parts = append(parts, fmt.Sprintf("zipstat: %s failed", ec.Operation))

	if ec.FilePath != "" {
		parts = append(parts, "file: "+ec.FilePath)
	}

	if ec.Details != "" {
		parts = append(parts, "details: "+ec.Details)
	}

	context := strings.Join(parts, ", ")
	if baseErr != nil {
		return fmt.Errorf("%s: %w", context, baseErr)
	}
	return fmt.Errorf("%s", context)
}
