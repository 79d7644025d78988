package store

import "errors"

// Domain errors for the project store
var (
	// Validation errors
	ErrEmptyName   = errors.New("project name cannot be empty")
	ErrNameTooLong = errors.New("project name cannot exceed 100 characters")

	// Business logic errors
	ErrProjectNotFound = errors.New("project not found")
)
