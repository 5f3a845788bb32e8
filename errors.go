package md2docx

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")

	// Base directory validation errors.
	ErrBaseDirNotFound = errors.New("base directory not found")
)
