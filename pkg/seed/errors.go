package seed

import "errors"

// Sentinel errors for emitter configuration.
var (
	// ErrNilCatalog is returned when New is called without a catalog.
	ErrNilCatalog = errors.New("seed: catalog cannot be nil")

	// ErrInvalidIdentifier is returned when a variable name is not a valid identifier.
	ErrInvalidIdentifier = errors.New("seed: invalid identifier")

	// ErrInvalidIndent is returned when the indent unit is empty or contains non-whitespace.
	ErrInvalidIndent = errors.New("seed: indent must be non-empty whitespace")

	// ErrEmptySection is returned when a section name is empty.
	ErrEmptySection = errors.New("seed: section name cannot be empty")

	// ErrDuplicateSection is returned when a section is listed more than once.
	ErrDuplicateSection = errors.New("seed: duplicate section")

	// ErrWrite is returned when the generated literal cannot be written.
	ErrWrite = errors.New("seed: failed to write output")
)
