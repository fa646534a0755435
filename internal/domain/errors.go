package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgStructuralMismatch       = "structural mismatch"
	ErrMsgMissingRequiredAttribute = "missing required attribute"
	ErrMsgInvalidAttribute         = "invalid attribute value"
	ErrMsgUnresolvableRecord       = "unresolvable record"
	ErrMsgInvalidContentPackage    = "invalid content package"
)

// Resolution errors.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrStructuralMismatch means a node's tag is not the kind a resolver expects.
	// It points at a caller or indexing bug and is never recovered silently.
	ErrStructuralMismatch = errors.New(ErrMsgStructuralMismatch)

	// ErrMissingRequiredAttribute means a mandatory attribute is absent.
	ErrMissingRequiredAttribute = errors.New(ErrMsgMissingRequiredAttribute)

	// ErrInvalidAttribute means an attribute is present but cannot be coerced.
	ErrInvalidAttribute = errors.New(ErrMsgInvalidAttribute)

	// ErrUnresolvableRecord marks a record that is skipped from the catalog.
	ErrUnresolvableRecord = errors.New(ErrMsgUnresolvableRecord)

	// ErrInvalidContentPackage is returned when a package definition lacks a name or version.
	ErrInvalidContentPackage = errors.New(ErrMsgInvalidContentPackage)
)
