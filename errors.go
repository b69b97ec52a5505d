package awsid

import (
	"errors"
	"fmt"
)

// ErrNonAlphanumeric indicates that the unique part of a resource ID contains
// a character outside 0-9, a-z, and A-Z. It is always wrapped in a
// *ResourceIDError and can be matched with errors.Is().
var ErrNonAlphanumeric = errors.New("the unique part contains non ascii alphanumeric characters")

// PrefixError indicates that the input does not start with the prefix
// required by the target resource ID type.
type PrefixError struct {
	// Expected is the required prefix (e.g., "ami-" for AMIID).
	Expected string
}

// Error implements the error interface.
func (e *PrefixError) Error() string {
	return fmt.Sprintf("incorrect prefix, expected %q", e.Expected)
}

// LengthError indicates that the unique part of the input is neither 8 nor
// 17 characters long.
type LengthError struct {
	// Length is the actual length of the unique part.
	Length int
}

// Error implements the error interface.
func (e *LengthError) Error() string {
	return fmt.Sprintf("the unique part must be 8 or 17, not %d characters long", e.Length)
}

// ResourceIDError is the structured error returned when a string fails to
// parse as a resource ID. It wraps the specific failing rule with context
// about the target type and the offending input.
//
// ResourceIDError implements the error interface and supports error
// unwrapping, making it compatible with errors.Is() and errors.As():
//
//	_, err := awsid.ParseVolumeID("vol-123")
//	var lerr *awsid.LengthError
//	if errors.As(err, &lerr) {
//		fmt.Println(lerr.Length) // 3
//	}
type ResourceIDError struct {
	// Type is the name of the resource ID type being parsed (e.g., "AMIID").
	Type string

	// Input is the string that failed to parse, verbatim.
	Input string

	// Detail is the failing rule: a *PrefixError, a *LengthError, or
	// ErrNonAlphanumeric.
	Detail error
}

// Error implements the error interface, returning a diagnostic that names
// the target type, the input, and the failing rule.
func (e *ResourceIDError) Error() string {
	return fmt.Sprintf("failed to initialize %s from %q: %v", e.Type, e.Input, e.Detail)
}

// Unwrap returns the failing rule, allowing errors.Is() and errors.As() to
// work correctly with wrapped errors.
func (e *ResourceIDError) Unwrap() error {
	return e.Detail
}

// UnknownRegionError is returned when a string does not exactly match any of
// the known region codes.
type UnknownRegionError struct {
	// Input is the string that failed to parse, verbatim.
	Input string
}

// Error implements the error interface.
func (e *UnknownRegionError) Error() string {
	return fmt.Sprintf("Unknown region: %s", e.Input)
}
