package catalog

import "fmt"

// UnknownRoleError indicates a predefined-role lookup with an unrecognized
// key. Lookups never fall back to empty requirements.
type UnknownRoleError struct {
	Key string
}

func (e *UnknownRoleError) Error() string {
	return fmt.Sprintf("unknown role: %q", e.Key)
}

// EmptyDescriptionError indicates the free-text job path was given blank or
// whitespace-only input.
type EmptyDescriptionError struct{}

func (e *EmptyDescriptionError) Error() string {
	return "job description is empty"
}

// AssetError represents a failure loading or validating the embedded role
// catalog asset.
type AssetError struct {
	Message string
	Cause   error
}

func (e *AssetError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("role catalog asset: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("role catalog asset: %s", e.Message)
}

func (e *AssetError) Unwrap() error {
	return e.Cause
}
