package matching

import "fmt"

// InvalidInputError indicates a structurally incomplete ResumeSignal or
// JobRequirements was handed to the match engine. No partial result is
// produced alongside it.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}
