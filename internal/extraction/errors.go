package extraction

import "fmt"

// ValidationError reports malformed input text. It is the only error the
// extractor surfaces; extraction itself never fails on normal text.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", e.Field, e.Reason)
}
