package synthesis

import "fmt"

// serviceError is an internal failure of the generative attempt. It never
// crosses the component boundary; it only drives the fallback transition.
type serviceError struct {
	Message string
	Cause   error
}

func (e *serviceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generative service: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("generative service: %s", e.Message)
}

func (e *serviceError) Unwrap() error {
	return e.Cause
}
