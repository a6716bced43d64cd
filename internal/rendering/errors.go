// Package rendering turns tailored content into a deliverable document.
package rendering

import "fmt"

// RenderError represents a failure of both the compiled and plain-text
// rendering paths. Under a correct implementation it is unreachable.
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// SecurityError indicates the compiled output resolved outside the scoped
// work directory. It is fatal: no fallback is attempted, because silently
// substituting output would mask a traversal attempt.
type SecurityError struct {
	AttemptedPath string
}

func (e *SecurityError) Error() string {
	// The attempted path is kept on the struct for logging but never
	// echoed into user-facing messages.
	return "security error: compiled output escaped the scoped output directory"
}

// TemplateError represents an error executing the document template.
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}
