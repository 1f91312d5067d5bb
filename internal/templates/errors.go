package templates

import (
	"errors"
	"fmt"
)

// ErrUnknownTemplate is returned for ids missing from the registry.
var ErrUnknownTemplate = errors.New("unknown template")

// TemplateError represents an error parsing or executing a layout.
type TemplateError struct {
	Template string
	Message  string
	Cause    error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %s: %v", e.Template, e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s: %s", e.Template, e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a failure building the document around a layout.
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
