package errors

import (
	"fmt"
)

// ParseError represents a document or configuration decoding failure.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures document or configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RendererError indicates issues within renderer registration or rendering.
type RendererError struct {
	Kind    string
	Message string
	Err     error
}

// NewRendererError constructs a RendererError for the given section kind.
func NewRendererError(kind string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &RendererError{Kind: kind, Message: message, Err: err}
}

func (e *RendererError) Error() string {
	if e == nil {
		return ""
	}
	if e.Kind != "" {
		return fmt.Sprintf("renderer error [%s]: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("renderer error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *RendererError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// AssembleError represents a failure while assembling a document into an
// output representation.
type AssembleError struct {
	Target string
	Err    error
}

// NewAssembleError constructs an AssembleError for the given output target.
func NewAssembleError(target string, err error) error {
	return &AssembleError{Target: target, Err: err}
}

func (e *AssembleError) Error() string {
	if e == nil {
		return ""
	}
	if e.Target != "" {
		return fmt.Sprintf("assemble error for %s: %v", e.Target, e.Err)
	}
	return fmt.Sprintf("assemble error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *AssembleError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ExportError represents a failure while materialising the export tree.
// Export failures are retryable; the in-memory document is never touched.
type ExportError struct {
	Path string
	Err  error
}

// NewExportError constructs an ExportError.
func NewExportError(path string, err error) error {
	return &ExportError{Path: path, Err: err}
}

func (e *ExportError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("export error: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("export error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ExportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PublishError represents a failure while publishing an export tree to a
// hosting target.
type PublishError struct {
	Target  string
	Message string
	Err     error
}

// NewPublishError constructs a PublishError. An empty message falls
// back to the underlying error's text.
func NewPublishError(target, message string, err error) error {
	if message == "" && err != nil {
		message = err.Error()
	}
	return &PublishError{Target: target, Message: message, Err: err}
}

func (e *PublishError) Error() string {
	if e == nil {
		return ""
	}
	if e.Target != "" {
		return fmt.Sprintf("publish error [%s]: %s", e.Target, e.Message)
	}
	return fmt.Sprintf("publish error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *PublishError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
