package model

import (
	"fmt"

	"github.com/google/uuid"
)

// LineItemNotFoundError reports a mutation addressed at an unknown line-item
// ID. Callers that uphold the editing contract never see it.
type LineItemNotFoundError struct {
	ID uuid.UUID
}

func (e *LineItemNotFoundError) Error() string {
	return fmt.Sprintf("line item %s not found", e.ID)
}

// NewLineItemNotFoundError creates a new line-item lookup error
func NewLineItemNotFoundError(id uuid.UUID) *LineItemNotFoundError {
	return &LineItemNotFoundError{ID: id}
}

// IngestionError reports a failed logo ingestion (unreadable or corrupt
// image). Export must fail on it rather than emit a logo-less document.
type IngestionError struct {
	Source  string
	Message string
	Cause   error
}

func (e *IngestionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ingest %s: %s (%v)", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("ingest %s: %s", e.Source, e.Message)
}

func (e *IngestionError) Unwrap() error {
	return e.Cause
}

// NewIngestionError creates a new ingestion error
func NewIngestionError(source, message string, cause error) *IngestionError {
	return &IngestionError{
		Source:  source,
		Message: message,
		Cause:   cause,
	}
}

// RenderError reports a failure in the rendering backend or in validation
// of the rendered artifact.
type RenderError struct {
	Stage   string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render [%s]: %s (%v)", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("render [%s]: %s", e.Stage, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// NewRenderError creates a new render error
func NewRenderError(stage, message string, cause error) *RenderError {
	return &RenderError{
		Stage:   stage,
		Message: message,
		Cause:   cause,
	}
}
