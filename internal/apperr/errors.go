// Package apperr defines the failure kinds the pipeline distinguishes.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure.
type Kind string

// Failure kinds, one per collaborator boundary plus rejected actions.
const (
	KindFetch            Kind = "fetch"
	KindSummarize        Kind = "summarize"
	KindMalformedSummary Kind = "malformed_summary"
	KindSynthesis        Kind = "synthesis"
	KindExportIO         Kind = "export_io"
	KindInvalidAction    Kind = "invalid_action"
)

// Error carries the failure kind, the operation that failed and the cause.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return e.Op
}

// Unwrap returns the cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// New wraps err with kind and the failing operation.
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Fetch reports an article that could not be loaded.
func Fetch(op string, err error) *Error { return New(KindFetch, op, err) }

// Summarize reports a failed language model call.
func Summarize(op string, err error) *Error { return New(KindSummarize, op, err) }

// MalformedSummary reports model output that cannot be split into title and body.
func MalformedSummary(op string, err error) *Error { return New(KindMalformedSummary, op, err) }

// Synthesis reports failed speech synthesis or audio storage.
func Synthesis(op string, err error) *Error { return New(KindSynthesis, op, err) }

// ExportIO reports an export file that could not be written.
func ExportIO(op string, err error) *Error { return New(KindExportIO, op, err) }

// InvalidAction reports an action rejected in the current session state.
func InvalidAction(op string, err error) *Error { return New(KindInvalidAction, op, err) }

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
