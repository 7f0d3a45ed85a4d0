package tunetypes

import "fmt"

// ErrKind classifies a DSLError by the pipeline stage that produced it.
type ErrKind int

const (
	// ErrSyntax means the grammar rejected the input.
	ErrSyntax ErrKind = iota
	// ErrComposition means the validator rejected a well-formed command.
	ErrComposition
	// ErrResolution means free text could not be mapped to a canonical URI.
	ErrResolution
	// ErrExecution means a remote collaborator call failed.
	ErrExecution
)

var errKindNames = [...]string{
	ErrSyntax:      "syntax",
	ErrComposition: "composition",
	ErrResolution:  "resolution",
	ErrExecution:   "execution",
}

// String returns the lowercase error kind name.
func (k ErrKind) String() string {
	if int(k) < len(errKindNames) && int(k) >= 0 {
		return errKindNames[k]
	}
	return fmt.Sprintf("ErrKind(%d)", int(k))
}

// DSLError is the single error type surfaced to callers of Session.Run.
// It carries the stage kind, a human-readable message, the verbatim input
// line for diagnosis, and the wrapped cause. Collaborator error types are
// never exposed directly.
type DSLError struct {
	Kind    ErrKind
	Message string
	Input   string
	Cause   error
}

// Error formats the error with its kind and the offending input.
func (e *DSLError) Error() string {
	return fmt.Sprintf("%s error: %s (input: %q)", e.Kind, e.Message, e.Input)
}

// Unwrap exposes the cause chain for errors.Is / errors.As.
func (e *DSLError) Unwrap() error { return e.Cause }
