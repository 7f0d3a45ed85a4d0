package parser

import (
	"fmt"
	"strings"
)

// ParseError represents an error that occurred while parsing one input line.
type ParseError struct {
	Column  int    // 1-based column where the error occurred, 0 if unknown
	Message string // the error message
	Context string // the input line, for the visual pointer
}

// Error formats the parse error with a visual arrow pointing at the
// offending column.
func (e *ParseError) Error() string {
	if e.Context == "" || e.Column <= 0 {
		return e.Message
	}
	pointer := strings.Repeat(" ", e.Column-1) + "^"
	return fmt.Sprintf("%s (column %d)\n%s\n%s", e.Message, e.Column, e.Context, pointer)
}

// newParseError creates a ParseError at the given token position.
func newParseError(input string, pos Position, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Column:  pos.Column,
		Context: input,
		Message: fmt.Sprintf(format, args...),
	}
}
