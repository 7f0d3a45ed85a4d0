package tunetypes

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSLError_Format(t *testing.T) {
	err := &DSLError{
		Kind:    ErrSyntax,
		Message: "unexpected input",
		Input:   `play "jazz" extra`,
	}
	assert.Equal(t, `syntax error: unexpected input (input: "play \"jazz\" extra")`, err.Error())
}

func TestDSLError_UnwrapsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := &DSLError{Kind: ErrExecution, Message: cause.Error(), Input: "pause", Cause: cause}

	assert.ErrorIs(t, err, cause)

	var dslErr *DSLError
	require.ErrorAs(t, error(err), &dslErr)
	assert.Equal(t, ErrExecution, dslErr.Kind)
}

func TestErrKind_String(t *testing.T) {
	assert.Equal(t, "syntax", ErrSyntax.String())
	assert.Equal(t, "composition", ErrComposition.String())
	assert.Equal(t, "resolution", ErrResolution.String())
	assert.Equal(t, "execution", ErrExecution.String())
}
