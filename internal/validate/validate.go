// Package validate enforces the composition rules the grammar cannot express
// context-free: which modifier family may attach to which command family, and
// the operand arity of two-operand commands. A command that passes is
// considered validated for the rest of the pipeline; validity is never
// revisited downstream.
package validate

import (
	"fmt"

	"tuneshell/pkg/tunetypes"
)

// Error reports an otherwise well-formed command whose parts do not compose.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func errorf(format string, args ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// Validate checks the command's composition and returns it unchanged on
// success.
func Validate(cmd *tunetypes.Command) (*tunetypes.Command, error) {
	family := cmd.Family()

	if !cmd.State.Empty() && family != tunetypes.FamilyAction {
		return nil, errorf("state modifier %s is not legal on a %s command (%s)",
			firstStateModifier(cmd.State), family, cmd.Kind)
	}
	if !cmd.Query.Empty() && family != tunetypes.FamilyQuery {
		return nil, errorf("query modifier %s is not legal on an %s command (%s)",
			firstQueryModifier(cmd.Query), family, cmd.Kind)
	}

	// The grammar already guarantees both operands for add/remove; re-check
	// here so the transformer can stay simple.
	if cmd.Kind == tunetypes.KindAdd || cmd.Kind == tunetypes.KindRemove {
		if cmd.Primary.IsZero() || cmd.Secondary.IsZero() {
			return nil, errorf("%s requires both a track and a playlist operand", cmd.Kind)
		}
	}

	return cmd, nil
}

func firstStateModifier(s tunetypes.StateModifiers) string {
	switch {
	case s.Volume != nil:
		return "volume"
	case s.Mode != nil:
		return "mode"
	default:
		return "device"
	}
}

func firstQueryModifier(q tunetypes.QueryModifiers) string {
	if q.Limit != nil {
		return "limit"
	}
	return "offset"
}
