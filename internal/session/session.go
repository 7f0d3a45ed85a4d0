// Package session is the process-facing surface of tuneshell. A Session
// wraps the whole compiler pipeline behind Run, owns the collaborator
// lifecycle, and is the one place where stage failures are wrapped into the
// DSLError contract.
package session

import (
	"context"
	"errors"
	"sync"

	"tuneshell/internal/executor"
	"tuneshell/internal/logger"
	"tuneshell/internal/parser"
	"tuneshell/internal/resolve"
	"tuneshell/internal/transform"
	"tuneshell/internal/validate"
	"tuneshell/pkg/tunetypes"
)

// Session runs commands against one set of lazily-constructed collaborator
// handles. Commands issued sequentially execute in submission order; a mutex
// gives a single in-flight command at a time, so a concurrent Run call
// blocks until the previous one has issued its last collaborator call.
type Session struct {
	mu       sync.Mutex
	exec     *executor.Executor
	resolver *resolve.Resolver
}

// New creates a Session over the given collaborator factories. Credential
// handling belongs to whoever builds the factories; the session only needs
// constructors that hand back already-authenticated collaborators.
func New(factories executor.Factories) *Session {
	exec := executor.New(factories)
	return &Session{
		exec: exec,
		// The executor doubles as Searcher and DeviceLister so the
		// resolver shares the session's cached handles.
		resolver: resolve.New(exec, exec),
	}
}

// Run compiles and executes one input line. It returns either a Response or
// a *tunetypes.DSLError; no other error type reaches the caller and no
// failure is silently swallowed.
func (s *Session) Run(ctx context.Context, input string) (*tunetypes.Response, error) {
	logger.CommandRun(input)

	tree, err := parser.Parse(input)
	if err != nil {
		return nil, s.fail(tunetypes.ErrSyntax, input, err)
	}

	cmd, err := transform.Transform(tree)
	if err != nil {
		return nil, s.fail(tunetypes.ErrSyntax, input, err)
	}

	cmd, err = validate.Validate(cmd)
	if err != nil {
		return nil, s.fail(tunetypes.ErrComposition, input, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cmd, err = s.resolver.Resolve(ctx, cmd)
	if err != nil {
		var resErr *resolve.Error
		if errors.As(err, &resErr) {
			return nil, s.fail(tunetypes.ErrResolution, input, err)
		}
		// The lookup itself failed downstream (network, auth): an
		// execution failure, not a resolution miss.
		return nil, s.fail(tunetypes.ErrExecution, input, err)
	}

	resp, err := s.exec.Execute(ctx, cmd)
	if err != nil {
		return nil, s.fail(tunetypes.ErrExecution, input, err)
	}
	return resp, nil
}

// Close releases every collaborator the session constructed, in reverse
// order of creation. Closing an already-closed or never-used session is a
// no-op.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exec.Close()
}

func (s *Session) fail(kind tunetypes.ErrKind, input string, cause error) *tunetypes.DSLError {
	logger.Debug("Command failed", "kind", kind.String(), "input", input, "error", cause)
	return &tunetypes.DSLError{
		Kind:    kind,
		Message: cause.Error(),
		Input:   input,
		Cause:   cause,
	}
}
