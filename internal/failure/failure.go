// Package failure defines the fatal error kinds of the translation pipeline.
package failure

import (
	"errors"
	"fmt"
)

// Kind identifies which fatal condition stopped the pipeline.
type Kind int

const (
	// ToolUnavailable means a required executable is not on the search path.
	ToolUnavailable Kind = iota + 1
	// CommandExecution means a child process failed to launch or exited non-zero.
	CommandExecution
	// EmptyTranslationResult means the engine ran but printed nothing.
	EmptyTranslationResult
)

func (k Kind) String() string {
	switch k {
	case ToolUnavailable:
		return "tool-unavailable"
	case CommandExecution:
		return "command-execution"
	case EmptyTranslationResult:
		return "empty-translation-result"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is a fatal pipeline error. Message is what the user sees in the
// critical notification.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewToolUnavailable reports that tool is missing and should be installed from pkg.
func NewToolUnavailable(tool, pkg string) *Error {
	return &Error{
		Kind:    ToolUnavailable,
		Message: fmt.Sprintf("Fallback tool '%s' not found. Please install '%s'.", tool, pkg),
	}
}

// NewCommandExecution wraps a process failure.
func NewCommandExecution(err error) *Error {
	return &Error{Kind: CommandExecution, Message: err.Error(), Err: err}
}

// NewEmptyTranslationResult reports that engine produced no output.
func NewEmptyTranslationResult(engine string) *Error {
	return &Error{
		Kind:    EmptyTranslationResult,
		Message: fmt.Sprintf("'%s' returned an empty result.", engine),
	}
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return 0
}
