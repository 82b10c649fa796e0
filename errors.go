package cmdtree

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownToken matches any [UnknownTokenError] with [errors.Is].
	ErrUnknownToken = errors.New("unknown command or option")
	// ErrIncompletePath matches any [IncompletePathError] with [errors.Is].
	ErrIncompletePath = errors.New("no executable command provided")
	// ErrBadOption matches option validation failures raised at dispatch.
	ErrBadOption = errors.New("invalid option")
)

// UnknownTokenError reports a path token that names no child of the group
// reached so far.
type UnknownTokenError struct {
	Token string
	Path  []string
}

func (e *UnknownTokenError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("unknown command or option %q", e.Token)
	}
	return fmt.Sprintf("unknown command or option %q after %q", e.Token, strings.Join(e.Path, " "))
}

func (e *UnknownTokenError) Unwrap() error {
	return ErrUnknownToken
}

// IncompletePathError reports a token sequence that ran out while still
// positioned at a group, with no command reached.
type IncompletePathError struct {
	Path []string
}

func (e *IncompletePathError) Error() string {
	if len(e.Path) == 0 {
		return "no executable command provided"
	}
	return fmt.Sprintf("no executable command provided under %q", strings.Join(e.Path, " "))
}

func (e *IncompletePathError) Unwrap() error {
	return ErrIncompletePath
}

// UnexpectedOptionError reports an option supplied to a command that does not
// declare it. Option holds the normalized key.
type UnexpectedOptionError struct {
	Option  string
	Command string
}

func (e *UnexpectedOptionError) Error() string {
	return fmt.Sprintf("unexpected option %q for command %q", e.Option, e.Command)
}

func (e *UnexpectedOptionError) Unwrap() error {
	return ErrBadOption
}

// MissingOptionError reports a required option absent from the invocation.
type MissingOptionError struct {
	Option  string
	Command string
}

func (e *MissingOptionError) Error() string {
	return fmt.Sprintf("missing required option %q for command %q", e.Option, e.Command)
}

func (e *MissingOptionError) Unwrap() error {
	return ErrBadOption
}
