package rvm

// Error types for failures talking to RVM. A failure to interrogate RVM is
// always distinct from a negative answer: predicates never fold "could not
// check" into false.

import (
	"fmt"
	"strings"
)

// UnavailableError indicates the rvm binary could not be found.
type UnavailableError struct {
	Reason string
	Fix    string
}

func (e *UnavailableError) Error() string {
	msg := "rvm unavailable: " + e.Reason
	if e.Fix != "" {
		msg += "\n\n  " + e.Fix
	}
	return msg
}

// CommandError reports an rvm invocation that started but failed.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("rvm %s: %v", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += "\n" + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NoDefaultError indicates a default-relative ruby string could not be
// normalized because no default ruby is configured.
type NoDefaultError struct {
	Input string
}

func (e *NoDefaultError) Error() string {
	return fmt.Sprintf("cannot normalize %q: no default ruby is set\n\n  Set one with: rvm use <ruby> --default", e.Input)
}
