package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph operations. Use errors.Is to classify failures.
var (
	// ErrNotFound indicates a referenced node or edge key does not exist.
	ErrNotFound = errors.New("graph: not found")

	// ErrUsage indicates an operation structurally inconsistent with the
	// store's configuration: wrong edge-type method for the graph's type,
	// disallowed self-loop or parallel edge, ambiguous pair lookup on a
	// multigraph, or duplicate key on creation.
	ErrUsage = errors.New("graph: usage error")

	// ErrInvalidArgument indicates malformed input where coercion cannot
	// apply, such as a nil attribute mapping where a mapping is required.
	ErrInvalidArgument = errors.New("graph: invalid argument")
)

// Error is a structured graph error. It records the offending method, the
// entity involved, and, for usage errors, a hint naming the correct
// alternative method.
type Error struct {
	Op     string // method that failed, e.g. "AddDirectedEdge"
	Entity string // "node", "edge", "attribute", "graph"
	Key    string // entity key, when applicable
	Hint   string // suggested alternative, when one exists
	Reason string // short description of the failure
	Cause  error  // sentinel this error wraps
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Op
	if e.Entity != "" {
		msg += " " + e.Entity
	}
	if e.Key != "" {
		msg += fmt.Sprintf(" %q", e.Key)
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Hint != "" {
		msg += " (use " + e.Hint + ")"
	}
	return msg
}

// Unwrap returns the sentinel cause for error chain support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error's sentinel cause.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Cause, target)
}

func notFoundError(op, entity, key string) error {
	return &Error{Op: op, Entity: entity, Key: key, Reason: entity + " does not exist", Cause: ErrNotFound}
}

func usageError(op, entity, key, reason, hint string) error {
	return &Error{Op: op, Entity: entity, Key: key, Reason: reason, Hint: hint, Cause: ErrUsage}
}

func invalidArgumentError(op, reason string) error {
	return &Error{Op: op, Entity: "argument", Reason: reason, Cause: ErrInvalidArgument}
}
