// SPDX-FileCopyrightText: Copyright 2025 ThinkEloquent, Inc.
// SPDX-License-Identifier: Apache-2.0

package resolve

const (
	// DefaultMaxDepth is the default recursion limit for Resolve and
	// ResolveObject. It bounds both nested object traversal and guards
	// against self-referential configuration trees.
	DefaultMaxDepth = 10
)

// Scope determines when a compute function's result is recomputed.
type Scope int

const (
	// ScopeStartup marks a function whose result is computed once and cached
	// for the lifetime of the Registry (until ClearCache or Clear).
	ScopeStartup Scope = iota

	// ScopeRequest marks a function that is recomputed on every resolution.
	ScopeRequest
)

// String returns the scope name used in logs and error messages.
func (s Scope) String() string {
	switch s {
	case ScopeStartup:
		return "STARTUP"
	case ScopeRequest:
		return "REQUEST"
	default:
		return "UNKNOWN"
	}
}

// MissingStrategy controls what happens when a placeholder yields no value
// and no inline default is given. An inline default always wins over the
// configured strategy.
type MissingStrategy int

const (
	// MissingError raises a MissingValueError (or a not-found ComputeError
	// for compute expressions). This is the default: a misconfigured STARTUP
	// resolution should fail the whole startup sequence.
	MissingError MissingStrategy = iota

	// MissingKeep returns the original placeholder token unchanged.
	MissingKeep

	// MissingEmpty returns nil for whole-string placeholders and the empty
	// string for placeholders embedded in surrounding text.
	MissingEmpty
)

// String returns the strategy name used in logs and error messages.
func (m MissingStrategy) String() string {
	switch m {
	case MissingError:
		return "ERROR"
	case MissingKeep:
		return "KEEP"
	case MissingEmpty:
		return "EMPTY"
	default:
		return "UNKNOWN"
	}
}
