// SPDX-FileCopyrightText: Copyright 2025 ThinkEloquent, Inc.
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"errors"
	"fmt"
)

// Sentinel errors for resolution failures. Structured error types below wrap
// these so callers can classify failures with errors.Is while still getting
// detail via errors.As.
var (
	// ErrSecurity is returned when a path is rejected by the security validator.
	ErrSecurity = errors.New("path blocked by security policy")

	// ErrValidation is returned for malformed placeholder syntax or invalid
	// compute function names.
	ErrValidation = errors.New("invalid placeholder")

	// ErrComputeNotFound is returned when a compute expression references an
	// unregistered function.
	ErrComputeNotFound = errors.New("compute function not found")

	// ErrComputeFailed is returned when a registered compute function returns
	// an error or panics.
	ErrComputeFailed = errors.New("compute function execution failed")

	// ErrScopeViolation is returned when a REQUEST-scoped function is invoked
	// during STARTUP-scope resolution.
	ErrScopeViolation = errors.New("compute scope violation")

	// ErrRecursionLimit is returned when resolution exceeds the configured
	// maximum depth.
	ErrRecursionLimit = errors.New("recursion limit reached")

	// ErrMissingValue is returned under MissingError when a placeholder yields
	// no value and carries no inline default.
	ErrMissingValue = errors.New("missing value for placeholder")
)

// SecurityError reports a path rejected by the security validator. The
// offending segment is included when the violation is segment-specific.
type SecurityError struct {
	Path    string
	Segment string
	Reason  string
}

// Error implements the error interface for SecurityError.
func (e *SecurityError) Error() string {
	if e.Segment != "" {
		return fmt.Sprintf("security violation in path %q: segment %q %s", e.Path, e.Segment, e.Reason)
	}
	return fmt.Sprintf("security violation in path %q: %s", e.Path, e.Reason)
}

// Unwrap returns ErrSecurity so errors.Is(err, ErrSecurity) matches.
func (*SecurityError) Unwrap() error {
	return ErrSecurity
}

// ComputeError reports a compute function lookup or execution failure.
type ComputeError struct {
	Name     string
	original error
}

// Error implements the error interface for ComputeError.
func (e *ComputeError) Error() string {
	return fmt.Sprintf("compute function %q: %s", e.Name, e.original)
}

// Unwrap returns the underlying error, which wraps either ErrComputeNotFound
// or ErrComputeFailed.
func (e *ComputeError) Unwrap() error {
	return e.original
}

// newComputeNotFound creates a ComputeError for an unregistered function name.
func newComputeNotFound(name string) error {
	return &ComputeError{Name: name, original: ErrComputeNotFound}
}

// newComputeFailed creates a ComputeError wrapping a function's own failure.
// Only the message of the cause is carried; the cause's concrete type does
// not leak past this boundary.
func newComputeFailed(name string, cause error) error {
	return &ComputeError{Name: name, original: fmt.Errorf("%w: %v", ErrComputeFailed, cause)}
}

// ScopeError reports a REQUEST-scoped function invoked at STARTUP scope.
type ScopeError struct {
	Name      string
	FnScope   Scope
	CallScope Scope
}

// Error implements the error interface for ScopeError.
func (e *ScopeError) Error() string {
	return fmt.Sprintf("cannot call %s scope function %q from %s scope", e.FnScope, e.Name, e.CallScope)
}

// Unwrap returns ErrScopeViolation.
func (*ScopeError) Unwrap() error {
	return ErrScopeViolation
}

// RecursionError reports that resolution exceeded the configured depth limit.
type RecursionError struct {
	MaxDepth int
}

// Error implements the error interface for RecursionError.
func (e *RecursionError) Error() string {
	return fmt.Sprintf("recursion limit reached (%d)", e.MaxDepth)
}

// Unwrap returns ErrRecursionLimit.
func (*RecursionError) Unwrap() error {
	return ErrRecursionLimit
}

// MissingValueError reports a placeholder that resolved to nothing under the
// MissingError strategy.
type MissingValueError struct {
	Key string
}

// Error implements the error interface for MissingValueError.
func (e *MissingValueError) Error() string {
	return fmt.Sprintf("missing value for placeholder %q", e.Key)
}

// Unwrap returns ErrMissingValue.
func (*MissingValueError) Unwrap() error {
	return ErrMissingValue
}
