// SPDX-FileCopyrightText: Copyright 2025 ThinkEloquent, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package httperr maps resolver errors to HTTP status codes for API error
// handling in host applications.
package httperr

import (
	"errors"
	"net/http"

	"github.com/thinkeloquent/runtime-template-resolver/resolve"
)

// CodedError wraps an error with an HTTP status code, letting errors carry
// their intended response code through the call stack for centralized
// handling in API handlers.
type CodedError struct {
	err  error
	code int
}

// Error implements the error interface.
func (e *CodedError) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying error for errors.Is() and errors.As() compatibility.
func (e *CodedError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code associated with this error.
func (e *CodedError) HTTPCode() int {
	return e.code
}

// WithCode wraps an error with an HTTP status code. If err is nil, WithCode
// returns nil.
func WithCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &CodedError{err: err, code: code}
}

// Code extracts the HTTP status code from an error chain. If no CodedError
// is found, the code is derived from the resolver error kind via Status.
func Code(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.code
	}

	return Status(err)
}

// Status derives an HTTP status code from a resolver error kind. A
// REQUEST-scope resolution failure should become an error response, not a
// process crash; this is the mapping hosts use to build that response.
//
// Security violations are forbidden, malformed placeholders are bad
// requests, and missing values are unprocessable. Everything else, including
// scope violations (host misconfiguration), is an internal error.
func Status(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, resolve.ErrSecurity):
		return http.StatusForbidden
	case errors.Is(err, resolve.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, resolve.ErrMissingValue):
		return http.StatusUnprocessableEntity
	case errors.Is(err, resolve.ErrComputeNotFound):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Wrap attaches the derived status code to a resolver error so it can travel
// through host middleware as a CodedError.
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	return WithCode(err, Status(err))
}
