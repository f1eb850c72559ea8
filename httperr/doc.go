// SPDX-FileCopyrightText: Copyright 2025 ThinkEloquent, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package httperr maps resolver errors to HTTP status codes so a host web
framework can turn REQUEST-scope resolution failures into error responses.

# Basic Usage

In a request handler that resolves per-request configuration:

	resolved, err := resolver.ResolveObject(tree, ctx, resolve.ScopeRequest)
	if err != nil {
	    http.Error(w, err.Error(), httperr.Status(err))
	    return
	}

Or attach the code once and extract it in centralized middleware:

	return httperr.Wrap(err)   // deep in the stack

	code := httperr.Code(err)  // in the outermost handler

# Mapping

	SecurityError            -> 403 Forbidden
	ValidationError          -> 400 Bad Request
	MissingValueError        -> 422 Unprocessable Entity
	ComputeError (not found) -> 422 Unprocessable Entity
	everything else          -> 500 Internal Server Error
*/
package httperr
