// SPDX-FileCopyrightText: Copyright 2025 ThinkEloquent, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package resolve implements a runtime context and template resolution engine:
a small interpreter that rewrites configuration trees by substituting {{...}}
placeholders with values drawn from a context tree or computed by registered
functions.

# Placeholder Syntax

Two placeholder forms are supported, each with an optional inline default:

	{{path.to.value}}
	{{path.to.value | 'default'}}
	{{fn:function_name}}
	{{fn:function_name | 'default'}}

Whitespace around tokens is insignificant. Paths use dot notation with
bracket indices for sequence access ("items[0].name"). Default literals are
type-inferred: "true"/"false" become booleans, all-digit strings become
integers, numerics with a decimal point become floats, and everything else
stays a string.

Template paths may also be embedded in surrounding text, in which case each
match is substituted as a string:

	"Hello {{user.name}}!"  ->  "Hello ada!"

Compute placeholders must be the entire string; an embedded {{fn:...}} token
is left verbatim.

# Basic Usage

	registry := resolve.NewRegistry()
	registry.Register("build_id", resolve.NoArg(func() (any, error) {
	    return os.Getenv("BUILD_ID"), nil
	}), resolve.ScopeStartup)

	resolver := resolve.NewResolver(registry).
	    WithMaxDepth(10).
	    WithMissingStrategy(resolve.MissingError)

	ctx := resolve.NewContext().
	    WithEnv(env.Snapshot()).
	    WithConfig(rawConfig).
	    Build()

	value, err := resolver.Resolve("{{env.HOST | 'localhost'}}", ctx, resolve.ScopeRequest)
	tree, err := resolver.ResolveObject(rawConfig, ctx, resolve.ScopeStartup)

# Scopes and Caching

Every compute function is registered with a scope. STARTUP results are
computed once and cached for the registry's lifetime (until ClearCache or
Clear); REQUEST results are recomputed on every resolution. Resolving a
REQUEST-scoped function while the resolver runs at STARTUP scope is a
ScopeError; the reverse is always permitted and served from the cache.

# Security

Every path is checked by ValidatePath before lookup. Paths must start with a
letter, attribute-pollution segments (__proto__, constructor, ...) and
underscore-prefixed segments are rejected, and ".." never passes. Security
verdicts are independent of the missing-value strategy and always propagate.

# Error Handling

Failures wrap sentinel errors (ErrSecurity, ErrComputeNotFound,
ErrScopeViolation, ...) and carry structured detail:

	_, err := resolver.Resolve("{{obj.__proto__}}", ctx, resolve.ScopeRequest)
	var secErr *resolve.SecurityError
	if errors.As(err, &secErr) {
	    fmt.Println(secErr.Path, secErr.Segment)
	}

A misconfigured STARTUP resolution should fail the whole startup sequence;
REQUEST-scope failures should be caught by the host and turned into an error
response (see the httperr package).

# Concurrency

The engine has no internal goroutines; all operations are synchronous. A
Resolver may be shared across concurrent request handlers. Concurrent
first-time computation of the same STARTUP function is serialized per name
so the function executes at most once. Registration is expected to finish
before concurrent resolution begins.
*/
package resolve
