// SPDX-FileCopyrightText: Copyright 2025 ThinkEloquent, Inc.
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/thinkeloquent/runtime-template-resolver/logger"
)

// Resolver rewrites configuration values by substituting {{...}} placeholders
// with values drawn from a Context or computed by registered functions.
// It is safe for concurrent use from multiple goroutines; the only shared
// mutable state is the Registry's STARTUP cache, which synchronizes itself.
type Resolver struct {
	registry *Registry
	maxDepth int
	missing  MissingStrategy
}

// NewResolver creates a resolver backed by the given registry. A nil
// registry gets a fresh empty one. The resolver defaults to DefaultMaxDepth
// and the MissingError strategy.
func NewResolver(registry *Registry) *Resolver {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Resolver{
		registry: registry,
		maxDepth: DefaultMaxDepth,
		missing:  MissingError,
	}
}

// WithMaxDepth sets the recursion limit for Resolve and ResolveObject.
func (r *Resolver) WithMaxDepth(depth int) *Resolver {
	r.maxDepth = depth
	return r
}

// WithMissingStrategy sets the fallback behavior for placeholders that
// yield no value and carry no inline default.
func (r *Resolver) WithMissingStrategy(strategy MissingStrategy) *Resolver {
	r.missing = strategy
	return r
}

// Registry returns the compute function registry backing this resolver.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// Resolve resolves a single expression. Non-string inputs pass through
// unchanged, preserving their type. A whole-string {{path}} or {{fn:name}}
// placeholder resolves to a typed value; template paths embedded in
// surrounding text are substituted as strings.
func (r *Resolver) Resolve(expr any, ctx Context, scope Scope) (any, error) {
	return r.resolve(expr, ctx, scope, 0)
}

// ResolveObject recursively resolves every string leaf of a nested tree of
// maps, slices, and scalars, returning a new tree. Non-string scalars are
// preserved exactly; the depth counter increments at every nesting level.
func (r *Resolver) ResolveObject(tree any, ctx Context, scope Scope) (any, error) {
	return r.resolveObject(tree, ctx, scope, 0)
}

// ResolveMany resolves each expression independently against the same
// context, returning a same-length, same-order result slice. The first
// resolution error stops the batch.
func (r *Resolver) ResolveMany(expressions []any, ctx Context, scope Scope) ([]any, error) {
	results := make([]any, len(expressions))
	for i, expr := range expressions {
		value, err := r.Resolve(expr, ctx, scope)
		if err != nil {
			return nil, err
		}
		results[i] = value
	}
	return results, nil
}

func (r *Resolver) resolve(expr any, ctx Context, scope Scope, depth int) (any, error) {
	s, ok := expr.(string)
	if !ok {
		return expr, nil
	}
	if depth > r.maxDepth {
		return nil, &RecursionError{MaxDepth: r.maxDepth}
	}

	parsed := parseExpression(s)
	switch parsed.kind {
	case exprCompute:
		return r.resolveCompute(parsed, ctx, scope)
	case exprTemplate:
		return r.resolveTemplate(parsed, ctx)
	default:
		if strings.Contains(s, "{{") {
			return r.interpolate(s, ctx)
		}
		return s, nil
	}
}

func (r *Resolver) resolveObject(tree any, ctx Context, scope Scope, depth int) (any, error) {
	if depth > r.maxDepth {
		return nil, &RecursionError{MaxDepth: r.maxDepth}
	}

	switch t := tree.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for key, value := range t {
			resolved, err := r.resolveObject(value, ctx, scope, depth+1)
			if err != nil {
				return nil, err
			}
			out[key] = resolved
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, value := range t {
			resolved, err := r.resolveObject(value, ctx, scope, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = resolved
		}
		return out, nil
	case string:
		return r.resolve(t, ctx, scope, depth)
	default:
		return tree, nil
	}
}

// resolveCompute handles a whole-string {{fn:name}} placeholder. Scope
// violations always propagate; an unknown function or an execution failure
// falls back to the inline default when one is present.
func (r *Resolver) resolveCompute(parsed expression, ctx Context, scope Scope) (any, error) {
	name := parsed.key

	fnScope, registered := r.registry.ScopeOf(name)
	if !registered {
		if parsed.def != nil {
			return CoerceDefault(*parsed.def), nil
		}
		switch r.missing {
		case MissingKeep:
			return parsed.token, nil
		case MissingEmpty:
			return nil, nil
		default:
			return nil, newComputeNotFound(name)
		}
	}

	if fnScope == ScopeRequest && scope == ScopeStartup {
		return nil, &ScopeError{Name: name, FnScope: fnScope, CallScope: scope}
	}

	value, err := r.registry.Resolve(name, ctx)
	if err != nil {
		if parsed.def != nil {
			logger.Warnw("compute function failed, using default",
				"name", name, "default", *parsed.def, "error", err.Error())
			return CoerceDefault(*parsed.def), nil
		}
		return nil, err
	}
	return value, nil
}

// resolveTemplate handles a whole-string {{path}} placeholder. The security
// validator runs first and its verdict is independent of the missing-value
// strategy.
func (r *Resolver) resolveTemplate(parsed expression, ctx Context) (any, error) {
	if err := ValidatePath(parsed.key); err != nil {
		return nil, err
	}

	value, found := Lookup(map[string]any(ctx), parsed.key)
	if found {
		return value, nil
	}
	if parsed.def != nil {
		return CoerceDefault(*parsed.def), nil
	}
	switch r.missing {
	case MissingKeep:
		return parsed.token, nil
	case MissingEmpty:
		return nil, nil
	default:
		return nil, &MissingValueError{Key: parsed.key}
	}
}

// interpolate substitutes template-path tokens embedded in surrounding
// literal text, stringifying each resolved value. Compute tokens are never
// embedded and stay verbatim, as do tokens whose inner text is not
// path-shaped.
func (r *Resolver) interpolate(s string, ctx Context) (any, error) {
	var firstErr error
	out := embeddedPattern.ReplaceAllStringFunc(s, func(token string) string {
		if firstErr != nil {
			return token
		}
		inner := strings.TrimSpace(token[2 : len(token)-2])
		if strings.HasPrefix(inner, "fn:") {
			return token
		}
		key, def := splitDefault(inner)
		if !relaxedPathPattern.MatchString(key) {
			return token
		}
		if err := ValidatePath(key); err != nil {
			firstErr = err
			return token
		}
		value, found := Lookup(map[string]any(ctx), key)
		if !found {
			if def != nil {
				return *def
			}
			switch r.missing {
			case MissingKeep:
				return token
			case MissingEmpty:
				return ""
			default:
				firstErr = &MissingValueError{Key: key}
				return token
			}
		}
		return stringify(value)
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// stringify renders a resolved value for embedded substitution. Maps and
// slices render as JSON; nil renders as the empty string.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case map[string]any, []any:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	default:
		return fmt.Sprintf("%v", v)
	}
}
