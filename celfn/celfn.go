// SPDX-FileCopyrightText: Copyright 2025 ThinkEloquent, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package celfn adapts CEL expressions into resolver compute functions.
package celfn

import (
	"fmt"

	celgo "github.com/google/cel-go/cel"

	"github.com/thinkeloquent/runtime-template-resolver/resolve"
)

const (
	// ContextVariable is the CEL variable name the resolution context is
	// bound to during evaluation.
	ContextVariable = "context"

	// DefaultMaxExpressionLength is the maximum allowed length for a CEL
	// expression. This limit prevents DoS via excessively long expressions.
	DefaultMaxExpressionLength = 10000

	// DefaultCostLimit is the runtime cost limit for CEL program evaluation.
	DefaultCostLimit = 1000000
)

// New compiles a CEL expression into a resolve.Func. The expression sees the
// resolution context as a map variable named "context":
//
//	fn, err := celfn.New(`context["env"]["HOST"] + ":" + string(context["config"]["port"])`)
//	registry.Register("listen_addr", fn, resolve.ScopeStartup)
//
// Compilation happens once, here; the returned function only evaluates the
// pre-compiled program, so it is cheap to call per request and safe for
// concurrent use.
func New(expr string, options ...celgo.EnvOption) (resolve.Func, error) {
	if len(expr) > DefaultMaxExpressionLength {
		return nil, fmt.Errorf("expression length %d exceeds maximum of %d", len(expr), DefaultMaxExpressionLength)
	}

	envOptions := append([]celgo.EnvOption{
		celgo.Variable(ContextVariable, celgo.MapType(celgo.StringType, celgo.DynType)),
	}, options...)
	env, err := celgo.NewEnv(envOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("failed to compile CEL expression %q: %w", expr, issues.Err())
	}

	program, err := env.Program(ast, celgo.CostLimit(DefaultCostLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL program for %q: %w", expr, err)
	}

	return func(ctx resolve.Context) (any, error) {
		out, _, err := program.Eval(map[string]any{ContextVariable: map[string]any(ctx)})
		if err != nil {
			return nil, fmt.Errorf("CEL evaluation of %q failed: %w", expr, err)
		}
		return out.Value(), nil
	}, nil
}

// Register compiles a CEL expression and registers it as a compute function
// in one step.
func Register(registry *resolve.Registry, name, expr string, scope resolve.Scope) error {
	fn, err := New(expr)
	if err != nil {
		return err
	}
	return registry.Register(name, fn, scope)
}
