// SPDX-FileCopyrightText: Copyright 2025 ThinkEloquent, Inc.
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"fmt"
	"regexp"
	"sort"
	"sync"

	"github.com/thinkeloquent/runtime-template-resolver/logger"
)

// Func is a compute function invoked for {{fn:name}} placeholders. It
// receives the resolution context and returns any JSON-compatible value.
// Functions that do not need the context should be wrapped with NoArg at
// registration time.
type Func func(ctx Context) (any, error)

// NoArg adapts a zero-argument function into a Func. The arity is fixed
// here, at registration, rather than probed at call time.
func NoArg(fn func() (any, error)) Func {
	return func(Context) (any, error) {
		return fn()
	}
}

// validNamePattern constrains compute function names.
var validNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// registeredFunc is one registry entry. For STARTUP entries, mu serializes
// the check-cache-else-compute-and-store sequence so concurrent first
// callers execute fn at most once.
type registeredFunc struct {
	fn    Func
	scope Scope

	mu     sync.Mutex
	cached bool
	value  any
}

// Registry is a name-to-function table with per-entry scope tags and a
// memoization cache for STARTUP entries. It is safe for concurrent
// resolution; registration is expected to happen during an initialization
// phase before concurrent resolution begins.
type Registry struct {
	mu        sync.RWMutex
	functions map[string]*registeredFunc
}

// NewRegistry creates an empty compute function registry.
func NewRegistry() *Registry {
	return &Registry{functions: make(map[string]*registeredFunc)}
}

// Register adds a compute function under the given name and scope.
// Names must match ^[A-Za-z_][A-Za-z0-9_]*$ and be unique within the
// registry; registering a duplicate name is an error, not an overwrite.
func (r *Registry) Register(name string, fn Func, scope Scope) error {
	if !validNamePattern.MatchString(name) {
		return fmt.Errorf("%w: invalid function name %q", ErrValidation, name)
	}
	if fn == nil {
		return fmt.Errorf("%w: function %q is nil", ErrValidation, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.functions[name]; exists {
		return fmt.Errorf("%w: function %q already registered", ErrValidation, name)
	}
	r.functions[name] = &registeredFunc{fn: fn, scope: scope}
	logger.Debugw("compute function registered", "name", name, "scope", scope.String())
	return nil
}

// Unregister removes a function by name. It reports whether the function
// was registered.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.functions[name]; !exists {
		return false
	}
	delete(r.functions, name)
	logger.Debugw("compute function unregistered", "name", name)
	return true
}

// Has reports whether a function is registered under the given name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.functions[name]
	return ok
}

// List returns the registered function names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ScopeOf returns the scope of a registered function. The boolean is false
// when the name is not registered.
func (r *Registry) ScopeOf(name string) (Scope, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.functions[name]
	if !ok {
		return ScopeStartup, false
	}
	return entry.scope, true
}

// Clear removes all registered functions and drops all cached results.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.functions = make(map[string]*registeredFunc)
}

// ClearCache drops cached STARTUP results while keeping functions
// registered. The next resolution of each STARTUP function recomputes it.
func (r *Registry) ClearCache() {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, entry := range r.functions {
		entry.mu.Lock()
		entry.cached = false
		entry.value = nil
		entry.mu.Unlock()
	}
}

// Resolve executes the named compute function against the context. STARTUP
// results are memoized: a cached value is returned without invoking the
// function, and errors are never cached so a failed computation is retried
// on the next call.
func (r *Registry) Resolve(name string, ctx Context) (any, error) {
	r.mu.RLock()
	entry, ok := r.functions[name]
	r.mu.RUnlock()
	if !ok {
		return nil, newComputeNotFound(name)
	}

	if entry.scope != ScopeStartup {
		return invoke(name, entry.fn, ctx)
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if entry.cached {
		return entry.value, nil
	}
	value, err := invoke(name, entry.fn, ctx)
	if err != nil {
		return nil, err
	}
	entry.cached = true
	entry.value = value
	return value, nil
}

// invoke runs a compute function, converting both returned errors and
// panics into ComputeError so a function's internals never leak past the
// registry boundary as raw failures.
func invoke(name string, fn Func, ctx Context) (value any, err error) {
	defer func() {
		if p := recover(); p != nil {
			logger.Errorw("compute function panicked", "name", name, "panic", p)
			err = newComputeFailed(name, fmt.Errorf("panic: %v", p))
		}
	}()
	value, callErr := fn(ctx)
	if callErr != nil {
		logger.Warnw("compute function failed", "name", name, "error", callErr.Error())
		return nil, newComputeFailed(name, callErr)
	}
	return value, nil
}
