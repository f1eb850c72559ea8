// SPDX-FileCopyrightText: Copyright 2025 ThinkEloquent, Inc.
// SPDX-License-Identifier: Apache-2.0

package resolve

// Context is the read-only tree that template paths are resolved against.
// It is supplied fresh per resolution call and is never mutated by the
// engine.
type Context map[string]any

// Conventional top-level context keys. Hosts are free to use any shape, but
// the builder below produces this layout.
const (
	ContextKeyEnv     = "env"
	ContextKeyConfig  = "config"
	ContextKeyApp     = "app"
	ContextKeyState   = "state"
	ContextKeyRequest = "request"
)

// ContextBuilder assembles the conventional resolution context:
// {env, config, app, state, request}. The request value is an opaque host
// handle used only for lookups by compute functions, never by the engine
// itself.
type ContextBuilder struct {
	ctx Context
}

// NewContext starts a builder with empty env/config/app/state sections and
// no request handle.
func NewContext() *ContextBuilder {
	return &ContextBuilder{ctx: Context{
		ContextKeyEnv:     map[string]string{},
		ContextKeyConfig:  map[string]any{},
		ContextKeyApp:     map[string]any{},
		ContextKeyState:   map[string]any{},
		ContextKeyRequest: nil,
	}}
}

// WithEnv sets the process environment snapshot.
func (b *ContextBuilder) WithEnv(env map[string]string) *ContextBuilder {
	b.ctx[ContextKeyEnv] = env
	return b
}

// WithConfig sets the raw configuration tree.
func (b *ContextBuilder) WithConfig(config map[string]any) *ContextBuilder {
	b.ctx[ContextKeyConfig] = config
	return b
}

// WithApp sets the application metadata section.
func (b *ContextBuilder) WithApp(app map[string]any) *ContextBuilder {
	b.ctx[ContextKeyApp] = app
	return b
}

// WithState sets the per-request transient data section.
func (b *ContextBuilder) WithState(state map[string]any) *ContextBuilder {
	b.ctx[ContextKeyState] = state
	return b
}

// WithRequest sets the opaque host request handle.
func (b *ContextBuilder) WithRequest(request any) *ContextBuilder {
	b.ctx[ContextKeyRequest] = request
	return b
}

// Build returns the assembled context.
func (b *ContextBuilder) Build() Context {
	return b.ctx
}
