// SPDX-FileCopyrightText: Copyright 2025 ThinkEloquent, Inc.
// SPDX-License-Identifier: Apache-2.0

package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinkeloquent/runtime-template-resolver/resolve"
	"github.com/thinkeloquent/runtime-template-resolver/schema"
)

var serverSchema = []byte(`{
	"type": "object",
	"required": ["database"],
	"properties": {
		"database": {
			"type": "object",
			"required": ["host", "port"],
			"properties": {
				"host": {"type": "string"},
				"port": {"type": "integer"},
				"debug": {"type": "boolean"}
			}
		}
	}
}`)

func TestValidate_ValidTree(t *testing.T) {
	t.Parallel()

	tree := map[string]any{
		"database": map[string]any{
			"host": "localhost",
			"port": 5432,
		},
	}
	assert.NoError(t, schema.Validate(tree, serverSchema))
}

func TestValidate_CollectsAllViolations(t *testing.T) {
	t.Parallel()

	tree := map[string]any{
		"database": map[string]any{
			"host":  42,
			"debug": "not-a-bool",
		},
	}
	err := schema.Validate(tree, serverSchema)
	require.Error(t, err)
	// host type, missing port, debug type: all reported at once.
	assert.Contains(t, err.Error(), "host")
	assert.Contains(t, err.Error(), "port")
	assert.Contains(t, err.Error(), "debug")
}

func TestValidate_InvalidSchema(t *testing.T) {
	t.Parallel()

	err := schema.Validate(map[string]any{}, []byte(`{not json`))
	assert.Error(t, err)
}

func TestValidate_AfterResolution(t *testing.T) {
	t.Parallel()

	resolver := resolve.NewResolver(nil)
	ctx := resolve.NewContext().
		WithEnv(map[string]string{"DB_HOST": "db.internal"}).
		Build()

	tree := map[string]any{
		"database": map[string]any{
			"host": "{{env.DB_HOST}}",
			"port": "{{env.DB_PORT | '5432'}}",
		},
	}

	// Unresolved, the tree fails the schema: port is still a string.
	require.Error(t, schema.Validate(tree, serverSchema))

	resolved, err := resolver.ResolveObject(tree, ctx, resolve.ScopeStartup)
	require.NoError(t, err)

	typed, ok := resolved.(map[string]any)
	require.True(t, ok)
	assert.NoError(t, schema.Validate(typed, serverSchema))
}
