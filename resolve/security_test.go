// SPDX-FileCopyrightText: Copyright 2025 ThinkEloquent, Inc.
// SPDX-License-Identifier: Apache-2.0

package resolve_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinkeloquent/runtime-template-resolver/resolve"
)

func TestValidatePath_Allowed(t *testing.T) {
	t.Parallel()

	paths := []string{
		"a",
		"a.b.c",
		"env.DATABASE_URL",
		"items[0]",
		"items[0].name",
		"config.servers[2].port",
		"a1.b2",
	}

	for _, path := range paths {
		assert.NoError(t, resolve.ValidatePath(path), "path %q should be allowed", path)
	}
}

func TestValidatePath_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		segment string
	}{
		{
			name: "empty path",
			path: "",
		},
		{
			name: "leading underscore",
			path: "_private",
		},
		{
			name: "leading digit",
			path: "1abc",
		},
		{
			name: "path traversal",
			path: "a..b",
		},
		{
			name:    "proto pollution",
			path:    "obj.__proto__",
			segment: "__proto__",
		},
		{
			name:    "class attribute",
			path:    "obj.__class__",
			segment: "__class__",
		},
		{
			name:    "dict attribute",
			path:    "obj.__dict__",
			segment: "__dict__",
		},
		{
			name:    "constructor segment",
			path:    "a.constructor.b",
			segment: "constructor",
		},
		{
			name:    "prototype segment",
			path:    "a.prototype",
			segment: "prototype",
		},
		{
			name:    "blocked name before bracket index",
			path:    "a.constructor[0]",
			segment: "constructor",
		},
		{
			name:    "underscore-prefixed nested segment",
			path:    "user._secret",
			segment: "_secret",
		},
		{
			name: "shell metacharacters",
			path: "a.b;rm",
		},
		{
			name: "whitespace",
			path: "a b",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := resolve.ValidatePath(tt.path)
			require.Error(t, err)
			assert.ErrorIs(t, err, resolve.ErrSecurity)

			var secErr *resolve.SecurityError
			require.True(t, errors.As(err, &secErr))
			assert.Equal(t, tt.path, secErr.Path)
			if tt.segment != "" {
				assert.Equal(t, tt.segment, secErr.Segment)
			}
		})
	}
}
