// SPDX-FileCopyrightText: Copyright 2025 ThinkEloquent, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package schema validates resolved configuration trees against a JSON schema,
so a startup sequence can fail fast when resolution produced a structurally
invalid configuration.

# Basic Usage

	resolved, err := resolver.ResolveObject(tree, ctx, resolve.ScopeStartup)
	if err != nil {
	    return err
	}
	typed, _ := resolved.(map[string]any)
	if err := schema.Validate(typed, schemaJSON); err != nil {
	    return err // lists every violation, numbered
	}

Validation happens after resolution on purpose: placeholders like
"{{env.PORT | '8080'}}" resolve to typed values (an integer here), and the
schema asserts the post-substitution types.
*/
package schema
