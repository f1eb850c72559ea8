// SPDX-FileCopyrightText: Copyright 2025 ThinkEloquent, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package configfile loads YAML configuration files into the plain in-memory
trees the resolver consumes, deep-merging an ordered file list so that
environment-specific overlays win over base settings.

# Basic Usage

Load a base file plus an environment overlay and resolve the merged tree:

	tree, err := configfile.LoadAll(
	    "config/base.yml",
	    fmt.Sprintf("config/server.%s.yaml", appEnv),
	)
	if err != nil {
	    // fail startup: configuration is unreadable
	}

	resolved, err := resolver.ResolveObject(tree, ctx, resolve.ScopeStartup)

# Merge Semantics

Nested maps merge recursively; scalars and sequences from a later file
replace earlier values wholesale. Inputs are never mutated.

# File Discovery

SearchPaths and Find locate config files following the XDG base directory
specification, preferring a local config/ directory for development.
*/
package configfile
