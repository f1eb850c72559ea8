// SPDX-FileCopyrightText: Copyright 2025 ThinkEloquent, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package env provides environment variable access for the resolver: an
interface-based Reader for dependency injection, a Snapshot of the process
environment in the map shape the resolution context expects, and a parser
for KEY=VALUE secrets files.

# Basic Usage

Capture the process environment for the "env" key of a resolution context:

	ctx := resolve.NewContext().WithEnv(env.Snapshot()).Build()

Load a vault-style secrets file and overlay it onto the snapshot:

	secrets, err := env.LoadFile(os.Getenv("VAULT_SECRET_FILE"))
	if err != nil {
	    // handle parse failure
	}
	merged := env.Apply(env.Snapshot(), secrets)

# Testing

Library code accepts an env.Reader instead of calling os.Getenv directly, so
tests can substitute a fake:

	type fakeReader map[string]string

	func (f fakeReader) Getenv(key string) string { return f[key] }
*/
package env
