// SPDX-FileCopyrightText: Copyright 2025 ThinkEloquent, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package celfn adapts CEL expressions into resolver compute functions, so
hosts can register derived values without writing Go:

	err := celfn.Register(registry, "listen_addr",
	    `context["env"]["HOST"] + ":" + context["env"]["PORT"]`,
	    resolve.ScopeStartup)

	// config: {"addr": "{{fn:listen_addr}}"}

The resolution context is bound to a CEL map variable named "context".
Expressions are compiled once at registration; evaluation per call is cheap
and concurrency-safe. Expression length and evaluation cost are capped to
guard against denial-of-service via hostile expressions.
*/
package celfn
