// SPDX-FileCopyrightText: Copyright 2025 ThinkEloquent, Inc.
// SPDX-License-Identifier: Apache-2.0

package httperr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thinkeloquent/runtime-template-resolver/httperr"
	"github.com/thinkeloquent/runtime-template-resolver/resolve"
)

func TestStatus_ResolverErrorKinds(t *testing.T) {
	t.Parallel()

	registry := resolve.NewRegistry()
	require.NoError(t, registry.Register("g", resolve.NoArg(func() (any, error) {
		return nil, errors.New("backend down")
	}), resolve.ScopeRequest))
	resolver := resolve.NewResolver(registry)

	securityErr := mustFail(t, resolver, "{{obj.__proto__}}", resolve.ScopeRequest)
	missingErr := mustFail(t, resolver, "{{missing}}", resolve.ScopeRequest)
	notFoundErr := mustFail(t, resolver, "{{fn:unknown}}", resolve.ScopeRequest)
	failedErr := mustFail(t, resolver, "{{fn:g}}", resolve.ScopeRequest)
	scopeErr := mustFail(t, resolver, "{{fn:g}}", resolve.ScopeStartup)

	assert.Equal(t, http.StatusForbidden, httperr.Status(securityErr))
	assert.Equal(t, http.StatusUnprocessableEntity, httperr.Status(missingErr))
	assert.Equal(t, http.StatusUnprocessableEntity, httperr.Status(notFoundErr))
	assert.Equal(t, http.StatusInternalServerError, httperr.Status(failedErr))
	assert.Equal(t, http.StatusInternalServerError, httperr.Status(scopeErr))
	assert.Equal(t, http.StatusOK, httperr.Status(nil))
}

func mustFail(t *testing.T, resolver *resolve.Resolver, expr string, scope resolve.Scope) error {
	t.Helper()
	_, err := resolver.Resolve(expr, resolve.Context{}, scope)
	require.Error(t, err, "expression %s at scope %s", expr, scope)
	return err
}

func TestStatus_ValidationError(t *testing.T) {
	t.Parallel()

	registry := resolve.NewRegistry()
	err := registry.Register("not a name", nil, resolve.ScopeStartup)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httperr.Status(err))
}

func TestWithCode(t *testing.T) {
	t.Parallel()

	base := errors.New("boom")
	coded := httperr.WithCode(base, http.StatusTeapot)

	var codedErr *httperr.CodedError
	require.True(t, errors.As(coded, &codedErr))
	assert.Equal(t, http.StatusTeapot, codedErr.HTTPCode())
	assert.Equal(t, "boom", coded.Error())
	assert.ErrorIs(t, coded, base)

	assert.Nil(t, httperr.WithCode(nil, http.StatusTeapot))
}

func TestCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, http.StatusOK, httperr.Code(nil))
	assert.Equal(t, http.StatusTeapot, httperr.Code(httperr.WithCode(errors.New("x"), http.StatusTeapot)))

	// Without an explicit code, resolver kinds drive the status.
	assert.Equal(t, http.StatusForbidden, httperr.Code(resolve.ValidatePath("_nope")))

	// Unknown errors fall through to 500.
	assert.Equal(t, http.StatusInternalServerError, httperr.Code(errors.New("mystery")))
}

func TestWrap(t *testing.T) {
	t.Parallel()

	err := httperr.Wrap(resolve.ValidatePath("a..b"))
	require.Error(t, err)

	var codedErr *httperr.CodedError
	require.True(t, errors.As(err, &codedErr))
	assert.Equal(t, http.StatusForbidden, codedErr.HTTPCode())
	assert.ErrorIs(t, err, resolve.ErrSecurity)

	assert.Nil(t, httperr.Wrap(nil))
}
