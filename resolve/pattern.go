// SPDX-FileCopyrightText: Copyright 2025 ThinkEloquent, Inc.
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"regexp"
	"strings"
)

// Placeholder grammar. A compute expression must be the entire (trimmed)
// string; template-path expressions may additionally be embedded inside
// surrounding literal text, in which case each match is substituted as a
// string (see interpolate in resolver.go).
var (
	// computePattern matches {{fn:name}} or {{fn:name | 'default'}} as a
	// whole string.
	computePattern = regexp.MustCompile(`^\s*\{\{\s*fn:([A-Za-z_][A-Za-z0-9_]*)\s*(?:\|\s*(.*?)\s*)?\}\}\s*$`)

	// templatePattern matches {{path.to.value}} or {{path | 'default'}} as a
	// whole string. The path character class is deliberately more relaxed
	// than the security validator allows (leading underscores and digits
	// match) so that hostile paths are captured and rejected with a
	// SecurityError instead of silently passing through as literals.
	templatePattern = regexp.MustCompile(`^\s*\{\{\s*([A-Za-z0-9_.\[\]]+)\s*(?:\|\s*(.*?)\s*)?\}\}\s*$`)

	// embeddedPattern finds {{...}} tokens inside surrounding text.
	embeddedPattern = regexp.MustCompile(`\{\{([^{}]+)\}\}`)

	// relaxedPathPattern decides whether the inner text of an embedded token
	// is path-shaped at all. Tokens that are not path-shaped are left as
	// literal text rather than rejected.
	relaxedPathPattern = regexp.MustCompile(`^[A-Za-z0-9_.\[\]]+$`)
)

// exprKind classifies a parsed expression.
type exprKind int

const (
	exprLiteral exprKind = iota
	exprTemplate
	exprCompute
)

// expression is the parse result for a single input string. Inputs are
// re-parsed on every resolution call; there is no persistent AST cache.
type expression struct {
	kind  exprKind
	token string  // the original input, returned under MissingKeep
	key   string  // template path or compute function name
	def   *string // inline default with quotes stripped, nil when absent
}

// parseExpression classifies an input string as a literal, a whole-string
// template-path placeholder, or a whole-string compute placeholder.
func parseExpression(s string) expression {
	if m := computePattern.FindStringSubmatch(s); m != nil {
		return expression{kind: exprCompute, token: s, key: m[1], def: parseDefault(m[2])}
	}
	if m := templatePattern.FindStringSubmatch(s); m != nil {
		return expression{kind: exprTemplate, token: s, key: m[1], def: parseDefault(m[2])}
	}
	return expression{kind: exprLiteral, token: s}
}

// IsComputePattern reports whether the expression is exactly one
// {{fn:...}} token.
func IsComputePattern(expr string) bool {
	return computePattern.MatchString(expr)
}

// parseDefault turns the raw default capture into an optional default value.
// An empty capture means no default was given; quotes, if present, are
// stripped so that {{key | ''}} yields an explicit empty-string default.
func parseDefault(raw string) *string {
	if raw == "" {
		return nil
	}
	d := stripQuotes(raw)
	return &d
}

// splitDefault separates an embedded token's inner text into its path and
// optional default. The default keeps the same quoting rules as whole-string
// placeholders.
func splitDefault(inner string) (string, *string) {
	key, raw, found := strings.Cut(inner, "|")
	key = strings.TrimSpace(key)
	if !found {
		return key, nil
	}
	return key, parseDefault(strings.TrimSpace(raw))
}

// stripQuotes removes one matching pair of single or double quotes.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
