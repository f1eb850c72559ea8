// SPDX-FileCopyrightText: Copyright 2025 ThinkEloquent, Inc.
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"strconv"
	"strings"
)

// CoerceDefault infers the semantic type of an inline default literal.
// The order of checks is significant: boolean before integer before float,
// with verbatim string as the fallback.
//
//	"true"  -> true (case-insensitive)
//	"42"    -> int64(42)
//	"3.14"  -> float64(3.14)
//	"hello" -> "hello"
//
// A float is only recognized when the literal contains a decimal point, so
// "-3" stays a string rather than silently becoming -3.0.
func CoerceDefault(raw string) any {
	switch strings.ToLower(raw) {
	case "true":
		return true
	case "false":
		return false
	}
	if isAllDigits(raw) {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n
		}
	}
	if strings.Contains(raw, ".") {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			return f
		}
	}
	return raw
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
