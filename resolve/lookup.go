// SPDX-FileCopyrightText: Copyright 2025 ThinkEloquent, Inc.
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"reflect"
	"strconv"
)

// Lookup walks a dotted/bracketed path against an arbitrary tree of maps,
// sequences, and scalar leaves. The boolean result distinguishes "missing"
// from "present and nil": a key that exists with a nil value returns
// (nil, true), while an absent key, an out-of-range index, or a scalar hit
// before the path is exhausted returns (nil, false).
//
// Lookup never returns an error; security policy is enforced separately by
// ValidatePath.
func Lookup(tree any, path string) (any, bool) {
	current := tree
	for _, segment := range parsePath(path) {
		next, ok := step(current, segment)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// parsePath splits a path into segments. Dots separate segments and a
// bracket index becomes its own segment, so "items[0].name" yields
// ["items", "0", "name"]. Quoted bracket keys ("items['a.b']") keep their
// inner dots.
func parsePath(path string) []string {
	var segments []string
	var current []byte
	var quote byte
	inBracket := false

	flush := func() {
		if len(current) > 0 {
			segments = append(segments, string(current))
			current = current[:0]
		}
	}

	for i := 0; i < len(path); i++ {
		c := path[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			} else {
				current = append(current, c)
			}
			continue
		}
		switch c {
		case '\'', '"':
			quote = c
		case '[':
			flush()
			inBracket = true
		case ']':
			flush()
			inBracket = false
		case '.':
			if inBracket {
				current = append(current, c)
			} else {
				flush()
			}
		default:
			current = append(current, c)
		}
	}
	flush()
	return segments
}

// step resolves one path segment against the current value. Maps get a key
// lookup, sequences a bounds-checked numeric index, and structs an exported
// field access. Anything else is missing.
func step(current any, segment string) (any, bool) {
	if current == nil {
		return nil, false
	}

	// Fast paths for the common tree shapes.
	switch c := current.(type) {
	case map[string]any:
		v, ok := c[segment]
		return v, ok
	case map[string]string:
		v, ok := c[segment]
		return v, ok
	case []any:
		return indexSlice(len(c), segment, func(i int) any { return c[i] })
	case []string:
		return indexSlice(len(c), segment, func(i int) any { return c[i] })
	}

	rv := reflect.ValueOf(current)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(segment))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Slice, reflect.Array:
		return indexSlice(rv.Len(), segment, func(i int) any { return rv.Index(i).Interface() })
	case reflect.Struct:
		f := rv.FieldByName(segment)
		if !f.IsValid() || !f.CanInterface() {
			return nil, false
		}
		return f.Interface(), true
	default:
		return nil, false
	}
}

func indexSlice(length int, segment string, at func(int) any) (any, bool) {
	idx, err := strconv.Atoi(segment)
	if err != nil || idx < 0 || idx >= length {
		return nil, false
	}
	return at(idx), true
}
