// SPDX-FileCopyrightText: Copyright 2025 ThinkEloquent, Inc.
// SPDX-License-Identifier: Apache-2.0

package resolve

import (
	"regexp"
	"strings"
)

// validPathPattern is the shape every lookup path must have: it starts with
// a letter and continues with alphanumerics, underscores, dots, or bracket
// indices.
var validPathPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_.\[\]]*$`)

// blockedSegments are names that must never appear as a path segment. They
// cover attribute-pollution vectors carried over from dynamic-language hosts
// that may share configuration trees with this engine.
var blockedSegments = map[string]struct{}{
	"__proto__":   {},
	"__class__":   {},
	"__dict__":    {},
	"constructor": {},
	"prototype":   {},
}

// ValidatePath checks a dotted lookup path against the security policy.
// It runs before every path lookup, not only at parse time, because callers
// may construct paths dynamically.
//
// Rejected: empty paths, paths not matching validPathPattern, any segment
// equal to a blocked name, any segment starting with an underscore, and the
// substring ".." anywhere in the path.
func ValidatePath(path string) error {
	if path == "" {
		return &SecurityError{Path: path, Reason: "path is empty"}
	}
	if !validPathPattern.MatchString(path) {
		return &SecurityError{Path: path, Reason: "must start with a letter and contain only alphanumerics, underscores, dots, or bracket indices"}
	}
	if strings.Contains(path, "..") {
		return &SecurityError{Path: path, Reason: "path traversal is not allowed"}
	}
	for _, segment := range strings.Split(path, ".") {
		// Bracket indices are their own lookup step; the name before the
		// bracket is what the blocklist applies to.
		name := segment
		if i := strings.IndexByte(name, '['); i >= 0 {
			name = name[:i]
		}
		if _, blocked := blockedSegments[name]; blocked {
			return &SecurityError{Path: path, Segment: name, Reason: "is blocked"}
		}
		if strings.HasPrefix(name, "_") {
			return &SecurityError{Path: path, Segment: name, Reason: "starts with an underscore"}
		}
	}
	return nil
}
