// SPDX-FileCopyrightText: Copyright 2025 ThinkEloquent, Inc.
// SPDX-License-Identifier: Apache-2.0

package env

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Reader defines an interface for environment variable access
type Reader interface {
	Getenv(key string) string
}

// OSReader implements Reader using the standard os package
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// Snapshot captures the current process environment as a plain key-value
// map, the shape the resolver expects under the "env" context key.
func Snapshot() map[string]string {
	environ := os.Environ()
	snapshot := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, found := strings.Cut(entry, "=")
		if !found {
			continue
		}
		snapshot[key] = value
	}
	return snapshot
}

// LoadFile parses a KEY=VALUE secrets file (a vault/dotenv-style file).
// Blank lines and lines starting with '#' are skipped, whitespace around
// keys and values is trimmed, and one matching pair of single or double
// quotes around a value is stripped. A missing file is not an error; it
// yields an empty map.
func LoadFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("failed to open env file %q: %w", path, err)
	}
	defer f.Close()

	vars := make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}
		if key != "" {
			vars[key] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read env file %q: %w", path, err)
	}
	return vars, nil
}

// Apply overlays vars onto a snapshot, returning a new map. Keys in vars win
// over keys already present in the snapshot.
func Apply(snapshot, vars map[string]string) map[string]string {
	merged := make(map[string]string, len(snapshot)+len(vars))
	for key, value := range snapshot {
		merged[key] = value
	}
	for key, value := range vars {
		merged[key] = value
	}
	return merged
}
