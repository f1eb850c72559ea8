// SPDX-FileCopyrightText: Copyright 2025 ThinkEloquent, Inc.
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// Validate checks a resolved configuration tree against a JSON schema.
// The tree is serialized to JSON and validated; all violations are collected
// into a single error so a failed startup reports everything at once.
func Validate(tree map[string]any, schemaJSON []byte) error {
	data, err := json.Marshal(tree)
	if err != nil {
		return fmt.Errorf("failed to serialize configuration tree: %w", err)
	}
	return ValidateBytes(data, schemaJSON)
}

// ValidateBytes validates raw JSON bytes against a JSON schema.
func ValidateBytes(data, schemaJSON []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaJSON),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}

	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return formatNumberedErrors("configuration schema validation failed", msgs)
}

// formatNumberedErrors formats a list of messages as a single error with a
// numbered list.
func formatNumberedErrors(prefix string, msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	if len(msgs) == 1 {
		return fmt.Errorf("%s: %s", prefix, msgs[0])
	}
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(":")
	for i, msg := range msgs {
		b.WriteString(fmt.Sprintf("\n  %d. %s", i+1, msg))
	}
	return fmt.Errorf("%s", b.String())
}
