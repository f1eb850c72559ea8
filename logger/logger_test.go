// SPDX-FileCopyrightText: Copyright 2025 ThinkEloquent, Inc.
// SPDX-License-Identifier: Apache-2.0

package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// fakeReader implements env.Reader for testing without touching the real
// environment.
type fakeReader map[string]string

func (f fakeReader) Getenv(key string) string {
	return f[key]
}

// fakeDebugProvider implements DebugProvider for testing.
type fakeDebugProvider struct {
	debug bool
}

func (f *fakeDebugProvider) IsDebug() bool {
	return f.debug
}

func TestUnstructuredLogsCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		envValue string
		expected bool
	}{
		{"Default Case", "", true},
		{"Explicitly True", "true", true},
		{"Explicitly False", "false", false},
		{"Invalid Value", "not-a-bool", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reader := fakeReader{"UNSTRUCTURED_LOGS": tt.envValue}
			assert.Equal(t, tt.expected, unstructuredLogs(reader))
		})
	}
}

func TestInitializeWithOptions(t *testing.T) { //nolint:paralleltest // Replaces global logger state
	tests := []struct {
		name  string
		env   fakeReader
		debug bool
	}{
		{"unstructured default", fakeReader{}, false},
		{"structured", fakeReader{"UNSTRUCTURED_LOGS": "false"}, false},
		{"debug enabled", fakeReader{}, true},
	}

	for _, tt := range tests { //nolint:paralleltest // Replaces global logger state
		t.Run(tt.name, func(t *testing.T) {
			InitializeWithOptions(tt.env, &fakeDebugProvider{debug: tt.debug})

			enabled := zap.L().Core().Enabled(zapcore.DebugLevel)
			assert.Equal(t, tt.debug, enabled)
		})
	}
}

func TestLogWrappers(t *testing.T) { //nolint:paralleltest // Replaces global logger state
	var buf bytes.Buffer
	encoderConfig := zap.NewProductionEncoderConfig()
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(&buf),
		zapcore.DebugLevel,
	)
	zap.ReplaceGlobals(zap.New(core))

	Debugw("debug message", "key", "value")
	Infof("info %s", "formatted")
	Warnw("warn message", "count", 3)
	Errorf("error %s", "formatted")
	_ = zap.L().Sync()

	output := buf.String()
	assert.Contains(t, output, "debug message")
	assert.Contains(t, output, "info formatted")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error formatted")
	assert.Contains(t, output, `"key":"value"`)
}

func TestNewLogr(t *testing.T) { //nolint:paralleltest // Reads global logger state
	log := NewLogr()
	// Must produce a usable logr.Logger backed by the global zap logger.
	log.Info("via logr")
	assert.NotNil(t, log.GetSink())
}
