package app

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		expected string
		warns    bool
	}{
		{"default", Config{}, "info", false},
		{"verbose", Config{Verbose: true}, "debug", false},
		{"quiet", Config{Quiet: true}, "warn", false},
		{"flag overrides verbose", Config{LogLevel: "error", Verbose: true}, "error", false},
		{"flag overrides quiet", Config{LogLevel: "trace", Quiet: true}, "trace", false},
		{"invalid flag falls back", Config{LogLevel: "loud"}, "info", true},
		{"verbose and quiet", Config{Verbose: true, Quiet: true}, "warn", true},
		{"env level", Config{EnvLogLevel: "error"}, "error", false},
		{"verbose overrides env", Config{Verbose: true, EnvLogLevel: "error"}, "debug", false},
		{"flag overrides env", Config{LogLevel: "warn", EnvLogLevel: "trace"}, "warn", false},
		{"invalid env falls back", Config{EnvLogLevel: "loud"}, "info", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var warnings bytes.Buffer
			assert.Equal(t, tt.expected, determineLogLevel(&tt.config, &warnings))
			assert.Equal(t, tt.warns, warnings.Len() > 0, warnings.String())
		})
	}
}

func TestNewLoggerLevel(t *testing.T) {
	var warnings bytes.Buffer
	logger := newLogger(&Config{Quiet: true, LogFormat: "json", LogOutput: "stderr"}, &warnings)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())

	logger = newLogger(&Config{Verbose: true, LogFormat: "json", LogOutput: "stderr"}, &warnings)
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}
