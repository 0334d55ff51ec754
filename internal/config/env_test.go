// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIGGEN_CONFIG":    "/path/to/config.json",
		"CONFIGGEN_ENV_FILE":  ".env.production.local",
		"CONFIGGEN_OUTPUT":    "public/config.js",
		"CONFIGGEN_GLOBAL":    "window.__env",
		"CONFIGGEN_NAMES":     "API_URL,API_KEY",
		"CONFIGGEN_LOG_LEVEL": "debug",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.FilePath)
	assert.Equal(t, ".env.production.local", cfg.Generator.EnvFile)
	assert.Equal(t, "public/config.js", cfg.Generator.OutputPath)
	assert.Equal(t, "window.__env", cfg.Generator.Global)
	assert.Equal(t, []string{"API_URL", "API_KEY"}, cfg.Generator.Names)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.PrintVersion)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIGGEN_OUTPUT": "dist/config.js",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "dist/config.js", cfg.Generator.OutputPath)
	assert.Empty(t, cfg.Generator.EnvFile)
	assert.Empty(t, cfg.Generator.Global)
	assert.Nil(t, cfg.Generator.Names)
	assert.Empty(t, cfg.Log.Level)
	assert.Empty(t, cfg.FilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	// Arrange
	clearEnvVars(t)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_RecognizedNamesAreNotConfig(t *testing.T) {
	// The selected variables themselves must not leak into the config.
	setEnvVars(t, map[string]string{
		SupabaseURLName:     "https://x.example",
		SupabaseAnonKeyName: "anon",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, &StructuredConfig{}, cfg)
}

// Helpers

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIGGEN_CONFIG",
		"CONFIGGEN_ENV_FILE",
		"CONFIGGEN_OUTPUT",
		"CONFIGGEN_GLOBAL",
		"CONFIGGEN_NAMES",
		"CONFIGGEN_LOG_LEVEL",
	}
	for _, k := range keys {
		// t.Setenv restores the previous value when the test ends.
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
