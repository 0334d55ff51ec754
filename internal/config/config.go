// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// Recognized names selected from the environment by default.
const (
	// SupabaseURLName holds the public service endpoint URL.
	SupabaseURLName = "NEXT_PUBLIC_SUPABASE_URL"
	// SupabaseAnonKeyName holds the public (anonymous) access key.
	SupabaseAnonKeyName = "NEXT_PUBLIC_SUPABASE_ANON_KEY"
)

// Defaults applied to every field left empty by all other sources.
const (
	DefaultEnvFile    = ".env.local"
	DefaultOutputPath = "config.js"
	DefaultGlobal     = "window.env"
	DefaultLogLevel   = "warn"
)

// DefaultRecognizedNames returns a fresh copy of the names written to the
// artifact when none are configured.
func DefaultRecognizedNames() []string {
	return []string{SupabaseURLName, SupabaseAnonKeyName}
}

// StructuredConfig is the top-level configuration container for the
// generator. It is populated by merging command-line flags, environment
// variables, an optional JSON/YAML file and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Generator holds the pipeline settings: where overrides come from,
	// which names are selected and where the artifact goes.
	Generator Generator `envPrefix:"CONFIGGEN_"`

	// Log holds logger settings.
	Log Log `envPrefix:"CONFIGGEN_LOG_"`

	// FilePath is the optional path to a JSON or YAML configuration file.
	// Populated via the CONFIGGEN_CONFIG environment variable or the
	// -c / -config flag.
	FilePath string `env:"CONFIGGEN_CONFIG"`

	// PrintVersion is set by the -version flag only.
	PrintVersion bool
}

// Generator holds the settings consumed by the materializer pipeline.
type Generator struct {
	// EnvFile is the dotenv-style override file merged into the process
	// environment before selection.
	// Env: CONFIGGEN_ENV_FILE
	EnvFile string `env:"ENV_FILE"`

	// OutputPath is the artifact destination. An existing file is
	// overwritten.
	// Env: CONFIGGEN_OUTPUT
	OutputPath string `env:"OUTPUT"`

	// Global is the JavaScript identifier path the mapping is assigned to
	// (e.g. "window.env").
	// Env: CONFIGGEN_GLOBAL
	Global string `env:"GLOBAL"`

	// Names is the ordered, closed set of recognized environment variable
	// names written to the artifact.
	// Env: CONFIGGEN_NAMES (comma separated)
	Names []string `env:"NAMES" envSeparator:","`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: CONFIGGEN_LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads, merges, and validates the generator
// configuration. For every field the first non-empty value wins, in this
// order:
//  1. Command-line flags (args, without the program name)
//  2. Environment variables
//  3. JSON/YAML file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withFile().
		withDefaults().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Generator: Generator{
			EnvFile:    DefaultEnvFile,
			OutputPath: DefaultOutputPath,
			Global:     DefaultGlobal,
			Names:      DefaultRecognizedNames(),
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}
