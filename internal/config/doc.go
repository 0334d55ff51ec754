// Package config provides configuration loading, merging, and validation
// facilities for the generator.
//
// Configuration is assembled from multiple sources; for every field the
// first source that sets it wins:
//  1. Command-line flags
//  2. Environment variables (CONFIGGEN_*)
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The override file (.env.local) is not a configuration source: it is loaded
// by the pipeline after the configuration has been built.
//
// The main entry point is [GetStructuredConfig].
package config
