// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// NameList is a comma-separated list of environment variable names.
// It implements the flag.Value interface.
type NameList []string

// String joins the names with commas.
func (n *NameList) String() string {
	if n == nil {
		return ""
	}

	return strings.Join(*n, ",")
}

// Set splits s on commas, trims every element and drops empty ones.
// Repeated -names flags append to the list.
func (n *NameList) Set(s string) error {
	for _, name := range strings.Split(s, ",") {
		if name = strings.TrimSpace(name); name != "" {
			*n = append(*n, name)
		}
	}

	return nil
}

// ParseFlags parses the generator command-line flags from args (the program
// name excluded). Every flag is optional; a no-argument invocation yields an
// empty config that is later filled from the other sources.
//
// Flags:
//
//	-env-file   override file path (default source: .env.local)
//	-o/-output  artifact path (default source: config.js)
//	-global     assignment target (default source: window.env)
//	-names      comma-separated recognized names
//	-log-level  zerolog level name
//	-c/-config  JSON or YAML file path with configs
//	-version    print build information and exit
func ParseFlags(args []string) (*StructuredConfig, error) {
	var envFile, outputPath, global, logLevel, configPath string
	var names NameList
	var printVersion bool

	fs := flag.NewFlagSet("configgen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&envFile, "env-file", "", "Override file path")
	fs.StringVar(&outputPath, "o", "", "Artifact output path")
	fs.StringVar(&outputPath, "output", "", "Artifact output path (alias)")
	fs.StringVar(&global, "global", "", "Global identifier the config is assigned to")
	fs.Var(&names, "names", "Comma-separated recognized variable names")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&configPath, "c", "", "JSON/YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON/YAML config file path (alias)")
	fs.BoolVar(&printVersion, "version", false, "Print build information and exit")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnexpectedArguments, fs.Args())
	}

	cfg := &StructuredConfig{
		Generator: Generator{
			EnvFile:    envFile,
			OutputPath: outputPath,
			Global:     global,
		},
		Log: Log{
			Level: logLevel,
		},
		FilePath:     configPath,
		PrintVersion: printVersion,
	}
	if len(names) > 0 {
		cfg.Generator.Names = names
	}

	return cfg, nil
}
