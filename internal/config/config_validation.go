// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"regexp"

	"github.com/rs/zerolog"
)

var (
	globalPattern  = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*(\.[A-Za-z_$][A-Za-z0-9_$]*)*$`)
	envNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// validate checks that the merged [StructuredConfig] can drive a run.
func (cfg *StructuredConfig) validate() error {
	if cfg.Generator.OutputPath == "" {
		return ErrInvalidOutputConfigs
	}

	if !globalPattern.MatchString(cfg.Generator.Global) {
		return fmt.Errorf("%w: %q", ErrInvalidGlobalConfigs, cfg.Generator.Global)
	}

	if len(cfg.Generator.Names) == 0 {
		return fmt.Errorf("%w: no names", ErrInvalidNamesConfigs)
	}
	seen := make(map[string]struct{}, len(cfg.Generator.Names))
	for _, name := range cfg.Generator.Names {
		if !envNamePattern.MatchString(name) {
			return fmt.Errorf("%w: %q is not a variable name", ErrInvalidNamesConfigs, name)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q is listed twice", ErrInvalidNamesConfigs, name)
		}
		seen[name] = struct{}{}
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
