// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// StructuredFileConfig is the on-disk layout of the optional config file.
// The same field names are used for JSON and YAML.
type StructuredFileConfig struct {
	EnvFile    string   `json:"env_file" yaml:"env_file"`
	OutputPath string   `json:"output" yaml:"output"`
	Global     string   `json:"global" yaml:"global"`
	Names      []string `json:"names" yaml:"names"`

	Log struct {
		Level string `json:"level" yaml:"level"`
	} `json:"log,omitempty" yaml:"log,omitempty"`
}

// parseFile decodes the config file at path. Files ending in .yaml or .yml
// are decoded as YAML, everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}
	defer f.Close()

	var fileCfg StructuredFileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.NewDecoder(f).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.NewDecoder(f).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	cfg := &StructuredConfig{
		Generator: Generator{
			EnvFile:    fileCfg.EnvFile,
			OutputPath: fileCfg.OutputPath,
			Global:     fileCfg.Global,
			Names:      fileCfg.Names,
		},
		Log: Log{
			Level: fileCfg.Log.Level,
		},
	}

	return cfg, nil
}
