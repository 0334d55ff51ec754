// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package materializer

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-config-gen/internal/app"
	"github.com/MKhiriev/go-config-gen/internal/config"
	"github.com/MKhiriev/go-config-gen/internal/environment"
	"github.com/MKhiriev/go-config-gen/internal/loader"
	"github.com/MKhiriev/go-config-gen/internal/logger"
	"github.com/MKhiriev/go-config-gen/internal/selector"
	"github.com/MKhiriev/go-config-gen/internal/serializer"
	"github.com/MKhiriev/go-config-gen/internal/writer"
)

// Stage names a pipeline state; it is attached to log entries.
type Stage string

const (
	StageStart              Stage = "start"
	StageEnvironmentLoaded  Stage = "environment_loaded"
	StageMappingBuilt       Stage = "mapping_built"
	StageArtifactSerialized Stage = "artifact_serialized"
	StageArtifactWritten    Stage = "artifact_written"
	StageDone               Stage = "done"
)

// Result summarizes a successful run.
type Result struct {
	// OutputPath is where the artifact was written.
	OutputPath string
	// BytesWritten is the artifact size.
	BytesWritten int
	// Keys are the recognized names, in artifact order.
	Keys []string
	// Resolved counts the keys that had a value.
	Resolved int
	// Overrides describes what the override file contributed.
	Overrides loader.Report
}

// Message returns the one-line confirmation for the CLI.
func (r *Result) Message() string {
	return fmt.Sprintf(app.MsgArtifactGenerated, r.OutputPath)
}

// Materializer turns environment values into the generated artifact.
type Materializer struct {
	cfg    config.Generator
	env    environment.Provider
	loader *loader.Loader
	logger *logger.Logger
}

// New constructs a Materializer. cfg is expected to have been validated by
// the config package; only the fields the pipeline cannot run without are
// checked again here.
func New(cfg config.Generator, env environment.Provider, log *logger.Logger) (*Materializer, error) {
	if env == nil {
		return nil, ErrNilEnvironment
	}
	if log == nil {
		return nil, ErrNilLogger
	}
	if len(cfg.Names) == 0 {
		return nil, ErrNoRecognizedNames
	}

	cfg.Names = slices.Clone(cfg.Names)

	return &Materializer{
		cfg:    cfg,
		env:    env,
		loader: loader.NewLoader(cfg.EnvFile, log),
		logger: log,
	}, nil
}

// Run executes the pipeline once. The returned error is non-nil only when the
// artifact could not be rendered or written; it then wraps
// [writer.ErrWriteArtifact] or a serializer error.
func (m *Materializer) Run() (*Result, error) {
	log := m.logger.GetChildLogger("run_id", newRunID())
	log.Debug().Str("stage", string(StageStart)).Str("env_file", m.cfg.EnvFile).Msg("generating config")

	overrides := m.loader.Load(m.env)
	log.Debug().
		Str("stage", string(StageEnvironmentLoaded)).
		Bool("override_found", overrides.Found).
		Int("override_applied", len(overrides.Applied)).
		Msg("environment loaded")

	mapping := selector.Select(m.env, m.cfg.Names)
	log.Debug().
		Str("stage", string(StageMappingBuilt)).
		Strs("keys", mapping.Keys()).
		Int("resolved", mapping.Resolved()).
		Msg("config mapping built")
	for _, e := range mapping.Entries() {
		if !e.Present() {
			log.Info().Str("name", e.Name).Msg("recognized variable is not set, writing null")
		}
	}

	content, err := serializer.Render(mapping, m.cfg.Global)
	if err != nil {
		log.Error().Err(err).Msg("error rendering config")
		return nil, fmt.Errorf("error rendering config: %w", err)
	}
	log.Debug().Str("stage", string(StageArtifactSerialized)).Int("bytes", len(content)).Msg("artifact serialized")

	if err = writer.Write(m.cfg.OutputPath, content); err != nil {
		log.Error().Err(err).Str("path", m.cfg.OutputPath).Msg("error writing artifact")
		return nil, err
	}
	log.Debug().Str("stage", string(StageArtifactWritten)).Str("path", m.cfg.OutputPath).Msg("artifact written")

	result := &Result{
		OutputPath:   m.cfg.OutputPath,
		BytesWritten: len(content),
		Keys:         mapping.Keys(),
		Resolved:     mapping.Resolved(),
		Overrides:    overrides,
	}
	log.Debug().Str("stage", string(StageDone)).Msg("config generated")

	return result, nil
}

// newRunID returns a time-ordered UUIDv7, or a random UUID if the clock
// source fails.
func newRunID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
