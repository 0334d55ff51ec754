// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package loader

import (
	"bufio"
	"bytes"
	"errors"
	"io/fs"
	"os"
	"slices"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/go-config-gen/internal/environment"
	"github.com/MKhiriev/go-config-gen/internal/logger"
)

// Report describes the outcome of a single [Loader.Load] call.
type Report struct {
	// Path is the override file that was looked up.
	Path string
	// Found is false when the file does not exist or could not be read.
	Found bool
	// Parsed holds every key read from the file, sorted.
	Parsed []string
	// Applied holds the keys adopted into the environment, sorted.
	Applied []string
	// Skipped holds the keys ignored because they were already set, sorted.
	Skipped []string
	// RejectedLines counts lines dropped as malformed.
	RejectedLines int
}

// Loader reads an override file and fills absent variables of a provider.
type Loader struct {
	path   string
	logger *logger.Logger
}

// NewLoader constructs a Loader for the override file at path.
func NewLoader(path string, log *logger.Logger) *Loader {
	return &Loader{
		path:   path,
		logger: log,
	}
}

// Load reads the override file and calls env.SetIfAbsent for every parsed
// key. It never returns an error: a missing file is reported with
// Found=false, an unreadable file is logged and treated as missing, and
// malformed lines are dropped one by one.
func (l *Loader) Load(env environment.Provider) Report {
	report := Report{Path: l.path}
	if l.path == "" {
		return report
	}

	data, err := os.ReadFile(l.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn().Err(err).Str("path", l.path).Msg("override file is not readable, ignoring it")
		}
		return report
	}
	report.Found = true

	vars, rejected := parse(data)
	if rejected > 0 {
		l.logger.Warn().Str("path", l.path).Int("lines", rejected).Msg("malformed lines in override file were ignored")
	}
	report.RejectedLines = rejected

	report.Parsed = make([]string, 0, len(vars))
	for key := range vars {
		report.Parsed = append(report.Parsed, key)
	}
	slices.Sort(report.Parsed)

	for _, key := range report.Parsed {
		if env.SetIfAbsent(key, vars[key]) {
			report.Applied = append(report.Applied, key)
			continue
		}
		report.Skipped = append(report.Skipped, key)
	}

	l.logger.Debug().
		Str("path", l.path).
		Strs("applied", report.Applied).
		Strs("skipped", report.Skipped).
		Msg("override file loaded")

	return report
}

// parse decodes data with godotenv. When the file as a whole cannot be
// parsed, each line is decoded on its own and the ones godotenv rejects are
// counted and dropped.
func parse(data []byte) (map[string]string, int) {
	vars, err := godotenv.Parse(bytes.NewReader(data))
	if err == nil {
		if _, ok := vars[""]; ok {
			delete(vars, "")
			return vars, 1
		}
		return vars, 0
	}

	vars = make(map[string]string)
	rejected := 0

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()

		lineVars, err := godotenv.Unmarshal(line)
		if err != nil {
			rejected++
			continue
		}
		if _, ok := lineVars[""]; ok {
			rejected++
			continue
		}

		for k, v := range lineVars {
			vars[k] = v
		}
	}

	return vars, rejected
}
