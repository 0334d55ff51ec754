// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package selector builds the fixed-shape [models.ConfigMapping] from an
// environment.
package selector

import (
	"github.com/MKhiriev/go-config-gen/internal/environment"
	"github.com/MKhiriev/go-config-gen/models"
)

// Select returns a mapping whose keys are exactly names, in order, each bound
// to the raw value found in env or left absent. Values are not trimmed,
// validated or converted. A repeated name keeps its first position.
func Select(env environment.Provider, names []string) models.ConfigMapping {
	mapping := models.NewConfigMapping(len(names))

	for _, name := range names {
		if mapping.Has(name) {
			continue
		}

		if value, ok := env.Get(name); ok {
			mapping.Add(name, &value)
			continue
		}
		mapping.Add(name, nil)
	}

	return mapping
}
