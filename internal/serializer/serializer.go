// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package serializer renders a [models.ConfigMapping] as a single JavaScript
// assignment statement, e.g.
//
//	window.env = {
//	  "NEXT_PUBLIC_SUPABASE_URL": "https://x.example",
//	  "NEXT_PUBLIC_SUPABASE_ANON_KEY": null
//	};
package serializer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-config-gen/models"
)

// DefaultGlobal is the identifier the mapping is assigned to when none is
// configured.
const DefaultGlobal = "window.env"

const indent = "  "

// Render returns "<global> = <json>;" where <json> is the mapping encoded as
// a JSON object with two-space indentation, keys in insertion order and
// absent values as null. The result has no trailing newline.
func Render(mapping models.ConfigMapping, global string) ([]byte, error) {
	if global == "" {
		return nil, ErrEmptyGlobal
	}

	raw, err := mapping.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeMapping, err)
	}

	var body bytes.Buffer
	if err = json.Indent(&body, raw, "", indent); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeMapping, err)
	}

	var out bytes.Buffer
	out.Grow(len(global) + body.Len() + 4)
	out.WriteString(global)
	out.WriteString(" = ")
	out.Write(body.Bytes())
	out.WriteByte(';')

	return out.Bytes(), nil
}
