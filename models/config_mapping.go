// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// ConfigEntry is one recognized name and its resolved value.
// A nil Value means the variable was not present in the environment.
type ConfigEntry struct {
	Name  string
	Value *string
}

// Present reports whether the entry carries a value.
func (e ConfigEntry) Present() bool {
	return e.Value != nil
}

// ConfigMapping is the flat, ordered set of recognized names selected from
// the environment. Entry order is the order in which names were added and is
// preserved when the mapping is encoded as a JSON object.
type ConfigMapping struct {
	entries []ConfigEntry
}

// NewConfigMapping returns an empty mapping with room for size entries.
func NewConfigMapping(size int) ConfigMapping {
	return ConfigMapping{entries: make([]ConfigEntry, 0, size)}
}

// Add appends name with the given value. It reports false and leaves the
// mapping untouched if name is already present.
func (m *ConfigMapping) Add(name string, value *string) bool {
	if m.index(name) >= 0 {
		return false
	}

	m.entries = append(m.entries, ConfigEntry{Name: name, Value: value})
	return true
}

// Get returns the value of name and whether it is present in the
// environment. Names outside the mapping are reported as absent.
func (m ConfigMapping) Get(name string) (string, bool) {
	i := m.index(name)
	if i < 0 || m.entries[i].Value == nil {
		return "", false
	}

	return *m.entries[i].Value, true
}

// Has reports whether name is one of the mapping's keys.
func (m ConfigMapping) Has(name string) bool {
	return m.index(name) >= 0
}

// Keys returns the mapping's keys in insertion order.
func (m ConfigMapping) Keys() []string {
	keys := make([]string, 0, len(m.entries))
	for _, e := range m.entries {
		keys = append(keys, e.Name)
	}

	return keys
}

// Entries returns a copy of the mapping's entries.
func (m ConfigMapping) Entries() []ConfigEntry {
	return append([]ConfigEntry(nil), m.entries...)
}

// Len returns the number of keys.
func (m ConfigMapping) Len() int {
	return len(m.entries)
}

// Resolved returns how many keys carry a value.
func (m ConfigMapping) Resolved() int {
	n := 0
	for _, e := range m.entries {
		if e.Present() {
			n++
		}
	}

	return n
}

// MarshalJSON encodes the mapping as a JSON object in insertion order.
// Absent values are encoded as null; keys are never omitted.
func (m ConfigMapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, e := range m.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(e.Name); err != nil {
			return nil, err
		}
		trimNewline(&buf)
		buf.WriteByte(':')

		if e.Value == nil {
			buf.WriteString("null")
			continue
		}
		if err := enc.Encode(*e.Value); err != nil {
			return nil, err
		}
		trimNewline(&buf)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func (m ConfigMapping) index(name string) int {
	for i, e := range m.entries {
		if e.Name == name {
			return i
		}
	}

	return -1
}

// json.Encoder terminates every value with '\n'.
func trimNewline(buf *bytes.Buffer) {
	if n := buf.Len(); n > 0 && buf.Bytes()[n-1] == '\n' {
		buf.Truncate(n - 1)
	}
}
