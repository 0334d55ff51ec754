// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package environment

import "maps"

// MapProvider is an in-memory [Provider].
type MapProvider struct {
	vars map[string]string
}

// NewMapProvider returns a MapProvider seeded with a copy of vars.
// A nil map yields an empty environment.
func NewMapProvider(vars map[string]string) *MapProvider {
	p := &MapProvider{vars: make(map[string]string, len(vars))}
	maps.Copy(p.vars, vars)

	return p
}

// Get returns the stored value of name.
func (p *MapProvider) Get(name string) (string, bool) {
	v, ok := p.vars[name]
	return v, ok
}

// SetIfAbsent stores value under name if name has no value yet.
func (p *MapProvider) SetIfAbsent(name, value string) bool {
	if _, ok := p.vars[name]; ok {
		return false
	}

	p.vars[name] = value
	return true
}

// Snapshot returns a copy of the stored variables.
func (p *MapProvider) Snapshot() map[string]string {
	return maps.Clone(p.vars)
}
