// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package environment

import "os"

// OSProvider implements [Provider] on top of the process environment.
type OSProvider struct{}

// NewOSProvider constructs a [Provider] backed by os.LookupEnv and os.Setenv.
func NewOSProvider() *OSProvider {
	return &OSProvider{}
}

// Get returns the value of the environment variable name.
func (p *OSProvider) Get(name string) (string, bool) {
	return os.LookupEnv(name)
}

// SetIfAbsent sets name to value unless the variable is already present.
// A failed os.Setenv (e.g. a name containing '=') is reported as not adopted.
func (p *OSProvider) SetIfAbsent(name, value string) bool {
	if _, ok := os.LookupEnv(name); ok {
		return false
	}

	return os.Setenv(name, value) == nil
}
