// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package environment

//go:generate mockgen -source=interfaces.go -destination=../mock/environment_provider_mock.go -package=mock

// Provider is the read/fill-in view of a process environment used by the
// override loader and the config selector.
//
// Implementations are not required to be safe for concurrent use; the
// generator runs a single pipeline per process.
type Provider interface {
	// Get returns the value of name and whether it is present. A variable
	// set to the empty string is present.
	Get(name string) (string, bool)

	// SetIfAbsent stores value under name only when name is not present.
	// It reports whether the value was adopted.
	SetIfAbsent(name, value string) bool
}
