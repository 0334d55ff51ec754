// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings printed by the
// generator CLI. Keeping them in one place ensures consistent wording between
// the command and its tests.
package app

const (
	// MsgArtifactGenerated is the confirmation printed on stdout after the
	// artifact has been written. The verb is the artifact path.
	MsgArtifactGenerated = "%s generated successfully"

	// MsgArtifactNotGenerated prefixes the diagnostic printed on stderr when
	// the run fails.
	MsgArtifactNotGenerated = "error generating config"

	// MsgInvalidConfiguration prefixes the diagnostic printed on stderr when
	// the generator configuration cannot be loaded.
	MsgInvalidConfiguration = "invalid generator configuration"
)
