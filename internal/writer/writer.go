// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package writer persists the generated artifact to disk.
package writer

import (
	"errors"
	"fmt"
	"os"
)

// artifactPerm is applied when the artifact does not exist yet.
const artifactPerm = 0o644

// Write stores content at path, creating the file or truncating an existing
// one, using a single write call. The file handle is closed on every path.
//
// Errors wrap [ErrWriteArtifact] and name path.
func Write(path string, content []byte) (err error) {
	if path == "" {
		return fmt.Errorf("%w: %w", ErrWriteArtifact, ErrEmptyPath)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, artifactPerm)
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteArtifact, path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("%w %q: %w", ErrWriteArtifact, path, closeErr))
		}
	}()

	if _, err = f.Write(content); err != nil {
		return fmt.Errorf("%w %q: %w", ErrWriteArtifact, path, err)
	}

	return nil
}
