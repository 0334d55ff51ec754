// Package materializer runs the config generation pipeline:
//
//	Start → EnvironmentLoaded → MappingBuilt → ArtifactSerialized → ArtifactWritten → Done
//
// The override file is merged into the environment, the recognized names are
// selected, the mapping is rendered as a global assignment and the result is
// written to the output path. Only the final write can fail the run.
package materializer
