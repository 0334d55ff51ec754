// Package loader merges a local dotenv-style override file (".env.local" by
// default) into an [environment.Provider].
//
// Variables already present in the provider always win: the loader only
// fills in names that are absent. A missing, unreadable, or partly malformed
// override file never fails the run.
package loader
