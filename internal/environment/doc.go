// Package environment abstracts the ambient process environment behind the
// [Provider] interface so that the override loader and the selector can be
// exercised without touching the real process table.
//
// Two implementations are provided:
//   - [OSProvider] reads and writes the real process environment;
//   - [MapProvider] keeps variables in memory.
package environment
