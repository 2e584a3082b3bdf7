// Package identifiers provides the identity types used by messages and the
// data cache. Each identifier is a thin, immutable wrapper over a
// kernel.ValidString, inheriting its validation (non-empty, non-whitespace),
// value equality, ordering, and hashing.
//
// The package deliberately contains no identifier generation or registry
// logic; identifiers are constructed from caller-supplied text.
package identifiers
