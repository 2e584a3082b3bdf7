// Package kernel provides the core value-type primitives of the trading core.
// It implements the fundamental identity and string building blocks that the
// rest of the domain model is assembled from.
//
// The package includes:
//   - ValidString: a validated, immutable string value object with value
//     equality, total lexicographic ordering, and consistent hashing
//   - GUID: an immutable wrapper around a 128-bit universally-unique value
//     with value equality and consistent hashing
//   - Ordering: the result type of ValidString comparisons
//
// Both value types are immutable after construction, usable as map keys, and
// safe to share across concurrent readers without synchronization. Invalid
// constructions never produce an instance: constructors validate their input
// and return a validation error from the errs package, and the zero value of
// each type fails Validate.
package kernel
