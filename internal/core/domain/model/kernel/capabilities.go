package kernel

// Equatable is the capability of a value object to compare itself with
// another value of the same type. Implementations must provide an
// equivalence relation: reflexive, symmetric, and transitive.
type Equatable[T any] interface {
	IsEqual(other T) bool
}

// Hashable is the capability of a value object to produce a deterministic
// hash consistent with its equality: IsEqual(a, b) implies
// a.Hash() == b.Hash(). The converse is not required.
type Hashable[T any] interface {
	Equatable[T]

	Hash() uint64
}

// Comparable is the capability of a value object to totally order itself
// against another value of the same type. Compare must agree with IsEqual:
// it returns Equal exactly when IsEqual returns true.
type Comparable[T any] interface {
	Equatable[T]

	Compare(other T) Ordering
}

var (
	_ Comparable[ValidString] = ValidString{}
	_ Hashable[ValidString]   = ValidString{}
	_ Hashable[GUID]          = GUID{}
)
