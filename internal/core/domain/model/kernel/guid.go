package kernel

import (
	"fmt"

	"tradingcore/internal/pkg/errs"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// ErrGUIDIsNotConstructed indicates that a GUID was not properly initialized
// through one of the constructor functions. This error is returned when
// validating a zero-value (nil) GUID.
var ErrGUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"GUID must be created via NewGUID, GUIDFrom, GUIDFromString, or GUIDFromBytes")

// GUID is a value object wrapping a 128-bit universally-unique value, used as
// a collision-resistant identity token for messages and events. It wraps the
// github.com/google/uuid implementation: the wrapper only stores and compares
// an already-generated value, it never generates or mutates one itself.
// Structural well-formedness is validated at construction; statistical
// uniqueness is the responsibility of the external generator.
//
// The zero value of GUID is the nil UUID, which is invalid and fails
// Validate. GUID is immutable, usable as a map key, and safe for concurrent
// use.
//
// Example usage:
//
//	// Wrap a freshly generated value
//	id := kernel.NewGUID()
//
//	// Reconstruct from the canonical textual form
//	id, err := kernel.GUIDFromString("2d89666b-1a1e-4a75-b193-4eb3b454c757")
//	if err != nil {
//	    // handle error
//	}
type GUID struct {
	id uuid.UUID
}

// NewGUID wraps a freshly generated random (version 4) UUID.
// Generation is delegated entirely to the external generator; the wrapper
// adds no entropy of its own.
func NewGUID() GUID {
	return GUIDFrom(uuid.New())
}

// GUIDFrom wraps an already-generated 128-bit value.
// It never fails: any well-formed uuid.UUID is accepted. Note that wrapping
// uuid.Nil produces a GUID that fails Validate, since the nil value is
// indistinguishable from an unconstructed zero value.
func GUIDFrom(id uuid.UUID) GUID {
	return GUID{id: id}
}

// GUIDFromString parses a GUID from its canonical textual form:
// 32 hexadecimal digits, optionally grouped 8-4-4-4-12 with dashes.
// Returns a validation error for malformed input that cannot parse into
// 128 bits, and for the nil UUID text.
func GUIDFromString(s string) (GUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return GUID{}, errs.NewValueIsInvalidErrorWithCause("guid", err)
	}

	newGUID := GUID{id: id}
	if err = newGUID.Validate(); err != nil {
		return GUID{}, err
	}

	return newGUID, nil
}

// GUIDFromBytes creates a GUID from a byte slice.
// The slice must be exactly 16 bytes long. Returns a validation error for a
// slice of any other length, and for the all-zero (nil) value.
func GUIDFromBytes(b []byte) (GUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return GUID{}, errs.NewValueIsInvalidErrorWithCause("guid", err)
	}

	newGUID := GUID{id: id}
	if err = newGUID.Validate(); err != nil {
		return GUID{}, err
	}

	return newGUID, nil
}

// String returns the canonical textual rendering of the GUID:
// "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" with lowercase hexadecimal digits.
// The rendering is stable and round-trips through GUIDFromString.
func (g GUID) String() string {
	return g.id.String()
}

// UUID returns the underlying 128-bit value.
func (g GUID) UUID() uuid.UUID {
	return g.id
}

// IsEqual compares two GUIDs for equality.
// Returns true iff the underlying 128-bit values are bit-identical.
func (g GUID) IsEqual(other GUID) bool {
	return g.id == other.id
}

// Hash returns a deterministic hash of the 128-bit value.
// Equal GUIDs always hash to the same value; the converse is not guaranteed.
func (g GUID) Hash() uint64 {
	return xxhash.Sum64(g.id[:])
}

// Debug returns a type-tagged rendering for debugging and logs.
// The format is not a stability contract; use String for the canonical form.
func (g GUID) Debug() string {
	return fmt.Sprintf("GUID(%s)", g.id)
}

// Validate checks if the GUID is properly constructed.
// Returns ErrGUIDIsNotConstructed for the nil (all-zero) value.
func (g GUID) Validate() error {
	if g.id == uuid.Nil {
		return ErrGUIDIsNotConstructed
	}
	return nil
}
