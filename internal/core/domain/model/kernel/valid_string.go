package kernel

import (
	"fmt"
	"strings"

	"tradingcore/internal/pkg/errs"
	"tradingcore/internal/pkg/guard"

	"github.com/cespare/xxhash/v2"
)

// ErrValidStringIsNotConstructed indicates that a ValidString was not properly
// initialized through its constructor. This error is returned when validating
// a zero-value ValidString.
var ErrValidStringIsNotConstructed = errs.NewValueIsRequiredError(
	"ValidString must be created via NewValidString constructor")

// ValidString is a value object that wraps a non-empty, non-whitespace-only
// text payload. The payload is stored exactly as provided: no trimming and no
// case normalization. ValidString provides value equality, a total
// lexicographic ordering consistent with that equality, and a deterministic
// hash, which makes it suitable as a map key and as a sortable log or report
// field.
//
// The zero value of ValidString is invalid and must be constructed using
// NewValidString. Instances are immutable and safe for concurrent use.
//
// Example usage:
//
//	s, err := kernel.NewValidString("AUD/USD")
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(s.Value()) // "AUD/USD"
type ValidString struct { //nolint:recvcheck //using for validation
	value string

	guard guard.ConstructorGuard
}

// NewValidString creates a ValidString from the given text.
// Returns a validation error when the text is empty or contains only
// whitespace; on success the text is stored unchanged.
func NewValidString(value string) (ValidString, error) {
	validString := ValidString{
		guard: guard.NewConstructorGuard(),
	}

	if err := validString.setValue(value); err != nil {
		return ValidString{}, err
	}

	return validString, nil
}

// Validate checks that the ValidString was created through its constructor.
// Returns ErrValidStringIsNotConstructed for a zero value.
func (s ValidString) Validate() error {
	return s.guard.Validate(ErrValidStringIsNotConstructed)
}

// Value returns the wrapped text verbatim.
func (s ValidString) Value() string {
	return s.value
}

// String returns the wrapped text verbatim.
// This method implements the fmt.Stringer interface.
func (s ValidString) String() string {
	return s.value
}

// IsEqual compares two ValidStrings for equality.
// Two instances are equal iff their payloads match codepoint for codepoint.
func (s ValidString) IsEqual(other ValidString) bool {
	return s.value == other.value
}

// Compare orders two ValidStrings lexicographically by their payload bytes.
// The result is a total order consistent with IsEqual: Compare returns Equal
// exactly when IsEqual returns true.
func (s ValidString) Compare(other ValidString) Ordering {
	return Ordering(strings.Compare(s.value, other.value))
}

// Less reports whether s sorts strictly before other.
func (s ValidString) Less(other ValidString) bool {
	return s.Compare(other) == Less
}

// LessOrEqual reports whether s sorts before or equal to other.
func (s ValidString) LessOrEqual(other ValidString) bool {
	return s.Compare(other) != Greater
}

// Greater reports whether s sorts strictly after other.
func (s ValidString) Greater(other ValidString) bool {
	return s.Compare(other) == Greater
}

// GreaterOrEqual reports whether s sorts after or equal to other.
func (s ValidString) GreaterOrEqual(other ValidString) bool {
	return s.Compare(other) != Less
}

// Hash returns a deterministic hash of the payload.
// Equal ValidStrings always hash to the same value; the converse is not
// guaranteed. The hash is derived only from the immutable payload, so it is
// stable for the lifetime of the instance.
func (s ValidString) Hash() uint64 {
	return xxhash.Sum64String(s.value)
}

// Debug returns a type-tagged rendering for debugging and logs.
// The format is not a stability contract and takes no part in equality,
// ordering, or hashing; use Value or String for the payload itself.
func (s ValidString) Debug() string {
	return fmt.Sprintf("ValidString(%s)", s.value)
}

// setValue stores the payload with validation.
// Note: pointer receiver on a private setter enables self-encapsulated
// validation during construction, matching the constructor pattern used
// across the domain model.
func (s *ValidString) setValue(value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError("value must not be empty")
	}
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsInvalidError("value must not be whitespace-only")
	}

	s.value = value
	return nil
}
