package identifiers

import (
	"tradingcore/internal/core/domain/model/kernel"
	"tradingcore/internal/pkg/errs"
)

var _ kernel.Hashable[TraderID] = TraderID{}

// ErrTraderIDIsNotConstructed is returned when validating a zero-value TraderID.
var ErrTraderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"TraderID must be created via NewTraderID constructor")

// TraderID identifies the owning trader instance. It is used as the log and
// key prefix of the data cache. Immutable; the zero value is invalid.
type TraderID struct {
	name kernel.ValidString
}

// NewTraderID creates a TraderID from the given text.
// Returns a validation error when the text is empty or whitespace-only.
func NewTraderID(value string) (TraderID, error) {
	name, err := kernel.NewValidString(value)
	if err != nil {
		return TraderID{}, err
	}

	return TraderID{name: name}, nil
}

// Validate checks that the TraderID was created through its constructor.
func (t TraderID) Validate() error {
	if err := t.name.Validate(); err != nil {
		return ErrTraderIDIsNotConstructed
	}
	return nil
}

// Value returns the identifier text verbatim.
func (t TraderID) Value() string {
	return t.name.Value()
}

// String returns the identifier text verbatim.
func (t TraderID) String() string {
	return t.name.String()
}

// IsEqual compares two TraderIDs for equality on their text.
func (t TraderID) IsEqual(other TraderID) bool {
	return t.name.IsEqual(other.name)
}

// Hash returns a deterministic hash consistent with IsEqual.
func (t TraderID) Hash() uint64 {
	return t.name.Hash()
}
