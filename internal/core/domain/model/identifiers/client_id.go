package identifiers

import (
	"tradingcore/internal/core/domain/model/kernel"
	"tradingcore/internal/pkg/errs"
)

var _ kernel.Hashable[ClientID] = ClientID{}

// ErrClientIDIsNotConstructed is returned when validating a zero-value ClientID.
var ErrClientIDIsNotConstructed = errs.NewValueIsRequiredError(
	"ClientID must be created via NewClientID constructor")

// ClientID identifies a data client within the trading core.
// It is an immutable value object; the zero value is invalid.
//
// Example:
//
//	clientID, err := identifiers.NewClientID("BINANCE")
//	if err != nil {
//	    // handle validation error
//	}
type ClientID struct {
	name kernel.ValidString
}

// NewClientID creates a ClientID from the given text.
// Returns a validation error when the text is empty or whitespace-only.
func NewClientID(value string) (ClientID, error) {
	name, err := kernel.NewValidString(value)
	if err != nil {
		return ClientID{}, err
	}

	return ClientID{name: name}, nil
}

// Validate checks that the ClientID was created through its constructor.
func (c ClientID) Validate() error {
	if err := c.name.Validate(); err != nil {
		return ErrClientIDIsNotConstructed
	}
	return nil
}

// Value returns the identifier text verbatim.
func (c ClientID) Value() string {
	return c.name.Value()
}

// String returns the identifier text verbatim.
func (c ClientID) String() string {
	return c.name.String()
}

// IsEqual compares two ClientIDs for equality on their text.
func (c ClientID) IsEqual(other ClientID) bool {
	return c.name.IsEqual(other.name)
}

// Hash returns a deterministic hash consistent with IsEqual.
func (c ClientID) Hash() uint64 {
	return c.name.Hash()
}
