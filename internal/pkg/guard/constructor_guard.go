// Package guard implements a defensive programming pattern that ensures value
// objects are only created through their designated constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is the default error returned by ConstructorGuard.Validate()
// when a nil error is passed as the validation error. This ensures that validation
// always fails with a meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether a struct was initialized through its
// constructor or created as a zero value. Embed it in a value object and set
// it with NewConstructorGuard inside the constructor; the zero value of the
// owning struct then fails Validate, so invalid constructions never produce a
// usable instance.
//
// Example usage:
//
//	type ValidString struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewValidString(value string) (ValidString, error) {
//	    if value == "" {
//	        return ValidString{}, errs.NewValueIsRequiredError("value")
//	    }
//	    return ValidString{
//	        value: value,
//	        guard: guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (s ValidString) Validate() error {
//	    return s.guard.Validate(ErrValidStringIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. Call it in the constructor of every guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. Returns nil for a constructed object, validationError for a
// zero value, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
