// Package guard implements the constructor guard pattern for commands, queries,
// and value objects. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable, so code paths can insist on construction through the
// designated constructor function.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is passed
// as the validation error. Validation always fails with a meaningful message
// even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value is "not constructed" and fails Validate.
//
// Example:
//
//	var ErrCmdIsNotConstructed = errors.New("Cmd must be created via NewCmd")
//
//	type Cmd struct {
//	    code  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewCmd(code string) (Cmd, error) {
//	    if code == "" {
//	        return Cmd{}, errors.New("code is required")
//	    }
//	    return Cmd{code: code, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c Cmd) Validate() error {
//	    return c.guard.Validate(ErrCmdIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its holder as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the holder was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
