// Package guard implements the constructor guard pattern used by commands and
// value objects to reject zero-value instances that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when no
// specific validation error is provided. This ensures that validation always
// fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures domain objects are only created through their
// designated constructor functions. Embedding a ConstructorGuard in a struct
// makes it possible to detect whether the struct was properly initialized or
// created as a zero value.
//
// Example usage:
//
//	var ErrCommandNotConstructed = errors.New("command must be created via its constructor")
//
//	type CloseCartonCommand struct {
//	    employeeID string
//	    guard      guard.ConstructorGuard
//	}
//
//	func NewCloseCartonCommand(employeeID string) (CloseCartonCommand, error) {
//	    if employeeID == "" {
//	        return CloseCartonCommand{}, errs.NewValueIsRequiredError("employeeID")
//	    }
//	    return CloseCartonCommand{employeeID: employeeID, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CloseCartonCommand) Validate() error {
//	    return c.guard.Validate(ErrCommandNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a ConstructorGuard that marks an object as
// properly constructed. Call it in the constructor of domain objects.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. It returns nil for constructed objects, the provided
// validationError for zero values, or ErrDefaultConstructorGuard when
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
