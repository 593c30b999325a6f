// Package guard provides a small value object used to enforce that domain
// objects are only created through their constructors. A zero-value struct
// embedding a ConstructorGuard fails validation, which makes it impossible to
// smuggle an unvalidated aggregate into the rest of the system.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no custom error
// is supplied for an object that bypassed its constructor.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as having been built through a constructor.
// The zero value is invalid; NewConstructorGuard produces a valid guard.
// ConstructorGuard is immutable and safe for concurrent use.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard in the constructed state.
// Domain constructors embed the result into the object they return.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value
// guard it returns notConstructedErr, or ErrDefaultConstructorGuard when
// notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}

	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}

	return notConstructedErr
}
