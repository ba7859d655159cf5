// Package guard detects domain objects and commands that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in value objects, commands and queries. Its zero value
// is "not constructed", so a struct literal that skips the constructor fails Validate.
//
// Example:
//
//	var ErrStatusQueryNotConstructed = errors.New("query must be created via its constructor")
//
//	type StatusQuery struct {
//	    email kernel.Email
//	    guard guard.ConstructorGuard
//	}
//
//	func (q StatusQuery) Validate() error {
//	    return q.guard.Validate(ErrStatusQueryNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard, otherwise validationError
// (or ErrDefaultConstructorGuard when validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
