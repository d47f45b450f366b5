// Package guard detects value objects and commands that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the
// caller passes a nil error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built through its designated constructor.
// Embed it in a value object and set it with NewConstructorGuard; a zero value
// struct then fails Validate.
//
// Example usage:
//
//	var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery")
//
//	type Delivery struct {
//	    pickup  kernel.Address
//	    dropoff kernel.Address
//	    guard   guard.ConstructorGuard
//	}
//
//	func (d Delivery) Validate() error {
//	    return d.guard.Validate(ErrDeliveryIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports the owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero value guard it
// returns validationError, or ErrDefaultConstructorGuard when that is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
