package services

import (
	"errors"
	"strings"

	"deliverychecker/internal/core/domain/model/kernel"
)

var (
	// ErrDeliveryAddressNotInPath is wrapped by AddressesNotInPathError.
	ErrDeliveryAddressNotInPath = errors.New("delivery address not in path")
	// ErrDeliveryDropoffBeforePickup is wrapped by DropoffBeforePickupError.
	ErrDeliveryDropoffBeforePickup = errors.New("delivery dropoff before pickup")
)

// AddressesNotInPathError lists every pickup and dropoff address that the path
// never visits: pickups first, then dropoffs, each in first-seen order.
type AddressesNotInPathError struct {
	Addresses []kernel.Address
}

func NewAddressesNotInPathError(addresses []kernel.Address) *AddressesNotInPathError {
	return &AddressesNotInPathError{Addresses: addresses}
}

func (e *AddressesNotInPathError) Error() string {
	names := make([]string, len(e.Addresses))
	for i, a := range e.Addresses {
		names[i] = a.String()
	}
	return "The following delivery addresses are not in the path: " + strings.Join(names, ", ")
}

func (e *AddressesNotInPathError) Unwrap() error {
	return ErrDeliveryAddressNotInPath
}

// DropoffBeforePickupError names the first delivery whose dropoff is visited
// before its pickup.
type DropoffBeforePickupError struct {
	Pickup  kernel.Address
	Dropoff kernel.Address
}

func NewDropoffBeforePickupError(pickup, dropoff kernel.Address) *DropoffBeforePickupError {
	return &DropoffBeforePickupError{Pickup: pickup, Dropoff: dropoff}
}

func (e *DropoffBeforePickupError) Error() string {
	return "Dropoff at address " + e.Dropoff.String() +
		" comes before pickup at address " + e.Pickup.String() + " in the path"
}

func (e *DropoffBeforePickupError) Unwrap() error {
	return ErrDeliveryDropoffBeforePickup
}
