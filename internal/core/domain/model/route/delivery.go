package route

import (
	"errors"

	"deliverychecker/internal/core/domain/model/kernel"
	"deliverychecker/internal/pkg/errs"
	"deliverychecker/internal/pkg/guard"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a zero value Delivery is used.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
)

// Delivery is an ordered pickup/dropoff pair. A parcel is collected at the
// pickup address and handed over at the dropoff address.
//
// Example:
//
//	d, err := route.NewDelivery(kernel.NewIntAddress(1), kernel.NewIntAddress(3))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(d) // 1 -> 3
type Delivery struct { //nolint:recvcheck //using for validation
	pickup  kernel.Address
	dropoff kernel.Address

	guard guard.ConstructorGuard
}

// NewDelivery creates a delivery from two constructed addresses.
// All validation failures are reported together.
func NewDelivery(pickup kernel.Address, dropoff kernel.Address) (Delivery, error) {
	d := Delivery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(d.setPickup(pickup), d.setDropoff(dropoff)); err != nil {
		return Delivery{}, err
	}

	return d, nil
}

// Validate returns ErrDeliveryIsNotConstructed for the zero value.
func (d Delivery) Validate() error {
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d Delivery) Pickup() kernel.Address {
	return d.pickup
}

func (d Delivery) Dropoff() kernel.Address {
	return d.dropoff
}

func (d Delivery) String() string {
	return d.pickup.String() + " -> " + d.dropoff.String()
}

func (d *Delivery) setPickup(pickup kernel.Address) error {
	if err := pickup.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickup", err)
	}

	d.pickup = pickup
	return nil
}

func (d *Delivery) setDropoff(dropoff kernel.Address) error {
	if err := dropoff.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("dropoff", err)
	}

	d.dropoff = dropoff
	return nil
}
