package services

import (
	"deliverychecker/internal/core/domain/model/kernel"
	"deliverychecker/internal/core/domain/model/route"
	"deliverychecker/internal/pkg/ordered"
)

// DeliveryValidator checks a set of deliveries against a given path and, when
// the path serves every delivery in order, annotates each waypoint with the
// action performed there.
//
// Business rules:
//   - Every pickup and dropoff address must appear in the path
//   - A dropoff must not be visited before its pickup; equal positions are fine
//   - A waypoint that is both a pickup and a dropoff is annotated as Pickup
//
// Order dependent rules:
//   - When an address repeats in the path, its last occurrence is its position
//   - When several deliveries share a pickup, only the last one's dropoff is
//     checked for ordering
//
// DeliveryValidator holds no state and is safe for concurrent use.
//
// Example usage:
//
//	validator := services.NewDeliveryValidator()
//	steps, err := validator.Validate(deliveries, path)
//	var missing *services.AddressesNotInPathError
//	if errors.As(err, &missing) {
//	    // missing.Addresses lists every address the path never visits
//	}
type DeliveryValidator struct{}

func NewDeliveryValidator() DeliveryValidator {
	return DeliveryValidator{}
}

// Validate runs the checks in order and stops at the first failing one.
//
// Returns:
//   - the annotated steps, one per path element in path order
//   - route.ErrInvalidDeliveryFormat or route.ErrInvalidAddressFormat for
//     values that were not built through their constructors
//   - *AddressesNotInPathError listing all missing addresses
//   - *DropoffBeforePickupError for the first out-of-order delivery
func (v DeliveryValidator) Validate(deliveries []route.Delivery, path route.Path) ([]route.Step, error) {
	for _, d := range deliveries {
		if err := d.Validate(); err != nil {
			return nil, route.ErrInvalidDeliveryFormat
		}
	}
	if err := path.Validate(); err != nil {
		return nil, route.ErrInvalidAddressFormat
	}

	pickups := ordered.NewSet[kernel.Address](len(deliveries))
	dropoffs := ordered.NewSet[kernel.Address](len(deliveries))
	dropoffByPickup := ordered.NewMap[kernel.Address, kernel.Address](len(deliveries))
	for _, d := range deliveries {
		pickups.Add(d.Pickup())
		dropoffs.Add(d.Dropoff())
		dropoffByPickup.Set(d.Pickup(), d.Dropoff())
	}

	if missing := v.missingAddresses(path, pickups, dropoffs); len(missing) > 0 {
		return nil, NewAddressesNotInPathError(missing)
	}

	positions := make(map[kernel.Address]int, len(path))
	for i, a := range path {
		positions[a] = i
	}

	for pickup, dropoff := range dropoffByPickup.All() {
		if positions[dropoff] < positions[pickup] {
			return nil, NewDropoffBeforePickupError(pickup, dropoff)
		}
	}

	return v.annotate(path, pickups, dropoffs)
}

func (v DeliveryValidator) missingAddresses(
	path route.Path,
	pickups *ordered.Set[kernel.Address],
	dropoffs *ordered.Set[kernel.Address],
) []kernel.Address {
	visited := make(map[kernel.Address]struct{}, len(path))
	for _, a := range path {
		visited[a] = struct{}{}
	}

	var missing []kernel.Address
	for _, group := range []*ordered.Set[kernel.Address]{pickups, dropoffs} {
		for a := range group.All() {
			if _, ok := visited[a]; !ok {
				missing = append(missing, a)
			}
		}
	}
	return missing
}

func (v DeliveryValidator) annotate(
	path route.Path,
	pickups *ordered.Set[kernel.Address],
	dropoffs *ordered.Set[kernel.Address],
) ([]route.Step, error) {
	steps := make([]route.Step, 0, len(path))
	for _, a := range path {
		action := route.None
		switch {
		case pickups.Has(a):
			action = route.Pickup
		case dropoffs.Has(a):
			action = route.Dropoff
		}

		step, err := route.NewStep(a, action)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}
