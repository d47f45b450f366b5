package route

import (
	"fmt"

	"deliverychecker/internal/pkg/errs"
)

// Action is what happens at a waypoint.
type Action int

const (
	// Unknown is the zero value and never appears in a valid step.
	Unknown Action = iota

	// None means nothing is collected or handed over at the waypoint.
	None

	// Pickup means at least one delivery is collected at the waypoint.
	// It wins over Dropoff when an address is both.
	Pickup

	// Dropoff means at least one delivery is handed over at the waypoint.
	Dropoff
)

func getActionStrings() map[Action]string {
	return map[Action]string{
		Unknown: "unknown",
		None:    "none",
		Pickup:  "pickup",
		Dropoff: "dropoff",
	}
}

// Validate rejects Unknown and out-of-range values.
func (a Action) Validate() error {
	if _, ok := getActionStrings()[a]; !ok || a == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("action is invalid", fmt.Errorf("%d is not a valid action", a))
	}
	return nil
}

// String returns "pickup", "dropoff", "none", or "unknown" for anything else.
func (a Action) String() string {
	if s, ok := getActionStrings()[a]; ok {
		return s
	}
	return "unknown"
}
