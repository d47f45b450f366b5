package route

import (
	"errors"

	"deliverychecker/internal/core/domain/model/kernel"
)

// Step is one path position annotated with its action.
type Step struct {
	address kernel.Address
	action  Action
}

// NewStep creates a step from a constructed address and a valid action.
func NewStep(address kernel.Address, action Action) (Step, error) {
	if err := errors.Join(address.Validate(), action.Validate()); err != nil {
		return Step{}, err
	}
	return Step{address: address, action: action}, nil
}

func (s Step) Address() kernel.Address {
	return s.address
}

func (s Step) Action() Action {
	return s.action
}

func (s Step) String() string {
	return s.address.String() + ":" + s.action.String()
}
