package commands

import (
	"errors"
	"fmt"
	"slices"

	"deliverychecker/internal/core/domain/model/route"
	"deliverychecker/internal/pkg/errs"
	"deliverychecker/internal/pkg/guard"
)

var (
	ErrCheckRouteCommandIsNotConstructed = errors.New(
		"CheckRouteCommand must be created via NewCheckRouteCommand constructor",
	)
)

// CheckRouteCommand asks whether a path serves a set of deliveries.
//
// Example:
//
//	cmd, err := NewCheckRouteCommand(deliveries, path)
//	if err != nil {
//	    return NewResultFromError(err)
//	}
//
//	handler := NewCheckRouteCommandHandler(logger)
//	result := handler.Handle(ctx, cmd)
//	fmt.Println(result.Status())
type CheckRouteCommand struct { //nolint:recvcheck //using for validation
	deliveries []route.Delivery
	path       route.Path

	guard guard.ConstructorGuard
}

// NewCheckRouteCommand copies its inputs, so later changes by the caller do not
// affect the command. Every delivery and path address must be constructed.
func NewCheckRouteCommand(deliveries []route.Delivery, path route.Path) (CheckRouteCommand, error) {
	cmd := CheckRouteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveries(deliveries),
		cmd.setPath(path),
	); err != nil {
		return CheckRouteCommand{}, err
	}

	return cmd, nil
}

// Validate returns ErrCheckRouteCommandIsNotConstructed for a zero value command.
func (c CheckRouteCommand) Validate() error {
	return c.guard.Validate(ErrCheckRouteCommandIsNotConstructed)
}

func (c CheckRouteCommand) Deliveries() []route.Delivery {
	return slices.Clone(c.deliveries)
}

func (c CheckRouteCommand) Path() route.Path {
	return slices.Clone(c.path)
}

func (c *CheckRouteCommand) setDeliveries(deliveries []route.Delivery) error {
	for i, d := range deliveries {
		if err := d.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("deliveries[%d]", i), err)
		}
	}

	c.deliveries = slices.Clone(deliveries)
	return nil
}

func (c *CheckRouteCommand) setPath(path route.Path) error {
	if err := path.Validate(); err != nil {
		return err
	}

	c.path = slices.Clone(path)
	return nil
}
