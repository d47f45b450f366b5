package check

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"deliverychecker/internal/core/domain/model/kernel"
	"deliverychecker/internal/core/domain/model/route"
	"deliverychecker/internal/pkg/errs"
)

var (
	// ErrCheckIsNotConstructed is returned when a Check was not created through
	// one of the package constructors.
	ErrCheckIsNotConstructed = errors.New("Check must be created via NewSucceededCheck, NewFailedCheck or RestoreCheck")
)

// Check is a recorded route check.
//
// Invariants:
//   - id is a valid UUID and createdAt is set
//   - a Succeeded check has steps and no error code or message
//   - a Failed check has an error code and no steps
type Check struct {
	id         kernel.UUID
	deliveries string
	path       string
	status     Status
	steps      []route.Step
	errorCode  string
	message    string
	createdAt  time.Time

	isConstructed bool
}

// NewSucceededCheck records a check whose path serves every delivery.
// deliveries and path are the raw inputs exactly as received.
func NewSucceededCheck(
	id kernel.UUID,
	deliveries, path string,
	steps []route.Step,
	createdAt time.Time,
) (*Check, error) {
	return RestoreCheck(id, deliveries, path, Succeeded, steps, "", "", createdAt)
}

// NewFailedCheck records a check that ended with an error result.
func NewFailedCheck(
	id kernel.UUID,
	deliveries, path string,
	errorCode, message string,
	createdAt time.Time,
) (*Check, error) {
	return RestoreCheck(id, deliveries, path, Failed, nil, errorCode, message, createdAt)
}

// RestoreCheck rebuilds a Check from persisted state, enforcing the same
// invariants as the constructors.
func RestoreCheck(
	id kernel.UUID,
	deliveries, path string,
	status Status,
	steps []route.Step,
	errorCode, message string,
	createdAt time.Time,
) (*Check, error) {
	c := &Check{
		deliveries:    deliveries,
		path:          path,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setCreatedAt(createdAt),
		c.setOutcome(status, steps, errorCode, message),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Check) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCheckIsNotConstructed
	}
	return nil
}

func (c *Check) ID() kernel.UUID {
	return c.id
}

// Deliveries returns the raw deliveries input.
func (c *Check) Deliveries() string {
	return c.deliveries
}

// Path returns the raw path input.
func (c *Check) Path() string {
	return c.path
}

func (c *Check) Status() Status {
	return c.status
}

// Steps returns a copy of the annotated steps. Empty for failed checks.
func (c *Check) Steps() []route.Step {
	return slices.Clone(c.steps)
}

func (c *Check) ErrorCode() string {
	return c.errorCode
}

func (c *Check) ErrorMessage() string {
	return c.message
}

func (c *Check) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Check) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Check) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	c.createdAt = createdAt.UTC()
	return nil
}

func (c *Check) setOutcome(status Status, steps []route.Step, errorCode, message string) error {
	if err := status.Validate(); err != nil {
		return err
	}

	switch status {
	case Succeeded:
		if errorCode != "" || message != "" {
			return errs.NewValueIsInvalidErrorWithCause(
				"outcome", fmt.Errorf("%s check cannot carry an error", status))
		}
		for i, s := range steps {
			if err := errors.Join(s.Address().Validate(), s.Action().Validate()); err != nil {
				return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("steps[%d]", i), err)
			}
		}
		c.steps = slices.Clone(steps)
	case Failed:
		if errorCode == "" {
			return errs.NewValueIsRequiredError("errorCode")
		}
		if len(steps) > 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"outcome", fmt.Errorf("%s check cannot carry steps", status))
		}
		c.errorCode = errorCode
		c.message = message
	case Unknown:
	}

	c.status = status
	return nil
}
