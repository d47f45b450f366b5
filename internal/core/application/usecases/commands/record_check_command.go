package commands

import (
	"errors"

	"deliverychecker/internal/core/domain/model/kernel"
	"deliverychecker/internal/pkg/guard"
)

var (
	ErrRecordCheckCommandIsNotConstructed = errors.New(
		"RecordCheckCommand must be created via NewRecordCheckCommand constructor",
	)
)

// RecordCheckCommand stores a finished check in the history.
// deliveries and path are the raw inputs exactly as received.
type RecordCheckCommand struct { //nolint:recvcheck //using for validation
	checkID    kernel.UUID
	deliveries string
	path       string
	result     Result

	guard guard.ConstructorGuard
}

func NewRecordCheckCommand(checkID kernel.UUID, deliveries, path string, result Result) (RecordCheckCommand, error) {
	cmd := RecordCheckCommand{
		deliveries: deliveries,
		path:       path,
		result:     result,
		guard:      guard.NewConstructorGuard(),
	}

	if err := cmd.setCheckID(checkID); err != nil {
		return RecordCheckCommand{}, err
	}

	return cmd, nil
}

func (c RecordCheckCommand) Validate() error {
	return c.guard.Validate(ErrRecordCheckCommandIsNotConstructed)
}

func (c RecordCheckCommand) CheckID() kernel.UUID {
	return c.checkID
}

func (c RecordCheckCommand) Deliveries() string {
	return c.deliveries
}

func (c RecordCheckCommand) Path() string {
	return c.path
}

func (c RecordCheckCommand) Result() Result {
	return c.result
}

func (c *RecordCheckCommand) setCheckID(checkID kernel.UUID) error {
	if err := checkID.Validate(); err != nil {
		return err
	}

	c.checkID = checkID
	return nil
}
