package commands

import (
	"errors"
	"time"

	"deliverychecker/internal/pkg/guard"
)

var (
	ErrPurgeCheckHistoryCommandIsNotConstructed = errors.New(
		"PurgeCheckHistoryCommand must be created via NewPurgeCheckHistoryCommand constructor",
	)
	ErrRetentionIsInvalid = errors.New("retention must be greater than 0")
)

// PurgeCheckHistoryCommand removes checks older than the retention period.
type PurgeCheckHistoryCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

func NewPurgeCheckHistoryCommand(olderThan time.Duration) (PurgeCheckHistoryCommand, error) {
	cmd := PurgeCheckHistoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOlderThan(olderThan); err != nil {
		return PurgeCheckHistoryCommand{}, err
	}

	return cmd, nil
}

func (c PurgeCheckHistoryCommand) Validate() error {
	return c.guard.Validate(ErrPurgeCheckHistoryCommandIsNotConstructed)
}

// OlderThan returns the retention period.
func (c PurgeCheckHistoryCommand) OlderThan() time.Duration {
	return c.olderThan
}

func (c *PurgeCheckHistoryCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan <= 0 {
		return ErrRetentionIsInvalid
	}

	c.olderThan = olderThan
	return nil
}
