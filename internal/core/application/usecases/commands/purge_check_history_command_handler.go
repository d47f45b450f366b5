package commands

import (
	"context"
	"time"
)

// PurgeCheckHistoryCommandHandler deletes every check created before
// now minus the command's retention period, in one transaction.
type PurgeCheckHistoryCommandHandler struct {
	uowFactory CheckUoWFactory
}

func NewPurgeCheckHistoryCommandHandler(uowFactory CheckUoWFactory) PurgeCheckHistoryCommandHandler {
	return PurgeCheckHistoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of deleted checks.
func (h PurgeCheckHistoryCommandHandler) Handle(ctx context.Context, cmd PurgeCheckHistoryCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-cmd.OlderThan())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deleted, err := uow.CheckRepository().DeleteCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
