package commands

import (
	"context"
	"time"

	"deliverychecker/internal/core/domain/model/check"
)

// RecordCheckCommandHandler persists a check and its outcome.
//
// Example:
//
//	handler := NewRecordCheckCommandHandler(uowFactory)
//	cmd, _ := NewRecordCheckCommand(kernel.NewUUID(), rawDeliveries, rawPath, result)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("record check: %w", err)
//	}
type RecordCheckCommandHandler struct {
	uowFactory CheckUoWFactory
}

func NewRecordCheckCommandHandler(uowFactory CheckUoWFactory) RecordCheckCommandHandler {
	return RecordCheckCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RecordCheckCommandHandler) Handle(ctx context.Context, cmd RecordCheckCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	record, err := newCheckRecord(cmd, time.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CheckRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func newCheckRecord(cmd RecordCheckCommand, createdAt time.Time) (*check.Check, error) {
	result := cmd.Result()
	if result.IsSuccess() {
		return check.NewSucceededCheck(cmd.CheckID(), cmd.Deliveries(), cmd.Path(), result.Steps(), createdAt)
	}
	return check.NewFailedCheck(
		cmd.CheckID(), cmd.Deliveries(), cmd.Path(), string(result.Code()), result.Message(), createdAt)
}
