package commands

import (
	"context"
	"log/slog"

	"deliverychecker/internal/core/domain/services"
)

// CheckRouteCommandHandler runs the delivery validator and turns its outcome
// into a Result. It never fails: every problem becomes an error Result.
type CheckRouteCommandHandler struct {
	validator services.DeliveryValidator
	logger    *slog.Logger
}

func NewCheckRouteCommandHandler(logger *slog.Logger) CheckRouteCommandHandler {
	return CheckRouteCommandHandler{
		validator: services.NewDeliveryValidator(),
		logger:    logger.With("component", "check_route_handler"),
	}
}

func (h CheckRouteCommandHandler) Handle(ctx context.Context, cmd CheckRouteCommand) Result {
	if err := cmd.Validate(); err != nil {
		return NewResultFromError(err)
	}

	steps, err := h.validator.Validate(cmd.Deliveries(), cmd.Path())
	if err != nil {
		result := NewResultFromError(err)
		h.logger.DebugContext(ctx, "Route rejected",
			"code", result.Code(), "deliveries", len(cmd.deliveries), "path", len(cmd.path))
		return result
	}

	h.logger.DebugContext(ctx, "Route accepted", "deliveries", len(cmd.deliveries), "path", len(cmd.path))
	return NewSuccessResult(steps)
}
