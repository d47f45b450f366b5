// Package ports defines the persistence contracts of the check history.
// Adapters implement them; the application layer depends only on these
// interfaces.
package ports

import (
	"context"
	"time"

	"deliverychecker/internal/core/domain/model/check"
	"deliverychecker/internal/core/domain/model/kernel"
)

// CheckRepository stores recorded route checks.
type CheckRepository interface {
	// Add persists a new check. The check must be valid and its ID unused.
	Add(ctx context.Context, aggregate *check.Check) error

	// Get retrieves a check by ID. Returns errs.ObjectNotFoundError when no
	// check has that ID.
	Get(ctx context.Context, id kernel.UUID) (*check.Check, error)

	// DeleteCreatedBefore removes every check created strictly before cutoff
	// and reports how many were removed.
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
