package queries

import (
	"errors"
	"time"

	"deliverychecker/internal/core/domain/model/kernel"
	"deliverychecker/internal/pkg/errs"
	"deliverychecker/internal/pkg/guard"
)

const (
	MinRecentChecksLimit     = 1
	MaxRecentChecksLimit     = 100
	DefaultRecentChecksLimit = 20
)

var (
	ErrGetRecentChecksQueryIsNotConstructed = errors.New(
		"GetRecentChecksQuery must be created via NewGetRecentChecksQuery constructor",
	)
)

// GetRecentChecksQuery lists the newest recorded checks.
type GetRecentChecksQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetRecentChecksQuery accepts a limit between MinRecentChecksLimit and
// MaxRecentChecksLimit inclusive.
func NewGetRecentChecksQuery(limit int) (GetRecentChecksQuery, error) {
	if limit < MinRecentChecksLimit || limit > MaxRecentChecksLimit {
		return GetRecentChecksQuery{}, errs.NewValueIsOutOfRangeError(
			"limit", limit, MinRecentChecksLimit, MaxRecentChecksLimit)
	}
	return GetRecentChecksQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetRecentChecksQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentChecksQueryIsNotConstructed)
}

func (q GetRecentChecksQuery) Limit() int {
	return q.limit
}

// GetRecentChecksQueryResponse summarises one check without its inputs or steps.
type GetRecentChecksQueryResponse struct {
	ID        kernel.UUID
	Status    string
	ErrorCode string
	CreatedAt time.Time
}
