package queries

import (
	"errors"
	"time"

	"deliverychecker/internal/core/domain/model/kernel"
	"deliverychecker/internal/core/domain/model/route"
	"deliverychecker/internal/pkg/guard"
)

var (
	ErrGetCheckQueryIsNotConstructed = errors.New(
		"GetCheckQuery must be created via NewGetCheckQuery constructor",
	)
)

// GetCheckQuery retrieves one recorded check by ID.
//
// Example:
//
//	query, err := NewGetCheckQuery(checkID)
//	if err != nil {
//	    return err
//	}
//
//	response, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown check
//	}
type GetCheckQuery struct {
	checkID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCheckQuery(checkID kernel.UUID) (GetCheckQuery, error) {
	if err := checkID.Validate(); err != nil {
		return GetCheckQuery{}, err
	}
	return GetCheckQuery{checkID: checkID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCheckQuery) Validate() error {
	return q.guard.Validate(ErrGetCheckQueryIsNotConstructed)
}

func (q GetCheckQuery) CheckID() kernel.UUID {
	return q.checkID
}

// GetCheckQueryResponse is a recorded check with its full outcome.
// Status is "success" or "error"; Steps is empty for failed checks.
type GetCheckQueryResponse struct {
	ID           kernel.UUID
	Deliveries   string
	Path         string
	Status       string
	Steps        []route.Step
	ErrorCode    string
	ErrorMessage string
	CreatedAt    time.Time
}
