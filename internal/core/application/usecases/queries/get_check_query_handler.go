package queries

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"deliverychecker/internal/core/domain/model/check"
	"deliverychecker/internal/core/domain/model/kernel"
	"deliverychecker/internal/core/domain/model/route"
	"deliverychecker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCheckQueryHandler reads one check from the checks table.
type GetCheckQueryHandler struct {
	db *gorm.DB
}

func NewGetCheckQueryHandler(db *gorm.DB) GetCheckQueryHandler {
	return GetCheckQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when no check has the given ID.
func (h GetCheckQueryHandler) Handle(ctx context.Context, query GetCheckQuery) (GetCheckQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCheckQueryResponse{}, err
	}

	var row struct {
		Deliveries   string
		Path         string
		Status       int
		Steps        []byte
		ErrorCode    string
		ErrorMessage string
		CreatedAt    time.Time
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT
			deliveries,
			path,
			status,
			steps,
			error_code,
			error_message,
			created_at
		FROM checks
		WHERE id = ?
	`, query.CheckID().Bytes()).Scan(&row)
	if result.Error != nil {
		return GetCheckQueryResponse{}, result.Error
	}
	if result.RowsAffected == 0 {
		return GetCheckQueryResponse{}, errs.NewObjectNotFoundError("checkId", query.CheckID().String())
	}

	steps, err := decodeSteps(row.Steps)
	if err != nil {
		return GetCheckQueryResponse{}, err
	}

	return GetCheckQueryResponse{
		ID:           query.CheckID(),
		Deliveries:   row.Deliveries,
		Path:         row.Path,
		Status:       check.Status(row.Status).String(),
		Steps:        steps,
		ErrorCode:    row.ErrorCode,
		ErrorMessage: row.ErrorMessage,
		CreatedAt:    row.CreatedAt.UTC(),
	}, nil
}

// decodeSteps reads the jsonb steps column. An empty array yields an empty,
// non-nil slice.
func decodeSteps(raw []byte) ([]route.Step, error) {
	var stored []struct {
		Address any `json:"address"`
		Action  int `json:"action"`
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &stored); err != nil {
			return nil, err
		}
	}

	steps := make([]route.Step, 0, len(stored))
	for _, s := range stored {
		address, err := kernel.NewAddress(s.Address)
		if err != nil {
			return nil, errors.Join(errs.NewValueIsInvalidError("stored step"), err)
		}
		step, err := route.NewStep(address, route.Action(s.Action))
		if err != nil {
			return nil, errors.Join(errs.NewValueIsInvalidError("stored step"), err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}
