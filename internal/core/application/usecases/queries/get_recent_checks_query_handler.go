package queries

import (
	"context"
	"time"

	"deliverychecker/internal/core/domain/model/check"
	"deliverychecker/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRecentChecksQueryHandler lists checks newest first.
//
// Example:
//
//	query, _ := NewGetRecentChecksQuery(10)
//	checks, err := NewGetRecentChecksQueryHandler(db).Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	for _, c := range checks {
//	    fmt.Println(c.ID, c.Status, c.CreatedAt)
//	}
type GetRecentChecksQueryHandler struct {
	db *gorm.DB
}

func NewGetRecentChecksQueryHandler(db *gorm.DB) GetRecentChecksQueryHandler {
	return GetRecentChecksQueryHandler{db: db}
}

// Handle orders by creation time, then by ID for checks created in the same
// instant. An empty table yields an empty, non-nil slice.
func (h GetRecentChecksQueryHandler) Handle(
	ctx context.Context,
	query GetRecentChecksQuery,
) ([]GetRecentChecksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	checks := make([]GetRecentChecksQueryResponse, 0, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			error_code,
			created_at
		FROM checks
		ORDER BY created_at DESC, id
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        uuid.UUID
			status    int
			errorCode *string
			createdAt time.Time
		)

		if err = rows.Scan(&id, &status, &errorCode, &createdAt); err != nil {
			return nil, err
		}

		checkID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		resp := GetRecentChecksQueryResponse{
			ID:        checkID,
			Status:    check.Status(status).String(),
			CreatedAt: createdAt.UTC(),
		}
		if errorCode != nil {
			resp.ErrorCode = *errorCode
		}
		checks = append(checks, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return checks, nil
}
