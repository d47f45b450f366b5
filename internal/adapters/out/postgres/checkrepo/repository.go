package checkrepo

import (
	"context"
	"errors"
	"time"

	"deliverychecker/internal/core/domain/model/check"
	"deliverychecker/internal/core/domain/model/kernel"
	"deliverychecker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCheckRepository implements ports.CheckRepository using GORM.
type GormCheckRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCheckRepository(db *gorm.DB, tracker aggregateTracker) *GormCheckRepository {
	return &GormCheckRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new check.
func (r *GormCheckRepository) Add(ctx context.Context, aggregate *check.Check) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a check by ID.
func (r *GormCheckRepository) Get(ctx context.Context, id kernel.UUID) (*check.Check, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CheckDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("checkId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeleteCreatedBefore removes checks created strictly before cutoff.
func (r *GormCheckRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("created_at < ?", cutoff.UTC()).Delete(&CheckDTO{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
