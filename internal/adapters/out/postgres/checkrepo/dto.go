// Package checkrepo persists Check aggregates in the "checks" table.
// Annotated steps are stored as a jsonb array next to the scalar columns.
package checkrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"deliverychecker/internal/core/domain/model/check"
	"deliverychecker/internal/core/domain/model/kernel"
	"deliverychecker/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// CheckDTO represents the database structure for persisting checks.
type CheckDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Deliveries   string    `gorm:"type:text;not null"`
	Path         string    `gorm:"type:text;not null"`
	Status       int       `gorm:"not null"`
	Steps        StepsDTO  `gorm:"type:jsonb;not null"`
	ErrorCode    string    `gorm:"type:varchar(64)"`
	ErrorMessage string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null;index"`
}

func (CheckDTO) TableName() string {
	return "checks"
}

// StepDTO is one annotated waypoint. Address holds the decoded scalar.
type StepDTO struct {
	Address any `json:"address"`
	Action  int `json:"action"`
}

// StepsDTO is stored as a JSON array.
type StepsDTO []StepDTO

// Value implements driver.Valuer.
func (s StepsDTO) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	raw, err := json.Marshal([]StepDTO(s))
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan implements sql.Scanner.
func (s *StepsDTO) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*s = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StepsDTO", src)
	}
	return json.Unmarshal(raw, s)
}

func fromDomain(c *check.Check) CheckDTO {
	steps := make(StepsDTO, 0, len(c.Steps()))
	for _, s := range c.Steps() {
		steps = append(steps, StepDTO{
			Address: s.Address().Value(),
			Action:  int(s.Action()),
		})
	}

	return CheckDTO{
		ID:           c.ID().Bytes(),
		Deliveries:   c.Deliveries(),
		Path:         c.Path(),
		Status:       int(c.Status()),
		Steps:        steps,
		ErrorCode:    c.ErrorCode(),
		ErrorMessage: c.ErrorMessage(),
		CreatedAt:    c.CreatedAt(),
	}
}

func toDomain(dto CheckDTO) (*check.Check, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	steps, err := StepsFromDTO(dto.Steps)
	if err != nil {
		return nil, err
	}

	return check.RestoreCheck(
		id,
		dto.Deliveries,
		dto.Path,
		check.Status(dto.Status),
		steps,
		dto.ErrorCode,
		dto.ErrorMessage,
		dto.CreatedAt,
	)
}

// StepsFromDTO rebuilds domain steps from their stored form. An empty list
// yields nil.
func StepsFromDTO(dtos StepsDTO) ([]route.Step, error) {
	if len(dtos) == 0 {
		return nil, nil
	}

	steps := make([]route.Step, 0, len(dtos))
	for _, d := range dtos {
		address, err := kernel.NewAddress(d.Address)
		if err != nil {
			return nil, err
		}
		step, err := route.NewStep(address, route.Action(d.Action))
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}
