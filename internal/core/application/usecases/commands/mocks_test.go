package commands_test

import (
	"context"
	"time"

	"deliverychecker/internal/core/application/usecases/commands"
	"deliverychecker/internal/core/domain/model/check"
	"deliverychecker/internal/core/domain/model/kernel"
	"deliverychecker/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCheckRepository struct{ mock.Mock }

func (m *MockCheckRepository) Add(ctx context.Context, c *check.Check) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCheckRepository) Get(ctx context.Context, id kernel.UUID) (*check.Check, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*check.Check), args.Error(1)
}

func (m *MockCheckRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockCheckUoW struct{ mock.Mock }

func (m *MockCheckUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCheckUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCheckUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCheckUoW) CheckRepository() ports.CheckRepository {
	args := m.Called()
	return args.Get(0).(ports.CheckRepository)
}

type MockCheckUoWFactory struct{ mock.Mock }

func (m *MockCheckUoWFactory) Create() commands.CheckUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckUoW)
}
