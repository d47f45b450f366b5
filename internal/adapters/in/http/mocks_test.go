package http_test

import (
	"context"
	"log/slog"

	"deliverychecker/internal/core/application/usecases/commands"
	"deliverychecker/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/mock"
)

type MockCheckRecorder struct{ mock.Mock }

func (m *MockCheckRecorder) Handle(ctx context.Context, cmd commands.RecordCheckCommand) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockCheckFinder struct{ mock.Mock }

func (m *MockCheckFinder) Handle(ctx context.Context, query queries.GetCheckQuery) (queries.GetCheckQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetCheckQueryResponse), args.Error(1)
}

type MockRecentChecksLister struct{ mock.Mock }

func (m *MockRecentChecksLister) Handle(
	ctx context.Context,
	query queries.GetRecentChecksQuery,
) ([]queries.GetRecentChecksQueryResponse, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.GetRecentChecksQueryResponse), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
