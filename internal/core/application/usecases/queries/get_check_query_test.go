package queries_test

import (
	"testing"

	"deliverychecker/internal/core/application/usecases/queries"
	"deliverychecker/internal/core/domain/model/kernel"
	"deliverychecker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCheckQuery_Valid(t *testing.T) {
	id := kernel.NewUUID()

	query, err := queries.NewGetCheckQuery(id)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, id, query.CheckID())
}

func TestNewGetCheckQuery_InvalidID(t *testing.T) {
	_, err := queries.NewGetCheckQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetCheckQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCheckQuery{}
	assert.ErrorIs(t, query.Validate(), queries.ErrGetCheckQueryIsNotConstructed)
}

func TestNewGetRecentChecksQuery(t *testing.T) {
	for _, limit := range []int{queries.MinRecentChecksLimit, queries.DefaultRecentChecksLimit, queries.MaxRecentChecksLimit} {
		query, err := queries.NewGetRecentChecksQuery(limit)
		require.NoError(t, err)
		assert.Equal(t, limit, query.Limit())
	}
}

func TestNewGetRecentChecksQuery_OutOfRange(t *testing.T) {
	for _, limit := range []int{0, -1, 101} {
		_, err := queries.NewGetRecentChecksQuery(limit)

		var rangeErr *errs.ValueIsOutOfRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, "limit", rangeErr.ParamName)
	}
}

func TestGetRecentChecksQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetRecentChecksQuery{}
	assert.ErrorIs(t, query.Validate(), queries.ErrGetRecentChecksQueryIsNotConstructed)
}
