package check_test

import (
	"testing"
	"time"

	"deliverychecker/internal/core/domain/model/check"
	"deliverychecker/internal/core/domain/model/kernel"
	"deliverychecker/internal/core/domain/model/route"
	"deliverychecker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSteps(t *testing.T) []route.Step {
	t.Helper()
	pickup, err := route.NewStep(kernel.NewIntAddress(1), route.Pickup)
	require.NoError(t, err)
	dropoff, err := route.NewStep(kernel.NewIntAddress(2), route.Dropoff)
	require.NoError(t, err)
	return []route.Step{pickup, dropoff}
}

func TestNewSucceededCheck(t *testing.T) {
	id := kernel.NewUUID()
	createdAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	steps := sampleSteps(t)

	c, err := check.NewSucceededCheck(id, "[[1,2]]", "[1,2]", steps, createdAt)

	require.NoError(t, err)
	require.NoError(t, c.Validate())
	assert.True(t, c.ID().IsEqual(id))
	assert.Equal(t, "[[1,2]]", c.Deliveries())
	assert.Equal(t, "[1,2]", c.Path())
	assert.Equal(t, check.Succeeded, c.Status())
	assert.Equal(t, steps, c.Steps())
	assert.Empty(t, c.ErrorCode())
	assert.Equal(t, time.UTC, c.CreatedAt().Location())
	assert.True(t, createdAt.Equal(c.CreatedAt()))
}

func TestNewSucceededCheck_StepsAreCopied(t *testing.T) {
	steps := sampleSteps(t)
	c, err := check.NewSucceededCheck(kernel.NewUUID(), "[]", "[]", steps, time.Now())
	require.NoError(t, err)

	steps[0] = route.Step{}
	got := c.Steps()
	got[1] = route.Step{}

	assert.Equal(t, "1:pickup", c.Steps()[0].String())
	assert.Equal(t, "2:dropoff", c.Steps()[1].String())
}

func TestNewFailedCheck(t *testing.T) {
	c, err := check.NewFailedCheck(kernel.NewUUID(), "[[1,2]]", "[1]",
		"delivery_address_not_in_path", "The following delivery addresses are not in the path: 2", time.Now())

	require.NoError(t, err)
	assert.Equal(t, check.Failed, c.Status())
	assert.Equal(t, "delivery_address_not_in_path", c.ErrorCode())
	assert.Equal(t, "The following delivery addresses are not in the path: 2", c.ErrorMessage())
	assert.Empty(t, c.Steps())
}

func TestCheck_InvalidInput(t *testing.T) {
	t.Run("zero uuid", func(t *testing.T) {
		_, err := check.NewFailedCheck(kernel.UUID{}, "", "", "invalid_input", "x", time.Now())
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("missing creation time", func(t *testing.T) {
		_, err := check.NewFailedCheck(kernel.NewUUID(), "", "", "invalid_input", "x", time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("failed check without code", func(t *testing.T) {
		_, err := check.NewFailedCheck(kernel.NewUUID(), "", "", "", "x", time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("succeeded check with zero step", func(t *testing.T) {
		_, err := check.NewSucceededCheck(kernel.NewUUID(), "", "", []route.Step{{}}, time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("restored with unknown status", func(t *testing.T) {
		_, err := check.RestoreCheck(kernel.NewUUID(), "", "", check.Unknown, nil, "", "", time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("restored success carrying an error", func(t *testing.T) {
		_, err := check.RestoreCheck(kernel.NewUUID(), "", "", check.Succeeded, nil, "invalid_input", "", time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("restored failure carrying steps", func(t *testing.T) {
		_, err := check.RestoreCheck(kernel.NewUUID(), "", "", check.Failed, sampleSteps(t), "invalid_input", "", time.Now())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCheck_Validate_ZeroValue(t *testing.T) {
	var c *check.Check
	require.ErrorIs(t, c.Validate(), check.ErrCheckIsNotConstructed)
	require.ErrorIs(t, (&check.Check{}).Validate(), check.ErrCheckIsNotConstructed)
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "success", check.Succeeded.String())
	assert.Equal(t, "error", check.Failed.String())
	assert.Equal(t, "unknown", check.Status(42).String())
	require.NoError(t, check.Failed.Validate())
	require.Error(t, check.Unknown.Validate())
}
