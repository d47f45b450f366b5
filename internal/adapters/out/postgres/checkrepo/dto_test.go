package checkrepo_test

import (
	"testing"

	"deliverychecker/internal/adapters/out/postgres/checkrepo"
	"deliverychecker/internal/core/domain/model/kernel"
	"deliverychecker/internal/core/domain/model/route"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepsDTO_ValueAndScan(t *testing.T) {
	dtos := checkrepo.StepsDTO{
		{Address: float64(1), Action: int(route.Pickup)},
		{Address: "depot", Action: int(route.None)},
		{Address: nil, Action: int(route.None)},
		{Address: true, Action: int(route.Dropoff)},
	}

	value, err := dtos.Value()
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"address":1,"action":2},{"address":"depot","action":1},{"address":null,"action":1},{"address":true,"action":3}]`,
		value.(string))

	var scanned checkrepo.StepsDTO
	require.NoError(t, scanned.Scan([]byte(value.(string))))
	assert.Equal(t, dtos, scanned)

	steps, err := checkrepo.StepsFromDTO(scanned)
	require.NoError(t, err)
	require.Len(t, steps, 4)
	assert.True(t, steps[0].Address().IsEqual(kernel.NewIntAddress(1)))
	assert.Equal(t, "null:none", steps[2].String())
	assert.Equal(t, "true:dropoff", steps[3].String())
}

func TestStepsDTO_NilIsEmptyArray(t *testing.T) {
	value, err := checkrepo.StepsDTO(nil).Value()

	require.NoError(t, err)
	assert.Equal(t, "[]", value)
}

func TestStepsDTO_ScanRejectsUnknownSource(t *testing.T) {
	var scanned checkrepo.StepsDTO
	require.Error(t, scanned.Scan(42))
}

func TestStepsFromDTO_InvalidStoredValues(t *testing.T) {
	_, err := checkrepo.StepsFromDTO(checkrepo.StepsDTO{{Address: []any{1}, Action: 1}})
	require.Error(t, err)

	_, err = checkrepo.StepsFromDTO(checkrepo.StepsDTO{{Address: float64(1), Action: 0}})
	require.Error(t, err)
}
