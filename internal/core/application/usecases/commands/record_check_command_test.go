package commands_test

import (
	"testing"

	"deliverychecker/internal/core/application/usecases/commands"
	"deliverychecker/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecordCheckCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	result := commands.NewErrorResult(commands.ErrorCodeInvalidInput, "Failed to parse input: x")

	cmd, err := commands.NewRecordCheckCommand(id, "[[1,2]]", "[1]", result)

	require.NoError(t, err)
	assert.Equal(t, id, cmd.CheckID())
	assert.Equal(t, "[[1,2]]", cmd.Deliveries())
	assert.Equal(t, "[1]", cmd.Path())
	assert.Equal(t, result, cmd.Result())
}

func TestNewRecordCheckCommand_InvalidCheckID(t *testing.T) {
	_, err := commands.NewRecordCheckCommand(kernel.UUID{}, "[]", "[]", commands.NewSuccessResult(nil))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestRecordCheckCommand_NotConstructedViaConstructor(t *testing.T) {
	cmd := commands.RecordCheckCommand{}
	assert.ErrorIs(t, cmd.Validate(), commands.ErrRecordCheckCommandIsNotConstructed)
}
