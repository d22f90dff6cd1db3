package commands_test

import (
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignDriverCommand_ValidInput(t *testing.T) {
	driverID := kernel.NewUUID()
	cmd, err := commands.NewAssignDriverCommand("ORD-1001", driverID)
	require.NoError(t, err)
	assert.Equal(t, "ORD-1001", cmd.OrderCode())
	assert.Equal(t, driverID, cmd.DriverID())
}

func TestNewAssignDriverCommand_EmptyOrderCode(t *testing.T) {
	_, err := commands.NewAssignDriverCommand("", kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewAssignDriverCommand_InvalidDriverID(t *testing.T) {
	_, err := commands.NewAssignDriverCommand("ORD-1001", kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestAssignDriverCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.AssignDriverCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAssignDriverCommandIsNotConstructed)
}
