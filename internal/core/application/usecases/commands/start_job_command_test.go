package commands_test

import (
	"testing"

	"spotserve/internal/core/application/usecases/commands"
	"spotserve/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartJobCommand_Success(t *testing.T) {
	jobID := kernel.NewUUID()
	mechanicID := kernel.NewUUID()

	cmd, err := commands.NewStartJobCommand(jobID, mechanicID)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, jobID, cmd.JobID())
	assert.Equal(t, mechanicID, cmd.MechanicID())
}

func TestNewStartJobCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewStartJobCommand(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = commands.NewStartJobCommand(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
}

func TestStartJobCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.StartJobCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrStartJobCommandIsNotConstructed)
}
