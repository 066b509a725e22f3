package commands_test

import (
	"testing"

	"stayhub/cmd/migrate/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpCmd(t *testing.T) {
	cmd := commands.UpCmd()
	assert.Equal(t, "up", cmd.Use)
	assert.Equal(t, "Apply all pending migrations", cmd.Short)
}

func TestDownCmd(t *testing.T) {
	cmd := commands.DownCmd()
	assert.Equal(t, "down", cmd.Use)

	steps := cmd.Flags().Lookup("steps")
	require.NotNil(t, steps)
	assert.Equal(t, "1", steps.DefValue)
}

func TestDownCmdRejectsNonPositiveSteps(t *testing.T) {
	cmd := commands.DownCmd()
	cmd.SetArgs([]string{"--steps", "0"})

	assert.EqualError(t, cmd.Execute(), "steps must be positive, got 0")
}

func TestDropCmdRequiresConfirmation(t *testing.T) {
	cmd := commands.DropCmd()
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--yes")
}

func TestForceCmd(t *testing.T) {
	cmd := commands.ForceCmd()
	assert.Equal(t, "force [version]", cmd.Use)

	cmd.SetArgs([]string{"latest"})
	assert.ErrorContains(t, cmd.Execute(), `invalid version "latest"`)
}

func TestVersionAndStepUpCmd(t *testing.T) {
	assert.Equal(t, "version", commands.VersionCmd().Use)
	assert.Equal(t, "step-up", commands.StepUpCmd().Use)
}
