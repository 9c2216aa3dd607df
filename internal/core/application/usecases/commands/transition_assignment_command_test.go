package commands_test

import (
	"testing"

	"freightbroker/internal/core/application/usecases/commands"
	"freightbroker/internal/core/domain/model/assignment"
	"freightbroker/internal/core/domain/model/kernel"
	"freightbroker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionAssignmentCommand(t *testing.T) {
	t.Run("should accept every forward delivery state", func(t *testing.T) {
		targets := []assignment.Status{
			assignment.Loading,
			assignment.Loaded,
			assignment.InTransit,
			assignment.DeliveredPendingConfirmation,
			assignment.Delivered,
		}

		for _, target := range targets {
			cmd, err := commands.NewTransitionAssignmentCommand(kernel.NewUUID(), kernel.NewUUID(), target)

			require.NoError(t, err, target.String())
			assert.Equal(t, target, cmd.Target())
		}
	})

	t.Run("should reject cancellation as a transition target", func(t *testing.T) {
		_, err := commands.NewTransitionAssignmentCommand(kernel.NewUUID(), kernel.NewUUID(), assignment.Cancelled)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject the initial accepted state as a target", func(t *testing.T) {
		_, err := commands.NewTransitionAssignmentCommand(kernel.NewUUID(), kernel.NewUUID(), assignment.Accepted)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject a zero-value command", func(t *testing.T) {
		var cmd commands.TransitionAssignmentCommand

		err := cmd.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, commands.ErrTransitionAssignmentCommandIsNotConstructed)
	})
}
