package statemachine

import (
	"testing"

	"dinein-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHappyPath(t *testing.T) {
	chain := []models.OrderStatus{
		models.StatusPending,
		models.StatusConfirmed,
		models.StatusPreparing,
		models.StatusReady,
		models.StatusServed,
		models.StatusCompleted,
	}
	for i := 0; i < len(chain)-1; i++ {
		require.NoError(t, CanTransition(chain[i], chain[i+1]),
			"%s → %s should be valid", chain[i], chain[i+1])
	}
}

func TestCancelFromAnyNonTerminalState(t *testing.T) {
	for _, from := range []models.OrderStatus{
		models.StatusPending, models.StatusConfirmed, models.StatusPreparing,
		models.StatusReady, models.StatusServed,
	} {
		assert.NoError(t, CanTransition(from, models.StatusCancelled))
	}
}

func TestTerminalStatesRejectEverything(t *testing.T) {
	targets := []models.OrderStatus{
		models.StatusPending, models.StatusConfirmed, models.StatusPreparing,
		models.StatusReady, models.StatusServed, models.StatusCompleted,
		models.StatusCancelled,
	}
	for _, from := range []models.OrderStatus{models.StatusCompleted, models.StatusCancelled} {
		assert.True(t, IsTerminal(from))
		for _, to := range targets {
			err := CanTransition(from, to)
			assert.ErrorIs(t, err, ErrInvalidTransition, "%s → %s must be rejected", from, to)
		}
	}
}

func TestCompletedToPendingRejected(t *testing.T) {
	err := CanTransition(models.StatusCompleted, models.StatusPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSelfTransitionRejected(t *testing.T) {
	// re-applying preparing → preparing is invalid, so an already-set
	// transition timestamp can never be overwritten
	err := CanTransition(models.StatusPreparing, models.StatusPreparing)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSkippingStatesRejected(t *testing.T) {
	assert.Error(t, CanTransition(models.StatusPending, models.StatusReady))
	assert.Error(t, CanTransition(models.StatusConfirmed, models.StatusServed))
	assert.Error(t, CanTransition(models.StatusServed, models.StatusPending))
}

func TestValidTransitionsFrom(t *testing.T) {
	nexts := ValidTransitionsFrom(models.StatusPending)
	assert.ElementsMatch(t, []models.OrderStatus{models.StatusConfirmed, models.StatusCancelled}, nexts)

	assert.Empty(t, ValidTransitionsFrom(models.StatusCompleted))
	assert.Empty(t, ValidTransitionsFrom(models.StatusCancelled))
}

func TestTimestampColumn(t *testing.T) {
	cases := map[models.OrderStatus]string{
		models.StatusConfirmed: "confirmed_at",
		models.StatusPreparing: "prepared_at",
		models.StatusReady:     "ready_at",
		models.StatusServed:    "served_at",
		models.StatusCompleted: "completed_at",
	}
	for status, want := range cases {
		col, ok := TimestampColumn(status)
		require.True(t, ok, "%s should have a timestamp column", status)
		assert.Equal(t, want, col)
	}

	for _, status := range []models.OrderStatus{models.StatusPending, models.StatusCancelled} {
		_, ok := TimestampColumn(status)
		assert.False(t, ok, "%s has no timestamp column", status)
	}
}

func TestErrorNamesValidNextStates(t *testing.T) {
	err := CanTransition(models.StatusPending, models.StatusServed)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "confirmed")
	assert.Contains(t, err.Error(), "cancelled")

	err = CanTransition(models.StatusCompleted, models.StatusPending)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}
