package statemachine

import (
	"errors"
	"fmt"

	"dinein-api/models"
)

// ErrInvalidTransition is returned for any status change the table does not
// allow, including anything out of a terminal state.
var ErrInvalidTransition = errors.New("invalid status transition")

// Transition defines a valid state change
type Transition struct {
	From models.OrderStatus `json:"from"`
	To   models.OrderStatus `json:"to"`
}

// validTransitions is the authoritative state machine definition:
// pending → confirmed → preparing → ready → served → completed, with
// cancelled reachable from every non-terminal state.
var validTransitions = []Transition{
	{From: models.StatusPending, To: models.StatusConfirmed},
	{From: models.StatusConfirmed, To: models.StatusPreparing},
	{From: models.StatusPreparing, To: models.StatusReady},
	{From: models.StatusReady, To: models.StatusServed},
	{From: models.StatusServed, To: models.StatusCompleted},
	{From: models.StatusPending, To: models.StatusCancelled},
	{From: models.StatusConfirmed, To: models.StatusCancelled},
	{From: models.StatusPreparing, To: models.StatusCancelled},
	{From: models.StatusReady, To: models.StatusCancelled},
	{From: models.StatusServed, To: models.StatusCancelled},
}

type transitionKey struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To}] = true
	}
	return m
}()

// IsTerminal reports whether no transition leaves the given state
func IsTerminal(status models.OrderStatus) bool {
	return status == models.StatusCompleted || status == models.StatusCancelled
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransition checks whether an order may move from one state to another.
// Self-transitions are never valid, so a transition timestamp can only ever
// be written once.
func CanTransition(from, to models.OrderStatus) error {
	if transitionMap[transitionKey{From: from, To: to}] {
		return nil
	}
	return fmt.Errorf("%w: %s → %s (valid next states: %s)",
		ErrInvalidTransition, from, to, describeValidFrom(from))
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// TimestampColumn maps a target status to the order column stamped when the
// transition happens. The preparing transition stamps prepared_at. Statuses
// without a timestamp (pending, cancelled) return ok=false.
func TimestampColumn(to models.OrderStatus) (string, bool) {
	switch to {
	case models.StatusConfirmed:
		return "confirmed_at", true
	case models.StatusPreparing:
		return "prepared_at", true
	case models.StatusReady:
		return "ready_at", true
	case models.StatusServed:
		return "served_at", true
	case models.StatusCompleted:
		return "completed_at", true
	}
	return "", false
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
