package learning

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/dayweave/internal/domain"
	"github.com/alexanderramin/dayweave/internal/repository"
)

// Task-count thresholds for phase transitions.
const (
	EstablishmentThreshold = 50
	MasteryThreshold       = 200
)

// PhaseForCount maps an accumulated task count onto a learning phase.
func PhaseForCount(tasksSeen int) domain.LearningPhase {
	switch {
	case tasksSeen >= MasteryThreshold:
		return domain.PhaseMastery
	case tasksSeen >= EstablishmentThreshold:
		return domain.PhaseEstablishment
	default:
		return domain.PhaseDiscovery
	}
}

// Manager determines a user's learning phase from materialized state.
// The phase is recomputed on every call and is monotonic: a drop in
// activity never reverts an established user to discovery.
type Manager struct {
	states repository.LearningStateRepo
}

// NewManager creates a phase Manager over the given state repo.
func NewManager(states repository.LearningStateRepo) *Manager {
	return &Manager{states: states}
}

// DeterminePhase returns the user's current phase. Users with no recorded
// state are in discovery. When the recomputed phase advances past the
// stored one, the advancement is persisted.
func (m *Manager) DeterminePhase(ctx context.Context, userID string) (domain.LearningPhase, error) {
	state, err := m.states.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.PhaseDiscovery, nil
		}
		return domain.PhaseDiscovery, fmt.Errorf("loading learning state: %w", err)
	}

	computed := PhaseForCount(state.TasksSeen)
	current := domain.FurtherPhase(state.Phase, computed)
	if current != state.Phase {
		state.Phase = current
		if err := m.states.Upsert(ctx, state); err != nil {
			// Persisting the advancement is best-effort; the caller still
			// gets the correct phase for this request.
			return current, nil
		}
	}
	return current, nil
}

// RecordActivity advances the user's counters after one feedback record and
// re-evaluates the phase. Creates the state row on first activity.
func (m *Manager) RecordActivity(ctx context.Context, userID string, completed bool, at time.Time) error {
	state, err := m.states.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("loading learning state: %w", err)
		}
		state = &domain.UserLearningState{UserID: userID, Phase: domain.PhaseDiscovery}
	}

	state.TasksSeen++
	if completed {
		state.TasksCompleted++
	}
	if state.FirstActivityAt == nil {
		first := at
		state.FirstActivityAt = &first
	}
	state.Phase = domain.FurtherPhase(state.Phase, PhaseForCount(state.TasksSeen))

	if err := m.states.Upsert(ctx, state); err != nil {
		return fmt.Errorf("saving learning state: %w", err)
	}
	return nil
}
