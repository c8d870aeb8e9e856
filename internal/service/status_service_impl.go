package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/dayweave/internal/app"
	"github.com/alexanderramin/dayweave/internal/domain"
	"github.com/alexanderramin/dayweave/internal/feedback"
	"github.com/alexanderramin/dayweave/internal/learning"
	"github.com/alexanderramin/dayweave/internal/repository"
	"github.com/alexanderramin/dayweave/internal/selector"
)

type statusService struct {
	states   repository.LearningStateRepo
	analyzer *feedback.Analyzer
	phases   *learning.Manager
	observer UseCaseObserver
}

// NewStatusService wires the learning status view.
func NewStatusService(
	states repository.LearningStateRepo,
	analyzer *feedback.Analyzer,
	phases *learning.Manager,
	observers ...UseCaseObserver,
) StatusService {
	return &statusService{
		states:   states,
		analyzer: analyzer,
		phases:   phases,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *statusService) GetStatus(ctx context.Context, userID string) (*app.StatusResponse, error) {
	started := time.Now()
	resp, err := s.getStatus(ctx, userID, started.UTC())
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "get_status",
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"user_id": userID},
		StartedAt: started,
	})
	return resp, err
}

func (s *statusService) getStatus(ctx context.Context, userID string, now time.Time) (*app.StatusResponse, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id is required")
	}

	phase, err := s.phases.DeterminePhase(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &app.StatusResponse{UserID: userID, Phase: phase}

	state, err := s.states.Get(ctx, userID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("loading learning state: %w", err)
	}
	if state != nil {
		resp.TasksSeen = state.TasksSeen
		resp.TasksCompleted = state.TasksCompleted
		resp.DaysActive = state.DaysSinceFirstActivity(now)
	}

	stats, err := s.analyzer.CategoryStats(ctx, userID, feedback.DefaultWindowDays, now)
	if err != nil {
		return nil, fmt.Errorf("loading category stats: %w", err)
	}

	all := make([]domain.Category, 0, len(domain.ValidCategories))
	for cat := range domain.ValidCategories {
		all = append(all, cat)
	}
	weights := selector.Prioritize(all, stats)
	for _, cat := range selector.OrderByPriority(weights) {
		cs := app.CategoryStatus{
			Category:       cat,
			PriorityWeight: weights[cat],
			FrictionLevel:  domain.FrictionLow,
		}
		if st, ok := stats[cat]; ok {
			cs.SeenCount = st.SeenCount
			cs.CompletedCount = st.CompletedCount
			cs.CompletionRate = st.CompletionRate
			cs.AvgSatisfaction = st.AvgSatisfaction
			cs.FrictionScore = st.FrictionScore
			cs.FrictionLevel = st.Level
		}
		resp.Categories = append(resp.Categories, cs)
	}
	return resp, nil
}
