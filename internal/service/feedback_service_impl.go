package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/dayweave/internal/app"
	"github.com/alexanderramin/dayweave/internal/domain"
	"github.com/alexanderramin/dayweave/internal/learning"
	"github.com/alexanderramin/dayweave/internal/repository"
)

type feedbackService struct {
	feedback repository.FeedbackRepo
	learning *learning.Manager
	observer UseCaseObserver
}

// NewFeedbackService wires the feedback ingestion use case.
func NewFeedbackService(
	feedback repository.FeedbackRepo,
	manager *learning.Manager,
	observers ...UseCaseObserver,
) FeedbackService {
	return &feedbackService{
		feedback: feedback,
		learning: manager,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Record appends one completion observation and advances the user's learning
// counters. Invalid records are rejected; storage failures after validation
// are logged and swallowed so a flaky disk never breaks the caller's day.
func (s *feedbackService) Record(ctx context.Context, req app.FeedbackRequest) error {
	started := time.Now()
	now := started.UTC()
	if req.Now != nil {
		now = *req.Now
	}

	dayOfWeek := req.DayOfWeek
	if dayOfWeek == "" {
		dayOfWeek = strings.ToLower(req.PlannedDate.Weekday().String())
	}

	record := &domain.FeedbackRecord{
		ID:           uuid.NewString(),
		UserID:       req.UserID,
		TemplateID:   req.TemplateID,
		Category:     req.Category,
		Status:       req.Status,
		Satisfaction: req.Satisfaction,
		PlannedDate:  req.PlannedDate,
		CompletedAt:  now,
		Mode:         req.Mode,
		Archetype:    req.Archetype,
		DayOfWeek:    dayOfWeek,
	}
	if err := record.Validate(); err != nil {
		return err
	}

	if err := s.feedback.Append(ctx, record); err != nil {
		s.observe(ctx, started, "feedback_append_failed", err, req.UserID)
		return nil
	}

	completed := req.Status == domain.StatusCompleted
	if err := s.learning.RecordActivity(ctx, req.UserID, completed, now); err != nil {
		s.observe(ctx, started, "learning_update_failed", err, req.UserID)
		return nil
	}

	s.observe(ctx, started, "record_feedback", nil, req.UserID)
	return nil
}

func (s *feedbackService) observe(ctx context.Context, started time.Time, name string, err error, userID string) {
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    map[string]any{"user_id": userID},
		StartedAt: started,
	})
}
