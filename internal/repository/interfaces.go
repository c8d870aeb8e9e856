package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/dayweave/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type TemplateRepo interface {
	Create(ctx context.Context, t *domain.Template) error
	GetByID(ctx context.Context, id string) (*domain.Template, error)
	ListByCategory(ctx context.Context, category domain.Category, activeOnly bool) ([]*domain.Template, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Template, error)
}

type RotationRepo interface {
	// ExcludedGroups returns every variation group the user touched within
	// the trailing window, measured back from now.
	ExcludedGroups(ctx context.Context, userID string, window time.Duration, now time.Time) (map[string]bool, error)
	// RecordUsage upserts the entry for (user, group): last_used_at is set
	// to now and use_count incremented. Last write wins.
	RecordUsage(ctx context.Context, userID, variationGroup string, now time.Time) error
	Get(ctx context.Context, userID, variationGroup string) (*domain.RotationEntry, error)
}

type FeedbackRepo interface {
	// Append writes one record. The log is append-only; nothing updates or
	// deletes rows.
	Append(ctx context.Context, r *domain.FeedbackRecord) error
	ListByUserSince(ctx context.Context, userID string, since time.Time) ([]*domain.FeedbackRecord, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.FeedbackRecord, error)
}

type LearningStateRepo interface {
	Get(ctx context.Context, userID string) (*domain.UserLearningState, error)
	Upsert(ctx context.Context, s *domain.UserLearningState) error
}
