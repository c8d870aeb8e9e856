package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/dayweave/internal/domain"
	"github.com/google/uuid"
)

var templateCounter atomic.Int64

// Template options
type TemplateOption func(*domain.Template)

func WithTemplateID(id string) TemplateOption {
	return func(t *domain.Template) { t.ID = id }
}

func WithVariationGroup(g string) TemplateOption {
	return func(t *domain.Template) { t.VariationGroup = g }
}

func WithTimeOfDay(tod domain.TimeOfDay) TemplateOption {
	return func(t *domain.Template) { t.TimeOfDayPref = tod }
}

func WithArchetypeFit(a domain.Archetype, w float64) TemplateOption {
	return func(t *domain.Template) {
		if t.ArchetypeFit == nil {
			t.ArchetypeFit = map[domain.Archetype]float64{}
		}
		t.ArchetypeFit[a] = w
	}
}

func WithModeFit(m domain.Mode, w float64) TemplateOption {
	return func(t *domain.Template) {
		if t.ModeFit == nil {
			t.ModeFit = map[domain.Mode]float64{}
		}
		t.ModeFit[m] = w
	}
}

func WithDuration(minutes int) TemplateOption {
	return func(t *domain.Template) { t.DurationMin = minutes }
}

func WithDifficulty(d int) TemplateOption {
	return func(t *domain.Template) { t.Difficulty = d }
}

func WithInactive() TemplateOption {
	return func(t *domain.Template) { t.Active = false }
}

// NewTestTemplate builds an active template in the given category with a
// unique ID and variation group unless overridden.
func NewTestTemplate(category domain.Category, opts ...TemplateOption) *domain.Template {
	n := templateCounter.Add(1)
	t := &domain.Template{
		ID:             fmt.Sprintf("tpl-%s-%03d", category, n),
		Category:       category,
		Name:           fmt.Sprintf("%s template %d", category, n),
		Description:    "test template",
		DurationMin:    15,
		Difficulty:     2,
		VariationGroup: fmt.Sprintf("vg-%s-%03d", category, n),
		TimeOfDayPref:  domain.TimeAny,
		Active:         true,
		CreatedAt:      time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Feedback options
type FeedbackOption func(*domain.FeedbackRecord)

func WithTemplateRef(templateID string) FeedbackOption {
	return func(r *domain.FeedbackRecord) { r.TemplateID = &templateID }
}

func WithStatus(s domain.CompletionStatus) FeedbackOption {
	return func(r *domain.FeedbackRecord) { r.Status = s }
}

func WithSatisfaction(rating int) FeedbackOption {
	return func(r *domain.FeedbackRecord) { r.Satisfaction = &rating }
}

func WithCompletedAt(at time.Time) FeedbackOption {
	return func(r *domain.FeedbackRecord) {
		r.CompletedAt = at
		r.PlannedDate = at.Truncate(24 * time.Hour)
	}
}

// NewTestFeedback builds a completed feedback record for the given user and
// category, timestamped now unless overridden.
func NewTestFeedback(userID string, category domain.Category, opts ...FeedbackOption) *domain.FeedbackRecord {
	now := time.Now().UTC()
	r := &domain.FeedbackRecord{
		ID:          uuid.New().String(),
		UserID:      userID,
		Category:    category,
		Status:      domain.StatusCompleted,
		PlannedDate: now.Truncate(24 * time.Hour),
		CompletedAt: now,
		Mode:        domain.ModeStandard,
		Archetype:   domain.ArchetypeSteadyBuilder,
		DayOfWeek:   now.Weekday().String(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
