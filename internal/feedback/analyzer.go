package feedback

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/dayweave/internal/domain"
	"github.com/alexanderramin/dayweave/internal/repository"
)

// DefaultWindowDays is the trailing window over which category statistics
// are derived.
const DefaultWindowDays = 30

// neutralSatisfaction stands in for the average when a user has never rated
// anything, so friction reflects completion behavior alone.
const neutralSatisfaction = 3.0

// Stats is the derived per-category view of a user's feedback.
type Stats struct {
	SeenCount       int
	CompletedCount  int
	CompletionRate  float64
	AvgSatisfaction float64
	FrictionScore   float64
	Level           domain.FrictionLevel
}

// TemplateHistory summarizes a user's observations of one template.
type TemplateHistory struct {
	Observations    int
	CompletedCount  int
	CompletionRate  float64
	AvgSatisfaction float64
}

// favoriteMinObservations is the floor before a template can be called a
// favorite.
const favoriteMinObservations = 2

// IsFavorite reports whether the history qualifies the template as a
// favorite: at least two observations and completion above 0.7.
func (h TemplateHistory) IsFavorite() bool {
	return h.Observations >= favoriteMinObservations && h.CompletionRate > 0.7
}

// Analyzer derives statistics from the append-only feedback log on read.
type Analyzer struct {
	feedback repository.FeedbackRepo
}

// NewAnalyzer creates an Analyzer over the given feedback store.
func NewAnalyzer(feedback repository.FeedbackRepo) *Analyzer {
	return &Analyzer{feedback: feedback}
}

// CategoryStats computes per-category stats over the trailing window.
func (a *Analyzer) CategoryStats(ctx context.Context, userID string, windowDays int, now time.Time) (map[domain.Category]Stats, error) {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	since := now.AddDate(0, 0, -windowDays)
	records, err := a.feedback.ListByUserSince(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("loading feedback window: %w", err)
	}
	return ComputeCategoryStats(records), nil
}

// TemplateHistories returns per-template history across the user's full log,
// keyed by template ID. Records for kept-original tasks carry no template
// reference and are excluded.
func (a *Analyzer) TemplateHistories(ctx context.Context, userID string) (map[string]TemplateHistory, error) {
	records, err := a.feedback.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading feedback history: %w", err)
	}

	type acc struct {
		seen, completed, ratings, ratingSum int
	}
	byTemplate := make(map[string]*acc)
	for _, r := range records {
		if r.TemplateID == nil {
			continue
		}
		c := byTemplate[*r.TemplateID]
		if c == nil {
			c = &acc{}
			byTemplate[*r.TemplateID] = c
		}
		c.seen++
		if r.Status == domain.StatusCompleted {
			c.completed++
		}
		if r.Satisfaction != nil {
			c.ratings++
			c.ratingSum += *r.Satisfaction
		}
	}

	out := make(map[string]TemplateHistory, len(byTemplate))
	for id, c := range byTemplate {
		h := TemplateHistory{
			Observations:   c.seen,
			CompletedCount: c.completed,
			CompletionRate: float64(c.completed) / float64(c.seen),
		}
		if c.ratings > 0 {
			h.AvgSatisfaction = float64(c.ratingSum) / float64(c.ratings)
		} else {
			h.AvgSatisfaction = neutralSatisfaction
		}
		out[id] = h
	}
	return out, nil
}

// ComputeCategoryStats aggregates raw records into per-category stats.
func ComputeCategoryStats(records []*domain.FeedbackRecord) map[domain.Category]Stats {
	type acc struct {
		seen, completed, ratings, ratingSum int
	}
	byCategory := make(map[domain.Category]*acc)
	for _, r := range records {
		c := byCategory[r.Category]
		if c == nil {
			c = &acc{}
			byCategory[r.Category] = c
		}
		c.seen++
		if r.Status == domain.StatusCompleted {
			c.completed++
		}
		if r.Satisfaction != nil {
			c.ratings++
			c.ratingSum += *r.Satisfaction
		}
	}

	out := make(map[domain.Category]Stats, len(byCategory))
	for cat, c := range byCategory {
		s := Stats{
			SeenCount:      c.seen,
			CompletedCount: c.completed,
			CompletionRate: float64(c.completed) / float64(c.seen),
		}
		if c.ratings > 0 {
			s.AvgSatisfaction = float64(c.ratingSum) / float64(c.ratings)
		} else {
			s.AvgSatisfaction = neutralSatisfaction
		}
		s.FrictionScore = FrictionScore(s.CompletionRate, s.AvgSatisfaction)
		s.Level = ClassifyFriction(s.FrictionScore)
		out[cat] = s
	}
	return out
}

// FrictionScore combines low completion and low satisfaction into [0,1]:
// 0.6·(1−completion_rate) + 0.4·(1−avg_satisfaction/5).
func FrictionScore(completionRate, avgSatisfaction float64) float64 {
	score := 0.6*(1-completionRate) + 0.4*(1-avgSatisfaction/5)
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// ClassifyFriction buckets a friction score: ≤0.3 low, ≤0.6 medium, else high.
func ClassifyFriction(score float64) domain.FrictionLevel {
	switch {
	case score <= 0.3:
		return domain.FrictionLow
	case score <= 0.6:
		return domain.FrictionMedium
	default:
		return domain.FrictionHigh
	}
}
