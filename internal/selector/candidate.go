package selector

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/alexanderramin/dayweave/internal/app"
	"github.com/alexanderramin/dayweave/internal/domain"
	"github.com/alexanderramin/dayweave/internal/repository"
)

// Scoring weights for the two fit dimensions.
const (
	archetypeWeight = 0.7
	modeWeight      = 0.3
	jitterBound     = 0.1
)

// CandidateQuery describes one retrieval from the template library.
type CandidateQuery struct {
	Category       domain.Category
	Archetype      domain.Archetype
	Mode           domain.Mode
	TimeOfDay      domain.TimeOfDay
	ExcludedGroups map[string]bool
	Limit          int // 0 means no limit
}

// ScoredTemplate is a library template with its selection score and the
// reasons that produced it.
type ScoredTemplate struct {
	Template *domain.Template
	Score    float64
	Reasons  []app.SelectionReason
}

// CandidateSelector retrieves and ranks eligible templates. The jitter
// source is seedable so tests can pin the ordering.
type CandidateSelector struct {
	templates repository.TemplateRepo
	rng       *rand.Rand
}

type CandidateOption func(*CandidateSelector)

// WithJitterSeed seeds the tie-breaking jitter for reproducible ranking.
func WithJitterSeed(seed int64) CandidateOption {
	return func(s *CandidateSelector) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// NewCandidateSelector creates a CandidateSelector over the template repo.
func NewCandidateSelector(templates repository.TemplateRepo, opts ...CandidateOption) *CandidateSelector {
	s := &CandidateSelector{
		templates: templates,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetCandidates returns eligible templates ranked by score. Filters:
// category, active flag, time-of-day compatibility, then rotation
// exclusions. When exclusion would empty the result the rotation
// constraint is relaxed rather than returning nothing. A category with no
// active templates yields an empty list, not an error.
func (s *CandidateSelector) GetCandidates(ctx context.Context, q CandidateQuery) ([]ScoredTemplate, error) {
	templates, err := s.templates.ListByCategory(ctx, q.Category, true)
	if err != nil {
		return nil, fmt.Errorf("loading candidates for %s: %w", q.Category, err)
	}

	var pool []*domain.Template
	for _, t := range templates {
		if t.MatchesTimeOfDay(q.TimeOfDay) {
			pool = append(pool, t)
		}
	}
	if len(pool) == 0 {
		return nil, nil
	}

	eligible := pool
	relaxed := false
	if len(q.ExcludedGroups) > 0 {
		var kept []*domain.Template
		for _, t := range pool {
			if !q.ExcludedGroups[t.VariationGroup] {
				kept = append(kept, t)
			}
		}
		if len(kept) == 0 {
			// Every variation group is cooling down; rotation excludes,
			// it never hard-blocks.
			relaxed = true
		} else {
			eligible = kept
		}
	}

	scored := make([]ScoredTemplate, 0, len(eligible))
	for _, t := range eligible {
		scored = append(scored, s.score(t, q, relaxed))
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Template.ID < scored[j].Template.ID
	})

	if q.Limit > 0 && len(scored) > q.Limit {
		scored = scored[:q.Limit]
	}
	return scored, nil
}

func (s *CandidateSelector) score(t *domain.Template, q CandidateQuery, relaxed bool) ScoredTemplate {
	archDelta := archetypeWeight * t.ArchetypeWeight(q.Archetype)
	modeDelta := modeWeight * t.ModeWeight(q.Mode)
	jitter := (s.rng.Float64()*2 - 1) * jitterBound

	reasons := []app.SelectionReason{
		{
			Code:        app.ReasonArchetypeFit,
			Message:     fmt.Sprintf("Archetype fit %.2f for %s", t.ArchetypeWeight(q.Archetype), q.Archetype),
			WeightDelta: &archDelta,
		},
		{
			Code:        app.ReasonModeFit,
			Message:     fmt.Sprintf("Mode fit %.2f for %s", t.ModeWeight(q.Mode), q.Mode),
			WeightDelta: &modeDelta,
		},
	}
	if relaxed {
		reasons = append(reasons, app.SelectionReason{
			Code:    app.ReasonRotationRelaxed,
			Message: "All variation groups in cooldown; rotation constraint relaxed",
		})
	}

	return ScoredTemplate{
		Template: t,
		Score:    archDelta + modeDelta + jitter,
		Reasons:  reasons,
	}
}
