package selector

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/alexanderramin/dayweave/internal/app"
	"github.com/alexanderramin/dayweave/internal/domain"
	"github.com/alexanderramin/dayweave/internal/feedback"
	"github.com/alexanderramin/dayweave/internal/learning"
	"github.com/alexanderramin/dayweave/internal/repository"
)

// Phase-specific exploration ratios.
const (
	discoveryUntriedRatio  = 0.8
	establishFavoriteRatio = 0.7
	masteryRankedRatio     = 0.85
)

// Friction simplification biases, applied per minute and per difficulty
// step when a category runs high friction.
const (
	simplifyDurationPenalty   = 0.004
	simplifyDifficultyPenalty = 0.03
)

// SelectRequest asks for count templates for one category slot.
type SelectRequest struct {
	UserID    string
	Category  domain.Category
	Archetype domain.Archetype
	Mode      domain.Mode
	TimeOfDay domain.TimeOfDay
	// SlotMinutes is the duration of the draft's time slot; 0 means
	// unconstrained.
	SlotMinutes int
	Count       int
	Friction    domain.FrictionLevel // empty treated as low
	Now         time.Time
}

// AdaptiveSelector wraps the CandidateSelector with phase-aware
// exploration/exploitation and rotation bookkeeping.
type AdaptiveSelector struct {
	candidates     *CandidateSelector
	rotation       repository.RotationRepo
	analyzer       *feedback.Analyzer
	phases         *learning.Manager
	logger         *slog.Logger
	rotationWindow time.Duration
}

type AdaptiveOption func(*AdaptiveSelector)

// WithLogger attaches a logger for swallowed persistence failures.
func WithLogger(l *slog.Logger) AdaptiveOption {
	return func(s *AdaptiveSelector) { s.logger = l }
}

// WithRotationWindow overrides the default 48h cooldown.
func WithRotationWindow(w time.Duration) AdaptiveOption {
	return func(s *AdaptiveSelector) { s.rotationWindow = w }
}

// NewAdaptiveSelector wires the adaptive selection pipeline.
func NewAdaptiveSelector(
	candidates *CandidateSelector,
	rotation repository.RotationRepo,
	analyzer *feedback.Analyzer,
	phases *learning.Manager,
	opts ...AdaptiveOption,
) *AdaptiveSelector {
	s := &AdaptiveSelector{
		candidates:     candidates,
		rotation:       rotation,
		analyzer:       analyzer,
		phases:         phases,
		rotationWindow: domain.DefaultRotationWindow,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select returns up to req.Count templates for the category, split between
// exploration and exploitation according to the user's learning phase.
// Rotation exclusions are applied before the phase split; each returned
// template's variation group usage is recorded.
func (s *AdaptiveSelector) Select(ctx context.Context, req SelectRequest) ([]ScoredTemplate, error) {
	count := req.Count
	if count <= 0 {
		count = 1
	}
	now := req.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	excluded, err := s.rotation.ExcludedGroups(ctx, req.UserID, s.rotationWindow, now)
	if err != nil {
		return nil, fmt.Errorf("loading rotation exclusions: %w", err)
	}

	phase, err := s.phases.DeterminePhase(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	pool, err := s.candidates.GetCandidates(ctx, CandidateQuery{
		Category:       req.Category,
		Archetype:      req.Archetype,
		Mode:           req.Mode,
		TimeOfDay:      req.TimeOfDay,
		ExcludedGroups: excluded,
	})
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, nil
	}

	if req.SlotMinutes > 0 {
		pool = fitSlot(pool, req.SlotMinutes)
	}

	if req.Friction == domain.FrictionHigh {
		pool = simplify(pool)
	}

	histories, err := s.analyzer.TemplateHistories(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("loading template histories: %w", err)
	}

	var picked []ScoredTemplate
	switch phase {
	case domain.PhaseEstablishment:
		picked = pickEstablishment(pool, histories, count)
	case domain.PhaseMastery:
		picked = pickMastery(pool, histories, count)
	default:
		picked = pickDiscovery(pool, histories, count)
	}

	for _, st := range picked {
		if err := s.rotation.RecordUsage(ctx, req.UserID, st.Template.VariationGroup, now); err != nil {
			// Rotation bookkeeping must never fail a selection.
			if s.logger != nil {
				s.logger.WarnContext(ctx, "rotation_record_failed",
					"user_id", req.UserID,
					"variation_group", st.Template.VariationGroup,
					"error", err.Error(),
				)
			}
		}
	}
	return picked, nil
}

// fitSlot keeps templates whose duration fits inside the draft's slot. When
// nothing fits the full pool stands; slot fit narrows, it never empties.
func fitSlot(pool []ScoredTemplate, slotMinutes int) []ScoredTemplate {
	var fitted []ScoredTemplate
	for _, st := range pool {
		if st.Template.DurationMin <= slotMinutes {
			fitted = append(fitted, st)
		}
	}
	if len(fitted) == 0 {
		return pool
	}
	return fitted
}

// simplify re-ranks the pool so shorter and easier templates rise when the
// category runs high friction. Simplification changes which variant wins;
// it never drops the category.
func simplify(pool []ScoredTemplate) []ScoredTemplate {
	out := make([]ScoredTemplate, len(pool))
	for i, st := range pool {
		delta := -simplifyDurationPenalty*float64(st.Template.DurationMin) -
			simplifyDifficultyPenalty*float64(st.Template.Difficulty-1)
		st.Score += delta
		d := delta
		st.Reasons = append(st.Reasons, app.SelectionReason{
			Code:        app.ReasonFrictionSimplify,
			Message:     "High category friction; preferring shorter, simpler variants",
			WeightDelta: &d,
		})
		out[i] = st
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

func partition(pool []ScoredTemplate, histories map[string]feedback.TemplateHistory) (untried, tried []ScoredTemplate) {
	for _, st := range pool {
		if _, seen := histories[st.Template.ID]; seen {
			tried = append(tried, st)
		} else {
			untried = append(untried, st)
		}
	}
	return untried, tried
}

func ratioSlots(count int, ratio float64) int {
	slots := int(math.Round(float64(count) * ratio))
	if slots > count {
		slots = count
	}
	return slots
}

func withReason(st ScoredTemplate, code app.SelectionReasonCode, msg string) ScoredTemplate {
	st.Reasons = append(st.Reasons, app.SelectionReason{Code: code, Message: msg})
	return st
}

// pickDiscovery maximizes novelty: 80% untried / 20% tried, degrading to
// all-untried when too few tried templates exist.
func pickDiscovery(pool []ScoredTemplate, histories map[string]feedback.TemplateHistory, count int) []ScoredTemplate {
	untried, tried := partition(pool, histories)
	untriedWant := ratioSlots(count, discoveryUntriedRatio)

	var picked []ScoredTemplate
	for _, st := range untried {
		if len(picked) >= untriedWant {
			break
		}
		picked = append(picked, withReason(st, app.ReasonUntriedBonus, "Discovery phase: untried template"))
	}
	for _, st := range tried {
		if len(picked) >= count {
			break
		}
		picked = append(picked, st)
	}
	// Degrade gracefully: not enough tried, keep exploring.
	for i := untriedWant; i < len(untried) && len(picked) < count; i++ {
		picked = append(picked, withReason(untried[i], app.ReasonUntriedBonus, "Discovery phase: untried template"))
	}
	return picked
}

// pickEstablishment blends 70% favorites with 30% fresh exploration.
func pickEstablishment(pool []ScoredTemplate, histories map[string]feedback.TemplateHistory, count int) []ScoredTemplate {
	untried, tried := partition(pool, histories)

	var favorites, other []ScoredTemplate
	for _, st := range tried {
		if histories[st.Template.ID].IsFavorite() {
			favorites = append(favorites, st)
		} else {
			other = append(other, st)
		}
	}
	sort.SliceStable(favorites, func(i, j int) bool {
		return histories[favorites[i].Template.ID].CompletionRate >
			histories[favorites[j].Template.ID].CompletionRate
	})

	favWant := ratioSlots(count, establishFavoriteRatio)
	var picked []ScoredTemplate
	for _, st := range favorites {
		if len(picked) >= favWant {
			break
		}
		picked = append(picked, withReason(st, app.ReasonFavorite, "Established favorite"))
	}
	fresh := append(append([]ScoredTemplate{}, untried...), other...)
	for _, st := range fresh {
		if len(picked) >= count {
			break
		}
		picked = append(picked, withReason(st, app.ReasonNovelFill, "Fresh exploration slot"))
	}
	for i := favWant; i < len(favorites) && len(picked) < count; i++ {
		picked = append(picked, withReason(favorites[i], app.ReasonFavorite, "Established favorite"))
	}
	return picked
}

// pickMastery ranks observed templates by 0.7·completion + 0.3·satisfaction/5
// for 85% of slots and keeps 15% for novelty.
func pickMastery(pool []ScoredTemplate, histories map[string]feedback.TemplateHistory, count int) []ScoredTemplate {
	untried, tried := partition(pool, histories)

	sort.SliceStable(tried, func(i, j int) bool {
		return masteryRank(histories[tried[i].Template.ID]) >
			masteryRank(histories[tried[j].Template.ID])
	})

	rankedWant := ratioSlots(count, masteryRankedRatio)
	var picked []ScoredTemplate
	for _, st := range tried {
		if len(picked) >= rankedWant {
			break
		}
		picked = append(picked, withReason(st, app.ReasonTopRanked, "Mastery phase: top performer"))
	}
	for _, st := range untried {
		if len(picked) >= count {
			break
		}
		picked = append(picked, withReason(st, app.ReasonNovelFill, "Mastery phase: novelty slot"))
	}
	for i := rankedWant; i < len(tried) && len(picked) < count; i++ {
		picked = append(picked, withReason(tried[i], app.ReasonTopRanked, "Mastery phase: top performer"))
	}
	return picked
}

func masteryRank(h feedback.TemplateHistory) float64 {
	return 0.7*h.CompletionRate + 0.3*(h.AvgSatisfaction/5)
}
