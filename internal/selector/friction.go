package selector

import (
	"sort"

	"github.com/alexanderramin/dayweave/internal/domain"
	"github.com/alexanderramin/dayweave/internal/feedback"
)

// Retention priority weights per friction level. These bias which variant
// is requested and the ordering of categories; they never gate inclusion.
var priorityWeights = map[domain.FrictionLevel]float64{
	domain.FrictionLow:    0.8,
	domain.FrictionMedium: 0.5,
	domain.FrictionHigh:   0.3,
}

// PriorityWeight returns the retention priority for a friction level.
// Unknown levels (including a category with no history) rate as low
// friction.
func PriorityWeight(level domain.FrictionLevel) float64 {
	if w, ok := priorityWeights[level]; ok {
		return w
	}
	return priorityWeights[domain.FrictionLow]
}

// Prioritize converts per-category friction into retention priorities.
// Every input category gets a weight; none is ever excluded.
func Prioritize(categories []domain.Category, stats map[domain.Category]feedback.Stats) map[domain.Category]float64 {
	out := make(map[domain.Category]float64, len(categories))
	for _, cat := range categories {
		level := domain.FrictionLow
		if s, ok := stats[cat]; ok {
			level = s.Level
		}
		out[cat] = PriorityWeight(level)
	}
	return out
}

// OrderByPriority returns the categories sorted by descending priority
// weight, ties broken alphabetically for determinism.
func OrderByPriority(weights map[domain.Category]float64) []domain.Category {
	out := make([]domain.Category, 0, len(weights))
	for cat := range weights {
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool {
		if weights[out[i]] != weights[out[j]] {
			return weights[out[i]] > weights[out[j]]
		}
		return out[i] < out[j]
	})
	return out
}
