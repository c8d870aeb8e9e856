package mapper

import (
	"strings"

	"github.com/alexanderramin/dayweave/internal/domain"
)

// rule pairs a lowercase title substring with the category it resolves to.
type rule struct {
	pattern  string
	category domain.Category
}

// keywordRules is scanned in order; the first matching pattern wins, so
// titles touching several categories resolve the same way every time.
// Ordering puts the more specific activity words before generic work terms.
var keywordRules = []rule{
	{"wind down", domain.CategoryRecovery},
	{"cooldown", domain.CategoryRecovery},
	{"rest", domain.CategoryRecovery},
	{"nap", domain.CategoryRecovery},
	{"stretch", domain.CategoryRecovery},
	{"hydrate", domain.CategoryHydration},
	{"water", domain.CategoryHydration},
	{"drink", domain.CategoryHydration},
	{"breakfast", domain.CategoryNutrition},
	{"lunch", domain.CategoryNutrition},
	{"dinner", domain.CategoryNutrition},
	{"snack", domain.CategoryNutrition},
	{"meal", domain.CategoryNutrition},
	{"eat", domain.CategoryNutrition},
	{"meditat", domain.CategoryMindfulness},
	{"breath", domain.CategoryMindfulness},
	{"journal", domain.CategoryMindfulness},
	{"gratitude", domain.CategoryMindfulness},
	{"reflect", domain.CategoryMindfulness},
	{"walk", domain.CategoryMovement},
	{"run", domain.CategoryMovement},
	{"workout", domain.CategoryMovement},
	{"exercise", domain.CategoryMovement},
	{"gym", domain.CategoryMovement},
	{"yoga", domain.CategoryMovement},
	{"call", domain.CategorySocial},
	{"friend", domain.CategorySocial},
	{"family", domain.CategorySocial},
	{"deep work", domain.CategoryWork},
	{"focus", domain.CategoryWork},
	{"meeting", domain.CategoryWork},
	{"email", domain.CategoryWork},
	{"review", domain.CategoryWork},
	{"plan", domain.CategoryWork},
	{"write", domain.CategoryWork},
}

// zoneFallback resolves a category from the surrounding time-zone type when
// neither the hint nor the title matched.
var zoneFallback = map[domain.ZoneType]domain.Category{
	domain.ZonePeak:        domain.CategoryWork,
	domain.ZoneMaintenance: domain.CategoryHydration,
	domain.ZoneRecovery:    domain.CategoryRecovery,
}

// Map classifies an oracle-drafted task into a library category. Resolution
// order, first match wins: exact type hint, ordered keyword scan of the
// title, zone fallback. Returns ok=false when nothing matches, signaling
// the assembler to keep the original draft. Pure function: identical inputs
// always produce identical results.
func Map(title, typeHint string, zone domain.ZoneType) (domain.Category, bool) {
	hint := domain.Category(strings.ToLower(strings.TrimSpace(typeHint)))
	if domain.ValidCategories[hint] {
		return hint, true
	}

	lowered := strings.ToLower(title)
	for _, r := range keywordRules {
		if strings.Contains(lowered, r.pattern) {
			return r.category, true
		}
	}

	if cat, ok := zoneFallback[zone]; ok {
		return cat, true
	}
	return "", false
}
