package selector

import (
	"context"
	"testing"

	"github.com/alexanderramin/dayweave/internal/app"
	"github.com/alexanderramin/dayweave/internal/domain"
	"github.com/alexanderramin/dayweave/internal/repository"
	"github.com/alexanderramin/dayweave/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCandidateFixture(t *testing.T) (*repository.SQLiteTemplateRepo, *CandidateSelector) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTemplateRepo(database)
	return repo, NewCandidateSelector(repo, WithJitterSeed(42))
}

func TestGetCandidates_EmptyCategoryReturnsNil(t *testing.T) {
	_, sel := newCandidateFixture(t)

	got, err := sel.GetCandidates(context.Background(), CandidateQuery{
		Category:  domain.CategoryHydration,
		Archetype: domain.ArchetypePeakPerformer,
		Mode:      domain.ModeStandard,
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetCandidates_FiltersInactiveAndTimeOfDay(t *testing.T) {
	repo, sel := newCandidateFixture(t)
	ctx := context.Background()

	morning := testutil.NewTestTemplate(domain.CategoryMovement, testutil.WithTimeOfDay(domain.TimeMorning))
	evening := testutil.NewTestTemplate(domain.CategoryMovement, testutil.WithTimeOfDay(domain.TimeEvening))
	anytime := testutil.NewTestTemplate(domain.CategoryMovement)
	inactive := testutil.NewTestTemplate(domain.CategoryMovement, testutil.WithInactive())
	for _, tpl := range []*domain.Template{morning, evening, anytime, inactive} {
		require.NoError(t, repo.Create(ctx, tpl))
	}

	got, err := sel.GetCandidates(ctx, CandidateQuery{
		Category:  domain.CategoryMovement,
		Archetype: domain.ArchetypePeakPerformer,
		Mode:      domain.ModeStandard,
		TimeOfDay: domain.TimeMorning,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	ids := []string{got[0].Template.ID, got[1].Template.ID}
	assert.Contains(t, ids, morning.ID)
	assert.Contains(t, ids, anytime.ID)
}

func TestGetCandidates_BaseScoreWeightsFit(t *testing.T) {
	repo, sel := newCandidateFixture(t)
	ctx := context.Background()

	strong := testutil.NewTestTemplate(domain.CategoryWork,
		testutil.WithArchetypeFit(domain.ArchetypePeakPerformer, 1.0),
		testutil.WithModeFit(domain.ModeHighEnergy, 1.0))
	weak := testutil.NewTestTemplate(domain.CategoryWork,
		testutil.WithArchetypeFit(domain.ArchetypePeakPerformer, 0.0),
		testutil.WithModeFit(domain.ModeHighEnergy, 0.0))
	require.NoError(t, repo.Create(ctx, strong))
	require.NoError(t, repo.Create(ctx, weak))

	got, err := sel.GetCandidates(ctx, CandidateQuery{
		Category:  domain.CategoryWork,
		Archetype: domain.ArchetypePeakPerformer,
		Mode:      domain.ModeHighEnergy,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Base scores are 1.0 vs 0.0; jitter is bounded by ±0.1 so the strong
	// fit always ranks first.
	assert.Equal(t, strong.ID, got[0].Template.ID)
	assert.InDelta(t, 1.0, got[0].Score, jitterBound+1e-9)
	assert.InDelta(t, 0.0, got[1].Score, jitterBound+1e-9)
}

func TestGetCandidates_MissingWeightsDefaultToHalf(t *testing.T) {
	repo, sel := newCandidateFixture(t)
	ctx := context.Background()

	tpl := testutil.NewTestTemplate(domain.CategoryRecovery)
	require.NoError(t, repo.Create(ctx, tpl))

	got, err := sel.GetCandidates(ctx, CandidateQuery{
		Category:  domain.CategoryRecovery,
		Archetype: domain.ArchetypeMinimalist,
		Mode:      domain.ModeTravel,
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.InDelta(t, 0.5, got[0].Score, jitterBound+1e-9)
}

func TestGetCandidates_ExcludesVariationGroups(t *testing.T) {
	repo, sel := newCandidateFixture(t)
	ctx := context.Background()

	cooling := testutil.NewTestTemplate(domain.CategoryNutrition, testutil.WithVariationGroup("vg-a"))
	fresh := testutil.NewTestTemplate(domain.CategoryNutrition, testutil.WithVariationGroup("vg-b"))
	require.NoError(t, repo.Create(ctx, cooling))
	require.NoError(t, repo.Create(ctx, fresh))

	got, err := sel.GetCandidates(ctx, CandidateQuery{
		Category:       domain.CategoryNutrition,
		Archetype:      domain.ArchetypeExplorer,
		Mode:           domain.ModeStandard,
		ExcludedGroups: map[string]bool{"vg-a": true},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, fresh.ID, got[0].Template.ID)
}

func TestGetCandidates_RelaxesWhenAllExcluded(t *testing.T) {
	repo, sel := newCandidateFixture(t)
	ctx := context.Background()

	only := testutil.NewTestTemplate(domain.CategoryNutrition, testutil.WithVariationGroup("vg-a"))
	require.NoError(t, repo.Create(ctx, only))

	got, err := sel.GetCandidates(ctx, CandidateQuery{
		Category:       domain.CategoryNutrition,
		Archetype:      domain.ArchetypeExplorer,
		Mode:           domain.ModeStandard,
		ExcludedGroups: map[string]bool{"vg-a": true},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)

	relaxed := false
	for _, r := range got[0].Reasons {
		if r.Code == app.ReasonRotationRelaxed {
			relaxed = true
		}
	}
	assert.True(t, relaxed, "expected ROTATION_RELAXED reason")
}

func TestGetCandidates_SeededJitterIsReproducible(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteTemplateRepo(database)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, testutil.NewTestTemplate(domain.CategoryMindfulness)))
	}

	q := CandidateQuery{
		Category:  domain.CategoryMindfulness,
		Archetype: domain.ArchetypeExplorer,
		Mode:      domain.ModeStandard,
	}
	first, err := NewCandidateSelector(repo, WithJitterSeed(7)).GetCandidates(ctx, q)
	require.NoError(t, err)
	second, err := NewCandidateSelector(repo, WithJitterSeed(7)).GetCandidates(ctx, q)
	require.NoError(t, err)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Template.ID, second[i].Template.ID)
		assert.InDelta(t, first[i].Score, second[i].Score, 1e-12)
	}
}

func TestGetCandidates_Limit(t *testing.T) {
	repo, sel := newCandidateFixture(t)
	ctx := context.Background()
	for i := 0; i < 6; i++ {
		require.NoError(t, repo.Create(ctx, testutil.NewTestTemplate(domain.CategorySocial)))
	}

	got, err := sel.GetCandidates(ctx, CandidateQuery{
		Category:  domain.CategorySocial,
		Archetype: domain.ArchetypeExplorer,
		Mode:      domain.ModeStandard,
		Limit:     3,
	})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}
