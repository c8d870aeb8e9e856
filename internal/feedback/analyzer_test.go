package feedback

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/dayweave/internal/domain"
	"github.com/alexanderramin/dayweave/internal/repository"
	"github.com/alexanderramin/dayweave/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrictionScore_ScenarioNutrition(t *testing.T) {
	// 60 seen / 45 completed / avg satisfaction 3.0:
	// 0.6*(1-0.75) + 0.4*(1-0.6) = 0.31 -> medium
	score := FrictionScore(0.75, 3.0)
	assert.InDelta(t, 0.31, score, 1e-9)
	assert.Equal(t, domain.FrictionMedium, ClassifyFriction(score))
}

func TestFrictionScore_Bounds(t *testing.T) {
	assert.InDelta(t, 0.0, FrictionScore(1.0, 5.0), 1e-9)
	assert.InDelta(t, 1.0, FrictionScore(0.0, 0.0), 1e-9)
}

func TestFrictionScore_MonotoneInCompletionRate(t *testing.T) {
	// Holding satisfaction fixed, raising completion never raises friction.
	prev := FrictionScore(0.0, 3.5)
	for rate := 0.05; rate <= 1.0; rate += 0.05 {
		cur := FrictionScore(rate, 3.5)
		assert.LessOrEqual(t, cur, prev, "friction rose at completion rate %.2f", rate)
		prev = cur
	}
}

func TestClassifyFriction_Boundaries(t *testing.T) {
	assert.Equal(t, domain.FrictionLow, ClassifyFriction(0.3))
	assert.Equal(t, domain.FrictionMedium, ClassifyFriction(0.31))
	assert.Equal(t, domain.FrictionMedium, ClassifyFriction(0.6))
	assert.Equal(t, domain.FrictionHigh, ClassifyFriction(0.61))
}

func TestComputeCategoryStats_NoRatingsUsesNeutralSatisfaction(t *testing.T) {
	records := []*domain.FeedbackRecord{
		testutil.NewTestFeedback("u1", domain.CategoryWork),
		testutil.NewTestFeedback("u1", domain.CategoryWork, testutil.WithStatus(domain.StatusSkipped)),
	}
	stats := ComputeCategoryStats(records)
	s := stats[domain.CategoryWork]
	assert.Equal(t, 2, s.SeenCount)
	assert.Equal(t, 1, s.CompletedCount)
	assert.InDelta(t, 3.0, s.AvgSatisfaction, 1e-9)
}

func TestAnalyzer_CategoryStats_TrailingWindow(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteFeedbackRepo(database)
	analyzer := NewAnalyzer(repo)
	ctx := context.Background()
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	inside := testutil.NewTestFeedback("u1", domain.CategoryHydration,
		testutil.WithCompletedAt(now.AddDate(0, 0, -3)),
		testutil.WithSatisfaction(5))
	outside := testutil.NewTestFeedback("u1", domain.CategoryHydration,
		testutil.WithCompletedAt(now.AddDate(0, 0, -45)),
		testutil.WithStatus(domain.StatusSkipped))
	require.NoError(t, repo.Append(ctx, inside))
	require.NoError(t, repo.Append(ctx, outside))

	stats, err := analyzer.CategoryStats(ctx, "u1", 30, now)
	require.NoError(t, err)
	s, ok := stats[domain.CategoryHydration]
	require.True(t, ok)
	assert.Equal(t, 1, s.SeenCount)
	assert.InDelta(t, 1.0, s.CompletionRate, 1e-9)
	assert.Equal(t, domain.FrictionLow, s.Level)
}

func TestAnalyzer_TemplateHistories_FavoriteThreshold(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteFeedbackRepo(database)
	analyzer := NewAnalyzer(repo)
	ctx := context.Background()

	// One observation: never a favorite regardless of completion.
	require.NoError(t, repo.Append(ctx, testutil.NewTestFeedback("u1", domain.CategoryMovement,
		testutil.WithTemplateRef("tpl-once"))))

	// Three observations, all completed: favorite.
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Append(ctx, testutil.NewTestFeedback("u1", domain.CategoryMovement,
			testutil.WithTemplateRef("tpl-loved"), testutil.WithSatisfaction(5))))
	}

	// Kept-original records carry no template and are ignored here.
	require.NoError(t, repo.Append(ctx, testutil.NewTestFeedback("u1", domain.CategoryMovement)))

	histories, err := analyzer.TemplateHistories(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, histories, 2)
	assert.False(t, histories["tpl-once"].IsFavorite())
	assert.True(t, histories["tpl-loved"].IsFavorite())
	assert.InDelta(t, 5.0, histories["tpl-loved"].AvgSatisfaction, 1e-9)
}
