package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equilibra/v1/internal/domain/food"
)

func scoredFixture(scores ...float64) []ScoredFood {
	scored := make([]ScoredFood, len(scores))
	for i, s := range scores {
		scored[i] = ScoredFood{
			Food:  testFood(fmt.Sprintf("food-%02d", i)),
			Score: s,
		}
	}
	return scored
}

func TestBuildTiersPercentileSplit(t *testing.T) {
	scored := scoredFixture(10, 9, 8, 7, 6, 5, 4, 3, 2, 1)
	tiered := BuildTiers(scored, PercentilePolicy(0))

	assert.Len(t, tiered.HighlyRecommended, 3)
	assert.Len(t, tiered.Moderate, 4)
	assert.Len(t, tiered.Avoid, 3)
	assert.Equal(t, len(scored), tiered.Len())

	assert.Equal(t, 10.0, tiered.HighlyRecommended[0].Score)
	assert.Equal(t, 1.0, tiered.Avoid[len(tiered.Avoid)-1].Score)
}

func TestBuildTiersEveryFoodLandsOnce(t *testing.T) {
	scored := scoredFixture(3, 1, 4, 1, 5, 9, 2, 6)
	tiered := BuildTiers(scored, PercentilePolicy(0))

	seen := map[string]int{}
	for _, s := range tiered.Ranked() {
		seen[s.Food.Name]++
	}
	require.Len(t, seen, len(scored))
	for name, n := range seen {
		assert.Equal(t, 1, n, "food %s tiered %d times", name, n)
	}
}

func TestBuildTiersStableTies(t *testing.T) {
	scored := scoredFixture(5, 5, 5)
	tiered := BuildTiers(scored, PercentilePolicy(0))

	ranked := tiered.Ranked()
	require.Len(t, ranked, 3)
	assert.Equal(t, "food-00", ranked[0].Food.Name)
	assert.Equal(t, "food-01", ranked[1].Food.Name)
	assert.Equal(t, "food-02", ranked[2].Food.Name)
}

func TestBuildTiersAbsoluteThresholds(t *testing.T) {
	scored := scoredFixture(15, 10, 9.9, 0, -0.1, -20)
	tiered := BuildTiers(scored, AbsolutePolicy())

	assert.Len(t, tiered.HighlyRecommended, 2)
	assert.Len(t, tiered.Moderate, 2)
	assert.Len(t, tiered.Avoid, 2)
}

func TestBuildTiersTinyCatalog(t *testing.T) {
	scored := scoredFixture(2, 1)
	tiered := BuildTiers(scored, PercentilePolicy(0))

	// 30% of 2 truncates to zero; both land outside the top tier.
	assert.Empty(t, tiered.HighlyRecommended)
	assert.Equal(t, 2, tiered.Len())
}

func TestPlanningPoolExcludesAvoidAndHonorsCap(t *testing.T) {
	scored := scoredFixture(10, 9, 8, 7, 6, 5, 4, 3, 2, 1)

	uncapped := BuildTiers(scored, PercentilePolicy(0))
	assert.Len(t, uncapped.PlanningPool(), 7)

	capped := BuildTiers(scored, PercentilePolicy(5))
	pool := capped.PlanningPool()
	require.Len(t, pool, 5)
	assert.Equal(t, 10.0, pool[0].Score)
	assert.Equal(t, 6.0, pool[4].Score)
}

func TestFilterPreservesTierMembership(t *testing.T) {
	scored := scoredFixture(10, 9, 8, 7, 6, 5, 4, 3, 2, 1)
	tiered := BuildTiers(scored, PercentilePolicy(4))

	filtered := tiered.Filter(func(s ScoredFood) bool {
		return s.Food.Name != "food-00"
	})

	assert.Equal(t, tiered.Len()-1, filtered.Len())
	_, found := filtered.TierOf("food-00")
	assert.False(t, found)

	// Filtering never promotes a food into a higher tier.
	for _, s := range filtered.Moderate {
		tier, ok := tiered.TierOf(s.Food.Name)
		require.True(t, ok)
		assert.Equal(t, TierModerate, tier)
	}

	// The planning cap survives filtering.
	assert.LessOrEqual(t, len(filtered.PlanningPool()), 4)
}

func TestTierOf(t *testing.T) {
	scored := scoredFixture(10, 9, 8, 7, 6, 5, 4, 3, 2, 1)
	tiered := BuildTiers(scored, PercentilePolicy(0))

	tier, ok := tiered.TierOf("food-00")
	require.True(t, ok)
	assert.Equal(t, TierHighlyRecommended, tier)

	tier, ok = tiered.TierOf("food-09")
	require.True(t, ok)
	assert.Equal(t, TierAvoid, tier)

	_, ok = tiered.TierOf("missing")
	assert.False(t, ok)
}

func TestBuildTiersAbsoluteZeroScore(t *testing.T) {
	// A zero score sits exactly on the moderate threshold.
	tiered := BuildTiers([]ScoredFood{{Food: food.Food{Name: "carrot", Category: food.CategoryVegetable}}}, AbsolutePolicy())
	tier, ok := tiered.TierOf("carrot")
	require.True(t, ok)
	assert.Equal(t, TierModerate, tier)
}
