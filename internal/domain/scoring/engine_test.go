package scoring

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equilibra/v1/internal/domain/food"
	"github.com/equilibra/v1/internal/domain/profile"
)

// stubProfile lets the engine tests run without a real framework.
type stubProfile struct {
	framework profile.Framework
	invalid   bool
}

func (s stubProfile) Framework() profile.Framework { return s.framework }
func (s stubProfile) SeverityGrade() int           { return 1 }
func (s stubProfile) Validate() error {
	if s.invalid {
		return errors.New("invalid profile")
	}
	return nil
}

// stubRules scores every food by name length and excludes foods tagged
// "excluded".
type stubRules struct{}

func (stubRules) Framework() profile.Framework { return profile.FrameworkClinical }

func (stubRules) Scoreable(f food.Food) error {
	if f.HasTag("excluded") {
		return ErrMissingAttributes
	}
	return nil
}

func (stubRules) Components() []Component {
	return []Component{
		{
			Name: "name_length",
			Score: func(p profile.Profile, f food.Food) (float64, []string) {
				return float64(len(f.Name)), []string{"length of " + f.Name}
			},
		},
		{
			Name: "constant",
			Score: func(p profile.Profile, f food.Food) (float64, []string) {
				return 1, nil
			},
		},
	}
}

func (stubRules) Tiering() TieringPolicy { return PercentilePolicy(0) }

func testFood(name string, tags ...string) food.Food {
	return food.Food{
		ID:       uuid.New(),
		Name:     name,
		Category: food.CategoryGrain,
		Tags:     tags,
	}
}

func TestScoreSumsComponents(t *testing.T) {
	engine := NewEngine(stubRules{})
	prof := stubProfile{framework: profile.FrameworkClinical}

	scored, err := engine.Score(prof, testFood("oats"))
	require.NoError(t, err)

	assert.Equal(t, 5.0, scored.Score)
	assert.Equal(t, 4.0, scored.Breakdown["name_length"])
	assert.Equal(t, 1.0, scored.Breakdown["constant"])
	assert.Equal(t, []string{"length of oats"}, scored.Reasons)
}

func TestScoreFrameworkMismatch(t *testing.T) {
	engine := NewEngine(stubRules{})
	prof := stubProfile{framework: profile.FrameworkAyurveda}

	_, err := engine.Score(prof, testFood("oats"))
	assert.ErrorIs(t, err, ErrFrameworkMismatch)
}

func TestScoreReturnsExclusionReason(t *testing.T) {
	engine := NewEngine(stubRules{})
	prof := stubProfile{framework: profile.FrameworkClinical}

	_, err := engine.Score(prof, testFood("lard", "excluded"))
	assert.ErrorIs(t, err, ErrMissingAttributes)
}

func TestScoreRejectsInvalidFood(t *testing.T) {
	engine := NewEngine(stubRules{})
	prof := stubProfile{framework: profile.FrameworkClinical}

	_, err := engine.Score(prof, food.Food{Name: "no id", Category: food.CategoryGrain})
	assert.ErrorIs(t, err, food.ErrMissingID)
}

func TestScoreCatalogKeepsInsertionOrder(t *testing.T) {
	engine := NewEngine(stubRules{})
	prof := stubProfile{framework: profile.FrameworkClinical}

	catalog := make([]food.Food, 40)
	for i := range catalog {
		catalog[i] = testFood(fmt.Sprintf("food-%02d", i))
	}

	result, err := engine.ScoreCatalog(context.Background(), prof, catalog)
	require.NoError(t, err)
	require.Len(t, result.Scored, len(catalog))

	for i, s := range result.Scored {
		assert.Equal(t, catalog[i].Name, s.Food.Name)
	}
}

func TestScoreCatalogSeparatesExclusions(t *testing.T) {
	engine := NewEngine(stubRules{})
	prof := stubProfile{framework: profile.FrameworkClinical}

	catalog := []food.Food{
		testFood("oats"),
		testFood("lard", "excluded"),
		testFood("rice"),
	}

	result, err := engine.ScoreCatalog(context.Background(), prof, catalog)
	require.NoError(t, err)

	require.Len(t, result.Scored, 2)
	require.Len(t, result.Exclusions, 1)
	assert.Equal(t, "lard", result.Exclusions[0].Food.Name)
	assert.ErrorIs(t, result.Exclusions[0].Reason, ErrMissingAttributes)
	assert.InDelta(t, 2.0/3.0, result.Completeness(), 1e-9)
}

func TestScoreCatalogRejectsInvalidProfile(t *testing.T) {
	engine := NewEngine(stubRules{})
	prof := stubProfile{framework: profile.FrameworkClinical, invalid: true}

	_, err := engine.ScoreCatalog(context.Background(), prof, []food.Food{testFood("oats")})
	assert.Error(t, err)
}

func TestScoreCatalogHonorsContextCancellation(t *testing.T) {
	engine := NewEngine(stubRules{})
	prof := stubProfile{framework: profile.FrameworkClinical}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	catalog := make([]food.Food, 100)
	for i := range catalog {
		catalog[i] = testFood(fmt.Sprintf("food-%d", i))
	}

	_, err := engine.ScoreCatalog(ctx, prof, catalog)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompletenessEmptyResult(t *testing.T) {
	assert.Equal(t, 0.0, Result{}.Completeness())
}
