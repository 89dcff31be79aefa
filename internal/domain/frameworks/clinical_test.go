package frameworks

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equilibra/v1/internal/domain/food"
	"github.com/equilibra/v1/internal/domain/profile"
	"github.com/equilibra/v1/internal/domain/scoring"
)

func clinicalProfile() profile.ClinicalProfile {
	return profile.ClinicalProfile{
		UserID:   uuid.New(),
		Severity: 2,
	}
}

func clinicalFood(attrs food.ClinicalAttributes) food.Food {
	return food.Food{
		ID:       uuid.New(),
		Name:     "test food",
		Category: food.CategoryGrain,
		Clinical: &attrs,
	}
}

func TestClinicalDiabetesHighGIPenalty(t *testing.T) {
	prof := clinicalProfile()
	prof.RiskFlags = []profile.RiskFlag{profile.RiskDiabetes}

	highGI := clinicalFood(food.ClinicalAttributes{GlycemicIndex: 80})
	delta, reasons := clinicalRisk(prof, highGI)
	assert.Equal(t, -15.0, delta)
	assert.Contains(t, reasons, "high glycemic index is unsafe with diabetes")

	moderateGI := clinicalFood(food.ClinicalAttributes{GlycemicIndex: 60})
	delta, _ = clinicalRisk(prof, moderateGI)
	assert.Equal(t, -6.0, delta)

	lowGI := clinicalFood(food.ClinicalAttributes{GlycemicIndex: 30})
	delta, _ = clinicalRisk(prof, lowGI)
	assert.Zero(t, delta)
}

func TestClinicalHypertensionSodiumPenalty(t *testing.T) {
	prof := clinicalProfile()
	prof.RiskFlags = []profile.RiskFlag{profile.RiskHypertension}

	salty := clinicalFood(food.ClinicalAttributes{Sodium: 500})
	delta, _ := clinicalRisk(prof, salty)
	assert.Equal(t, -12.0, delta)

	moderate := clinicalFood(food.ClinicalAttributes{Sodium: 250})
	delta, _ = clinicalRisk(prof, moderate)
	assert.Equal(t, -6.0, delta)
}

func TestClinicalHeartDiseaseTransFat(t *testing.T) {
	prof := clinicalProfile()
	prof.RiskFlags = []profile.RiskFlag{profile.RiskHeartDisease}

	f := clinicalFood(food.ClinicalAttributes{TransFat: 0.5, SaturatedFat: 6})
	delta, _ := clinicalRisk(prof, f)
	assert.Equal(t, -24.0, delta)
}

func TestClinicalLactoseIntoleranceHardMatch(t *testing.T) {
	prof := clinicalProfile()
	prof.Intolerances = []profile.Intolerance{profile.IntoleranceLactose}

	milk := clinicalFood(food.ClinicalAttributes{})
	milk.Category = food.CategoryDairy

	delta, reasons := clinicalDigestive(prof, milk)
	assert.Equal(t, -10.0, delta)
	assert.Contains(t, reasons, "dairy conflicts with lactose intolerance")

	rice := clinicalFood(food.ClinicalAttributes{})
	delta, _ = clinicalDigestive(prof, rice)
	assert.Zero(t, delta)
}

func TestClinicalGlutenIntolerance(t *testing.T) {
	prof := clinicalProfile()
	prof.Intolerances = []profile.Intolerance{profile.IntoleranceGluten}

	bread := clinicalFood(food.ClinicalAttributes{})
	bread.Tags = []string{food.TagGluten}

	delta, _ := clinicalDigestive(prof, bread)
	assert.Equal(t, -10.0, delta)
}

func TestClinicalRefluxTriggers(t *testing.T) {
	prof := clinicalProfile()
	prof.Intolerances = []profile.Intolerance{profile.IntoleranceReflux}

	coffee := clinicalFood(food.ClinicalAttributes{Caffeinated: true})
	delta, _ := clinicalDigestive(prof, coffee)
	assert.Equal(t, -4.0, delta)

	fatty := clinicalFood(food.ClinicalAttributes{Fat: 20})
	delta, _ = clinicalDigestive(prof, fatty)
	assert.Equal(t, -4.0, delta)

	chili := clinicalFood(food.ClinicalAttributes{})
	chili.Category = food.CategorySpice
	delta, _ = clinicalDigestive(prof, chili)
	assert.Equal(t, -4.0, delta)
}

func TestClinicalGoalAlignment(t *testing.T) {
	prof := clinicalProfile()
	prof.Goals = []profile.Goal{profile.GoalWeightLoss}

	lean := clinicalFood(food.ClinicalAttributes{Calories: 80, Fiber: 4})
	delta, _ := clinicalGoals(prof, lean)
	assert.Equal(t, 8.0, delta)

	dense := clinicalFood(food.ClinicalAttributes{Calories: 400})
	delta, _ = clinicalGoals(prof, dense)
	assert.Equal(t, -4.0, delta)

	prof.Goals = []profile.Goal{profile.GoalMuscleGain}
	proteinRich := clinicalFood(food.ClinicalAttributes{Protein: 20})
	delta, _ = clinicalGoals(prof, proteinRich)
	assert.Equal(t, 8.0, delta)
}

func TestClinicalLifestyleLoad(t *testing.T) {
	prof := clinicalProfile()
	prof.StressLevel = profile.LoadHigh

	salmonLike := clinicalFood(food.ClinicalAttributes{
		NutrientTags: []string{food.NutrientOmega3, food.NutrientBVitamins},
	})
	delta, _ := clinicalLifestyle(prof, salmonLike)
	assert.Equal(t, 4.0, delta)

	coffee := clinicalFood(food.ClinicalAttributes{Caffeinated: true})
	delta, reasons := clinicalLifestyle(prof, coffee)
	assert.Equal(t, -4.0, delta)
	assert.Contains(t, reasons, "caffeine worsens stress and sleep load")

	// Without load factors the component is silent.
	calm := clinicalProfile()
	delta, reasons = clinicalLifestyle(calm, coffee)
	assert.Zero(t, delta)
	assert.Empty(t, reasons)
}

func TestClinicalNutrientQuality(t *testing.T) {
	dense := clinicalFood(food.ClinicalAttributes{
		MicronutrientDensity:  8,
		AntiInflammatoryScore: 5,
		Fiber:                 4,
		Protein:               10,
	})
	delta, reasons := clinicalQuality(clinicalProfile(), dense)
	assert.InDelta(t, 8*0.5+5*0.4+1+1, delta, 1e-9)
	assert.Contains(t, reasons, "micronutrient dense")

	processed := clinicalFood(food.ClinicalAttributes{
		AddedSugar:          true,
		Preservatives:       true,
		ArtificialAdditives: true,
	})
	delta, _ = clinicalQuality(clinicalProfile(), processed)
	assert.Equal(t, -4.0, delta)
}

func TestClinicalEndToEndTiering(t *testing.T) {
	engine := scoring.NewEngine(Clinical())

	prof := clinicalProfile()
	prof.RiskFlags = []profile.RiskFlag{profile.RiskDiabetes}

	whiteBread := clinicalFood(food.ClinicalAttributes{GlycemicIndex: 75, GlycemicLoad: 25})
	whiteBread.Name = "white bread"

	scored, err := engine.Score(prof, whiteBread)
	require.NoError(t, err)

	tiered := scoring.BuildTiers([]scoring.ScoredFood{*scored}, scoring.AbsolutePolicy())
	tier, ok := tiered.TierOf("white bread")
	require.True(t, ok)
	assert.Equal(t, scoring.TierAvoid, tier)
}

func TestClinicalIncompatibleCombinations(t *testing.T) {
	incompatible := clinicalIncompatible()

	beef := food.Food{Category: food.CategoryMeat}
	milk := food.Food{Category: food.CategoryDairy}
	lentils := food.Food{Category: food.CategoryLegume}
	rice := food.Food{Category: food.CategoryGrain}
	apple := food.Food{Category: food.CategoryFruit}
	spinach := food.Food{
		Category: food.CategoryVegetable,
		Clinical: &food.ClinicalAttributes{NutrientTags: []string{food.NutrientIron}},
	}

	assert.True(t, incompatible(beef, milk), "meat is an iron source")
	assert.True(t, incompatible(spinach, milk), "iron-tagged vegetable with dairy")
	assert.True(t, incompatible(lentils, rice))
	assert.True(t, incompatible(apple, rice), "fruit is taken alone")
	assert.False(t, incompatible(rice, spinach))
}

func TestClinicalProteinPreference(t *testing.T) {
	muscle := clinicalProfile()
	muscle.Goals = []profile.Goal{profile.GoalMuscleGain}
	assert.Equal(t, food.CategoryMeat, clinicalProteins(muscle)[0])

	heart := clinicalProfile()
	heart.RiskFlags = []profile.RiskFlag{profile.RiskHeartDisease}
	assert.NotContains(t, clinicalProteins(heart), food.CategoryMeat)
}

func TestClinicalPlanBudgetsCalories(t *testing.T) {
	rules := clinicalPlanRules()
	require.NotNil(t, rules.DailyCalories)

	withTarget := clinicalProfile()
	withTarget.DailyCalorieTarget = 1800
	assert.Equal(t, 1800, rules.DailyCalories(withTarget))

	assert.Equal(t, profile.DefaultDailyCalories, rules.DailyCalories(clinicalProfile()))

	var shares float64
	for _, meal := range rules.Meals {
		shares += meal.CalorieShare
	}
	assert.InDelta(t, 1.0, shares, 1e-9)
}
