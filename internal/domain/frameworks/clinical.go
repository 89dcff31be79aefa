package frameworks

import (
	"fmt"

	"github.com/equilibra/v1/internal/domain/food"
	"github.com/equilibra/v1/internal/domain/planner"
	"github.com/equilibra/v1/internal/domain/profile"
	"github.com/equilibra/v1/internal/domain/scoring"
)

// Clinical returns the evidence-based framework rule set.
//
// Five components, each with an explicit integer multiplier:
// goal alignment x4, metabolic risk x3, digestive triggers x2
// (intolerance matches are a hard -10), lifestyle load x2, and base
// nutrient quality x1.
func Clinical() *RuleSet {
	return &RuleSet{
		framework: profile.FrameworkClinical,
		scoreable: func(f food.Food) error {
			if f.Clinical == nil {
				return scoring.ErrMissingAttributes
			}
			if err := f.Clinical.Validate(); err != nil {
				return fmt.Errorf("clinical attributes: %w", err)
			}
			return nil
		},
		components: []scoring.Component{
			{Name: "goal_alignment", Score: clinicalGoals},
			{Name: "metabolic_risk", Score: clinicalRisk},
			{Name: "digestive_adjustment", Score: clinicalDigestive},
			{Name: "lifestyle_load", Score: clinicalLifestyle},
			{Name: "nutrient_quality", Score: clinicalQuality},
		},
		tiering: scoring.AbsolutePolicy(),
		plan:    clinicalPlanRules(),
	}
}

// Thresholds for the clinical rule tables, per 100g.
const (
	highCalorieDensity  = 250.0
	lowCalorieDensity   = 150.0
	goodFiber           = 3.0
	goodProtein         = 8.0
	highProtein         = 15.0
	highGI              = 70.0
	moderateGI          = 55.0
	lowGI               = 40.0
	highGlycemicLoad    = 20.0
	highSodium          = 400.0
	moderateSodium      = 200.0
	highSaturatedFat    = 5.0
	highFat             = 15.0
)

func clinicalGoals(p profile.Profile, f food.Food) (float64, []string) {
	prof := p.(profile.ClinicalProfile)
	attrs := *f.Clinical

	var raw float64
	var reasons []string

	if prof.HasGoal(profile.GoalWeightLoss) {
		if attrs.Calories > highCalorieDensity {
			raw--
			reasons = append(reasons, "calorie-dense, works against weight loss")
		} else if attrs.Calories < lowCalorieDensity {
			raw++
			reasons = append(reasons, "low calorie density supports weight loss")
		}
		if attrs.Fiber >= goodFiber {
			raw++
			reasons = append(reasons, "fiber promotes satiety")
		}
		if attrs.GlycemicLoad >= highGlycemicLoad {
			raw--
		}
	}
	if prof.HasGoal(profile.GoalWeightGain) {
		if attrs.Calories > highCalorieDensity {
			raw++
			reasons = append(reasons, "calorie-dense, supports weight gain")
		} else if attrs.Calories < 100 {
			raw--
		}
	}
	if prof.HasGoal(profile.GoalMuscleGain) {
		switch {
		case attrs.Protein >= highProtein:
			raw += 2
			reasons = append(reasons, "protein-dense, supports muscle gain")
		case attrs.Protein >= goodProtein:
			raw++
		}
	}
	if prof.HasGoal(profile.GoalBloodSugar) {
		switch {
		case attrs.GlycemicIndex >= highGI:
			raw -= 2
			reasons = append(reasons, "high glycemic index works against glucose control")
		case attrs.GlycemicIndex > 0 && attrs.GlycemicIndex <= lowGI:
			raw++
			reasons = append(reasons, "low glycemic index supports glucose control")
		}
		if attrs.Fiber >= goodFiber {
			raw++
		}
	}
	if prof.HasGoal(profile.GoalHeartHealth) {
		if attrs.SaturatedFat >= highSaturatedFat {
			raw--
			reasons = append(reasons, "saturated fat works against heart health")
		}
		if attrs.TransFat > 0 {
			raw -= 2
			reasons = append(reasons, "contains trans fat")
		}
		if attrs.Fiber >= goodFiber {
			raw++
		}
		if attrs.HasNutrientTag(food.NutrientOmega3) {
			raw++
			reasons = append(reasons, "omega-3 source for heart health")
		}
	}
	if prof.HasGoal(profile.GoalGutHealth) {
		if attrs.Fiber >= goodFiber {
			raw += 1.5
			reasons = append(reasons, "fiber feeds the gut microbiome")
		}
		if attrs.ArtificialAdditives {
			raw--
		}
	}
	return raw * 4, reasons
}

func clinicalRisk(p profile.Profile, f food.Food) (float64, []string) {
	prof := p.(profile.ClinicalProfile)
	attrs := *f.Clinical

	var raw float64
	var reasons []string

	if prof.HasRisk(profile.RiskDiabetes) {
		switch {
		case attrs.GlycemicIndex >= highGI:
			raw -= 5
			reasons = append(reasons, "high glycemic index is unsafe with diabetes")
		case attrs.GlycemicIndex >= moderateGI:
			raw -= 2
			reasons = append(reasons, "moderate glycemic index needs portion care with diabetes")
		}
		if attrs.GlycemicLoad >= highGlycemicLoad {
			raw -= 2
		}
	}
	if prof.HasRisk(profile.RiskHypertension) {
		switch {
		case attrs.Sodium >= highSodium:
			raw -= 4
			reasons = append(reasons, "sodium load aggravates hypertension")
		case attrs.Sodium >= moderateSodium:
			raw -= 2
		}
	}
	if prof.HasRisk(profile.RiskHeartDisease) {
		if attrs.SaturatedFat >= highSaturatedFat {
			raw -= 3
			reasons = append(reasons, "saturated fat aggravates heart disease")
		}
		if attrs.TransFat > 0 {
			raw -= 5
			reasons = append(reasons, "trans fat is contraindicated with heart disease")
		}
	}
	if prof.HasRisk(profile.RiskKidneyDisease) {
		if attrs.Sodium >= highSodium {
			raw -= 3
			reasons = append(reasons, "sodium load strains compromised kidneys")
		}
		if attrs.Protein >= highProtein {
			raw -= 2
			reasons = append(reasons, "protein load strains compromised kidneys")
		}
	}
	return raw * 3, reasons
}

func clinicalDigestive(p profile.Profile, f food.Food) (float64, []string) {
	prof := p.(profile.ClinicalProfile)
	attrs := *f.Clinical

	var raw float64
	var reasons []string

	if prof.HasIntolerance(profile.IntoleranceLactose) && f.Category == food.CategoryDairy {
		// Hard match: -5 raw lands at -10 after the x2 multiplier,
		// pushing the food to near-exclusion.
		raw -= 5
		reasons = append(reasons, "dairy conflicts with lactose intolerance")
	}
	if prof.HasIntolerance(profile.IntoleranceGluten) && f.HasTag(food.TagGluten) {
		raw -= 5
		reasons = append(reasons, "contains gluten")
	}
	if prof.HasIntolerance(profile.IntoleranceReflux) {
		if f.Category == food.CategorySpice {
			raw -= 2
			reasons = append(reasons, "spicy foods trigger reflux")
		}
		if f.IsCaffeinated() {
			raw -= 2
			reasons = append(reasons, "caffeine triggers reflux")
		}
		if attrs.Fat >= highFat {
			raw -= 2
			reasons = append(reasons, "high-fat foods trigger reflux")
		}
	}
	if prof.HasIntolerance(profile.IntoleranceIBS) {
		if f.Category == food.CategoryLegume {
			raw -= 2
			reasons = append(reasons, "legumes commonly trigger IBS")
		}
		if attrs.AddedSugar {
			raw--
		}
	}
	return raw * 2, reasons
}

func clinicalLifestyle(p profile.Profile, f food.Food) (float64, []string) {
	prof := p.(profile.ClinicalProfile)
	attrs := *f.Clinical

	loaded := prof.StressLevel == profile.LoadHigh || prof.Sleep == profile.SleepPoor
	if !loaded {
		return 0, nil
	}

	var raw float64
	var reasons []string
	for _, tag := range []string{
		food.NutrientMagnesium, food.NutrientBVitamins,
		food.NutrientTryptophan, food.NutrientOmega3,
	} {
		if attrs.HasNutrientTag(tag) {
			raw++
			reasons = append(reasons, fmt.Sprintf("%s supports stress and sleep recovery", tag))
		}
	}
	if f.IsCaffeinated() {
		raw -= 2
		reasons = append(reasons, "caffeine worsens stress and sleep load")
	}
	return raw * 2, reasons
}

func clinicalQuality(p profile.Profile, f food.Food) (float64, []string) {
	attrs := *f.Clinical

	raw := attrs.MicronutrientDensity * 0.5
	raw += attrs.AntiInflammatoryScore * 0.4

	var reasons []string
	if attrs.MicronutrientDensity >= 7 {
		reasons = append(reasons, "micronutrient dense")
	}
	if attrs.Fiber >= goodFiber {
		raw++
	}
	if attrs.Protein >= goodProtein {
		raw++
	}
	if attrs.AddedSugar {
		raw -= 2
		reasons = append(reasons, "contains added sugar")
	}
	if attrs.Preservatives {
		raw--
	}
	if attrs.ArtificialAdditives {
		raw--
		reasons = append(reasons, "contains artificial additives")
	}
	return raw, reasons
}

// clinicalHeavy drops calorie-dense foods from the light meals.
func clinicalHeavy(f food.Food) bool {
	if f.HasTag(food.TagHeavy) {
		return true
	}
	return f.Clinical != nil && f.Clinical.Calories > highCalorieDensity
}

// clinicalProteins orders protein categories by the stated goals.
func clinicalProteins(p profile.Profile) []food.Category {
	prof := p.(profile.ClinicalProfile)
	if prof.HasGoal(profile.GoalMuscleGain) {
		return []food.Category{food.CategoryMeat, food.CategoryEgg, food.CategoryLegume}
	}
	if prof.HasGoal(profile.GoalHeartHealth) || prof.HasRisk(profile.RiskHeartDisease) {
		return []food.Category{food.CategoryLegume, food.CategoryEgg}
	}
	return []food.Category{food.CategoryLegume, food.CategoryMeat, food.CategoryEgg}
}

// clinicalIncompatible is the simplified clinical combination table:
// iron sources away from dairy, legumes away from grains, fruit alone.
func clinicalIncompatible() func(a, b food.Food) bool {
	pairs := planner.CategoryPairs(
		[2]food.Category{food.CategoryLegume, food.CategoryGrain},
	)
	ironDairy := func(a, b food.Food) bool {
		return (a.IsIronSource() && b.Category == food.CategoryDairy) ||
			(b.IsIronSource() && a.Category == food.CategoryDairy)
	}
	fruitAlone := func(a, b food.Food) bool {
		return a.Category == food.CategoryFruit || b.Category == food.CategoryFruit
	}
	return planner.AnyIncompatible(pairs, ironDairy, fruitAlone)
}

func clinicalPlanRules() planner.Rules {
	snackPick := planner.Pick{
		Categories:   []food.Category{food.CategoryFruit, food.CategoryNut, food.CategoryDairy, food.CategoryBeverage},
		PortionLabel: "1 small serving",
	}
	return planner.Rules{
		Framework: profile.FrameworkClinical,
		Meals: []planner.MealTemplate{
			{
				Type:         planner.MealBreakfast,
				CalorieShare: 0.225,
				Exclude:      clinicalHeavy,
				Picks: []planner.Pick{
					{Categories: []food.Category{food.CategoryGrain}, PortionLabel: "1 bowl"},
					{Categories: []food.Category{food.CategoryDairy, food.CategoryEgg}, PortionLabel: "1 serving"},
					{Categories: []food.Category{food.CategoryBeverage}, PortionLabel: "1 cup"},
				},
			},
			{
				Type:         planner.MealMorningSnack,
				CalorieShare: 0.1125,
				Picks:        []planner.Pick{snackPick},
			},
			{
				Type:         planner.MealLunch,
				CalorieShare: 0.325,
				Picks: []planner.Pick{
					{Categories: []food.Category{food.CategoryGrain}, PortionLabel: "1 cup cooked"},
					{Protein: true, PortionLabel: "1 palm-sized serving"},
					{Categories: []food.Category{food.CategoryVegetable}, Count: 2, PortionLabel: "1/2 plate total"},
					{Categories: []food.Category{food.CategoryOil}, PortionLabel: "1 tsp"},
				},
			},
			{
				Type:         planner.MealAfternoonSnack,
				CalorieShare: 0.1125,
				Picks:        []planner.Pick{snackPick},
			},
			{
				Type:         planner.MealDinner,
				CalorieShare: 0.225,
				Exclude:      clinicalHeavy,
				Picks: []planner.Pick{
					{Categories: []food.Category{food.CategoryGrain}, PortionLabel: "small bowl"},
					{Protein: true, PortionLabel: "1 serving"},
					{Categories: []food.Category{food.CategoryVegetable}, Count: 2, PortionLabel: "1/2 plate total"},
				},
			},
		},
		ProteinCategories: clinicalProteins,
		Incompatible:      clinicalIncompatible(),
		RotationCap:       3,
		StapleWindow:      3,
		VegetableWindow:   2,
		DailyCalories: func(p profile.Profile) int {
			return p.(profile.ClinicalProfile).Calories()
		},
	}
}
