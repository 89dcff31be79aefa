package frameworks

import (
	"fmt"

	"github.com/equilibra/v1/internal/domain/food"
	"github.com/equilibra/v1/internal/domain/planner"
	"github.com/equilibra/v1/internal/domain/profile"
	"github.com/equilibra/v1/internal/domain/scoring"
)

// TCM returns the pattern/thermal-framework rule set.
//
// Components:
//   - primary pattern correction: +4×severity for a matching affinity
//     flag, -3×severity for an aggravating combination
//   - secondary pattern support: same logic at fixed weight 2
//   - thermal balance: ±2 comparing the food's thermal nature to the
//     user's cold/heat tendency
func TCM() *RuleSet {
	return &RuleSet{
		framework: profile.FrameworkTCM,
		scoreable: func(f food.Food) error {
			if f.TCM == nil {
				return scoring.ErrMissingAttributes
			}
			if err := f.TCM.Validate(); err != nil {
				return fmt.Errorf("tcm attributes: %w", err)
			}
			return nil
		},
		components: []scoring.Component{
			{Name: "primary_pattern_correction", Score: tcmPrimary},
			{Name: "secondary_pattern_support", Score: tcmSecondary},
			{Name: "thermal_balance", Score: tcmThermal},
		},
		tiering: scoring.PercentilePolicy(50),
		plan:    tcmPlanRules(),
	}
}

// patternMatch reports whether the food carries the affinity flag that
// corrects the pattern.
func patternMatch(pattern profile.Pattern, attrs food.TCMAttributes) bool {
	switch pattern {
	case profile.PatternQiDeficiency:
		return attrs.TonifiesQi
	case profile.PatternYinDeficiency:
		return attrs.NourishesYin
	case profile.PatternYangDeficiency:
		return attrs.WarmsYang
	case profile.PatternHeat:
		return attrs.ClearsHeat
	case profile.PatternDampness:
		return attrs.ResolvesDampness
	case profile.PatternQiStagnation:
		return attrs.MovesQi
	}
	return false
}

// patternAggravation reports whether the food makes the pattern worse:
// damp-forming food under Dampness (worst with sweet flavor), hot
// nature under Heat or yin deficiency, cold nature under yang
// deficiency.
func patternAggravation(pattern profile.Pattern, attrs food.TCMAttributes) bool {
	switch pattern {
	case profile.PatternDampness:
		return attrs.DampForming
	case profile.PatternHeat:
		return attrs.Thermal == food.ThermalHot
	case profile.PatternYinDeficiency:
		return attrs.Thermal == food.ThermalHot
	case profile.PatternYangDeficiency:
		return attrs.Thermal == food.ThermalCold
	}
	return false
}

func tcmPrimary(p profile.Profile, f food.Food) (float64, []string) {
	prof := p.(profile.TCMProfile)
	attrs := *f.TCM
	severity := float64(prof.Severity)

	var delta float64
	var reasons []string

	if patternMatch(prof.Primary, attrs) {
		delta += 4 * severity
		reasons = append(reasons, fmt.Sprintf("directly addresses the %s pattern", prof.Primary))
	}
	if patternAggravation(prof.Primary, attrs) {
		delta -= 3 * severity
		reason := fmt.Sprintf("aggravates the %s pattern", prof.Primary)
		if prof.Primary == profile.PatternDampness && attrs.HasFlavor(food.TasteSweet) {
			reason = "sweet and damp-forming, compounds the dampness pattern"
		}
		reasons = append(reasons, reason)
	}
	return delta, reasons
}

func tcmSecondary(p profile.Profile, f food.Food) (float64, []string) {
	prof := p.(profile.TCMProfile)
	if prof.Secondary == nil {
		return 0, nil
	}
	attrs := *f.TCM

	var delta float64
	var reasons []string
	if patternMatch(*prof.Secondary, attrs) {
		delta += 2
		reasons = append(reasons, fmt.Sprintf("supports the secondary %s pattern", *prof.Secondary))
	}
	if patternAggravation(*prof.Secondary, attrs) {
		delta -= 2
		reasons = append(reasons, fmt.Sprintf("aggravates the secondary %s pattern", *prof.Secondary))
	}
	return delta, reasons
}

func tcmThermal(p profile.Profile, f food.Food) (float64, []string) {
	prof := p.(profile.TCMProfile)
	thermal := f.TCM.Thermal

	switch prof.Tendency {
	case profile.TendencyCold:
		if thermal.Warming() {
			return 2, []string{"warming nature counters the cold tendency"}
		}
		if thermal.Cooling() {
			return -2, []string{"cooling nature deepens the cold tendency"}
		}
	case profile.TendencyHeat:
		if thermal.Cooling() {
			return 2, []string{"cooling nature counters the heat tendency"}
		}
		if thermal.Warming() {
			return -2, []string{"warming nature feeds the heat tendency"}
		}
	}
	return 0, nil
}

// tcmDampOrHeavy drops damp-forming and heavy foods from dinner.
func tcmDampOrHeavy(f food.Food) bool {
	if f.HasTag(food.TagHeavy) || f.HasTag(food.TagOily) {
		return true
	}
	return f.TCM != nil && f.TCM.DampForming
}

// tcmProteins orders protein categories per primary pattern:
// deficiency patterns lean on tonifying animal protein, heat and
// dampness patterns avoid it.
func tcmProteins(p profile.Profile) []food.Category {
	prof := p.(profile.TCMProfile)
	switch prof.Primary {
	case profile.PatternQiDeficiency:
		return []food.Category{food.CategoryMeat, food.CategoryLegume, food.CategoryEgg}
	case profile.PatternYangDeficiency:
		return []food.Category{food.CategoryMeat, food.CategoryEgg}
	case profile.PatternYinDeficiency:
		return []food.Category{food.CategoryEgg, food.CategoryLegume, food.CategoryDairy}
	case profile.PatternHeat, profile.PatternDampness:
		return []food.Category{food.CategoryLegume, food.CategoryEgg}
	default: // qi stagnation
		return []food.Category{food.CategoryLegume, food.CategoryEgg, food.CategoryMeat}
	}
}

func tcmPlanRules() planner.Rules {
	incompatible := planner.CategoryPairs(
		[2]food.Category{food.CategoryDairy, food.CategoryFruit},
	)
	return planner.Rules{
		Framework: profile.FrameworkTCM,
		Meals: []planner.MealTemplate{
			{
				Type:    planner.MealBreakfast,
				Exclude: tcmDampOrHeavy,
				Picks: []planner.Pick{
					{Categories: []food.Category{food.CategoryGrain}, PortionLabel: "1 bowl", Note: "congee or porridge"},
					{Categories: []food.Category{food.CategoryFruit, food.CategoryDairy}, PortionLabel: "1 serving"},
					{Categories: []food.Category{food.CategoryBeverage}, PortionLabel: "1 cup", Note: "warm"},
				},
			},
			{
				Type: planner.MealLunch,
				Picks: []planner.Pick{
					{Categories: []food.Category{food.CategoryGrain}, PortionLabel: "1 cup cooked"},
					{Protein: true, PortionLabel: "1 serving"},
					{Categories: []food.Category{food.CategoryVegetable}, Count: 2, PortionLabel: "1/2 cup each", Note: "lightly cooked"},
					{Categories: []food.Category{food.CategoryOil}, PortionLabel: "1 tsp"},
					{Categories: []food.Category{food.CategorySpice}, PortionLabel: "to taste"},
				},
			},
			{
				Type:    planner.MealDinner,
				Exclude: tcmDampOrHeavy,
				Picks: []planner.Pick{
					{Categories: []food.Category{food.CategoryGrain}, PortionLabel: "small bowl"},
					{Categories: []food.Category{food.CategoryVegetable}, PortionLabel: "1/2 cup", Note: "cooked"},
					{Categories: []food.Category{food.CategoryBeverage}, PortionLabel: "1 cup", Note: "warm"},
				},
			},
		},
		ProteinCategories: tcmProteins,
		Incompatible:      incompatible,
		RotationCap:       2,
		StapleWindow:      3,
		VegetableWindow:   2,
	}
}
