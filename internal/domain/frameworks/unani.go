package frameworks

import (
	"fmt"

	"github.com/equilibra/v1/internal/domain/food"
	"github.com/equilibra/v1/internal/domain/planner"
	"github.com/equilibra/v1/internal/domain/profile"
	"github.com/equilibra/v1/internal/domain/scoring"
)

// Unani returns the temperament/humor-framework rule set.
//
// Components:
//   - humor correction: pacifying effect on the dominant humor earns
//     +4×severity, neutral +1×severity, aggravating -4×severity;
//     never any other magnitude
//   - temperament balancing: ±2 per opposing-quality level >=2 against
//     the dominant humor's fixed corrective target
//   - digestive adjustment: -3 for hard-to-digest or flatulent foods
//     under a weak profile, +2 for light foods under weak/slow
func Unani() *RuleSet {
	return &RuleSet{
		framework: profile.FrameworkUnani,
		scoreable: func(f food.Food) error {
			if f.Unani == nil {
				return scoring.ErrMissingAttributes
			}
			if err := f.Unani.Validate(); err != nil {
				return fmt.Errorf("unani attributes: %w", err)
			}
			return nil
		},
		components: []scoring.Component{
			{Name: "humor_correction", Score: unaniHumor},
			{Name: "temperament_balance", Score: unaniTemperament},
			{Name: "digestive_adjustment", Score: unaniDigestive},
		},
		tiering: scoring.PercentilePolicy(0),
		plan:    unaniPlanRules(),
	}
}

func unaniHumor(p profile.Profile, f food.Food) (float64, []string) {
	prof := p.(profile.UnaniProfile)
	severity := float64(prof.Severity)

	switch f.Unani.EffectOn(prof.Dominant) {
	case -1:
		return 4 * severity, []string{fmt.Sprintf("reduces excess %s", prof.Dominant)}
	case 1:
		return -4 * severity, []string{fmt.Sprintf("builds up %s further", prof.Dominant)}
	default:
		return 1 * severity, []string{fmt.Sprintf("neutral toward %s", prof.Dominant)}
	}
}

func unaniTemperament(p profile.Profile, f food.Food) (float64, []string) {
	prof := p.(profile.UnaniProfile)
	attrs := *f.Unani
	target := profile.CorrectiveTemperament(prof.Dominant)

	var delta float64
	var reasons []string

	if target.NeedsHot {
		if attrs.HotLevel >= 2 {
			delta += 2
			reasons = append(reasons, "heating quality counters the cold temperament")
		}
		if attrs.ColdLevel >= 2 {
			delta -= 2
			reasons = append(reasons, "cooling quality reinforces the cold temperament")
		}
	}
	if target.NeedsCold {
		if attrs.ColdLevel >= 2 {
			delta += 2
			reasons = append(reasons, "cooling quality counters the hot temperament")
		}
		if attrs.HotLevel >= 2 {
			delta -= 2
			reasons = append(reasons, "heating quality reinforces the hot temperament")
		}
	}
	if target.NeedsDry {
		if attrs.DryLevel >= 2 {
			delta += 2
			reasons = append(reasons, "drying quality counters the moist temperament")
		}
		if attrs.MoistLevel >= 2 {
			delta -= 2
			reasons = append(reasons, "moistening quality reinforces the moist temperament")
		}
	}
	if target.NeedsMoist {
		if attrs.MoistLevel >= 2 {
			delta += 2
			reasons = append(reasons, "moistening quality counters the dry temperament")
		}
		if attrs.DryLevel >= 2 {
			delta -= 2
			reasons = append(reasons, "drying quality reinforces the dry temperament")
		}
	}
	return delta, reasons
}

func unaniDigestive(p profile.Profile, f food.Food) (float64, []string) {
	prof := p.(profile.UnaniProfile)
	attrs := *f.Unani

	var delta float64
	var reasons []string

	if prof.DigestiveStrength == profile.DigestionWeak {
		if attrs.Digestibility >= 4 || attrs.Flatulence == food.FlatulenceHigh {
			delta -= 3
			reasons = append(reasons, "too taxing for weak digestion")
		}
	}
	if prof.DigestiveStrength == profile.DigestionWeak || prof.DigestiveStrength == profile.DigestionSlow {
		if attrs.Digestibility <= 2 {
			delta += 2
			reasons = append(reasons, "light and easily digested")
		}
	}
	return delta, reasons
}

// unaniHardToDigest drops taxing foods from light meals.
func unaniHardToDigest(f food.Food) bool {
	if f.HasTag(food.TagHeavy) || f.HasTag(food.TagOily) {
		return true
	}
	return f.Unani != nil && f.Unani.Digestibility >= 4
}

// unaniProteins orders protein categories per dominant humor: hot
// humors avoid meat's heat, cold humors lean on it.
func unaniProteins(p profile.Profile) []food.Category {
	prof := p.(profile.UnaniProfile)
	switch prof.Dominant {
	case food.HumorDam:
		return []food.Category{food.CategoryLegume, food.CategoryEgg}
	case food.HumorSafra:
		return []food.Category{food.CategoryLegume, food.CategoryDairy, food.CategoryEgg}
	case food.HumorBalgham:
		return []food.Category{food.CategoryMeat, food.CategoryEgg, food.CategoryLegume}
	default: // sauda
		return []food.Category{food.CategoryMeat, food.CategoryEgg, food.CategoryDairy}
	}
}

func unaniPlanRules() planner.Rules {
	incompatible := planner.CategoryPairs(
		[2]food.Category{food.CategoryDairy, food.CategoryFruit},
		[2]food.Category{food.CategoryDairy, food.CategoryMeat},
	)
	return planner.Rules{
		Framework: profile.FrameworkUnani,
		Meals: []planner.MealTemplate{
			{
				Type:    planner.MealBreakfast,
				Exclude: unaniHardToDigest,
				Picks: []planner.Pick{
					{Categories: []food.Category{food.CategoryGrain}, PortionLabel: "1 bowl"},
					{Categories: []food.Category{food.CategoryFruit, food.CategoryDairy}, PortionLabel: "1 serving"},
					{Categories: []food.Category{food.CategoryBeverage}, PortionLabel: "1 cup"},
				},
			},
			{
				Type: planner.MealLunch,
				Picks: []planner.Pick{
					{Categories: []food.Category{food.CategoryGrain}, PortionLabel: "1 cup cooked"},
					{Protein: true, PortionLabel: "1 serving"},
					{Categories: []food.Category{food.CategoryVegetable}, Count: 2, PortionLabel: "1/2 cup each"},
					{Categories: []food.Category{food.CategoryOil}, PortionLabel: "1 tsp"},
					{Categories: []food.Category{food.CategorySpice}, PortionLabel: "to taste"},
				},
			},
			{
				Type:    planner.MealDinner,
				Exclude: unaniHardToDigest,
				Picks: []planner.Pick{
					{Categories: []food.Category{food.CategoryGrain}, PortionLabel: "small bowl"},
					{Categories: []food.Category{food.CategoryVegetable}, PortionLabel: "1/2 cup"},
					{Categories: []food.Category{food.CategoryBeverage}, PortionLabel: "1 cup", Note: "warm"},
				},
			},
		},
		ProteinCategories: unaniProteins,
		Incompatible:      incompatible,
		RotationCap:       2,
		StapleWindow:      3,
		VegetableWindow:   2,
	}
}
