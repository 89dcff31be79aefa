package frameworks

import (
	"fmt"

	"github.com/equilibra/v1/internal/domain/food"
	"github.com/equilibra/v1/internal/domain/planner"
	"github.com/equilibra/v1/internal/domain/profile"
	"github.com/equilibra/v1/internal/domain/scoring"
)

// Ayurveda returns the dosha-framework rule set.
//
// Components:
//   - constitution correction: ±4×severity off the food's effect on
//     the aggravated dominant dosha, with a -2/+1 adjustment for an
//     elevated secondary dosha
//   - agni compatibility: ±3 from light/heavy/oily/dry guna versus the
//     user's digestive fire
//   - potency and seasonal fit: ±2 virya, +1 in season
//   - taste enhancement: +1 per beneficial rasa, -0.5 per other rasa
func Ayurveda() *RuleSet {
	return &RuleSet{
		framework: profile.FrameworkAyurveda,
		scoreable: func(f food.Food) error {
			if f.Ayurveda == nil {
				return scoring.ErrMissingAttributes
			}
			if err := f.Ayurveda.Validate(); err != nil {
				return fmt.Errorf("ayurveda attributes: %w", err)
			}
			return nil
		},
		components: []scoring.Component{
			{Name: "constitution_correction", Score: ayurvedaConstitution},
			{Name: "agni_compatibility", Score: ayurvedaAgni},
			{Name: "potency_seasonal_fit", Score: ayurvedaPotency},
			{Name: "taste_enhancement", Score: ayurvedaTaste},
		},
		tiering: scoring.PercentilePolicy(0),
		plan:    ayurvedaPlanRules(),
	}
}

func ayurvedaConstitution(p profile.Profile, f food.Food) (float64, []string) {
	prof := p.(profile.AyurvedaProfile)
	attrs := *f.Ayurveda
	severity := float64(prof.Severity)

	var delta float64
	var reasons []string

	switch attrs.EffectOn(prof.Dominant) {
	case food.EffectDecrease:
		delta += 4 * severity
		reasons = append(reasons, fmt.Sprintf("pacifies aggravated %s", prof.Dominant))
	case food.EffectIncrease:
		delta -= 4 * severity
		reasons = append(reasons, fmt.Sprintf("aggravates dominant %s", prof.Dominant))
	}

	if prof.SecondaryElevated() {
		switch attrs.EffectOn(*prof.Secondary) {
		case food.EffectDecrease:
			delta++
			reasons = append(reasons, fmt.Sprintf("also settles elevated %s", *prof.Secondary))
		case food.EffectIncrease:
			delta -= 2
			reasons = append(reasons, fmt.Sprintf("aggravates elevated %s", *prof.Secondary))
		}
	}
	return delta, reasons
}

func ayurvedaAgni(p profile.Profile, f food.Food) (float64, []string) {
	prof := p.(profile.AyurvedaProfile)
	attrs := *f.Ayurveda

	heavy := attrs.HasGuna(food.QualityHeavy) || f.HasTag(food.TagHeavy)
	oily := attrs.HasGuna(food.QualityOily) || f.HasTag(food.TagOily)
	light := attrs.HasGuna(food.QualityLight) || f.HasTag(food.TagLight)
	dry := attrs.HasGuna(food.QualityDry) || f.HasTag(food.TagDry)

	switch prof.Agni {
	case profile.AgniWeak, profile.AgniMild:
		if heavy || oily {
			return -3, []string{"hard on a weak digestive fire"}
		}
		if light {
			return 3, []string{"light enough for a weak digestive fire"}
		}
	case profile.AgniVariable:
		if dry {
			return -3, []string{"dry foods unsettle a variable digestive fire"}
		}
		if oily {
			return 3, []string{"unctuous foods steady a variable digestive fire"}
		}
	case profile.AgniSharp:
		if heavy {
			return 3, []string{"substantial food suits a sharp digestive fire"}
		}
	}
	return 0, nil
}

func ayurvedaPotency(p profile.Profile, f food.Food) (float64, []string) {
	prof := p.(profile.AyurvedaProfile)
	attrs := *f.Ayurveda

	var delta float64
	var reasons []string

	// Pitta runs hot and wants cooling potency; vata and kapha run
	// cold and want heating potency.
	wantsCold := prof.Dominant == food.DoshaPitta
	switch {
	case wantsCold && attrs.Virya == food.ViryaCold:
		delta += 2
		reasons = append(reasons, "cooling potency balances pitta heat")
	case wantsCold && attrs.Virya == food.ViryaHot:
		delta -= 2
		reasons = append(reasons, "heating potency feeds pitta heat")
	case !wantsCold && attrs.Virya == food.ViryaHot:
		delta += 2
		reasons = append(reasons, fmt.Sprintf("heating potency counters %s cold", prof.Dominant))
	case !wantsCold && attrs.Virya == food.ViryaCold:
		delta -= 2
		reasons = append(reasons, fmt.Sprintf("cooling potency deepens %s cold", prof.Dominant))
	}

	if prof.Season != "" && attrs.InSeason(prof.Season) {
		delta++
		reasons = append(reasons, fmt.Sprintf("in season for %s", prof.Season))
	}
	return delta, reasons
}

// beneficialRasa maps each dosha to the tastes that pacify it.
var beneficialRasa = map[food.Dosha]map[food.Taste]bool{
	food.DoshaVata: {
		food.TasteSweet: true, food.TasteSour: true, food.TasteSalty: true,
	},
	food.DoshaPitta: {
		food.TasteSweet: true, food.TasteBitter: true, food.TasteAstringent: true,
	},
	food.DoshaKapha: {
		food.TastePungent: true, food.TasteBitter: true, food.TasteAstringent: true,
	},
}

func ayurvedaTaste(p profile.Profile, f food.Food) (float64, []string) {
	prof := p.(profile.AyurvedaProfile)
	beneficial := beneficialRasa[prof.Dominant]

	var delta float64
	var reasons []string
	for _, rasa := range f.Ayurveda.Rasa {
		if beneficial[rasa] {
			delta++
			reasons = append(reasons, fmt.Sprintf("%s taste pacifies %s", rasa, prof.Dominant))
		} else {
			delta -= 0.5
		}
	}
	return delta, reasons
}

// ayurvedaHeavy drops heavy and oily foods from light meals.
func ayurvedaHeavy(f food.Food) bool {
	if f.HasTag(food.TagHeavy) || f.HasTag(food.TagOily) {
		return true
	}
	return f.Ayurveda != nil && (f.Ayurveda.HasGuna(food.QualityHeavy) || f.Ayurveda.HasGuna(food.QualityOily))
}

// ayurvedaProteins orders protein categories per dominant dosha: pitta
// avoids meat, kapha prefers legumes.
func ayurvedaProteins(p profile.Profile) []food.Category {
	prof := p.(profile.AyurvedaProfile)
	switch prof.Dominant {
	case food.DoshaPitta:
		return []food.Category{food.CategoryLegume, food.CategoryEgg, food.CategoryDairy}
	case food.DoshaKapha:
		return []food.Category{food.CategoryLegume, food.CategoryEgg}
	default: // vata
		return []food.Category{food.CategoryMeat, food.CategoryEgg, food.CategoryLegume}
	}
}

// viruddhaAhara is the classical incompatible-combination table.
func viruddhaAhara() func(a, b food.Food) bool {
	pairs := planner.CategoryPairs(
		[2]food.Category{food.CategoryDairy, food.CategoryFruit},
		[2]food.Category{food.CategoryDairy, food.CategoryMeat},
		[2]food.Category{food.CategoryFruit, food.CategoryGrain},
		[2]food.Category{food.CategoryFruit, food.CategoryMeat},
	)
	caffeinatedDairy := func(a, b food.Food) bool {
		return (a.Category == food.CategoryDairy && b.IsCaffeinated()) ||
			(b.Category == food.CategoryDairy && a.IsCaffeinated())
	}
	return planner.AnyIncompatible(pairs, caffeinatedDairy)
}

func ayurvedaPlanRules() planner.Rules {
	return planner.Rules{
		Framework: profile.FrameworkAyurveda,
		Meals: []planner.MealTemplate{
			{
				Type:    planner.MealBreakfast,
				Exclude: ayurvedaHeavy,
				Picks: []planner.Pick{
					{Categories: []food.Category{food.CategoryGrain}, PortionLabel: "1 bowl", Note: "freshly cooked, warm"},
					{Categories: []food.Category{food.CategoryFruit, food.CategoryDairy}, PortionLabel: "1 serving"},
					{Categories: []food.Category{food.CategoryBeverage}, PortionLabel: "1 cup", Note: "warm"},
				},
			},
			{
				Type: planner.MealLunch,
				Picks: []planner.Pick{
					{Categories: []food.Category{food.CategoryGrain}, PortionLabel: "1 cup cooked"},
					{Protein: true, PortionLabel: "1 serving"},
					{Categories: []food.Category{food.CategoryVegetable}, Count: 2, PortionLabel: "1/2 cup each", Note: "cooked"},
					{Categories: []food.Category{food.CategoryOil}, PortionLabel: "1 tsp"},
					{Categories: []food.Category{food.CategorySpice}, PortionLabel: "to taste"},
				},
			},
			{
				Type:    planner.MealDinner,
				Exclude: ayurvedaHeavy,
				Picks: []planner.Pick{
					{Categories: []food.Category{food.CategoryGrain}, PortionLabel: "small bowl", Note: "light preparation"},
					{Categories: []food.Category{food.CategoryVegetable}, PortionLabel: "1/2 cup", Note: "cooked"},
					{Categories: []food.Category{food.CategorySpice}, PortionLabel: "to taste"},
				},
			},
		},
		ProteinCategories: ayurvedaProteins,
		Incompatible:      viruddhaAhara(),
		RotationCap:       2,
		StapleWindow:      3,
		VegetableWindow:   2,
	}
}
