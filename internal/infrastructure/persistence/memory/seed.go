package memory

import (
	"github.com/google/uuid"

	"github.com/equilibra/v1/internal/domain/food"
)

// seedID derives a stable id from the food name so reseeding keeps
// override references valid.
func seedID(name string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("equilibra/food/"+name))
}

// SeedCatalog returns the built-in reference catalog. Every entry
// carries all four framework blocks so each framework can score the
// full catalog.
func SeedCatalog() []food.Food {
	return []food.Food{
		{
			ID: seedID("basmati rice"), Name: "Basmati Rice", Category: food.CategoryGrain,
			Tags: []string{food.TagLight},
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteSweet}, Guna: []food.Quality{food.QualityLight},
				Virya: food.ViryaCold, Vipaka: food.TasteSweet,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectDecrease, food.DoshaPitta: food.EffectDecrease, food.DoshaKapha: food.EffectIncrease,
				},
				Seasons: []food.Season{food.SeasonSummer, food.SeasonAutumn},
			},
			Unani: &food.UnaniAttributes{
				ColdLevel: 1, MoistLevel: 1,
				HumorEffects:  map[food.Humor]int{food.HumorSafra: -1, food.HumorBalgham: 1},
				Digestibility: 2, Flatulence: food.FlatulenceLow,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalNeutral, Flavors: []food.Taste{food.TasteSweet},
				TonifiesQi: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, Fiber: 0.4, Sugar: 0.1,
				Sodium: 1, GlycemicIndex: 58, GlycemicLoad: 16, MicronutrientDensity: 2, AntiInflammatoryScore: 0,
			},
		},
		{
			ID: seedID("oats"), Name: "Oats", Category: food.CategoryGrain,
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteSweet}, Guna: []food.Quality{food.QualityHeavy, food.QualityOily},
				Virya: food.ViryaHot, Vipaka: food.TasteSweet,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectDecrease, food.DoshaPitta: food.EffectNeutral, food.DoshaKapha: food.EffectIncrease,
				},
				Seasons: []food.Season{food.SeasonWinter},
			},
			Unani: &food.UnaniAttributes{
				HotLevel: 1, MoistLevel: 2,
				HumorEffects:  map[food.Humor]int{food.HumorSauda: -1, food.HumorBalgham: 1},
				Digestibility: 3, Flatulence: food.FlatulenceMedium,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalNeutral, Flavors: []food.Taste{food.TasteSweet},
				TonifiesQi: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 389, Protein: 16.9, Carbs: 66, Fat: 6.9, Fiber: 10.6, Sugar: 0,
				Sodium: 2, SaturatedFat: 1.2, GlycemicIndex: 55, GlycemicLoad: 13,
				MicronutrientDensity: 6, AntiInflammatoryScore: 1,
				NutrientTags: []string{food.NutrientMagnesium, food.NutrientBVitamins},
			},
		},
		{
			ID: seedID("quinoa"), Name: "Quinoa", Category: food.CategoryGrain,
			Tags: []string{food.TagLight},
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteSweet, food.TasteAstringent}, Guna: []food.Quality{food.QualityLight, food.QualityDry},
				Virya: food.ViryaHot, Vipaka: food.TasteSweet,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectNeutral, food.DoshaPitta: food.EffectNeutral, food.DoshaKapha: food.EffectDecrease,
				},
				Seasons: []food.Season{food.SeasonSpring},
			},
			Unani: &food.UnaniAttributes{
				HotLevel: 1, DryLevel: 1,
				HumorEffects:  map[food.Humor]int{food.HumorBalgham: -1},
				Digestibility: 2, Flatulence: food.FlatulenceLow,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalWarm, Flavors: []food.Taste{food.TasteSweet},
				TonifiesQi: true, ResolvesDampness: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 120, Protein: 4.4, Carbs: 21, Fat: 1.9, Fiber: 2.8, Sugar: 0.9,
				Sodium: 7, GlycemicIndex: 53, GlycemicLoad: 11, MicronutrientDensity: 7, AntiInflammatoryScore: 1,
				NutrientTags: []string{food.NutrientMagnesium, food.NutrientIron},
			},
		},
		{
			ID: seedID("whole wheat bread"), Name: "Whole Wheat Bread", Category: food.CategoryGrain,
			Tags: []string{food.TagGluten, food.TagHeavy},
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteSweet}, Guna: []food.Quality{food.QualityHeavy},
				Virya: food.ViryaHot, Vipaka: food.TasteSweet,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectDecrease, food.DoshaPitta: food.EffectNeutral, food.DoshaKapha: food.EffectIncrease,
				},
				Seasons: []food.Season{food.SeasonWinter},
			},
			Unani: &food.UnaniAttributes{
				HotLevel: 1, MoistLevel: 1,
				HumorEffects:  map[food.Humor]int{food.HumorDam: 1, food.HumorSauda: -1},
				Digestibility: 3, Flatulence: food.FlatulenceMedium,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalNeutral, Flavors: []food.Taste{food.TasteSweet},
				TonifiesQi: true, DampForming: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 247, Protein: 13, Carbs: 41, Fat: 3.4, Fiber: 7, Sugar: 5.6,
				Sodium: 450, SaturatedFat: 0.6, GlycemicIndex: 69, GlycemicLoad: 9,
				MicronutrientDensity: 4, AntiInflammatoryScore: 0, AddedSugar: true, Preservatives: true,
				NutrientTags: []string{food.NutrientBVitamins},
			},
		},
		{
			ID: seedID("spinach"), Name: "Spinach", Category: food.CategoryVegetable,
			Tags: []string{food.TagLight},
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteBitter, food.TasteAstringent}, Guna: []food.Quality{food.QualityLight, food.QualityDry},
				Virya: food.ViryaCold, Vipaka: food.TastePungent,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectIncrease, food.DoshaPitta: food.EffectDecrease, food.DoshaKapha: food.EffectDecrease,
				},
				Seasons: []food.Season{food.SeasonWinter, food.SeasonSpring},
			},
			Unani: &food.UnaniAttributes{
				ColdLevel: 2, MoistLevel: 1,
				HumorEffects:  map[food.Humor]int{food.HumorSafra: -1, food.HumorDam: -1},
				Digestibility: 2, Flatulence: food.FlatulenceLow,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalCool, Flavors: []food.Taste{food.TasteSweet},
				NourishesYin: true, ClearsHeat: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 23, Protein: 2.9, Carbs: 3.6, Fat: 0.4, Fiber: 2.2, Sugar: 0.4,
				Sodium: 79, GlycemicIndex: 15, GlycemicLoad: 1, MicronutrientDensity: 9, AntiInflammatoryScore: 4,
				NutrientTags: []string{food.NutrientIron, food.NutrientMagnesium},
			},
		},
		{
			ID: seedID("broccoli"), Name: "Broccoli", Category: food.CategoryVegetable,
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteBitter, food.TasteAstringent}, Guna: []food.Quality{food.QualityLight, food.QualityDry},
				Virya: food.ViryaCold, Vipaka: food.TastePungent,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectIncrease, food.DoshaPitta: food.EffectDecrease, food.DoshaKapha: food.EffectDecrease,
				},
				Seasons: []food.Season{food.SeasonAutumn, food.SeasonWinter},
			},
			Unani: &food.UnaniAttributes{
				ColdLevel: 1, DryLevel: 1,
				HumorEffects:  map[food.Humor]int{food.HumorSafra: -1},
				Digestibility: 3, Flatulence: food.FlatulenceHigh,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalCool, Flavors: []food.Taste{food.TasteSweet, food.TasteBitter},
				ClearsHeat: true, ResolvesDampness: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 34, Protein: 2.8, Carbs: 6.6, Fat: 0.4, Fiber: 2.6, Sugar: 1.7,
				Sodium: 33, GlycemicIndex: 15, GlycemicLoad: 1, MicronutrientDensity: 9, AntiInflammatoryScore: 4,
			},
		},
		{
			ID: seedID("carrot"), Name: "Carrot", Category: food.CategoryVegetable,
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteSweet, food.TasteBitter}, Guna: []food.Quality{food.QualityLight},
				Virya: food.ViryaHot, Vipaka: food.TasteSweet,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectDecrease, food.DoshaPitta: food.EffectIncrease, food.DoshaKapha: food.EffectDecrease,
				},
				Seasons: []food.Season{food.SeasonAutumn, food.SeasonWinter},
			},
			Unani: &food.UnaniAttributes{
				HotLevel: 1, MoistLevel: 1,
				HumorEffects:  map[food.Humor]int{food.HumorBalgham: -1, food.HumorSauda: -1},
				Digestibility: 2, Flatulence: food.FlatulenceLow,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalNeutral, Flavors: []food.Taste{food.TasteSweet},
				TonifiesQi: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 41, Protein: 0.9, Carbs: 9.6, Fat: 0.2, Fiber: 2.8, Sugar: 4.7,
				Sodium: 69, GlycemicIndex: 39, GlycemicLoad: 2, MicronutrientDensity: 8, AntiInflammatoryScore: 3,
			},
		},
		{
			ID: seedID("zucchini"), Name: "Zucchini", Category: food.CategoryVegetable,
			Tags: []string{food.TagLight},
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteSweet, food.TasteAstringent}, Guna: []food.Quality{food.QualityLight},
				Virya: food.ViryaCold, Vipaka: food.TasteSweet,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectNeutral, food.DoshaPitta: food.EffectDecrease, food.DoshaKapha: food.EffectNeutral,
				},
				Seasons: []food.Season{food.SeasonSummer},
			},
			Unani: &food.UnaniAttributes{
				ColdLevel: 2, MoistLevel: 2,
				HumorEffects:  map[food.Humor]int{food.HumorSafra: -1, food.HumorDam: -1},
				Digestibility: 1, Flatulence: food.FlatulenceLow,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalCool, Flavors: []food.Taste{food.TasteSweet},
				ClearsHeat: true, NourishesYin: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 17, Protein: 1.2, Carbs: 3.1, Fat: 0.3, Fiber: 1, Sugar: 2.5,
				Sodium: 8, GlycemicIndex: 15, GlycemicLoad: 1, MicronutrientDensity: 6, AntiInflammatoryScore: 2,
			},
		},
		{
			ID: seedID("bitter gourd"), Name: "Bitter Gourd", Category: food.CategoryVegetable,
			Tags: []string{food.TagLight, food.TagDry},
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteBitter}, Guna: []food.Quality{food.QualityLight, food.QualityDry},
				Virya: food.ViryaCold, Vipaka: food.TastePungent,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectIncrease, food.DoshaPitta: food.EffectDecrease, food.DoshaKapha: food.EffectDecrease,
				},
				Seasons: []food.Season{food.SeasonSummer},
			},
			Unani: &food.UnaniAttributes{
				ColdLevel: 2, DryLevel: 2,
				HumorEffects:  map[food.Humor]int{food.HumorSafra: -1, food.HumorBalgham: -1},
				Digestibility: 2, Flatulence: food.FlatulenceLow,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalCold, Flavors: []food.Taste{food.TasteBitter},
				ClearsHeat: true, ResolvesDampness: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 17, Protein: 1, Carbs: 3.7, Fat: 0.2, Fiber: 2.8, Sugar: 1,
				Sodium: 5, GlycemicIndex: 18, GlycemicLoad: 1, MicronutrientDensity: 7, AntiInflammatoryScore: 3,
			},
		},
		{
			ID: seedID("apple"), Name: "Apple", Category: food.CategoryFruit,
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteSweet, food.TasteAstringent}, Guna: []food.Quality{food.QualityLight},
				Virya: food.ViryaCold, Vipaka: food.TasteSweet,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectIncrease, food.DoshaPitta: food.EffectDecrease, food.DoshaKapha: food.EffectDecrease,
				},
				Seasons: []food.Season{food.SeasonAutumn},
			},
			Unani: &food.UnaniAttributes{
				ColdLevel: 1, MoistLevel: 1,
				HumorEffects:  map[food.Humor]int{food.HumorSafra: -1},
				Digestibility: 2, Flatulence: food.FlatulenceLow,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalCool, Flavors: []food.Taste{food.TasteSweet, food.TasteSour},
				NourishesYin: true, ClearsHeat: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 52, Protein: 0.3, Carbs: 14, Fat: 0.2, Fiber: 2.4, Sugar: 10,
				Sodium: 1, GlycemicIndex: 36, GlycemicLoad: 5, MicronutrientDensity: 5, AntiInflammatoryScore: 2,
			},
		},
		{
			ID: seedID("banana"), Name: "Banana", Category: food.CategoryFruit,
			Tags: []string{food.TagHeavy},
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteSweet}, Guna: []food.Quality{food.QualityHeavy},
				Virya: food.ViryaCold, Vipaka: food.TasteSour,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectDecrease, food.DoshaPitta: food.EffectDecrease, food.DoshaKapha: food.EffectIncrease,
				},
				Seasons: []food.Season{food.SeasonSummer},
			},
			Unani: &food.UnaniAttributes{
				ColdLevel: 1, MoistLevel: 2,
				HumorEffects:  map[food.Humor]int{food.HumorBalgham: 1, food.HumorSafra: -1},
				Digestibility: 3, Flatulence: food.FlatulenceMedium,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalCold, Flavors: []food.Taste{food.TasteSweet},
				NourishesYin: true, ClearsHeat: true, DampForming: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3, Fiber: 2.6, Sugar: 12,
				Sodium: 1, GlycemicIndex: 51, GlycemicLoad: 13, MicronutrientDensity: 5, AntiInflammatoryScore: 1,
				NutrientTags: []string{food.NutrientMagnesium, food.NutrientTryptophan},
			},
		},
		{
			ID: seedID("mango"), Name: "Mango", Category: food.CategoryFruit,
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteSweet, food.TasteSour}, Guna: []food.Quality{food.QualityHeavy, food.QualityOily},
				Virya: food.ViryaHot, Vipaka: food.TasteSweet,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectDecrease, food.DoshaPitta: food.EffectIncrease, food.DoshaKapha: food.EffectIncrease,
				},
				Seasons: []food.Season{food.SeasonSummer},
			},
			Unani: &food.UnaniAttributes{
				HotLevel: 1, MoistLevel: 2,
				HumorEffects:  map[food.Humor]int{food.HumorDam: 1, food.HumorSauda: -1},
				Digestibility: 3, Flatulence: food.FlatulenceLow,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalWarm, Flavors: []food.Taste{food.TasteSweet, food.TasteSour},
				TonifiesQi: true, DampForming: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 60, Protein: 0.8, Carbs: 15, Fat: 0.4, Fiber: 1.6, Sugar: 14,
				Sodium: 1, GlycemicIndex: 56, GlycemicLoad: 8, MicronutrientDensity: 6, AntiInflammatoryScore: 1,
			},
		},
		{
			ID: seedID("cow milk"), Name: "Cow Milk", Category: food.CategoryDairy,
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteSweet}, Guna: []food.Quality{food.QualityHeavy, food.QualityOily},
				Virya: food.ViryaCold, Vipaka: food.TasteSweet,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectDecrease, food.DoshaPitta: food.EffectDecrease, food.DoshaKapha: food.EffectIncrease,
				},
				Seasons: []food.Season{food.SeasonWinter},
			},
			Unani: &food.UnaniAttributes{
				ColdLevel: 1, MoistLevel: 2,
				HumorEffects:  map[food.Humor]int{food.HumorBalgham: 1, food.HumorSafra: -1, food.HumorSauda: -1},
				Digestibility: 3, Flatulence: food.FlatulenceMedium,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalNeutral, Flavors: []food.Taste{food.TasteSweet},
				NourishesYin: true, TonifiesQi: true, DampForming: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 61, Protein: 3.2, Carbs: 4.8, Fat: 3.3, Fiber: 0, Sugar: 5.1,
				Sodium: 43, SaturatedFat: 1.9, GlycemicIndex: 39, GlycemicLoad: 2,
				MicronutrientDensity: 5, AntiInflammatoryScore: 0,
				NutrientTags: []string{food.NutrientTryptophan, food.NutrientBVitamins},
			},
		},
		{
			ID: seedID("yogurt"), Name: "Yogurt", Category: food.CategoryDairy,
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteSour}, Guna: []food.Quality{food.QualityHeavy, food.QualityOily},
				Virya: food.ViryaHot, Vipaka: food.TasteSour,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectDecrease, food.DoshaPitta: food.EffectIncrease, food.DoshaKapha: food.EffectIncrease,
				},
				Seasons: []food.Season{food.SeasonWinter},
			},
			Unani: &food.UnaniAttributes{
				ColdLevel: 1, MoistLevel: 2,
				HumorEffects:  map[food.Humor]int{food.HumorBalgham: 1, food.HumorSauda: -1},
				Digestibility: 2, Flatulence: food.FlatulenceLow,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalNeutral, Flavors: []food.Taste{food.TasteSour, food.TasteSweet},
				NourishesYin: true, DampForming: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 59, Protein: 10, Carbs: 3.6, Fat: 0.4, Fiber: 0, Sugar: 3.2,
				Sodium: 36, SaturatedFat: 0.1, GlycemicIndex: 35, GlycemicLoad: 1,
				MicronutrientDensity: 6, AntiInflammatoryScore: 1,
				NutrientTags: []string{food.NutrientTryptophan, food.NutrientBVitamins},
			},
		},
		{
			ID: seedID("paneer"), Name: "Paneer", Category: food.CategoryDairy,
			Tags: []string{food.TagHeavy},
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteSweet}, Guna: []food.Quality{food.QualityHeavy, food.QualityOily},
				Virya: food.ViryaCold, Vipaka: food.TasteSweet,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectDecrease, food.DoshaPitta: food.EffectNeutral, food.DoshaKapha: food.EffectIncrease,
				},
				Seasons: []food.Season{food.SeasonWinter},
			},
			Unani: &food.UnaniAttributes{
				ColdLevel: 1, MoistLevel: 1,
				HumorEffects:  map[food.Humor]int{food.HumorBalgham: 1, food.HumorDam: 1},
				Digestibility: 4, Flatulence: food.FlatulenceMedium,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalNeutral, Flavors: []food.Taste{food.TasteSweet},
				TonifiesQi: true, DampForming: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 265, Protein: 18, Carbs: 1.2, Fat: 21, Fiber: 0, Sugar: 1.2,
				Sodium: 18, SaturatedFat: 13, GlycemicIndex: 27, GlycemicLoad: 1,
				MicronutrientDensity: 5, AntiInflammatoryScore: -1,
			},
		},
		{
			ID: seedID("chicken breast"), Name: "Chicken Breast", Category: food.CategoryMeat,
			Tags: []string{food.TagLight},
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteSweet}, Guna: []food.Quality{food.QualityLight},
				Virya: food.ViryaHot, Vipaka: food.TasteSweet,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectDecrease, food.DoshaPitta: food.EffectNeutral, food.DoshaKapha: food.EffectNeutral,
				},
				Seasons: []food.Season{food.SeasonWinter, food.SeasonAutumn},
			},
			Unani: &food.UnaniAttributes{
				HotLevel: 1, MoistLevel: 1,
				HumorEffects:  map[food.Humor]int{food.HumorDam: 1, food.HumorSauda: -1},
				Digestibility: 2, Flatulence: food.FlatulenceLow,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalWarm, Flavors: []food.Taste{food.TasteSweet},
				TonifiesQi: true, WarmsYang: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Fiber: 0, Sugar: 0,
				Sodium: 74, SaturatedFat: 1, GlycemicIndex: 0, GlycemicLoad: 0,
				MicronutrientDensity: 6, AntiInflammatoryScore: 0,
				NutrientTags: []string{food.NutrientBVitamins, food.NutrientTryptophan},
			},
		},
		{
			ID: seedID("lamb"), Name: "Lamb", Category: food.CategoryMeat,
			Tags: []string{food.TagHeavy, food.TagOily},
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteSweet}, Guna: []food.Quality{food.QualityHeavy, food.QualityOily, food.QualityHot},
				Virya: food.ViryaHot, Vipaka: food.TasteSweet,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectDecrease, food.DoshaPitta: food.EffectIncrease, food.DoshaKapha: food.EffectIncrease,
				},
				Seasons: []food.Season{food.SeasonWinter},
			},
			Unani: &food.UnaniAttributes{
				HotLevel: 2, MoistLevel: 2,
				HumorEffects:  map[food.Humor]int{food.HumorDam: 1, food.HumorBalgham: -1, food.HumorSauda: -1},
				Digestibility: 4, Flatulence: food.FlatulenceMedium,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalHot, Flavors: []food.Taste{food.TasteSweet},
				WarmsYang: true, TonifiesQi: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 294, Protein: 25, Carbs: 0, Fat: 21, Fiber: 0, Sugar: 0,
				Sodium: 72, SaturatedFat: 8.8, GlycemicIndex: 0, GlycemicLoad: 0,
				MicronutrientDensity: 5, AntiInflammatoryScore: -2,
				NutrientTags: []string{food.NutrientIron, food.NutrientBVitamins},
			},
		},
		{
			ID: seedID("salmon"), Name: "Salmon", Category: food.CategoryMeat,
			Tags: []string{food.TagOily},
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteSweet}, Guna: []food.Quality{food.QualityHeavy, food.QualityOily},
				Virya: food.ViryaHot, Vipaka: food.TasteSweet,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectDecrease, food.DoshaPitta: food.EffectIncrease, food.DoshaKapha: food.EffectNeutral,
				},
				Seasons: []food.Season{food.SeasonWinter},
			},
			Unani: &food.UnaniAttributes{
				HotLevel: 1, MoistLevel: 2,
				HumorEffects:  map[food.Humor]int{food.HumorDam: 1, food.HumorSauda: -1},
				Digestibility: 3, Flatulence: food.FlatulenceLow,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalWarm, Flavors: []food.Taste{food.TasteSweet},
				TonifiesQi: true, WarmsYang: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 208, Protein: 20, Carbs: 0, Fat: 13, Fiber: 0, Sugar: 0,
				Sodium: 59, SaturatedFat: 3.1, GlycemicIndex: 0, GlycemicLoad: 0,
				MicronutrientDensity: 8, AntiInflammatoryScore: 4,
				NutrientTags: []string{food.NutrientOmega3, food.NutrientBVitamins},
			},
		},
		{
			ID: seedID("red lentils"), Name: "Red Lentils", Category: food.CategoryLegume,
			Tags: []string{food.TagLight},
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteSweet, food.TasteAstringent}, Guna: []food.Quality{food.QualityLight, food.QualityDry},
				Virya: food.ViryaHot, Vipaka: food.TasteSweet,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectIncrease, food.DoshaPitta: food.EffectNeutral, food.DoshaKapha: food.EffectDecrease,
				},
				Seasons: []food.Season{food.SeasonWinter, food.SeasonSpring},
			},
			Unani: &food.UnaniAttributes{
				HotLevel: 1, DryLevel: 2,
				HumorEffects:  map[food.Humor]int{food.HumorBalgham: -1, food.HumorSauda: 1},
				Digestibility: 2, Flatulence: food.FlatulenceMedium,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalNeutral, Flavors: []food.Taste{food.TasteSweet},
				TonifiesQi: true, ResolvesDampness: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 116, Protein: 9, Carbs: 20, Fat: 0.4, Fiber: 7.9, Sugar: 1.8,
				Sodium: 2, GlycemicIndex: 32, GlycemicLoad: 6, MicronutrientDensity: 7, AntiInflammatoryScore: 2,
				NutrientTags: []string{food.NutrientIron, food.NutrientBVitamins},
			},
		},
		{
			ID: seedID("chickpeas"), Name: "Chickpeas", Category: food.CategoryLegume,
			Tags: []string{food.TagHeavy, food.TagDry},
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteSweet, food.TasteAstringent}, Guna: []food.Quality{food.QualityHeavy, food.QualityDry},
				Virya: food.ViryaCold, Vipaka: food.TasteSweet,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectIncrease, food.DoshaPitta: food.EffectDecrease, food.DoshaKapha: food.EffectDecrease,
				},
				Seasons: []food.Season{food.SeasonAutumn},
			},
			Unani: &food.UnaniAttributes{
				HotLevel: 1, DryLevel: 1,
				HumorEffects:  map[food.Humor]int{food.HumorDam: 1, food.HumorBalgham: -1},
				Digestibility: 4, Flatulence: food.FlatulenceHigh,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalNeutral, Flavors: []food.Taste{food.TasteSweet},
				TonifiesQi: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 164, Protein: 8.9, Carbs: 27, Fat: 2.6, Fiber: 7.6, Sugar: 4.8,
				Sodium: 7, GlycemicIndex: 28, GlycemicLoad: 8, MicronutrientDensity: 7, AntiInflammatoryScore: 2,
				NutrientTags: []string{food.NutrientIron, food.NutrientMagnesium},
			},
		},
		{
			ID: seedID("mung beans"), Name: "Mung Beans", Category: food.CategoryLegume,
			Tags: []string{food.TagLight},
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteSweet, food.TasteAstringent}, Guna: []food.Quality{food.QualityLight, food.QualityDry},
				Virya: food.ViryaCold, Vipaka: food.TasteSweet,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectNeutral, food.DoshaPitta: food.EffectDecrease, food.DoshaKapha: food.EffectDecrease,
				},
				Seasons: []food.Season{food.SeasonSummer, food.SeasonSpring},
			},
			Unani: &food.UnaniAttributes{
				ColdLevel: 1, DryLevel: 1,
				HumorEffects:  map[food.Humor]int{food.HumorSafra: -1, food.HumorDam: -1},
				Digestibility: 1, Flatulence: food.FlatulenceLow,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalCool, Flavors: []food.Taste{food.TasteSweet},
				ClearsHeat: true, ResolvesDampness: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 105, Protein: 7, Carbs: 19, Fat: 0.4, Fiber: 7.6, Sugar: 2,
				Sodium: 2, GlycemicIndex: 31, GlycemicLoad: 6, MicronutrientDensity: 7, AntiInflammatoryScore: 2,
				NutrientTags: []string{food.NutrientMagnesium},
			},
		},
		{
			ID: seedID("almonds"), Name: "Almonds", Category: food.CategoryNut,
			Tags: []string{food.TagOily},
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteSweet}, Guna: []food.Quality{food.QualityHeavy, food.QualityOily},
				Virya: food.ViryaHot, Vipaka: food.TasteSweet,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectDecrease, food.DoshaPitta: food.EffectIncrease, food.DoshaKapha: food.EffectIncrease,
				},
				Seasons: []food.Season{food.SeasonWinter},
			},
			Unani: &food.UnaniAttributes{
				HotLevel: 1, MoistLevel: 1,
				HumorEffects:  map[food.Humor]int{food.HumorSauda: -1, food.HumorDam: 1},
				Digestibility: 3, Flatulence: food.FlatulenceLow,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalNeutral, Flavors: []food.Taste{food.TasteSweet},
				NourishesYin: true, TonifiesQi: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 579, Protein: 21, Carbs: 22, Fat: 50, Fiber: 12.5, Sugar: 4.4,
				Sodium: 1, SaturatedFat: 3.8, GlycemicIndex: 15, GlycemicLoad: 1,
				MicronutrientDensity: 8, AntiInflammatoryScore: 3,
				NutrientTags: []string{food.NutrientMagnesium},
			},
		},
		{
			ID: seedID("walnuts"), Name: "Walnuts", Category: food.CategoryNut,
			Tags: []string{food.TagOily},
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteSweet, food.TasteAstringent}, Guna: []food.Quality{food.QualityHeavy, food.QualityOily},
				Virya: food.ViryaHot, Vipaka: food.TasteSweet,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectDecrease, food.DoshaPitta: food.EffectIncrease, food.DoshaKapha: food.EffectIncrease,
				},
				Seasons: []food.Season{food.SeasonWinter, food.SeasonAutumn},
			},
			Unani: &food.UnaniAttributes{
				HotLevel: 2, DryLevel: 1,
				HumorEffects:  map[food.Humor]int{food.HumorBalgham: -1, food.HumorSafra: 1},
				Digestibility: 3, Flatulence: food.FlatulenceLow,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalWarm, Flavors: []food.Taste{food.TasteSweet},
				WarmsYang: true, TonifiesQi: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 654, Protein: 15, Carbs: 14, Fat: 65, Fiber: 6.7, Sugar: 2.6,
				Sodium: 2, SaturatedFat: 6.1, GlycemicIndex: 15, GlycemicLoad: 1,
				MicronutrientDensity: 7, AntiInflammatoryScore: 4,
				NutrientTags: []string{food.NutrientOmega3, food.NutrientMagnesium},
			},
		},
		{
			ID: seedID("ginger"), Name: "Ginger", Category: food.CategorySpice,
			Tags: []string{food.TagLight},
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TastePungent, food.TasteSweet}, Guna: []food.Quality{food.QualityLight, food.QualityHot},
				Virya: food.ViryaHot, Vipaka: food.TasteSweet,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectDecrease, food.DoshaPitta: food.EffectIncrease, food.DoshaKapha: food.EffectDecrease,
				},
				Seasons: []food.Season{food.SeasonWinter, food.SeasonAutumn},
			},
			Unani: &food.UnaniAttributes{
				HotLevel: 3, DryLevel: 2,
				HumorEffects:  map[food.Humor]int{food.HumorBalgham: -1, food.HumorSauda: -1, food.HumorSafra: 1},
				Digestibility: 1, Flatulence: food.FlatulenceLow,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalWarm, Flavors: []food.Taste{food.TastePungent},
				WarmsYang: true, ResolvesDampness: true, MovesQi: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 80, Protein: 1.8, Carbs: 18, Fat: 0.8, Fiber: 2, Sugar: 1.7,
				Sodium: 13, GlycemicIndex: 15, GlycemicLoad: 1, MicronutrientDensity: 6, AntiInflammatoryScore: 5,
			},
		},
		{
			ID: seedID("turmeric"), Name: "Turmeric", Category: food.CategorySpice,
			Tags: []string{food.TagLight, food.TagDry},
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteBitter, food.TastePungent, food.TasteAstringent}, Guna: []food.Quality{food.QualityLight, food.QualityDry},
				Virya: food.ViryaHot, Vipaka: food.TastePungent,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectNeutral, food.DoshaPitta: food.EffectDecrease, food.DoshaKapha: food.EffectDecrease,
				},
				Seasons: []food.Season{food.SeasonWinter, food.SeasonSpring},
			},
			Unani: &food.UnaniAttributes{
				HotLevel: 2, DryLevel: 2,
				HumorEffects:  map[food.Humor]int{food.HumorBalgham: -1, food.HumorSauda: -1},
				Digestibility: 1, Flatulence: food.FlatulenceLow,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalWarm, Flavors: []food.Taste{food.TasteBitter, food.TastePungent},
				MovesQi: true, ResolvesDampness: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 312, Protein: 9.7, Carbs: 67, Fat: 3.2, Fiber: 22.7, Sugar: 3.2,
				Sodium: 27, GlycemicIndex: 15, GlycemicLoad: 1, MicronutrientDensity: 8, AntiInflammatoryScore: 5,
				NutrientTags: []string{food.NutrientIron},
			},
		},
		{
			ID: seedID("cinnamon"), Name: "Cinnamon", Category: food.CategorySpice,
			Tags: []string{food.TagLight, food.TagDry},
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TastePungent, food.TasteSweet}, Guna: []food.Quality{food.QualityLight, food.QualityDry},
				Virya: food.ViryaHot, Vipaka: food.TastePungent,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectDecrease, food.DoshaPitta: food.EffectIncrease, food.DoshaKapha: food.EffectDecrease,
				},
				Seasons: []food.Season{food.SeasonWinter},
			},
			Unani: &food.UnaniAttributes{
				HotLevel: 2, DryLevel: 2,
				HumorEffects:  map[food.Humor]int{food.HumorBalgham: -1, food.HumorSafra: 1},
				Digestibility: 1, Flatulence: food.FlatulenceLow,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalHot, Flavors: []food.Taste{food.TastePungent, food.TasteSweet},
				WarmsYang: true, MovesQi: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 247, Protein: 4, Carbs: 81, Fat: 1.2, Fiber: 53, Sugar: 2.2,
				Sodium: 10, GlycemicIndex: 5, GlycemicLoad: 0, MicronutrientDensity: 7, AntiInflammatoryScore: 4,
			},
		},
		{
			ID: seedID("olive oil"), Name: "Olive Oil", Category: food.CategoryOil,
			Tags: []string{food.TagOily},
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteSweet, food.TasteBitter}, Guna: []food.Quality{food.QualityOily},
				Virya: food.ViryaHot, Vipaka: food.TasteSweet,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectDecrease, food.DoshaPitta: food.EffectNeutral, food.DoshaKapha: food.EffectIncrease,
				},
				Seasons: []food.Season{food.SeasonAutumn, food.SeasonWinter},
			},
			Unani: &food.UnaniAttributes{
				HotLevel: 1, MoistLevel: 2,
				HumorEffects:  map[food.Humor]int{food.HumorSauda: -1},
				Digestibility: 2, Flatulence: food.FlatulenceLow,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalNeutral, Flavors: []food.Taste{food.TasteSweet},
				NourishesYin: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 884, Protein: 0, Carbs: 0, Fat: 100, Fiber: 0, Sugar: 0,
				Sodium: 2, SaturatedFat: 14, GlycemicIndex: 0, GlycemicLoad: 0,
				MicronutrientDensity: 3, AntiInflammatoryScore: 4,
				NutrientTags: []string{food.NutrientOmega3},
			},
		},
		{
			ID: seedID("ghee"), Name: "Ghee", Category: food.CategoryOil,
			Tags: []string{food.TagOily, food.TagHeavy},
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteSweet}, Guna: []food.Quality{food.QualityOily, food.QualityHeavy},
				Virya: food.ViryaCold, Vipaka: food.TasteSweet,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectDecrease, food.DoshaPitta: food.EffectDecrease, food.DoshaKapha: food.EffectIncrease,
				},
				Seasons: []food.Season{food.SeasonWinter, food.SeasonAutumn},
			},
			Unani: &food.UnaniAttributes{
				HotLevel: 1, MoistLevel: 3,
				HumorEffects:  map[food.Humor]int{food.HumorSauda: -1, food.HumorBalgham: 1},
				Digestibility: 2, Flatulence: food.FlatulenceLow,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalWarm, Flavors: []food.Taste{food.TasteSweet},
				NourishesYin: true, TonifiesQi: true, DampForming: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 900, Protein: 0, Carbs: 0, Fat: 100, Fiber: 0, Sugar: 0,
				Sodium: 0, SaturatedFat: 62, GlycemicIndex: 0, GlycemicLoad: 0,
				MicronutrientDensity: 2, AntiInflammatoryScore: -1,
			},
		},
		{
			ID: seedID("green tea"), Name: "Green Tea", Category: food.CategoryBeverage,
			Tags: []string{food.TagCaffeinated, food.TagLight},
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteBitter, food.TasteAstringent}, Guna: []food.Quality{food.QualityLight, food.QualityDry},
				Virya: food.ViryaCold, Vipaka: food.TastePungent,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectIncrease, food.DoshaPitta: food.EffectDecrease, food.DoshaKapha: food.EffectDecrease,
				},
				Seasons: []food.Season{food.SeasonSummer, food.SeasonSpring},
			},
			Unani: &food.UnaniAttributes{
				ColdLevel: 1, DryLevel: 2,
				HumorEffects:  map[food.Humor]int{food.HumorBalgham: -1, food.HumorSafra: -1},
				Digestibility: 1, Flatulence: food.FlatulenceLow,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalCool, Flavors: []food.Taste{food.TasteBitter},
				ClearsHeat: true, ResolvesDampness: true, MovesQi: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 1, Protein: 0.2, Carbs: 0, Fat: 0, Fiber: 0, Sugar: 0,
				Sodium: 1, GlycemicIndex: 0, GlycemicLoad: 0, MicronutrientDensity: 4, AntiInflammatoryScore: 3,
				Caffeinated: true,
			},
		},
		{
			ID: seedID("coffee"), Name: "Coffee", Category: food.CategoryBeverage,
			Tags: []string{food.TagCaffeinated, food.TagDry},
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteBitter}, Guna: []food.Quality{food.QualityLight, food.QualityDry, food.QualityHot},
				Virya: food.ViryaHot, Vipaka: food.TastePungent,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectIncrease, food.DoshaPitta: food.EffectIncrease, food.DoshaKapha: food.EffectDecrease,
				},
				Seasons: []food.Season{food.SeasonWinter},
			},
			Unani: &food.UnaniAttributes{
				HotLevel: 2, DryLevel: 3,
				HumorEffects:  map[food.Humor]int{food.HumorSauda: 1, food.HumorBalgham: -1},
				Digestibility: 2, Flatulence: food.FlatulenceLow,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalWarm, Flavors: []food.Taste{food.TasteBitter},
				MovesQi: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 2, Protein: 0.3, Carbs: 0, Fat: 0, Fiber: 0, Sugar: 0,
				Sodium: 5, GlycemicIndex: 0, GlycemicLoad: 0, MicronutrientDensity: 2, AntiInflammatoryScore: 1,
				Caffeinated: true,
			},
		},
		{
			ID: seedID("eggs"), Name: "Eggs", Category: food.CategoryEgg,
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteSweet}, Guna: []food.Quality{food.QualityHeavy, food.QualityOily},
				Virya: food.ViryaHot, Vipaka: food.TasteSweet,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectDecrease, food.DoshaPitta: food.EffectIncrease, food.DoshaKapha: food.EffectIncrease,
				},
				Seasons: []food.Season{food.SeasonWinter},
			},
			Unani: &food.UnaniAttributes{
				HotLevel: 1, MoistLevel: 1,
				HumorEffects:  map[food.Humor]int{food.HumorDam: 1, food.HumorSauda: -1},
				Digestibility: 2, Flatulence: food.FlatulenceLow,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalNeutral, Flavors: []food.Taste{food.TasteSweet},
				NourishesYin: true, TonifiesQi: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 155, Protein: 13, Carbs: 1.1, Fat: 11, Fiber: 0, Sugar: 1.1,
				Sodium: 124, SaturatedFat: 3.3, GlycemicIndex: 0, GlycemicLoad: 0,
				MicronutrientDensity: 7, AntiInflammatoryScore: 0,
				NutrientTags: []string{food.NutrientBVitamins, food.NutrientTryptophan},
			},
		},
		{
			ID: seedID("honey"), Name: "Honey", Category: food.CategorySweetener,
			Ayurveda: &food.AyurvedaAttributes{
				Rasa: []food.Taste{food.TasteSweet, food.TasteAstringent}, Guna: []food.Quality{food.QualityLight, food.QualityDry},
				Virya: food.ViryaHot, Vipaka: food.TasteSweet,
				DoshaEffects: map[food.Dosha]food.DoshaEffect{
					food.DoshaVata: food.EffectDecrease, food.DoshaPitta: food.EffectIncrease, food.DoshaKapha: food.EffectDecrease,
				},
				Seasons: []food.Season{food.SeasonSpring, food.SeasonWinter},
			},
			Unani: &food.UnaniAttributes{
				HotLevel: 2, DryLevel: 1,
				HumorEffects:  map[food.Humor]int{food.HumorBalgham: -1, food.HumorSafra: 1},
				Digestibility: 1, Flatulence: food.FlatulenceLow,
			},
			TCM: &food.TCMAttributes{
				Thermal: food.ThermalNeutral, Flavors: []food.Taste{food.TasteSweet},
				TonifiesQi: true, NourishesYin: true,
			},
			Clinical: &food.ClinicalAttributes{
				Calories: 304, Protein: 0.3, Carbs: 82, Fat: 0, Fiber: 0.2, Sugar: 82,
				Sodium: 4, GlycemicIndex: 58, GlycemicLoad: 10, MicronutrientDensity: 2, AntiInflammatoryScore: 1,
				AddedSugar: true,
			},
		},
	}
}
