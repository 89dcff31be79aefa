package food

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFoodValidate(t *testing.T) {
	valid := Food{ID: uuid.New(), Name: "basmati rice", Category: CategoryGrain}
	assert.NoError(t, valid.Validate())

	f := valid
	f.ID = uuid.Nil
	assert.ErrorIs(t, f.Validate(), ErrMissingID)

	f = valid
	f.Name = ""
	assert.ErrorIs(t, f.Validate(), ErrMissingName)

	f = valid
	f.Category = "snack"
	assert.ErrorIs(t, f.Validate(), ErrInvalidCategory)
}

func TestFoodIsCaffeinated(t *testing.T) {
	tagged := Food{Tags: []string{TagCaffeinated}}
	assert.True(t, tagged.IsCaffeinated())

	flagged := Food{Clinical: &ClinicalAttributes{Caffeinated: true}}
	assert.True(t, flagged.IsCaffeinated())

	plain := Food{Clinical: &ClinicalAttributes{}}
	assert.False(t, plain.IsCaffeinated())
	assert.False(t, Food{}.IsCaffeinated())
}

func TestFoodIsIronSource(t *testing.T) {
	assert.True(t, Food{Category: CategoryMeat}.IsIronSource())

	spinach := Food{
		Category: CategoryVegetable,
		Clinical: &ClinicalAttributes{NutrientTags: []string{NutrientIron}},
	}
	assert.True(t, spinach.IsIronSource())

	assert.False(t, Food{Category: CategoryVegetable}.IsIronSource())
}

func TestFoodIsVegetarian(t *testing.T) {
	assert.False(t, Food{Category: CategoryMeat}.IsVegetarian())
	assert.True(t, Food{Category: CategoryLegume}.IsVegetarian())
	assert.True(t, Food{Category: CategoryEgg}.IsVegetarian())
}

func TestAyurvedaAttributesValidate(t *testing.T) {
	valid := AyurvedaAttributes{
		Virya:        ViryaHot,
		DoshaEffects: map[Dosha]DoshaEffect{DoshaVata: EffectDecrease},
		Rasa:         []Taste{TasteSweet, TastePungent},
	}
	assert.NoError(t, valid.Validate())

	a := valid
	a.Virya = ""
	assert.ErrorIs(t, a.Validate(), ErrInvalidVirya)

	a = valid
	a.DoshaEffects = nil
	assert.ErrorIs(t, a.Validate(), ErrMissingDoshaEffects)

	a = valid
	a.DoshaEffects = map[Dosha]DoshaEffect{"ether": EffectIncrease}
	assert.ErrorIs(t, a.Validate(), ErrInvalidDosha)

	a = valid
	a.DoshaEffects = map[Dosha]DoshaEffect{DoshaVata: "amplify"}
	assert.ErrorIs(t, a.Validate(), ErrInvalidDoshaEffect)

	a = valid
	a.Rasa = []Taste{"umami"}
	assert.ErrorIs(t, a.Validate(), ErrInvalidTaste)
}

func TestAyurvedaAttributesLookups(t *testing.T) {
	a := AyurvedaAttributes{
		Rasa:         []Taste{TasteBitter},
		Guna:         []Quality{QualityLight, QualityDry},
		DoshaEffects: map[Dosha]DoshaEffect{DoshaKapha: EffectDecrease},
		Seasons:      []Season{SeasonWinter},
	}

	assert.Equal(t, EffectDecrease, a.EffectOn(DoshaKapha))
	assert.Equal(t, EffectNeutral, a.EffectOn(DoshaVata), "missing entry defaults to neutral")
	assert.True(t, a.HasGuna(QualityDry))
	assert.False(t, a.HasGuna(QualityOily))
	assert.True(t, a.HasRasa(TasteBitter))
	assert.False(t, a.HasRasa(TasteSweet))
	assert.True(t, a.InSeason(SeasonWinter))
	assert.False(t, a.InSeason(SeasonSummer))
}

func TestUnaniAttributesValidate(t *testing.T) {
	valid := UnaniAttributes{
		HotLevel:      2,
		Digestibility: 3,
		Flatulence:    FlatulenceLow,
		HumorEffects:  map[Humor]int{HumorBalgham: -1},
	}
	assert.NoError(t, valid.Validate())

	u := valid
	u.ColdLevel = 5
	assert.ErrorIs(t, u.Validate(), ErrInvalidTemperamentLevel)

	u = valid
	u.Digestibility = 0
	assert.ErrorIs(t, u.Validate(), ErrInvalidDigestibility)

	u = valid
	u.Flatulence = "none"
	assert.ErrorIs(t, u.Validate(), ErrInvalidFlatulence)

	u = valid
	u.HumorEffects = map[Humor]int{"lymph": 1}
	assert.ErrorIs(t, u.Validate(), ErrInvalidHumor)

	u = valid
	u.HumorEffects = map[Humor]int{HumorDam: 2}
	assert.ErrorIs(t, u.Validate(), ErrInvalidHumorEffect)
}

func TestTCMAttributesValidate(t *testing.T) {
	valid := TCMAttributes{Thermal: ThermalWarm, Flavors: []Taste{TastePungent}}
	assert.NoError(t, valid.Validate())

	a := valid
	a.Thermal = "tepid"
	assert.ErrorIs(t, a.Validate(), ErrInvalidThermalNature)

	a = valid
	a.Flavors = []Taste{"umami"}
	assert.ErrorIs(t, a.Validate(), ErrInvalidTaste)
}

func TestThermalNatureDirections(t *testing.T) {
	assert.True(t, ThermalHot.Warming())
	assert.True(t, ThermalWarm.Warming())
	assert.False(t, ThermalNeutral.Warming())
	assert.True(t, ThermalCool.Cooling())
	assert.True(t, ThermalCold.Cooling())
	assert.False(t, ThermalNeutral.Cooling())
}

func TestClinicalAttributesValidate(t *testing.T) {
	valid := ClinicalAttributes{
		Calories:             120,
		GlycemicIndex:        55,
		MicronutrientDensity: 6,
	}
	assert.NoError(t, valid.Validate())

	c := valid
	c.Sodium = -1
	assert.ErrorIs(t, c.Validate(), ErrNegativeNutrient)

	c = valid
	c.GlycemicIndex = 150
	assert.ErrorIs(t, c.Validate(), ErrInvalidGlycemicIndex)

	c = valid
	c.MicronutrientDensity = 11
	assert.ErrorIs(t, c.Validate(), ErrInvalidMicronutrientDensity)

	c = valid
	c.AntiInflammatoryScore = -6
	assert.ErrorIs(t, c.Validate(), ErrInvalidAntiInflammatoryScore)
}
