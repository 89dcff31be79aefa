package gorm

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equilibra/v1/internal/domain/food"
	"github.com/equilibra/v1/internal/domain/recommendation"
)

func TestFoodMappingRoundTrip(t *testing.T) {
	original := food.Food{
		ID:       uuid.New(),
		Name:     "ginger",
		Category: food.CategorySpice,
		Tags:     []string{food.TagLight},
		Ayurveda: &food.AyurvedaAttributes{
			Rasa:         []food.Taste{food.TastePungent},
			Guna:         []food.Quality{food.QualityLight, food.QualityDry},
			Virya:        food.ViryaHot,
			DoshaEffects: map[food.Dosha]food.DoshaEffect{food.DoshaKapha: food.EffectDecrease},
			Seasons:      []food.Season{food.SeasonWinter},
		},
		Unani: &food.UnaniAttributes{
			HotLevel:      3,
			DryLevel:      2,
			HumorEffects:  map[food.Humor]int{food.HumorBalgham: -1},
			Digestibility: 1,
			Flatulence:    food.FlatulenceLow,
		},
		TCM: &food.TCMAttributes{
			Thermal:   food.ThermalWarm,
			Flavors:   []food.Taste{food.TastePungent},
			WarmsYang: true,
			MovesQi:   true,
		},
		Clinical: &food.ClinicalAttributes{
			Calories:              80,
			Fiber:                 2,
			GlycemicIndex:         15,
			MicronutrientDensity:  6,
			AntiInflammatoryScore: 4,
			NutrientTags:          []string{food.NutrientMagnesium},
		},
	}

	model, err := FoodToModel(original)
	require.NoError(t, err)
	assert.Equal(t, original.ID, model.ID)
	assert.Equal(t, "spice", model.Category)
	assert.NotEmpty(t, model.Ayurveda)

	back, err := ModelToFood(model)
	require.NoError(t, err)
	assert.Equal(t, original, back)
}

func TestFoodMappingNilBlocks(t *testing.T) {
	original := food.Food{ID: uuid.New(), Name: "mystery", Category: food.CategoryGrain}

	model, err := FoodToModel(original)
	require.NoError(t, err)
	assert.Nil(t, model.Ayurveda, "nil block maps to NULL column")
	assert.Nil(t, model.Unani)
	assert.Nil(t, model.TCM)
	assert.Nil(t, model.Clinical)

	back, err := ModelToFood(model)
	require.NoError(t, err)
	assert.Nil(t, back.Ayurveda)
	assert.Nil(t, back.Unani)
	assert.Nil(t, back.TCM)
	assert.Nil(t, back.Clinical)
	assert.Equal(t, original, back)
}

func TestModelToFoodRejectsCorruptBlock(t *testing.T) {
	model := &FoodModel{
		ID:       uuid.New(),
		Name:     "broken",
		Category: "grain",
		Ayurveda: JSONField(`{"Virya":`),
	}
	_, err := ModelToFood(model)
	assert.Error(t, err)
}

func TestOverrideMappingRoundTrip(t *testing.T) {
	newScore := 4.5
	original := &recommendation.Override{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		ItemID:         uuid.New(),
		PractitionerID: uuid.New(),
		Action:         recommendation.OverrideApprove,
		Reason:         "tolerated in practice",
		NewScore:       &newScore,
		CreatedAt:      time.Now().UTC().Truncate(time.Second),
	}

	back := ModelToOverride(OverrideToModel(original))
	assert.Equal(t, original, back)
}

func TestJSONFieldScanAndValue(t *testing.T) {
	var f JSONField
	require.NoError(t, f.Scan([]byte(`{"a":1}`)))
	assert.Equal(t, JSONField(`{"a":1}`), f)

	require.NoError(t, f.Scan("[]"))
	assert.Equal(t, JSONField("[]"), f)

	require.NoError(t, f.Scan(nil))
	assert.Nil(t, f)

	v, err := JSONField(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	assert.Error(t, f.Scan(42))
}

func TestStringSliceScanAndValue(t *testing.T) {
	var s StringSlice
	require.NoError(t, s.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, StringSlice{"a", "b"}, s)

	require.NoError(t, s.Scan(nil))
	assert.Nil(t, s)

	v, err := StringSlice(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	assert.Error(t, s.Scan(3.14))
}
