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

func balghamProfile(severity int) profile.UnaniProfile {
	return profile.UnaniProfile{
		UserID:            uuid.New(),
		Dominant:          food.HumorBalgham,
		Severity:          severity,
		DigestiveStrength: profile.DigestionModerate,
	}
}

func unaniFood(attrs food.UnaniAttributes) food.Food {
	if attrs.Digestibility == 0 {
		attrs.Digestibility = 3
	}
	if attrs.Flatulence == "" {
		attrs.Flatulence = food.FlatulenceLow
	}
	return food.Food{
		ID:       uuid.New(),
		Name:     "test food",
		Category: food.CategoryGrain,
		Unani:    &attrs,
	}
}

func TestUnaniHumorCorrectionMagnitudes(t *testing.T) {
	pacifying := unaniFood(food.UnaniAttributes{
		HumorEffects: map[food.Humor]int{food.HumorBalgham: -1},
	})
	aggravating := unaniFood(food.UnaniAttributes{
		HumorEffects: map[food.Humor]int{food.HumorBalgham: 1},
	})
	neutral := unaniFood(food.UnaniAttributes{})

	for severity := 1; severity <= 3; severity++ {
		prof := balghamProfile(severity)
		s := float64(severity)

		delta, _ := unaniHumor(prof, pacifying)
		assert.Equal(t, 4*s, delta)

		delta, _ = unaniHumor(prof, aggravating)
		assert.Equal(t, -4*s, delta)

		delta, _ = unaniHumor(prof, neutral)
		assert.Equal(t, 1*s, delta)
	}
}

func TestUnaniTemperamentOpposition(t *testing.T) {
	// Balgham is cold and moist; hot and dry foods correct it.
	hotDry := unaniFood(food.UnaniAttributes{HotLevel: 3, DryLevel: 2})
	delta, _ := unaniTemperament(balghamProfile(1), hotDry)
	assert.Equal(t, 4.0, delta)

	coldMoist := unaniFood(food.UnaniAttributes{ColdLevel: 2, MoistLevel: 3})
	delta, _ = unaniTemperament(balghamProfile(1), coldMoist)
	assert.Equal(t, -4.0, delta)

	// Level 1 qualities fall below the grading threshold.
	mild := unaniFood(food.UnaniAttributes{HotLevel: 1, DryLevel: 1})
	delta, _ = unaniTemperament(balghamProfile(1), mild)
	assert.Zero(t, delta)
}

func TestUnaniTemperamentPerHumorTargets(t *testing.T) {
	hotMoist := unaniFood(food.UnaniAttributes{HotLevel: 3, MoistLevel: 3})

	// Sauda (cold+dry) wants hot+moist.
	sauda := balghamProfile(1)
	sauda.Dominant = food.HumorSauda
	delta, _ := unaniTemperament(sauda, hotMoist)
	assert.Equal(t, 4.0, delta)

	// Dam (hot+moist) wants cold+dry; the same food reinforces it.
	dam := balghamProfile(1)
	dam.Dominant = food.HumorDam
	delta, _ = unaniTemperament(dam, hotMoist)
	assert.Equal(t, -4.0, delta)
}

func TestUnaniDigestiveAdjustment(t *testing.T) {
	weak := balghamProfile(1)
	weak.DigestiveStrength = profile.DigestionWeak

	taxing := unaniFood(food.UnaniAttributes{Digestibility: 4})
	delta, _ := unaniDigestive(weak, taxing)
	assert.Equal(t, -3.0, delta)

	flatulent := unaniFood(food.UnaniAttributes{Digestibility: 3, Flatulence: food.FlatulenceHigh})
	delta, _ = unaniDigestive(weak, flatulent)
	assert.Equal(t, -3.0, delta)

	light := unaniFood(food.UnaniAttributes{Digestibility: 2})
	delta, _ = unaniDigestive(weak, light)
	assert.Equal(t, 2.0, delta)

	slow := balghamProfile(1)
	slow.DigestiveStrength = profile.DigestionSlow
	delta, _ = unaniDigestive(slow, light)
	assert.Equal(t, 2.0, delta)

	strong := balghamProfile(1)
	strong.DigestiveStrength = profile.DigestionStrong
	delta, _ = unaniDigestive(strong, taxing)
	assert.Zero(t, delta)
}

func TestUnaniEndToEndScore(t *testing.T) {
	engine := scoring.NewEngine(Unani())

	prof := balghamProfile(2)
	prof.DigestiveStrength = profile.DigestionSlow

	// Ginger-like food: hot, dry, pacifies balgham, easily digested.
	f := unaniFood(food.UnaniAttributes{
		HotLevel:      3,
		DryLevel:      2,
		HumorEffects:  map[food.Humor]int{food.HumorBalgham: -1},
		Digestibility: 1,
	})

	scored, err := engine.Score(prof, f)
	require.NoError(t, err)

	// 8 humor + 4 temperament + 2 digestive.
	assert.Equal(t, 14.0, scored.Score)
	assert.GreaterOrEqual(t, scored.Score, 12.0)
}

func TestUnaniScoreableRequiresBlock(t *testing.T) {
	rules := Unani()

	noBlock := food.Food{ID: uuid.New(), Name: "mystery", Category: food.CategoryGrain}
	assert.ErrorIs(t, rules.Scoreable(noBlock), scoring.ErrMissingAttributes)

	invalid := food.Food{
		ID: uuid.New(), Name: "broken", Category: food.CategoryGrain,
		Unani: &food.UnaniAttributes{Digestibility: 9, Flatulence: food.FlatulenceLow},
	}
	assert.Error(t, rules.Scoreable(invalid))
}

func TestUnaniProteinPreference(t *testing.T) {
	// Cold humors lean on meat's heat; hot humors avoid it.
	balgham := balghamProfile(1)
	assert.Equal(t, food.CategoryMeat, unaniProteins(balgham)[0])

	dam := balghamProfile(1)
	dam.Dominant = food.HumorDam
	assert.NotContains(t, unaniProteins(dam), food.CategoryMeat)

	safra := balghamProfile(1)
	safra.Dominant = food.HumorSafra
	assert.NotContains(t, unaniProteins(safra), food.CategoryMeat)
}
