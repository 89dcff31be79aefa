package profile

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/equilibra/v1/internal/domain/food"
)

func validAyurveda() AyurvedaProfile {
	return AyurvedaProfile{
		UserID:   uuid.New(),
		Dominant: food.DoshaVata,
		Severity: 2,
		Agni:     AgniVariable,
	}
}

func TestAyurvedaProfileValidate(t *testing.T) {
	assert.NoError(t, validAyurveda().Validate())

	p := validAyurveda()
	p.Dominant = "ether"
	assert.ErrorIs(t, p.Validate(), ErrInvalidDominant)

	p = validAyurveda()
	bad := food.Dosha("ether")
	p.Secondary = &bad
	assert.ErrorIs(t, p.Validate(), ErrInvalidSecondary)

	p = validAyurveda()
	same := food.DoshaVata
	p.Secondary = &same
	assert.ErrorIs(t, p.Validate(), ErrSecondaryEqualsDominant)

	p = validAyurveda()
	p.Severity = 0
	assert.ErrorIs(t, p.Validate(), ErrInvalidSeverity)
	p.Severity = 4
	assert.ErrorIs(t, p.Validate(), ErrInvalidSeverity)

	p = validAyurveda()
	p.Agni = "roaring"
	assert.ErrorIs(t, p.Validate(), ErrInvalidAgni)
}

func TestSecondaryElevatedThreshold(t *testing.T) {
	pitta := food.DoshaPitta
	p := validAyurveda()
	p.Secondary = &pitta

	p.SecondaryElevation = 0.40
	assert.False(t, p.SecondaryElevated(), "threshold itself does not qualify")

	p.SecondaryElevation = 0.41
	assert.True(t, p.SecondaryElevated())

	p.Secondary = nil
	p.SecondaryElevation = 0.9
	assert.False(t, p.SecondaryElevated())
}

func TestUnaniProfileValidate(t *testing.T) {
	valid := UnaniProfile{
		UserID:            uuid.New(),
		Dominant:          food.HumorSafra,
		Severity:          1,
		DigestiveStrength: DigestionStrong,
	}
	assert.NoError(t, valid.Validate())

	p := valid
	p.Dominant = "phlegmish"
	assert.ErrorIs(t, p.Validate(), ErrInvalidDominant)

	p = valid
	p.DigestiveStrength = "iron"
	assert.ErrorIs(t, p.Validate(), ErrInvalidDigestiveStrength)

	p = valid
	p.Severity = 5
	assert.ErrorIs(t, p.Validate(), ErrInvalidSeverity)
}

func TestTCMProfileValidate(t *testing.T) {
	valid := TCMProfile{
		UserID:   uuid.New(),
		Primary:  PatternDampness,
		Severity: 3,
		Tendency: TendencyNeutral,
	}
	assert.NoError(t, valid.Validate())

	p := valid
	p.Primary = "wind"
	assert.ErrorIs(t, p.Validate(), ErrInvalidDominant)

	p = valid
	same := PatternDampness
	p.Secondary = &same
	assert.ErrorIs(t, p.Validate(), ErrSecondaryEqualsDominant)

	p = valid
	p.Tendency = "lukewarm"
	assert.ErrorIs(t, p.Validate(), ErrInvalidTendency)
}

func TestClinicalProfileValidate(t *testing.T) {
	valid := ClinicalProfile{UserID: uuid.New(), Severity: 1}
	assert.NoError(t, valid.Validate())

	p := valid
	p.Goals = []Goal{"immortality"}
	assert.ErrorIs(t, p.Validate(), ErrInvalidGoal)

	p = valid
	p.RiskFlags = []RiskFlag{"gout"}
	assert.ErrorIs(t, p.Validate(), ErrInvalidRiskFlag)

	p = valid
	p.Intolerances = []Intolerance{"nightshades"}
	assert.ErrorIs(t, p.Validate(), ErrInvalidIntolerance)

	p = valid
	p.DailyCalorieTarget = -100
	assert.ErrorIs(t, p.Validate(), ErrInvalidCalorieTarget)
}

func TestClinicalProfileCalories(t *testing.T) {
	p := ClinicalProfile{Severity: 1}
	assert.Equal(t, DefaultDailyCalories, p.Calories())

	p.DailyCalorieTarget = 1650
	assert.Equal(t, 1650, p.Calories())
}

func TestClinicalProfileLookups(t *testing.T) {
	p := ClinicalProfile{
		Goals:        []Goal{GoalGutHealth},
		RiskFlags:    []RiskFlag{RiskKidneyDisease},
		Intolerances: []Intolerance{IntoleranceIBS},
	}
	assert.True(t, p.HasGoal(GoalGutHealth))
	assert.False(t, p.HasGoal(GoalWeightGain))
	assert.True(t, p.HasRisk(RiskKidneyDisease))
	assert.False(t, p.HasRisk(RiskDiabetes))
	assert.True(t, p.HasIntolerance(IntoleranceIBS))
	assert.False(t, p.HasIntolerance(IntoleranceGluten))
}

func TestCorrectiveTemperament(t *testing.T) {
	assert.Equal(t, Temperament{NeedsCold: true, NeedsDry: true}, CorrectiveTemperament(food.HumorDam))
	assert.Equal(t, Temperament{NeedsCold: true, NeedsMoist: true}, CorrectiveTemperament(food.HumorSafra))
	assert.Equal(t, Temperament{NeedsHot: true, NeedsDry: true}, CorrectiveTemperament(food.HumorBalgham))
	assert.Equal(t, Temperament{NeedsHot: true, NeedsMoist: true}, CorrectiveTemperament(food.HumorSauda))
}

func TestFrameworkValid(t *testing.T) {
	for _, fw := range []Framework{FrameworkAyurveda, FrameworkUnani, FrameworkTCM, FrameworkClinical} {
		assert.True(t, fw.Valid())
	}
	assert.False(t, Framework("homeopathy").Valid())
}
