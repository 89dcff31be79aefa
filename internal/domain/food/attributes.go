package food

// Framework attribute blocks. Each block validates its own structure;
// a block that fails validation makes the food unscoreable for that
// framework only.

// Dosha identifies one of the three ayurvedic constitutions.
type Dosha string

const (
	DoshaVata  Dosha = "vata"
	DoshaPitta Dosha = "pitta"
	DoshaKapha Dosha = "kapha"
)

// Valid reports whether the dosha is part of the enumeration.
func (d Dosha) Valid() bool {
	return d == DoshaVata || d == DoshaPitta || d == DoshaKapha
}

// DoshaEffect describes how a food acts on a dosha.
type DoshaEffect string

const (
	EffectIncrease DoshaEffect = "increase"
	EffectDecrease DoshaEffect = "decrease"
	EffectNeutral  DoshaEffect = "neutral"
)

// Valid reports whether the effect is part of the enumeration.
func (e DoshaEffect) Valid() bool {
	return e == EffectIncrease || e == EffectDecrease || e == EffectNeutral
}

// Taste is a rasa tag.
type Taste string

const (
	TasteSweet      Taste = "sweet"
	TasteSour       Taste = "sour"
	TasteSalty      Taste = "salty"
	TastePungent    Taste = "pungent"
	TasteBitter     Taste = "bitter"
	TasteAstringent Taste = "astringent"
)

// Valid reports whether the taste is part of the enumeration.
func (t Taste) Valid() bool {
	switch t {
	case TasteSweet, TasteSour, TasteSalty, TastePungent, TasteBitter, TasteAstringent:
		return true
	}
	return false
}

// Quality is a guna tag describing the felt quality of a food.
type Quality string

const (
	QualityLight Quality = "light"
	QualityHeavy Quality = "heavy"
	QualityOily  Quality = "oily"
	QualityDry   Quality = "dry"
	QualityHot   Quality = "hot"
	QualityCold  Quality = "cold"
)

// Virya is the heating or cooling potency of a food.
type Virya string

const (
	ViryaHot  Virya = "hot"
	ViryaCold Virya = "cold"
)

// Season used for seasonal-fit scoring.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// AyurvedaAttributes is the dosha-framework block.
type AyurvedaAttributes struct {
	Rasa         []Taste
	Guna         []Quality
	Virya        Virya
	Vipaka       Taste
	DoshaEffects map[Dosha]DoshaEffect
	Seasons      []Season
}

// Validate checks the block's structural invariants.
func (a AyurvedaAttributes) Validate() error {
	if a.Virya != ViryaHot && a.Virya != ViryaCold {
		return ErrInvalidVirya
	}
	if len(a.DoshaEffects) == 0 {
		return ErrMissingDoshaEffects
	}
	for dosha, effect := range a.DoshaEffects {
		if !dosha.Valid() {
			return ErrInvalidDosha
		}
		if !effect.Valid() {
			return ErrInvalidDoshaEffect
		}
	}
	for _, t := range a.Rasa {
		if !t.Valid() {
			return ErrInvalidTaste
		}
	}
	return nil
}

// EffectOn returns the food's effect on a dosha, defaulting to neutral
// when the map has no entry.
func (a AyurvedaAttributes) EffectOn(d Dosha) DoshaEffect {
	if e, ok := a.DoshaEffects[d]; ok {
		return e
	}
	return EffectNeutral
}

// HasGuna reports whether the block carries the given quality tag.
func (a AyurvedaAttributes) HasGuna(q Quality) bool {
	for _, g := range a.Guna {
		if g == q {
			return true
		}
	}
	return false
}

// HasRasa reports whether the block carries the given taste tag.
func (a AyurvedaAttributes) HasRasa(t Taste) bool {
	for _, r := range a.Rasa {
		if r == t {
			return true
		}
	}
	return false
}

// InSeason reports whether the food is tagged for the given season.
func (a AyurvedaAttributes) InSeason(s Season) bool {
	for _, season := range a.Seasons {
		if season == s {
			return true
		}
	}
	return false
}

// Humor identifies one of the four unani humors.
type Humor string

const (
	HumorDam     Humor = "dam"     // blood: hot + moist
	HumorSafra   Humor = "safra"   // yellow bile: hot + dry
	HumorBalgham Humor = "balgham" // phlegm: cold + moist
	HumorSauda   Humor = "sauda"   // black bile: cold + dry
)

// Valid reports whether the humor is part of the enumeration.
func (h Humor) Valid() bool {
	return h == HumorDam || h == HumorSafra || h == HumorBalgham || h == HumorSauda
}

// FlatulenceLevel grades a food's flatulence potential.
type FlatulenceLevel string

const (
	FlatulenceLow    FlatulenceLevel = "low"
	FlatulenceMedium FlatulenceLevel = "medium"
	FlatulenceHigh   FlatulenceLevel = "high"
)

// UnaniAttributes is the temperament-framework block.
type UnaniAttributes struct {
	// Graded temperament levels, 0-4.
	HotLevel   int
	ColdLevel  int
	DryLevel   int
	MoistLevel int

	// Per-humor effect: -1 pacifies, 0 neutral, +1 aggravates.
	HumorEffects map[Humor]int

	Digestibility int // 1-5, 5 hardest
	Flatulence    FlatulenceLevel
}

// Validate checks the block's structural invariants.
func (u UnaniAttributes) Validate() error {
	for _, level := range []int{u.HotLevel, u.ColdLevel, u.DryLevel, u.MoistLevel} {
		if level < 0 || level > 4 {
			return ErrInvalidTemperamentLevel
		}
	}
	if u.Digestibility < 1 || u.Digestibility > 5 {
		return ErrInvalidDigestibility
	}
	switch u.Flatulence {
	case FlatulenceLow, FlatulenceMedium, FlatulenceHigh:
	default:
		return ErrInvalidFlatulence
	}
	for humor, effect := range u.HumorEffects {
		if !humor.Valid() {
			return ErrInvalidHumor
		}
		if effect < -1 || effect > 1 {
			return ErrInvalidHumorEffect
		}
	}
	return nil
}

// EffectOn returns the food's effect on a humor, defaulting to 0.
func (u UnaniAttributes) EffectOn(h Humor) int {
	return u.HumorEffects[h]
}

// ThermalNature is the TCM thermal classification of a food.
type ThermalNature string

const (
	ThermalHot     ThermalNature = "hot"
	ThermalWarm    ThermalNature = "warm"
	ThermalNeutral ThermalNature = "neutral"
	ThermalCool    ThermalNature = "cool"
	ThermalCold    ThermalNature = "cold"
)

// Valid reports whether the thermal nature is part of the enumeration.
func (t ThermalNature) Valid() bool {
	switch t {
	case ThermalHot, ThermalWarm, ThermalNeutral, ThermalCool, ThermalCold:
		return true
	}
	return false
}

// Warming reports whether the nature adds heat.
func (t ThermalNature) Warming() bool {
	return t == ThermalHot || t == ThermalWarm
}

// Cooling reports whether the nature clears heat.
func (t ThermalNature) Cooling() bool {
	return t == ThermalCool || t == ThermalCold
}

// TCMAttributes is the pattern-framework block.
type TCMAttributes struct {
	Thermal ThermalNature
	Flavors []Taste

	// Pattern affinity flags.
	TonifiesQi       bool
	NourishesYin     bool
	WarmsYang        bool
	ClearsHeat       bool
	ResolvesDampness bool
	MovesQi          bool
	DampForming      bool
}

// Validate checks the block's structural invariants.
func (t TCMAttributes) Validate() error {
	if !t.Thermal.Valid() {
		return ErrInvalidThermalNature
	}
	for _, f := range t.Flavors {
		if !f.Valid() {
			return ErrInvalidTaste
		}
	}
	return nil
}

// HasFlavor reports whether the block carries the given flavor tag.
func (t TCMAttributes) HasFlavor(f Taste) bool {
	for _, flavor := range t.Flavors {
		if flavor == f {
			return true
		}
	}
	return false
}

// Nutrient tags recognized by the clinical lifestyle component.
const (
	NutrientMagnesium  = "magnesium"
	NutrientBVitamins  = "b-vitamins"
	NutrientTryptophan = "tryptophan"
	NutrientOmega3     = "omega-3"
	NutrientIron       = "iron"
)

// ClinicalAttributes is the evidence-based framework block.
// Quantities are per 100g edible portion.
type ClinicalAttributes struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
	Sugar    float64

	Sodium       float64 // mg
	SaturatedFat float64
	TransFat     float64

	GlycemicIndex float64
	GlycemicLoad  float64

	MicronutrientDensity  float64 // 0-10
	AntiInflammatoryScore float64 // -5..+5

	Caffeinated         bool
	AddedSugar          bool
	Preservatives       bool
	ArtificialAdditives bool

	NutrientTags []string
}

// Validate checks the block's structural invariants.
func (c ClinicalAttributes) Validate() error {
	if c.Calories < 0 || c.Protein < 0 || c.Carbs < 0 || c.Fat < 0 ||
		c.Fiber < 0 || c.Sugar < 0 || c.Sodium < 0 ||
		c.SaturatedFat < 0 || c.TransFat < 0 {
		return ErrNegativeNutrient
	}
	if c.GlycemicIndex < 0 || c.GlycemicIndex > 110 {
		return ErrInvalidGlycemicIndex
	}
	if c.MicronutrientDensity < 0 || c.MicronutrientDensity > 10 {
		return ErrInvalidMicronutrientDensity
	}
	if c.AntiInflammatoryScore < -5 || c.AntiInflammatoryScore > 5 {
		return ErrInvalidAntiInflammatoryScore
	}
	return nil
}

// HasNutrientTag reports whether the block carries the given tag.
func (c ClinicalAttributes) HasNutrientTag(tag string) bool {
	for _, t := range c.NutrientTags {
		if t == tag {
			return true
		}
	}
	return false
}
