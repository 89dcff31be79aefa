// Package profile contains the per-framework constitutional profiles
// produced upstream by the assessment questionnaires. The engine
// consumes these as immutable, re-validated snapshots.
package profile

import (
	"github.com/google/uuid"

	"github.com/equilibra/v1/internal/domain/food"
)

// Framework identifies one of the four assessment frameworks.
type Framework string

const (
	FrameworkAyurveda Framework = "ayurveda"
	FrameworkUnani    Framework = "unani"
	FrameworkTCM      Framework = "tcm"
	FrameworkClinical Framework = "clinical"
)

// Valid reports whether the framework is part of the enumeration.
func (f Framework) Valid() bool {
	switch f {
	case FrameworkAyurveda, FrameworkUnani, FrameworkTCM, FrameworkClinical:
		return true
	}
	return false
}

// Profile is the common contract of the four framework profiles.
// Implementations are value types; the engine never mutates them.
type Profile interface {
	Framework() Framework
	SeverityGrade() int
	Validate() error
}

// SecondaryElevationThreshold is the elevation share above which a
// non-dominant constitution also receives corrective weight.
const SecondaryElevationThreshold = 0.40

// AgniType grades ayurvedic digestive fire.
type AgniType string

const (
	AgniSharp    AgniType = "sharp"
	AgniVariable AgniType = "variable"
	AgniMild     AgniType = "mild"
	AgniWeak     AgniType = "weak"
)

// Valid reports whether the agni type is part of the enumeration.
func (a AgniType) Valid() bool {
	return a == AgniSharp || a == AgniVariable || a == AgniMild || a == AgniWeak
}

// AyurvedaProfile is the dosha-framework snapshot.
type AyurvedaProfile struct {
	UserID              uuid.UUID
	Dominant            food.Dosha
	Secondary           *food.Dosha
	SecondaryElevation  float64 // 0-1 share of the secondary dosha
	Severity            int     // 1-3
	Agni                AgniType
	Season              food.Season
}

// Framework implements Profile.
func (p AyurvedaProfile) Framework() Framework { return FrameworkAyurveda }

// SeverityGrade implements Profile.
func (p AyurvedaProfile) SeverityGrade() int { return p.Severity }

// Validate implements Profile.
func (p AyurvedaProfile) Validate() error {
	if !p.Dominant.Valid() {
		return ErrInvalidDominant
	}
	if p.Secondary != nil {
		if !p.Secondary.Valid() {
			return ErrInvalidSecondary
		}
		if *p.Secondary == p.Dominant {
			return ErrSecondaryEqualsDominant
		}
	}
	if err := validateSeverity(p.Severity); err != nil {
		return err
	}
	if !p.Agni.Valid() {
		return ErrInvalidAgni
	}
	return nil
}

// SecondaryElevated reports whether the secondary dosha crosses the
// elevation threshold and earns its own adjustment.
func (p AyurvedaProfile) SecondaryElevated() bool {
	return p.Secondary != nil && p.SecondaryElevation > SecondaryElevationThreshold
}

// DigestiveStrength grades unani digestive capacity.
type DigestiveStrength string

const (
	DigestionWeak     DigestiveStrength = "weak"
	DigestionSlow     DigestiveStrength = "slow"
	DigestionModerate DigestiveStrength = "moderate"
	DigestionStrong   DigestiveStrength = "strong"
)

// Valid reports whether the digestive strength is part of the enumeration.
func (d DigestiveStrength) Valid() bool {
	return d == DigestionWeak || d == DigestionSlow || d == DigestionModerate || d == DigestionStrong
}

// UnaniProfile is the temperament-framework snapshot.
type UnaniProfile struct {
	UserID            uuid.UUID
	Dominant          food.Humor
	Secondary         *food.Humor
	Severity          int // 1-3
	DigestiveStrength DigestiveStrength
}

// Framework implements Profile.
func (p UnaniProfile) Framework() Framework { return FrameworkUnani }

// SeverityGrade implements Profile.
func (p UnaniProfile) SeverityGrade() int { return p.Severity }

// Validate implements Profile.
func (p UnaniProfile) Validate() error {
	if !p.Dominant.Valid() {
		return ErrInvalidDominant
	}
	if p.Secondary != nil && !p.Secondary.Valid() {
		return ErrInvalidSecondary
	}
	if err := validateSeverity(p.Severity); err != nil {
		return err
	}
	if !p.DigestiveStrength.Valid() {
		return ErrInvalidDigestiveStrength
	}
	return nil
}

// Temperament is the fixed hot/cold x dry/moist target of a humor.
// Each humor is corrected by its opposing qualities.
type Temperament struct {
	NeedsHot   bool
	NeedsCold  bool
	NeedsDry   bool
	NeedsMoist bool
}

// CorrectiveTemperament returns the qualities that counteract the
// given dominant humor. Balgham (cold+moist) needs hot+dry food,
// safra (hot+dry) needs cold+moist, dam (hot+moist) needs cold+dry,
// sauda (cold+dry) needs hot+moist.
func CorrectiveTemperament(h food.Humor) Temperament {
	switch h {
	case food.HumorDam:
		return Temperament{NeedsCold: true, NeedsDry: true}
	case food.HumorSafra:
		return Temperament{NeedsCold: true, NeedsMoist: true}
	case food.HumorBalgham:
		return Temperament{NeedsHot: true, NeedsDry: true}
	default: // sauda
		return Temperament{NeedsHot: true, NeedsMoist: true}
	}
}

// Pattern identifies a TCM diagnostic pattern.
type Pattern string

const (
	PatternQiDeficiency   Pattern = "qi_deficiency"
	PatternYinDeficiency  Pattern = "yin_deficiency"
	PatternYangDeficiency Pattern = "yang_deficiency"
	PatternHeat           Pattern = "heat"
	PatternDampness       Pattern = "dampness"
	PatternQiStagnation   Pattern = "qi_stagnation"
)

// Valid reports whether the pattern is part of the enumeration.
func (p Pattern) Valid() bool {
	switch p {
	case PatternQiDeficiency, PatternYinDeficiency, PatternYangDeficiency,
		PatternHeat, PatternDampness, PatternQiStagnation:
		return true
	}
	return false
}

// ThermalTendency is the user's overall cold/heat leaning.
type ThermalTendency string

const (
	TendencyCold    ThermalTendency = "cold"
	TendencyHeat    ThermalTendency = "heat"
	TendencyNeutral ThermalTendency = "neutral"
)

// Valid reports whether the tendency is part of the enumeration.
func (t ThermalTendency) Valid() bool {
	return t == TendencyCold || t == TendencyHeat || t == TendencyNeutral
}

// TCMProfile is the pattern-framework snapshot.
type TCMProfile struct {
	UserID    uuid.UUID
	Primary   Pattern
	Secondary *Pattern
	Severity  int // 1-3
	Tendency  ThermalTendency
}

// Framework implements Profile.
func (p TCMProfile) Framework() Framework { return FrameworkTCM }

// SeverityGrade implements Profile.
func (p TCMProfile) SeverityGrade() int { return p.Severity }

// Validate implements Profile.
func (p TCMProfile) Validate() error {
	if !p.Primary.Valid() {
		return ErrInvalidDominant
	}
	if p.Secondary != nil {
		if !p.Secondary.Valid() {
			return ErrInvalidSecondary
		}
		if *p.Secondary == p.Primary {
			return ErrSecondaryEqualsDominant
		}
	}
	if err := validateSeverity(p.Severity); err != nil {
		return err
	}
	if !p.Tendency.Valid() {
		return ErrInvalidTendency
	}
	return nil
}

// Goal is a clinical nutrition goal.
type Goal string

const (
	GoalWeightLoss   Goal = "weight_loss"
	GoalWeightGain   Goal = "weight_gain"
	GoalMuscleGain   Goal = "muscle_gain"
	GoalBloodSugar   Goal = "blood_sugar_control"
	GoalHeartHealth  Goal = "heart_health"
	GoalGutHealth    Goal = "gut_health"
)

// Valid reports whether the goal is part of the enumeration.
func (g Goal) Valid() bool {
	switch g {
	case GoalWeightLoss, GoalWeightGain, GoalMuscleGain, GoalBloodSugar,
		GoalHeartHealth, GoalGutHealth:
		return true
	}
	return false
}

// RiskFlag is an active metabolic risk condition.
type RiskFlag string

const (
	RiskDiabetes      RiskFlag = "diabetes"
	RiskHypertension  RiskFlag = "hypertension"
	RiskHeartDisease  RiskFlag = "heart_disease"
	RiskKidneyDisease RiskFlag = "kidney_disease"
)

// Valid reports whether the risk flag is part of the enumeration.
func (r RiskFlag) Valid() bool {
	return r == RiskDiabetes || r == RiskHypertension || r == RiskHeartDisease || r == RiskKidneyDisease
}

// Intolerance is a digestive trigger condition.
type Intolerance string

const (
	IntoleranceReflux  Intolerance = "reflux"
	IntoleranceIBS     Intolerance = "ibs"
	IntoleranceLactose Intolerance = "lactose"
	IntoleranceGluten  Intolerance = "gluten"
)

// Valid reports whether the intolerance is part of the enumeration.
func (i Intolerance) Valid() bool {
	return i == IntoleranceReflux || i == IntoleranceIBS || i == IntoleranceLactose || i == IntoleranceGluten
}

// LoadLevel grades lifestyle load factors.
type LoadLevel string

const (
	LoadLow      LoadLevel = "low"
	LoadModerate LoadLevel = "moderate"
	LoadHigh     LoadLevel = "high"
)

// SleepQuality grades sleep.
type SleepQuality string

const (
	SleepPoor SleepQuality = "poor"
	SleepFair SleepQuality = "fair"
	SleepGood SleepQuality = "good"
)

// ClinicalProfile is the evidence-based framework snapshot.
type ClinicalProfile struct {
	UserID       uuid.UUID
	Goals        []Goal
	RiskFlags    []RiskFlag
	Intolerances []Intolerance
	Severity     int // 1-3
	StressLevel  LoadLevel
	Sleep        SleepQuality

	// DailyCalorieTarget drives the planner's day-part split.
	// Zero falls back to the default target.
	DailyCalorieTarget int
}

// DefaultDailyCalories is used when the profile carries no target.
const DefaultDailyCalories = 2000

// Framework implements Profile.
func (p ClinicalProfile) Framework() Framework { return FrameworkClinical }

// SeverityGrade implements Profile.
func (p ClinicalProfile) SeverityGrade() int { return p.Severity }

// Validate implements Profile.
func (p ClinicalProfile) Validate() error {
	if err := validateSeverity(p.Severity); err != nil {
		return err
	}
	for _, g := range p.Goals {
		if !g.Valid() {
			return ErrInvalidGoal
		}
	}
	for _, r := range p.RiskFlags {
		if !r.Valid() {
			return ErrInvalidRiskFlag
		}
	}
	for _, i := range p.Intolerances {
		if !i.Valid() {
			return ErrInvalidIntolerance
		}
	}
	if p.DailyCalorieTarget < 0 {
		return ErrInvalidCalorieTarget
	}
	return nil
}

// HasGoal reports whether the profile carries the given goal.
func (p ClinicalProfile) HasGoal(g Goal) bool {
	for _, goal := range p.Goals {
		if goal == g {
			return true
		}
	}
	return false
}

// HasRisk reports whether the risk flag is active.
func (p ClinicalProfile) HasRisk(r RiskFlag) bool {
	for _, risk := range p.RiskFlags {
		if risk == r {
			return true
		}
	}
	return false
}

// HasIntolerance reports whether the intolerance is active.
func (p ClinicalProfile) HasIntolerance(i Intolerance) bool {
	for _, in := range p.Intolerances {
		if in == i {
			return true
		}
	}
	return false
}

// Calories returns the profile's daily calorie target.
func (p ClinicalProfile) Calories() int {
	if p.DailyCalorieTarget > 0 {
		return p.DailyCalorieTarget
	}
	return DefaultDailyCalories
}

func validateSeverity(s int) error {
	if s < 1 || s > 3 {
		return ErrInvalidSeverity
	}
	return nil
}
