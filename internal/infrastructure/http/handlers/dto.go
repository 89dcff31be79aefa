package handlers

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/equilibra/v1/internal/domain/food"
	"github.com/equilibra/v1/internal/domain/profile"
	"github.com/equilibra/v1/internal/ports/inbound"
)

// RecommendationRequest is the request body for both recommendation
// and plan endpoints.
type RecommendationRequest struct {
	Profile     ProfileRequest     `json:"profile" validate:"required"`
	Preferences PreferencesRequest `json:"preferences"`
}

// ProfileRequest is the discriminated union of the four framework
// profiles. Exactly the block matching the framework field is read.
type ProfileRequest struct {
	Framework string `json:"framework" validate:"required,oneof=ayurveda unani tcm clinical"`

	Ayurveda *AyurvedaProfileRequest `json:"ayurveda,omitempty"`
	Unani    *UnaniProfileRequest    `json:"unani,omitempty"`
	TCM      *TCMProfileRequest      `json:"tcm,omitempty"`
	Clinical *ClinicalProfileRequest `json:"clinical,omitempty"`
}

// AyurvedaProfileRequest carries the dosha assessment snapshot.
type AyurvedaProfileRequest struct {
	UserID             string  `json:"user_id" validate:"required,uuid"`
	Dominant           string  `json:"dominant" validate:"required,oneof=vata pitta kapha"`
	Secondary          *string `json:"secondary,omitempty"`
	SecondaryElevation float64 `json:"secondary_elevation" validate:"gte=0,lte=1"`
	Severity           int     `json:"severity" validate:"required,min=1,max=3"`
	Agni               string  `json:"agni" validate:"required,oneof=sharp variable mild weak"`
	Season             string  `json:"season" validate:"omitempty,oneof=spring summer autumn winter"`
}

// UnaniProfileRequest carries the temperament assessment snapshot.
type UnaniProfileRequest struct {
	UserID            string  `json:"user_id" validate:"required,uuid"`
	Dominant          string  `json:"dominant" validate:"required,oneof=dam safra balgham sauda"`
	Secondary         *string `json:"secondary,omitempty"`
	Severity          int     `json:"severity" validate:"required,min=1,max=3"`
	DigestiveStrength string  `json:"digestive_strength" validate:"required,oneof=weak slow moderate strong"`
}

// TCMProfileRequest carries the pattern assessment snapshot.
type TCMProfileRequest struct {
	UserID    string  `json:"user_id" validate:"required,uuid"`
	Primary   string  `json:"primary" validate:"required"`
	Secondary *string `json:"secondary,omitempty"`
	Severity  int     `json:"severity" validate:"required,min=1,max=3"`
	Tendency  string  `json:"tendency" validate:"required,oneof=cold heat neutral"`
}

// ClinicalProfileRequest carries the evidence-based assessment snapshot.
type ClinicalProfileRequest struct {
	UserID             string   `json:"user_id" validate:"required,uuid"`
	Goals              []string `json:"goals"`
	RiskFlags          []string `json:"risk_flags"`
	Intolerances       []string `json:"intolerances"`
	Severity           int      `json:"severity" validate:"required,min=1,max=3"`
	StressLevel        string   `json:"stress_level" validate:"omitempty,oneof=low moderate high"`
	Sleep              string   `json:"sleep" validate:"omitempty,oneof=poor fair good"`
	DailyCalorieTarget int      `json:"daily_calorie_target" validate:"gte=0"`
}

// PreferencesRequest carries the caller's catalog filters.
type PreferencesRequest struct {
	Limit              int      `json:"limit" validate:"gte=0,lte=500"`
	MinScore           *float64 `json:"min_score,omitempty"`
	Category           string   `json:"category,omitempty"`
	ExcludeIngredients []string `json:"exclude_ingredients,omitempty"`
	VegetarianOnly     bool     `json:"vegetarian_only"`
	ExcludeAllergens   []string `json:"exclude_allergens,omitempty"`
}

// CreateOverrideRequest is the request body for override creation.
type CreateOverrideRequest struct {
	UserID   string   `json:"user_id" validate:"required,uuid"`
	ItemID   string   `json:"item_id" validate:"required,uuid"`
	Action   string   `json:"action" validate:"required,oneof=approve reject"`
	Reason   string   `json:"reason" validate:"required"`
	NewScore *float64 `json:"new_score,omitempty"`
}

// ToDomain converts the profile request to its domain profile.
func (r ProfileRequest) ToDomain() (profile.Profile, error) {
	switch profile.Framework(r.Framework) {
	case profile.FrameworkAyurveda:
		if r.Ayurveda == nil {
			return nil, fmt.Errorf("ayurveda profile block is required")
		}
		return r.Ayurveda.toDomain()
	case profile.FrameworkUnani:
		if r.Unani == nil {
			return nil, fmt.Errorf("unani profile block is required")
		}
		return r.Unani.toDomain()
	case profile.FrameworkTCM:
		if r.TCM == nil {
			return nil, fmt.Errorf("tcm profile block is required")
		}
		return r.TCM.toDomain()
	case profile.FrameworkClinical:
		if r.Clinical == nil {
			return nil, fmt.Errorf("clinical profile block is required")
		}
		return r.Clinical.toDomain()
	default:
		return nil, fmt.Errorf("unknown framework %q", r.Framework)
	}
}

func (r AyurvedaProfileRequest) toDomain() (profile.Profile, error) {
	userID, err := uuid.Parse(r.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user_id: %w", err)
	}
	p := profile.AyurvedaProfile{
		UserID:             userID,
		Dominant:           food.Dosha(r.Dominant),
		SecondaryElevation: r.SecondaryElevation,
		Severity:           r.Severity,
		Agni:               profile.AgniType(r.Agni),
		Season:             food.Season(r.Season),
	}
	if r.Secondary != nil {
		secondary := food.Dosha(*r.Secondary)
		p.Secondary = &secondary
	}
	return p, nil
}

func (r UnaniProfileRequest) toDomain() (profile.Profile, error) {
	userID, err := uuid.Parse(r.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user_id: %w", err)
	}
	p := profile.UnaniProfile{
		UserID:            userID,
		Dominant:          food.Humor(r.Dominant),
		Severity:          r.Severity,
		DigestiveStrength: profile.DigestiveStrength(r.DigestiveStrength),
	}
	if r.Secondary != nil {
		secondary := food.Humor(*r.Secondary)
		p.Secondary = &secondary
	}
	return p, nil
}

func (r TCMProfileRequest) toDomain() (profile.Profile, error) {
	userID, err := uuid.Parse(r.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user_id: %w", err)
	}
	p := profile.TCMProfile{
		UserID:   userID,
		Primary:  profile.Pattern(r.Primary),
		Severity: r.Severity,
		Tendency: profile.ThermalTendency(r.Tendency),
	}
	if r.Secondary != nil {
		secondary := profile.Pattern(*r.Secondary)
		p.Secondary = &secondary
	}
	return p, nil
}

func (r ClinicalProfileRequest) toDomain() (profile.Profile, error) {
	userID, err := uuid.Parse(r.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user_id: %w", err)
	}
	p := profile.ClinicalProfile{
		UserID:             userID,
		Severity:           r.Severity,
		StressLevel:        profile.LoadLevel(r.StressLevel),
		Sleep:              profile.SleepQuality(r.Sleep),
		DailyCalorieTarget: r.DailyCalorieTarget,
	}
	for _, g := range r.Goals {
		p.Goals = append(p.Goals, profile.Goal(g))
	}
	for _, f := range r.RiskFlags {
		p.RiskFlags = append(p.RiskFlags, profile.RiskFlag(f))
	}
	for _, i := range r.Intolerances {
		p.Intolerances = append(p.Intolerances, profile.Intolerance(i))
	}
	return p, nil
}

// ToPreferences converts the preference request to the inbound type.
func (r PreferencesRequest) ToPreferences() inbound.Preferences {
	return inbound.Preferences{
		Limit:              r.Limit,
		MinScore:           r.MinScore,
		Category:           food.Category(r.Category),
		ExcludeIngredients: r.ExcludeIngredients,
		VegetarianOnly:     r.VegetarianOnly,
		ExcludeAllergens:   r.ExcludeAllergens,
	}
}
