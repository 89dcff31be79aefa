// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the use cases the application exposes to its callers.
package inbound

import (
	"context"

	"github.com/google/uuid"

	"github.com/equilibra/v1/internal/domain/food"
	"github.com/equilibra/v1/internal/domain/planner"
	"github.com/equilibra/v1/internal/domain/profile"
	"github.com/equilibra/v1/internal/domain/reasoning"
	"github.com/equilibra/v1/internal/domain/recommendation"
)

// Preferences are the caller's filters, applied to the tiered catalog
// before planning. Filtering after planning would break the rotation
// and incompatibility invariants.
type Preferences struct {
	Limit              int           `json:"limit"`
	MinScore           *float64      `json:"min_score,omitempty"`
	Category           food.Category `json:"category,omitempty"`
	ExcludeIngredients []string      `json:"exclude_ingredients,omitempty"`
	VegetarianOnly     bool          `json:"vegetarian_only"`
	ExcludeAllergens   []string      `json:"exclude_allergens,omitempty"`
}

// RecommendationQuery asks for scored, tiered food recommendations.
type RecommendationQuery struct {
	Profile     profile.Profile
	Preferences Preferences
}

// RecommendationResult carries the ranked recommendations plus the
// scoring completeness for the framework (share of the catalog that
// was scoreable).
type RecommendationResult struct {
	Framework       profile.Framework               `json:"framework"`
	Recommendations []recommendation.Recommendation `json:"recommendations"`
	Completeness    float64                         `json:"completeness"`
	ExcludedFoods   int                             `json:"excluded_foods"`
}

// PlanResult carries a weekly plan with its reasoning.
type PlanResult struct {
	Framework    profile.Framework   `json:"framework"`
	Plan         planner.WeeklyPlan  `json:"plan"`
	Reasoning    reasoning.Reasoning `json:"reasoning"`
	Completeness float64             `json:"completeness"`
}

// CreateOverrideCommand records a practitioner override.
type CreateOverrideCommand struct {
	UserID         uuid.UUID
	ItemID         uuid.UUID
	PractitionerID uuid.UUID
	Action         recommendation.OverrideAction
	Reason         string
	NewScore       *float64
}

// NutritionService is the engine's primary use-case surface.
type NutritionService interface {
	// Recommend scores and tiers the whole catalog for the profile.
	Recommend(ctx context.Context, query RecommendationQuery) (*RecommendationResult, error)

	// BuildWeeklyPlan assembles a seven-day plan plus reasoning.
	BuildWeeklyPlan(ctx context.Context, query RecommendationQuery) (*PlanResult, error)

	// CreateOverride records a practitioner score override.
	CreateOverride(ctx context.Context, cmd CreateOverrideCommand) (*recommendation.Override, error)

	// GetOverride fetches an override, or nil when none exists.
	GetOverride(ctx context.Context, userID, itemID uuid.UUID) (*recommendation.Override, error)

	// ApplyOverride applies a stored override to a recommendation,
	// returning the adjusted copy.
	ApplyOverride(ctx context.Context, rec recommendation.Recommendation, userID uuid.UUID) (recommendation.Recommendation, error)
}

// CatalogService exposes read-only catalog access.
type CatalogService interface {
	ListFoods(ctx context.Context) ([]food.Food, error)
	GetFood(ctx context.Context, id uuid.UUID) (*food.Food, error)
}
