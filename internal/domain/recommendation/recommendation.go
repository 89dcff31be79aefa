// Package recommendation contains the outward-facing recommendation
// shape and the practitioner override rules applied on top of it.
package recommendation

import (
	"github.com/google/uuid"

	"github.com/equilibra/v1/internal/domain/scoring"
)

// Recommendation is one scored food as presented to callers. Score is
// the engine's result and never changes; FinalScore starts equal to it
// and is the only field an override may replace.
type Recommendation struct {
	FoodID     uuid.UUID          `json:"food_id"`
	FoodName   string             `json:"food_name"`
	Category   string             `json:"category"`
	Score      float64            `json:"score"`
	FinalScore float64            `json:"final_score"`
	Tier       scoring.Tier       `json:"tier"`
	Breakdown  map[string]float64 `json:"breakdown"`
	Reasons    []string           `json:"reasons"`
	Overridden bool               `json:"overridden"`
}

// FromScored converts a scored food into a recommendation.
func FromScored(s scoring.ScoredFood, tier scoring.Tier) Recommendation {
	return Recommendation{
		FoodID:     s.Food.ID,
		FoodName:   s.Food.Name,
		Category:   string(s.Food.Category),
		Score:      s.Score,
		FinalScore: s.Score,
		Tier:       tier,
		Breakdown:  s.Breakdown,
		Reasons:    s.Reasons,
	}
}
