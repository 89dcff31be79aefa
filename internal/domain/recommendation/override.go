package recommendation

import (
	"time"

	"github.com/google/uuid"
)

// OverrideAction is the practitioner's decision on a recommendation.
type OverrideAction string

const (
	OverrideApprove OverrideAction = "approve"
	OverrideReject  OverrideAction = "reject"
)

// Valid reports whether the action is part of the enumeration.
func (a OverrideAction) Valid() bool {
	return a == OverrideApprove || a == OverrideReject
}

// Override is a practitioner's manual adjustment of a recommendation,
// kept as an audit record alongside the engine's original score.
type Override struct {
	ID             uuid.UUID      `json:"id"`
	UserID         uuid.UUID      `json:"user_id"`
	ItemID         uuid.UUID      `json:"item_id"`
	PractitionerID uuid.UUID      `json:"practitioner_id"`
	Action         OverrideAction `json:"action"`
	Reason         string         `json:"reason"`
	NewScore       *float64       `json:"new_score,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}

// NewOverride creates a validated override record.
func NewOverride(userID, itemID, practitionerID uuid.UUID, action OverrideAction, reason string, newScore *float64) (*Override, error) {
	if userID == uuid.Nil || itemID == uuid.Nil {
		return nil, ErrOverrideMissingTarget
	}
	if !action.Valid() {
		return nil, ErrInvalidOverrideAction
	}
	if reason == "" {
		return nil, ErrOverrideReasonRequired
	}
	return &Override{
		ID:             uuid.New(),
		UserID:         userID,
		ItemID:         itemID,
		PractitionerID: practitionerID,
		Action:         action,
		Reason:         reason,
		NewScore:       newScore,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

// ApplyOverride returns a new recommendation with the override applied.
// The input recommendation is never mutated: the engine's score stays
// inspectable for audit, and the reasons slice is copied before the
// override reason is appended.
func ApplyOverride(rec Recommendation, o Override) Recommendation {
	out := rec
	out.Overridden = true

	out.Reasons = make([]string, len(rec.Reasons), len(rec.Reasons)+1)
	copy(out.Reasons, rec.Reasons)
	out.Reasons = append(out.Reasons, "practitioner override: "+o.Reason)

	if o.NewScore != nil {
		out.FinalScore = *o.NewScore
	}
	return out
}
