package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/equilibra/v1/internal/domain/recommendation"
	"github.com/equilibra/v1/internal/ports/outbound"
)

type overrideKey struct {
	userID uuid.UUID
	itemID uuid.UUID
}

// OverrideRepository stores practitioner overrides in memory. A later
// override for the same user and item replaces the earlier one.
type OverrideRepository struct {
	overrides map[overrideKey]recommendation.Override
	mutex     sync.RWMutex
}

// NewOverrideRepository creates a new in-memory override repository.
func NewOverrideRepository() outbound.OverrideRepository {
	return &OverrideRepository{
		overrides: make(map[overrideKey]recommendation.Override),
	}
}

// Create stores an override.
func (r *OverrideRepository) Create(ctx context.Context, override *recommendation.Override) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.overrides[overrideKey{override.UserID, override.ItemID}] = *override
	return nil
}

// FindByUserAndItem returns nil, nil when no override exists.
func (r *OverrideRepository) FindByUserAndItem(ctx context.Context, userID, itemID uuid.UUID) (*recommendation.Override, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	override, ok := r.overrides[overrideKey{userID, itemID}]
	if !ok {
		return nil, nil
	}
	return &override, nil
}
