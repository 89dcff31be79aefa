package gorm

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/equilibra/v1/internal/domain/recommendation"
	"github.com/equilibra/v1/internal/ports/outbound"
)

// OverrideRepository implements the override repository using GORM
type OverrideRepository struct {
	db *gorm.DB
}

// NewOverrideRepository creates a new GORM override repository
func NewOverrideRepository(db *gorm.DB) outbound.OverrideRepository {
	return &OverrideRepository{db: db}
}

// Create stores an override row. Every override is kept for the audit
// trail; reads pick the most recent one.
func (r *OverrideRepository) Create(ctx context.Context, override *recommendation.Override) error {
	return r.db.WithContext(ctx).Create(OverrideToModel(override)).Error
}

// FindByUserAndItem returns the most recent override, or nil, nil when
// none exists.
func (r *OverrideRepository) FindByUserAndItem(ctx context.Context, userID, itemID uuid.UUID) (*recommendation.Override, error) {
	var model OverrideModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Order("created_at desc").
		First(&model).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ModelToOverride(&model), nil
}
