package gorm

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/equilibra/v1/internal/domain/food"
	"github.com/equilibra/v1/internal/ports/outbound"
)

// FoodRepository implements the food repository using GORM
type FoodRepository struct {
	db *gorm.DB
}

// NewFoodRepository creates a new GORM food repository
func NewFoodRepository(db *gorm.DB) outbound.FoodRepository {
	return &FoodRepository{db: db}
}

// FindAll returns the catalog ordered by name for a stable scan order.
func (r *FoodRepository) FindAll(ctx context.Context) ([]food.Food, error) {
	var models []FoodModel
	if err := r.db.WithContext(ctx).Order("name asc").Find(&models).Error; err != nil {
		return nil, err
	}

	foods := make([]food.Food, 0, len(models))
	for i := range models {
		f, err := ModelToFood(&models[i])
		if err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}
	return foods, nil
}

// FindByID returns nil, nil when the id is unknown.
func (r *FoodRepository) FindByID(ctx context.Context, id uuid.UUID) (*food.Food, error) {
	var model FoodModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	f, err := ModelToFood(&model)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Count returns the catalog size.
func (r *FoodRepository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&FoodModel{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}
