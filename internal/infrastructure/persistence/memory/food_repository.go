package memory

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/equilibra/v1/internal/domain/food"
	"github.com/equilibra/v1/internal/ports/outbound"
)

// FoodRepository serves the catalog from memory. The catalog is loaded
// once at construction and treated as read-only afterwards.
type FoodRepository struct {
	foods []food.Food
	byID  map[uuid.UUID]int
	mutex sync.RWMutex
}

// NewFoodRepository creates a repository over the given catalog.
func NewFoodRepository(foods []food.Food) outbound.FoodRepository {
	repo := &FoodRepository{
		foods: make([]food.Food, len(foods)),
		byID:  make(map[uuid.UUID]int, len(foods)),
	}
	copy(repo.foods, foods)
	for i, f := range repo.foods {
		repo.byID[f.ID] = i
	}
	return repo
}

// NewSeededFoodRepository creates a repository over the built-in
// reference catalog.
func NewSeededFoodRepository() outbound.FoodRepository {
	return NewFoodRepository(SeedCatalog())
}

// NewFoodRepositoryFromFile loads a JSON catalog file.
func NewFoodRepositoryFromFile(path string) (outbound.FoodRepository, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var foods []food.Food
	if err := json.Unmarshal(raw, &foods); err != nil {
		return nil, err
	}
	return NewFoodRepository(foods), nil
}

// FindAll returns the catalog in load order.
func (r *FoodRepository) FindAll(ctx context.Context) ([]food.Food, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	out := make([]food.Food, len(r.foods))
	copy(out, r.foods)
	return out, nil
}

// FindByID returns nil, nil when the id is unknown.
func (r *FoodRepository) FindByID(ctx context.Context, id uuid.UUID) (*food.Food, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	i, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	f := r.foods[i]
	return &f, nil
}

// Count returns the catalog size.
func (r *FoodRepository) Count(ctx context.Context) (int, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.foods), nil
}
