package nutrition

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/equilibra/v1/internal/domain/food"
	"github.com/equilibra/v1/internal/ports/inbound"
	"github.com/equilibra/v1/internal/ports/outbound"
	"github.com/equilibra/v1/pkg/errors"
)

// CatalogService exposes the food catalog read side.
type CatalogService struct {
	foodRepo outbound.FoodRepository
	logger   *zap.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(foodRepo outbound.FoodRepository, logger *zap.Logger) inbound.CatalogService {
	return &CatalogService{
		foodRepo: foodRepo,
		logger:   logger.Named("catalog-service"),
	}
}

// ListFoods returns the full catalog in load order.
func (s *CatalogService) ListFoods(ctx context.Context) ([]food.Food, error) {
	foods, err := s.foodRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("list foods", err)
	}
	return foods, nil
}

// GetFood returns a single catalog entry by id.
func (s *CatalogService) GetFood(ctx context.Context, id uuid.UUID) (*food.Food, error) {
	f, err := s.foodRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.NewDatabaseError("get food", err)
	}
	if f == nil {
		return nil, errors.NewFoodNotFoundError(id.String())
	}
	return f, nil
}
