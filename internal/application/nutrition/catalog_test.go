package nutrition

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCatalogServiceListFoods(t *testing.T) {
	repo := &fakeFoodRepo{foods: testCatalog()}
	svc := NewCatalogService(repo, zap.NewNop())

	foods, err := svc.ListFoods(context.Background())
	require.NoError(t, err)
	assert.Len(t, foods, len(repo.foods))
}

func TestCatalogServiceListFoodsError(t *testing.T) {
	repo := &fakeFoodRepo{err: errors.New("connection refused")}
	svc := NewCatalogService(repo, zap.NewNop())

	_, err := svc.ListFoods(context.Background())
	assert.Error(t, err)
}

func TestCatalogServiceGetFood(t *testing.T) {
	catalog := testCatalog()
	repo := &fakeFoodRepo{foods: catalog}
	svc := NewCatalogService(repo, zap.NewNop())

	found, err := svc.GetFood(context.Background(), catalog[0].ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, catalog[0].Name, found.Name)
}

func TestCatalogServiceGetFoodNotFound(t *testing.T) {
	svc := NewCatalogService(&fakeFoodRepo{}, zap.NewNop())
	_, err := svc.GetFood(context.Background(), uuid.New())
	assert.Error(t, err)
}
