package memory

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/equilibra/v1/internal/domain/food"
	"github.com/equilibra/v1/internal/domain/recommendation"
)

func TestFoodRepositoryFindAll(t *testing.T) {
	foods := []food.Food{
		{ID: uuid.New(), Name: "rice", Category: food.CategoryGrain},
		{ID: uuid.New(), Name: "spinach", Category: food.CategoryVegetable},
	}
	repo := NewFoodRepository(foods)

	got, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, foods, got)

	// Mutating the returned slice must not affect the repository.
	got[0].Name = "changed"
	again, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "rice", again[0].Name)
}

func TestFoodRepositoryFindByID(t *testing.T) {
	target := food.Food{ID: uuid.New(), Name: "rice", Category: food.CategoryGrain}
	repo := NewFoodRepository([]food.Food{target})

	found, err := repo.FindByID(context.Background(), target.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "rice", found.Name)

	missing, err := repo.FindByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFoodRepositoryCount(t *testing.T) {
	repo := NewFoodRepository(nil)
	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestFoodRepositoryFromFile(t *testing.T) {
	foods := []food.Food{{ID: uuid.New(), Name: "rice", Category: food.CategoryGrain}}
	raw, err := json.Marshal(foods)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	repo, err := NewFoodRepositoryFromFile(path)
	require.NoError(t, err)
	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = NewFoodRepositoryFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestSeedCatalogIsValid(t *testing.T) {
	catalog := SeedCatalog()
	require.NotEmpty(t, catalog)

	names := make(map[string]bool, len(catalog))
	for _, f := range catalog {
		require.NoError(t, f.Validate(), f.Name)
		assert.False(t, names[f.Name], "duplicate name %s", f.Name)
		names[f.Name] = true

		if f.Ayurveda != nil {
			assert.NoError(t, f.Ayurveda.Validate(), f.Name)
		}
		if f.Unani != nil {
			assert.NoError(t, f.Unani.Validate(), f.Name)
		}
		if f.TCM != nil {
			assert.NoError(t, f.TCM.Validate(), f.Name)
		}
		if f.Clinical != nil {
			assert.NoError(t, f.Clinical.Validate(), f.Name)
		}
	}
}

func TestOverrideRepositoryLatestWins(t *testing.T) {
	repo := NewOverrideRepository()
	ctx := context.Background()

	userID := uuid.New()
	itemID := uuid.New()

	first, err := recommendation.NewOverride(userID, itemID, uuid.New(), recommendation.OverrideReject, "initial call", nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, first))

	second, err := recommendation.NewOverride(userID, itemID, uuid.New(), recommendation.OverrideApprove, "revised after follow-up", nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, second))

	found, err := repo.FindByUserAndItem(ctx, userID, itemID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, second.ID, found.ID)
	assert.Equal(t, recommendation.OverrideApprove, found.Action)
}

func TestOverrideRepositoryMissingIsNil(t *testing.T) {
	repo := NewOverrideRepository()
	found, err := repo.FindByUserAndItem(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestCacheRepositorySetGetDelete(t *testing.T) {
	cache := NewCacheRepository()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Minute))
	got, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)

	require.NoError(t, cache.Delete(ctx, "k"))
	_, err = cache.Get(ctx, "k")
	assert.Error(t, err)
}

func TestCacheRepositoryExpiry(t *testing.T) {
	cache := NewCacheRepository()
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "k", []byte("v"), time.Nanosecond))
	time.Sleep(5 * time.Millisecond)
	_, err := cache.Get(ctx, "k")
	assert.Error(t, err)
}
