// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/equilibra/v1/internal/domain/food"
	"github.com/equilibra/v1/internal/domain/recommendation"
)

// FoodRepository supplies the read-only food catalog. The engine never
// writes to it; loading and reloading are the adapter's concern.
type FoodRepository interface {
	FindAll(ctx context.Context) ([]food.Food, error)
	FindByID(ctx context.Context, id uuid.UUID) (*food.Food, error)
	Count(ctx context.Context) (int, error)
}

// OverrideRepository stores practitioner overrides for audit.
type OverrideRepository interface {
	Create(ctx context.Context, override *recommendation.Override) error

	// FindByUserAndItem returns nil, nil when no override exists.
	FindByUserAndItem(ctx context.Context, userID, itemID uuid.UUID) (*recommendation.Override, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// TextPolisher rewords reasoning prose. It is strictly best-effort:
// callers fall back to the deterministic template text on any error,
// and the polisher must never change scores, tiers or facts.
type TextPolisher interface {
	Polish(ctx context.Context, text string) (string, error)
}

// EngineMetrics records engine observability counters.
type EngineMetrics interface {
	ObserveScoring(framework string, scored, excluded int)
	ObserveShortfalls(framework string, count int)
}
