// Package memory provides in-memory repository implementations used in
// development and tests, and as the default catalog source.
package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/equilibra/v1/internal/ports/outbound"
)

// CacheItem represents a cached item
type CacheItem struct {
	Value     []byte
	ExpiresAt time.Time
}

// CacheRepository implements in-memory cache repository
type CacheRepository struct {
	data  map[string]CacheItem
	mutex sync.RWMutex
}

// NewCacheRepository creates a new in-memory cache repository
func NewCacheRepository() outbound.CacheRepository {
	repo := &CacheRepository{
		data: make(map[string]CacheItem),
	}

	// Start cleanup goroutine
	go repo.cleanup()

	return repo
}

// Get retrieves a value from cache
func (r *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	item, exists := r.data[key]
	if !exists {
		return nil, errors.New("key not found")
	}

	if time.Now().After(item.ExpiresAt) {
		return nil, errors.New("key expired")
	}

	return item.Value, nil
}

// Set stores a value in cache with TTL
func (r *CacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	expiresAt := time.Now().Add(ttl)
	if ttl == 0 {
		expiresAt = time.Now().Add(24 * time.Hour) // Default to 24 hours
	}

	r.data[key] = CacheItem{
		Value:     value,
		ExpiresAt: expiresAt,
	}

	return nil
}

// Delete removes a key from cache
func (r *CacheRepository) Delete(ctx context.Context, key string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.data, key)
	return nil
}

// cleanup removes expired items
func (r *CacheRepository) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		r.mutex.Lock()
		now := time.Now()
		for key, item := range r.data {
			if now.After(item.ExpiresAt) {
				delete(r.data, key)
			}
		}
		r.mutex.Unlock()
	}
}
