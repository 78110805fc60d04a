// internal/service/cache.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/dangerclosesec/ukmhub/internal/cache"
	"github.com/dangerclosesec/ukmhub/internal/domain"
)

const (
	ukmListCacheKey   = "ukm:list"
	ukmCacheKeyPrefix = "ukm:"
)

func ukmCacheKey(id int64) string {
	return ukmCacheKeyPrefix + strconv.FormatInt(id, 10)
}

// CacheService provides caching functionality with type safety and error handling
type CacheService struct {
	cache *cache.InMemoryCache

	// generation is bumped by every invalidation. GetOrSet drops a fetched
	// value when an invalidation ran while it was being fetched.
	generation atomic.Uint64
}

// CacheConfig holds configuration for the cache service
type CacheConfig struct {
	TTL         time.Duration
	CleanupFreq time.Duration
}

// NewCacheService creates a new cache service and starts its cleanup routine.
func NewCacheService(config CacheConfig) *CacheService {
	c := cache.NewInMemoryCache(config.TTL, config.CleanupFreq)
	c.StartCleanup(context.Background())

	return &CacheService{cache: c}
}

// Set stores a value in the cache
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	s.cache.Set(ctx, key, value)
	return nil
}

// Get copies a cached value into result. It returns domain.ErrNotFound on
// a miss.
func (s *CacheService) Get(ctx context.Context, key string, result interface{}) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	value, found := s.cache.Get(ctx, key)
	if !found {
		return domain.ErrNotFound
	}

	switch v := value.(type) {
	case []byte:
		if err := json.Unmarshal(v, result); err != nil {
			return fmt.Errorf("unmarshaling cached value: %w", err)
		}
	default:
		if err := assignValue(value, result); err != nil {
			return fmt.Errorf("assigning cached value: %w", err)
		}
	}

	return nil
}

// GetOrSet retrieves a value from cache or sets it if not found. Errors
// from fetchFunc are returned unwrapped so domain errors keep their kind.
func (s *CacheService) GetOrSet(ctx context.Context, key string, result interface{}, fetchFunc func() (interface{}, error)) error {
	err := s.Get(ctx, key, result)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("getting from cache: %w", err)
	}

	gen := s.generation.Load()
	value, err := fetchFunc()
	if err != nil {
		return err
	}

	if s.generation.Load() == gen {
		if err := s.Set(ctx, key, value); err != nil {
			return fmt.Errorf("storing in cache: %w", err)
		}
	}

	if err := assignValue(value, result); err != nil {
		return fmt.Errorf("assigning fetched value: %w", err)
	}

	return nil
}

// Delete removes a value from the cache
func (s *CacheService) Delete(ctx context.Context, key string) error {
	if key == "" {
		return domain.ErrInvalidInput
	}

	s.generation.Add(1)
	s.cache.Delete(ctx, key)
	return nil
}

// InvalidateUKM drops the cached list and the cached detail of one UKM.
func (s *CacheService) InvalidateUKM(ctx context.Context, id int64) {
	s.generation.Add(1)
	s.cache.Delete(ctx, ukmListCacheKey)
	s.cache.Delete(ctx, ukmCacheKey(id))
}

// InvalidateAllUKM drops every cached UKM read model.
func (s *CacheService) InvalidateAllUKM(ctx context.Context) {
	s.generation.Add(1)
	s.cache.DeletePrefix(ctx, ukmCacheKeyPrefix)
}

// Close stops the cleanup routine
func (s *CacheService) Close() {
	s.cache.StopCleanup()
}

// assignValue copies src into dst. Values other than *interface{} go
// through JSON so callers never share the cached instance.
func assignValue(src interface{}, dst interface{}) error {
	if v, ok := dst.(*interface{}); ok {
		*v = src
		return nil
	}

	data, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("marshaling value: %w", err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("unmarshaling value: %w", err)
	}

	return nil
}
