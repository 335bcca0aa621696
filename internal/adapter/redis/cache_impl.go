package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/user/section-detector/internal/entity"
	"github.com/user/section-detector/pkg/utils"
)

const resultKeyPrefix = "sections:"

// ResultCacheRepoImpl provides a concrete implementation for the
// ResultCacheRepository interface using Redis.
type ResultCacheRepoImpl struct {
	client *redis.Client
}

// NewResultCacheRepo creates a new instance of ResultCacheRepoImpl.
func NewResultCacheRepo(client *redis.Client) *ResultCacheRepoImpl {
	return &ResultCacheRepoImpl{client: client}
}

// generateKey creates a consistent Redis key for a source by hashing it.
func (r *ResultCacheRepoImpl) generateKey(source string) string {
	return fmt.Sprintf("%s%s", resultKeyPrefix, utils.HashSource(source))
}

// Get returns the cached result for a source, or (nil, nil) on a miss.
func (r *ResultCacheRepoImpl) Get(ctx context.Context, source string) (*entity.DetectionResult, error) {
	payload, err := r.client.Get(ctx, r.generateKey(source)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var result entity.DetectionResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Set caches a serialized result with the given expiry.
func (r *ResultCacheRepoImpl) Set(ctx context.Context, result *entity.DetectionResult, expiry time.Duration) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return r.client.SetEx(ctx, r.generateKey(result.Source), payload, expiry).Err()
}

// Invalidate removes a cached result, used for forced re-analysis.
func (r *ResultCacheRepoImpl) Invalidate(ctx context.Context, source string) error {
	return r.client.Del(ctx, r.generateKey(source)).Err()
}
