package repository

import (
	"context"
	"time"

	"github.com/user/section-detector/internal/entity"
)

// ResultCacheRepository defines the interface for short-lived caching of
// detection results, keyed by analyzed source.
type ResultCacheRepository interface {
	// Get returns the cached result for a source, or (nil, nil) on a miss.
	Get(ctx context.Context, source string) (*entity.DetectionResult, error)
	// Set caches a result with the given expiry.
	Set(ctx context.Context, result *entity.DetectionResult, expiry time.Duration) error
	// Invalidate removes a cached result, used for forced re-analysis.
	Invalidate(ctx context.Context, source string) error
}
