// internal/common/cache/cache.go
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"career-match/internal/common/config"
	"career-match/internal/common/logger"
	"career-match/internal/common/metrics"
	"career-match/internal/models"

	"github.com/redis/go-redis/v9"
)

// AssessmentCache stores computed assessments keyed by dataset version and
// request content. Every failure degrades to a miss.
type AssessmentCache struct {
	client redis.Cmdable
	ttl    time.Duration
	prefix string
	logger logger.Logger
}

func New(client redis.Cmdable, cfg config.CacheConfig, log logger.Logger) *AssessmentCache {
	return &AssessmentCache{
		client: client,
		ttl:    config.GetDuration(cfg.TTL),
		prefix: cfg.KeyPrefix,
		logger: log,
	}
}

// Key hashes the JSON encoding of request. Map keys are encoded sorted, so
// equal requests produce equal keys.
func (c *AssessmentCache) Key(datasetVersion string, request interface{}) (string, error) {
	data, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("encode cache key: %w", err)
	}
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s:%s", c.prefix, datasetVersion, hex.EncodeToString(sum[:])), nil
}

func (c *AssessmentCache) Get(ctx context.Context, key string) (models.Assessment, bool) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.CacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
		return models.Assessment{}, false
	}
	if err != nil {
		metrics.CacheLookups.WithLabelValues(metrics.CacheError).Inc()
		c.logger.Warn("assessment cache read failed", map[string]interface{}{
			"key":   key,
			"error": err,
		})
		return models.Assessment{}, false
	}

	var assessment models.Assessment
	if err := json.Unmarshal(val, &assessment); err != nil {
		metrics.CacheLookups.WithLabelValues(metrics.CacheError).Inc()
		c.logger.Warn("discarding undecodable cache entry", map[string]interface{}{
			"key":   key,
			"error": err,
		})
		return models.Assessment{}, false
	}

	metrics.CacheLookups.WithLabelValues(metrics.CacheHit).Inc()
	return assessment, true
}

func (c *AssessmentCache) Set(ctx context.Context, key string, assessment models.Assessment) {
	data, err := json.Marshal(assessment)
	if err != nil {
		c.logger.Warn("failed to encode assessment for cache", map[string]interface{}{"error": err})
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("assessment cache write failed", map[string]interface{}{
			"key":   key,
			"error": err,
		})
	}
}

// Ping is used by the readiness probe.
func (c *AssessmentCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
