// Package redis provides a Redis-backed extraction result cache so repeated
// analyses of the same document skip re-extraction across process restarts
// and replicas.
package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/poligap/poligap/internal/analysis/extraction"
	"github.com/poligap/poligap/internal/observability/logging"
	"github.com/poligap/poligap/internal/observability/metrics"
	"github.com/poligap/poligap/pkg/errors"
)

const cacheName = "extraction_redis"

// CacheConfig configures the Redis extraction cache.
type CacheConfig struct {
	Addr         string
	Password     string
	DB           int
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	KeyPrefix    string
	TTL          time.Duration
}

// Cache is an extraction.ResultCache backed by Redis. Failures degrade to
// cache misses; extraction itself never depends on Redis availability.
type Cache struct {
	client    *redis.Client
	logger    logging.Logger
	collector *metrics.Collector
	keyPrefix string
	ttl       time.Duration
	opTimeout time.Duration
}

// NewCache creates and pings a Redis extraction cache.
func NewCache(logger logging.Logger, collector *metrics.Collector, cfg CacheConfig) (*Cache, error) {
	if cfg.Addr == "" {
		return nil, errors.NewValidationError(errors.CodeInvalidParameter, "redis address cannot be empty")
	}
	if cfg.PoolSize == 0 {
		cfg.PoolSize = 10
	}
	if cfg.MinIdleConns == 0 {
		cfg.MinIdleConns = 2
	}
	if cfg.DialTimeout == 0 {
		cfg.DialTimeout = 5 * time.Second
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 3 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 3 * time.Second
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "poligap:extraction:"
	}
	if cfg.TTL == 0 {
		cfg.TTL = time.Hour
	}
	if logger == nil {
		logger = logging.NewNoop()
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCacheUnavailable.Code, "failed to connect to redis")
	}

	return &Cache{
		client:    client,
		logger:    logger,
		collector: collector,
		keyPrefix: cfg.KeyPrefix,
		ttl:       cfg.TTL,
		opTimeout: cfg.ReadTimeout,
	}, nil
}

var _ extraction.ResultCache = (*Cache)(nil)

// Get loads a cached bundle. Any Redis or decode failure reports a miss.
func (c *Cache) Get(key string) (*extraction.EntityBundle, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), c.opTimeout)
	defer cancel()

	data, err := c.client.Get(ctx, c.keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.recordError("get")
			c.logger.Warn("redis cache read failed", logging.Error(err))
		}
		if c.collector != nil {
			c.collector.RecordCacheMiss(cacheName)
		}
		return nil, false
	}

	var bundle extraction.EntityBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		c.recordError("decode")
		c.logger.Warn("redis cache entry corrupt", logging.Error(err))
		return nil, false
	}

	if c.collector != nil {
		c.collector.RecordCacheHit(cacheName)
	}
	return &bundle, true
}

// Put stores a bundle with the configured TTL. Failures are logged and
// dropped.
func (c *Cache) Put(key string, bundle *extraction.EntityBundle) {
	data, err := json.Marshal(bundle)
	if err != nil {
		c.recordError("encode")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.opTimeout)
	defer cancel()

	if err := c.client.Set(ctx, c.keyPrefix+key, data, c.ttl).Err(); err != nil {
		c.recordError("set")
		c.logger.Warn("redis cache write failed", logging.Error(err))
	}
}

// Close releases the underlying Redis connection pool.
func (c *Cache) Close() error {
	return c.client.Close()
}

func (c *Cache) recordError(operation string) {
	if c.collector != nil {
		c.collector.RecordCacheError(cacheName, operation)
	}
}
