package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/huynhtrandev/brewpoint-backend/pkg/config"
	"github.com/redis/go-redis/v9"
)

const (
	keyNamespace      = "bp"
	fulfillmentPrefix = "fulfillment"
	ordersPrefix      = "orders"
	cartPrefix        = "cart"
)

type cmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	Get(context.Context, string) *redis.StringCmd
	Del(context.Context, ...string) *redis.IntCmd
}

// Client wraps the redis connection helpers needed by the service.
type Client struct {
	store cmdable
	raw   *redis.Client
	ttl   time.Duration
}

// Pinger exposes the health-check surface.
type Pinger interface {
	Ping(context.Context) error
}

// New bootstraps a Redis client with pooling/timeouts and verifies connectivity.
func New(ctx context.Context, cfg config.RedisConfig, ttl time.Duration) (*Client, error) {
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Client{store: raw, raw: raw, ttl: ttl}, nil
}

func optionsFromConfig(cfg config.RedisConfig) (*redis.Options, error) {
	if cfg.URL == "" && cfg.Address == "" {
		return nil, errors.New("redis url or address is required")
	}
	var opts *redis.Options
	if cfg.URL != "" {
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     cfg.Address,
			Password: cfg.Password,
			DB:       cfg.DB,
		}
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout
	return opts, nil
}

// Ping verifies connectivity for health checks.
func (c *Client) Ping(ctx context.Context) error {
	return c.store.Ping(ctx).Err()
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	if c.raw == nil {
		return nil
	}
	return c.raw.Close()
}

// Get implements snapshot.Store.
func (c *Client) Get(ctx context.Context, key string) ([]byte, bool, error) {
	blob, err := c.store.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get %q: %w", key, err)
	}
	return blob, true, nil
}

// Set implements snapshot.Store. Writes carry the configured snapshot TTL.
func (c *Client) Set(ctx context.Context, key string, blob []byte) error {
	if err := c.store.Set(ctx, key, blob, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

// Del implements snapshot.Store.
func (c *Client) Del(ctx context.Context, key string) error {
	if err := c.store.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, err)
	}
	return nil
}

// FulfillmentKey namespaces the fulfillment snapshot for a customer.
func FulfillmentKey(customerID string) string {
	return buildKey(fulfillmentPrefix, customerID)
}

// OrdersKey namespaces the placed-order history for a customer.
func OrdersKey(customerID string) string {
	return buildKey(ordersPrefix, customerID)
}

// CartKey namespaces the cart snapshot for a customer.
func CartKey(customerID string) string {
	return buildKey(cartPrefix, customerID)
}

func buildKey(parts ...string) string {
	cleaned := make([]string, 0, len(parts)+1)
	cleaned = append(cleaned, keyNamespace)
	for _, part := range parts {
		cleaned = append(cleaned, strings.TrimSpace(part))
	}
	return strings.Join(cleaned, ":")
}
