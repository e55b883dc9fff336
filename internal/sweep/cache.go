// Optional Redis-backed result cache. A sweep point is deterministic given
// its configuration, so entries are keyed by a hash of everything that feeds
// the solver.

package sweep

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/perclft/groundstate/internal/config"
	"github.com/perclft/groundstate/internal/solver"
)

type Cache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewCache connects to Redis, or returns nil when no address is configured
// (the engine treats a nil cache as disabled).
func NewCache(ctx context.Context, cfg config.Cache) (*Cache, error) {
	if cfg.Addr == "" {
		return nil, nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: cfg.Addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis %s: %w", cfg.Addr, err)
	}
	ttl := time.Duration(cfg.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Cache{rdb: rdb, ttl: ttl}, nil
}

// Key hashes the solver-relevant slice of the configuration. IQPE tunables
// only key IQPE points, so retuning them leaves other entries valid.
func Key(cfg config.Config, algorithm string, distance float64) string {
	iqpe := cfg.IQPE
	if algorithm != solver.AlgorithmIQPE {
		iqpe = config.IQPE{}
	}
	payload := struct {
		Molecule  config.Molecule  `json:"molecule"`
		Transform config.Transform `json:"transform"`
		IQPE      config.IQPE      `json:"iqpe"`
		Algorithm string           `json:"algorithm"`
		Distance  float64          `json:"distance"`
	}{cfg.Molecule, cfg.Transform, iqpe, algorithm, distance}
	data, _ := json.Marshal(payload)
	sum := sha256.Sum256(data)
	return "sweep:" + hex.EncodeToString(sum[:])
}

// Get returns a cached point. Cache errors degrade to a miss.
func (c *Cache) Get(ctx context.Context, key string) (*Point, bool) {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var p Point
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, false
	}
	return &p, true
}

// Put stores a point; failures are ignored, the cache is best effort.
func (c *Cache) Put(ctx context.Context, key string, p *Point) {
	data, err := json.Marshal(p)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key, data, c.ttl)
}

func (c *Cache) Close() error { return c.rdb.Close() }
