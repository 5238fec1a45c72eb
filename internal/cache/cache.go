package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"shillscore/internal/model"
)

// ScoreCache stores serialized score results in Redis with a TTL.
// The engine itself stays stateless; this sits at the collaborator layer.
type ScoreCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New creates a ScoreCache around an existing Redis client.
func New(rdb *redis.Client, ttl time.Duration) *ScoreCache {
	return &ScoreCache{rdb: rdb, ttl: ttl}
}

func scoreKey(id string) string {
	return "score:result:" + id
}

// Get returns the cached result for an identity key. Any Redis error,
// including a plain miss, reads as "not cached".
func (c *ScoreCache) Get(ctx context.Context, id string) (*model.ScoreResult, bool) {
	b, err := c.rdb.Get(ctx, scoreKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var res model.ScoreResult
	if err := json.Unmarshal(b, &res); err != nil {
		return nil, false
	}
	return &res, true
}

// Set stores a result best-effort; failures are silent, the next request
// simply recomputes.
func (c *ScoreCache) Set(ctx context.Context, id string, res *model.ScoreResult) {
	b, err := json.Marshal(res)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, scoreKey(id), b, c.ttl).Err()
}
