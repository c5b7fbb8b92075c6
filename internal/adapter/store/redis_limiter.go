package store

import (
	"context"
	"errors"
	"strconv"
	"time"

	"veritas-core/internal/domain/entity"

	"github.com/redis/go-redis/v9"
)

const usageTTL = 24 * time.Hour

// reserveScript increments the counter only while it is under the limit
// (ARGV[1], -1 for none) and returns the new count, or -1 when refused.
var reserveScript = redis.NewScript(`
local limit = tonumber(ARGV[1])
local used = tonumber(redis.call('GET', KEYS[1]) or '0')
if limit >= 0 and used >= limit then
	return -1
end
local n = redis.call('INCR', KEYS[1])
redis.call('EXPIRE', KEYS[1], ARGV[2])
return n
`)

// RedisLimiter counts queries per user per UTC day.
type RedisLimiter struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		now:    time.Now,
	}
}

func (r *RedisLimiter) key(userID string) string {
	return usageKey(userID, r.now())
}

func usageKey(userID string, now time.Time) string {
	return "usage:" + userID + ":" + now.UTC().Format("2006-01-02")
}

func (r *RedisLimiter) CheckLimit(ctx context.Context, userID string, limit int) (bool, error) {
	if limit == entity.Unlimited {
		return true, nil
	}
	usage, err := r.Usage(ctx, userID)
	if err != nil {
		return false, err
	}
	return usage < limit, nil
}

func (r *RedisLimiter) Reserve(ctx context.Context, userID string, limit int) (bool, error) {
	n, err := reserveScript.Run(ctx, r.client, []string{r.key(userID)}, limit, int(usageTTL.Seconds())).Int()
	if err != nil {
		return false, err
	}
	return n >= 0, nil
}

func (r *RedisLimiter) Increment(ctx context.Context, userID string, queries int) error {
	key := r.key(userID)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.IncrBy(ctx, key, int64(queries))
		pipe.Expire(ctx, key, usageTTL)
		return nil
	})
	return err
}

func (r *RedisLimiter) Usage(ctx context.Context, userID string) (int, error) {
	val, err := r.client.Get(ctx, r.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil // No usage yet
	}
	if err != nil {
		return 0, err
	}
	usage, err := strconv.Atoi(val)
	if err != nil {
		return 0, err
	}
	return max(0, usage), nil // a refund can cross midnight
}
