package catalog

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// bumpScript raises the counter to at least ARGV[1] and then increments it.
var bumpScript = redis.NewScript(`
local cur = tonumber(redis.call('GET', KEYS[1]) or '0')
local floor = tonumber(ARGV[1])
if cur < floor then cur = floor end
cur = cur + 1
redis.call('SET', KEYS[1], cur)
return cur
`)

// RedisAllocator keeps one counter per category so concurrent creators never
// receive the same code. The loaded list still acts as a floor, which keeps
// the counter in step with codes typed in by hand.
type RedisAllocator struct {
	rdb    redis.Scripter
	prefix string
}

func NewRedisAllocator(rdb redis.Scripter, prefix string) *RedisAllocator {
	if prefix == "" {
		prefix = "backoffice:goods-seq:"
	}

	return &RedisAllocator{rdb: rdb, prefix: prefix}
}

func (a *RedisAllocator) Next(ctx context.Context, category string, existing []string) (string, error) {
	floor := MaxSequence(existing, category)

	seq, err := bumpScript.Run(ctx, a.rdb, []string{a.prefix + category}, floor).Int()
	if err != nil {
		return "", fmt.Errorf("bump sequence of %s: %w", category, err)
	}

	return Format(category, seq), nil
}
