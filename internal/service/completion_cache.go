package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	completedModulesKeyPrefix = "calendar:completed:"

	// generationTTL outlives any request that read a generation.
	generationTTL = 24 * time.Hour
)

// CompletionCache keeps a user's completed-module snapshot per program.
//
// Get reports the snapshot's generation on a miss. Set stores a snapshot
// only while that generation is current, so a snapshot read from the
// database before an Invalidate is never cached after it.
type CompletionCache interface {
	Get(ctx context.Context, userID, levelSubjectID uint) (modules []int, generation int64, ok bool, err error)
	Set(ctx context.Context, userID, levelSubjectID uint, generation int64, modules []int) error
	Invalidate(ctx context.Context, userID, levelSubjectID uint) error
}

type RedisCompletionCache struct {
	Redis *redis.Client
	TTL   time.Duration
}

func NewRedisCompletionCache(rdb *redis.Client, ttl time.Duration) *RedisCompletionCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &RedisCompletionCache{Redis: rdb, TTL: ttl}
}

func completedModulesKey(userID, levelSubjectID uint) string {
	return fmt.Sprintf("%s%d:%d", completedModulesKeyPrefix, userID, levelSubjectID)
}

func completedGenerationKey(userID, levelSubjectID uint) string {
	return completedModulesKey(userID, levelSubjectID) + ":gen"
}

// setIfGeneration writes KEYS[1] only when KEYS[2] still holds ARGV[1].
var setIfGeneration = redis.NewScript(`
local current = tonumber(redis.call("GET", KEYS[2]) or "0")
if current ~= tonumber(ARGV[1]) then
	return 0
end
redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
return 1
`)

func (c *RedisCompletionCache) Get(ctx context.Context, userID, levelSubjectID uint) ([]int, int64, bool, error) {
	vals, err := c.Redis.MGet(ctx,
		completedModulesKey(userID, levelSubjectID),
		completedGenerationKey(userID, levelSubjectID),
	).Result()
	if err != nil {
		return nil, 0, false, err
	}

	var generation int64
	if raw, ok := vals[1].(string); ok {
		if generation, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return nil, 0, false, err
		}
	}

	raw, ok := vals[0].(string)
	if !ok {
		return nil, generation, false, nil
	}
	var modules []int
	if err := json.Unmarshal([]byte(raw), &modules); err != nil {
		return nil, generation, false, err
	}
	return modules, generation, true, nil
}

func (c *RedisCompletionCache) Set(ctx context.Context, userID, levelSubjectID uint, generation int64, modules []int) error {
	if modules == nil {
		modules = []int{}
	}
	data, err := json.Marshal(modules)
	if err != nil {
		return err
	}
	return setIfGeneration.Run(ctx, c.Redis,
		[]string{completedModulesKey(userID, levelSubjectID), completedGenerationKey(userID, levelSubjectID)},
		generation, data, c.TTL.Milliseconds(),
	).Err()
}

// Invalidate drops the snapshot and bumps the generation.
func (c *RedisCompletionCache) Invalidate(ctx context.Context, userID, levelSubjectID uint) error {
	genKey := completedGenerationKey(userID, levelSubjectID)
	_, err := c.Redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		pipe.Expire(ctx, genKey, generationTTL)
		pipe.Del(ctx, completedModulesKey(userID, levelSubjectID))
		return nil
	})
	return err
}
