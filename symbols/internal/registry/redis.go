package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	uploadsKey      = "symbols:uploads"
	uploadKeyPrefix = "symbols:upload:"
)

// RedisRegistry shares totals between server instances. Each name gets a hash
// symbols:upload:<name> with count and chunks fields; names are kept in the
// set symbols:uploads.
type RedisRegistry struct {
	client *redis.Client
}

func NewRedisRegistry(redisURL string) (*RedisRegistry, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &RedisRegistry{client: client}, nil
}

// NewRedisRegistryWithClient uses an existing client; Close closes it.
func NewRedisRegistryWithClient(client *redis.Client) *RedisRegistry {
	return &RedisRegistry{client: client}
}

func (r *RedisRegistry) Register(ctx context.Context, name string, chunks int) error {
	key := uploadKeyPrefix + name

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, uploadsKey, name)
		pipe.HIncrBy(ctx, key, "count", 1)
		pipe.HIncrBy(ctx, key, "chunks", int64(chunks))
		return nil
	})
	if err != nil {
		return fmt.Errorf("register upload %q: %w", name, err)
	}
	return nil
}

func (r *RedisRegistry) Stats(ctx context.Context) ([]UploadStat, error) {
	names, err := r.client.SMembers(ctx, uploadsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list uploads: %w", err)
	}

	pipe := r.client.Pipeline()
	counts := make([]*redis.SliceCmd, len(names))
	for i, name := range names {
		counts[i] = pipe.HMGet(ctx, uploadKeyPrefix+name, "count", "chunks")
	}
	if len(names) > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, fmt.Errorf("read uploads: %w", err)
		}
	}

	out := make([]UploadStat, 0, len(names))
	for i, name := range names {
		var fields struct {
			Count  int64 `redis:"count"`
			Chunks int64 `redis:"chunks"`
		}
		if err := counts[i].Scan(&fields); err != nil {
			return nil, fmt.Errorf("decode upload %q: %w", name, err)
		}
		out = append(out, UploadStat{Name: name, Count: fields.Count, Chunks: fields.Chunks})
	}

	sortStats(out)
	return out, nil
}

func (r *RedisRegistry) Close() error {
	return r.client.Close()
}
