package lead

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisOptions configures the Redis lead store.
type RedisOptions struct {
	Address   string
	Password  string
	DB        int
	KeyPrefix string
}

// RedisStore keeps each lead as a JSON string under KeyPrefix+ID and indexes
// them by creation time in a sorted set.
type RedisStore struct {
	client *redis.Client
	prefix string
	logger *zap.Logger
}

// OpenRedis connects to Redis and verifies the connection with PING.
func OpenRedis(ctx context.Context, opts RedisOptions, logger *zap.Logger) (*RedisStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Address,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Address, err)
	}

	logger.Debug("redis lead store ready",
		zap.String("op", "lead.OpenRedis"),
		zap.String("address", opts.Address),
		zap.String("keyPrefix", opts.KeyPrefix),
	)
	return &RedisStore{client: client, prefix: opts.KeyPrefix, logger: logger}, nil
}

func (r *RedisStore) key(id string) string { return r.prefix + id }

func (r *RedisStore) indexKey() string { return r.prefix + "index" }

func (r *RedisStore) Save(ctx context.Context, l Lead) error {
	payload, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("failed to encode lead %s: %w", l.ID, err)
	}
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.key(l.ID), payload, 0)
		pipe.ZAdd(ctx, r.indexKey(), redis.Z{
			Score:  float64(l.CreatedAt.UnixNano()),
			Member: l.ID,
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save lead %s: %w", l.ID, err)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, id string) (Lead, error) {
	payload, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Lead{}, ErrNotFound
	}
	if err != nil {
		return Lead{}, fmt.Errorf("failed to load lead %s: %w", id, err)
	}
	var l Lead
	if err := json.Unmarshal(payload, &l); err != nil {
		return Lead{}, fmt.Errorf("failed to decode lead %s: %w", id, err)
	}
	return l, nil
}

func (r *RedisStore) List(ctx context.Context, limit int) ([]Lead, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit - 1)
	}
	ids, err := r.client.ZRevRange(ctx, r.indexKey(), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	leads := make([]Lead, 0, len(ids))
	if len(ids) == 0 {
		return leads, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.key(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			// Index entry without a payload; skip it.
			r.logger.Warn("lead index references missing key",
				zap.String("op", "lead.RedisStore.List"),
				zap.String("id", ids[i]),
			)
			continue
		}
		var l Lead
		if err := json.Unmarshal([]byte(s), &l); err != nil {
			return nil, fmt.Errorf("failed to decode lead %s: %w", ids[i], err)
		}
		leads = append(leads, l)
	}
	return leads, nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	var del *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, r.key(id))
		pipe.ZRem(ctx, r.indexKey(), id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete lead %s: %w", id, err)
	}
	if del.Val() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *RedisStore) Close() error { return r.client.Close() }
