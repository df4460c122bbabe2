package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/redis/go-redis/v9"
)

// updateAttempts bounds the optimistic-locking retry loop in Update.
const updateAttempts = 5

type Option func(*redis.Options)

func WithPassword(password string) Option {
	return func(o *redis.Options) {
		o.Password = password
	}
}

func WithDB(db int) Option {
	return func(o *redis.Options) {
		o.DB = db
	}
}

// NewRedisClient builds a go-redis client for the given address.
func NewRedisClient(address string, options ...Option) *redis.Client {
	opts := &redis.Options{
		Addr: address,
	}
	for _, option := range options {
		option(opts)
	}
	return redis.NewClient(opts)
}

// RedisStore persists each collection as a JSON string under a prefixed key.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

func (s *RedisStore) Get(ctx context.Context, key string, v any) error {
	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("redis get %q: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: key %q: %v", ErrCorrupt, key, err)
	}
	return nil
}

func (s *RedisStore) Set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %q: %w", key, err)
	}
	if err := s.client.Set(ctx, s.key(key), data, 0).Err(); err != nil {
		return fmt.Errorf("%w: redis set %q: %v", ErrPersistence, key, err)
	}
	return nil
}

// Update runs a WATCH-guarded read-modify-write so two clients appending to
// the same snapshot cannot overwrite each other's change.
func (s *RedisStore) Update(ctx context.Context, key string, v any, apply func() error) error {
	full := s.key(key)

	txn := func(tx *redis.Tx) error {
		// Reset the target so a retried attempt starts from the stored
		// snapshot, not from a previous attempt's mutations.
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && !rv.IsNil() {
			rv.Elem().SetZero()
		}

		data, err := tx.Get(ctx, full).Bytes()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("redis get %q: %w", key, err)
		}
		if err == nil {
			if err := json.Unmarshal(data, v); err != nil {
				return fmt.Errorf("%w: key %q: %v", ErrCorrupt, key, err)
			}
		}

		if err := apply(); err != nil {
			return err
		}

		out, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal %q: %w", key, err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, full, out, 0)
			return nil
		})
		return err
	}

	for i := 0; i < updateAttempts; i++ {
		err := s.client.Watch(ctx, txn, full)
		if errors.Is(err, redis.TxFailedErr) {
			continue // key changed under us, re-read and retry
		}
		if err != nil {
			return err
		}
		return nil
	}
	return fmt.Errorf("%w: key %q", ErrConflict, key)
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("%w: redis del %q: %v", ErrPersistence, key, err)
	}
	return nil
}
