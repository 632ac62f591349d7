package store

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
)

// RedisStore is an alternative backend for deployments that already run
// Redis. Collections are plain string keys under a common prefix.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(addr, prefix string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &RedisStore{client: client, prefix: prefix}, nil
}

func (s *RedisStore) key(name string) string {
	return s.prefix + ":" + name
}

func (s *RedisStore) Read(name string, v any) error {
	b, err := s.client.Get(context.Background(), s.key(name)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal(b, v)
}

func (s *RedisStore) Write(name string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(context.Background(), s.key(name), b, 0).Err()
}

func (s *RedisStore) Delete(name string) error {
	return s.client.Del(context.Background(), s.key(name)).Err()
}
