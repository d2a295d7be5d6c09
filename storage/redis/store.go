// Package redis keeps game snapshots in Redis with an expiry.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/storage"
	"github.com/ratel-online/duel/uno/game"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "uno:session:"

type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// Open connects to Redis and checks the connection. A zero ttl keeps
// snapshots forever.
func Open(addr string, db int, ttl time.Duration) (*Store, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return &Store{rdb: rdb, ttl: ttl}, nil
}

func key(id string) string {
	return keyPrefix + id
}

func (s *Store) Save(ctx context.Context, id string, snapshot game.Snapshot) error {
	data, err := storage.Encode(snapshot)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, key(id), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session %s: %w", id, err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context, id string) (game.Snapshot, error) {
	data, err := s.rdb.Get(ctx, key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return game.Snapshot{}, consts.ErrorsSessionNotFound
	}
	if err != nil {
		return game.Snapshot{}, fmt.Errorf("failed to load session %s: %w", id, err)
	}
	return storage.Decode(data)
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.rdb.Close()
}

var _ storage.Store = (*Store)(nil)
