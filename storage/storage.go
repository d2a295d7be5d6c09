// Package storage persists game snapshots between server runs.
package storage

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/ratel-online/duel/uno/game"
)

// Store saves and loads snapshots by session id. Load reports
// consts.ErrorsSessionNotFound for unknown ids.
type Store interface {
	Save(ctx context.Context, id string, snapshot game.Snapshot) error
	Load(ctx context.Context, id string) (game.Snapshot, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

func Encode(snapshot game.Snapshot) ([]byte, error) {
	data, err := codec.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

func Decode(data []byte) (game.Snapshot, error) {
	snapshot := game.Snapshot{}
	if err := codec.Unmarshal(data, &snapshot); err != nil {
		return game.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snapshot, nil
}
