package storage

import (
	"context"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/uno/game"
)

// Memory keeps encoded snapshots for the lifetime of the process.
type Memory struct {
	snapshots *hashmap.HashMap
}

func NewMemory() *Memory {
	return &Memory{snapshots: hashmap.New()}
}

func (m *Memory) Save(ctx context.Context, id string, snapshot game.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := Encode(snapshot)
	if err != nil {
		return err
	}
	m.snapshots.Set(id, data)
	return nil
}

func (m *Memory) Load(ctx context.Context, id string) (game.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return game.Snapshot{}, err
	}
	v, ok := m.snapshots.Get(id)
	if !ok {
		return game.Snapshot{}, consts.ErrorsSessionNotFound
	}
	return Decode(v.([]byte))
}

func (m *Memory) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.snapshots.Del(id)
	return nil
}

func (m *Memory) Close() error {
	return nil
}

var _ Store = (*Memory)(nil)
