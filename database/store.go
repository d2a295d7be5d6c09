package database

import (
	"context"
	"sync"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/duel/config"
	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/storage"
	"github.com/ratel-online/duel/storage/redis"
	"github.com/ratel-online/duel/storage/sqlite"
	"github.com/ratel-online/duel/uno/session"
)

var (
	storeMu sync.RWMutex
	store   storage.Store
)

// OpenStore builds the snapshot store selected by the configuration.
func OpenStore(cfg config.Config) (storage.Store, error) {
	switch cfg.Storage {
	case config.StorageSQLite:
		return sqlite.Open(cfg.SQLitePath)
	case config.StorageRedis:
		return redis.Open(cfg.RedisAddr, cfg.RedisDB, cfg.RedisTTL)
	default:
		return storage.NewMemory(), nil
	}
}

func SetStore(s storage.Store) {
	storeMu.Lock()
	defer storeMu.Unlock()
	store = s
}

func getStore() storage.Store {
	storeMu.RLock()
	defer storeMu.RUnlock()
	return store
}

func SaveSession(ctx context.Context, s *session.Session) error {
	st := getStore()
	if st == nil {
		return consts.ErrorsStorageDisabled
	}
	return st.Save(ctx, s.ID(), s.Snapshot())
}

// LoadSession resumes a saved game. A game that is still live is closed
// first so only one worker drives it.
func LoadSession(ctx context.Context, id string, opts session.Options) (*session.Session, error) {
	st := getStore()
	if st == nil {
		return nil, consts.ErrorsStorageDisabled
	}
	if live := GetSession(id); live != nil {
		CloseSession(live)
	}
	snapshot, err := st.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	s, err := session.Restore(id, snapshot, opts)
	if err != nil {
		return nil, err
	}
	RegisterSession(s)
	log.Infof("session %s loaded\n", id)
	return s, nil
}
