package database

import (
	"context"
	"sort"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/log"
	modelx "github.com/ratel-online/core/model"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/duel/uno/session"
)

var players = hashmap.New()
var sessions = hashmap.New()

func Connected(conn *network.Conn, info *modelx.AuthInfo) *Player {
	player := &Player{
		ID:    info.ID,
		Name:  info.Name,
		Score: info.Score,
	}
	player.Conn(conn)
	players.Set(info.ID, player)
	return player
}

func GetPlayer(playerId int64) *Player {
	if v, ok := players.Get(playerId); ok {
		return v.(*Player)
	}
	return nil
}

func RegisterSession(s *session.Session) {
	sessions.Set(s.ID(), s)
}

func GetSession(id string) *session.Session {
	if v, ok := sessions.Get(id); ok {
		return v.(*session.Session)
	}
	return nil
}

func RemoveSession(id string) {
	sessions.Del(id)
}

// GetSessions lists live sessions, least recently used first.
func GetSessions() []*session.Session {
	list := make([]*session.Session, 0)
	sessions.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*session.Session))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].UpdatedAt().Before(list[j].UpdatedAt())
	})
	return list
}

// CloseSession saves an unfinished game, stops it and forgets it.
func CloseSession(s *session.Session) {
	if !s.Ended() {
		if err := SaveSession(context.Background(), s); err != nil {
			log.Errorf("save session %s on close: %v\n", s.ID(), err)
		}
	}
	s.Close()
	RemoveSession(s.ID())
}

// Sweep drops finished sessions and closes those untouched for longer than
// idle. It returns how many sessions were removed.
func Sweep(idle time.Duration) int {
	removed := 0
	now := time.Now()
	for _, s := range GetSessions() {
		switch {
		case s.Closed() || s.Ended():
			s.Close()
			RemoveSession(s.ID())
		case now.Sub(s.UpdatedAt()) > idle:
			log.Infof("session %s is idle, closed.\n", s.ID())
			CloseSession(s)
		default:
			continue
		}
		removed++
	}
	return removed
}

// StartSweeper runs Sweep every interval until ctx is done.
func StartSweeper(ctx context.Context, interval, idle time.Duration) {
	async.Async(func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				Sweep(idle)
			}
		}
	})
}

// Shutdown saves every live session and stops it.
func Shutdown() {
	for _, s := range GetSessions() {
		CloseSession(s)
	}
}
