package state

import (
	"errors"
	"sync"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/database"
	"github.com/ratel-online/duel/uno/session"
)

var states = map[consts.StateID]State{}

var (
	timingMu sync.RWMutex
	timing   = session.DefaultTiming()
)

func init() {
	register(consts.StateWelcome, &welcome{})
	register(consts.StateHome, &home{})
	register(consts.StateNew, &newDuel{})
	register(consts.StateLoad, &load{})
	register(consts.StateDuel, &duel{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

type State interface {
	Next(player *database.Player) (consts.StateID, error)
}

// SetTiming sets the pacing used by games started from now on.
func SetTiming(t session.Timing) {
	timingMu.Lock()
	defer timingMu.Unlock()
	timing = t
}

func getTiming() session.Timing {
	timingMu.RLock()
	defer timingMu.RUnlock()
	return timing
}

// Run drives a connected player through the states until they leave or the
// connection breaks.
func Run(player *database.Player) {
	defer player.Disconnect()
	player.State(consts.StateWelcome)
	for {
		state := states[player.GetState()]
		stateId, err := state.Next(player)
		if err != nil {
			var e consts.Error
			if errors.As(err, &e) && e.Exit {
				return
			}
			log.Error(err)
			_ = player.WriteError(err)
			stateId = consts.StateHome
		}
		if stateId > 0 {
			player.State(stateId)
		}
	}
}
