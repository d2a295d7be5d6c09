package session

import (
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/duel/uno/event"
	"github.com/ratel-online/duel/uno/game"
)

// DeclarationTimer races a player's UNO call against a randomized window.
// It follows the player's hand size through the event bus: reaching one card
// without a call arms a fresh timer, once any wild color has been chosen. The
// call itself is recorded by the engine so the penalty can never land on a
// player who already declared.
type DeclarationTimer struct {
	sync.Mutex
	engine     *game.Game
	player     game.PlayerID
	min        time.Duration
	max        time.Duration
	pending    bool
	cancelled  bool
	generation uint64
	timer      *time.Timer
}

func NewDeclarationTimer(engine *game.Game, player game.PlayerID, min, max time.Duration) *DeclarationTimer {
	return &DeclarationTimer{engine: engine, player: player, min: min, max: max}
}

func (d *DeclarationTimer) OnCardPlayed(payload event.CardPlayedPayload) {
	if payload.PlayerName == d.player.String() {
		d.HandSizeChanged(payload.HandSize)
	}
}

func (d *DeclarationTimer) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if payload.PlayerName == d.player.String() {
		d.HandSizeChanged(payload.HandSize)
	}
}

// OnColorPicked arms the timer held back while the wild color was open.
func (d *DeclarationTimer) OnColorPicked(payload event.ColorPickedPayload) {
	if payload.PlayerName == d.player.String() {
		d.HandSizeChanged(d.engine.HandSize(d.player))
	}
}

func (d *DeclarationTimer) HandSizeChanged(size int) {
	d.Lock()
	defer d.Unlock()
	if d.cancelled {
		return
	}
	if size != 1 {
		d.disarm()
		return
	}
	if d.engine.ColorPending() || d.engine.Declared(d.player) {
		d.disarm()
		return
	}
	d.arm()
}

// Declare records the call. It only counts with exactly one card in hand.
func (d *DeclarationTimer) Declare() bool {
	d.Lock()
	defer d.Unlock()
	if d.cancelled {
		return false
	}
	if !d.engine.DeclareUno(d.player) {
		return false
	}
	d.disarm()
	return true
}

func (d *DeclarationTimer) Declared() bool {
	return d.engine.Declared(d.player)
}

// Pending reports whether a penalty timer is armed.
func (d *DeclarationTimer) Pending() bool {
	d.Lock()
	defer d.Unlock()
	return d.pending
}

// Cancel disarms the timer for good. Callbacks already in flight are ignored.
func (d *DeclarationTimer) Cancel() {
	d.Lock()
	defer d.Unlock()
	d.cancelled = true
	d.disarm()
}

func (d *DeclarationTimer) arm() {
	d.disarm()
	d.pending = true
	generation := d.generation
	d.timer = time.AfterFunc(uniform(d.min, d.max), func() {
		d.fire(generation)
	})
}

// disarm stops the current timer and invalidates its callback.
func (d *DeclarationTimer) disarm() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = false
	d.generation++
}

// fire runs the penalty. The engine checks the call and the hand size under
// its own lock, so a declaration racing the timer either wins or is refused.
func (d *DeclarationTimer) fire(generation uint64) {
	d.Lock()
	if d.cancelled || generation != d.generation || !d.pending {
		d.Unlock()
		return
	}
	d.pending = false
	d.timer = nil
	d.Unlock()

	if d.engine.PenalizeSilence(d.player) {
		log.Infof("%s did not say uno in time, penalty applied\n", d.player)
	}
}
