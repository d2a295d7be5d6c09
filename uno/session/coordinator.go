package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/uno/game"
	"github.com/ratel-online/duel/uno/player"
)

type State int

const (
	Waiting State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "ACTIVE"
	}
	return "WAITING"
}

// Declarer is the machine's side of the UNO race.
type Declarer interface {
	Declare() bool
}

// Coordinator hands the turn between the human and the machine worker. The
// worker is parked on a single-slot wake channel while it does not hold the
// turn and leaves as soon as the coordinator is cancelled.
type Coordinator struct {
	sync.Mutex
	engine   *game.Game
	machine  *player.Machine
	declarer Declarer
	timing   Timing
	state    State
	wake     chan struct{}
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	started  bool
}

func NewCoordinator(engine *game.Game, machine *player.Machine, declarer Declarer, timing Timing) *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		engine:   engine,
		machine:  machine,
		declarer: declarer,
		timing:   timing,
		state:    Waiting,
		wake:     make(chan struct{}, 1),
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
}

// Start launches the worker once. A machine turn restored from a snapshot
// wakes it right away.
func (c *Coordinator) Start() {
	c.Lock()
	if c.started {
		c.Unlock()
		return
	}
	c.started = true
	c.Unlock()

	async.Async(c.run)
	if c.engine.Turn() == game.Machine {
		c.signal()
	}
}

// GrantTurn moves the turn and wakes the worker when it goes to the machine.
// The caller never waits for the machine to finish.
func (c *Coordinator) GrantTurn(to game.PlayerID) error {
	if err := c.engine.SetTurn(to); err != nil {
		return err
	}
	if to == game.Machine {
		c.signal()
	}
	return nil
}

func (c *Coordinator) IsTurnOf(actor game.PlayerID) bool {
	return !c.engine.Ended() && c.engine.Turn() == actor
}

// Cancel stops the worker. Safe to call more than once, and before Start.
func (c *Coordinator) Cancel() {
	c.cancel()
	c.Lock()
	defer c.Unlock()
	if !c.started {
		c.started = true
		close(c.done)
	}
}

// Done is closed once the worker has exited.
func (c *Coordinator) Done() <-chan struct{} {
	return c.done
}

func (c *Coordinator) State() State {
	c.Lock()
	defer c.Unlock()
	return c.state
}

func (c *Coordinator) signal() {
	select {
	case c.wake <- struct{}{}:
	default:
	}
}

func (c *Coordinator) setState(state State) {
	c.Lock()
	c.state = state
	c.Unlock()
}

func (c *Coordinator) run() {
	defer close(c.done)
	for {
		select {
		case <-c.ctx.Done():
			log.Infof("machine worker cancelled\n")
			return
		case <-c.wake:
		}
		if c.engine.IsGameOver() {
			return
		}
		if c.engine.Turn() != game.Machine {
			continue
		}
		c.setState(Active)
		ok := c.takeTurn()
		c.setState(Waiting)
		if !ok {
			return
		}
	}
}

// takeTurn plays one machine turn. It reports false when the worker should
// stop.
func (c *Coordinator) takeTurn() bool {
	if !c.sleep(c.timing.Think) {
		return false
	}

	index, ok := c.machine.Play(c.engine)
	if !ok {
		return c.drawOrPass()
	}

	outcome, err := c.engine.Play(game.Machine, index)
	if err != nil {
		log.Errorf("machine play %d failed: %v\n", index, err)
		return c.handOver(game.Human)
	}
	if outcome.GameOver {
		return false
	}
	if outcome.NeedsColor {
		chosen := player.PickOrDefault(c.machine, c.engine.ExtractState(game.Machine))
		if err := c.engine.ResolveWildColor(chosen); err != nil {
			log.Errorf("machine color %s refused: %v\n", chosen, err)
			return false
		}
	}
	if c.declarer != nil && c.engine.HandSize(game.Machine) == 1 {
		c.declarer.Declare()
	}
	return c.handOver(outcome.Next)
}

func (c *Coordinator) drawOrPass() bool {
	if !c.sleep(uniform(c.timing.DrawMin, c.timing.DrawMax)) {
		return false
	}
	if _, err := c.engine.Draw(game.Machine); err != nil {
		if !errors.Is(err, consts.ErrorsEmptyDeck) {
			log.Errorf("machine draw failed: %v\n", err)
			return false
		}
		if err := c.engine.Pass(game.Machine); err != nil {
			log.Errorf("machine pass failed: %v\n", err)
			return false
		}
	}
	return c.handOver(game.Human)
}

func (c *Coordinator) handOver(to game.PlayerID) bool {
	if err := c.GrantTurn(to); err != nil {
		if !errors.Is(err, consts.ErrorsGameOver) {
			log.Errorf("grant turn to %s failed: %v\n", to, err)
		}
		return false
	}
	return true
}

func (c *Coordinator) sleep(d time.Duration) bool {
	if d <= 0 {
		return c.ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-c.ctx.Done():
		return false
	}
}
