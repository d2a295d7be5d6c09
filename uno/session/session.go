package session

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/uno/card"
	"github.com/ratel-online/duel/uno/event"
	"github.com/ratel-online/duel/uno/game"
	"github.com/ratel-online/duel/uno/player"
)

type Options struct {
	Timing Timing
	// HumanPicker is asked for the color after the human plays a wild card.
	HumanPicker player.ColorPicker
	// Machine defaults to a randomly named bot.
	Machine *player.Machine
	// Listeners are subscribed before any card moves.
	Listeners []interface{}
}

// Session is one human against the machine. Human commands are serialized by
// the session lock; game state itself is guarded by the engine.
type Session struct {
	sync.Mutex
	id           string
	engine       *game.Game
	coordinator  *Coordinator
	declarations map[game.PlayerID]*DeclarationTimer
	machine      *player.Machine
	humanPicker  player.ColorPicker
	offset       int
	updatedAt    time.Time
	closed       atomic.Bool
}

// New deals a fresh game and starts the machine worker.
func New(opts Options) (*Session, error) {
	bus := event.NewBus()
	s := newSession(uuid.NewString(), game.New(bus), opts)
	if err := s.engine.Start(); err != nil {
		s.Close()
		return nil, fmt.Errorf("start game: %w", err)
	}
	s.coordinator.Start()
	log.Infof("session %s started\n", s.id)
	return s, nil
}

// Restore resumes a saved game under its previous id. Timers and the worker
// are rebuilt from the restored hands and turn.
func Restore(id string, snapshot game.Snapshot, opts Options) (*Session, error) {
	engine, err := game.Restore(snapshot, event.NewBus())
	if err != nil {
		return nil, fmt.Errorf("restore session %s: %w", id, err)
	}
	s := newSession(id, engine, opts)

	if engine.ColorPending() {
		picker := player.ColorPicker(s.machine)
		if engine.Turn() == game.Human {
			picker = s.humanPicker
		}
		chosen := player.PickOrDefault(picker, engine.ExtractState(engine.Turn()))
		if err := engine.ResolveWildColor(chosen); err != nil {
			s.Close()
			return nil, fmt.Errorf("restore session %s: %w", id, err)
		}
	}
	if engine.HandSize(game.Machine) == 1 {
		s.declarations[game.Machine].HandSizeChanged(1)
		s.declarations[game.Machine].Declare()
	}
	s.declarations[game.Human].HandSizeChanged(engine.HandSize(game.Human))

	if engine.IsGameOver() {
		s.Close()
		return s, nil
	}
	s.coordinator.Start()
	log.Infof("session %s restored\n", s.id)
	return s, nil
}

func newSession(id string, engine *game.Game, opts Options) *Session {
	if opts.Timing == (Timing{}) {
		opts.Timing = DefaultTiming()
	}
	if opts.Machine == nil {
		opts.Machine = player.CreateMachine()
	}
	s := &Session{
		id:          id,
		engine:      engine,
		machine:     opts.Machine,
		humanPicker: opts.HumanPicker,
		updatedAt:   time.Now(),
	}
	s.declarations = map[game.PlayerID]*DeclarationTimer{
		game.Human:   NewDeclarationTimer(engine, game.Human, opts.Timing.DeclareMin, opts.Timing.DeclareMax),
		game.Machine: NewDeclarationTimer(engine, game.Machine, opts.Timing.DeclareMin, opts.Timing.DeclareMax),
	}
	s.coordinator = NewCoordinator(engine, opts.Machine, s.declarations[game.Machine], opts.Timing)

	bus := engine.Events()
	for _, timer := range s.declarations {
		bus.Subscribe(timer)
	}
	bus.GameOver.AddListener(s)
	for _, listener := range opts.Listeners {
		bus.Subscribe(listener)
	}
	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Engine() *game.Game {
	return s.engine
}

func (s *Session) Coordinator() *Coordinator {
	return s.coordinator
}

func (s *Session) Declaration(id game.PlayerID) *DeclarationTimer {
	return s.declarations[id]
}

func (s *Session) Machine() *player.Machine {
	return s.machine
}

// PlayCard plays the card at index of the human hand, resolves a wild color
// and hands the turn over.
func (s *Session) PlayCard(index int) (game.Outcome, error) {
	s.Lock()
	defer s.Unlock()
	s.touch()

	outcome, err := s.engine.Play(game.Human, index)
	if err != nil {
		return game.Outcome{}, err
	}
	if outcome.GameOver {
		return outcome, nil
	}
	if outcome.NeedsColor {
		chosen := player.PickOrDefault(s.humanPicker, s.engine.ExtractState(game.Human))
		if err := s.engine.ResolveWildColor(chosen); err != nil {
			return outcome, err
		}
	}
	s.clampOffset()
	return outcome, s.coordinator.GrantTurn(outcome.Next)
}

// DrawCard takes one card and ends the human turn. With an empty deck the
// turn is passed instead, unless a legal card is still in hand.
func (s *Session) DrawCard() (card.Card, error) {
	s.Lock()
	defer s.Unlock()
	s.touch()

	drawn, err := s.engine.Draw(game.Human)
	if err != nil {
		if !errors.Is(err, consts.ErrorsEmptyDeck) {
			return card.Card{}, err
		}
		if passErr := s.engine.Pass(game.Human); passErr != nil {
			return card.Card{}, err
		}
		return card.Card{}, s.coordinator.GrantTurn(game.Machine)
	}
	return drawn, s.coordinator.GrantTurn(game.Machine)
}

func (s *Session) Pass() error {
	s.Lock()
	defer s.Unlock()
	s.touch()

	if err := s.engine.Pass(game.Human); err != nil {
		return err
	}
	return s.coordinator.GrantTurn(game.Machine)
}

func (s *Session) DeclareUno() bool {
	s.Lock()
	defer s.Unlock()
	s.touch()
	return s.declarations[game.Human].Declare()
}

func (s *Session) ScrollBack() bool {
	s.Lock()
	defer s.Unlock()
	s.clampOffset()
	if s.offset > 0 {
		s.offset--
		return true
	}
	return false
}

func (s *Session) ScrollNext() bool {
	s.Lock()
	defer s.Unlock()
	s.clampOffset()
	if s.offset < s.engine.HandSize(game.Human)-consts.VisibleCards {
		s.offset++
		return true
	}
	return false
}

func (s *Session) Offset() int {
	s.Lock()
	defer s.Unlock()
	s.clampOffset()
	return s.offset
}

// VisibleCards is the page of the human hand currently shown.
func (s *Session) VisibleCards() []card.Card {
	s.Lock()
	defer s.Unlock()
	s.clampOffset()
	return s.engine.VisibleCards(game.Human, s.offset, consts.VisibleCards)
}

func (s *Session) State() game.State {
	return s.engine.ExtractState(game.Human)
}

func (s *Session) Snapshot() game.Snapshot {
	return s.engine.Snapshot()
}

func (s *Session) Ended() bool {
	return s.engine.IsGameOver()
}

// Closed reports whether the session no longer runs a worker.
func (s *Session) Closed() bool {
	return s.closed.Load()
}

func (s *Session) UpdatedAt() time.Time {
	s.Lock()
	defer s.Unlock()
	return s.updatedAt
}

// Done is closed once the machine worker has exited.
func (s *Session) Done() <-chan struct{} {
	return s.coordinator.Done()
}

// Close stops the worker and every declaration timer.
func (s *Session) Close() {
	s.Lock()
	defer s.Unlock()
	s.shutdown()
}

func (s *Session) OnGameOver(payload event.GameOverPayload) {
	log.Infof("session %s over, winner %s\n", s.id, payload.Winner)
	s.shutdown()
}

// shutdown may run with or without the session lock held, it only touches
// components with their own locks.
func (s *Session) shutdown() {
	s.coordinator.Cancel()
	for _, timer := range s.declarations {
		timer.Cancel()
	}
	s.closed.Store(true)
}

func (s *Session) touch() {
	s.updatedAt = time.Now()
}

func (s *Session) clampOffset() {
	size := s.engine.HandSize(game.Human)
	if s.offset > 0 && s.offset > size-consts.VisibleCards {
		s.offset = max(0, size-consts.VisibleCards)
	}
}
