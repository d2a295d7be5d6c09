package session_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/uno/card"
	"github.com/ratel-online/duel/uno/card/color"
	"github.com/ratel-online/duel/uno/event"
	"github.com/ratel-online/duel/uno/game"
	"github.com/ratel-online/duel/uno/player"
	"github.com/ratel-online/duel/uno/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fast = session.Timing{
	Think:      time.Millisecond,
	DrawMin:    time.Millisecond,
	DrawMax:    2 * time.Millisecond,
	DeclareMin: 20 * time.Millisecond,
	DeclareMax: 30 * time.Millisecond,
}

// parked keeps the machine thinking so only the human moves.
var parked = session.Timing{
	Think:      time.Hour,
	DrawMin:    time.Millisecond,
	DrawMax:    time.Millisecond,
	DeclareMin: 20 * time.Millisecond,
	DeclareMax: 30 * time.Millisecond,
}

func faces(cardColor color.Color, values ...card.Value) []game.CardSnapshot {
	snapshots := make([]game.CardSnapshot, 0, len(values))
	for _, value := range values {
		snapshots = append(snapshots, game.CardSnapshot{
			ID:    uuid.NewString(),
			Color: cardColor.Name(),
			Value: value.String(),
		})
	}
	return snapshots
}

func restore(t *testing.T, snapshot game.Snapshot, opts session.Options) *session.Session {
	t.Helper()
	if snapshot.CurrentTurn == "" {
		snapshot.CurrentTurn = game.Human.String()
	}
	s, err := session.Restore(uuid.NewString(), snapshot, opts)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func totalCards(g *game.Game) int {
	return g.HandSize(game.Human) + g.HandSize(game.Machine) + g.DeckSize() + g.TableSize()
}

func countPayloads[T any](listener *event.DummyListener) int {
	count := 0
	for _, payload := range listener.ReceivedPayloads() {
		if _, ok := payload.(T); ok {
			count++
		}
	}
	return count
}

func TestNewSession(t *testing.T) {
	s, err := session.New(session.Options{Timing: parked})
	require.NoError(t, err)
	t.Cleanup(s.Close)

	g := s.Engine()
	require.NotEmpty(t, s.ID())
	require.Equal(t, consts.StartingHand, g.HandSize(game.Human))
	require.Equal(t, consts.StartingHand, g.HandSize(game.Machine))
	require.Equal(t, consts.DeckSize, totalCards(g))
	require.True(t, s.Coordinator().IsTurnOf(game.Human))
	require.Equal(t, session.Waiting, s.Coordinator().State())
}

func TestTurnsAlternate(t *testing.T) {
	listener := event.NewDummyListener()
	s := restore(t, game.Snapshot{
		Deck:        faces(color.Green, card.One, card.Two, card.Three, card.Four),
		HumanHand:   faces(color.Blue, card.Five, card.Seven, card.Eight),
		MachineHand: append(faces(color.Yellow, card.Nine), faces(color.Blue, card.Three)...),
		Table:       faces(color.Red, card.Five),
		ActiveColor: color.Red.Name(),
	}, session.Options{Timing: fast, Listeners: []interface{}{listener}})
	g := s.Engine()
	total := totalCards(g)

	outcome, err := s.PlayCard(0)
	require.NoError(t, err)
	require.Equal(t, game.Machine, outcome.Next)
	require.Equal(t, color.Blue, g.ActiveColor())

	require.Eventually(t, func() bool {
		return g.Turn() == game.Human && g.HandSize(game.Machine) == 1
	}, time.Second, 5*time.Millisecond)

	require.Equal(t, total, totalCards(g))
	top, err := g.Top()
	require.NoError(t, err)
	require.Equal(t, card.Three, top.Value())

	var turns []string
	for _, payload := range listener.ReceivedPayloads() {
		if granted, ok := payload.(event.TurnGrantedPayload); ok {
			turns = append(turns, granted.PlayerName)
		}
	}
	require.Equal(t, []string{"MACHINE", "HUMAN"}, turns)
	// the machine says UNO on its own
	require.Contains(t, listener.ReceivedPayloads(), event.UnoDeclaredPayload{PlayerName: "MACHINE"})
	require.True(t, s.Declaration(game.Machine).Declared())
}

func TestMachineDrawsWhenStuck(t *testing.T) {
	s := restore(t, game.Snapshot{
		Deck:        faces(color.Green, card.One, card.Two),
		HumanHand:   faces(color.Blue, card.Five, card.Seven),
		MachineHand: faces(color.Yellow, card.Nine, card.Eight),
		Table:       faces(color.Red, card.Five),
		ActiveColor: color.Red.Name(),
	}, session.Options{Timing: fast})
	g := s.Engine()

	_, err := s.PlayCard(0)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return g.Turn() == game.Human && g.HandSize(game.Machine) == 3
	}, time.Second, 5*time.Millisecond)
	require.Equal(t, 1, g.DeckSize())
}

func TestMachinePassesOnEmptyDeck(t *testing.T) {
	listener := event.NewDummyListener()
	s := restore(t, game.Snapshot{
		HumanHand:   faces(color.Blue, card.Five, card.Seven),
		MachineHand: faces(color.Yellow, card.Nine, card.Eight),
		Table:       faces(color.Red, card.Five),
		ActiveColor: color.Red.Name(),
	}, session.Options{Timing: fast, Listeners: []interface{}{listener}})
	g := s.Engine()

	_, err := s.PlayCard(0)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return g.Turn() == game.Human
	}, time.Second, 5*time.Millisecond)
	require.Contains(t, listener.ReceivedPayloads(), event.PlayerPassedPayload{PlayerName: "MACHINE"})
	require.Equal(t, 2, g.HandSize(game.Machine))
}

func TestMachineSkipPlaysAgain(t *testing.T) {
	s := restore(t, game.Snapshot{
		Deck:        faces(color.Green, card.One, card.Two, card.Three),
		HumanHand:   faces(color.Blue, card.Five, card.Seven),
		MachineHand: faces(color.Blue, card.Skip, card.One, card.Nine),
		Table:       faces(color.Red, card.Five),
		ActiveColor: color.Red.Name(),
	}, session.Options{Timing: fast})
	g := s.Engine()

	_, err := s.PlayCard(0)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return g.Turn() == game.Human && g.HandSize(game.Machine) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestDeclaration(t *testing.T) {
	newDuel := func(t *testing.T, listener *event.DummyListener) *session.Session {
		return restore(t, game.Snapshot{
			Deck:        faces(color.Green, card.One, card.Two, card.Three),
			HumanHand:   faces(color.Blue, card.Five, card.Seven),
			MachineHand: faces(color.Yellow, card.Nine, card.Eight),
			Table:       faces(color.Red, card.Five),
			ActiveColor: color.Red.Name(),
		}, session.Options{Timing: parked, Listeners: []interface{}{listener}})
	}

	t.Run("is_refused_with_more_than_one_card", func(t *testing.T) {
		s := newDuel(t, event.NewDummyListener())
		require.False(t, s.DeclareUno())
		require.False(t, s.Declaration(game.Human).Pending())
	})

	t.Run("in_time_cancels_the_penalty", func(t *testing.T) {
		listener := event.NewDummyListener()
		s := newDuel(t, listener)

		_, err := s.PlayCard(0)
		require.NoError(t, err)
		require.True(t, s.Declaration(game.Human).Pending())
		require.True(t, s.DeclareUno())
		require.False(t, s.Declaration(game.Human).Pending())

		time.Sleep(100 * time.Millisecond)
		require.Equal(t, 1, s.Engine().HandSize(game.Human))
		require.Equal(t, 0, countPayloads[event.UnoPenaltyPayload](listener))
		require.Equal(t, 1, countPayloads[event.UnoDeclaredPayload](listener))
	})

	t.Run("timeout_draws_exactly_one_card", func(t *testing.T) {
		listener := event.NewDummyListener()
		s := newDuel(t, listener)

		_, err := s.PlayCard(0)
		require.NoError(t, err)

		require.Eventually(t, func() bool {
			return s.Engine().HandSize(game.Human) == 2
		}, time.Second, 5*time.Millisecond)
		time.Sleep(100 * time.Millisecond)
		require.Equal(t, 2, s.Engine().HandSize(game.Human))
		require.Equal(t, 1, countPayloads[event.UnoPenaltyPayload](listener))
		require.False(t, s.Declaration(game.Human).Pending())
		require.False(t, s.DeclareUno())
	})

	t.Run("slow_wild_color_does_not_eat_the_window", func(t *testing.T) {
		listener := event.NewDummyListener()
		penaltiesWhilePicking := -1
		picker := player.ColorPickerFunc(func(game.State) (color.Color, error) {
			time.Sleep(100 * time.Millisecond)
			penaltiesWhilePicking = countPayloads[event.UnoPenaltyPayload](listener)
			return color.Blue, nil
		})
		s := restore(t, game.Snapshot{
			Deck:        faces(color.Green, card.One, card.Two),
			HumanHand:   append(faces(color.Wild, card.Wild), faces(color.Blue, card.Seven)...),
			MachineHand: faces(color.Yellow, card.Nine, card.Eight),
			Table:       faces(color.Red, card.Five),
			ActiveColor: color.Red.Name(),
		}, session.Options{Timing: parked, HumanPicker: picker, Listeners: []interface{}{listener}})

		_, err := s.PlayCard(0)
		require.NoError(t, err)
		require.Equal(t, 0, penaltiesWhilePicking)
		require.True(t, s.DeclareUno())

		time.Sleep(100 * time.Millisecond)
		require.Equal(t, 1, s.Engine().HandSize(game.Human))
		require.Equal(t, 0, countPayloads[event.UnoPenaltyPayload](listener))
	})

	t.Run("slow_wild_color_then_silence_is_penalized", func(t *testing.T) {
		listener := event.NewDummyListener()
		picker := player.ColorPickerFunc(func(game.State) (color.Color, error) {
			time.Sleep(100 * time.Millisecond)
			return color.Blue, nil
		})
		s := restore(t, game.Snapshot{
			Deck:        faces(color.Green, card.One, card.Two),
			HumanHand:   append(faces(color.Wild, card.Wild), faces(color.Blue, card.Seven)...),
			MachineHand: faces(color.Yellow, card.Nine, card.Eight),
			Table:       faces(color.Red, card.Five),
			ActiveColor: color.Red.Name(),
		}, session.Options{Timing: parked, HumanPicker: picker, Listeners: []interface{}{listener}})

		_, err := s.PlayCard(0)
		require.NoError(t, err)
		require.True(t, s.Declaration(game.Human).Pending())
		require.Eventually(t, func() bool {
			return s.Engine().HandSize(game.Human) == 2
		}, time.Second, 5*time.Millisecond)
		require.Equal(t, color.Blue, s.Engine().ActiveColor())
	})

	t.Run("penalty_clears_a_late_call", func(t *testing.T) {
		listener := event.NewDummyListener()
		s := newDuel(t, listener)

		_, err := s.PlayCard(0)
		require.NoError(t, err)
		require.Eventually(t, func() bool {
			return s.Engine().HandSize(game.Human) == 2
		}, time.Second, 5*time.Millisecond)

		require.False(t, s.DeclareUno())
		require.False(t, s.Declaration(game.Human).Declared())
		require.False(t, s.Engine().Declared(game.Human))
	})

	t.Run("cancelled_timer_never_fires", func(t *testing.T) {
		listener := event.NewDummyListener()
		s := newDuel(t, listener)

		_, err := s.PlayCard(0)
		require.NoError(t, err)
		s.Close()

		time.Sleep(100 * time.Millisecond)
		require.Equal(t, 1, s.Engine().HandSize(game.Human))
		require.Equal(t, 0, countPayloads[event.UnoPenaltyPayload](listener))
	})
}

func TestHumanCommands(t *testing.T) {
	t.Run("draw_hands_the_turn_to_the_machine", func(t *testing.T) {
		s := restore(t, game.Snapshot{
			Deck:        faces(color.Green, card.One),
			HumanHand:   faces(color.Blue, card.Five, card.Seven),
			MachineHand: faces(color.Yellow, card.Nine),
			Table:       faces(color.Red, card.Five),
			ActiveColor: color.Red.Name(),
		}, session.Options{Timing: parked})

		drawn, err := s.DrawCard()
		require.NoError(t, err)
		require.Equal(t, color.Green, drawn.Color())
		require.True(t, s.Coordinator().IsTurnOf(game.Machine))
		require.Eventually(t, func() bool {
			return s.Coordinator().State() == session.Active
		}, time.Second, 5*time.Millisecond)

		_, err = s.PlayCard(0)
		require.ErrorIs(t, err, consts.ErrorsNotYourTurn)
	})

	t.Run("draw_on_empty_deck_is_refused_while_a_card_fits", func(t *testing.T) {
		s := restore(t, game.Snapshot{
			HumanHand:   faces(color.Blue, card.Five, card.Seven),
			MachineHand: faces(color.Yellow, card.Nine),
			Table:       faces(color.Red, card.Five),
			ActiveColor: color.Red.Name(),
		}, session.Options{Timing: parked})

		_, err := s.DrawCard()
		require.ErrorIs(t, err, consts.ErrorsEmptyDeck)
		require.True(t, s.Coordinator().IsTurnOf(game.Human))
	})

	t.Run("draw_on_empty_deck_passes_when_stuck", func(t *testing.T) {
		s := restore(t, game.Snapshot{
			HumanHand:   faces(color.Blue, card.Six, card.Seven),
			MachineHand: faces(color.Yellow, card.Nine),
			Table:       faces(color.Red, card.Five),
			ActiveColor: color.Red.Name(),
		}, session.Options{Timing: parked})

		_, err := s.DrawCard()
		require.NoError(t, err)
		require.True(t, s.Coordinator().IsTurnOf(game.Machine))
	})

	t.Run("wild_color_comes_from_the_picker", func(t *testing.T) {
		picker := player.ColorPickerFunc(func(game.State) (color.Color, error) {
			return color.Green, nil
		})
		s := restore(t, game.Snapshot{
			Deck:        faces(color.Green, card.One),
			HumanHand:   append(faces(color.Wild, card.Wild), faces(color.Blue, card.Seven)...),
			MachineHand: faces(color.Yellow, card.Nine),
			Table:       faces(color.Red, card.Five),
			ActiveColor: color.Red.Name(),
		}, session.Options{Timing: parked, HumanPicker: picker})

		outcome, err := s.PlayCard(0)
		require.NoError(t, err)
		require.True(t, outcome.NeedsColor)
		require.Equal(t, color.Green, s.Engine().ActiveColor())
		require.True(t, s.Coordinator().IsTurnOf(game.Machine))
	})

	t.Run("pagination", func(t *testing.T) {
		s := restore(t, game.Snapshot{
			HumanHand:   faces(color.Blue, card.One, card.Two, card.Three, card.Four, card.Five, card.Six),
			MachineHand: faces(color.Yellow, card.Nine),
			Table:       faces(color.Red, card.Five),
			ActiveColor: color.Red.Name(),
		}, session.Options{Timing: parked})

		require.False(t, s.ScrollBack())
		require.Len(t, s.VisibleCards(), consts.VisibleCards)
		require.True(t, s.ScrollNext())
		require.True(t, s.ScrollNext())
		require.False(t, s.ScrollNext())
		require.Equal(t, 2, s.Offset())
		visible := s.VisibleCards()
		require.Len(t, visible, consts.VisibleCards)
		assert.Equal(t, card.Three, visible[0].Value())

		// playing shrinks the hand and pulls the window back
		_, err := s.PlayCard(4)
		require.NoError(t, err)
		require.Equal(t, 1, s.Offset())
		require.True(t, s.ScrollBack())
		require.Equal(t, 0, s.Offset())
	})
}

func TestGameOverStopsTheWorker(t *testing.T) {
	listener := event.NewDummyListener()
	s := restore(t, game.Snapshot{
		Deck:        faces(color.Green, card.One),
		HumanHand:   faces(color.Blue, card.Five),
		MachineHand: faces(color.Yellow, card.Nine),
		Table:       faces(color.Red, card.Five),
		ActiveColor: color.Red.Name(),
	}, session.Options{Timing: parked, Listeners: []interface{}{listener}})

	outcome, err := s.PlayCard(0)
	require.NoError(t, err)
	require.True(t, outcome.GameOver)
	require.True(t, s.Ended())

	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("worker still running after game over")
	}
	require.True(t, s.Closed())
	require.Contains(t, listener.ReceivedPayloads(), event.GameOverPayload{Winner: "HUMAN"})
	require.ErrorIs(t, s.Coordinator().GrantTurn(game.Machine), consts.ErrorsGameOver)
}

func TestCancelUnblocksParkedWorker(t *testing.T) {
	s := restore(t, game.Snapshot{
		Deck:        faces(color.Green, card.One),
		HumanHand:   faces(color.Blue, card.Five, card.Six),
		MachineHand: faces(color.Yellow, card.Nine),
		Table:       faces(color.Red, card.Five),
		ActiveColor: color.Red.Name(),
	}, session.Options{Timing: parked})

	require.Equal(t, session.Waiting, s.Coordinator().State())
	s.Close()
	s.Close()

	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("parked worker did not exit")
	}
}

func TestRestoreResumesMachineTurn(t *testing.T) {
	s := restore(t, game.Snapshot{
		Deck:        faces(color.Green, card.One),
		HumanHand:   faces(color.Blue, card.Five, card.Six),
		MachineHand: faces(color.Red, card.Nine, card.Eight),
		Table:       faces(color.Red, card.Five),
		ActiveColor: color.Red.Name(),
		CurrentTurn: game.Machine.String(),
	}, session.Options{Timing: fast})

	require.Eventually(t, func() bool {
		return s.Engine().Turn() == game.Human && s.Engine().HandSize(game.Machine) == 1
	}, time.Second, 5*time.Millisecond)
}

func TestRestoreResolvesPendingColor(t *testing.T) {
	snapshot := game.Snapshot{
		Deck:         faces(color.Green, card.One),
		HumanHand:    faces(color.Blue, card.Five, card.Six),
		MachineHand:  faces(color.Yellow, card.Nine),
		Table:        faces(color.Wild, card.Wild),
		ActiveColor:  color.Red.Name(),
		ColorPending: true,
	}
	s := restore(t, snapshot, session.Options{Timing: parked})

	require.False(t, s.Engine().ColorPending())
	require.Equal(t, color.Red, s.Engine().ActiveColor())
}

func TestRestoreArmsTheDeclarationTimer(t *testing.T) {
	s := restore(t, game.Snapshot{
		Deck:        faces(color.Green, card.One, card.Two),
		HumanHand:   faces(color.Blue, card.Five),
		MachineHand: faces(color.Yellow, card.Nine),
		Table:       faces(color.Red, card.Five),
		ActiveColor: color.Red.Name(),
	}, session.Options{Timing: parked})

	require.True(t, s.Declaration(game.Human).Pending())
	require.Eventually(t, func() bool {
		return s.Engine().HandSize(game.Human) == 2
	}, time.Second, 5*time.Millisecond)
}

func TestSnapshotRoundTrip(t *testing.T) {
	s, err := session.New(session.Options{Timing: parked})
	require.NoError(t, err)
	t.Cleanup(s.Close)

	restored, err := session.Restore(s.ID(), s.Snapshot(), session.Options{Timing: parked})
	require.NoError(t, err)
	t.Cleanup(restored.Close)

	require.Equal(t, s.ID(), restored.ID())
	require.Equal(t, s.Snapshot(), restored.Snapshot())
}
