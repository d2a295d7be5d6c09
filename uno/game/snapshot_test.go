package game_test

import (
	"testing"

	"github.com/ratel-online/duel/uno/card"
	"github.com/ratel-online/duel/uno/card/color"
	"github.com/ratel-online/duel/uno/game"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	g := game.New(nil)
	require.NoError(t, g.Start())

	index, ok := g.FirstPlayable(game.Human)
	if ok {
		outcome, err := g.Play(game.Human, index)
		require.NoError(t, err)
		if outcome.NeedsColor {
			require.NoError(t, g.ResolveWildColor(color.Blue))
		}
	}

	snapshot := g.Snapshot()
	restored, err := game.Restore(snapshot, nil)
	require.NoError(t, err)

	require.Equal(t, snapshot, restored.Snapshot())
	require.Equal(t, g.Hand(game.Human), restored.Hand(game.Human))
	require.Equal(t, g.Hand(game.Machine), restored.Hand(game.Machine))
	require.Equal(t, g.ActiveColor(), restored.ActiveColor())
	require.Equal(t, g.Turn(), restored.Turn())
}

func TestSnapshotKeepsPendingColor(t *testing.T) {
	g := newGame(t, layout{
		deck:        numbers(color.Red, card.One),
		human:       []card.Card{card.New(color.Wild, card.Wild), card.New(color.Red, card.Two)},
		machine:     numbers(color.Red, card.Three),
		table:       numbers(color.Green, card.Five),
		activeColor: color.Green,
	}, nil)
	_, err := g.Play(game.Human, 0)
	require.NoError(t, err)

	restored, err := game.Restore(g.Snapshot(), nil)
	require.NoError(t, err)
	require.True(t, restored.ColorPending())
	require.NoError(t, restored.ResolveWildColor(color.Yellow))
}

func TestRestoreLatchesGameOver(t *testing.T) {
	g := newGame(t, layout{
		human:       numbers(color.Green, card.One),
		machine:     numbers(color.Red, card.Three),
		table:       numbers(color.Green, card.Five),
		activeColor: color.Green,
	}, nil)
	_, err := g.Play(game.Human, 0)
	require.NoError(t, err)

	restored, err := game.Restore(g.Snapshot(), nil)
	require.NoError(t, err)
	require.True(t, restored.IsGameOver())
	winner, ok := restored.Winner()
	require.True(t, ok)
	require.Equal(t, game.Human, winner)
}

func TestRestoreRejectsBrokenSnapshots(t *testing.T) {
	valid := game.CardSnapshot{ID: "9b2f4f1e-6a51-4d36-9d55-6f0a8f7c3e21", Color: "red", Value: "7"}

	tests := []struct {
		name     string
		snapshot game.Snapshot
	}{
		{
			name: "bad_card_id",
			snapshot: game.Snapshot{
				Deck:        []game.CardSnapshot{{ID: "nope", Color: "red", Value: "7"}},
				ActiveColor: "red", CurrentTurn: "HUMAN",
			},
		},
		{
			name: "bad_card_value",
			snapshot: game.Snapshot{
				HumanHand:   []game.CardSnapshot{{ID: valid.ID, Color: "red", Value: "ELEVEN"}},
				ActiveColor: "red", CurrentTurn: "HUMAN",
			},
		},
		{
			name: "bad_active_color",
			snapshot: game.Snapshot{
				Table:       []game.CardSnapshot{valid},
				ActiveColor: "purple", CurrentTurn: "HUMAN",
			},
		},
		{
			name: "bad_turn",
			snapshot: game.Snapshot{
				Table:       []game.CardSnapshot{valid},
				ActiveColor: "red", CurrentTurn: "NOBODY",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := game.Restore(test.snapshot, nil)
			require.Error(t, err)
		})
	}
}
