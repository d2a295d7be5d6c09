package game_test

import (
	"testing"

	"github.com/ratel-online/duel/uno/card"
	"github.com/ratel-online/duel/uno/card/color"
	"github.com/ratel-online/duel/uno/event"
	"github.com/ratel-online/duel/uno/game"
	"github.com/stretchr/testify/require"
)

type layout struct {
	deck        []card.Card
	human       []card.Card
	machine     []card.Card
	table       []card.Card
	activeColor color.Color
	turn        game.PlayerID
}

func snapshotOf(cards []card.Card) []game.CardSnapshot {
	snapshots := make([]game.CardSnapshot, 0, len(cards))
	for _, c := range cards {
		snapshots = append(snapshots, game.CardSnapshot{
			ID:    c.ID().String(),
			Color: c.Color().Name(),
			Value: c.Value().String(),
		})
	}
	return snapshots
}

func newGame(t *testing.T, l layout, bus *event.Bus) *game.Game {
	t.Helper()
	if l.turn == "" {
		l.turn = game.Human
	}
	g, err := game.Restore(game.Snapshot{
		Deck:        snapshotOf(l.deck),
		HumanHand:   snapshotOf(l.human),
		MachineHand: snapshotOf(l.machine),
		Table:       snapshotOf(l.table),
		ActiveColor: l.activeColor.Name(),
		CurrentTurn: l.turn.String(),
	}, bus)
	require.NoError(t, err)
	return g
}

func numbers(cardColor color.Color, values ...card.Value) []card.Card {
	cards := make([]card.Card, 0, len(values))
	for _, value := range values {
		cards = append(cards, card.New(cardColor, value))
	}
	return cards
}
