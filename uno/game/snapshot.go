package game

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/ratel-online/duel/uno/card"
	"github.com/ratel-online/duel/uno/card/color"
	"github.com/ratel-online/duel/uno/event"
)

// CardSnapshot is the plain-data form of a card.
type CardSnapshot struct {
	ID    string `json:"id"`
	Color string `json:"color"`
	Value string `json:"value"`
}

// Snapshot is the full persisted game graph. It carries no presentation
// state; renderers rebuild theirs from the restored game.
type Snapshot struct {
	Deck         []CardSnapshot `json:"deck"`
	HumanHand    []CardSnapshot `json:"human_hand"`
	MachineHand  []CardSnapshot `json:"machine_hand"`
	Table        []CardSnapshot `json:"table"`
	ActiveColor  string         `json:"active_color"`
	CurrentTurn  string         `json:"current_turn"`
	Ended        bool           `json:"ended"`
	ColorPending bool           `json:"color_pending"`
}

func (g *Game) Snapshot() Snapshot {
	g.Lock()
	defer g.Unlock()
	return Snapshot{
		Deck:         snapshotCards(g.deck.cards),
		HumanHand:    snapshotCards(g.players[Human].hand.cards),
		MachineHand:  snapshotCards(g.players[Machine].hand.cards),
		Table:        snapshotCards(g.table.cards),
		ActiveColor:  g.table.ActiveColor().Name(),
		CurrentTurn:  g.turn.String(),
		Ended:        g.ended,
		ColorPending: g.colorPending,
	}
}

// Restore rebuilds a game from a snapshot without emitting any event.
func Restore(snapshot Snapshot, bus *event.Bus) (*Game, error) {
	deckCards, err := restoreCards(snapshot.Deck)
	if err != nil {
		return nil, fmt.Errorf("restore deck: %w", err)
	}
	humanCards, err := restoreCards(snapshot.HumanHand)
	if err != nil {
		return nil, fmt.Errorf("restore human hand: %w", err)
	}
	machineCards, err := restoreCards(snapshot.MachineHand)
	if err != nil {
		return nil, fmt.Errorf("restore machine hand: %w", err)
	}
	tableCards, err := restoreCards(snapshot.Table)
	if err != nil {
		return nil, fmt.Errorf("restore table: %w", err)
	}
	activeColor, err := color.ByName(snapshot.ActiveColor)
	if err != nil {
		return nil, fmt.Errorf("restore active color: %w", err)
	}
	turn, err := ParsePlayerID(snapshot.CurrentTurn)
	if err != nil {
		return nil, fmt.Errorf("restore turn: %w", err)
	}

	g := NewWithDeck(RestoreDeck(deckCards), bus)
	g.table = RestoreTable(tableCards, activeColor)
	g.players[Human].hand.AddCards(humanCards)
	g.players[Machine].hand.AddCards(machineCards)
	g.turn = turn
	g.dealt = true
	g.ended = snapshot.Ended
	g.colorPending = snapshot.ColorPending && !snapshot.Ended
	g.latchGameOver()
	return g, nil
}

func snapshotCards(cards []card.Card) []CardSnapshot {
	snapshots := make([]CardSnapshot, 0, len(cards))
	for _, c := range cards {
		snapshots = append(snapshots, CardSnapshot{
			ID:    c.ID().String(),
			Color: c.Color().Name(),
			Value: c.Value().String(),
		})
	}
	return snapshots
}

func restoreCards(snapshots []CardSnapshot) ([]card.Card, error) {
	cards := make([]card.Card, 0, len(snapshots))
	for _, snapshot := range snapshots {
		id, err := uuid.Parse(snapshot.ID)
		if err != nil {
			return nil, err
		}
		cardColor, err := color.ByName(snapshot.Color)
		if err != nil {
			return nil, err
		}
		value, err := card.ValueByName(snapshot.Value)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card.Restore(id, cardColor, value))
	}
	return cards, nil
}
