package game

import (
	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/uno/card"
	"github.com/ratel-online/duel/uno/card/color"
)

// Table is the discard pile plus the color currently enforced for matching.
type Table struct {
	cards       []card.Card
	activeColor color.Color
}

func NewTable() *Table {
	return &Table{cards: make([]card.Card, 0, consts.DeckSize), activeColor: color.Wild}
}

func RestoreTable(cards []card.Card, activeColor color.Color) *Table {
	table := NewTable()
	table.cards = append(table.cards, cards...)
	table.activeColor = activeColor
	return table
}

// Play puts c on top. Wild cards leave the active color untouched until a
// color is chosen.
func (t *Table) Play(c card.Card) {
	t.cards = append(t.cards, c)
	if !c.IsWild() {
		t.activeColor = c.Color()
	}
}

func (t *Table) ActiveColor() color.Color {
	return t.activeColor
}

func (t *Table) SetActiveColor(c color.Color) {
	t.activeColor = c
}

func (t *Table) Cards() []card.Card {
	cards := make([]card.Card, len(t.cards))
	copy(cards, t.cards)
	return cards
}

func (t *Table) Size() int {
	return len(t.cards)
}

func (t *Table) Top() (card.Card, error) {
	if len(t.cards) == 0 {
		return card.Card{}, consts.ErrorsEmptyTable
	}
	return t.cards[len(t.cards)-1], nil
}
