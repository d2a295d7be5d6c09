package game

import (
	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/uno/card"
	"github.com/ratel-online/duel/uno/card/color"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, consts.StartingHand)}
}

func (h *Hand) Add(c card.Card) {
	h.cards = append(h.cards, c)
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Card(index int) (card.Card, error) {
	if index < 0 || index >= len(h.cards) {
		return card.Card{}, consts.ErrorsIndexOutOfRange
	}
	return h.cards[index], nil
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

// FirstPlayable returns the index of the first card, in hand order, that can
// be played on top under the active color.
func (h *Hand) FirstPlayable(top card.Card, activeColor color.Color) (int, bool) {
	for index, candidate := range h.cards {
		if IsValidPlay(candidate, top, activeColor) {
			return index, true
		}
	}
	return -1, false
}

func (h *Hand) IndexOf(c card.Card) int {
	for index, cardInHand := range h.cards {
		if cardInHand.Equal(c) {
			return index
		}
	}
	return -1
}

// RemoveAt takes the card at index out of the hand, keeping the order of the
// remaining cards.
func (h *Hand) RemoveAt(index int) (card.Card, error) {
	removed, err := h.Card(index)
	if err != nil {
		return card.Card{}, err
	}
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return removed, nil
}

func (h *Hand) Size() int {
	return len(h.cards)
}

// VisibleWindow returns at most maxSize cards starting at offset. Offsets
// outside the hand yield an empty window.
func (h *Hand) VisibleWindow(offset, maxSize int) []card.Card {
	if offset < 0 || maxSize <= 0 || offset >= len(h.cards) {
		return []card.Card{}
	}
	size := min(maxSize, len(h.cards)-offset)
	window := make([]card.Card, size)
	copy(window, h.cards[offset:offset+size])
	return window
}
