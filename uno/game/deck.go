package game

import (
	"math/rand"

	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/uno/card"
	"github.com/ratel-online/duel/uno/card/color"
)

// Deck is the draw pile. It is built once per game and only shrinks; the top
// of the pile is the end of the slice.
type Deck struct {
	cards []card.Card
}

func NewDeck() *Deck {
	deck := &Deck{}
	fillDeck(deck)
	return deck
}

// RestoreDeck rebuilds a deck whose last card is the top of the pile.
func RestoreDeck(cards []card.Card) *Deck {
	deck := &Deck{cards: make([]card.Card, len(cards))}
	copy(deck.cards, cards)
	return deck
}

func (d *Deck) Draw() (card.Card, error) {
	if len(d.cards) == 0 {
		return card.Card{}, consts.ErrorsEmptyDeck
	}
	top := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return top, nil
}

func (d *Deck) Empty() bool {
	return len(d.cards) == 0
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func fillDeck(deck *Deck) {
	cards := make([]card.Card, 0, consts.DeckSize)

	cards = append(cards, createWildCards()...)
	for _, cardColor := range color.Playable {
		cards = append(cards, createColorCards(cardColor)...)
	}

	shuffleCards(cards)

	deck.cards = cards
}

func createColorCards(cardColor color.Color) []card.Card {
	cards := []card.Card{
		card.New(cardColor, card.Zero),
	}

	for value := card.One; value <= card.DrawTwo; value++ {
		cards = append(cards, card.New(cardColor, value), card.New(cardColor, value))
	}

	return cards
}

func createWildCards() []card.Card {
	return []card.Card{
		card.New(color.Wild, card.Wild),
		card.New(color.Wild, card.WildDrawFour),
	}
}

func shuffleCards(cards []card.Card) {
	rand.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}
