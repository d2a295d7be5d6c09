package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/duel/uno/card"
	"github.com/ratel-online/duel/uno/card/color"
)

// State is what one player may see of the game.
type State struct {
	Player            PlayerID
	LastPlayedCard    card.Card
	ActiveColor       color.Color
	CurrentPlayerHand []card.Card
	OpponentHandSize  int
	DeckSize          int
	Turn              PlayerID
	Ended             bool
}

func (g *Game) ExtractState(id PlayerID) State {
	g.Lock()
	defer g.Unlock()

	state := State{
		Player:      id,
		ActiveColor: g.table.ActiveColor(),
		DeckSize:    g.deck.Size(),
		Turn:        g.turn,
		Ended:       g.ended,
	}
	state.LastPlayedCard, _ = g.table.Top()
	if player, ok := g.players[id]; ok {
		state.CurrentPlayerHand = player.hand.Cards()
	}
	if opponent, ok := g.players[id.Opponent()]; ok {
		state.OpponentHandSize = opponent.hand.Size()
	}
	return state
}

func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s, active color: %s", s.LastPlayedCard, s.ActiveColor.Paint("■")))
	lines = append(lines, fmt.Sprintf("Opponent: %d card(s), deck: %d card(s)", s.OpponentHandSize, s.DeckSize))
	lines = append(lines, fmt.Sprintf("Your hand: %s", s.CurrentPlayerHand))
	return strings.Join(lines, "\n")
}
