package player

import (
	"github.com/ratel-online/duel/uno/card/color"
	"github.com/ratel-online/duel/uno/game"
)

// Machine is the opponent strategy: the first legal card in hand order, or
// nothing, in which case the caller draws.
type Machine struct {
	name string
}

func NewMachine(name string) *Machine {
	return &Machine{name: name}
}

func (m *Machine) Name() string {
	return m.name
}

func (m *Machine) Play(g *game.Game) (int, bool) {
	return g.FirstPlayable(game.Machine)
}

// PickColor takes the most frequent color in hand. Ties go to the color
// listed first in color.Playable, an empty hand gets the default.
func (m *Machine) PickColor(state game.State) (color.Color, error) {
	colorCounts := make(map[color.Color]int)
	for _, c := range state.CurrentPlayerHand {
		if !c.IsWild() {
			colorCounts[c.Color()]++
		}
	}

	mostFrequentColor := color.Default
	mostFrequentColorAmount := 0
	for _, availableColor := range color.Playable {
		if amount := colorCounts[availableColor]; amount > mostFrequentColorAmount {
			mostFrequentColorAmount = amount
			mostFrequentColor = availableColor
		}
	}
	return mostFrequentColor, nil
}
