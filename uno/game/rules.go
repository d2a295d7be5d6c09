package game

import (
	"github.com/ratel-online/duel/uno/card"
	"github.com/ratel-online/duel/uno/card/color"
)

// IsValidPlay is the only legality check; both the human input path and the
// machine's card search go through it.
func IsValidPlay(candidate card.Card, top card.Card, activeColor color.Color) bool {
	return candidate.IsWild() ||
		candidate.Color() == activeColor ||
		candidate.Value() == top.Value()
}
