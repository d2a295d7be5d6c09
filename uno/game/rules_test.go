package game_test

import (
	"testing"

	"github.com/ratel-online/duel/uno/card"
	"github.com/ratel-online/duel/uno/card/color"
	"github.com/ratel-online/duel/uno/game"
	"github.com/stretchr/testify/require"
)

func TestIsValidPlay(t *testing.T) {
	top := card.New(color.Red, card.Five)

	tests := []struct {
		name        string
		candidate   card.Card
		activeColor color.Color
		expected    bool
	}{
		{"wild_same_color_same_value", card.New(color.Wild, card.Wild), color.Red, true},
		{"wild_other_color", card.New(color.Wild, card.WildDrawFour), color.Blue, true},
		{"same_color_same_value", card.New(color.Red, card.Five), color.Red, true},
		{"same_color_other_value", card.New(color.Red, card.Nine), color.Red, true},
		{"other_color_same_value", card.New(color.Green, card.Five), color.Red, true},
		{"other_color_other_value", card.New(color.Green, card.Nine), color.Red, false},
		{"matches_active_color_not_top_color", card.New(color.Blue, card.Nine), color.Blue, true},
		{"top_color_after_wild_recolor", card.New(color.Red, card.Nine), color.Blue, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, game.IsValidPlay(test.candidate, top, test.activeColor))
		})
	}
}
