package player

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/duel/uno/card/color"
	"github.com/ratel-online/duel/uno/game"
)

// ColorPicker chooses the color a wild card turns into.
type ColorPicker interface {
	PickColor(state game.State) (color.Color, error)
}

type ColorPickerFunc func(state game.State) (color.Color, error)

func (f ColorPickerFunc) PickColor(state game.State) (color.Color, error) {
	return f(state)
}

// PickOrDefault asks picker for a color and falls back to color.Default when
// it fails or answers with something a wild card cannot become.
func PickOrDefault(picker ColorPicker, state game.State) color.Color {
	if picker == nil {
		return color.Default
	}
	chosen, err := picker.PickColor(state)
	if err != nil {
		log.Infof("color pick for %s failed, using %s: %v\n", state.Player, color.Default, err)
		return color.Default
	}
	if !chosen.Choosable() {
		log.Infof("color pick for %s returned %s, using %s\n", state.Player, chosen, color.Default)
		return color.Default
	}
	return chosen
}
