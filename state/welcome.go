package state

import (
	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/database"
	"github.com/ratel-online/duel/render"
)

type welcome struct{}

func (*welcome) Next(player *database.Player) (consts.StateID, error) {
	err := render.Welcome(player)
	if err != nil {
		return 0, player.WriteError(err)
	}
	return consts.StateHome, nil
}
