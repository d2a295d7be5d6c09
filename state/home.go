package state

import (
	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/database"
	"github.com/ratel-online/duel/render"
)

type home struct{}

func (*home) Next(player *database.Player) (consts.StateID, error) {
	err := render.HomeOptions(player)
	if err != nil {
		return 0, player.WriteError(err)
	}
	selected, err := player.AskForString()
	if err != nil {
		return 0, player.WriteError(err)
	}
	switch selected {
	case "1", "new":
		return consts.StateNew, nil
	case "2", "load":
		return consts.StateLoad, nil
	}
	return 0, player.WriteError(consts.ErrorsInputInvalid)
}
