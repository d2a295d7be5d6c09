package state

import (
	"context"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/database"
	"github.com/ratel-online/duel/uno/card/color"
	"github.com/ratel-online/duel/uno/msg"
	"github.com/ratel-online/duel/uno/player"
	"github.com/ratel-online/duel/uno/session"
)

type newDuel struct{}

func (*newDuel) Next(p *database.Player) (consts.StateID, error) {
	s, err := session.New(options(p))
	if err != nil {
		return 0, err
	}
	database.RegisterSession(s)
	p.Attach(s)
	log.Infof("player %s started session %s\n", p, s.ID())
	return consts.StateDuel, nil
}

type load struct{}

func (*load) Next(p *database.Player) (consts.StateID, error) {
	err := p.WriteString("Enter the id of the saved game:\n")
	if err != nil {
		return 0, p.WriteError(err)
	}
	id, err := p.AskForString()
	if err != nil {
		return 0, p.WriteError(err)
	}
	return resume(p, id)
}

func resume(p *database.Player, id string) (consts.StateID, error) {
	s, err := database.LoadSession(context.Background(), id, options(p))
	if err != nil {
		_ = p.WriteError(err)
		return consts.StateHome, nil
	}
	p.Attach(s)
	log.Infof("player %s resumed session %s\n", p, s.ID())
	return consts.StateDuel, nil
}

// options wires a new game to the connection: the narration goes to the
// player and wild colors are asked with a timeout.
func options(p *database.Player) session.Options {
	machine := player.CreateMachine()
	human := player.NewHuman(p.Name, machine.Name(), func(message string) {
		_ = p.WriteString(message)
	}, func() (color.Color, error) {
		if err := p.WriteString(msg.Message.PromptColor()); err != nil {
			return color.Default, err
		}
		answer, err := p.AskForString(consts.PlayTimeout)
		if err != nil {
			return color.Default, err
		}
		return color.ByName(answer)
	})
	return session.Options{
		Timing:      getTiming(),
		HumanPicker: human,
		Machine:     machine,
		Listeners:   []interface{}{human},
	}
}
