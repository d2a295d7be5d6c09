package state

import (
	"context"
	"strconv"
	"strings"

	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/database"
	"github.com/ratel-online/duel/render"
	"github.com/ratel-online/duel/uno/session"
)

type command func(p *database.Player, s *session.Session, args []string) (consts.StateID, error)

var commands = map[string]command{}

func init() {
	commands["play"] = play
	commands["p"] = play
	commands["draw"] = draw
	commands["d"] = draw
	commands["pass"] = pass
	commands["uno"] = declare
	commands["next"] = next
	commands["n"] = next
	commands["back"] = back
	commands["b"] = back
	commands["state"] = view
	commands["s"] = view
	commands["save"] = save
	commands["load"] = reload
	commands["help"] = help
	commands["h"] = help
}

type duel struct{}

func (*duel) Next(p *database.Player) (consts.StateID, error) {
	s := p.Session()
	if s == nil {
		return consts.StateHome, nil
	}
	_ = render.Table(p, s)
	for {
		if s.Ended() {
			p.Attach(nil)
			database.RemoveSession(s.ID())
			return consts.StateHome, nil
		}
		line, err := p.AskForString()
		if err != nil {
			if err == consts.ErrorsExist {
				database.CloseSession(s)
				p.Attach(nil)
			}
			return 0, err
		}
		if s.Closed() && !s.Ended() {
			p.Attach(nil)
			return consts.StateHome, p.WriteError(consts.ErrorsSessionExpired)
		}
		fields := strings.Fields(strings.ToLower(line))
		if len(fields) == 0 {
			_ = render.Table(p, s)
			continue
		}
		cmd, ok := commands[fields[0]]
		if !ok {
			_ = p.WriteError(consts.ErrorsInputInvalid)
			_ = render.Help(p)
			continue
		}
		stateId, err := cmd(p, s, fields[1:])
		if err != nil {
			_ = p.WriteError(err)
			continue
		}
		if stateId > 0 {
			return stateId, nil
		}
	}
}

// play takes the 1-based position of the card in the whole hand.
func play(p *database.Player, s *session.Session, args []string) (consts.StateID, error) {
	if len(args) != 1 {
		return 0, consts.ErrorsInputInvalid
	}
	index, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, consts.ErrorsInputInvalid
	}
	_, err = s.PlayCard(index - 1)
	return 0, err
}

func draw(p *database.Player, s *session.Session, args []string) (consts.StateID, error) {
	_, err := s.DrawCard()
	return 0, err
}

func pass(p *database.Player, s *session.Session, args []string) (consts.StateID, error) {
	return 0, s.Pass()
}

func declare(p *database.Player, s *session.Session, args []string) (consts.StateID, error) {
	if !s.DeclareUno() {
		return 0, consts.ErrorsCannotDeclare
	}
	return 0, nil
}

func next(p *database.Player, s *session.Session, args []string) (consts.StateID, error) {
	s.ScrollNext()
	return 0, render.Hand(p, s)
}

func back(p *database.Player, s *session.Session, args []string) (consts.StateID, error) {
	s.ScrollBack()
	return 0, render.Hand(p, s)
}

func view(p *database.Player, s *session.Session, args []string) (consts.StateID, error) {
	return 0, render.Table(p, s)
}

func save(p *database.Player, s *session.Session, args []string) (consts.StateID, error) {
	if err := database.SaveSession(context.Background(), s); err != nil {
		return 0, err
	}
	return 0, render.Saved(p, s)
}

// reload drops the running game, saving it first, and resumes another one.
func reload(p *database.Player, s *session.Session, args []string) (consts.StateID, error) {
	if len(args) != 1 {
		return 0, consts.ErrorsInputInvalid
	}
	database.CloseSession(s)
	p.Attach(nil)
	return resume(p, args[0])
}

func help(p *database.Player, s *session.Session, args []string) (consts.StateID, error) {
	return 0, render.Help(p)
}
