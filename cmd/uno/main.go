package main

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/duel/config"
	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/database"
	"github.com/ratel-online/duel/uno/event"
	"github.com/ratel-online/duel/uno/game"
	"github.com/ratel-online/duel/uno/msg"
	"github.com/ratel-online/duel/uno/player"
	"github.com/ratel-online/duel/uno/session"
	"github.com/ratel-online/duel/uno/ui"
)

type gameOver func()

func (f gameOver) OnGameOver(payload event.GameOverPayload) {
	f()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	store, err := database.OpenStore(cfg)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	defer store.Close()
	database.SetStore(store)

	ui.Print(msg.Message.Welcome())
	name, err := ui.PromptString("What's your name?\n")
	if err != nil {
		return
	}
	opts := func() session.Options {
		machine := player.CreateMachine()
		human := player.NewHuman(name, machine.Name(), ui.Print, ui.PromptColor)
		return session.Options{
			Timing:      cfg.Timing(),
			HumanPicker: human,
			Machine:     machine,
			Listeners: []interface{}{human, gameOver(func() {
				ui.Println("Press enter to leave")
			})},
		}
	}

	var s *session.Session
	if len(os.Args) > 1 {
		s, err = database.LoadSession(context.Background(), os.Args[1], opts())
	} else {
		s, err = session.New(opts())
	}
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	database.RegisterSession(s)
	ui.Print(msg.Message.Help())
	ui.Print(msg.Message.VisibleCards(s.VisibleCards(), s.Offset(), s.Engine().HandSize(game.Human)))

	for !s.Ended() {
		line, err := ui.ReadLine()
		if err != nil {
			break
		}
		next, err := run(s, strings.Fields(strings.ToLower(line)), opts)
		if err != nil {
			if errors.Is(err, consts.ErrorsExist) {
				break
			}
			ui.Println(err)
			continue
		}
		s = next
	}
	database.CloseSession(s)
}

func run(s *session.Session, fields []string, opts func() session.Options) (*session.Session, error) {
	if len(fields) == 0 {
		return s, nil
	}
	switch fields[0] {
	case "play", "p":
		if len(fields) != 2 {
			return s, consts.ErrorsInputInvalid
		}
		index, err := strconv.Atoi(fields[1])
		if err != nil {
			return s, consts.ErrorsInputInvalid
		}
		_, err = s.PlayCard(index - 1)
		return s, err
	case "draw", "d":
		_, err := s.DrawCard()
		return s, err
	case "pass":
		return s, s.Pass()
	case "uno":
		if !s.DeclareUno() {
			return s, consts.ErrorsCannotDeclare
		}
	case "next", "n":
		s.ScrollNext()
		ui.Print(msg.Message.VisibleCards(s.VisibleCards(), s.Offset(), s.Engine().HandSize(game.Human)))
	case "back", "b":
		s.ScrollBack()
		ui.Print(msg.Message.VisibleCards(s.VisibleCards(), s.Offset(), s.Engine().HandSize(game.Human)))
	case "state", "s":
		ui.Println(s.State())
		ui.Print(msg.Message.VisibleCards(s.VisibleCards(), s.Offset(), s.Engine().HandSize(game.Human)))
	case "save":
		if err := database.SaveSession(context.Background(), s); err != nil {
			return s, err
		}
		ui.Print(msg.Message.GameSaved(s.ID()))
	case "load":
		if len(fields) != 2 {
			return s, consts.ErrorsInputInvalid
		}
		loaded, err := database.LoadSession(context.Background(), fields[1], opts())
		if err != nil {
			return s, err
		}
		if loaded.ID() != s.ID() {
			database.CloseSession(s)
		}
		return loaded, nil
	case "exit", "e":
		return s, consts.ErrorsExist
	default:
		ui.Print(msg.Message.Help())
	}
	return s, nil
}
