package render

import (
	"bytes"
	"fmt"

	"github.com/ratel-online/duel/database"
	"github.com/ratel-online/duel/uno/game"
	"github.com/ratel-online/duel/uno/msg"
	"github.com/ratel-online/duel/uno/session"
)

func Welcome(player *database.Player) error {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Hi %s, ", player.Name))
	buf.WriteString(msg.Message.Welcome())
	buf.WriteString(msg.Message.Help())
	return player.WriteString(buf.String())
}

func HomeOptions(player *database.Player) error {
	buf := bytes.Buffer{}
	buf.WriteString("1.New game\n")
	buf.WriteString("2.Load game\n")
	return player.WriteString(buf.String())
}

// Table shows the game from the human seat followed by the current page of
// the hand.
func Table(player *database.Player, s *session.Session) error {
	buf := bytes.Buffer{}
	buf.WriteString(fmt.Sprintf("Game %s\n", s.ID()))
	buf.WriteString(s.State().String())
	buf.WriteString("\n")
	buf.WriteString(page(s))
	return player.WriteString(buf.String())
}

func Hand(player *database.Player, s *session.Session) error {
	return player.WriteString(page(s))
}

func Saved(player *database.Player, s *session.Session) error {
	return player.WriteString(msg.Message.GameSaved(s.ID()))
}

func Help(player *database.Player) error {
	return player.WriteString(msg.Message.Help())
}

func Error(player *database.Player, err error) error {
	return player.WriteError(err)
}

func page(s *session.Session) string {
	return msg.Message.VisibleCards(s.VisibleCards(), s.Offset(), s.Engine().HandSize(game.Human))
}
