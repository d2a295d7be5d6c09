package player

import (
	"github.com/ratel-online/duel/uno/card/color"
	"github.com/ratel-online/duel/uno/event"
	"github.com/ratel-online/duel/uno/game"
	"github.com/ratel-online/duel/uno/msg"
)

// Human narrates the game to the person at the keyboard (or at the other end
// of a connection) and asks them for wild colors.
type Human struct {
	name         string
	opponentName string
	write        func(string)
	prompt       func() (color.Color, error)
}

func NewHuman(name, opponentName string, write func(string), prompt func() (color.Color, error)) *Human {
	return &Human{name: name, opponentName: opponentName, write: write, prompt: prompt}
}

func (p *Human) Name() string {
	return p.name
}

func (p *Human) PickColor(state game.State) (color.Color, error) {
	if p.prompt == nil {
		return color.Default, nil
	}
	return p.prompt()
}

func (p *Human) displayName(playerName string) string {
	if playerName == game.Human.String() {
		return p.name
	}
	return p.opponentName
}

func (p *Human) isMe(playerName string) bool {
	return playerName == game.Human.String()
}

func (p *Human) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	p.write(msg.Message.FirstCardPlayed(payload.Card, payload.ActiveColor))
}

func (p *Human) OnCardPlayed(payload event.CardPlayedPayload) {
	p.write(msg.Message.PlayerPlayedCard(p.displayName(payload.PlayerName), payload.Card, payload.HandSize))
	if p.isMe(payload.PlayerName) && payload.HandSize == 1 {
		p.write(msg.Message.HumanPlayerMustSayUno())
	}
}

func (p *Human) OnColorPicked(payload event.ColorPickedPayload) {
	p.write(msg.Message.PlayerPickedColor(p.displayName(payload.PlayerName), payload.Color))
}

func (p *Human) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if p.isMe(payload.PlayerName) {
		p.write(msg.Message.HumanPlayerDrewCards(payload.Cards))
		return
	}
	p.write(msg.Message.PlayerDrewCards(p.displayName(payload.PlayerName), payload.Cards))
}

func (p *Human) OnPlayerPassed(payload event.PlayerPassedPayload) {
	p.write(msg.Message.PlayerPassed(p.displayName(payload.PlayerName)))
}

func (p *Human) OnTurnGranted(payload event.TurnGrantedPayload) {
	if p.isMe(payload.PlayerName) {
		p.write(msg.Message.HumanPlayerTurnStarted(p.name))
		return
	}
	p.write(msg.Message.PlayerTurnStarted(p.opponentName))
}

func (p *Human) OnUnoDeclared(payload event.UnoDeclaredPayload) {
	p.write(msg.Message.PlayerSaidUno(p.displayName(payload.PlayerName)))
}

func (p *Human) OnUnoPenalty(payload event.UnoPenaltyPayload) {
	p.write(msg.Message.PlayerPenalized(p.displayName(payload.PlayerName)))
}

func (p *Human) OnGameOver(payload event.GameOverPayload) {
	p.write(msg.Message.WinnerFound(p.displayName(payload.Winner)))
}
