package msg

import (
	"fmt"

	"github.com/ratel-online/duel/uno/card"
	"github.com/ratel-online/duel/uno/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card card.Card, activeColor color.Color) string {
	return Sprintfln("First card is %s, active color %s", card, activeColor.Paint("■"))
}

func (m MessageWriter) HumanPlayerDrewCards(cards []card.Card) string {
	return Sprintfln("You drew %s!", cards)
}

func (m MessageWriter) HumanPlayerHasNoMatchingCardsInHand(playerName string, lastPlayedCard card.Card, hand []card.Card) string {
	return Sprintlns([]string{
		fmt.Sprintf("%s, none of your cards match %s!", playerName, lastPlayedCard),
		fmt.Sprintf("Your hand is %s", numbered(hand, 0)),
	})
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string) string {
	return Sprintfln("It's your turn, %s!", playerName)
}

func (m MessageWriter) PlayerTurnStarted(playerName string) string {
	return Sprintfln("%s is thinking...", playerName)
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []card.Card) string {
	if len(cards) == 1 {
		return Sprintfln("%s drew a card!", playerName)
	}
	return Sprintfln("%s drew %d cards!", playerName, len(cards))
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return Sprintfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, color color.Color) string {
	return Sprintfln("%s picked color %s!", playerName, color.Paint("■"))
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card, handSize int) string {
	return Sprintfln("%s played %s, %d card(s) left!", playerName, card, handSize)
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return Sprintfln("%s's opponent is skipped, %s plays again!", playerName, playerName)
}

func (m MessageWriter) PlayerSaidUno(playerName string) string {
	return Sprintfln("%s says %s%s%s!", playerName, color.Red.Paint("U"), color.Yellow.Paint("N"), color.Blue.Paint("O"))
}

func (m MessageWriter) HumanPlayerMustSayUno() string {
	return Sprintln("One card left, say UNO before it is too late! (enter uno)")
}

func (m MessageWriter) PlayerPenalized(playerName string) string {
	return Sprintfln("%s forgot to say UNO and draws a penalty card!", playerName)
}

func (m MessageWriter) VisibleCards(cards []card.Card, offset, total int) string {
	if len(cards) == 0 {
		return Sprintln("Your hand is empty")
	}
	return Sprintfln("Cards %d-%d of %d: %s", offset+1, offset+len(cards), total, numbered(cards, offset))
}

func (m MessageWriter) Help() string {
	return Sprintlns([]string{
		"Commands:",
		"  play <n>   play the n-th card of your hand",
		"  draw       take a card and end your turn",
		"  pass       end your turn when the deck is empty and nothing fits",
		"  uno        say UNO with one card left",
		"  next/back  page through your hand",
		"  state      show the table",
		"  save       save the game",
		"  load <id>  resume a saved game",
		"  exit       leave",
	})
}

func (m MessageWriter) PromptColor() string {
	return Sprintfln(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red,
		color.Yellow,
		color.Green,
		color.Blue,
	)
}

func (m MessageWriter) GameSaved(id string) string {
	return Sprintfln("Game saved, resume it with: load %s", id)
}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return Sprintfln("%s wins!", playerName)
}
