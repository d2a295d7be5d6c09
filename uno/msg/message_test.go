package msg_test

import (
	"testing"

	"github.com/ratel-online/duel/uno/card"
	"github.com/ratel-online/duel/uno/card/color"
	"github.com/ratel-online/duel/uno/msg"
	"github.com/stretchr/testify/require"
)

func TestVisibleCards(t *testing.T) {
	cards := []card.Card{
		card.New(color.Red, card.Skip),
		card.New(color.Blue, card.Skip),
	}
	page := msg.Message.VisibleCards(cards, 4, 7)
	require.Contains(t, page, "Cards 5-6 of 7")
	require.Contains(t, page, "5:")
	require.Contains(t, page, "6:")
	require.NotContains(t, page, "7:")

	require.Equal(t, "Your hand is empty\n", msg.Message.VisibleCards(nil, 0, 0))
}

func TestGameSaved(t *testing.T) {
	require.Contains(t, msg.Message.GameSaved("abc"), "load abc")
}
