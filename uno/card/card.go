package card

import (
	"github.com/google/uuid"
	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/uno/card/action"
	"github.com/ratel-online/duel/uno/card/color"
)

// Card is immutable once built. Two cards with the same color and value are
// still different cards; Equal compares identities.
type Card struct {
	id    uuid.UUID
	color color.Color
	value Value
}

// New builds a fresh card. Wild values always get the wild color.
func New(c color.Color, value Value) Card {
	return Restore(uuid.New(), c, value)
}

// Restore rebuilds a card with a known identity, e.g. from a snapshot.
func Restore(id uuid.UUID, c color.Color, value Value) Card {
	if value == Wild || value == WildDrawFour {
		c = color.Wild
	}
	return Card{id: id, color: c, value: value}
}

func (c Card) ID() uuid.UUID {
	return c.id
}

func (c Card) Color() color.Color {
	return c.color
}

func (c Card) Value() Value {
	return c.value
}

func (c Card) Kind() Kind {
	return c.value.Kind()
}

func (c Card) IsWild() bool {
	return c.color == color.Wild
}

func (c Card) IsZero() bool {
	return c.id == uuid.Nil
}

func (c Card) Equal(other Card) bool {
	return c.id == other.id
}

// Actions lists the effects the card applies when played.
func (c Card) Actions() []action.Action {
	switch c.value {
	case DrawTwo:
		return []action.Action{
			action.NewDrawCardsAction(consts.DrawTwoPenalty),
		}
	case WildDrawFour:
		return []action.Action{
			action.NewDrawCardsAction(consts.DrawFourPenalty),
			action.NewPickColorAction(),
		}
	case Wild:
		return []action.Action{
			action.NewPickColorAction(),
		}
	case Skip:
		return []action.Action{
			action.NewReplayTurnAction(),
		}
	case Reverse:
		// Turn order has no direction with two players.
		return []action.Action{}
	case Zero, One, Two, Three, Four, Five, Six, Seven, Eight, Nine:
		return []action.Action{}
	default:
		return []action.Action{}
	}
}

func (c Card) String() string {
	switch c.value {
	case Skip:
		return c.color.Paint("(/)")
	case Reverse:
		return c.color.Paint("<=>")
	case DrawTwo:
		return c.color.Paint("+2!")
	case Wild:
		return "(*)"
	case WildDrawFour:
		return "+4!"
	default:
		return c.color.Paintf("[%d]", int(c.value))
	}
}
