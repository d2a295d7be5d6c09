package consts

import (
	"time"

	"github.com/ratel-online/core/consts"
)

const (
	IsStart = consts.IsStart
	IsStop  = consts.IsStop

	DeckSize        = 102
	StartingHand    = 5
	VisibleCards    = 4
	DrawTwoPenalty  = 2
	DrawFourPenalty = 4
	SilencePenalty  = 1

	PlayTimeout = 40 * time.Second
	AuthTimeout = 3 * time.Second
)

type StateID int

const (
	_ StateID = iota
	StateWelcome
	StateHome
	StateNew
	StateLoad
	StateDuel
)

// Machine pacing defaults, overridable through config.
const (
	ThinkDelay       = 2 * time.Second
	DrawDelayMin     = 2 * time.Second
	DrawDelayMax     = 4 * time.Second
	DeclareWindowMin = 2 * time.Second
	DeclareWindowMax = 4 * time.Second
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist           = NewErr(1, true, "Exist. ")
	ErrorsChanClosed      = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout         = NewErr(1, false, "Timeout. ")
	ErrorsInputInvalid    = NewErr(1, false, "Input invalid. ")
	ErrorsAuthFail        = NewErr(1, true, "Auth fail. ")
	ErrorsSessionNotFound = NewErr(1, false, "Session not found. ")
	ErrorsSessionExpired  = NewErr(1, false, "Session expired, it was saved and can be loaded again. ")
	ErrorsStorageDisabled = NewErr(1, false, "Saving is not available on this server. ")

	ErrorsEmptyDeck       = NewErr(2, true, "No more cards in the deck. ")
	ErrorsEmptyTable      = NewErr(2, true, "There are no cards on the table. ")
	ErrorsIndexOutOfRange = NewErr(2, true, "Card index out of range. ")
	ErrorsAlreadyDealt    = NewErr(2, true, "Cards were already dealt. ")
	ErrorsInvalidPlay     = NewErr(3, false, "This card doesn't match the color or value of the card on the table. ")
	ErrorsNotYourTurn     = NewErr(3, false, "It's not your turn. ")
	ErrorsGameOver        = NewErr(3, false, "The game is over. ")
	ErrorsColorPending    = NewErr(3, false, "A color must be chosen first. ")
	ErrorsColorInvalid    = NewErr(3, false, "Color invalid. ")
	ErrorsNoColorPending  = NewErr(3, false, "There is no color to choose. ")
	ErrorsPlayerInvalid   = NewErr(3, false, "Player invalid. ")
	ErrorsCannotPass      = NewErr(3, false, "You can only pass when the deck is empty and nothing is playable. ")
	ErrorsCannotDeclare   = NewErr(3, false, "You can only say UNO with one card left. ")
)
