package game

import "fmt"

type PlayerID string

const (
	Human   PlayerID = "HUMAN"
	Machine PlayerID = "MACHINE"
)

func (id PlayerID) Opponent() PlayerID {
	if id == Human {
		return Machine
	}
	return Human
}

func (id PlayerID) Valid() bool {
	return id == Human || id == Machine
}

func (id PlayerID) String() string {
	return string(id)
}

func ParsePlayerID(name string) (PlayerID, error) {
	id := PlayerID(name)
	if !id.Valid() {
		return "", fmt.Errorf("invalid player '%s'", name)
	}
	return id, nil
}

// Player is a seat at the table and the hand it owns.
type Player struct {
	id   PlayerID
	hand *Hand
}

func newPlayer(id PlayerID, hand *Hand) *Player {
	return &Player{id: id, hand: hand}
}

func (p *Player) ID() PlayerID {
	return p.id
}

func (p *Player) Hand() *Hand {
	return p.hand
}
