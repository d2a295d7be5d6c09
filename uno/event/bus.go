package event

import "sync"

type emitter struct {
	sync.RWMutex
}

type DrawReason string

const (
	ReasonDeal    DrawReason = "deal"
	ReasonTurn    DrawReason = "turn"
	ReasonPenalty DrawReason = "penalty"
	ReasonSilence DrawReason = "silence"
)

// Bus groups the emitters of one game. Listeners are called synchronously on
// the goroutine that emits, after the engine has released its lock.
type Bus struct {
	FirstCardPlayed *firstCardPlayedEmitter
	CardPlayed      *cardPlayedEmitter
	ColorPicked     *colorPickedEmitter
	CardsDrawn      *cardsDrawnEmitter
	PlayerPassed    *playerPassedEmitter
	TurnGranted     *turnGrantedEmitter
	UnoDeclared     *unoDeclaredEmitter
	UnoPenalty      *unoPenaltyEmitter
	GameOver        *gameOverEmitter
}

func NewBus() *Bus {
	return &Bus{
		FirstCardPlayed: &firstCardPlayedEmitter{},
		CardPlayed:      &cardPlayedEmitter{},
		ColorPicked:     &colorPickedEmitter{},
		CardsDrawn:      &cardsDrawnEmitter{},
		PlayerPassed:    &playerPassedEmitter{},
		TurnGranted:     &turnGrantedEmitter{},
		UnoDeclared:     &unoDeclaredEmitter{},
		UnoPenalty:      &unoPenaltyEmitter{},
		GameOver:        &gameOverEmitter{},
	}
}

// Subscribe registers listener on every emitter whose listener interface it
// implements.
func (b *Bus) Subscribe(listener interface{}) {
	if l, ok := listener.(FirstCardPlayedListener); ok {
		b.FirstCardPlayed.AddListener(l)
	}
	if l, ok := listener.(CardPlayedListener); ok {
		b.CardPlayed.AddListener(l)
	}
	if l, ok := listener.(ColorPickedListener); ok {
		b.ColorPicked.AddListener(l)
	}
	if l, ok := listener.(CardsDrawnListener); ok {
		b.CardsDrawn.AddListener(l)
	}
	if l, ok := listener.(PlayerPassedListener); ok {
		b.PlayerPassed.AddListener(l)
	}
	if l, ok := listener.(TurnGrantedListener); ok {
		b.TurnGranted.AddListener(l)
	}
	if l, ok := listener.(UnoDeclaredListener); ok {
		b.UnoDeclared.AddListener(l)
	}
	if l, ok := listener.(UnoPenaltyListener); ok {
		b.UnoPenalty.AddListener(l)
	}
	if l, ok := listener.(GameOverListener); ok {
		b.GameOver.AddListener(l)
	}
}
