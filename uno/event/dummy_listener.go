package event

import "sync"

type DummyListener struct {
	sync.Mutex
	receivedPayloads []interface{}
}

func NewDummyListener() *DummyListener {
	return &DummyListener{receivedPayloads: make([]interface{}, 0)}
}

func (l *DummyListener) ReceivedPayloads() []interface{} {
	l.Lock()
	defer l.Unlock()
	payloads := make([]interface{}, len(l.receivedPayloads))
	copy(payloads, l.receivedPayloads)
	return payloads
}

func (l *DummyListener) receive(payload interface{}) {
	l.Lock()
	defer l.Unlock()
	l.receivedPayloads = append(l.receivedPayloads, payload)
}

func (l *DummyListener) OnCardPlayed(payload CardPlayedPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnFirstCardPlayed(payload FirstCardPlayedPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnColorPicked(payload ColorPickedPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnCardsDrawn(payload CardsDrawnPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnPlayerPassed(payload PlayerPassedPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnTurnGranted(payload TurnGrantedPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnUnoDeclared(payload UnoDeclaredPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnUnoPenalty(payload UnoPenaltyPayload) {
	l.receive(payload)
}

func (l *DummyListener) OnGameOver(payload GameOverPayload) {
	l.receive(payload)
}
