package event

import "github.com/ratel-online/duel/uno/card"

type CardsDrawnPayload struct {
	PlayerName string
	Cards      []card.Card
	HandSize   int
	Reason     DrawReason
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}

type cardsDrawnEmitter struct {
	emitter
	listeners []CardsDrawnListener
}

func (e *cardsDrawnEmitter) AddListener(listener CardsDrawnListener) {
	e.Lock()
	defer e.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *cardsDrawnEmitter) Emit(payload CardsDrawnPayload) {
	e.RLock()
	listeners := e.listeners
	e.RUnlock()
	for _, listener := range listeners {
		listener.OnCardsDrawn(payload)
	}
}
