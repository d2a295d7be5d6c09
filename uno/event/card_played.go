package event

import "github.com/ratel-online/duel/uno/card"

type CardPlayedPayload struct {
	PlayerName string
	Card       card.Card
	HandSize   int
}

type CardPlayedListener interface {
	OnCardPlayed(CardPlayedPayload)
}

type cardPlayedEmitter struct {
	emitter
	listeners []CardPlayedListener
}

func (e *cardPlayedEmitter) AddListener(listener CardPlayedListener) {
	e.Lock()
	defer e.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *cardPlayedEmitter) Emit(payload CardPlayedPayload) {
	e.RLock()
	listeners := e.listeners
	e.RUnlock()
	for _, listener := range listeners {
		listener.OnCardPlayed(payload)
	}
}
