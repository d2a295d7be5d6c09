package event

import (
	"github.com/ratel-online/duel/uno/card"
	"github.com/ratel-online/duel/uno/card/color"
)

type FirstCardPlayedPayload struct {
	Card        card.Card
	ActiveColor color.Color
}

type FirstCardPlayedListener interface {
	OnFirstCardPlayed(FirstCardPlayedPayload)
}

type firstCardPlayedEmitter struct {
	emitter
	listeners []FirstCardPlayedListener
}

func (e *firstCardPlayedEmitter) AddListener(listener FirstCardPlayedListener) {
	e.Lock()
	defer e.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *firstCardPlayedEmitter) Emit(payload FirstCardPlayedPayload) {
	e.RLock()
	listeners := e.listeners
	e.RUnlock()
	for _, listener := range listeners {
		listener.OnFirstCardPlayed(payload)
	}
}
