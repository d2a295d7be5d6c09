package event

import "github.com/ratel-online/duel/uno/card/color"

type ColorPickedPayload struct {
	PlayerName string
	Color      color.Color
}

type ColorPickedListener interface {
	OnColorPicked(ColorPickedPayload)
}

type colorPickedEmitter struct {
	emitter
	listeners []ColorPickedListener
}

func (e *colorPickedEmitter) AddListener(listener ColorPickedListener) {
	e.Lock()
	defer e.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *colorPickedEmitter) Emit(payload ColorPickedPayload) {
	e.RLock()
	listeners := e.listeners
	e.RUnlock()
	for _, listener := range listeners {
		listener.OnColorPicked(payload)
	}
}
