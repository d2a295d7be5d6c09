package event

type UnoDeclaredPayload struct {
	PlayerName string
}

type UnoDeclaredListener interface {
	OnUnoDeclared(UnoDeclaredPayload)
}

type unoDeclaredEmitter struct {
	emitter
	listeners []UnoDeclaredListener
}

func (e *unoDeclaredEmitter) AddListener(listener UnoDeclaredListener) {
	e.Lock()
	defer e.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *unoDeclaredEmitter) Emit(payload UnoDeclaredPayload) {
	e.RLock()
	listeners := e.listeners
	e.RUnlock()
	for _, listener := range listeners {
		listener.OnUnoDeclared(payload)
	}
}
