package event

type TurnGrantedPayload struct {
	PlayerName string
}

type TurnGrantedListener interface {
	OnTurnGranted(TurnGrantedPayload)
}

type turnGrantedEmitter struct {
	emitter
	listeners []TurnGrantedListener
}

func (e *turnGrantedEmitter) AddListener(listener TurnGrantedListener) {
	e.Lock()
	defer e.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *turnGrantedEmitter) Emit(payload TurnGrantedPayload) {
	e.RLock()
	listeners := e.listeners
	e.RUnlock()
	for _, listener := range listeners {
		listener.OnTurnGranted(payload)
	}
}
