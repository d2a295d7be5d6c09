package event

type UnoPenaltyPayload struct {
	PlayerName string
}

type UnoPenaltyListener interface {
	OnUnoPenalty(UnoPenaltyPayload)
}

type unoPenaltyEmitter struct {
	emitter
	listeners []UnoPenaltyListener
}

func (e *unoPenaltyEmitter) AddListener(listener UnoPenaltyListener) {
	e.Lock()
	defer e.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *unoPenaltyEmitter) Emit(payload UnoPenaltyPayload) {
	e.RLock()
	listeners := e.listeners
	e.RUnlock()
	for _, listener := range listeners {
		listener.OnUnoPenalty(payload)
	}
}
