package event

type GameOverPayload struct {
	Winner string
}

type GameOverListener interface {
	OnGameOver(GameOverPayload)
}

type gameOverEmitter struct {
	emitter
	listeners []GameOverListener
}

func (e *gameOverEmitter) AddListener(listener GameOverListener) {
	e.Lock()
	defer e.Unlock()
	e.listeners = append(e.listeners, listener)
}

func (e *gameOverEmitter) Emit(payload GameOverPayload) {
	e.RLock()
	listeners := e.listeners
	e.RUnlock()
	for _, listener := range listeners {
		listener.OnGameOver(payload)
	}
}
