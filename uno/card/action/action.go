package action

// Action is one effect a card applies once it lands on the table.
// The set is closed: DrawCardsAction, ReplayTurnAction and PickColorAction.
type Action interface {
	action()
}

type DrawCardsAction struct {
	amount int
}

func NewDrawCardsAction(amount int) Action {
	return DrawCardsAction{amount: amount}
}

func (a DrawCardsAction) Amount() int {
	return a.amount
}

func (DrawCardsAction) action() {}

// ReplayTurnAction keeps the turn with the player who played the card.
type ReplayTurnAction struct{}

func NewReplayTurnAction() Action {
	return ReplayTurnAction{}
}

func (ReplayTurnAction) action() {}

type PickColorAction struct{}

func NewPickColorAction() Action {
	return PickColorAction{}
}

func (PickColorAction) action() {}
