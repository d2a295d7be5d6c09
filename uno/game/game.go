package game

import (
	"fmt"
	"sync"

	"github.com/ratel-online/duel/consts"
	"github.com/ratel-online/duel/uno/card"
	"github.com/ratel-online/duel/uno/card/action"
	"github.com/ratel-online/duel/uno/card/color"
	"github.com/ratel-online/duel/uno/event"
)

var seats = []PlayerID{Human, Machine}

// Outcome describes what a successful play did and who should move next.
type Outcome struct {
	Card       card.Card
	Replay     bool
	NeedsColor bool
	Drawn      int
	GameOver   bool
	Next       PlayerID
}

// Game owns the deck, the table and both hands. Every method takes the game
// lock, so all mutations of shared state are serialized through it. Events
// are emitted once the lock has been released.
type Game struct {
	sync.Mutex
	deck         *Deck
	table        *Table
	players      map[PlayerID]*Player
	turn         PlayerID
	dealt        bool
	ended        bool
	colorPending bool
	declared     map[PlayerID]bool
	events       *event.Bus
}

func New(bus *event.Bus) *Game {
	return NewWithDeck(NewDeck(), bus)
}

func NewWithDeck(deck *Deck, bus *event.Bus) *Game {
	if bus == nil {
		bus = event.NewBus()
	}
	return &Game{
		deck:  deck,
		table: NewTable(),
		players: map[PlayerID]*Player{
			Human:   newPlayer(Human, NewHand()),
			Machine: newPlayer(Machine, NewHand()),
		},
		turn:     Human,
		declared: map[PlayerID]bool{},
		events:   bus,
	}
}

func (g *Game) Events() *event.Bus {
	return g.events
}

// Start seeds the table and deals the starting hands. Running out of cards
// here is fatal.
func (g *Game) Start() error {
	if err := g.Seed(); err != nil {
		return err
	}
	return g.Deal()
}

// Seed turns the first card of the deck onto the table. A wild seed gets the
// default color since nobody played it.
func (g *Game) Seed() error {
	g.Lock()
	first, err := g.deck.Draw()
	if err != nil {
		g.Unlock()
		return fmt.Errorf("seed table: %w", err)
	}
	g.table.Play(first)
	if first.IsWild() {
		g.table.SetActiveColor(color.Default)
	}
	activeColor := g.table.ActiveColor()
	g.Unlock()

	g.events.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
		Card:        first,
		ActiveColor: activeColor,
	})
	return nil
}

// Deal gives both players their starting hands. It runs once per game.
func (g *Game) Deal() error {
	g.Lock()
	if g.dealt {
		g.Unlock()
		return consts.ErrorsAlreadyDealt
	}
	dealt := make(map[PlayerID][]card.Card, len(seats))
	for i := 0; i < consts.StartingHand; i++ {
		for _, id := range seats {
			drawn, err := g.deck.Draw()
			if err != nil {
				g.Unlock()
				return fmt.Errorf("deal starting hands: %w", err)
			}
			g.players[id].hand.Add(drawn)
			dealt[id] = append(dealt[id], drawn)
		}
	}
	g.dealt = true
	pending := make([]func(), 0, len(seats))
	for _, id := range seats {
		pending = append(pending, g.drawnEmit(id, dealt[id], event.ReasonDeal))
	}
	g.Unlock()

	emit(pending)
	return nil
}

// CanPlay tells whether c is legal against the current table.
func (g *Game) CanPlay(c card.Card) bool {
	g.Lock()
	defer g.Unlock()
	top, err := g.table.Top()
	if err != nil {
		return false
	}
	return IsValidPlay(c, top, g.table.ActiveColor())
}

// FirstPlayable finds the first legal card of the player's hand.
func (g *Game) FirstPlayable(id PlayerID) (int, bool) {
	g.Lock()
	defer g.Unlock()
	player, ok := g.players[id]
	if !ok {
		return -1, false
	}
	top, err := g.table.Top()
	if err != nil {
		return -1, false
	}
	return player.hand.FirstPlayable(top, g.table.ActiveColor())
}

// Play puts the card at index of the actor's hand on the table and applies
// its effect. Illegal plays leave the game untouched.
func (g *Game) Play(actor PlayerID, index int) (Outcome, error) {
	g.Lock()
	outcome, pending, err := g.play(actor, index)
	g.Unlock()
	if err != nil {
		return Outcome{}, err
	}
	emit(pending)
	return outcome, nil
}

func (g *Game) play(actor PlayerID, index int) (Outcome, []func(), error) {
	if err := g.checkActor(actor); err != nil {
		return Outcome{}, nil, err
	}
	player := g.players[actor]
	candidate, err := player.hand.Card(index)
	if err != nil {
		return Outcome{}, nil, err
	}
	top, err := g.table.Top()
	if err != nil {
		return Outcome{}, nil, err
	}
	if !IsValidPlay(candidate, top, g.table.ActiveColor()) {
		return Outcome{}, nil, consts.ErrorsInvalidPlay
	}

	played, err := player.hand.RemoveAt(index)
	if err != nil {
		return Outcome{}, nil, err
	}
	g.table.Play(played)
	g.handChanged(actor)
	handSize := player.hand.Size()
	pending := []func(){
		func() {
			g.events.CardPlayed.Emit(event.CardPlayedPayload{
				PlayerName: actor.String(),
				Card:       played,
				HandSize:   handSize,
			})
		},
	}

	outcome := Outcome{Card: played, Next: actor.Opponent()}
	if g.latchGameOver() {
		outcome.GameOver = true
		pending = append(pending, g.gameOverEmit())
		return outcome, pending, nil
	}
	pending = append(pending, g.applyEffect(played, actor, &outcome)...)
	return outcome, pending, nil
}

// applyEffect runs the card's actions for actor and records them on outcome.
func (g *Game) applyEffect(c card.Card, actor PlayerID, outcome *Outcome) []func() {
	var pending []func()
	for _, cardAction := range c.Actions() {
		switch cardAction := cardAction.(type) {
		case action.DrawCardsAction:
			opponent := actor.Opponent()
			drawn := g.eat(opponent, cardAction.Amount())
			outcome.Drawn += len(drawn)
			pending = append(pending, g.drawnEmit(opponent, drawn, event.ReasonPenalty))
		case action.ReplayTurnAction:
			outcome.Replay = true
			outcome.Next = actor
		case action.PickColorAction:
			g.colorPending = true
			outcome.NeedsColor = true
		}
	}
	return pending
}

// ResolveWildColor sets the color chosen after a wild card. It must happen
// before the turn can be handed over.
func (g *Game) ResolveWildColor(c color.Color) error {
	g.Lock()
	if g.ended {
		g.Unlock()
		return consts.ErrorsGameOver
	}
	if !g.colorPending {
		g.Unlock()
		return consts.ErrorsNoColorPending
	}
	if !c.Choosable() {
		g.Unlock()
		return consts.ErrorsColorInvalid
	}
	g.table.SetActiveColor(c)
	g.colorPending = false
	chooser := g.turn
	g.Unlock()

	g.events.ColorPicked.Emit(event.ColorPickedPayload{
		PlayerName: chooser.String(),
		Color:      c,
	})
	return nil
}

// EatCard draws up to n cards for the player, stopping quietly when the deck
// runs out. It returns how many cards were drawn.
func (g *Game) EatCard(id PlayerID, n int) int {
	g.Lock()
	if g.ended || g.players[id] == nil {
		g.Unlock()
		return 0
	}
	drawn := g.eat(id, n)
	pending := g.drawnEmit(id, drawn, event.ReasonPenalty)
	g.Unlock()

	pending()
	return len(drawn)
}

// Draw is the actor's turn draw of a single card.
func (g *Game) Draw(actor PlayerID) (card.Card, error) {
	g.Lock()
	if err := g.checkActor(actor); err != nil {
		g.Unlock()
		return card.Card{}, err
	}
	drawn, err := g.deck.Draw()
	if err != nil {
		g.Unlock()
		return card.Card{}, err
	}
	g.players[actor].hand.Add(drawn)
	g.handChanged(actor)
	pending := g.drawnEmit(actor, []card.Card{drawn}, event.ReasonTurn)
	g.Unlock()

	pending()
	return drawn, nil
}

// Pass gives up the turn without drawing. It is only allowed when the deck is
// empty and the actor holds nothing playable.
func (g *Game) Pass(actor PlayerID) error {
	g.Lock()
	if err := g.checkActor(actor); err != nil {
		g.Unlock()
		return err
	}
	top, err := g.table.Top()
	if err != nil {
		g.Unlock()
		return err
	}
	if !g.deck.Empty() {
		g.Unlock()
		return consts.ErrorsCannotPass
	}
	if _, playable := g.players[actor].hand.FirstPlayable(top, g.table.ActiveColor()); playable {
		g.Unlock()
		return consts.ErrorsCannotPass
	}
	g.Unlock()

	g.events.PlayerPassed.Emit(event.PlayerPassedPayload{PlayerName: actor.String()})
	return nil
}

// DeclareUno records that the player called UNO. It only counts with exactly
// one card in hand and holds until the hand size changes.
func (g *Game) DeclareUno(id PlayerID) bool {
	g.Lock()
	player, ok := g.players[id]
	if !ok || g.ended || player.hand.Size() != 1 {
		g.Unlock()
		return false
	}
	first := !g.declared[id]
	g.declared[id] = true
	g.Unlock()

	if first {
		g.events.UnoDeclared.Emit(event.UnoDeclaredPayload{PlayerName: id.String()})
	}
	return true
}

func (g *Game) Declared(id PlayerID) bool {
	g.Lock()
	defer g.Unlock()
	return g.declared[id]
}

// PenalizeSilence draws one card for a player still holding a single card
// without having called UNO. The checks and the draw happen under the same
// lock, and nothing is drawn while a wild color is being chosen.
func (g *Game) PenalizeSilence(id PlayerID) bool {
	g.Lock()
	player, ok := g.players[id]
	if !ok || g.ended || g.colorPending || g.declared[id] || player.hand.Size() != 1 {
		g.Unlock()
		return false
	}
	drawn := g.eat(id, consts.SilencePenalty)
	if len(drawn) == 0 {
		g.Unlock()
		return false
	}
	pending := g.drawnEmit(id, drawn, event.ReasonSilence)
	g.Unlock()

	g.events.UnoPenalty.Emit(event.UnoPenaltyPayload{PlayerName: id.String()})
	pending()
	return true
}

// SetTurn hands the turn to the given player.
func (g *Game) SetTurn(to PlayerID) error {
	g.Lock()
	if !to.Valid() {
		g.Unlock()
		return consts.ErrorsPlayerInvalid
	}
	if g.ended {
		g.Unlock()
		return consts.ErrorsGameOver
	}
	if g.colorPending {
		g.Unlock()
		return consts.ErrorsColorPending
	}
	g.turn = to
	g.Unlock()

	g.events.TurnGranted.Emit(event.TurnGrantedPayload{PlayerName: to.String()})
	return nil
}

// IsGameOver reports whether either hand is empty. Once true it stays true
// and every mutating call becomes a no-op.
func (g *Game) IsGameOver() bool {
	g.Lock()
	defer g.Unlock()
	return g.latchGameOver()
}

// Winner returns the player whose hand is empty, if any.
func (g *Game) Winner() (PlayerID, bool) {
	g.Lock()
	defer g.Unlock()
	return g.winner()
}

// Ended reads the latch without checking the hands.
func (g *Game) Ended() bool {
	g.Lock()
	defer g.Unlock()
	return g.ended
}

func (g *Game) Turn() PlayerID {
	g.Lock()
	defer g.Unlock()
	return g.turn
}

func (g *Game) ColorPending() bool {
	g.Lock()
	defer g.Unlock()
	return g.colorPending
}

func (g *Game) Top() (card.Card, error) {
	g.Lock()
	defer g.Unlock()
	return g.table.Top()
}

func (g *Game) ActiveColor() color.Color {
	g.Lock()
	defer g.Unlock()
	return g.table.ActiveColor()
}

func (g *Game) HandSize(id PlayerID) int {
	g.Lock()
	defer g.Unlock()
	if player, ok := g.players[id]; ok {
		return player.hand.Size()
	}
	return 0
}

func (g *Game) Hand(id PlayerID) []card.Card {
	g.Lock()
	defer g.Unlock()
	if player, ok := g.players[id]; ok {
		return player.hand.Cards()
	}
	return []card.Card{}
}

func (g *Game) VisibleCards(id PlayerID, offset, maxSize int) []card.Card {
	g.Lock()
	defer g.Unlock()
	if player, ok := g.players[id]; ok {
		return player.hand.VisibleWindow(offset, maxSize)
	}
	return []card.Card{}
}

func (g *Game) DeckSize() int {
	g.Lock()
	defer g.Unlock()
	return g.deck.Size()
}

func (g *Game) DeckEmpty() bool {
	g.Lock()
	defer g.Unlock()
	return g.deck.Empty()
}

func (g *Game) TableSize() int {
	g.Lock()
	defer g.Unlock()
	return g.table.Size()
}

func (g *Game) checkActor(actor PlayerID) error {
	if _, ok := g.players[actor]; !ok {
		return consts.ErrorsPlayerInvalid
	}
	if g.ended {
		return consts.ErrorsGameOver
	}
	if g.colorPending {
		return consts.ErrorsColorPending
	}
	if g.turn != actor {
		return consts.ErrorsNotYourTurn
	}
	return nil
}

func (g *Game) eat(id PlayerID, n int) []card.Card {
	drawn := make([]card.Card, 0, n)
	for i := 0; i < n; i++ {
		next, err := g.deck.Draw()
		if err != nil {
			break
		}
		g.players[id].hand.Add(next)
		drawn = append(drawn, next)
	}
	g.handChanged(id)
	return drawn
}

// handChanged drops a stale UNO call once the hand no longer holds one card.
func (g *Game) handChanged(id PlayerID) {
	if g.players[id].hand.Size() != 1 {
		delete(g.declared, id)
	}
}

// latchGameOver never fires before the deal, when both hands are still
// empty.
func (g *Game) latchGameOver() bool {
	if g.ended {
		return true
	}
	if !g.dealt {
		return false
	}
	if _, found := g.winner(); found {
		g.ended = true
		g.colorPending = false
	}
	return g.ended
}

func (g *Game) winner() (PlayerID, bool) {
	for _, id := range seats {
		if g.players[id].hand.Empty() {
			return id, true
		}
	}
	return "", false
}

func (g *Game) drawnEmit(id PlayerID, drawn []card.Card, reason event.DrawReason) func() {
	if len(drawn) == 0 {
		return func() {}
	}
	handSize := g.players[id].hand.Size()
	return func() {
		g.events.CardsDrawn.Emit(event.CardsDrawnPayload{
			PlayerName: id.String(),
			Cards:      drawn,
			HandSize:   handSize,
			Reason:     reason,
		})
	}
}

func (g *Game) gameOverEmit() func() {
	winner, _ := g.winner()
	return func() {
		g.events.GameOver.Emit(event.GameOverPayload{Winner: winner.String()})
	}
}

func emit(pending []func()) {
	for _, fn := range pending {
		fn()
	}
}
