package game

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/minaorangina/rivals/deck"
	"github.com/minaorangina/rivals/players"
	"github.com/minaorangina/rivals/protocol"
)

var (
	ErrTooFewPlayers      = errors.New("two players required")
	ErrTooManyPlayers     = errors.New("maximum of 2 players allowed")
	ErrMissingSupply      = errors.New("game requires a card supply")
	ErrGameAlreadyStarted = errors.New("game has already started")
)

// MaxPlayers is the number of seats at the table
const MaxPlayers = 2

// PlayState represents the lifecycle of a game
type PlayState int

const (
	Idle PlayState = iota
	InProgress
	Finished
)

var playStateNames = []string{"idle", "inProgress", "finished"}

func (ps PlayState) String() string {
	if ps < 0 || int(ps) >= len(playStateNames) {
		return ""
	}
	return playStateNames[ps]
}

// GameEngine runs one game from setup to a winner
type GameEngine interface {
	ID() string
	CreatorID() string
	PlayState() PlayState
	Phase() Phase
	Players() []protocol.PlayerInfo
	AddPlayer(players.Player) error
	Start() error
	Subscribe(Observer)
	Winner() (protocol.PlayerInfo, Score, bool)
}

// GameEngineOpts are the pieces a game engine is built from. Handler
// maps default to the standard rules; passing your own replaces them
// wholesale.
type GameEngineOpts struct {
	GameID      string
	CreatorID   string
	Players     players.Players
	Supply      *deck.Supply
	Balance     *Balance
	Seed        int64
	Actions     map[protocol.Cmd]ActionHandler
	Events      map[EventFace]EventHandler
	CardEffects map[string]CardEffect
	EventCards  map[string]EventHandler
	Observers   []Observer
}

type gameEngine struct {
	id        string
	creatorID string

	// mu guards the lifecycle fields read by other goroutines while
	// the game loop runs: agents, phase, playState and winner
	mu        sync.Mutex
	agents    players.Players
	seats     []*Player
	supply    *deck.Supply
	dice      *Dice
	balance   Balance
	phase     Phase
	playState PlayState
	activeIdx int
	turnCount int
	winner    *Player

	actions     map[protocol.Cmd]ActionHandler
	events      map[EventFace]EventHandler
	cardEffects map[string]CardEffect
	eventCards  map[string]EventHandler
	observers   []Observer
}

// NewGameEngine constructs a game engine
func NewGameEngine(opts GameEngineOpts) (*gameEngine, error) {
	if opts.Supply == nil {
		return nil, ErrMissingSupply
	}
	if len(opts.Players) > MaxPlayers {
		return nil, ErrTooManyPlayers
	}

	balance := DefaultBalance()
	if opts.Balance != nil {
		balance = *opts.Balance
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if opts.Actions == nil {
		opts.Actions = DefaultActionHandlers()
	}
	if opts.Events == nil {
		opts.Events = DefaultEventHandlers()
	}
	if opts.CardEffects == nil {
		opts.CardEffects = map[string]CardEffect{}
	}
	if opts.EventCards == nil {
		opts.EventCards = DefaultEventCardHandlers()
	}

	return &gameEngine{
		id:          opts.GameID,
		creatorID:   opts.CreatorID,
		agents:      opts.Players,
		supply:      opts.Supply,
		dice:        NewDice(seed),
		balance:     balance,
		phase:       PhaseSetup,
		actions:     opts.Actions,
		events:      opts.Events,
		cardEffects: opts.CardEffects,
		eventCards:  opts.EventCards,
		observers:   opts.Observers,
	}, nil
}

func (e *gameEngine) ID() string {
	return e.id
}

func (e *gameEngine) CreatorID() string {
	return e.creatorID
}

func (e *gameEngine) PlayState() PlayState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.playState
}

func (e *gameEngine) Phase() Phase {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.phase
}

func (e *gameEngine) setPhase(p Phase) {
	e.mu.Lock()
	e.phase = p
	e.mu.Unlock()
}

// Players lists who is at the table
func (e *gameEngine) Players() []protocol.PlayerInfo {
	e.mu.Lock()
	defer e.mu.Unlock()

	infos := []protocol.PlayerInfo{}
	for _, a := range e.agents {
		infos = append(infos, protocol.PlayerInfo{PlayerID: a.ID(), Name: a.Name()})
	}
	return infos
}

// AddPlayer seats another player before the game starts
func (e *gameEngine) AddPlayer(p players.Player) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.playState != Idle {
		return ErrGameAlreadyStarted
	}
	if len(e.agents) >= MaxPlayers {
		return ErrTooManyPlayers
	}
	e.agents = players.AddPlayer(e.agents, p)
	return nil
}

// Winner returns the winning player once the game is over
func (e *gameEngine) Winner() (protocol.PlayerInfo, Score, bool) {
	e.mu.Lock()
	winner := e.winner
	e.mu.Unlock()

	if winner == nil {
		return protocol.PlayerInfo{}, Score{}, false
	}
	other := e.opponentOf(winner)
	return winner.Info, ScoreFor(winner, other, e.balance), true
}

func (e *gameEngine) opponentOf(p *Player) *Player {
	for _, seat := range e.seats {
		if seat != p {
			return seat
		}
	}
	return nil
}

func (e *gameEngine) agentFor(seat *Player) players.Player {
	a, _ := e.agents.Find(seat.Info.PlayerID)
	return a
}

// Start runs the game to completion. It blocks until someone wins or
// a player's connection fails. Calling it on a started game is a no-op,
// so every seated player's goroutine can call it safely.
func (e *gameEngine) Start() error {
	e.mu.Lock()
	if e.playState != Idle {
		e.mu.Unlock()
		return nil
	}
	if len(e.agents) < MaxPlayers {
		e.mu.Unlock()
		return ErrTooFewPlayers
	}
	if len(e.agents) > MaxPlayers {
		e.mu.Unlock()
		return ErrTooManyPlayers
	}
	e.playState = InProgress
	e.mu.Unlock()

	if err := e.setup(); err != nil {
		e.setFinished()
		return err
	}

	for e.PlayState() == InProgress {
		if err := e.playTurn(); err != nil {
			e.setFinished()
			log.Printf("game %s aborted: %s", e.id, err)
			return err
		}
	}
	return nil
}

func (e *gameEngine) setFinished() {
	e.mu.Lock()
	e.playState = Finished
	e.mu.Unlock()
}

// Turn is the context handlers run in: the active seat, their
// opponent, and ways to talk to both.
type Turn struct {
	engine   *gameEngine
	seat     *Player
	agent    players.Player
	opponent *Player
	oppAgent players.Player

	productionRoll int
	eventRoll      int
}

// Seat returns the active player's state
func (t *Turn) Seat() *Player { return t.seat }

// Opponent returns the inactive player's state
func (t *Turn) Opponent() *Player { return t.opponent }

// Agent returns the active player's connection
func (t *Turn) Agent() players.Player { return t.agent }

// OpponentAgent returns the inactive player's connection
func (t *Turn) OpponentAgent() players.Player { return t.oppAgent }

// Supply returns the shared card supply
func (t *Turn) Supply() *deck.Supply { return t.engine.supply }

// Balance returns the game's tuning numbers
func (t *Turn) Balance() Balance { return t.engine.balance }

// ProductionRoll returns this turn's production die result
func (t *Turn) ProductionRoll() int { return t.productionRoll }

// EventRoll returns this turn's event die result
func (t *Turn) EventRoll() int { return t.eventRoll }

// Broadcast sends a message to both players
func (t *Turn) Broadcast(text string) error {
	if err := t.agent.SendMessage(text); err != nil {
		return err
	}
	return t.oppAgent.SendMessage(text)
}

func (t *Turn) agentOf(seat *Player) players.Player {
	if seat == t.seat {
		return t.agent
	}
	return t.oppAgent
}

func (t *Turn) effectFor(c *deck.Card) CardEffect {
	if eff, ok := t.engine.cardEffects[c.Name]; ok {
		return eff
	}
	return DefaultEffect{}
}

func (e *gameEngine) playTurn() error {
	seat := e.seats[e.activeIdx]
	opponent := e.seats[(e.activeIdx+1)%MaxPlayers]
	t := &Turn{
		engine:   e,
		seat:     seat,
		agent:    e.agentFor(seat),
		opponent: opponent,
		oppAgent: e.agentFor(opponent),
	}

	e.turnCount++
	e.notify(protocol.EventTurnStarted, map[string]interface{}{
		"turn":     e.turnCount,
		"playerID": seat.Info.PlayerID,
	})
	if err := t.Broadcast(fmt.Sprintf("--- %s's turn ---", seat.Info.Name)); err != nil {
		return err
	}

	e.setPhase(PhaseRollDice)
	t.productionRoll = e.dice.RollProduction()
	t.eventRoll = e.dice.RollEvent()
	face := EventFaceForRoll(t.eventRoll)

	e.notify(protocol.EventDiceRolled, map[string]interface{}{
		"playerID":   seat.Info.PlayerID,
		"production": t.productionRoll,
		"event":      t.eventRoll,
	})
	if err := t.Broadcast(buildRollMessage(seat.Info.Name, t.productionRoll, face)); err != nil {
		return err
	}

	// A brigand attack strikes before anyone collects
	if face == FaceBrigand {
		e.setPhase(PhaseEvent)
		if err := e.runEvent(t, face); err != nil {
			return err
		}
		e.setPhase(PhaseProduction)
		if err := e.produce(t); err != nil {
			return err
		}
	} else {
		e.setPhase(PhaseProduction)
		if err := e.produce(t); err != nil {
			return err
		}
		e.setPhase(PhaseEvent)
		if err := e.runEvent(t, face); err != nil {
			return err
		}
	}

	e.setPhase(PhaseAction)
	if err := e.actionLoop(t); err != nil {
		return err
	}

	e.setPhase(PhaseReplenish)
	if err := e.replenish(t); err != nil {
		return err
	}

	e.setPhase(PhaseExchange)
	if err := e.exchange(t); err != nil {
		return err
	}

	e.setPhase(PhaseVictoryCheck)
	if winner := e.checkVictory(t); winner != nil {
		e.mu.Lock()
		e.winner = winner
		e.phase = PhaseGameOver
		e.playState = Finished
		e.mu.Unlock()

		score := ScoreFor(winner, e.opponentOf(winner), e.balance)
		e.notify(protocol.EventGameWon, map[string]interface{}{
			"playerID": winner.Info.PlayerID,
			"name":     winner.Info.Name,
			"score":    score.Total,
		})
		return t.Broadcast(buildWinMessage(winner.Info.Name, score))
	}

	e.activeIdx = (e.activeIdx + 1) % MaxPlayers
	return nil
}

// produce hands out resources for the production roll. Regions next to
// their booster building yield double. A player with a Marketplace
// whose opponent produced more picks up one resource of their choice.
func (e *gameEngine) produce(t *Turn) error {
	gained := map[*Player]int{}

	for _, seat := range e.seats {
		for _, cp := range seat.Principality.FindByType(deck.Region) {
			if cp.Card.DieFace != t.productionRoll {
				continue
			}
			yield := 1
			if isBoosted(seat.Principality, cp) {
				yield = 2
			}
			gained[seat] += cp.Card.AddStored(yield)
		}
	}

	for _, seat := range e.seats {
		msg := fmt.Sprintf("Production %d: you gained %d resources", t.productionRoll, gained[seat])
		if err := t.agentOf(seat).SendMessage(msg); err != nil {
			return err
		}
	}

	for _, seat := range e.seats {
		other := e.opponentOf(seat)
		if !seat.HasFlag(FlagMarketplace) || gained[seat] >= gained[other] {
			continue
		}
		agent := t.agentOf(seat)
		rt, err := agent.ChooseResourceType(deck.ResourceTypes(), "Marketplace: choose a resource to gain")
		if err != nil {
			return err
		}
		seat.Bank.Add(rt, 1)
		if err := agent.SendMessage(fmt.Sprintf("Marketplace grants you 1 %s", rt)); err != nil {
			return err
		}
	}
	return nil
}

// replenish draws the active player's hand back up to their limit.
// They pick which stack each card comes from; an empty pick falls
// through to the remaining stacks in order.
func (e *gameEngine) replenish(t *Turn) error {
	limit := t.seat.HandLimit(e.balance.HandLimitBase)

	for len(t.seat.Hand) < limit {
		nonEmpty := e.supply.NonEmptyStacks()
		if len(nonEmpty) == 0 {
			log.Printf("game %s: draw stacks exhausted", e.id)
			return t.agent.SendMessage("No cards left to draw")
		}

		prompt := fmt.Sprintf("Choose draw stack %s (hand %d/%d)", stackChoiceText(nonEmpty), len(t.seat.Hand), limit)
		idx, err := t.agent.ChooseDrawStack(nonEmpty, prompt)
		if err != nil {
			return err
		}

		c, ok := e.supply.DrawFromStack(idx)
		if !ok {
			for _, alt := range nonEmpty {
				if c, ok = e.supply.DrawFromStack(alt); ok {
					break
				}
			}
		}
		if !ok {
			continue
		}

		t.seat.AddToHand(c)
		if err := t.agent.SendMessage("You drew: " + c.String()); err != nil {
			return err
		}
	}

	return t.agent.SendMessage(fmt.Sprintf("Hand replenished to %d cards", len(t.seat.Hand)))
}

// exchange lets the active player swap hand cards for stack cards.
// The swap costs resources unless a Town Hall waives it; Odin's
// Fountain allows a second swap.
func (e *gameEngine) exchange(t *Turn) error {
	allowed := 1
	if t.seat.HasFlag(FlagOdinsFountain) {
		allowed = e.balance.FountainExchanges
	}

	for used := 0; used < allowed; used++ {
		input, err := t.agent.ReceiveInput("Exchange a hand card? (y/n)")
		if err != nil {
			return err
		}
		if !isYes(input) {
			return nil
		}
		if len(t.seat.Hand) == 0 {
			return t.agent.SendMessage("No cards in hand to exchange")
		}

		cost := e.balance.ExchangeCost
		if t.seat.HasFlag(FlagTownHall) {
			cost = 0
		} else if t.seat.HasFlag(FlagParishHall) {
			cost = e.balance.ReducedExchangeCost
		}

		paid, ok, err := e.payVariable(t, cost, "Pay exchange cost: choose a resource to spend")
		if err != nil {
			return err
		}
		if !ok {
			e.refundPaid(t.seat, paid)
			if err := t.agent.SendMessage("Cannot afford the exchange"); err != nil {
				return err
			}
			return nil
		}

		if err := e.swapHandCard(t, paid); err != nil {
			return err
		}
	}
	return nil
}

// payVariable collects n resources of the payer's choosing. It returns
// what was taken so a failed transaction can be unwound.
func (e *gameEngine) payVariable(t *Turn, n int, prompt string) ([]deck.ResourceType, bool, error) {
	paid := []deck.ResourceType{}
	for i := 0; i < n; i++ {
		affordable := []deck.ResourceType{}
		for _, rt := range deck.ResourceTypes() {
			if t.seat.Bank.Count(rt) > 0 {
				affordable = append(affordable, rt)
			}
		}
		if len(affordable) == 0 {
			return paid, false, nil
		}

		rt, err := t.agent.ChooseResourceType(affordable, prompt)
		if err != nil {
			return paid, false, err
		}
		if !t.seat.Bank.Remove(rt, 1) {
			return paid, false, nil
		}
		paid = append(paid, rt)
	}
	return paid, true, nil
}

func (e *gameEngine) refundPaid(seat *Player, paid []deck.ResourceType) {
	for _, rt := range paid {
		seat.Bank.Add(rt, 1)
	}
}

func (e *gameEngine) swapHandCard(t *Turn, paid []deck.ResourceType) error {
	idx, err := t.agent.ChooseCardFromHand(t.seat.Hand, "Choose card to exchange")
	if err != nil {
		e.refundPaid(t.seat, paid)
		return err
	}
	card := t.seat.RemoveFromHand(idx)
	if card == nil {
		e.refundPaid(t.seat, paid)
		return t.agent.SendMessage("Invalid card index")
	}

	stacks := []int{0, 1, 2, 3}
	stackIdx, err := t.agent.ChooseDrawStack(stacks, "Discard under which stack?")
	if err != nil {
		t.seat.AddToHand(card)
		e.refundPaid(t.seat, paid)
		return err
	}
	if stackIdx < 0 || stackIdx >= deck.NumStacks {
		stackIdx = 0
	}
	e.supply.ReturnToStackBottom(stackIdx, card)

	var drawn *deck.Card
	if t.seat.HasFlag(FlagTownHall) {
		// Town Hall: pick any card from the stack instead of the top
		choices := e.supply.StackCards(stackIdx)
		if len(choices) > 0 && choices[0] == card {
			choices = choices[1:]
		}
		if len(choices) == 0 {
			e.supply.TakeFromStack(stackIdx, card)
			t.seat.AddToHand(card)
			e.refundPaid(t.seat, paid)
			return t.agent.SendMessage("Stack is empty. Refunded the exchange cost")
		}
		choiceIdx, err := t.agent.ChooseCardFromStack(choices, "Choose card from stack")
		if err != nil {
			t.seat.AddToHand(card)
			e.refundPaid(t.seat, paid)
			return err
		}
		if choiceIdx < 0 || choiceIdx >= len(choices) {
			choiceIdx = 0
		}
		drawn = choices[choiceIdx]
		e.supply.TakeFromStack(stackIdx, drawn)
	} else {
		if e.supply.PeekStack(stackIdx) == card {
			e.supply.TakeFromStack(stackIdx, card)
			t.seat.AddToHand(card)
			e.refundPaid(t.seat, paid)
			return t.agent.SendMessage("Stack is empty. Refunded the exchange cost")
		}
		drawn, _ = e.supply.DrawFromStack(stackIdx)
	}

	t.seat.AddToHand(drawn)
	return t.agent.SendMessage("You drew: " + drawn.String())
}

// checkVictory scores the active player first, so a double finish goes
// to whoever just took their turn
func (e *gameEngine) checkVictory(t *Turn) *Player {
	if ScoreFor(t.seat, t.opponent, e.balance).HasWon(e.balance) {
		return t.seat
	}
	if ScoreFor(t.opponent, t.seat, e.balance).HasWon(e.balance) {
		return t.opponent
	}
	return nil
}

func isYes(input string) bool {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	}
	return false
}
