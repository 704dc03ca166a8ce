package game

import (
	"github.com/minaorangina/rivals/deck"
	"github.com/minaorangina/rivals/players"
	"github.com/minaorangina/rivals/protocol"
)

// newTestEngine builds an engine with both seats already dealt, skipping
// setup. Tests put cards and points on the seats directly.
func newTestEngine(supply *deck.Supply, agents ...players.Player) *gameEngine {
	e, err := NewGameEngine(GameEngineOpts{
		GameID:  "test-game-id",
		Players: players.NewPlayers(agents...),
		Supply:  supply,
		Seed:    1,
	})
	if err != nil {
		panic(err)
	}
	for _, agent := range e.agents {
		e.seats = append(e.seats, NewPlayer(protocol.PlayerInfo{PlayerID: agent.ID(), Name: agent.Name()}))
	}
	return e
}

// newTestTurn builds a turn with the first seat active
func newTestTurn(e *gameEngine) *Turn {
	seat, opponent := e.seats[0], e.seats[1]
	return &Turn{
		engine:   e,
		seat:     seat,
		agent:    e.agentFor(seat),
		opponent: opponent,
		oppAgent: e.agentFor(opponent),
	}
}

// newTestGame builds a two-seat table over a supply of the given cards
func newTestGame(cards ...*deck.Card) (*gameEngine, *Turn, *players.TestPlayer, *players.TestPlayer) {
	tp1 := players.NewTestPlayer("p1", "Harry")
	tp2 := players.NewTestPlayer("p2", "Sally")
	e := newTestEngine(deck.NewSupply(cards, 1), tp1, tp2)
	return e, newTestTurn(e), tp1, tp2
}

// regionCard builds a region with resources already stored
func regionCard(name string, face, stored int) *deck.Card {
	c := &deck.Card{Name: name, Type: deck.Region, DieFace: face}
	c.SetStored(stored)
	return c
}

// giveRegion places a stocked region on a seat's board
func giveRegion(seat *Player, name string, row, col, face, stored int) *deck.Card {
	c := regionCard(name, face, stored)
	if err := seat.Principality.Place(c, row, col); err != nil {
		panic(err)
	}
	return c
}
