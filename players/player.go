package players

import (
	"io"

	"github.com/minaorangina/rivals/deck"
	"github.com/minaorangina/rivals/protocol"
	uuid "github.com/satori/go.uuid"
)

// NewID constructs a player ID
func NewID() string {
	return uuid.NewV4().String()
}

type conn struct {
	In  io.Reader
	Out io.Writer
}

// Player represents a player in the real world. The engine asks it
// questions and tells it things; every call blocks until the person
// (or bot) behind it responds. An error means the connection is gone,
// not that the answer was bad.
type Player interface {
	ID() string
	Name() string

	// SendMessage shows the player some text
	SendMessage(text string) error
	// ReceiveInput shows a prompt and returns the player's reply
	ReceiveInput(prompt string) (string, error)

	// ChooseCardFromHand returns the index of the chosen card
	ChooseCardFromHand(hand []*deck.Card, prompt string) (int, error)
	// ChooseCardFromStack returns the index of the chosen card
	ChooseCardFromStack(cards []*deck.Card, prompt string) (int, error)
	// ChooseDrawStack returns one of the offered stack indices
	ChooseDrawStack(options []int, prompt string) (int, error)
	// ChooseResourceType returns one of the offered resource types
	ChooseResourceType(options []deck.ResourceType, prompt string) (deck.ResourceType, error)
	// ChoosePosition asks for a board cell
	ChoosePosition(prompt string) (protocol.Position, error)
}

// Players represents all players in the game
type Players []Player

// NewPlayers returns a set of Players
func NewPlayers(p ...Player) Players {
	return Players(p)
}

// AddPlayer adds a player to a set of Players
func AddPlayer(ps Players, p Player) Players {
	if _, ok := ps.Find(p.ID()); !ok {
		return Players(append(ps, p))
	}
	return ps
}

// Find finds a player by id
func (ps Players) Find(id string) (Player, bool) {
	for _, p := range ps {
		if got := p.ID(); got == id {
			return p, true
		}
	}
	return nil, false
}
