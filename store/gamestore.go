package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minaorangina/rivals/game"
	"github.com/minaorangina/rivals/players"
	"github.com/minaorangina/rivals/protocol"
)

var (
	ErrUnknownGameID           = errors.New("unknown game ID")
	ErrUnknownPlayerID         = errors.New("unknown player ID")
	ErrFnUnknownInactiveGameID = func(gameID string) error {
		return fmt.Errorf("pending game with id %q does not exist", gameID)
	}
	ErrGameAlreadyStarted = errors.New("game has already started")
)

type GameStore interface {
	FindGame(gameID string) game.GameEngine
	FindActiveGame(gameID string) game.GameEngine
	FindInactiveGame(gameID string) game.GameEngine
	FindPendingPlayer(gameID, playerID string) *protocol.PlayerInfo
	PendingPlayersFor(gameID string) []protocol.PlayerInfo
	AddInactiveGame(engine game.GameEngine) error
	AddPendingPlayer(gameID, playerID, name string) error
	AddPlayerToGame(gameID string, player players.Player) error
}

// InMemoryGameStore maps game id to game engine
type InMemoryGameStore struct {
	mu             sync.Mutex
	Games          map[string]game.GameEngine
	PendingPlayers map[string][]protocol.PlayerInfo
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		Games:          map[string]game.GameEngine{},
		PendingPlayers: map[string][]protocol.PlayerInfo{},
	}
}

func (s *InMemoryGameStore) FindGame(ID string) game.GameEngine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Games[ID]
}

func (s *InMemoryGameStore) FindActiveGame(ID string) game.GameEngine {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.Games[ID]
	if !ok {
		return nil
	}
	if g.PlayState() == game.Idle {
		return nil
	}
	return g
}

func (s *InMemoryGameStore) FindInactiveGame(ID string) game.GameEngine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findInactiveGame(ID)
}

// findInactiveGame needs s.mu held
func (s *InMemoryGameStore) findInactiveGame(ID string) game.GameEngine {
	g, ok := s.Games[ID]
	if !ok {
		return nil
	}
	if g.PlayState() != game.Idle {
		return nil
	}
	return g
}

func (s *InMemoryGameStore) FindPendingPlayer(gameID, playerID string) *protocol.PlayerInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	pendingPlayers, ok := s.PendingPlayers[gameID]
	if !ok {
		return nil
	}

	for i, info := range pendingPlayers {
		if info.PlayerID == playerID {
			return &pendingPlayers[i]
		}
	}

	return nil
}

// PendingPlayersFor lists everyone waiting on a game, in join order
func (s *InMemoryGameStore) PendingPlayersFor(gameID string) []protocol.PlayerInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]protocol.PlayerInfo{}, s.PendingPlayers[gameID]...)
}

func (s *InMemoryGameStore) AddInactiveGame(g game.GameEngine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.Games[g.ID()]; exists {
		return fmt.Errorf("game with id %s already exists", g.ID())
	}

	s.Games[g.ID()] = g
	return nil
}

// AddPendingPlayer adds the information from which to construct a
// Player in the future. If the target game does not exist, it fails.
func (s *InMemoryGameStore) AddPendingPlayer(gameID, playerID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g := s.findInactiveGame(gameID)
	if g == nil {
		return ErrFnUnknownInactiveGameID(gameID)
	}

	s.PendingPlayers[gameID] = append(s.PendingPlayers[gameID], protocol.PlayerInfo{
		PlayerID: playerID,
		Name:     name,
	})

	return nil
}

func (s *InMemoryGameStore) AddPlayerToGame(gameID string, player players.Player) error {
	s.mu.Lock()
	g := s.findInactiveGame(gameID)
	s.mu.Unlock()

	if g == nil {
		return ErrFnUnknownInactiveGameID(gameID)
	}

	return g.AddPlayer(player)
}
