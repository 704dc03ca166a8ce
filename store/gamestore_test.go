package store

import (
	"testing"

	"github.com/minaorangina/rivals/deck"
	"github.com/minaorangina/rivals/game"
	utils "github.com/minaorangina/rivals/internal"
	"github.com/minaorangina/rivals/players"
	"github.com/minaorangina/rivals/protocol"
)

// stubGame is a GameEngine with a settable play state
type stubGame struct {
	id        string
	creatorID string
	playState game.PlayState
	seated    players.Players
}

func (g *stubGame) ID() string                { return g.id }
func (g *stubGame) CreatorID() string         { return g.creatorID }
func (g *stubGame) PlayState() game.PlayState { return g.playState }
func (g *stubGame) Phase() game.Phase         { return game.PhaseSetup }
func (g *stubGame) Start() error              { return nil }
func (g *stubGame) Subscribe(game.Observer)   {}

func (g *stubGame) Players() []protocol.PlayerInfo {
	infos := []protocol.PlayerInfo{}
	for _, p := range g.seated {
		infos = append(infos, protocol.PlayerInfo{PlayerID: p.ID(), Name: p.Name()})
	}
	return infos
}

func (g *stubGame) AddPlayer(p players.Player) error {
	if g.playState != game.Idle {
		return game.ErrGameAlreadyStarted
	}
	g.seated = players.AddPlayer(g.seated, p)
	return nil
}

func (g *stubGame) Winner() (protocol.PlayerInfo, game.Score, bool) {
	return protocol.PlayerInfo{}, game.Score{}, false
}

func newInactiveGame(gameID, creatorID string) map[string]game.GameEngine {
	return map[string]game.GameEngine{
		gameID: &stubGame{id: gameID, creatorID: creatorID},
	}
}

func newActiveGame(gameID, creatorID string) map[string]game.GameEngine {
	return map[string]game.GameEngine{
		gameID: &stubGame{id: gameID, creatorID: creatorID, playState: game.InProgress},
	}
}

// NewTestGameStore is a convenience function for creating
// InMemoryGameStore in tests
func NewTestGameStore(games map[string]game.GameEngine) *InMemoryGameStore {
	if games == nil {
		games = map[string]game.GameEngine{}
	}
	return &InMemoryGameStore{
		Games:          games,
		PendingPlayers: map[string][]protocol.PlayerInfo{},
	}
}

func TestInMemoryGameStore(t *testing.T) {
	t.Run("Constructor prevents nil struct members", func(t *testing.T) {
		str := NewInMemoryGameStore()
		if str.Games == nil {
			t.Error("Games was nil")
		}
		if str.PendingPlayers == nil {
			t.Error("Pending players was nil")
		}
	})

	t.Run("prevents duplicate game IDs", func(t *testing.T) {
		str := NewInMemoryGameStore()
		ge := &stubGame{id: "thisISAnID"}

		err := str.AddInactiveGame(ge)
		utils.AssertNoError(t, err)

		err = str.AddInactiveGame(ge)
		utils.AssertErrored(t, err)
	})

	t.Run("Can add pending players", func(t *testing.T) {
		gameID := "some-game-id"
		playerID, playerName := "player-1", "Hermione"

		str := NewTestGameStore(newInactiveGame(gameID, playerID))

		err := str.AddPendingPlayer(gameID, playerID, playerName)
		utils.AssertNoError(t, err)

		pendingInfo := str.FindPendingPlayer(gameID, playerID)
		utils.AssertNotNil(t, pendingInfo)
	})

	t.Run("Lists pending players in join order", func(t *testing.T) {
		gameID := "some-game-id"

		str := NewTestGameStore(newInactiveGame(gameID, "player-1"))

		utils.AssertNoError(t, str.AddPendingPlayer(gameID, "player-1", "Hermione"))
		utils.AssertNoError(t, str.AddPendingPlayer(gameID, "player-2", "Ron"))

		pending := str.PendingPlayersFor(gameID)
		utils.AssertEqual(t, len(pending), 2)
		utils.AssertEqual(t, pending[0].Name, "Hermione")
		utils.AssertEqual(t, pending[1].Name, "Ron")

		utils.AssertEqual(t, len(str.PendingPlayersFor("missing-id")), 0)
	})

	t.Run("Handles a non-existent game", func(t *testing.T) {
		str := NewInMemoryGameStore()
		g := str.FindGame("fake-id")

		utils.AssertEqual(t, g, nil)
	})

	t.Run("Can add a player to an inactive game", func(t *testing.T) {
		pendingID := "a-pending-game"
		str := NewTestGameStore(newInactiveGame(pendingID, "creator-id"))

		playerToAdd := players.APlayer("horatio-1", "Horatio")

		err := str.AddPlayerToGame(pendingID, playerToAdd)
		utils.AssertNoError(t, err)

		g := str.FindInactiveGame(pendingID)
		utils.AssertNotNil(t, g)

		found := false
		for _, info := range g.Players() {
			if info.PlayerID == "horatio-1" {
				found = true
			}
		}
		utils.AssertTrue(t, found)
	})

	t.Run("Disallows adding a player to an active game", func(t *testing.T) {
		gameID := "test-game-id"
		str := NewTestGameStore(newActiveGame(gameID, "creator-id"))

		err := str.AddPendingPlayer(gameID, "player-1", "Neville")
		utils.AssertErrored(t, err)
	})

	t.Run("Can retrieve existing active game", func(t *testing.T) {
		gameID := "test-game-id"
		str := NewTestGameStore(newActiveGame(gameID, ""))

		g := str.FindActiveGame(gameID)
		utils.AssertNotNil(t, g)
	})

	t.Run("Handles a non-existent active game", func(t *testing.T) {
		str := NewInMemoryGameStore()
		g := str.FindActiveGame("fake-id")

		utils.AssertEqual(t, g, nil)
	})

	t.Run("Can retrieve existing pending game", func(t *testing.T) {
		pendingID := "a-pending-game"
		str := NewTestGameStore(newInactiveGame(pendingID, "creator-id"))

		g := str.FindInactiveGame(pendingID)
		utils.AssertNotNil(t, g)
	})

	t.Run("Handles a non-existent pending game", func(t *testing.T) {
		str := NewInMemoryGameStore()
		g := str.FindInactiveGame("fake-id")
		utils.AssertEqual(t, g, nil)
	})

	t.Run("works with the real engine", func(t *testing.T) {
		ge, err := game.NewGameEngine(game.GameEngineOpts{
			GameID:    "real-game",
			CreatorID: "creator-id",
			Supply:    deck.NewSupply(nil, 1),
			Seed:      1,
		})
		utils.AssertNoError(t, err)

		str := NewInMemoryGameStore()
		utils.AssertNoError(t, str.AddInactiveGame(ge))

		utils.AssertNoError(t, str.AddPlayerToGame("real-game", players.APlayer("p1", "Pam")))
		utils.AssertNotNil(t, str.FindInactiveGame("real-game"))
	})
}
