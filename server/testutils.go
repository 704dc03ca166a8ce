package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/rivals/catalog"
	"github.com/minaorangina/rivals/deck"
	"github.com/minaorangina/rivals/game"
	utils "github.com/minaorangina/rivals/internal"
	"github.com/minaorangina/rivals/store"
)

func testConfig() Config {
	return Config{
		Addr:      ":0",
		CardsPath: "../data/cards.json",
		Origin:    "*",
	}
}

func newBasicServer() *GameServer {
	return NewServer(store.NewInMemoryGameStore(), testConfig())
}

func newTestEngine(t *testing.T, gameID, creatorID string) game.GameEngine {
	t.Helper()

	cards, err := catalog.Load("../data/cards.json")
	utils.AssertNoError(t, err)

	engine, err := game.NewGameEngine(game.GameEngineOpts{
		GameID:    gameID,
		CreatorID: creatorID,
		Supply:    deck.NewSupply(cards, 1),
	})
	utils.AssertNoError(t, err)

	return engine
}

// newServerWithInactiveGame seats Hersha at a pending game and returns
// the server, the game ID and Hersha's player ID
func newServerWithInactiveGame(t *testing.T) (*GameServer, string, string) {
	t.Helper()

	gameID, playerID := "some-pending-id", "hersha-1"

	st := store.NewInMemoryGameStore()
	utils.AssertNoError(t, st.AddInactiveGame(newTestEngine(t, gameID, playerID)))
	utils.AssertNoError(t, st.AddPendingPlayer(gameID, playerID, "Hersha"))

	return NewServer(st, testConfig()), gameID, playerID
}

func mustMakeJson(t *testing.T, input interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(input)
	utils.AssertNoError(t, err)

	return data
}

func newCreateGameRequest(data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/new", bytes.NewBuffer(data))
	return request
}

func newGetGameRequest(gameID string) *http.Request {
	request, _ := http.NewRequest(http.MethodGet, "/game/"+gameID, nil)
	return request
}

func newJoinGameRequest(data []byte) *http.Request {
	if data == nil {
		data = []byte{}
	}
	request, _ := http.NewRequest(http.MethodPost, "/join", bytes.NewBuffer(data))
	return request
}

func makeWSUrl(serverURL, gameID, playerID string) string {
	return "ws" + strings.Trim(serverURL, "http") +
		"/ws?game_id=" + gameID + "&player_id=" + playerID
}

func mustDialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("could not open a ws connection on %s: %v", url, err)
	}

	return ws
}

// ASSERTIONS

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}

func assertPendingGameResponse(t *testing.T, body *bytes.Buffer, want string) PendingGameRes {
	t.Helper()

	bodyBytes, err := io.ReadAll(body)
	utils.AssertNoError(t, err)

	var got PendingGameRes
	err = json.Unmarshal(bodyBytes, &got)
	if err != nil {
		t.Fatalf("Could not unmarshal json: %s", err.Error())
	}
	if got.Name != want {
		t.Errorf("Got %s, want %s", got.Name, want)
	}
	if got.GameID == "" {
		t.Error("Expected a game id")
	}
	if got.PlayerID == "" {
		t.Error("Expected a player id")
	}

	return got
}
