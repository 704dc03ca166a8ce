package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/minaorangina/rivals/game"
	utils "github.com/minaorangina/rivals/internal"
	"github.com/minaorangina/rivals/protocol"
	"github.com/minaorangina/rivals/store"
)

// Exercises the whole lobby flow: create, join, connect both players
// over websockets and watch the game start.
func TestServerStartsAGame(t *testing.T) {
	st := store.NewInMemoryGameStore()
	server := httptest.NewServer(NewServer(st, testConfig()))
	defer server.Close()

	res, err := http.Post(server.URL+"/new", "application/json",
		bytes.NewBuffer(mustMakeJson(t, NewGameReq{"Alice"})))
	utils.AssertNoError(t, err)
	assertStatus(t, res.StatusCode, http.StatusCreated)

	var alice PendingGameRes
	utils.AssertNoError(t, json.NewDecoder(res.Body).Decode(&alice))
	res.Body.Close()

	res, err = http.Post(server.URL+"/join", "application/json",
		bytes.NewBuffer(mustMakeJson(t, JoinGameReq{alice.GameID, "Bob"})))
	utils.AssertNoError(t, err)
	assertStatus(t, res.StatusCode, http.StatusOK)

	var bob PendingGameRes
	utils.AssertNoError(t, json.NewDecoder(res.Body).Decode(&bob))
	res.Body.Close()

	utils.AssertEqual(t, bob.GameID, alice.GameID)
	utils.AssertDeepEqual(t, bob.Players, []string{"Alice", "Bob"})

	// the second connection fills the table and starts the game
	aliceWS := mustDialWS(t, makeWSUrl(server.URL, alice.GameID, alice.PlayerID))
	defer aliceWS.Close()
	bobWS := mustDialWS(t, makeWSUrl(server.URL, bob.GameID, bob.PlayerID))
	defer bobWS.Close()

	utils.Within(t, 2*time.Second, func() {
		var msg protocol.OutboundMessage
		utils.AssertNoError(t, aliceWS.ReadJSON(&msg))
		utils.AssertEqual(t, msg.Message, "Welcome to the game, Alice!")

		utils.AssertNoError(t, bobWS.ReadJSON(&msg))
		utils.AssertEqual(t, msg.Message, "Welcome to the game, Bob!")
	})

	engine := st.FindGame(alice.GameID)
	utils.AssertNotNil(t, engine)
	utils.AssertEqual(t, engine.PlayState(), game.InProgress)

	res, err = http.Get(server.URL + "/game/" + alice.GameID)
	utils.AssertNoError(t, err)
	assertStatus(t, res.StatusCode, http.StatusOK)

	var status GetGameRes
	utils.AssertNoError(t, json.NewDecoder(res.Body).Decode(&status))
	res.Body.Close()

	utils.AssertEqual(t, status.Status, "inProgress")
	utils.AssertDeepEqual(t, status.Players, []string{"Alice", "Bob"})
}
