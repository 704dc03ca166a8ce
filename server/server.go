package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/minaorangina/rivals/catalog"
	"github.com/minaorangina/rivals/deck"
	"github.com/minaorangina/rivals/game"
	"github.com/minaorangina/rivals/players"
	"github.com/minaorangina/rivals/store"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type NewGameReq struct {
	Name string `json:"name"`
}

type JoinGameReq struct {
	GameID string `json:"game_id"`
	Name   string `json:"name"`
}

type PendingGameRes struct {
	GameID   string   `json:"game_id"`
	PlayerID string   `json:"player_id"`
	Name     string   `json:"name"`
	Admin    bool     `json:"is_admin"`
	Players  []string `json:"players"`
}

type GetGameRes struct {
	GameID  string   `json:"game_id"`
	Status  string   `json:"status"`
	Players []string `json:"players"`
}

// GameServer seats players over HTTP and runs each game on its own
// goroutine once the table is full
type GameServer struct {
	store store.GameStore
	cfg   Config
	http.Server
}

// NewGameID returns a six-letter code players share to join a game
func NewGameID() string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	code := make([]byte, 6)
	for i := range code {
		code[i] = letters[rand.Intn(len(letters))]
	}
	return string(code)
}

func unknownGameIDMsg(unknownID string) string {
	return fmt.Sprintf("unknown game ID '%s'", unknownID)
}

// NewServer creates a new GameServer
func NewServer(st store.GameStore, cfg Config) *GameServer {
	s := &GameServer{store: st, cfg: cfg}

	router := http.NewServeMux()
	router.Handle("/", http.HandlerFunc(s.HandleRoot))
	router.Handle("/new", http.HandlerFunc(s.HandleNewGame))
	router.Handle("/join", http.HandlerFunc(s.HandleJoinGame))
	router.Handle("/game/", http.HandlerFunc(s.HandleFindGame))
	router.Handle("/ws", http.HandlerFunc(s.HandleWS))

	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{cfg.Origin}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)

	s.Addr = cfg.Addr
	s.Handler = handlers.LoggingHandler(os.Stdout, cors(router))

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// HandleRoot reports that the server is up
func (g *GameServer) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("rivals server"))
}

// HandleNewGame handles a request to create a new game
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data NewGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w)
		return
	}
	if data.Name == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Missing player name"))
		return
	}

	gameID := NewGameID()
	playerID := players.NewID()

	engine, err := g.newEngine(gameID, playerID)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := g.store.AddInactiveGame(engine); err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if err := g.store.AddPendingPlayer(gameID, playerID, data.Name); err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, PendingGameRes{
		GameID:   gameID,
		PlayerID: playerID,
		Name:     data.Name,
		Admin:    true,
		Players:  []string{data.Name},
	})
}

// HandleJoinGame adds a player to a game that hasn't started yet
func (g *GameServer) HandleJoinGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var data JoinGameReq
	err := json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w)
		return
	}

	if data.GameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Missing game ID"))
		return
	}
	if data.Name == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Missing player name"))
		return
	}

	if engine := g.store.FindInactiveGame(data.GameID); engine == nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(unknownGameIDMsg(data.GameID)))
		return
	}

	playerID := players.NewID()
	if err := g.store.AddPendingPlayer(data.GameID, playerID, data.Name); err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, PendingGameRes{
		GameID:   data.GameID,
		PlayerID: playerID,
		Name:     data.Name,
		Players:  g.pendingNames(data.GameID),
	})
}

// HandleFindGame reports a game's lifecycle state and players
func (g *GameServer) HandleFindGame(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	gameID := strings.Replace(r.URL.Path, "/game/", "", 1)
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	engine := g.store.FindGame(gameID)
	if engine == nil {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	names := []string{}
	if engine.PlayState() == game.Idle {
		names = g.pendingNames(gameID)
	} else {
		for _, info := range engine.Players() {
			names = append(names, info.Name)
		}
	}

	writeJSON(w, http.StatusOK, GetGameRes{
		GameID:  gameID,
		Status:  engine.PlayState().String(),
		Players: names,
	})
}

// HandleWS attaches a pending player to their game over a websocket.
// The last player to attach starts the game.
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	gameID := query.Get("game_id")
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}
	playerID := query.Get("player_id")
	if playerID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing player ID"))
		return
	}

	engine := g.store.FindInactiveGame(gameID)
	if engine == nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(unknownGameIDMsg(gameID)))
		return
	}

	pending := g.store.FindPendingPlayer(gameID, playerID)
	if pending == nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("unknown player ID"))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client
		log.Printf("ws upgrade failed for game %s: %s", gameID, err)
		return
	}

	player := players.NewWSPlayer(playerID, pending.Name, conn)
	if err := g.store.AddPlayerToGame(gameID, player); err != nil {
		log.Printf("game %s: %s", gameID, err)
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.ClosePolicyViolation, err.Error()))
		conn.Close()
		return
	}

	if len(engine.Players()) == game.MaxPlayers {
		go func() {
			if err := engine.Start(); err != nil {
				log.Printf("game %s ended with error: %s", gameID, err)
			}
		}()
	}
}

// newEngine builds a fresh engine: its own copy of the catalog, a
// time-seeded shuffle and the configured balance
func (g *GameServer) newEngine(gameID, creatorID string) (game.GameEngine, error) {
	cards, err := catalog.Load(g.cfg.CardsPath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	balance := game.DefaultBalance()
	if g.cfg.BalancePath != "" {
		b, err := game.LoadBalance(g.cfg.BalancePath)
		if err != nil {
			log.Printf("balance file %s: %s (using defaults)", g.cfg.BalancePath, err)
		}
		balance = b
	}

	return game.NewGameEngine(game.GameEngineOpts{
		GameID:    gameID,
		CreatorID: creatorID,
		Supply:    deck.NewSupply(cards, time.Now().UnixNano()),
		Balance:   &balance,
	})
}

func (g *GameServer) pendingNames(gameID string) []string {
	names := []string{}
	for _, info := range g.store.PendingPlayersFor(gameID) {
		names = append(names, info.Name)
	}
	return names
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

func writeParseError(err error, w http.ResponseWriter) {
	if err == io.EOF {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("Missing body"))
		return
	}
	log.Println(err.Error())
	w.WriteHeader(http.StatusBadRequest)
}
