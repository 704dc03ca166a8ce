package protocol

// Cmd represents a command issued by the active player
type Cmd int

const (
	Null Cmd = iota
	PlayCard
	Build
	Trade
	View
	EndTurn
)

// CmdNames maps commands to the verbs players type
var CmdNames = map[Cmd]string{
	Null:     "NULL",
	PlayCard: "PLAY",
	Build:    "BUILD",
	Trade:    "TRADE",
	View:     "VIEW",
	EndTurn:  "END",
}

// NameToCmd maps typed verbs back to commands
var NameToCmd = map[string]Cmd{
	"NULL":  Null,
	"PLAY":  PlayCard,
	"BUILD": Build,
	"TRADE": Trade,
	"VIEW":  View,
	"END":   EndTurn,
}

func (c Cmd) String() string {
	return CmdNames[c]
}

// Verbs returns the action verbs in menu order
func Verbs() []string {
	return []string{"PLAY", "BUILD", "TRADE", "VIEW", "END"}
}

// Observer event names
const (
	EventGameInitialized = "GAME_INITIALIZED"
	EventTurnStarted     = "TURN_STARTED"
	EventDiceRolled      = "DICE_ROLLED"
	EventGameWon         = "GAME_WON"
)

// PlayerInfo identifies a player to the outside world
type PlayerInfo struct {
	PlayerID string `json:"playerID"`
	Name     string `json:"name"`
}

// Position is a cell on a principality
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Message types for websocket traffic
const (
	MsgText   = "text"
	MsgPrompt = "prompt"
	MsgChoice = "choice"
)

// InboundMessage is a message from a remote player to the engine
type InboundMessage struct {
	PlayerID string `json:"playerID"`
	Input    string `json:"input"`
}

// OutboundMessage is a message from the engine to a remote player
type OutboundMessage struct {
	PlayerID      string   `json:"playerID"`
	Type          string   `json:"type"`
	Message       string   `json:"message,omitempty"`
	Prompt        string   `json:"prompt,omitempty"`
	Options       []string `json:"options,omitempty"`
	ShouldRespond bool     `json:"shouldRespond"`
}
