package players

import (
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/rivals/deck"
	"github.com/minaorangina/rivals/protocol"
)

// WSPlayer talks to a remote player over a websocket. Messages out are
// JSON OutboundMessages; replies come back as InboundMessages. Writes
// are serialized, reads happen one prompt at a time.
type WSPlayer struct {
	id   string
	name string
	ws   *websocket.Conn
	mu   sync.Mutex
}

// NewWSPlayer constructs a websocket player
func NewWSPlayer(id, name string, ws *websocket.Conn) *WSPlayer {
	return &WSPlayer{id: id, name: name, ws: ws}
}

func (p *WSPlayer) ID() string {
	return p.id
}

func (p *WSPlayer) Name() string {
	return p.name
}

func (p *WSPlayer) send(msg protocol.OutboundMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ws.WriteJSON(msg)
}

func (p *WSPlayer) SendMessage(text string) error {
	return p.send(protocol.OutboundMessage{
		PlayerID: p.id,
		Type:     protocol.MsgText,
		Message:  text,
	})
}

// ask sends a prompt and blocks for the reply
func (p *WSPlayer) ask(prompt string, options []string) (string, error) {
	msg := protocol.OutboundMessage{
		PlayerID:      p.id,
		Type:          protocol.MsgPrompt,
		Prompt:        prompt,
		Options:       options,
		ShouldRespond: true,
	}
	if len(options) > 0 {
		msg.Type = protocol.MsgChoice
	}
	if err := p.send(msg); err != nil {
		return "", err
	}

	var in protocol.InboundMessage
	if err := p.ws.ReadJSON(&in); err != nil {
		return "", err
	}
	return strings.TrimSpace(in.Input), nil
}

func (p *WSPlayer) ReceiveInput(prompt string) (string, error) {
	return p.ask(prompt, nil)
}

func (p *WSPlayer) ChooseCardFromHand(hand []*deck.Card, prompt string) (int, error) {
	return p.chooseIndex(hand, prompt)
}

func (p *WSPlayer) ChooseCardFromStack(cards []*deck.Card, prompt string) (int, error) {
	return p.chooseIndex(cards, prompt)
}

func (p *WSPlayer) chooseIndex(cards []*deck.Card, prompt string) (int, error) {
	labels := []string{}
	for _, c := range cards {
		labels = append(labels, c.String())
	}
	for {
		input, err := p.ask(prompt, labels)
		if err != nil {
			return 0, err
		}
		if idx, ok := parseIndex(input, len(cards)); ok {
			return idx, nil
		}
		if err := p.SendMessage("Invalid index!"); err != nil {
			return 0, err
		}
	}
}

func (p *WSPlayer) ChooseDrawStack(options []int, prompt string) (int, error) {
	labels := []string{}
	for _, opt := range options {
		labels = append(labels, strconv.Itoa(opt))
	}
	for {
		input, err := p.ask(prompt, labels)
		if err != nil {
			return 0, err
		}
		if idx, convErr := strconv.Atoi(input); convErr == nil {
			for _, opt := range options {
				if opt == idx {
					return idx, nil
				}
			}
		}
		if err := p.SendMessage("Invalid stack!"); err != nil {
			return 0, err
		}
	}
}

func (p *WSPlayer) ChooseResourceType(options []deck.ResourceType, prompt string) (deck.ResourceType, error) {
	names := make([]string, len(options))
	for i, rt := range options {
		names[i] = rt.String()
	}
	for {
		input, err := p.ask(prompt, names)
		if err != nil {
			return 0, err
		}
		if name, ok := matchOption(input, names); ok {
			for i, have := range names {
				if have == name {
					return options[i], nil
				}
			}
		}
		if err := p.SendMessage("Invalid resource!"); err != nil {
			return 0, err
		}
	}
}

func (p *WSPlayer) ChoosePosition(prompt string) (protocol.Position, error) {
	for {
		input, err := p.ask(prompt, nil)
		if err != nil {
			return protocol.Position{}, err
		}
		if pos, ok := parsePosition(input); ok {
			return pos, nil
		}
		if err := p.SendMessage("Invalid format! Use: row col"); err != nil {
			return protocol.Position{}, err
		}
	}
}
