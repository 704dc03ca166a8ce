package players

import (
	"bytes"
	"sync"

	"github.com/minaorangina/rivals/deck"
	"github.com/minaorangina/rivals/protocol"
)

// TestPlayer answers from queues and records everything it is told.
// An empty input queue answers "END", which backs safely out of any
// phase. Setting Err makes every call fail, for exercising lost
// connections.
type TestPlayer struct {
	id   string
	name string
	Err  error

	Messages  []string
	Inputs    []string
	HandIdxs  []int
	CardIdxs  []int
	StackIdxs []int
	Resources []deck.ResourceType
	Positions []protocol.Position
}

// NewTestPlayer constructs a test player with nothing queued
func NewTestPlayer(id, name string) *TestPlayer {
	return &TestPlayer{id: id, name: name}
}

func (tp *TestPlayer) ID() string {
	return tp.id
}

func (tp *TestPlayer) Name() string {
	return tp.name
}

func (tp *TestPlayer) SendMessage(text string) error {
	if tp.Err != nil {
		return tp.Err
	}
	tp.Messages = append(tp.Messages, text)
	return nil
}

func (tp *TestPlayer) ReceiveInput(prompt string) (string, error) {
	if tp.Err != nil {
		return "", tp.Err
	}
	if len(tp.Inputs) == 0 {
		return "END", nil
	}
	input := tp.Inputs[0]
	tp.Inputs = tp.Inputs[1:]
	return input, nil
}

func (tp *TestPlayer) ChooseCardFromHand(hand []*deck.Card, prompt string) (int, error) {
	if tp.Err != nil {
		return 0, tp.Err
	}
	return popInt(&tp.HandIdxs), nil
}

func (tp *TestPlayer) ChooseCardFromStack(cards []*deck.Card, prompt string) (int, error) {
	if tp.Err != nil {
		return 0, tp.Err
	}
	return popInt(&tp.CardIdxs), nil
}

func (tp *TestPlayer) ChooseDrawStack(options []int, prompt string) (int, error) {
	if tp.Err != nil {
		return 0, tp.Err
	}
	if len(tp.StackIdxs) == 0 {
		if len(options) == 0 {
			return 0, nil
		}
		return options[0], nil
	}
	return popInt(&tp.StackIdxs), nil
}

func (tp *TestPlayer) ChooseResourceType(options []deck.ResourceType, prompt string) (deck.ResourceType, error) {
	if tp.Err != nil {
		return 0, tp.Err
	}
	if len(tp.Resources) == 0 {
		if len(options) == 0 {
			return 0, nil
		}
		return options[0], nil
	}
	rt := tp.Resources[0]
	tp.Resources = tp.Resources[1:]
	return rt, nil
}

func (tp *TestPlayer) ChoosePosition(prompt string) (protocol.Position, error) {
	if tp.Err != nil {
		return protocol.Position{}, tp.Err
	}
	if len(tp.Positions) == 0 {
		return protocol.Position{}, nil
	}
	pos := tp.Positions[0]
	tp.Positions = tp.Positions[1:]
	return pos, nil
}

// Received reports whether the exact text was recorded
func (tp *TestPlayer) Received(text string) bool {
	for _, msg := range tp.Messages {
		if msg == text {
			return true
		}
	}
	return false
}

func popInt(queue *[]int) int {
	q := *queue
	if len(q) == 0 {
		return 0
	}
	v := q[0]
	*queue = q[1:]
	return v
}

// TestBuffer is a Buffer safe for concurrent use
type TestBuffer struct {
	buf bytes.Buffer
	m   sync.Mutex
}

func NewTestBuffer() *TestBuffer {
	return &TestBuffer{}
}

func (tb *TestBuffer) Read(p []byte) (int, error) {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.Read(p)
}

func (tb *TestBuffer) Write(p []byte) (int, error) {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.Write(p)
}

func (tb *TestBuffer) String() string {
	tb.m.Lock()
	defer tb.m.Unlock()
	return tb.buf.String()
}
