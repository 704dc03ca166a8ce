package players

import (
	"math/rand"
	"strings"

	"github.com/minaorangina/rivals/deck"
	"github.com/minaorangina/rivals/protocol"
)

// maxBotActions caps how many actions a bot takes before it ends its
// turn, so a run of rejected moves cannot loop forever
const maxBotActions = 6

// BotPlayer is a scripted opponent. It answers every question from a
// seeded generator and never sees the board, so its choices are legal
// at most by luck; the engine rejects the rest and the bot moves on.
type BotPlayer struct {
	id      string
	name    string
	rng     *rand.Rand
	actions int
}

// NewBotPlayer constructs a bot with its own seeded generator
func NewBotPlayer(name string, seed int64) *BotPlayer {
	return &BotPlayer{
		id:   NewID(),
		name: name,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

func (p *BotPlayer) ID() string {
	return p.id
}

func (p *BotPlayer) Name() string {
	return p.name
}

func (p *BotPlayer) SendMessage(text string) error {
	return nil
}

func (p *BotPlayer) ReceiveInput(prompt string) (string, error) {
	switch {
	case strings.HasPrefix(prompt, "Choose action"):
		return p.decideAction(), nil
	case strings.HasPrefix(prompt, "Build what?"):
		return []string{"Road", "Settlement", "City"}[p.rng.Intn(3)], nil
	case strings.Contains(prompt, "(y/n)"):
		return "n", nil
	default:
		return "", nil
	}
}

// decideAction mostly plays cards, sometimes builds or trades, and
// always ends the turn once its action budget is spent
func (p *BotPlayer) decideAction() string {
	p.actions++
	if p.actions >= maxBotActions {
		p.actions = 0
		return "END"
	}

	roll := p.rng.Float64()
	switch {
	case roll < 0.7:
		return "PLAY"
	case roll < 0.9:
		return "BUILD"
	case roll < 0.95:
		return "TRADE"
	default:
		p.actions = 0
		return "END"
	}
}

func (p *BotPlayer) ChooseCardFromHand(hand []*deck.Card, prompt string) (int, error) {
	if len(hand) == 0 {
		return 0, nil
	}
	return p.rng.Intn(len(hand)), nil
}

func (p *BotPlayer) ChooseCardFromStack(cards []*deck.Card, prompt string) (int, error) {
	if len(cards) == 0 {
		return 0, nil
	}
	return p.rng.Intn(len(cards)), nil
}

func (p *BotPlayer) ChooseDrawStack(options []int, prompt string) (int, error) {
	if len(options) == 0 {
		return 0, nil
	}
	return options[p.rng.Intn(len(options))], nil
}

func (p *BotPlayer) ChooseResourceType(options []deck.ResourceType, prompt string) (deck.ResourceType, error) {
	if len(options) == 0 {
		return 0, nil
	}
	return options[p.rng.Intn(len(options))], nil
}

func (p *BotPlayer) ChoosePosition(prompt string) (protocol.Position, error) {
	return protocol.Position{
		Row: 1 + p.rng.Intn(3),
		Col: p.rng.Intn(5),
	}, nil
}
