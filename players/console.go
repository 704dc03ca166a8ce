package players

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/minaorangina/rivals/deck"
	"github.com/minaorangina/rivals/protocol"
)

// ConsolePlayer talks to a person over a pair of text streams. Bad
// input is re-prompted here, so the engine only ever sees answers that
// parse.
type ConsolePlayer struct {
	id     string
	name   string
	Conn   *conn
	reader *bufio.Reader
}

// NewConsolePlayer constructs a console player
func NewConsolePlayer(id, name string, in io.Reader, out io.Writer) *ConsolePlayer {
	return &ConsolePlayer{
		id:     id,
		name:   name,
		Conn:   &conn{In: in, Out: out},
		reader: bufio.NewReader(in),
	}
}

func (p *ConsolePlayer) ID() string {
	return p.id
}

func (p *ConsolePlayer) Name() string {
	return p.name
}

func (p *ConsolePlayer) SendMessage(text string) error {
	_, err := fmt.Fprintln(p.Conn.Out, text)
	return err
}

func (p *ConsolePlayer) ReceiveInput(prompt string) (string, error) {
	SendText(p.Conn.Out, "%s\n> ", prompt)
	return p.readLine()
}

// readLine reads one line of input. A final line without a newline
// still counts; anything after that means the connection is gone.
func (p *ConsolePlayer) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil {
		if err == io.EOF && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

func (p *ConsolePlayer) ChooseCardFromHand(hand []*deck.Card, prompt string) (int, error) {
	return p.chooseIndex(hand, prompt)
}

func (p *ConsolePlayer) ChooseCardFromStack(cards []*deck.Card, prompt string) (int, error) {
	return p.chooseIndex(cards, prompt)
}

func (p *ConsolePlayer) chooseIndex(cards []*deck.Card, prompt string) (int, error) {
	for {
		SendText(p.Conn.Out, "%s\n%s> ", prompt, buildCardChoiceText(cards))
		input, err := p.readLine()
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

func (p *ConsolePlayer) ChooseDrawStack(options []int, prompt string) (int, error) {
	for {
		SendText(p.Conn.Out, "%s [%s]\n> ", prompt, buildStackChoiceText(options))
		input, err := p.readLine()
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

func (p *ConsolePlayer) ChooseResourceType(options []deck.ResourceType, prompt string) (deck.ResourceType, error) {
	names := make([]string, len(options))
	for i, rt := range options {
		names[i] = rt.String()
	}

	for {
		SendText(p.Conn.Out, "%s (%s)\n> ", prompt, buildResourceChoiceText(options))
		input, err := p.readLine()
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

func (p *ConsolePlayer) ChoosePosition(prompt string) (protocol.Position, error) {
	for {
		input, err := p.ReceiveInput(prompt)
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
