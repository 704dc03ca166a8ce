package game

import (
	"errors"

	"github.com/minaorangina/rivals/deck"
	"github.com/minaorangina/rivals/protocol"
)

const (
	startRows = 5
	startCols = 5

	// CenterRow is the row holding roads, settlements and cities
	CenterRow = 2
)

var (
	ErrOutOfBounds = errors.New("position is off the board")
	ErrIllegalRow  = errors.New("cards cannot be placed in that row")
	ErrOccupied    = errors.New("position is already occupied")
)

// Principality is one player's growing tableau of cards. Rows 1 to 3
// take cards; the outer rows are buffers. The grid only ever grows.
type Principality struct {
	grid [][]*deck.Card
}

// CardPosition pairs a card with where it sits
type CardPosition struct {
	Card *deck.Card
	Pos  protocol.Position
}

// NewPrincipality constructs an empty starting grid
func NewPrincipality() *Principality {
	grid := make([][]*deck.Card, startRows)
	for i := range grid {
		grid[i] = make([]*deck.Card, startCols)
	}
	return &Principality{grid: grid}
}

// Rows returns the number of rows
func (p *Principality) Rows() int {
	return len(p.grid)
}

// Cols returns the number of columns
func (p *Principality) Cols() int {
	if len(p.grid) == 0 {
		return 0
	}
	return len(p.grid[0])
}

// InBounds reports whether a position is on the board
func (p *Principality) InBounds(row, col int) bool {
	return row >= 0 && row < p.Rows() && col >= 0 && col < p.Cols()
}

func legalRow(row int) bool {
	return row >= 1 && row <= 3
}

// CardAt returns the card at a position, or nil
func (p *Principality) CardAt(row, col int) *deck.Card {
	if !p.InBounds(row, col) {
		return nil
	}
	return p.grid[row][col]
}

// IsEmpty reports whether a position is on the board and unoccupied
func (p *Principality) IsEmpty(row, col int) bool {
	return p.InBounds(row, col) && p.grid[row][col] == nil
}

// CanPlace reports whether a card could go at a position
func (p *Principality) CanPlace(row, col int) bool {
	return p.InBounds(row, col) && legalRow(row) && p.grid[row][col] == nil
}

// Place puts a card at a position without growing the board
func (p *Principality) Place(c *deck.Card, row, col int) error {
	if !p.InBounds(row, col) {
		return ErrOutOfBounds
	}
	if !legalRow(row) {
		return ErrIllegalRow
	}
	if p.grid[row][col] != nil {
		return ErrOccupied
	}
	p.grid[row][col] = c
	return nil
}

// PlaceWithExpansion places a card, then grows the board sideways if
// the card landed in an edge column. The returned position accounts
// for the shift a left-hand expansion causes.
func (p *Principality) PlaceWithExpansion(c *deck.Card, row, col int) (protocol.Position, error) {
	if err := p.Place(c, row, col); err != nil {
		return protocol.Position{}, err
	}

	pos := protocol.Position{Row: row, Col: col}
	if col == 0 {
		p.insertColumn(0)
		pos.Col++
	}
	if pos.Col == p.Cols()-1 {
		p.insertColumn(p.Cols())
	}
	return pos, nil
}

func (p *Principality) insertColumn(at int) {
	for i := range p.grid {
		row := p.grid[i]
		row = append(row, nil)
		copy(row[at+1:], row[at:])
		row[at] = nil
		p.grid[i] = row
	}
}

// RemoveAt takes the card off a position
func (p *Principality) RemoveAt(row, col int) *deck.Card {
	if !p.InBounds(row, col) {
		return nil
	}
	c := p.grid[row][col]
	p.grid[row][col] = nil
	return c
}

// FindByType returns all cards of a type in row-major order
func (p *Principality) FindByType(t deck.CardType) []CardPosition {
	found := []CardPosition{}
	for row := range p.grid {
		for col, c := range p.grid[row] {
			if c != nil && c.Type == t {
				found = append(found, CardPosition{c, protocol.Position{Row: row, Col: col}})
			}
		}
	}
	return found
}

// FindByName returns the first card with a name, in row-major order
func (p *Principality) FindByName(name string) (CardPosition, bool) {
	for row := range p.grid {
		for col, c := range p.grid[row] {
			if c != nil && c.Name == name {
				return CardPosition{c, protocol.Position{Row: row, Col: col}}, true
			}
		}
	}
	return CardPosition{}, false
}

// Neighbours returns the up to four orthogonally adjacent cards
func (p *Principality) Neighbours(row, col int) []*deck.Card {
	neighbours := []*deck.Card{}
	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		if c := p.CardAt(row+d[0], col+d[1]); c != nil {
			neighbours = append(neighbours, c)
		}
	}
	return neighbours
}
