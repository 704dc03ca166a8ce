package game

import (
	"github.com/minaorangina/rivals/deck"
	"github.com/minaorangina/rivals/protocol"
)

// Capability flags granted by cards in play
const (
	FlagMarketplace   = "MARKETPLACE"
	FlagParishHall    = "PARISH_HALL"
	FlagTownHall      = "TOWN_HALL"
	FlagOdinsFountain = "ODIN_FOUNTAIN"
)

// Player is one seat's state: a principality, a hand and point totals.
// Talking to the person (or bot) behind the seat goes through the
// players package.
type Player struct {
	Info         protocol.PlayerInfo
	Principality *Principality
	Bank         *ResourceBank
	Hand         []*deck.Card

	VictoryPoints  int
	CommercePoints int
	StrengthPoints int
	SkillPoints    int
	ProgressPoints int

	flags     map[string]bool
	twoForOne map[deck.ResourceType]int
}

// NewPlayer constructs a seat with an empty principality
func NewPlayer(info protocol.PlayerInfo) *Player {
	principality := NewPrincipality()
	return &Player{
		Info:         info,
		Principality: principality,
		Bank:         NewResourceBank(principality),
		Hand:         []*deck.Card{},
		flags:        map[string]bool{},
		twoForOne:    map[deck.ResourceType]int{},
	}
}

// AddPoints credits every point type a card grants
func (p *Player) AddPoints(c *deck.Card) {
	p.VictoryPoints += c.VictoryPoints
	p.CommercePoints += c.CommercePoints
	p.StrengthPoints += c.StrengthPoints
	p.SkillPoints += c.SkillPoints
	p.ProgressPoints += c.ProgressPoints
}

// RemovePoints debits every point type a card grants
func (p *Player) RemovePoints(c *deck.Card) {
	p.VictoryPoints -= c.VictoryPoints
	p.CommercePoints -= c.CommercePoints
	p.StrengthPoints -= c.StrengthPoints
	p.SkillPoints -= c.SkillPoints
	p.ProgressPoints -= c.ProgressPoints
}

// HasFlag reports whether a capability is active
func (p *Player) HasFlag(flag string) bool {
	return p.flags[flag]
}

// HasTwoForOne reports whether the player trades 2:1 for a resource
func (p *Player) HasTwoForOne(rt deck.ResourceType) bool {
	return p.twoForOne[rt] > 0
}

// HandLimit is the replenish target: a base plus progress points
func (p *Player) HandLimit(base int) int {
	return base + p.ProgressPoints
}

// AddToHand puts a card in the player's hand
func (p *Player) AddToHand(c *deck.Card) {
	if c != nil {
		p.Hand = append(p.Hand, c)
	}
}

// RemoveFromHand takes the card at an index out of the hand
func (p *Player) RemoveFromHand(idx int) *deck.Card {
	if idx < 0 || idx >= len(p.Hand) {
		return nil
	}
	c := p.Hand[idx]
	p.Hand = append(p.Hand[:idx], p.Hand[idx+1:]...)
	return c
}
