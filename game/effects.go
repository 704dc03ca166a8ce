package game

import (
	"github.com/minaorangina/rivals/deck"
	"github.com/minaorangina/rivals/protocol"
)

// CardEffect is what happens when a card is played. Effects are looked
// up by card name, with DefaultEffect covering everything unnamed.
type CardEffect interface {
	// CanApply checks the effect could run, before anything is paid
	CanApply(p *Player, c *deck.Card, pos protocol.Position) bool
	// Apply runs the effect. A failure after payment is refunded by
	// the caller.
	Apply(p *Player, c *deck.Card, pos protocol.Position) error
}

// DefaultEffect places placeable cards and credits their points.
// Cards with no placement fall back to granting a victory point.
type DefaultEffect struct{}

func (DefaultEffect) CanApply(p *Player, c *deck.Card, pos protocol.Position) bool {
	if c.Type.Placeable() {
		return p.Principality.CanPlace(pos.Row, pos.Col)
	}
	return true
}

func (DefaultEffect) Apply(p *Player, c *deck.Card, pos protocol.Position) error {
	if !c.Type.Placeable() {
		p.VictoryPoints++
		return nil
	}

	if err := p.Principality.Place(c, pos.Row, pos.Col); err != nil {
		return err
	}
	p.AddPoints(c)
	refreshEffects(p)
	return nil
}

// boosters maps production-doubling buildings to the region they boost
var boosters = map[string]string{
	"Iron Foundry":  "Mountain",
	"Grain Mill":    "Field",
	"Lumber Camp":   "Forest",
	"Brick Factory": "Hill",
	"Weaver's Shop": "Pasture",
}

// isBoosted reports whether a region has an adjacent booster building.
// All four neighbouring cells count.
func isBoosted(p *Principality, region CardPosition) bool {
	for _, neighbour := range p.Neighbours(region.Pos.Row, region.Pos.Col) {
		if boosters[neighbour.Name] == region.Card.Name {
			return true
		}
	}
	return false
}

// tradeShips maps 2:1 trade cards to the resource they cover
var tradeShips = map[string]deck.ResourceType{
	"Brick Ship":       deck.Brick,
	"Grain Ship":       deck.Grain,
	"Lumber Ship":      deck.Lumber,
	"Wool Ship":        deck.Wool,
	"Ore Ship":         deck.Ore,
	"Gold Ship":        deck.Gold,
	"Sacrificial Site": deck.Wool,
}

// flagBuildings maps buildings to the capability flag they grant
var flagBuildings = map[string]string{
	"Marketplace":     FlagMarketplace,
	"Parish Hall":     FlagParishHall,
	"Town Hall":       FlagTownHall,
	"Odin's Fountain": FlagOdinsFountain,
}

// refreshEffects rebuilds a player's capability flags and 2:1 trade
// rights from what is on their board. Rescanning keeps the flags right
// after any placement or removal.
func refreshEffects(p *Player) {
	p.flags = map[string]bool{}
	p.twoForOne = map[deck.ResourceType]int{}

	for _, t := range []deck.CardType{deck.Building, deck.Ship, deck.Unit} {
		for _, cp := range p.Principality.FindByType(t) {
			if rt, ok := tradeShips[cp.Card.Name]; ok {
				p.twoForOne[rt]++
			}
			if flag, ok := flagBuildings[cp.Card.Name]; ok {
				p.flags[flag] = true
			}
		}
	}
}
