package deck

import (
	"fmt"
	"strings"
)

// MaxStored is the most resources a single region card can hold.
const MaxStored = 3

// ResourceType represents a resource produced by a region
type ResourceType int

const (
	Brick ResourceType = iota
	Grain
	Lumber
	Wool
	Ore
	Gold
)

var resourceNames = []string{"Brick", "Grain", "Lumber", "Wool", "Ore", "Gold"}

func (rt ResourceType) String() string {
	if rt < 0 || int(rt) >= len(resourceNames) {
		return "Unknown"
	}
	return resourceNames[rt]
}

// ResourceTypes returns all resource types in display order
func ResourceTypes() []ResourceType {
	return []ResourceType{Brick, Grain, Lumber, Wool, Ore, Gold}
}

// ResourceFromString resolves a resource name, ignoring case
func ResourceFromString(s string) (ResourceType, bool) {
	for i, name := range resourceNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return ResourceType(i), true
		}
	}
	return 0, false
}

// CardType represents the kind of a card
type CardType int

const (
	Unknown CardType = iota
	Region
	Road
	Settlement
	City
	Building
	Unit
	Ship
	Action
	Event
)

var cardTypeNames = []string{
	"Unknown",
	"Region",
	"Road",
	"Settlement",
	"City",
	"Building",
	"Unit",
	"Ship",
	"Action",
	"Event",
}

func (ct CardType) String() string {
	if ct < 0 || int(ct) >= len(cardTypeNames) {
		return cardTypeNames[Unknown]
	}
	return cardTypeNames[ct]
}

// Placeable reports whether cards of this type occupy a board cell
func (ct CardType) Placeable() bool {
	switch ct {
	case Region, Road, Settlement, City, Building, Unit, Ship:
		return true
	}
	return false
}

// Cost is the resources required to play or build a card
type Cost map[ResourceType]int

// ParseCost parses a single-letter cost string,
// e.g. "BBL" = 2 Brick, 1 Lumber. A stands for Gold.
func ParseCost(s string) Cost {
	cost := Cost{}
	for _, ch := range strings.ToUpper(s) {
		switch ch {
		case 'B':
			cost[Brick]++
		case 'G':
			cost[Grain]++
		case 'L':
			cost[Lumber]++
		case 'W':
			cost[Wool]++
		case 'O':
			cost[Ore]++
		case 'A':
			cost[Gold]++
		}
	}
	return cost
}

// Total returns the total number of resources in the cost
func (c Cost) Total() int {
	sum := 0
	for _, n := range c {
		sum += n
	}
	return sum
}

func (c Cost) String() string {
	if len(c) == 0 {
		return "free"
	}
	parts := []string{}
	for _, rt := range ResourceTypes() {
		if n := c[rt]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, rt))
		}
	}
	return strings.Join(parts, ", ")
}

// regionResources maps a region card's name to the resource it produces
var regionResources = map[string]ResourceType{
	"Hill":       Brick,
	"Field":      Grain,
	"Forest":     Lumber,
	"Pasture":    Wool,
	"Mountain":   Ore,
	"Gold Field": Gold,
}

// Card represents a single game card
type Card struct {
	Name string
	Type CardType
	Cost Cost
	Text string

	VictoryPoints  int
	CommercePoints int
	StrengthPoints int
	SkillPoints    int
	ProgressPoints int

	// DieFace is the production die face that triggers this region
	DieFace int

	stored int
}

// Stored returns the resources currently held by a region card
func (c *Card) Stored() int {
	return c.stored
}

// SetStored sets a region's stored resources, clamped to [0, MaxStored]
func (c *Card) SetStored(n int) {
	if n < 0 {
		n = 0
	}
	if n > MaxStored {
		n = MaxStored
	}
	c.stored = n
}

// AddStored adds up to n resources and returns how many fit.
// Anything over MaxStored is lost.
func (c *Card) AddStored(n int) int {
	if n < 0 {
		return 0
	}
	added := n
	if c.stored+n > MaxStored {
		added = MaxStored - c.stored
	}
	c.stored += added
	return added
}

// RemoveStored removes up to n resources and returns how many were held
func (c *Card) RemoveStored(n int) int {
	if n < 0 {
		return 0
	}
	removed := n
	if removed > c.stored {
		removed = c.stored
	}
	c.stored -= removed
	return removed
}

// ProducedResource returns the resource a region produces, by its name
func (c *Card) ProducedResource() (ResourceType, bool) {
	rt, ok := regionResources[c.Name]
	return rt, ok
}

func (c *Card) String() string {
	if c.Type == Region {
		return fmt.Sprintf("%s [%d] (%d stored)", c.Name, c.DieFace, c.stored)
	}
	return fmt.Sprintf("%s (%s)", c.Name, c.Type)
}
