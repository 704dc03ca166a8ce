package deck

import (
	"math/rand"
)

// NumStacks is the number of face-down draw stacks
const NumStacks = 4

// ReshuffleCard is the event card that triggers an event pile reshuffle
const ReshuffleCard = "Yule"

// reshuffleDepth is how far from the bottom of the event pile the
// reshuffle card is buried after a shuffle
const reshuffleDepth = 3

// Supply holds every card not in a hand or on a principality.
// The top of each pile is the end of its slice.
type Supply struct {
	Roads        []*Card
	Settlements  []*Card
	Cities       []*Card
	Regions      []*Card
	Events       []*Card
	EventDiscard []*Card
	Stacks       [NumStacks][]*Card

	rng *rand.Rand
}

// NewSupply routes cards into piles and deals the expansion cards
// into the draw stacks. Piles are not shuffled until Shuffle is called.
func NewSupply(cards []*Card, seed int64) *Supply {
	s := &Supply{rng: rand.New(rand.NewSource(seed))}

	expansions := []*Card{}
	for _, c := range cards {
		switch c.Type {
		case Road:
			s.Roads = append(s.Roads, c)
		case Settlement:
			s.Settlements = append(s.Settlements, c)
		case City:
			s.Cities = append(s.Cities, c)
		case Region:
			s.Regions = append(s.Regions, c)
		case Event:
			s.Events = append(s.Events, c)
		default:
			expansions = append(expansions, c)
		}
	}

	for i, c := range expansions {
		idx := i % NumStacks
		s.Stacks[idx] = append(s.Stacks[idx], c)
	}

	return s
}

// Shuffle shuffles the regions, the draw stacks and the event pile
func (s *Supply) Shuffle() {
	s.shuffle(s.Regions)
	for i := range s.Stacks {
		s.shuffle(s.Stacks[i])
	}
	s.ShuffleEvents()
}

func (s *Supply) shuffle(cards []*Card) {
	s.rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

// ShuffleEvents shuffles the event pile and buries the reshuffle card
// fourth from the bottom, so it cannot come up straight away
func (s *Supply) ShuffleEvents() {
	s.shuffle(s.Events)

	for i, c := range s.Events {
		if c.Name == ReshuffleCard {
			s.Events = append(s.Events[:i], s.Events[i+1:]...)
			depth := reshuffleDepth
			if depth > len(s.Events) {
				depth = 0
			}
			rest := append([]*Card{}, s.Events[depth:]...)
			s.Events = append(s.Events[:depth], c)
			s.Events = append(s.Events, rest...)
			break
		}
	}
}

// DrawFromStack takes the top card of a draw stack
func (s *Supply) DrawFromStack(idx int) (*Card, bool) {
	if idx < 0 || idx >= NumStacks {
		return nil, false
	}
	return drawTop(&s.Stacks[idx])
}

// IsStackEmpty reports whether a draw stack has no cards
func (s *Supply) IsStackEmpty(idx int) bool {
	if idx < 0 || idx >= NumStacks {
		return true
	}
	return len(s.Stacks[idx]) == 0
}

// NonEmptyStacks returns the indices of stacks that still have cards
func (s *Supply) NonEmptyStacks() []int {
	idxs := []int{}
	for i := range s.Stacks {
		if len(s.Stacks[i]) > 0 {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// PeekStack returns the top card of a stack without drawing it
func (s *Supply) PeekStack(idx int) *Card {
	if idx < 0 || idx >= NumStacks || len(s.Stacks[idx]) == 0 {
		return nil
	}
	return s.Stacks[idx][len(s.Stacks[idx])-1]
}

// StackCards returns a copy of a stack, bottom first
func (s *Supply) StackCards(idx int) []*Card {
	if idx < 0 || idx >= NumStacks {
		return nil
	}
	return append([]*Card{}, s.Stacks[idx]...)
}

// ReturnToStackBottom places a card under a draw stack
func (s *Supply) ReturnToStackBottom(idx int, c *Card) {
	if idx < 0 || idx >= NumStacks || c == nil {
		return
	}
	s.Stacks[idx] = append([]*Card{c}, s.Stacks[idx]...)
}

// ReturnToStackTop places a card on top of a draw stack
func (s *Supply) ReturnToStackTop(idx int, c *Card) {
	if idx < 0 || idx >= NumStacks || c == nil {
		return
	}
	s.Stacks[idx] = append(s.Stacks[idx], c)
}

// TakeFromStack removes a specific card from a stack, wherever it sits
func (s *Supply) TakeFromStack(idx int, c *Card) bool {
	if idx < 0 || idx >= NumStacks {
		return false
	}
	for i, have := range s.Stacks[idx] {
		if have == c {
			s.Stacks[idx] = append(s.Stacks[idx][:i], s.Stacks[idx][i+1:]...)
			return true
		}
	}
	return false
}

// DrawRoad takes the top card of the roads pile
func (s *Supply) DrawRoad() (*Card, bool) {
	return drawTop(&s.Roads)
}

// DrawSettlement takes the top card of the settlements pile
func (s *Supply) DrawSettlement() (*Card, bool) {
	return drawTop(&s.Settlements)
}

// DrawCity takes the top card of the cities pile
func (s *Supply) DrawCity() (*Card, bool) {
	return drawTop(&s.Cities)
}

// DrawRegion takes the top card of the regions pile
func (s *Supply) DrawRegion() (*Card, bool) {
	return drawTop(&s.Regions)
}

// RemoveRegion takes a specific region from the pile by name
func (s *Supply) RemoveRegion(name string) (*Card, bool) {
	for i, c := range s.Regions {
		if c.Name == name {
			s.Regions = append(s.Regions[:i], s.Regions[i+1:]...)
			return c, true
		}
	}
	return nil, false
}

// ReturnSettlement puts a settlement back on its pile
func (s *Supply) ReturnSettlement(c *Card) {
	if c != nil {
		s.Settlements = append(s.Settlements, c)
	}
}

// DrawEvent takes the top card of the event pile
func (s *Supply) DrawEvent() (*Card, bool) {
	return drawTop(&s.Events)
}

// DiscardEvent puts a drawn event card on the event discard pile
func (s *Supply) DiscardEvent(c *Card) {
	if c != nil {
		s.EventDiscard = append(s.EventDiscard, c)
	}
}

// ReturnEvents moves the event discard back into the pile, used when
// the reshuffle card comes up
func (s *Supply) ReturnEvents() {
	s.Events = append(s.Events, s.EventDiscard...)
	s.EventDiscard = nil
}

func drawTop(pile *[]*Card) (*Card, bool) {
	cards := *pile
	if len(cards) == 0 {
		return nil, false
	}
	c := cards[len(cards)-1]
	*pile = cards[:len(cards)-1]
	return c, true
}
