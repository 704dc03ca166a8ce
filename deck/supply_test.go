package deck

import (
	"fmt"
	"testing"

	utils "github.com/minaorangina/rivals/internal"
)

func testCards() []*Card {
	cards := []*Card{
		{Name: "Road", Type: Road},
		{Name: "Road", Type: Road},
		{Name: "Settlement", Type: Settlement},
		{Name: "City", Type: City},
		{Name: "Forest", Type: Region},
		{Name: "Hill", Type: Region},
		{Name: ReshuffleCard, Type: Event},
		{Name: "Fraternal Feuds", Type: Event},
	}
	for i := 0; i < 8; i++ {
		cards = append(cards, &Card{Name: fmt.Sprintf("Expansion %d", i), Type: Building})
	}
	return cards
}

func TestNewSupplyRoutesCards(t *testing.T) {
	s := NewSupply(testCards(), 1)

	utils.AssertEqual(t, len(s.Roads), 2)
	utils.AssertEqual(t, len(s.Settlements), 1)
	utils.AssertEqual(t, len(s.Cities), 1)
	utils.AssertEqual(t, len(s.Regions), 2)
	utils.AssertEqual(t, len(s.Events), 2)

	for i := 0; i < NumStacks; i++ {
		utils.AssertEqual(t, len(s.Stacks[i]), 2)
	}
}

func TestDrawFromStack(t *testing.T) {
	s := NewSupply(testCards(), 1)

	t.Run("draws from the top", func(t *testing.T) {
		top := s.PeekStack(0)
		drawn, ok := s.DrawFromStack(0)

		utils.AssertTrue(t, ok)
		utils.AssertEqual(t, drawn, top)
		utils.AssertEqual(t, len(s.Stacks[0]), 1)
	})

	t.Run("empty stack", func(t *testing.T) {
		s.DrawFromStack(0)
		utils.AssertTrue(t, s.IsStackEmpty(0))

		_, ok := s.DrawFromStack(0)
		utils.AssertEqual(t, ok, false)
	})

	t.Run("out of range", func(t *testing.T) {
		_, ok := s.DrawFromStack(NumStacks)
		utils.AssertEqual(t, ok, false)
	})
}

func TestNonEmptyStacks(t *testing.T) {
	s := NewSupply(testCards(), 1)
	for !s.IsStackEmpty(1) {
		s.DrawFromStack(1)
	}

	utils.AssertDeepEqual(t, s.NonEmptyStacks(), []int{0, 2, 3})
}

func TestReturnToStack(t *testing.T) {
	s := NewSupply(testCards(), 1)
	discard := &Card{Name: "Discarded", Type: Building}

	t.Run("to the bottom", func(t *testing.T) {
		s.ReturnToStackBottom(2, discard)
		utils.AssertEqual(t, s.Stacks[2][0], discard)
	})

	t.Run("to the top", func(t *testing.T) {
		onTop := &Card{Name: "On Top", Type: Building}
		s.ReturnToStackTop(2, onTop)
		utils.AssertEqual(t, s.PeekStack(2), onTop)
	})
}

func TestTakeFromStack(t *testing.T) {
	s := NewSupply(testCards(), 1)
	target := s.Stacks[3][0]

	utils.AssertTrue(t, s.TakeFromStack(3, target))
	utils.AssertEqual(t, len(s.Stacks[3]), 1)
	utils.AssertEqual(t, s.TakeFromStack(3, target), false)
}

func TestRemoveRegion(t *testing.T) {
	s := NewSupply(testCards(), 1)

	c, ok := s.RemoveRegion("Forest")
	utils.AssertTrue(t, ok)
	utils.AssertEqual(t, c.Name, "Forest")
	utils.AssertEqual(t, len(s.Regions), 1)

	_, ok = s.RemoveRegion("Forest")
	utils.AssertEqual(t, ok, false)
}

func TestReturnSettlement(t *testing.T) {
	s := NewSupply(testCards(), 1)
	c, _ := s.DrawSettlement()
	utils.AssertEqual(t, len(s.Settlements), 0)

	s.ReturnSettlement(c)
	utils.AssertEqual(t, len(s.Settlements), 1)
}

func TestShuffleEventsBuriesReshuffleCard(t *testing.T) {
	t.Run("deep pile", func(t *testing.T) {
		cards := []*Card{{Name: ReshuffleCard, Type: Event}}
		for i := 0; i < 5; i++ {
			cards = append(cards, &Card{Name: fmt.Sprintf("Event %d", i), Type: Event})
		}
		s := NewSupply(cards, 42)

		s.ShuffleEvents()

		utils.AssertEqual(t, s.Events[reshuffleDepth].Name, ReshuffleCard)
	})

	t.Run("shallow pile goes to the bottom", func(t *testing.T) {
		cards := []*Card{
			{Name: ReshuffleCard, Type: Event},
			{Name: "Event 0", Type: Event},
		}
		s := NewSupply(cards, 42)

		s.ShuffleEvents()

		utils.AssertEqual(t, s.Events[0].Name, ReshuffleCard)
	})
}

func TestEventDiscard(t *testing.T) {
	cards := []*Card{
		{Name: "Event 0", Type: Event},
		{Name: "Event 1", Type: Event},
	}
	s := NewSupply(cards, 1)

	c, ok := s.DrawEvent()
	utils.AssertTrue(t, ok)
	s.DiscardEvent(c)

	utils.AssertEqual(t, len(s.Events), 1)
	utils.AssertEqual(t, len(s.EventDiscard), 1)

	s.ReturnEvents()
	utils.AssertEqual(t, len(s.Events), 2)
	utils.AssertEqual(t, len(s.EventDiscard), 0)
}
