package game

import (
	"testing"

	"github.com/minaorangina/rivals/deck"
	"github.com/minaorangina/rivals/protocol"
	"github.com/stretchr/testify/assert"
)

func aSeat() *Player {
	return NewPlayer(protocol.PlayerInfo{PlayerID: "p1", Name: "Nadia"})
}

func TestPlayerPoints(t *testing.T) {
	t.Run("a card credits every point type it carries", func(t *testing.T) {
		p := aSeat()
		c := &deck.Card{
			Name:           "Great Hall",
			Type:           deck.Building,
			VictoryPoints:  1,
			CommercePoints: 2,
			SkillPoints:    3,
		}

		p.AddPoints(c)

		assert.Equal(t, 1, p.VictoryPoints)
		assert.Equal(t, 2, p.CommercePoints)
		assert.Equal(t, 3, p.SkillPoints)
		assert.Equal(t, 0, p.StrengthPoints)
	})

	t.Run("removing a card debits the same points", func(t *testing.T) {
		p := aSeat()
		c := &deck.Card{Name: "Militia", Type: deck.Unit, StrengthPoints: 2}

		p.AddPoints(c)
		p.RemovePoints(c)

		assert.Equal(t, 0, p.StrengthPoints)
	})
}

func TestPlayerHandLimit(t *testing.T) {
	p := aSeat()
	assert.Equal(t, 3, p.HandLimit(3))

	p.ProgressPoints = 2
	assert.Equal(t, 5, p.HandLimit(3))
}

func TestPlayerHand(t *testing.T) {
	t.Run("cards come out in the order they went in", func(t *testing.T) {
		p := aSeat()
		first := &deck.Card{Name: "Scout", Type: deck.Unit}
		second := &deck.Card{Name: "Militia", Type: deck.Unit}

		p.AddToHand(first)
		p.AddToHand(second)
		assert.Equal(t, 2, len(p.Hand))

		assert.Equal(t, first, p.RemoveFromHand(0))
		assert.Equal(t, []*deck.Card{second}, p.Hand)
	})

	t.Run("a nil card is not added", func(t *testing.T) {
		p := aSeat()
		p.AddToHand(nil)
		assert.Equal(t, 0, len(p.Hand))
	})

	t.Run("an out of range index removes nothing", func(t *testing.T) {
		p := aSeat()
		p.AddToHand(&deck.Card{Name: "Scout", Type: deck.Unit})

		assert.Nil(t, p.RemoveFromHand(3))
		assert.Nil(t, p.RemoveFromHand(-1))
		assert.Equal(t, 1, len(p.Hand))
	})
}

func TestPlayerCapabilities(t *testing.T) {
	t.Run("buildings on the board grant their flag", func(t *testing.T) {
		p := aSeat()
		marketplace := &deck.Card{Name: "Marketplace", Type: deck.Building}
		assert.NoError(t, p.Principality.Place(marketplace, 1, 1))

		refreshEffects(p)

		assert.True(t, p.HasFlag(FlagMarketplace))
		assert.False(t, p.HasFlag(FlagTownHall))
	})

	t.Run("trade ships grant a 2:1 rate for their resource", func(t *testing.T) {
		p := aSeat()
		ship := &deck.Card{Name: "Wool Ship", Type: deck.Ship}
		assert.NoError(t, p.Principality.Place(ship, 1, 1))

		refreshEffects(p)

		assert.True(t, p.HasTwoForOne(deck.Wool))
		assert.False(t, p.HasTwoForOne(deck.Brick))
	})

	t.Run("removing the card removes the capability", func(t *testing.T) {
		p := aSeat()
		townHall := &deck.Card{Name: "Town Hall", Type: deck.Building}
		assert.NoError(t, p.Principality.Place(townHall, 1, 1))

		refreshEffects(p)
		assert.True(t, p.HasFlag(FlagTownHall))

		p.Principality.RemoveAt(1, 1)
		refreshEffects(p)
		assert.False(t, p.HasFlag(FlagTownHall))
	})
}
