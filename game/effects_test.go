package game

import (
	"testing"

	"github.com/minaorangina/rivals/deck"
	utils "github.com/minaorangina/rivals/internal"
	"github.com/minaorangina/rivals/protocol"
)

func TestDefaultEffect(t *testing.T) {
	t.Run("places a card and credits its points", func(t *testing.T) {
		p := NewPlayer(protocol.PlayerInfo{PlayerID: "p1", Name: "Harry"})
		card := &deck.Card{Name: "Abbey", Type: deck.Building, SkillPoints: 1}
		pos := protocol.Position{Row: 1, Col: 1}

		utils.AssertTrue(t, DefaultEffect{}.CanApply(p, card, pos))
		utils.AssertNoError(t, DefaultEffect{}.Apply(p, card, pos))

		utils.AssertEqual(t, p.Principality.CardAt(1, 1), card)
		utils.AssertEqual(t, p.SkillPoints, 1)
	})

	t.Run("rejects an occupied position", func(t *testing.T) {
		p := NewPlayer(protocol.PlayerInfo{PlayerID: "p1", Name: "Harry"})
		pos := protocol.Position{Row: 1, Col: 1}
		utils.AssertNoError(t, p.Principality.Place(aCard("Abbey", deck.Building), pos.Row, pos.Col))

		card := aCard("Marketplace", deck.Building)
		utils.AssertTrue(t, !DefaultEffect{}.CanApply(p, card, pos))
	})

	t.Run("cards without a placement score a point", func(t *testing.T) {
		p := NewPlayer(protocol.PlayerInfo{PlayerID: "p1", Name: "Harry"})
		card := aCard("Feast", deck.Action)

		utils.AssertTrue(t, DefaultEffect{}.CanApply(p, card, protocol.Position{}))
		utils.AssertNoError(t, DefaultEffect{}.Apply(p, card, protocol.Position{}))
		utils.AssertEqual(t, p.VictoryPoints, 1)
	})

	t.Run("placing a flag building activates it", func(t *testing.T) {
		p := NewPlayer(protocol.PlayerInfo{PlayerID: "p1", Name: "Harry"})
		card := &deck.Card{Name: "Marketplace", Type: deck.Building, CommercePoints: 1}

		utils.AssertNoError(t, DefaultEffect{}.Apply(p, card, protocol.Position{Row: 1, Col: 1}))

		utils.AssertTrue(t, p.HasFlag(FlagMarketplace))
		utils.AssertEqual(t, p.CommercePoints, 1)
	})
}

func TestIsBoosted(t *testing.T) {
	t.Run("a booster beside its region doubles it", func(t *testing.T) {
		board := NewPrincipality()
		utils.AssertNoError(t, board.Place(regionCard("Forest", 3, 0), 1, 1))
		utils.AssertNoError(t, board.Place(aCard("Lumber Camp", deck.Building), 1, 0))

		regions := board.FindByType(deck.Region)
		utils.AssertTrue(t, isBoosted(board, regions[0]))
	})

	t.Run("unrelated buildings do not boost", func(t *testing.T) {
		board := NewPrincipality()
		utils.AssertNoError(t, board.Place(regionCard("Forest", 3, 0), 1, 1))
		utils.AssertNoError(t, board.Place(aCard("Grain Mill", deck.Building), 1, 0))

		regions := board.FindByType(deck.Region)
		utils.AssertTrue(t, !isBoosted(board, regions[0]))
	})

	t.Run("diagonal neighbours do not count", func(t *testing.T) {
		board := NewPrincipality()
		utils.AssertNoError(t, board.Place(regionCard("Forest", 3, 0), 1, 1))
		utils.AssertNoError(t, board.Place(aCard("Lumber Camp", deck.Building), 2, 2))

		regions := board.FindByType(deck.Region)
		utils.AssertTrue(t, !isBoosted(board, regions[0]))
	})
}

func TestRefreshEffects(t *testing.T) {
	t.Run("flags follow the board", func(t *testing.T) {
		p := NewPlayer(protocol.PlayerInfo{PlayerID: "p1", Name: "Harry"})
		utils.AssertNoError(t, p.Principality.Place(aCard("Town Hall", deck.Building), 1, 0))
		utils.AssertNoError(t, p.Principality.Place(aCard("Odin's Fountain", deck.Building), 1, 2))

		refreshEffects(p)
		utils.AssertTrue(t, p.HasFlag(FlagTownHall))
		utils.AssertTrue(t, p.HasFlag(FlagOdinsFountain))
		utils.AssertTrue(t, !p.HasFlag(FlagMarketplace))

		p.Principality.RemoveAt(1, 0)
		refreshEffects(p)
		utils.AssertTrue(t, !p.HasFlag(FlagTownHall))
	})

	t.Run("ships grant two for one trades", func(t *testing.T) {
		p := NewPlayer(protocol.PlayerInfo{PlayerID: "p1", Name: "Harry"})
		utils.AssertNoError(t, p.Principality.Place(aCard("Lumber Ship", deck.Ship), 1, 0))
		utils.AssertNoError(t, p.Principality.Place(aCard("Sacrificial Site", deck.Building), 1, 2))

		refreshEffects(p)
		utils.AssertTrue(t, p.HasTwoForOne(deck.Lumber))
		utils.AssertTrue(t, p.HasTwoForOne(deck.Wool))
		utils.AssertTrue(t, !p.HasTwoForOne(deck.Brick))
	})
}
