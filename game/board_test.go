package game

import (
	"testing"

	"github.com/minaorangina/rivals/deck"
	utils "github.com/minaorangina/rivals/internal"
)

func aCard(name string, ct deck.CardType) *deck.Card {
	return &deck.Card{Name: name, Type: ct}
}

func TestPrincipality(t *testing.T) {
	t.Run("starts as an empty five by five grid", func(t *testing.T) {
		board := NewPrincipality()

		utils.AssertEqual(t, board.Rows(), 5)
		utils.AssertEqual(t, board.Cols(), 5)
		utils.AssertTrue(t, board.CardAt(2, 2) == nil)
		utils.AssertTrue(t, board.IsEmpty(2, 2))
	})

	t.Run("places cards in the three inner rows", func(t *testing.T) {
		board := NewPrincipality()
		card := aCard("Road", deck.Road)

		utils.AssertNoError(t, board.Place(card, 2, 2))
		utils.AssertEqual(t, board.CardAt(2, 2), card)
	})

	t.Run("keeps the buffer rows clear", func(t *testing.T) {
		board := NewPrincipality()

		utils.AssertEqual(t, board.Place(aCard("Road", deck.Road), 0, 2), ErrIllegalRow)
		utils.AssertEqual(t, board.Place(aCard("Road", deck.Road), 4, 2), ErrIllegalRow)
	})

	t.Run("rejects occupied positions", func(t *testing.T) {
		board := NewPrincipality()

		utils.AssertNoError(t, board.Place(aCard("Road", deck.Road), 2, 2))
		utils.AssertEqual(t, board.Place(aCard("Road", deck.Road), 2, 2), ErrOccupied)
	})

	t.Run("rejects positions off the board", func(t *testing.T) {
		board := NewPrincipality()

		utils.AssertEqual(t, board.Place(aCard("Road", deck.Road), 2, 9), ErrOutOfBounds)
		utils.AssertEqual(t, board.Place(aCard("Road", deck.Road), -1, 0), ErrOutOfBounds)
	})

	t.Run("grows leftwards and shifts the placed card", func(t *testing.T) {
		board := NewPrincipality()
		card := aCard("Road", deck.Road)

		pos, err := board.PlaceWithExpansion(card, 2, 0)
		utils.AssertNoError(t, err)

		utils.AssertEqual(t, pos.Row, 2)
		utils.AssertEqual(t, pos.Col, 1)
		utils.AssertEqual(t, board.Cols(), 6)
		utils.AssertEqual(t, board.CardAt(2, 1), card)
		utils.AssertTrue(t, board.CardAt(2, 0) == nil)
	})

	t.Run("grows rightwards without shifting", func(t *testing.T) {
		board := NewPrincipality()
		card := aCard("Road", deck.Road)

		pos, err := board.PlaceWithExpansion(card, 2, 4)
		utils.AssertNoError(t, err)

		utils.AssertEqual(t, pos.Col, 4)
		utils.AssertEqual(t, board.Cols(), 6)
		utils.AssertEqual(t, board.CardAt(2, 4), card)
		utils.AssertTrue(t, board.CardAt(2, 5) == nil)
	})

	t.Run("inner placements leave the size alone", func(t *testing.T) {
		board := NewPrincipality()

		pos, err := board.PlaceWithExpansion(aCard("Road", deck.Road), 2, 2)
		utils.AssertNoError(t, err)

		utils.AssertEqual(t, pos.Col, 2)
		utils.AssertEqual(t, board.Cols(), 5)
	})

	t.Run("removes cards", func(t *testing.T) {
		board := NewPrincipality()
		card := aCard("Settlement", deck.Settlement)
		utils.AssertNoError(t, board.Place(card, 2, 1))

		utils.AssertEqual(t, board.RemoveAt(2, 1), card)
		utils.AssertTrue(t, board.IsEmpty(2, 1))
	})

	t.Run("finds cards by type in row order", func(t *testing.T) {
		board := NewPrincipality()
		utils.AssertNoError(t, board.Place(aCard("Settlement", deck.Settlement), 2, 1))
		utils.AssertNoError(t, board.Place(aCard("Road", deck.Road), 2, 2))
		utils.AssertNoError(t, board.Place(aCard("Settlement", deck.Settlement), 2, 3))

		found := board.FindByType(deck.Settlement)
		utils.AssertEqual(t, len(found), 2)
		utils.AssertEqual(t, found[0].Pos.Col, 1)
		utils.AssertEqual(t, found[1].Pos.Col, 3)
	})

	t.Run("finds cards by name", func(t *testing.T) {
		board := NewPrincipality()
		utils.AssertNoError(t, board.Place(aCard("Marketplace", deck.Building), 1, 2))

		found, ok := board.FindByName("Marketplace")
		utils.AssertTrue(t, ok)
		utils.AssertEqual(t, found.Pos.Row, 1)
		utils.AssertEqual(t, found.Pos.Col, 2)

		_, ok = board.FindByName("Cathedral")
		utils.AssertTrue(t, !ok)
	})

	t.Run("lists orthogonal neighbours", func(t *testing.T) {
		board := NewPrincipality()
		utils.AssertNoError(t, board.Place(aCard("Forest", deck.Region), 1, 2))
		utils.AssertNoError(t, board.Place(aCard("Hill", deck.Region), 3, 2))
		utils.AssertNoError(t, board.Place(aCard("Settlement", deck.Settlement), 2, 1))
		utils.AssertNoError(t, board.Place(aCard("Settlement", deck.Settlement), 2, 3))

		utils.AssertEqual(t, len(board.Neighbours(2, 2)), 4)
		utils.AssertEqual(t, len(board.Neighbours(1, 0)), 0)
	})
}
