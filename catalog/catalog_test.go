package catalog

import (
	"testing"

	"github.com/minaorangina/rivals/deck"
	utils "github.com/minaorangina/rivals/internal"
)

func TestParse(t *testing.T) {
	t.Run("number expands into distinct copies", func(t *testing.T) {
		cards, err := Parse([]byte(`[
			{"name": "Road", "theme": "Basic", "type": "Center Card", "cost": "BBL", "number": 3}
		]`))
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, len(cards), 3)
		utils.AssertTrue(t, cards[0] != cards[1])
		utils.AssertEqual(t, cards[0].Type, deck.Road)
		utils.AssertEqual(t, cards[0].Cost[deck.Brick], 2)
		utils.AssertEqual(t, cards[0].Cost[deck.Lumber], 1)
	})

	t.Run("only basic theme cards are materialized", func(t *testing.T) {
		cards, err := Parse([]byte(`[
			{"name": "Abbey", "theme": "Basic", "type": "Building", "SP": "1"},
			{"name": "Toll Bridge", "theme": "Era of Gold", "type": "Building", "CP": "2"}
		]`))
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, len(cards), 1)
		utils.AssertEqual(t, cards[0].Name, "Abbey")
		utils.AssertEqual(t, cards[0].SkillPoints, 1)
	})

	t.Run("loose type strings resolve", func(t *testing.T) {
		cards, err := Parse([]byte(`[
			{"name": "Wool Ship", "theme": "Basic", "type": "Unit - Ship", "CP": "1"},
			{"name": "Militia", "theme": "Basic", "type": "Unit - Hero", "FP": "1"},
			{"name": "City", "theme": "Basic", "type": "Center Card", "victoryPoints": "2"},
			{"name": "Yule", "theme": "Basic", "type": "Event"}
		]`))
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, cards[0].Type, deck.Ship)
		utils.AssertEqual(t, cards[1].Type, deck.Unit)
		utils.AssertEqual(t, cards[1].StrengthPoints, 1)
		utils.AssertEqual(t, cards[2].Type, deck.City)
		utils.AssertEqual(t, cards[2].VictoryPoints, 2)
		utils.AssertEqual(t, cards[3].Type, deck.Event)
	})

	t.Run("a card with an unrecognized type fails", func(t *testing.T) {
		_, err := Parse([]byte(`[
			{"name": "Mystery", "theme": "Basic", "type": "Enchantment"}
		]`))
		utils.AssertErrored(t, err)
	})

	t.Run("schema rejects a card without a name", func(t *testing.T) {
		_, err := Parse([]byte(`[
			{"theme": "Basic", "type": "Building"}
		]`))
		utils.AssertErrored(t, err)
	})

	t.Run("schema rejects unknown cost letters", func(t *testing.T) {
		_, err := Parse([]byte(`[
			{"name": "Odd", "theme": "Basic", "type": "Building", "cost": "XYZ"}
		]`))
		utils.AssertErrored(t, err)
	})

	t.Run("schema rejects unknown fields", func(t *testing.T) {
		_, err := Parse([]byte(`[
			{"name": "Odd", "theme": "Basic", "type": "Building", "mana": "3"}
		]`))
		utils.AssertErrored(t, err)
	})

	t.Run("rejects JSON that is not an array", func(t *testing.T) {
		_, err := Parse([]byte(`{"name": "Road"}`))
		utils.AssertErrored(t, err)
	})
}

func TestLoadShippedCatalog(t *testing.T) {
	cards, err := Load("../data/cards.json")
	utils.AssertNoError(t, err)

	byType := map[deck.CardType]int{}
	for _, c := range cards {
		byType[c.Type]++
	}

	utils.AssertEqual(t, byType[deck.Road], 7)
	utils.AssertEqual(t, byType[deck.Settlement], 5)
	utils.AssertEqual(t, byType[deck.City], 7)
	utils.AssertEqual(t, byType[deck.Region], 24)
	utils.AssertEqual(t, byType[deck.Event], 6)

	expansions := byType[deck.Building] + byType[deck.Ship] + byType[deck.Unit]
	utils.AssertEqual(t, expansions, 24)

	t.Run("the supply deals expansions evenly", func(t *testing.T) {
		supply := deck.NewSupply(cards, 1)
		for i := 0; i < deck.NumStacks; i++ {
			utils.AssertEqual(t, len(supply.StackCards(i)), 6)
		}
	})

	t.Run("every terrain appears four times", func(t *testing.T) {
		regions := map[string]int{}
		for _, c := range cards {
			if c.Type == deck.Region {
				regions[c.Name]++
			}
		}
		for name, n := range regions {
			if n != 4 {
				t.Errorf("region %s appears %d times, want 4", name, n)
			}
		}
	})
}
