package game

import (
	"fmt"
	"strings"

	"github.com/minaorangina/rivals/deck"
	"github.com/minaorangina/rivals/protocol"
	"github.com/minaorangina/rivals/render"
)

// ActionHandler runs one action-phase command. The bool reports
// whether the action phase is over.
type ActionHandler func(*Turn) (bool, error)

// DefaultActionHandlers maps player commands to their handlers
func DefaultActionHandlers() map[protocol.Cmd]ActionHandler {
	return map[protocol.Cmd]ActionHandler{
		protocol.PlayCard: playCard,
		protocol.Build:    build,
		protocol.Trade:    tradeWithBank,
		protocol.View:     viewGame,
		protocol.EndTurn:  endTurn,
	}
}

// buildCosts prices the three centre cards
var buildCosts = map[deck.CardType]deck.Cost{
	deck.Road:       {deck.Brick: 2, deck.Lumber: 1},
	deck.Settlement: {deck.Brick: 1, deck.Grain: 1, deck.Lumber: 1, deck.Wool: 1},
	deck.City:       {deck.Grain: 2, deck.Ore: 3},
}

// BuildCost returns the price of a buildable centre card
func BuildCost(t deck.CardType) (deck.Cost, bool) {
	cost, ok := buildCosts[t]
	return cost, ok
}

func (e *gameEngine) actionLoop(t *Turn) error {
	for {
		if err := e.displayGameState(t); err != nil {
			return err
		}

		input, err := t.agent.ReceiveInput("Choose action: " + strings.Join(protocol.Verbs(), ", "))
		if err != nil {
			return err
		}

		cmd := protocol.NameToCmd[strings.ToUpper(strings.TrimSpace(input))]
		handler, ok := e.actions[cmd]
		if cmd == protocol.Null || !ok {
			if err := t.agent.SendMessage("Invalid input. Actions: " + strings.Join(protocol.Verbs(), ", ")); err != nil {
				return err
			}
			continue
		}

		done, err := handler(t)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (e *gameEngine) displayGameState(t *Turn) error {
	boards := render.Boards(
		render.BoardView{Name: t.seat.Info.Name, Board: t.seat.Principality},
		render.BoardView{Name: t.opponent.Info.Name, Board: t.opponent.Principality},
	)
	if err := t.agent.SendMessage(boards); err != nil {
		return err
	}
	if err := t.agent.SendMessage(render.Hand(t.seat.Hand)); err != nil {
		return err
	}
	if err := t.agent.SendMessage(render.Resources(t.seat.Bank.Counts())); err != nil {
		return err
	}
	seat := t.seat
	return t.agent.SendMessage(render.Points(seat.VictoryPoints, seat.CommercePoints, seat.SkillPoints, seat.StrengthPoints, seat.ProgressPoints))
}

// playCard plays one card from the active player's hand. The cost is
// only paid once the card's effect has agreed to run, and refunded if
// the effect then fails.
func playCard(t *Turn) (bool, error) {
	if len(t.seat.Hand) == 0 {
		return false, t.agent.SendMessage("No cards in hand")
	}

	idx, err := t.agent.ChooseCardFromHand(t.seat.Hand, "Choose card to play")
	if err != nil {
		return false, err
	}
	if idx < 0 || idx >= len(t.seat.Hand) {
		return false, t.agent.SendMessage("Invalid card index")
	}
	card := t.seat.Hand[idx]

	if !t.seat.Bank.CanAfford(card.Cost) {
		return false, t.agent.SendMessage("Cannot afford: " + card.Cost.String())
	}

	var pos protocol.Position
	if card.Type.Placeable() {
		pos, err = t.agent.ChoosePosition("Enter position (row col)")
		if err != nil {
			return false, err
		}
	}

	eff := t.effectFor(card)
	if !eff.CanApply(t.seat, card, pos) {
		return false, t.agent.SendMessage("Cannot play card at that position")
	}
	if !t.seat.Bank.Pay(card.Cost) {
		return false, t.agent.SendMessage("Cannot afford: " + card.Cost.String())
	}
	if err := eff.Apply(t.seat, card, pos); err != nil {
		t.seat.Bank.Refund(card.Cost)
		return false, t.agent.SendMessage("Could not play " + card.Name + ". Refunded its cost")
	}

	t.seat.RemoveFromHand(idx)
	return false, t.agent.SendMessage("Played: " + card.Name)
}

// build puts a Road, Settlement or City into the principality's
// centre row
func build(t *Turn) (bool, error) {
	input, err := t.agent.ReceiveInput("Build what? Road, Settlement, City (or C to cancel)")
	if err != nil {
		return false, err
	}

	choice := strings.ToUpper(strings.TrimSpace(input))
	if choice == "C" {
		return false, nil
	}

	var buildType deck.CardType
	switch choice {
	case "ROAD":
		buildType = deck.Road
	case "SETTLEMENT":
		buildType = deck.Settlement
	case "CITY":
		buildType = deck.City
	default:
		return false, t.agent.SendMessage("Invalid type!")
	}

	cost := buildCosts[buildType]
	if !t.seat.Bank.CanAfford(cost) {
		return false, t.agent.SendMessage(fmt.Sprintf("Cannot afford %s. Cost: %s", buildType, cost))
	}

	pos, err := t.agent.ChoosePosition("Enter position (row col)")
	if err != nil {
		return false, err
	}

	if buildType == deck.City {
		return upgradeToCity(t, pos, cost)
	}
	return buildCentreCard(t, buildType, pos, cost)
}

// buildCentreCard handles Roads and Settlements. Both go in the centre
// row next to the right kind of neighbour; building at an edge column
// widens the grid. A new Settlement brings up to two face-down regions
// into its empty diagonal cells.
func buildCentreCard(t *Turn, buildType deck.CardType, pos protocol.Position, cost deck.Cost) (bool, error) {
	board := t.seat.Principality
	if pos.Row != CenterRow || !board.InBounds(pos.Row, pos.Col) {
		return false, t.agent.SendMessage(fmt.Sprintf("A %s goes in the centre row", buildType))
	}
	if !board.IsEmpty(pos.Row, pos.Col) {
		return false, t.agent.SendMessage("Position not empty!")
	}

	switch buildType {
	case deck.Road:
		if !hasHorizontalNeighbour(board, pos, deck.Settlement, deck.City) {
			return false, t.agent.SendMessage("A Road must join a Settlement or City")
		}
	case deck.Settlement:
		if !hasHorizontalNeighbour(board, pos, deck.Road) {
			return false, t.agent.SendMessage("A Settlement must sit at the end of a Road")
		}
	}

	var card *deck.Card
	var ok bool
	if buildType == deck.Road {
		card, ok = t.Supply().DrawRoad()
	} else {
		card, ok = t.Supply().DrawSettlement()
	}
	if !ok {
		return false, t.agent.SendMessage(fmt.Sprintf("No %s available!", buildType))
	}

	if !t.seat.Bank.Pay(cost) {
		return false, t.agent.SendMessage(fmt.Sprintf("Cannot afford %s. Cost: %s", buildType, cost))
	}

	placed, err := board.PlaceWithExpansion(card, pos.Row, pos.Col)
	if err != nil {
		t.seat.Bank.Refund(cost)
		return false, t.agent.SendMessage("Cannot build there")
	}
	t.seat.AddPoints(card)

	if err := t.agent.SendMessage(fmt.Sprintf("Built %s at (%d,%d)", buildType, placed.Row, placed.Col)); err != nil {
		return false, err
	}
	if buildType == deck.Settlement {
		return false, placeSettlementRegions(t, placed)
	}
	return false, nil
}

// placeSettlementRegions deals new regions into the empty cells
// diagonal to a just-built settlement. They arrive unstocked.
func placeSettlementRegions(t *Turn, pos protocol.Position) error {
	board := t.seat.Principality
	candidates := []protocol.Position{
		{Row: pos.Row - 1, Col: pos.Col - 1},
		{Row: pos.Row - 1, Col: pos.Col + 1},
		{Row: pos.Row + 1, Col: pos.Col - 1},
		{Row: pos.Row + 1, Col: pos.Col + 1},
	}

	placed := 0
	for _, cand := range candidates {
		if placed == 2 {
			break
		}
		if !board.InBounds(cand.Row, cand.Col) || !board.IsEmpty(cand.Row, cand.Col) {
			continue
		}
		region, ok := t.Supply().DrawRegion()
		if !ok {
			break
		}
		region.SetStored(0)
		if err := board.Place(region, cand.Row, cand.Col); err != nil {
			continue
		}
		placed++
		msg := fmt.Sprintf("New region %s (die %d) at (%d,%d)", region.Name, region.DieFace, cand.Row, cand.Col)
		if err := t.agent.SendMessage(msg); err != nil {
			return err
		}
	}
	return nil
}

// upgradeToCity swaps a Settlement for a City on the same cell. The
// settlement goes back to the supply.
func upgradeToCity(t *Turn, pos protocol.Position, cost deck.Cost) (bool, error) {
	board := t.seat.Principality
	existing := board.CardAt(pos.Row, pos.Col)
	if existing == nil || existing.Type != deck.Settlement {
		return false, t.agent.SendMessage("City must be built on a Settlement")
	}

	city, ok := t.Supply().DrawCity()
	if !ok {
		return false, t.agent.SendMessage("No City available!")
	}
	if !t.seat.Bank.Pay(cost) {
		return false, t.agent.SendMessage(fmt.Sprintf("Cannot afford City. Cost: %s", cost))
	}

	settlement := board.RemoveAt(pos.Row, pos.Col)
	if err := board.Place(city, pos.Row, pos.Col); err != nil {
		board.Place(settlement, pos.Row, pos.Col)
		t.Supply().Cities = append(t.Supply().Cities, city)
		t.seat.Bank.Refund(cost)
		return false, t.agent.SendMessage("Cannot build there")
	}
	t.seat.RemovePoints(settlement)
	t.Supply().ReturnSettlement(settlement)
	t.seat.AddPoints(city)

	return false, t.agent.SendMessage(fmt.Sprintf("Built City at (%d,%d)", pos.Row, pos.Col))
}

func hasHorizontalNeighbour(board *Principality, pos protocol.Position, types ...deck.CardType) bool {
	for _, dc := range []int{-1, 1} {
		c := board.CardAt(pos.Row, pos.Col+dc)
		if c == nil {
			continue
		}
		for _, want := range types {
			if c.Type == want {
				return true
			}
		}
	}
	return false
}

// tradeWithBank swaps resources at 3:1, or 2:1 for resources covered
// by a trade ship in play
func tradeWithBank(t *Turn) (bool, error) {
	rateFor := func(rt deck.ResourceType) int {
		if t.seat.HasTwoForOne(rt) {
			return t.Balance().ShipTradeRate
		}
		return t.Balance().BankTradeRate
	}

	gives := []deck.ResourceType{}
	for _, rt := range deck.ResourceTypes() {
		if t.seat.Bank.Count(rt) >= rateFor(rt) {
			gives = append(gives, rt)
		}
	}
	if len(gives) == 0 {
		return false, t.agent.SendMessage("Not enough resources to trade")
	}

	give, err := t.agent.ChooseResourceType(gives, "Trade away which resource?")
	if err != nil {
		return false, err
	}
	rate := rateFor(give)

	receive, err := t.agent.ChooseResourceType(deck.ResourceTypes(), fmt.Sprintf("Receive which resource? (%d %s for 1)", rate, give))
	if err != nil {
		return false, err
	}
	if receive == give {
		return false, t.agent.SendMessage("Cannot trade for the same resource type")
	}

	if !t.seat.Bank.Remove(give, rate) {
		return false, t.agent.SendMessage("Not enough " + give.String())
	}
	if t.seat.Bank.Add(receive, 1) == 0 {
		t.seat.Bank.Add(give, rate)
		return false, t.agent.SendMessage("No room to store " + receive.String())
	}

	return false, t.agent.SendMessage(fmt.Sprintf("Traded %d %s for 1 %s", rate, give, receive))
}

// viewGame re-displays the game state, which the action loop does on
// every pass anyway
func viewGame(t *Turn) (bool, error) {
	return false, nil
}

func endTurn(t *Turn) (bool, error) {
	return true, nil
}
