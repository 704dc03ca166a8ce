package game

import (
	"fmt"

	"github.com/minaorangina/rivals/deck"
	"github.com/minaorangina/rivals/protocol"
)

// regionPlacement is one starting region: where it goes and how many
// resources it opens with
type regionPlacement struct {
	name   string
	row    int
	col    int
	stored int
}

// startingRegions is the starting principality, read top-left to
// bottom-right. The centre row gets Settlement, Road, Settlement.
var startingRegions = []regionPlacement{
	{"Forest", 1, 0, 1},
	{"Gold Field", 1, 2, 0},
	{"Field", 1, 4, 1},
	{"Hill", 3, 0, 1},
	{"Pasture", 3, 2, 1},
	{"Mountain", 3, 4, 1},
}

// startingDice gives each seat different production numbers for the
// same layout, in startingRegions order
var startingDice = [MaxPlayers][6]int{
	{2, 1, 6, 3, 4, 5},
	{3, 4, 5, 2, 1, 6},
}

// spareRegionDice assigns production numbers to the regions left in
// the supply, two per terrain, drawn later by new settlements
var spareRegionDice = map[string][2]int{
	"Field":      {3, 1},
	"Mountain":   {4, 2},
	"Hill":       {5, 1},
	"Forest":     {6, 4},
	"Pasture":    {6, 5},
	"Gold Field": {3, 2},
}

// setup builds both principalities, shuffles the supply and deals the
// starting hands
func (e *gameEngine) setup() error {
	e.setPhase(PhaseSetup)
	e.seats = make([]*Player, 0, MaxPlayers)
	for _, agent := range e.agents {
		seat := NewPlayer(protocol.PlayerInfo{PlayerID: agent.ID(), Name: agent.Name()})
		e.seats = append(e.seats, seat)
	}

	for i, seat := range e.seats {
		if err := e.layPrincipality(seat, i); err != nil {
			return err
		}
	}

	e.supply.Shuffle()
	e.assignSpareRegionDice()

	for _, seat := range e.seats {
		for i := 0; i < e.balance.StartingHand; i++ {
			if c, ok := e.supply.DrawFromStack(i % deck.NumStacks); ok {
				seat.AddToHand(c)
			}
		}
	}

	e.notify(protocol.EventGameInitialized, map[string]interface{}{
		"gameID":  e.id,
		"players": e.Players(),
	})

	for _, seat := range e.seats {
		if err := e.agentFor(seat).SendMessage(buildWelcomeMessage(seat.Info.Name)); err != nil {
			return err
		}
	}
	return nil
}

// layPrincipality places the fixed starting layout: two settlements
// astride a road in the centre row, six regions above and below
func (e *gameEngine) layPrincipality(seat *Player, seatIdx int) error {
	board := seat.Principality

	settlement1, ok := e.supply.DrawSettlement()
	if !ok {
		return fmt.Errorf("supply has no settlements for setup")
	}
	road, ok := e.supply.DrawRoad()
	if !ok {
		return fmt.Errorf("supply has no roads for setup")
	}
	settlement2, ok := e.supply.DrawSettlement()
	if !ok {
		return fmt.Errorf("supply has no settlements for setup")
	}

	if err := board.Place(settlement1, CenterRow, 1); err != nil {
		return err
	}
	seat.AddPoints(settlement1)
	if err := board.Place(road, CenterRow, 2); err != nil {
		return err
	}
	if err := board.Place(settlement2, CenterRow, 3); err != nil {
		return err
	}
	seat.AddPoints(settlement2)

	dice := startingDice[seatIdx%MaxPlayers]
	for i, placement := range startingRegions {
		region, ok := e.supply.RemoveRegion(placement.name)
		if !ok {
			return fmt.Errorf("supply has no %s region for setup", placement.name)
		}
		region.DieFace = dice[i]
		region.SetStored(placement.stored)
		if err := board.Place(region, placement.row, placement.col); err != nil {
			return err
		}
	}
	return nil
}

// assignSpareRegionDice numbers the regions still in the supply. Each
// terrain's two spares get a fixed pair of faces, in shuffled order.
func (e *gameEngine) assignSpareRegionDice() {
	assigned := map[string]int{}
	for _, c := range e.supply.Regions {
		if c.DieFace != 0 {
			continue
		}
		faces, ok := spareRegionDice[c.Name]
		if !ok {
			continue
		}
		if assigned[c.Name] < len(faces) {
			c.DieFace = faces[assigned[c.Name]]
			assigned[c.Name]++
		}
	}
}
