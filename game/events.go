package game

import (
	"fmt"

	"github.com/minaorangina/rivals/deck"
)

// EventHandler resolves one face of the event die
type EventHandler func(*Turn) error

// DefaultEventHandlers maps each event die face to its resolution
func DefaultEventHandlers() map[EventFace]EventHandler {
	return map[EventFace]EventHandler{
		FaceBrigand:     brigandAttack,
		FaceTrade:       tradeBonus,
		FaceCelebration: celebration,
		FaceHarvest:     plentifulHarvest,
		FaceEventCard:   drawEventCard,
	}
}

// DefaultEventCardHandlers maps event card names to their resolution.
// A card without an entry only announces itself.
func DefaultEventCardHandlers() map[string]EventHandler {
	return map[string]EventHandler{
		"Fraternal Feuds": fraternalFeuds,
		"Year of Plenty":  plentifulHarvest,
	}
}

func (e *gameEngine) runEvent(t *Turn, face EventFace) error {
	if err := t.Broadcast("Event: " + face.String()); err != nil {
		return err
	}
	handler, ok := e.events[face]
	if !ok {
		return nil
	}
	return handler(t)
}

// brigandAttack raids every player holding more resources than the
// threshold. Their stored Gold and Wool go to zero; everything else is
// untouched.
func brigandAttack(t *Turn) error {
	threshold := t.Balance().BrigandThreshold
	for _, seat := range []*Player{t.seat, t.opponent} {
		if seat.Bank.Total() <= threshold {
			continue
		}
		seat.Bank.RemoveAll(deck.Gold)
		seat.Bank.RemoveAll(deck.Wool)
		if err := t.agentOf(seat).SendMessage("Brigands stole your Gold and Wool!"); err != nil {
			return err
		}
	}
	return nil
}

// tradeBonus rewards a commerce lead of at least the advantage margin
// with one resource of the leader's choice
func tradeBonus(t *Turn) error {
	lead := t.Balance().AdvantageLead
	for _, seat := range []*Player{t.seat, t.opponent} {
		other := t.engine.opponentOf(seat)
		if seat.CommercePoints-other.CommercePoints < lead {
			continue
		}
		if err := grantChosenResource(t, seat, "Trade advantage! Choose 1 resource"); err != nil {
			return err
		}
	}
	return nil
}

// celebration rewards the player with more skill points. On a tie both
// players collect.
func celebration(t *Turn) error {
	a, b := t.seat, t.opponent
	switch {
	case a.SkillPoints == b.SkillPoints:
		for _, seat := range []*Player{a, b} {
			if err := grantChosenResource(t, seat, "Celebration (tie)! Choose 1 resource"); err != nil {
				return err
			}
		}
		return nil
	case a.SkillPoints > b.SkillPoints:
		return grantChosenResource(t, a, "Celebration (most skill)! Choose 1 resource")
	default:
		return grantChosenResource(t, b, "Celebration (most skill)! Choose 1 resource")
	}
}

// plentifulHarvest grants every player one resource of their choice
func plentifulHarvest(t *Turn) error {
	for _, seat := range []*Player{t.seat, t.opponent} {
		if err := grantChosenResource(t, seat, "Plentiful Harvest! Choose 1 resource"); err != nil {
			return err
		}
	}
	return nil
}

func grantChosenResource(t *Turn, seat *Player, prompt string) error {
	rt, err := t.agentOf(seat).ChooseResourceType(deck.ResourceTypes(), prompt)
	if err != nil {
		return err
	}
	added := seat.Bank.Add(rt, 1)
	if added == 0 {
		return t.agentOf(seat).SendMessage(fmt.Sprintf("No room to store %s", rt))
	}
	return t.agentOf(seat).SendMessage(fmt.Sprintf("You gained 1 %s", rt))
}

// drawEventCard reveals the top of the event pile. Yule sends the
// discards back, reshuffles and buries itself, then another card is
// drawn. The attempt cap keeps a nearly-empty pile from cycling.
func drawEventCard(t *Turn) error {
	supply := t.Supply()
	attempts := len(supply.Events) + 1

	for i := 0; i < attempts; i++ {
		c, ok := supply.DrawEvent()
		if !ok {
			return t.Broadcast("Event deck is empty!")
		}

		if err := t.Broadcast("Drew event: " + c.Name); err != nil {
			return err
		}
		if c.Text != "" {
			if err := t.Broadcast("  " + c.Text); err != nil {
				return err
			}
		}

		if c.Name == deck.ReshuffleCard {
			supply.DiscardEvent(c)
			supply.ReturnEvents()
			supply.ShuffleEvents()
			if err := t.Broadcast("Yule: event deck reshuffled!"); err != nil {
				return err
			}
			continue
		}

		var resolveErr error
		if handler, ok := t.engine.eventCards[c.Name]; ok {
			resolveErr = handler(t)
		}
		supply.DiscardEvent(c)
		return resolveErr
	}
	return nil
}

// fraternalFeuds lets a player with a strength lead discard two cards
// from their rival's hand. The discards go under a stack the rival
// picks.
func fraternalFeuds(t *Turn) error {
	lead := t.Balance().AdvantageLead
	var winner, loser *Player
	switch {
	case t.seat.StrengthPoints-t.opponent.StrengthPoints >= lead:
		winner, loser = t.seat, t.opponent
	case t.opponent.StrengthPoints-t.seat.StrengthPoints >= lead:
		winner, loser = t.opponent, t.seat
	default:
		return t.Broadcast("No strength advantage. Fraternal Feuds has no effect")
	}

	winAgent, loseAgent := t.agentOf(winner), t.agentOf(loser)
	if err := winAgent.SendMessage("Fraternal Feuds! You have the strength advantage"); err != nil {
		return err
	}
	if len(loser.Hand) == 0 {
		return winAgent.SendMessage("Opponent has no cards!")
	}

	toDiscard := 2
	if len(loser.Hand) < toDiscard {
		toDiscard = len(loser.Hand)
	}

	for i := 0; i < toDiscard; i++ {
		prompt := fmt.Sprintf("Choose opponent's card to discard (%d/%d)", i+1, toDiscard)
		idx, err := winAgent.ChooseCardFromHand(loser.Hand, prompt)
		if err != nil {
			return err
		}
		discarded := loser.RemoveFromHand(idx)
		if discarded == nil {
			continue
		}

		stackIdx, err := loseAgent.ChooseDrawStack([]int{0, 1, 2, 3}, "Discard "+discarded.Name+" under which stack?")
		if err != nil {
			return err
		}
		if stackIdx < 0 || stackIdx >= deck.NumStacks {
			stackIdx = 0
		}
		t.Supply().ReturnToStackBottom(stackIdx, discarded)

		if err := winAgent.SendMessage("Discarded: " + discarded.Name); err != nil {
			return err
		}
		if err := loseAgent.SendMessage("Your " + discarded.Name + " was discarded!"); err != nil {
			return err
		}
	}
	return nil
}
