package game

import (
	"math/rand"
)

const dieSides = 6

// EventFace represents a face of the event die
type EventFace int

const (
	FaceBrigand EventFace = iota
	FaceTrade
	FaceCelebration
	FaceHarvest
	FaceEventCard
)

var faceNames = []string{
	"Brigand Attack",
	"Trade",
	"Celebration",
	"Plentiful Harvest",
	"Event Card",
}

func (f EventFace) String() string {
	if f < 0 || int(f) >= len(faceNames) {
		return "Unknown"
	}
	return faceNames[f]
}

// EventFaceForRoll maps a die roll to an event. Faces 5 and 6 both
// mean an event card is drawn.
func EventFaceForRoll(roll int) EventFace {
	switch roll {
	case 1:
		return FaceBrigand
	case 2:
		return FaceTrade
	case 3:
		return FaceCelebration
	case 4:
		return FaceHarvest
	default:
		return FaceEventCard
	}
}

// Dice holds the two dice rolled at the start of every turn.
// Each die has its own generator so rolls are reproducible from a seed.
type Dice struct {
	production *rand.Rand
	event      *rand.Rand
}

// NewDice constructs seeded dice
func NewDice(seed int64) *Dice {
	return &Dice{
		production: rand.New(rand.NewSource(seed)),
		event:      rand.New(rand.NewSource(seed + 1)),
	}
}

// RollProduction rolls the production die, returning 1..6
func (d *Dice) RollProduction() int {
	return d.production.Intn(dieSides) + 1
}

// RollEvent rolls the event die, returning 1..6
func (d *Dice) RollEvent() int {
	return d.event.Intn(dieSides) + 1
}
