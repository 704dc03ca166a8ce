package game

import (
	"github.com/minaorangina/rivals/deck"
)

// ResourceBank is a view over the region cards of a principality.
// Resources live on the regions themselves; the bank decides which
// region a gain or loss lands on.
type ResourceBank struct {
	principality *Principality
}

// NewResourceBank constructs a bank over a principality
func NewResourceBank(p *Principality) *ResourceBank {
	return &ResourceBank{principality: p}
}

// regions returns the regions producing rt in row-major order
func (b *ResourceBank) regions(rt deck.ResourceType) []*deck.Card {
	matching := []*deck.Card{}
	for _, cp := range b.principality.FindByType(deck.Region) {
		if produced, ok := cp.Card.ProducedResource(); ok && produced == rt {
			matching = append(matching, cp.Card)
		}
	}
	return matching
}

// Count returns how much of one resource the player holds
func (b *ResourceBank) Count(rt deck.ResourceType) int {
	total := 0
	for _, c := range b.regions(rt) {
		total += c.Stored()
	}
	return total
}

// Total returns how many resources the player holds across all types
func (b *ResourceBank) Total() int {
	total := 0
	for _, cp := range b.principality.FindByType(deck.Region) {
		total += cp.Card.Stored()
	}
	return total
}

// Counts returns the player's holdings by resource type
func (b *ResourceBank) Counts() map[deck.ResourceType]int {
	counts := map[deck.ResourceType]int{}
	for _, cp := range b.principality.FindByType(deck.Region) {
		if rt, ok := cp.Card.ProducedResource(); ok {
			counts[rt] += cp.Card.Stored()
		}
	}
	return counts
}

// Add stores up to n of a resource, filling the least-full region
// first. It returns how many were actually stored; the rest are lost
// because every matching region is full, or none exists.
func (b *ResourceBank) Add(rt deck.ResourceType, n int) int {
	added := 0
	for i := 0; i < n; i++ {
		target := b.leastFull(rt)
		if target == nil {
			break
		}
		target.AddStored(1)
		added++
	}
	return added
}

func (b *ResourceBank) leastFull(rt deck.ResourceType) *deck.Card {
	var target *deck.Card
	for _, c := range b.regions(rt) {
		if c.Stored() >= deck.MaxStored {
			continue
		}
		if target == nil || c.Stored() < target.Stored() {
			target = c
		}
	}
	return target
}

// Remove takes n of a resource, draining the fullest region first.
// If the player holds fewer than n, nothing is removed.
func (b *ResourceBank) Remove(rt deck.ResourceType, n int) bool {
	if b.Count(rt) < n {
		return false
	}
	for i := 0; i < n; i++ {
		target := b.mostFull(rt)
		if target == nil {
			return false
		}
		target.RemoveStored(1)
	}
	return true
}

func (b *ResourceBank) mostFull(rt deck.ResourceType) *deck.Card {
	var target *deck.Card
	for _, c := range b.regions(rt) {
		if c.Stored() == 0 {
			continue
		}
		if target == nil || c.Stored() > target.Stored() {
			target = c
		}
	}
	return target
}

// RemoveAll drains every unit of a resource, returning how many went
func (b *ResourceBank) RemoveAll(rt deck.ResourceType) int {
	count := b.Count(rt)
	if count > 0 {
		b.Remove(rt, count)
	}
	return count
}

// CanAfford reports whether the player holds enough for a cost
func (b *ResourceBank) CanAfford(cost deck.Cost) bool {
	for rt, n := range cost {
		if b.Count(rt) < n {
			return false
		}
	}
	return true
}

// Pay removes an entire cost, or nothing at all
func (b *ResourceBank) Pay(cost deck.Cost) bool {
	if !b.CanAfford(cost) {
		return false
	}
	for rt, n := range cost {
		b.Remove(rt, n)
	}
	return true
}

// Refund returns a cost to the regions. Units that no longer fit are
// lost, as when regions have filled up in the meantime.
func (b *ResourceBank) Refund(cost deck.Cost) {
	for rt, n := range cost {
		b.Add(rt, n)
	}
}
