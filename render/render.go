package render

import (
	"fmt"
	"strings"

	"github.com/minaorangina/rivals/deck"
)

const (
	cellWidth   = 20
	bannerWidth = 60
	maxNameLen  = 10
)

// Board is the part of a principality the renderer needs
type Board interface {
	Rows() int
	Cols() int
	CardAt(row, col int) *deck.Card
}

// BoardView pairs a board with its owner's name
type BoardView struct {
	Name  string
	Board Board
}

// Boards renders principalities one after another, the viewer's own
// board first
func Boards(views ...BoardView) string {
	var sb strings.Builder
	for i, view := range views {
		title := fmt.Sprintf("%s'S PRINCIPALITY", strings.ToUpper(view.Name))
		if i == 0 {
			title = "YOUR PRINCIPALITY"
		}
		sb.WriteString("\n")
		sb.WriteString(banner(title))
		sb.WriteString("\n")
		sb.WriteString(Grid(view.Board))
	}
	return sb.String()
}

// Grid renders a principality as a bordered grid. Regions show their
// production number and how full they are.
func Grid(b Board) string {
	var sb strings.Builder

	sb.WriteString("   ")
	for c := 0; c < b.Cols(); c++ {
		fmt.Fprintf(&sb, " %-*s", cellWidth, fmt.Sprintf("Col %d", c))
	}
	sb.WriteString("\n")

	separator(&sb, b.Cols())
	for r := 0; r < b.Rows(); r++ {
		fmt.Fprintf(&sb, "%2d |", r)
		for c := 0; c < b.Cols(); c++ {
			fmt.Fprintf(&sb, "%-*s|", cellWidth, formatCard(b.CardAt(r, c)))
		}
		sb.WriteString("\n")
		separator(&sb, b.Cols())
	}

	return sb.String()
}

// Points renders a one-line point summary
func Points(victory, commerce, skill, strength, progress int) string {
	return fmt.Sprintf("VP=%d CP=%d SP=%d FP=%d PP=%d", victory, commerce, skill, strength, progress)
}

// Hand renders a player's hand with an index per card
func Hand(cards []*deck.Card) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Your Hand (%d cards) ===\n", len(cards))
	for i, card := range cards {
		fmt.Fprintf(&sb, "[%d] %s (Cost: %s, Type: %s)\n", i, card.Name, card.Cost, card.Type)
	}
	return sb.String()
}

// Resources renders stored resource counts in a fixed order
func Resources(counts map[deck.ResourceType]int) string {
	var sb strings.Builder
	sb.WriteString("Resources:")
	total := 0
	for _, rt := range deck.ResourceTypes() {
		fmt.Fprintf(&sb, " %s=%d", rt, counts[rt])
		total += counts[rt]
	}
	fmt.Fprintf(&sb, " (total %d)", total)
	return sb.String()
}

func formatCard(c *deck.Card) string {
	if c == nil {
		return ""
	}
	name := c.Name
	if len(name) > maxNameLen {
		name = name[:maxNameLen]
	}
	if c.Type == deck.Region {
		return fmt.Sprintf("%s (D%d:%d/%d)", name, c.DieFace, c.Stored(), deck.MaxStored)
	}
	return name
}

func banner(title string) string {
	padded := " " + title + " "
	if len(padded) >= bannerWidth {
		return padded
	}
	left := (bannerWidth - len(padded)) / 2
	right := bannerWidth - len(padded) - left
	return strings.Repeat("=", left) + padded + strings.Repeat("=", right)
}

func separator(sb *strings.Builder, cols int) {
	sb.WriteString("   ")
	for c := 0; c < cols; c++ {
		sb.WriteString("+" + strings.Repeat("-", cellWidth))
	}
	sb.WriteString("+\n")
}
