package players

import (
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/minaorangina/rivals/protocol"
)

const maxEditDistance = 2

// matchOption finds the option closest to what was typed. Exact and
// prefix matches win outright; anything else must sit within a small
// edit distance, so "setlement" still reads as "Settlement".
func matchOption(input string, options []string) (string, bool) {
	token := strings.ToUpper(strings.TrimSpace(input))
	if token == "" {
		return "", false
	}

	for _, opt := range options {
		if strings.ToUpper(opt) == token {
			return opt, true
		}
	}

	if len(token) >= 2 {
		for _, opt := range options {
			if strings.HasPrefix(strings.ToUpper(opt), token) {
				return opt, true
			}
		}
	}

	best := ""
	bestDist := maxEditDistance + 1
	for _, opt := range options {
		dist := levenshtein.ComputeDistance(token, strings.ToUpper(opt))
		if dist < bestDist {
			best, bestDist = opt, dist
		}
	}
	if bestDist <= maxEditDistance {
		return best, true
	}
	return "", false
}

// parsePosition reads a "row col" pair
func parsePosition(input string) (protocol.Position, bool) {
	parts := strings.Fields(strings.TrimSpace(input))
	if len(parts) != 2 {
		return protocol.Position{}, false
	}
	row, err := strconv.Atoi(parts[0])
	if err != nil {
		return protocol.Position{}, false
	}
	col, err := strconv.Atoi(parts[1])
	if err != nil {
		return protocol.Position{}, false
	}
	return protocol.Position{Row: row, Col: col}, true
}

// parseIndex reads a list index, rejecting anything out of range
func parseIndex(input string, max int) (int, bool) {
	idx, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || idx < 0 || idx >= max {
		return 0, false
	}
	return idx, true
}
