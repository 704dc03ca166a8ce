package game

import (
	"fmt"
	"strconv"
	"strings"
)

func buildWelcomeMessage(name string) string {
	return fmt.Sprintf("Welcome to the game, %s!", name)
}

func buildRollMessage(name string, production int, face EventFace) string {
	return fmt.Sprintf("%s rolled %d (event: %s)!", name, production, face)
}

func buildWinMessage(name string, score Score) string {
	return fmt.Sprintf("%s wins with %d points!", name, score.Total)
}

func stackChoiceText(idxs []int) string {
	labels := []string{}
	for _, idx := range idxs {
		labels = append(labels, strconv.Itoa(idx))
	}
	return "[" + strings.Join(labels, " ") + "]"
}
