package players

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/minaorangina/rivals/deck"
)

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

func buildCardChoiceText(cards []*deck.Card) string {
	text := ""
	for i, card := range cards {
		text += fmt.Sprintf("[%d] %s (Cost: %s, Type: %s)\n", i, card.Name, card.Cost, card.Type)
	}
	return text
}

func buildResourceChoiceText(options []deck.ResourceType) string {
	names := []string{}
	for _, rt := range options {
		names = append(names, rt.String())
	}
	return strings.Join(names, ", ")
}

func buildStackChoiceText(options []int) string {
	labels := []string{}
	for _, idx := range options {
		labels = append(labels, strconv.Itoa(idx))
	}
	return strings.Join(labels, " ")
}
