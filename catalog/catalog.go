package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/minaorangina/rivals/deck"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// introTheme is the theme this loader keeps. Cards from other themes
// stay in the file for later rule sets but are never materialized.
const introTheme = "basic"

// cardsSchema guards the catalog file shape before any cards are
// built from it. Point values ride as digit strings, matching the
// original data files.
const cardsSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["name", "theme", "type"],
    "properties": {
      "name": {"type": "string", "minLength": 1},
      "germanName": {"type": "string"},
      "theme": {"type": "string", "minLength": 1},
      "type": {"type": "string", "minLength": 1},
      "cardText": {"type": "string"},
      "cost": {"type": "string", "pattern": "^[BGLWOAbglwoa]*$"},
      "number": {"type": "integer", "minimum": 1},
      "victoryPoints": {"type": "string", "pattern": "^[0-9]*$"},
      "CP": {"type": "string", "pattern": "^[0-9]*$"},
      "SP": {"type": "string", "pattern": "^[0-9]*$"},
      "FP": {"type": "string", "pattern": "^[0-9]*$"},
      "PP": {"type": "string", "pattern": "^[0-9]*$"}
    },
    "additionalProperties": false
  }
}`

var schema = jsonschema.MustCompileString("cards.schema.json", cardsSchema)

type cardDef struct {
	Name          string `json:"name"`
	GermanName    string `json:"germanName,omitempty"`
	Theme         string `json:"theme"`
	Type          string `json:"type"`
	CardText      string `json:"cardText,omitempty"`
	Cost          string `json:"cost,omitempty"`
	Number        int    `json:"number,omitempty"`
	VictoryPoints string `json:"victoryPoints,omitempty"`
	CP            string `json:"CP,omitempty"`
	SP            string `json:"SP,omitempty"`
	FP            string `json:"FP,omitempty"`
	PP            string `json:"PP,omitempty"`
}

// Load reads and materializes the card catalog at path
func Load(path string) ([]*deck.Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading card catalog: %w", err)
	}
	return Parse(data)
}

// Parse validates raw catalog JSON and materializes the introductory
// cards, one Card per copy
func Parse(data []byte) ([]*deck.Card, error) {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("card catalog is not valid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("card catalog failed validation: %w", err)
	}

	var defs []cardDef
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("card catalog: %w", err)
	}

	cards := []*deck.Card{}
	for _, def := range defs {
		if !strings.Contains(strings.ToLower(def.Theme), introTheme) {
			continue
		}

		copies := def.Number
		if copies < 1 {
			copies = 1
		}
		for i := 0; i < copies; i++ {
			c, err := def.toCard()
			if err != nil {
				return nil, err
			}
			cards = append(cards, c)
		}
	}
	return cards, nil
}

// toCard builds a fresh Card, so every copy tracks its own state
func (def cardDef) toCard() (*deck.Card, error) {
	cardType, err := typeFor(def.Name, def.Type)
	if err != nil {
		return nil, err
	}
	return &deck.Card{
		Name:           def.Name,
		Type:           cardType,
		Cost:           deck.ParseCost(def.Cost),
		Text:           def.CardText,
		VictoryPoints:  atoiOrZero(def.VictoryPoints),
		CommercePoints: atoiOrZero(def.CP),
		SkillPoints:    atoiOrZero(def.SP),
		StrengthPoints: atoiOrZero(def.FP),
		ProgressPoints: atoiOrZero(def.PP),
	}, nil
}

// typeFor reads loosely-worded type strings, e.g. "Unit - Ship" or
// "Action - Attack". Centre cards split by name.
func typeFor(name, typeStr string) (deck.CardType, error) {
	lower := strings.ToLower(typeStr)
	switch {
	case strings.Contains(lower, "region"):
		return deck.Region, nil
	case strings.Contains(lower, "building"):
		return deck.Building, nil
	case strings.Contains(lower, "unit"):
		if strings.Contains(lower, "ship") {
			return deck.Ship, nil
		}
		return deck.Unit, nil
	case strings.Contains(lower, "action"):
		return deck.Action, nil
	case strings.Contains(lower, "event"):
		return deck.Event, nil
	case strings.Contains(lower, "center card"):
		switch name {
		case "Road":
			return deck.Road, nil
		case "Settlement":
			return deck.Settlement, nil
		case "City":
			return deck.City, nil
		}
		return deck.Unknown, fmt.Errorf("unknown centre card %q", name)
	}
	return deck.Unknown, fmt.Errorf("card %q has unknown type %q", name, typeStr)
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
