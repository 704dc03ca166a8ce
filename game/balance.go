package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Balance holds the tunable numbers of the game. Defaults describe the
// introductory game; a theme game overrides the victory target.
type Balance struct {
	// VictoryTarget is the score that ends the game
	VictoryTarget int `yaml:"victory_target"`
	// AdvantageLead is the lead in strength or commerce points that
	// earns an advantage token
	AdvantageLead int `yaml:"advantage_lead"`
	// BrigandThreshold is the resource total above which the brigands
	// raid a player
	BrigandThreshold int `yaml:"brigand_threshold"`
	// HandLimitBase is the replenish target before progress points
	HandLimitBase int `yaml:"hand_limit_base"`
	// StartingHand is how many cards each player begins with
	StartingHand int `yaml:"starting_hand"`
	// ExchangeCost is the resource price of swapping a hand card
	ExchangeCost        int `yaml:"exchange_cost"`
	ReducedExchangeCost int `yaml:"reduced_exchange_cost"`
	// FountainExchanges is the exchange allowance with Odin's Fountain
	FountainExchanges int `yaml:"fountain_exchanges"`
	// BankTradeRate is how many of one resource buy one of another
	BankTradeRate int `yaml:"bank_trade_rate"`
	// ShipTradeRate applies when the player has a matching trade ship
	ShipTradeRate int `yaml:"ship_trade_rate"`
}

// DefaultBalance returns the introductory game numbers
func DefaultBalance() Balance {
	return Balance{
		VictoryTarget:       7,
		AdvantageLead:       3,
		BrigandThreshold:    7,
		HandLimitBase:       3,
		StartingHand:        3,
		ExchangeCost:        2,
		ReducedExchangeCost: 1,
		FountainExchanges:   2,
		BankTradeRate:       3,
		ShipTradeRate:       2,
	}
}

// ThemeBalance returns the longer theme game numbers
func ThemeBalance() Balance {
	b := DefaultBalance()
	b.VictoryTarget = 12
	return b
}

// LoadBalance reads balance overrides from a YAML file on top of the
// defaults
func LoadBalance(path string) (Balance, error) {
	b := DefaultBalance()

	data, err := os.ReadFile(path)
	if err != nil {
		return b, fmt.Errorf("read balance file: %w", err)
	}
	if err := yaml.Unmarshal(data, &b); err != nil {
		return b, fmt.Errorf("parse balance file: %w", err)
	}
	return b, nil
}
