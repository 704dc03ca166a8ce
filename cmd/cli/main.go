package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/minaorangina/rivals/catalog"
	"github.com/minaorangina/rivals/deck"
	"github.com/minaorangina/rivals/game"
	"github.com/minaorangina/rivals/players"
)

func main() {
	var (
		name        = flag.String("name", "Player 1", "your name at the table")
		opponent    = flag.String("opponent", "bot", "who sits opposite: bot or human")
		cardsPath   = flag.String("cards", "data/cards.json", "path to the card catalog")
		balancePath = flag.String("balance", "", "optional balance override file")
		seed        = flag.Int64("seed", 0, "seed for dice and shuffles, 0 means random")
	)
	flag.Parse()

	cards, err := catalog.Load(*cardsPath)
	if err != nil {
		log.Fatal(err.Error())
	}

	balance := game.DefaultBalance()
	if *balancePath != "" {
		b, err := game.LoadBalance(*balancePath)
		if err != nil {
			log.Printf("balance file %s: %s (using defaults)", *balancePath, err)
		}
		balance = b
	}

	s := *seed
	if s == 0 {
		s = time.Now().UnixNano()
	}

	p1 := players.NewConsolePlayer(players.NewID(), *name, os.Stdin, os.Stdout)

	var p2 players.Player
	if *opponent == "human" {
		p2 = players.NewConsolePlayer(players.NewID(), "Player 2", os.Stdin, os.Stdout)
	} else {
		p2 = players.NewBotPlayer("Robot", s)
	}

	engine, err := game.NewGameEngine(game.GameEngineOpts{
		GameID:    "local",
		CreatorID: p1.ID(),
		Players:   players.NewPlayers(p1, p2),
		Supply:    deck.NewSupply(cards, s),
		Balance:   &balance,
		Seed:      s,
	})
	if err != nil {
		log.Fatal(err.Error())
	}

	if err := engine.Start(); err != nil {
		log.Fatal(err.Error())
	}

	if info, score, ok := engine.Winner(); ok {
		fmt.Printf("%s wins with %d points\n", info.Name, score.Total)
	}
}
